package remap

import (
	"fmt"
	"math"

	"uv-remap/pkg/geometry"

	"gonum.org/v1/gonum/mat"
)

// epsDegenerate bounds how small a frame coordinate may get before a divide
// is treated as a degenerate-triangle condition instead of producing an
// astronomically scaled matrix.
const epsDegenerate = 1e-12

// Solution holds the solved affine map together with every factor of its
// decomposition, so callers can report how the map was built.
type Solution struct {
	Source      geometry.Triangle
	Destination geometry.Triangle

	// Decomposition factors, as 3x3 homogeneous matrices. Rotation and the
	// basis pair are applied about the destination anchor vertex (see
	// Matrix), which keeps all three vertex correspondences exact.
	Translation   *mat.Dense // rigid translation carrying source[0] onto destination[0]
	Rotation      *mat.Dense // rotation aligning the first edges
	ChangeBasis   *mat.Dense // inverse of the destination edge basis
	UnchangeBasis *mat.Dense // the destination edge basis itself
	ScaleShear    *mat.Dense // scale along the first edge, scale across it, shear

	// Matrix is the composed map: for each vertex index i,
	// Matrix * homogeneous(Source[i]) == homogeneous(Destination[i]).
	Matrix *mat.Dense

	// Transform is the 2x3 view of Matrix.
	Transform geometry.AffineTransform

	Theta     float64 // rotation angle, radians
	ScaleE1   float64 // scale along the destination first edge
	ScalePerp float64 // scale across it
	Shear     float64
}

// Solve computes the unique affine map carrying the source triangle onto the
// destination triangle, vertex i onto vertex i, by explicit decomposition:
// translate, rotate, change into the destination edge basis, scale/shear,
// change back. The basis pairs the destination first edge with its
// swapped-component perpendicular (x,y)->(y,x); that operator is part of the
// tool's contract and is kept even though it is a reflection, not a proper
// rotation. Degenerate inputs return a *DegenerateTriangleError.
func Solve(src, dst geometry.Triangle) (*Solution, error) {
	u1 := src.Edge01()
	u2 := src.Edge02()
	v1 := dst.Edge01()
	v2 := dst.Edge02()

	if u1.Norm() < epsDegenerate {
		return nil, &DegenerateTriangleError{Which: "source", Tri: src,
			Reason: "vertex 0 and vertex 1 coincide"}
	}
	if v1.Norm() < epsDegenerate {
		return nil, &DegenerateTriangleError{Which: "destination", Tri: dst,
			Reason: "vertex 0 and vertex 1 coincide"}
	}

	// Rotation aligning the first edge directions.
	theta := v1.Angle() - u1.Angle()
	rot := geometry.Rotation(theta)

	// Destination edge basis: first edge and its component-swapped
	// perpendicular, as columns.
	basis := mat.NewDense(2, 2, []float64{
		v1.X, v1.Y,
		v1.Y, v1.X,
	})
	var basisInv mat.Dense
	if err := basisInv.Inverse(basis); err != nil {
		// det = v1.X^2 - v1.Y^2: the swapped-perpendicular basis collapses
		// when the first edge lies on a +-45 degree diagonal.
		return nil, &DegenerateTriangleError{Which: "destination", Tri: dst,
			Reason: fmt.Sprintf("edge basis for first edge (%g,%g) is singular: %v", v1.X, v1.Y, err)}
	}

	// Express the rotated source edges and the destination edges in the
	// basis frame.
	s1f := applyLinear(&basisInv, rot.Apply(u1))
	s2f := applyLinear(&basisInv, rot.Apply(u2))
	d1f := applyLinear(&basisInv, v1)
	d2f := applyLinear(&basisInv, v2)

	if math.Abs(s1f.X) < epsDegenerate {
		return nil, &DegenerateTriangleError{Which: "source", Tri: src,
			Reason: "first edge has zero projection in the destination frame"}
	}
	if math.Abs(s2f.Y) < epsDegenerate {
		return nil, &DegenerateTriangleError{Which: "source", Tri: src,
			Reason: "vertices are collinear"}
	}
	if math.Abs(d2f.Y) < epsDegenerate {
		return nil, &DegenerateTriangleError{Which: "destination", Tri: dst,
			Reason: "vertices are collinear"}
	}

	// Scale/shear solved exactly in the frame: two divisions plus the cross
	// term that carries the second vertex onto its target.
	scaleE1 := d1f.X / s1f.X
	scalePerp := d2f.Y / s2f.Y
	shear := (d2f.X - s2f.X*scaleE1) / s2f.Y

	t := dst[0].Sub(src[0])

	translation := translate3(t.X, t.Y)
	rotation := rot.ToDense()
	changeBasis := pad3(&basisInv)
	unchangeBasis := pad3(basis)
	scaleShear := mat.NewDense(3, 3, []float64{
		scaleE1, shear, 0,
		0, scalePerp, 0,
		0, 0, 1,
	})

	// Compose about the destination anchor: conjugating the linear factors
	// by translate(dst[0]) makes the rotation and basis change act on edge
	// vectors, so vertex 0 stays pinned while vertices 1 and 2 land exactly.
	matrix := mulChain(
		translate3(dst[0].X, dst[0].Y),
		unchangeBasis,
		scaleShear,
		changeBasis,
		rotation,
		translate3(-dst[0].X, -dst[0].Y),
		translation,
	)

	return &Solution{
		Source:        src,
		Destination:   dst,
		Translation:   translation,
		Rotation:      rotation,
		ChangeBasis:   changeBasis,
		UnchangeBasis: unchangeBasis,
		ScaleShear:    scaleShear,
		Matrix:        matrix,
		Transform:     geometry.FromDense(matrix),
		Theta:         theta,
		ScaleE1:       scaleE1,
		ScalePerp:     scalePerp,
		Shear:         shear,
	}, nil
}

// applyLinear applies a 2x2 matrix to a vector.
func applyLinear(m mat.Matrix, p geometry.Point2D) geometry.Point2D {
	return geometry.Point2D{
		X: m.At(0, 0)*p.X + m.At(0, 1)*p.Y,
		Y: m.At(1, 0)*p.X + m.At(1, 1)*p.Y,
	}
}

// translate3 builds a homogeneous translation matrix.
func translate3(tx, ty float64) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		1, 0, tx,
		0, 1, ty,
		0, 0, 1,
	})
}

// pad3 embeds a 2x2 linear matrix in a 3x3 homogeneous one.
func pad3(m mat.Matrix) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		m.At(0, 0), m.At(0, 1), 0,
		m.At(1, 0), m.At(1, 1), 0,
		0, 0, 1,
	})
}

// mulChain multiplies matrices left to right.
func mulChain(ms ...*mat.Dense) *mat.Dense {
	result := ms[0]
	for _, m := range ms[1:] {
		var next mat.Dense
		next.Mul(result, m)
		result = &next
	}
	return result
}
