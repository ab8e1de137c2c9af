package geometry

import "math"

// Triangle is an ordered triple of 2D points. Vertex order matters: when two
// triangles are used as a correspondence pair, vertex i of one maps onto
// vertex i of the other.
type Triangle [3]Point2D

// NewTriangle creates a triangle from three vertices.
func NewTriangle(v0, v1, v2 Point2D) Triangle {
	return Triangle{v0, v1, v2}
}

// TriangleFromPixels builds a triangle from the first three entries of an
// ordered pixel-coordinate list. Callers must have checked len(pts) >= 3.
func TriangleFromPixels(pts []PointInt) Triangle {
	return Triangle{pts[0].ToFloat(), pts[1].ToFloat(), pts[2].ToFloat()}
}

// Edge01 returns the vector from vertex 0 to vertex 1.
func (t Triangle) Edge01() Point2D {
	return t[1].Sub(t[0])
}

// Edge02 returns the vector from vertex 0 to vertex 2.
func (t Triangle) Edge02() Point2D {
	return t[2].Sub(t[0])
}

// Area returns the (unsigned) area of the triangle.
func (t Triangle) Area() float64 {
	e1 := t.Edge01()
	e2 := t.Edge02()
	return math.Abs(e1.X*e2.Y-e1.Y*e2.X) / 2
}

// IsDegenerate reports whether the vertices are (near-)collinear or
// coincident, i.e. the triangle does not span the plane.
func (t Triangle) IsDegenerate() bool {
	e1 := t.Edge01()
	e2 := t.Edge02()
	cross := e1.X*e2.Y - e1.Y*e2.X
	return math.Abs(cross) < 1e-12
}
