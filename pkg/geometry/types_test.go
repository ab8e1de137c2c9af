package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAffineApply(t *testing.T) {
	tr := Translation(3, -2)
	p := tr.Apply(Point2D{X: 1, Y: 1})
	assert.Equal(t, Point2D{X: 4, Y: -1}, p)

	rot := Rotation(math.Pi / 2)
	p = rot.Apply(Point2D{X: 1, Y: 0})
	assert.InDelta(t, 0, p.X, 1e-12)
	assert.InDelta(t, 1, p.Y, 1e-12)

	sc := Scale(2, 3)
	assert.Equal(t, Point2D{X: 2, Y: 3}, sc.Apply(Point2D{X: 1, Y: 1}))
}

func TestAffineComposeInverse(t *testing.T) {
	tr := Translation(5, 7).Compose(Rotation(0.3)).Compose(Scale(2, 0.5))

	inv, ok := tr.Inverse()
	require.True(t, ok)

	p := Point2D{X: 2.5, Y: -1.25}
	back := inv.Apply(tr.Apply(p))
	assert.InDelta(t, p.X, back.X, 1e-9)
	assert.InDelta(t, p.Y, back.Y, 1e-9)

	ident := tr.Compose(inv)
	assert.InDelta(t, 1, ident.A, 1e-9)
	assert.InDelta(t, 0, ident.B, 1e-9)
	assert.InDelta(t, 0, ident.TX, 1e-9)
	assert.InDelta(t, 0, ident.C, 1e-9)
	assert.InDelta(t, 1, ident.D, 1e-9)
	assert.InDelta(t, 0, ident.TY, 1e-9)
}

func TestAffineSingularInverse(t *testing.T) {
	_, ok := Scale(0, 1).Inverse()
	assert.False(t, ok)
}

func TestAffineDenseRoundTrip(t *testing.T) {
	tr := AffineTransform{A: 1.5, B: -0.25, TX: 3, C: 0.1, D: 0.9, TY: -7}
	assert.Equal(t, tr, FromDense(tr.ToDense()))

	d := tr.ToDense()
	assert.Equal(t, 0.0, d.At(2, 0))
	assert.Equal(t, 0.0, d.At(2, 1))
	assert.Equal(t, 1.0, d.At(2, 2))
}

func TestTriangleEdges(t *testing.T) {
	tri := NewTriangle(Point2D{X: 1, Y: 1}, Point2D{X: 4, Y: 2}, Point2D{X: 2, Y: 5})
	assert.Equal(t, Point2D{X: 3, Y: 1}, tri.Edge01())
	assert.Equal(t, Point2D{X: 1, Y: 4}, tri.Edge02())
	assert.InDelta(t, 5.5, tri.Area(), 1e-12)
	assert.False(t, tri.IsDegenerate())
}

func TestTriangleDegenerate(t *testing.T) {
	collinear := NewTriangle(Point2D{}, Point2D{X: 1, Y: 1}, Point2D{X: 3, Y: 3})
	assert.True(t, collinear.IsDegenerate())

	coincident := NewTriangle(Point2D{X: 2, Y: 2}, Point2D{X: 2, Y: 2}, Point2D{X: 5, Y: 1})
	assert.True(t, coincident.IsDegenerate())
}

func TestTriangleFromPixels(t *testing.T) {
	pts := []PointInt{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 9, Y: 9}}
	tri := TriangleFromPixels(pts)
	assert.Equal(t, Triangle{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}}, tri)
}
