package remap

import (
	"errors"
	"fmt"

	"uv-remap/pkg/geometry"
)

// ErrInsufficientMarkers indicates fewer than three markers were found in an
// image, so no triangle can be formed. Checked before any marker indexing.
var ErrInsufficientMarkers = errors.New("insufficient markers")

// DegenerateTriangleError reports a triangle (or the pair's basis) that
// cannot support an affine solve: coincident or collinear vertices, or a
// destination first edge on which the change-of-basis is singular.
type DegenerateTriangleError struct {
	Which  string // "source" or "destination"
	Reason string
	Tri    geometry.Triangle
}

func (e *DegenerateTriangleError) Error() string {
	return fmt.Sprintf("degenerate %s triangle %v: %s", e.Which, [3]geometry.Point2D(e.Tri), e.Reason)
}
