// Package marker locates color-coded correspondence markers in a UV-layout
// texture and puts them in a canonical, color-driven order.
package marker

import (
	"sort"
	"sync"

	"uv-remap/internal/texture"
	"uv-remap/pkg/geometry"
)

// Marker is a discovered non-background pixel: its pixel coordinates plus the
// color it was found with. The color only exists to compute the sort key and
// is dropped from the locator output.
type Marker struct {
	Pos     geometry.PointInt
	R, G, B uint8
}

// Precedence returns the sort key for a marker color: the RGB channels read
// as a 24-bit integer with R least significant and B most significant.
func (m Marker) Precedence() uint32 {
	return Precedence(m.R, m.G, m.B)
}

// Precedence returns the color-derived sort key r + 256*g + 65536*b.
func Precedence(r, g, b uint8) uint32 {
	return uint32(r) + uint32(g)<<8 + uint32(b)<<16
}

// Locate scans a texture for marker pixels and returns their positions in
// ascending precedence order. A pixel is a marker iff its color is not
// exactly (0,0,0); no tolerance is applied. Markers sharing a color keep
// their discovery order (column-major: all y for x=0, then x=1, ...).
// An image with no markers yields an empty list.
func Locate(tex *texture.Texture) []geometry.PointInt {
	markers := scanColumns(tex, 0, tex.Width)
	return sortAndStrip(markers)
}

// LocateParallel is Locate with the scan fanned out over column stripes.
// Each worker collects a private marker list; the lists are concatenated in
// stripe order, so discovery order (and with it duplicate-color tie-breaking)
// matches the serial scan, then the whole list is re-sorted. Output is
// identical to Locate for every input.
func LocateParallel(tex *texture.Texture, workers int) []geometry.PointInt {
	if workers <= 1 || tex.Width < workers {
		return Locate(tex)
	}

	stripes := make([][]Marker, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		x0 := i * tex.Width / workers
		x1 := (i + 1) * tex.Width / workers
		wg.Add(1)
		go func(i, x0, x1 int) {
			defer wg.Done()
			stripes[i] = scanColumns(tex, x0, x1)
		}(i, x0, x1)
	}
	wg.Wait()

	var markers []Marker
	for _, s := range stripes {
		markers = append(markers, s...)
	}
	return sortAndStrip(markers)
}

// scanColumns collects markers from columns [x0,x1) in column-major order.
func scanColumns(tex *texture.Texture, x0, x1 int) []Marker {
	var markers []Marker
	for x := x0; x < x1; x++ {
		for y := 0; y < tex.Height; y++ {
			r, g, b := tex.RGBAt(x, y)
			if r == 0 && g == 0 && b == 0 {
				continue
			}
			markers = append(markers, Marker{
				Pos: geometry.PointInt{X: x, Y: y},
				R:   r, G: g, B: b,
			})
		}
	}
	return markers
}

// sortAndStrip orders markers by ascending precedence (stable, so equal
// colors keep discovery order) and projects away the color information.
func sortAndStrip(markers []Marker) []geometry.PointInt {
	sort.SliceStable(markers, func(i, j int) bool {
		return markers[i].Precedence() < markers[j].Precedence()
	})

	positions := make([]geometry.PointInt, len(markers))
	for i, m := range markers {
		positions[i] = m.Pos
	}
	return positions
}

// LocateWithColors is Locate but keeps the color and precedence of each
// marker. Used by the markertest tool for diagnostics.
func LocateWithColors(tex *texture.Texture) []Marker {
	markers := scanColumns(tex, 0, tex.Width)
	sort.SliceStable(markers, func(i, j int) bool {
		return markers[i].Precedence() < markers[j].Precedence()
	})
	return markers
}
