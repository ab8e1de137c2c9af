// Package remap solves the planar affine transform carrying marker positions
// in one UV-layout texture onto the corresponding markers in another.
package remap

import (
	"fmt"

	"uv-remap/internal/marker"
	"uv-remap/internal/texture"
	"uv-remap/pkg/geometry"
)

// Options configures a pipeline run.
type Options struct {
	Workers int  // Parallel scan workers; <=1 scans serially
	Verbose bool // Print progress lines while running
}

// Result holds everything one pipeline run produced.
type Result struct {
	SourcePath      string
	DestinationPath string

	SourceMarkers      []geometry.PointInt
	DestinationMarkers []geometry.PointInt

	Solution *Solution

	// Residuals are per-marker reprojection errors for the first
	// min(len(src), len(dst)) marker pairs, in marker order.
	Residuals    []float64
	MeanResidual float64
	MaxResidual  float64
}

// Run executes the full pipeline: load both textures, locate and order the
// markers in each, form the correspondence triangles from the first three
// markers of each, and solve the affine map. Either a complete valid result
// is returned or an error; there is no partial output.
func Run(srcPath, dstPath string, opts Options) (*Result, error) {
	srcMarkers, err := locateFile(srcPath, opts)
	if err != nil {
		return nil, err
	}
	dstMarkers, err := locateFile(dstPath, opts)
	if err != nil {
		return nil, err
	}

	result, err := Match(srcMarkers, dstMarkers)
	if err != nil {
		return nil, err
	}
	result.SourcePath = srcPath
	result.DestinationPath = dstPath
	return result, nil
}

// Match solves the transform for two already-ordered marker lists. The first
// three markers of each list form the correspondence triangles; remaining
// pairs only contribute to the residual diagnostics.
func Match(srcMarkers, dstMarkers []geometry.PointInt) (*Result, error) {
	if len(srcMarkers) < 3 {
		return nil, fmt.Errorf("source image has %d markers, need 3: %w",
			len(srcMarkers), ErrInsufficientMarkers)
	}
	if len(dstMarkers) < 3 {
		return nil, fmt.Errorf("destination image has %d markers, need 3: %w",
			len(dstMarkers), ErrInsufficientMarkers)
	}

	src := geometry.TriangleFromPixels(srcMarkers)
	dst := geometry.TriangleFromPixels(dstMarkers)

	solution, err := Solve(src, dst)
	if err != nil {
		return nil, fmt.Errorf("solve transform: %w", err)
	}

	result := &Result{
		SourceMarkers:      srcMarkers,
		DestinationMarkers: dstMarkers,
		Solution:           solution,
	}
	if err := result.computeResiduals(); err != nil {
		return nil, err
	}
	return result, nil
}

// locateFile loads one texture and returns its ordered marker list.
func locateFile(path string, opts Options) ([]geometry.PointInt, error) {
	tex, err := texture.Load(path)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		fmt.Printf("Loaded %s (%dx%d)\n", path, tex.Width, tex.Height)
	}

	var markers []geometry.PointInt
	if opts.Workers > 1 {
		markers = marker.LocateParallel(tex, opts.Workers)
	} else {
		markers = marker.Locate(tex)
	}
	if opts.Verbose {
		fmt.Printf("Found %d markers\n", len(markers))
	}
	return markers, nil
}
