package remap

import (
	"fmt"
	"io"
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/mat"
)

// computeResiduals applies the solved transform to every paired marker and
// records the reprojection errors. The first three pairs are exact up to
// floating point; any further pairs show how well the affine family fits the
// rest of the layout.
func (r *Result) computeResiduals() error {
	n := min(len(r.SourceMarkers), len(r.DestinationMarkers))
	transform := r.Solution.Transform

	r.Residuals = make([]float64, n)
	for i := 0; i < n; i++ {
		mapped := transform.Apply(r.SourceMarkers[i].ToFloat())
		r.Residuals[i] = mapped.Distance(r.DestinationMarkers[i].ToFloat())
	}

	mean, err := stats.Mean(r.Residuals)
	if err != nil {
		return fmt.Errorf("residual stats: %w", err)
	}
	max, err := stats.Max(r.Residuals)
	if err != nil {
		return fmt.Errorf("residual stats: %w", err)
	}
	r.MeanResidual = mean
	r.MaxResidual = max
	return nil
}

// WriteReport prints the marker lists, each factor of the decomposition, the
// composed matrix and the residual summary as human-readable text.
func (r *Result) WriteReport(w io.Writer) {
	fmt.Fprintf(w, "=== Markers ===\n")
	fmt.Fprintf(w, "Source      %s: %d markers\n", r.SourcePath, len(r.SourceMarkers))
	for i, p := range r.SourceMarkers {
		fmt.Fprintf(w, "  [%d] (%d, %d)\n", i, p.X, p.Y)
	}
	fmt.Fprintf(w, "Destination %s: %d markers\n", r.DestinationPath, len(r.DestinationMarkers))
	for i, p := range r.DestinationMarkers {
		fmt.Fprintf(w, "  [%d] (%d, %d)\n", i, p.X, p.Y)
	}

	s := r.Solution
	fmt.Fprintf(w, "\n=== Decomposition ===\n")
	printMatrix(w, "Translation", s.Translation)
	fmt.Fprintf(w, "Rotation: %.4f deg\n", s.Theta*180/math.Pi)
	printMatrix(w, "Rotation matrix", s.Rotation)
	printMatrix(w, "Change of basis", s.ChangeBasis)
	fmt.Fprintf(w, "Scale along edge: %.6f  scale across: %.6f  shear: %.6f\n",
		s.ScaleE1, s.ScalePerp, s.Shear)
	printMatrix(w, "Scale/shear", s.ScaleShear)

	fmt.Fprintf(w, "\n=== Composed transform ===\n")
	printMatrix(w, "Matrix", s.Matrix)

	fmt.Fprintf(w, "\n=== Residuals ===\n")
	for i, e := range r.Residuals {
		fmt.Fprintf(w, "  [%d] err=%.6f px\n", i, e)
	}
	fmt.Fprintf(w, "Mean error: %.6f px  Max error: %.6f px\n", r.MeanResidual, r.MaxResidual)
}

func printMatrix(w io.Writer, name string, m *mat.Dense) {
	fmt.Fprintf(w, "%s:\n%v\n", name,
		mat.Formatted(m, mat.Prefix(""), mat.Squeeze()))
}
