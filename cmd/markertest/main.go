// Command markertest dumps the ordered marker list for a single image and
// optionally cross-checks the parallel scanner against the serial one.
package main

import (
	"flag"
	"fmt"
	"os"

	"uv-remap/internal/marker"
	"uv-remap/internal/texture"
)

func main() {
	parallel := flag.Int("parallel", 0, "Also run the parallel scanner with N workers and compare")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Println("Usage: markertest [-parallel N] <image>")
		os.Exit(1)
	}
	path := flag.Arg(0)

	tex, err := texture.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "markertest: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("=== %s (%dx%d) ===\n", path, tex.Width, tex.Height)

	markers := marker.LocateWithColors(tex)
	fmt.Printf("%d markers:\n", len(markers))
	for i, m := range markers {
		fmt.Printf("  [%d] (%d, %d)  rgb(%d,%d,%d)  precedence=%d\n",
			i, m.Pos.X, m.Pos.Y, m.R, m.G, m.B, m.Precedence())
	}

	if *parallel > 1 {
		serial := marker.Locate(tex)
		par := marker.LocateParallel(tex, *parallel)
		if len(serial) != len(par) {
			fmt.Fprintf(os.Stderr, "parallel mismatch: %d vs %d markers\n", len(serial), len(par))
			os.Exit(1)
		}
		for i := range serial {
			if serial[i] != par[i] {
				fmt.Fprintf(os.Stderr, "parallel mismatch at [%d]: %v vs %v\n", i, serial[i], par[i])
				os.Exit(1)
			}
		}
		fmt.Printf("parallel scan (%d workers) matches serial scan\n", *parallel)
	}
}
