// Command uvremap derives the planar affine transform mapping the marker
// layout of one UV texture onto another and prints how it was built.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"uv-remap/internal/remap"
	"uv-remap/internal/version"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: uvremap <source-uv> <dest-uv>\n\n")
	fmt.Fprintf(os.Stderr, "Solves the affine transform carrying the markers of <source-uv>\n")
	fmt.Fprintf(os.Stderr, "onto the markers of <dest-uv>.\n\n")
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("uvremap %s (%s, built %s)\n",
			version.Version, version.GitCommit, version.BuildTime)
		return
	}

	if flag.NArg() != 2 {
		usage()
		os.Exit(1)
	}

	result, err := remap.Run(flag.Arg(0), flag.Arg(1), remap.Options{Verbose: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "uvremap: %v\n", err)
		var degenerate *remap.DegenerateTriangleError
		switch {
		case errors.Is(err, remap.ErrInsufficientMarkers):
			fmt.Fprintln(os.Stderr, "Each image needs at least 3 non-background marker pixels.")
		case errors.As(err, &degenerate):
			fmt.Fprintf(os.Stderr, "Check the %s image's first three markers for bad placement.\n",
				degenerate.Which)
		}
		os.Exit(1)
	}

	result.WriteReport(os.Stdout)
}
