package main

import (
	"flag"
	"fmt"
	"os"

	radiance "github.com/siddhutedla/HDR-Video"
	"github.com/siddhutedla/HDR-Video/internal/stats"
)

func runInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	inPath := fs.String("in", "", "input Radiance HDR file")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	data, err := readFile(*inPath)
	if err != nil {
		return err
	}
	h, _, err := radiance.ParseHeader(data)
	if err != nil {
		return err
	}
	fmt.Print(h)
	if !h.Orientation.Standard() {
		fmt.Println("Warning: non-standard orientation, pixels are shown top-to-bottom, left-to-right")
	}
	fmt.Printf("Exposure: %g\n", h.Exposure())

	m, err := radiance.Decode(data)
	if err != nil {
		return err
	}
	fmt.Printf("Luminance: %v\n", stats.Summarize(m))
	return nil
}
