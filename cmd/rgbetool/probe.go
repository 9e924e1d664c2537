package main

import (
	"flag"
	"fmt"
	"image"
	"math"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	radiance "github.com/siddhutedla/HDR-Video"
)

func runProbe(args []string) error {
	fs := flag.NewFlagSet("probe", flag.ContinueOnError)
	inPath := fs.String("in", "", "input Radiance HDR file")
	x := fs.Int("x", 0, "column")
	y := fs.Int("y", 0, "row")
	exposure := fs.Float64("exposure", 1, "linear multiplier applied before the filmic curve")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	data, err := readFile(*inPath)
	if err != nil {
		return err
	}
	m, err := radiance.Decode(data)
	if err != nil {
		return err
	}
	if !image.Pt(*x, *y).In(m.Bounds()) {
		return errors.Errorf("pixel %d,%d is outside %v", *x, *y, m.Bounds())
	}

	r, g, b := m.RGBAt(*x, *y)
	fmt.Printf("radiance: %g %g %g\n", r, g, b)

	// Naive clip to sRGB, for comparison with the filmic curve.
	clipped := colorful.LinearRgb(clip(r), clip(g), clip(b)).Clamped()
	fmt.Printf("clipped:  %s\n", clipped.Hex())

	display := filmicColor(r, g, b, float32(*exposure))
	fmt.Printf("filmic:   %s\n", display.Hex())
	return nil
}

func clip(v float32) float64 {
	if math.IsNaN(float64(v)) {
		return 0
	}
	return math.Min(math.Max(float64(v), 0), 1)
}

// filmicColor is the display colour the filmic curve gives a radiance value.
func filmicColor(r, g, b, exposure float32) colorful.Color {
	return colorful.Color{
		R: float64(radiance.DisplayValue(r*exposure)) / 255,
		G: float64(radiance.DisplayValue(g*exposure)) / 255,
		B: float64(radiance.DisplayValue(b*exposure)) / 255,
	}
}
