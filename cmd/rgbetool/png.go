package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/mdouchement/hdr/tmo"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	radiance "github.com/siddhutedla/HDR-Video"
	"github.com/siddhutedla/HDR-Video/internal/config"
)

func runPNG(args []string) error {
	fs := flag.NewFlagSet("png", flag.ContinueOnError)
	inPath := fs.String("in", "", "input Radiance HDR file")
	outPath := fs.String("out", "", "output PNG")
	s := addSettings(fs)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *outPath == "" {
		return errors.New("missing -out")
	}

	c, err := s.configuration(fs)
	if err != nil {
		return err
	}
	data, err := readFile(*inPath)
	if err != nil {
		return err
	}

	var out image.Image
	if c.Tonemapper == "filmic" {
		err = radiance.Render(data, func(dm *radiance.DisplayImage) error {
			surface := image.NewRGBA(dm.Bounds())
			out = surface
			return dm.DrawTo(surface)
		}, options(c))
	} else {
		out, err = operator(data, c)
	}
	if err != nil {
		return errors.Wrap(err, "could not render image")
	}

	if c.Width > 0 && c.Width != out.Bounds().Dx() {
		out = resize.Resize(uint(c.Width), 0, out, resize.Lanczos3)
	}
	return writePNG(*outPath, out)
}

// operator tone maps with one of the github.com/mdouchement/hdr/tmo operators
// instead of the filmic curve.
func operator(data []byte, c config.Configuration) (image.Image, error) {
	m, err := radiance.Decode(data, options(c))
	if err != nil {
		return nil, err
	}

	var op tmo.ToneMappingOperator
	switch c.Tonemapper {
	case "drago03":
		op = tmo.NewDefaultDrago03(m)
	case "linear":
		op = tmo.NewLinear(m)
	case "reinhard05":
		op = tmo.NewDefaultReinhard05(m)
	default:
		return nil, errors.Errorf("no tonemapper named %q", c.Tonemapper)
	}

	if c.Verbose {
		log.Printf("Tonemapping: %s", c.Tonemapper)
	}
	return op.Perform(), nil
}

func writePNG(filename string, m image.Image) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "could not create file")
	}
	defer f.Close()

	if err := png.Encode(f, m); err != nil {
		return errors.Wrap(err, "could not encode PNG")
	}
	return errors.Wrap(f.Sync(), "could not flush data to disk")
}
