package radiance

// Resources:
// https://floyd.lbl.gov/radiance/refer/filefmts.pdf (Radiance file formats)
// https://www.graphics.cornell.edu/~bjw/rgbe.html (RGBE reference code)
// https://paulbourke.net/dataformats/pic/ (header variables and orientation)
// https://knarkowicz.wordpress.com/2016/01/06/aces-filmic-tone-mapping-curve/ (filmic curve fit)

import (
	"image"
	"io"
	"io/ioutil"
	"runtime"
	"time"

	"github.com/mdouchement/hdr/hdrcolor"
	"github.com/pkg/errors"
)

// Options tunes Decode, ToneMap and Render.
type Options struct {
	// Workers is the number of goroutines used to convert and tone map rows.
	// It defaults to runtime.NumCPU().
	Workers int
	// Exposure multiplies radiance before the tone curve. Zero means 1.
	Exposure float32
	// Trace, when set, receives the elapsed time of each stage
	// ("header", "scanlines", "convert", "tonemap"). It has no effect on the output.
	Trace func(stage string, elapsed time.Duration)
}

func newOptions(options []func(*Options)) Options {
	o := Options{
		Workers:  runtime.NumCPU(),
		Exposure: 1,
	}
	for _, option := range options {
		option(&o)
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
	return o
}

func (o Options) trace(stage string, start time.Time) {
	if o.Trace != nil {
		o.Trace(stage, time.Since(start))
	}
}

// A Presenter receives the final display image, typically to copy it into a
// surface with DisplayImage.DrawTo.
type Presenter func(*DisplayImage) error

//------------------------//
// Reader                 //
//------------------------//

// DecodeConfig returns the color model and dimensions of a Radiance image
// without decoding the scanlines.
func DecodeConfig(r io.Reader) (image.Config, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return image.Config{}, err
	}
	h, _, err := ParseHeader(data)
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: hdrcolor.RGBModel,
		Width:      h.Width,
		Height:     h.Height,
	}, nil
}

// Decode decodes the full contents of a Radiance file into linear radiance.
// No image is returned on error.
func Decode(data []byte, options ...func(*Options)) (*RadianceImage, error) {
	o := newOptions(options)

	start := time.Now()
	d, err := newDecoder(data)
	if err != nil {
		return nil, err
	}
	o.trace("header", start)

	start = time.Now()
	if err = d.decodeScanlines(); err != nil {
		return nil, err
	}
	o.trace("scanlines", start)

	start = time.Now()
	m := newRadianceImage(d.header.Width, d.header.Height)
	parallelTiles(m.Width, m.Height, o.Workers, func(r image.Rectangle) {
		d.decodeRGBE(m, r)
	})
	o.trace("convert", start)

	return m, nil
}

// Render decodes data, tone maps it and hands the result to present.
// present is not called when decoding fails.
func Render(data []byte, present Presenter, options ...func(*Options)) error {
	m, err := Decode(data, options...)
	if err != nil {
		return err
	}

	o := newOptions(options)
	start := time.Now()
	dm := ToneMap(m, options...)
	o.trace("tonemap", start)

	return errors.Wrap(present(dm), "radiance: present")
}

func decode(r io.Reader) (image.Image, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	m, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func init() {
	image.RegisterFormat("radiance", radianceHeader, decode, DecodeConfig)
	image.RegisterFormat("radiance", rgbeHeader, decode, DecodeConfig)
}
