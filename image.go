package radiance

import (
	"image"
	"image/color"

	"github.com/mdouchement/hdr/hdrcolor"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// RadianceImage holds linear-light radiance as float32 RGB triplets.
// It implements hdr.Image.
type RadianceImage struct {
	Width  int
	Height int
	Pix    []float32 // R, G, B per pixel, row-major. len(Pix) == Width*Height*3.
}

func newRadianceImage(width, height int) *RadianceImage {
	return &RadianceImage{
		Width:  width,
		Height: height,
		Pix:    make([]float32, width*height*samplesPerPixel),
	}
}

// Implement image.Image
func (m *RadianceImage) ColorModel() color.Model { return hdrcolor.RGBModel }
func (m *RadianceImage) Bounds() image.Rectangle { return image.Rect(0, 0, m.Width, m.Height) }
func (m *RadianceImage) At(x, y int) color.Color { return m.HDRAt(x, y) }

// Implement hdr.Image
func (m *RadianceImage) Size() int { return m.Width * m.Height }

func (m *RadianceImage) HDRAt(x, y int) hdrcolor.Color {
	if !image.Pt(x, y).In(m.Bounds()) {
		return hdrcolor.RGB{}
	}
	r, g, b := m.RGBAt(x, y)
	return hdrcolor.RGB{R: float64(r), G: float64(g), B: float64(b)}
}

// PixOffset returns the index of the first sample of (x, y) in Pix.
func (m *RadianceImage) PixOffset(x, y int) int {
	return (y*m.Width + x) * samplesPerPixel
}

// RGBAt returns the radiance of the pixel at (x, y), which must be in bounds.
func (m *RadianceImage) RGBAt(x, y int) (r, g, b float32) {
	i := m.PixOffset(x, y)
	return m.Pix[i], m.Pix[i+1], m.Pix[i+2]
}

// DisplayImage holds gamma-encoded 8-bit RGBA pixels ready to be shown.
// Alpha is always 255.
type DisplayImage struct {
	Width  int
	Height int
	Pix    []uint8 // R, G, B, A per pixel, row-major. len(Pix) == Width*Height*4.
}

func newDisplayImage(width, height int) *DisplayImage {
	return &DisplayImage{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*4),
	}
}

func (m *DisplayImage) ColorModel() color.Model { return color.RGBAModel }
func (m *DisplayImage) Bounds() image.Rectangle { return image.Rect(0, 0, m.Width, m.Height) }

func (m *DisplayImage) At(x, y int) color.Color {
	if !image.Pt(x, y).In(m.Bounds()) {
		return color.RGBA{}
	}
	return m.RGBAAt(x, y)
}

// RGBAAt returns the pixel at (x, y), which must be in bounds.
func (m *DisplayImage) RGBAAt(x, y int) color.RGBA {
	i := (y*m.Width + x) * 4
	s := m.Pix[i : i+4 : i+4]
	return color.RGBA{R: s[0], G: s[1], B: s[2], A: s[3]}
}

// DrawTo writes the pixels into a caller-owned surface of the same size.
func (m *DisplayImage) DrawTo(dst draw.Image) error {
	b := dst.Bounds()
	if b.Dx() != m.Width || b.Dy() != m.Height {
		return errors.Errorf("radiance: surface is %dx%d, image is %dx%d", b.Dx(), b.Dy(), m.Width, m.Height)
	}

	if rgba, ok := dst.(*image.RGBA); ok {
		stride := m.Width * 4
		for y := 0; y < m.Height; y++ {
			i := rgba.PixOffset(b.Min.X, b.Min.Y+y)
			copy(rgba.Pix[i:i+stride], m.Pix[y*stride:(y+1)*stride])
		}
		return nil
	}

	draw.Copy(dst, b.Min, m, m.Bounds(), draw.Src, nil)
	return nil
}
