package radiance

import (
	"image"

	"github.com/mdouchement/hdr/format"
)

// rgbeToRadiance converts one RGBE pixel to linear radiance.
// An exponent of zero encodes black whatever the mantissas.
func rgbeToRadiance(r, g, b, e byte) (float32, float32, float32) {
	fr, fg, fb := format.FromRadianceBytes(r, g, b, e, 1)
	return float32(fr), float32(fg), float32(fb)
}

// decodeRGBE converts the region rect of d.raw into m.
func (d *decoder) decodeRGBE(m *RadianceImage, rect image.Rectangle) {
	width := d.header.Width
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		src := d.raw[y*width*bytesPerPixel : (y+1)*width*bytesPerPixel]
		dst := m.Pix[y*width*samplesPerPixel : (y+1)*width*samplesPerPixel]
		for x := rect.Min.X; x < rect.Max.X; x++ {
			p := src[x*bytesPerPixel : x*bytesPerPixel+bytesPerPixel]
			dst[x*3], dst[x*3+1], dst[x*3+2] = rgbeToRadiance(p[0], p[1], p[2], p[3])
		}
	}
}
