package radiance

import (
	"image"
	"math"
)

const displayGamma = 2.2

// Filmic is the approximate ACES filmic curve. The result is not clamped.
func Filmic(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}

// DisplayValue maps one linear radiance channel to a gamma-encoded byte.
// NaN and negative inputs map to 0, +Inf to 255.
func DisplayValue(x float32) uint8 {
	return displayValue(float64(x))
}

func displayValue(x float64) uint8 {
	switch {
	case math.IsInf(x, 1):
		return 255
	case !(x > 0): // NaN or negative
		return 0
	}

	v := Filmic(x)
	if v > 1 {
		v = 1
	}
	v = math.Floor(math.Pow(v, 1/displayGamma) * 255)
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}

// ToneMap converts linear radiance into a display image.
//
// The curve is applied to each channel independently rather than to
// luminance, which can shift hue and saturation at extreme exposures.
// Only Workers and Exposure are read from the options.
func ToneMap(m *RadianceImage, options ...func(*Options)) *DisplayImage {
	o := newOptions(options)
	dm := newDisplayImage(m.Width, m.Height)

	exposure := float64(o.Exposure)
	if !(exposure > 0) {
		exposure = 1
	}

	parallelTiles(m.Width, m.Height, o.Workers, func(r image.Rectangle) {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			src := m.Pix[y*m.Width*samplesPerPixel : (y+1)*m.Width*samplesPerPixel]
			dst := dm.Pix[y*m.Width*4 : (y+1)*m.Width*4]
			for x := r.Min.X; x < r.Max.X; x++ {
				dst[x*4] = displayValue(float64(src[x*3]) * exposure)
				dst[x*4+1] = displayValue(float64(src[x*3+1]) * exposure)
				dst[x*4+2] = displayValue(float64(src[x*3+2]) * exposure)
				dst[x*4+3] = 255
			}
		}
	})

	return dm
}
