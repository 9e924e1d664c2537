// Package stats summarizes the luminance of a decoded radiance image.
package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/mdouchement/hdr/hdrcolor"
	radiance "github.com/siddhutedla/HDR-Video"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// delta avoids log(0) on black pixels when computing the log-average.
const delta = 1e-6

type Summary struct {
	Pixels     int
	Black      int // Pixels with zero luminance.
	Min        float64
	Max        float64
	Mean       float64
	LogAverage float64 // Geometric mean, the "key" of the scene.
	Median     float64
	P99        float64
}

// Luminance returns the CIE Y of every pixel, row-major.
func Luminance(m *radiance.RadianceImage) []float64 {
	lum := make([]float64, 0, m.Size())
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			r, g, b := m.RGBAt(x, y)
			xyz := hdrcolor.XYZModel.Convert(hdrcolor.RGB{R: float64(r), G: float64(g), B: float64(b)}).(hdrcolor.XYZ)
			lum = append(lum, xyz.Y)
		}
	}
	return lum
}

func Summarize(m *radiance.RadianceImage) Summary {
	lum := Luminance(m)
	s := Summary{Pixels: len(lum)}
	if len(lum) == 0 {
		return s
	}
	sort.Float64s(lum)

	logs := make([]float64, len(lum))
	for i, v := range lum {
		if v <= 0 {
			s.Black++
		}
		logs[i] = math.Log(delta + math.Max(v, 0))
	}

	s.Min = floats.Min(lum)
	s.Max = floats.Max(lum)
	s.Mean = stat.Mean(lum, nil)
	s.LogAverage = math.Exp(stat.Mean(logs, nil))
	s.Median = stat.Quantile(0.5, stat.Empirical, lum, nil)
	s.P99 = stat.Quantile(0.99, stat.Empirical, lum, nil)
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("pixels=%d black=%d min=%g max=%g mean=%g logavg=%g median=%g p99=%g",
		s.Pixels, s.Black, s.Min, s.Max, s.Mean, s.LogAverage, s.Median, s.P99)
}
