package stats

import (
	"math"
	"testing"

	radiance "github.com/siddhutedla/HDR-Video"
	"github.com/stretchr/testify/assert"
)

func gray(values ...float32) *radiance.RadianceImage {
	m := &radiance.RadianceImage{Width: len(values), Height: 1}
	for _, v := range values {
		m.Pix = append(m.Pix, v, v, v)
	}
	return m
}

func TestLuminance(t *testing.T) {
	lum := Luminance(gray(0, 0.5, 2))
	assert.Len(t, lum, 3)
	assert.InDelta(t, 0, lum[0], 1e-9)
	assert.InDelta(t, 0.5, lum[1], 1e-4)
	assert.InDelta(t, 2, lum[2], 1e-4)
}

func TestSummarize(t *testing.T) {
	s := Summarize(gray(0, 1, 1, 4))
	assert.Equal(t, 4, s.Pixels)
	assert.Equal(t, 1, s.Black)
	assert.InDelta(t, 0, s.Min, 1e-9)
	assert.InDelta(t, 4, s.Max, 1e-3)
	assert.InDelta(t, 1.5, s.Mean, 1e-3)
	assert.InDelta(t, 1, s.Median, 1e-3)
	assert.InDelta(t, 4, s.P99, 1e-3)

	want := math.Exp((math.Log(1e-6) + 2*math.Log(1+1e-6) + math.Log(4+1e-6)) / 4)
	assert.InDelta(t, want, s.LogAverage, 1e-4)
	assert.Contains(t, s.String(), "pixels=4")
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(&radiance.RadianceImage{})
	assert.Equal(t, Summary{}, s)
}
