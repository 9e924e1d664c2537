package radiance_test

import (
	"math"
	"testing"

	radiance "github.com/siddhutedla/HDR-Video"
	"github.com/stretchr/testify/assert"
)

func TestFilmic(t *testing.T) {
	assert.Equal(t, float64(0), radiance.Filmic(0))
	assert.InDelta(t, 0.8037974683544302, radiance.Filmic(1), 1e-12)

	prev := radiance.Filmic(0)
	for i := 1; i <= 10000; i++ {
		v := radiance.Filmic(float64(i) / 1000)
		assert.GreaterOrEqual(t, v, prev, "x=%v", float64(i)/1000)
		prev = v
	}
}

func TestDisplayValue(t *testing.T) {
	tests := []struct {
		x    float32
		want uint8
	}{
		{x: 0, want: 0},
		{x: 0.18, want: 139},
		{x: 0.5, want: 204},
		{x: 1, want: 230},
		{x: 2, want: 244},
		{x: 10, want: 255},
		{x: 1e30, want: 255},
		{x: float32(math.Inf(1)), want: 255},
		{x: -1, want: 0},
		{x: float32(math.Inf(-1)), want: 0},
		{x: float32(math.NaN()), want: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, radiance.DisplayValue(tt.x), "x=%v", tt.x)
	}
}

func TestToneMap(t *testing.T) {
	m := &radiance.RadianceImage{
		Width:  2,
		Height: 2,
		Pix: []float32{
			0, 0.18, 1,
			2, 10, float32(math.NaN()),
			-3, 0.5, 0.5,
			1, 1, 1,
		},
	}

	dm := radiance.ToneMap(m, func(o *radiance.Options) { o.Workers = 2 })
	assert.Equal(t, 2, dm.Width)
	assert.Equal(t, 2, dm.Height)
	assert.Equal(t, []uint8{
		0, 139, 230, 255,
		244, 255, 0, 255,
		0, 204, 204, 255,
		230, 230, 230, 255,
	}, dm.Pix)
}

func TestToneMapExposure(t *testing.T) {
	m := &radiance.RadianceImage{Width: 1, Height: 1, Pix: []float32{0.25, 0.5, 1}}

	dm := radiance.ToneMap(m, func(o *radiance.Options) { o.Exposure = 2 })
	assert.Equal(t, []uint8{204, 230, 244, 255}, dm.Pix)

	// Zero falls back to 1.
	dm = radiance.ToneMap(m, func(o *radiance.Options) { o.Exposure = 0 })
	assert.Equal(t, radiance.DisplayValue(0.25), dm.Pix[0])
}

func TestToneMapAlpha(t *testing.T) {
	m := &radiance.RadianceImage{Width: 3, Height: 5, Pix: make([]float32, 3*5*3)}
	dm := radiance.ToneMap(m)
	assert.Len(t, dm.Pix, 3*5*4)
	for i := 3; i < len(dm.Pix); i += 4 {
		assert.Equal(t, uint8(255), dm.Pix[i])
	}
}
