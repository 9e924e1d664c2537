package radiance_test

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/mdouchement/hdr/hdrcolor"
	radiance "github.com/siddhutedla/HDR-Video"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeader(t *testing.T) {
	data := []byte("#?RADIANCE\n# Made by hand\nSOFTWARE=test\nFORMAT=32-bit_rle_rgbe\nEXPOSURE=2\nEXPOSURE= 0.5 \n\n-Y 2 +X 3\nPIXELS")

	h, off, err := radiance.ParseHeader(data)
	require.NoError(t, err)

	assert.Equal(t, radiance.VariantRadiance, h.Variant)
	assert.Equal(t, radiance.FormatRGBE, h.PixelFormat)
	assert.Equal(t, 3, h.Width)
	assert.Equal(t, 2, h.Height)
	assert.True(t, h.Orientation.Standard())
	assert.Equal(t, "-Y +X", h.Orientation.String())
	assert.Equal(t, "PIXELS", string(data[off:]))

	assert.Len(t, h.Variables, 4)
	v, ok := h.Lookup("SOFTWARE")
	assert.True(t, ok)
	assert.Equal(t, "test", v)
	assert.Equal(t, float64(1), h.Exposure())
}

func TestParseHeaderVariants(t *testing.T) {
	tests := []struct {
		magic   string
		variant radiance.Variant
	}{
		{magic: "#?RADIANCE", variant: radiance.VariantRadiance},
		{magic: "#?RGBE", variant: radiance.VariantRGBE},
		{magic: "  #?RADIANCE\r", variant: radiance.VariantRadiance},
	}

	for _, tt := range tests {
		t.Run(tt.magic, func(t *testing.T) {
			h, _, err := radiance.ParseHeader([]byte(tt.magic + "\nFORMAT=32-bit_rle_rgbe\n\n-Y 1 +X 1\n"))
			require.NoError(t, err)
			assert.Equal(t, tt.variant, h.Variant)
		})
	}
}

func TestParseHeaderResolutionOrder(t *testing.T) {
	for _, line := range []string{"-Y 2 +X 3", "+X 3 -Y 2", "+Y 2 -X 3", "Y 2 X 3", "-y 2 +x 3"} {
		t.Run(line, func(t *testing.T) {
			h, _, err := radiance.ParseHeader([]byte("#?RADIANCE\nFORMAT=32-bit_rle_rgbe\n\n" + line + "\n"))
			require.NoError(t, err)
			assert.Equal(t, 3, h.Width)
			assert.Equal(t, 2, h.Height)
		})
	}

	h, _, err := radiance.ParseHeader([]byte("#?RADIANCE\nFORMAT=32-bit_rle_rgbe\n\n+X 3 -Y 2\n"))
	require.NoError(t, err)
	assert.True(t, h.Orientation.XMajor)
	assert.False(t, h.Orientation.Standard())
	assert.Equal(t, "+X -Y", h.Orientation.String())
}

func TestParseHeaderFormatError(t *testing.T) {
	for _, data := range []string{"NOTRAD", "NOTRAD\nFORMAT=32-bit_rle_rgbe\n\n-Y 1 +X 1\n", "", "#?RADIANCE\nFORMAT=32-bit_rle_rgbe\n"} {
		_, _, err := radiance.ParseHeader([]byte(data))
		var ferr radiance.FormatError
		assert.ErrorAs(t, err, &ferr, "%q", data)
	}
}

func TestParseHeaderUnsupportedFormat(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		value string
	}{
		{name: "missing", data: "#?RADIANCE\nSOFTWARE=x\n\n-Y 1 +X 1\n", value: ""},
		{name: "xyze", data: "#?RADIANCE\nFORMAT=32-bit_rle_xyze\n\n-Y 1 +X 1\n", value: "32-bit_rle_xyze"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := radiance.ParseHeader([]byte(tt.data))
			var uerr *radiance.UnsupportedFormatError
			require.ErrorAs(t, err, &uerr)
			assert.Equal(t, tt.value, uerr.Value)
		})
	}
}

func TestParseHeaderResolutionError(t *testing.T) {
	for _, line := range []string{"-Y 2", "-Y 2 +Y 3", "-X 2 +X 3", "-Y 0 +X 3", "-Y -2 +X 3", "-Y two +X 3", "-Z 2 +X 3", "-Y 2 +X 3 4"} {
		t.Run(line, func(t *testing.T) {
			_, _, err := radiance.ParseHeader([]byte("#?RADIANCE\nFORMAT=32-bit_rle_rgbe\n\n" + line + "\n"))
			var rerr *radiance.ResolutionError
			require.ErrorAs(t, err, &rerr)
			assert.Equal(t, line, rerr.Line)
		})
	}

	// Unterminated resolution line.
	_, _, err := radiance.ParseHeader([]byte("#?RADIANCE\nFORMAT=32-bit_rle_rgbe\n\n-Y 2 +X 3"))
	var rerr *radiance.ResolutionError
	assert.ErrorAs(t, err, &rerr)
}

func TestDecodeConfig(t *testing.T) {
	cfg, err := radiance.DecodeConfig(bytes.NewReader([]byte("#?RGBE\nFORMAT=32-bit_rle_rgbe\n\n-Y 7 +X 5\n")))
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Width)
	assert.Equal(t, 7, cfg.Height)
	assert.Equal(t, color.Model(hdrcolor.RGBModel), cfg.ColorModel)

	_, err = radiance.DecodeConfig(bytes.NewReader([]byte("NOTRAD\n")))
	assert.Error(t, err)
}

func TestVariable(t *testing.T) {
	v := radiance.Variable{Key: "EXPOSURE", Value: "0.25"}
	f, err := v.Float()
	assert.NoError(t, err)
	assert.Equal(t, 0.25, f)
	assert.Equal(t, "EXPOSURE: 0.25", v.String())

	h, _, err := radiance.ParseHeader([]byte("#?RADIANCE\nFORMAT=32-bit_rle_rgbe\nEXPOSURE=4\nEXPOSURE=bogus\nEXPOSURE=0.5\n\n-Y 1 +X 1\n"))
	require.NoError(t, err)
	assert.Equal(t, 2.0, h.Exposure())
}
