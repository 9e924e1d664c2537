package radiance

import (
	"fmt"
)

// A FormatError reports that the input is not a Radiance image.
type FormatError string

func (e FormatError) Error() string {
	return fmt.Sprintf("radiance: invalid format: %s", string(e))
}

// An UnsupportedFormatError reports a missing FORMAT variable or a pixel
// format other than FormatRGBE.
type UnsupportedFormatError struct {
	Value string // Empty when the FORMAT variable is missing.
}

func (e *UnsupportedFormatError) Error() string {
	if e.Value == "" {
		return "radiance: unsupported pixel format: FORMAT variable missing"
	}
	return fmt.Sprintf("radiance: unsupported pixel format: %q", e.Value)
}

// A ResolutionError reports an unparsable resolution line.
type ResolutionError struct {
	Line   string
	Reason string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("radiance: invalid resolution %q: %s", e.Line, e.Reason)
}

// A ScanlineMarkerError reports a new-format scanline whose declared width
// disagrees with the header.
type ScanlineMarkerError struct {
	Row      int
	Declared int
	Expected int
}

func (e *ScanlineMarkerError) Error() string {
	return fmt.Sprintf("radiance: scanline width mismatch at row %d: %d != %d", e.Row, e.Declared, e.Expected)
}

// A DecodeError reports corrupted or truncated scanline data.
type DecodeError struct {
	Row    int
	Plane  int // Component plane (0..3), or -1 for a flat scanline.
	Offset int // Byte offset in the input where decoding stopped.
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("radiance: decode error at row %d, plane %s, offset %d: %s", e.Row, planeName(e.Plane), e.Offset, e.Reason)
}

func planeName(p int) string {
	if p < 0 || p >= len(planeNames) {
		return "flat"
	}
	return planeNames[p]
}

// minInt returns the smaller of x or y.
func minInt(a, b int) int {
	if a <= b {
		return a
	}
	return b
}
