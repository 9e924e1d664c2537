package radiance

// A Radiance file starts with a text header made of
//
//  - a magic line identifying the format family,
//  - a block of KEY=VALUE variables terminated by an empty line,
//  - a resolution line giving the axis order and the image extents.
//
// The pixels follow as one scanline per row, each either run-length encoded
// per component plane ("new format") or stored as flat 4-byte RGBE pixels.

const (
	radianceHeader = "#?RADIANCE" // Magic of files written by Radiance.
	rgbeHeader     = "#?RGBE"     // Magic of files written by the original RGBE tools.

	// FormatRGBE is the only pixel format accepted in the FORMAT variable.
	FormatRGBE = "32-bit_rle_rgbe"

	vFormat   = "FORMAT"
	vExposure = "EXPOSURE"
)

// Variant identifies the header magic of the file.
type Variant int

const (
	VariantRadiance Variant = iota // #?RADIANCE
	VariantRGBE                    // #?RGBE
)

func (v Variant) String() string {
	switch v {
	case VariantRadiance:
		return "RADIANCE"
	case VariantRGBE:
		return "RGBE"
	default:
		return "unknown"
	}
}

// Scanline layout.
const (
	markerLen       = 4   // 2, 2, width high byte, width low byte.
	markerByte      = 2   // Value of the two leading marker bytes.
	runFlag         = 128 // Control bytes above this value encode a run.
	bytesPerPixel   = 4   // R, G, B and the shared exponent.
	samplesPerPixel = 3

	// Exponent bias plus the 8 bits of mantissa: 2^(e-128)/256 == 2^(e-136).
	exponentOffset = 128 + 8
)

// Component planes, in the order they are stored in a new-format scanline.
const (
	planeR = iota
	planeG
	planeB
	planeE
	planeFlat = -1 // Used in errors raised while reading a flat scanline.
)

var planeNames = [...]string{"R", "G", "B", "E"}
