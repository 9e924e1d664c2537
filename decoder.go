package radiance

import (
	"fmt"
)

// maxPixels bounds the allocation made from the header before any scanline
// has been read.
const maxPixels = 1 << 28

type decoder struct {
	header Header

	buf []byte
	off int // Current offset in buf.

	planes [bytesPerPixel][]byte // Component planes of the current row.
	raw    []byte                // Interleaved RGBE bytes, row-major.
}

func newDecoder(data []byte) (*decoder, error) {
	h, off, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}
	if h.Width > maxPixels/h.Height {
		return nil, FormatError(fmt.Sprintf("image too large: %dx%d", h.Width, h.Height))
	}

	d := &decoder{
		header: h,
		buf:    data,
		off:    off,
	}
	return d, nil
}

// remaining returns the number of unread bytes.
func (d *decoder) remaining() int {
	return len(d.buf) - d.off
}

// readByte reads one byte, reporting false when the input is exhausted.
func (d *decoder) readByte() (byte, bool) {
	if d.off >= len(d.buf) {
		return 0, false
	}
	b := d.buf[d.off]
	d.off++
	return b, true
}

// next returns the next n bytes and advances past them.
func (d *decoder) next(n int) ([]byte, bool) {
	if d.remaining() < n {
		return nil, false
	}
	p := d.buf[d.off : d.off+n]
	d.off += n
	return p, true
}

func (d *decoder) errorf(row, plane, offset int, format string, args ...interface{}) error {
	return &DecodeError{
		Row:    row,
		Plane:  plane,
		Offset: offset,
		Reason: fmt.Sprintf(format, args...),
	}
}
