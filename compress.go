package radiance

import (
	"encoding/binary"
)

// decodeScanlines expands every row of the image into d.raw.
// Rows are variable-length so they are decoded strictly in order.
func (d *decoder) decodeScanlines() error {
	width := d.header.Width
	stride := width * bytesPerPixel

	d.raw = make([]byte, stride*d.header.Height)
	for i := range d.planes {
		d.planes[i] = make([]byte, width)
	}

	for y := 0; y < d.header.Height; y++ {
		row := d.raw[y*stride : (y+1)*stride]

		rle, err := d.readMarker(y)
		if err != nil {
			return err
		}
		if !rle {
			if err = d.readFlat(y, row); err != nil {
				return err
			}
			continue
		}

		if err = d.unRLE(y); err != nil {
			return err
		}
		// Planar/separate to interleaved/contiguous.
		for x := 0; x < width; x++ {
			row[x*bytesPerPixel+planeR] = d.planes[planeR][x]
			row[x*bytesPerPixel+planeG] = d.planes[planeG][x]
			row[x*bytesPerPixel+planeB] = d.planes[planeB][x]
			row[x*bytesPerPixel+planeE] = d.planes[planeE][x]
		}
	}

	return nil
}

// readMarker consumes the new-format marker of a row when there is one.
// The marker is 2, 2 then the scanline width as a big-endian uint16;
// anything else is the first pixel of a flat row.
func (d *decoder) readMarker(row int) (bool, error) {
	if d.remaining() < markerLen {
		return false, nil
	}
	p := d.buf[d.off : d.off+markerLen]
	if p[0] != markerByte || p[1] != markerByte {
		return false, nil
	}

	declared := int(binary.BigEndian.Uint16(p[2:4]))
	if declared != d.header.Width {
		return false, &ScanlineMarkerError{
			Row:      row,
			Declared: declared,
			Expected: d.header.Width,
		}
	}
	d.off += markerLen
	return true, nil
}

// readFlat copies a row of packed 4-byte RGBE pixels.
func (d *decoder) readFlat(row int, dst []byte) error {
	start := d.off
	p, ok := d.next(len(dst))
	if !ok {
		return d.errorf(row, planeFlat, start, "truncated flat scanline: need %d bytes, have %d", len(dst), d.remaining())
	}
	copy(dst, p)
	return nil
}

// unRLE decodes the four run-length encoded component planes of a row.
// Each plane is a sequence of control bytes: above 128 a run of the next byte
// repeated (control-128) times, otherwise a literal span of control bytes.
func (d *decoder) unRLE(row int) error {
	width := d.header.Width

	for plane := range d.planes {
		dst := d.planes[plane]

		for x := 0; x < width; {
			start := d.off
			b, ok := d.readByte()
			if !ok {
				return d.errorf(row, plane, start, "unexpected end of data at column %d", x)
			}

			if b > runFlag {
				// a run of the same value
				n := int(b) - runFlag
				if x+n > width {
					return d.errorf(row, plane, start, "run of %d at column %d overflows width %d", n, x, width)
				}
				v, ok := d.readByte()
				if !ok {
					return d.errorf(row, plane, start, "truncated run at column %d", x)
				}
				for end := x + n; x < end; x++ {
					dst[x] = v
				}
				continue
			}

			// a non-run, copy data
			n := int(b)
			if n == 0 {
				return d.errorf(row, plane, start, "empty literal span at column %d", x)
			}
			if x+n > width {
				return d.errorf(row, plane, start, "literal of %d at column %d overflows width %d", n, x, width)
			}
			p, ok := d.next(n)
			if !ok {
				return d.errorf(row, plane, start, "truncated literal of %d at column %d", n, x)
			}
			x += copy(dst[x:x+n], p)
		}
	}

	return nil
}
