package radiance

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

//------------------------//
// Header parser          //
//------------------------//

// Header is the validated text header of a Radiance file.
type Header struct {
	Variant     Variant
	PixelFormat string
	Width       int
	Height      int
	Orientation Orientation
	Variables   []Variable // Every KEY=VALUE line, in file order.
}

// Orientation records the resolution line axis signs and order.
// Pixels are always laid out top-to-bottom, left-to-right regardless of it.
type Orientation struct {
	XSign  byte // '+', '-' or 0 when the token carries no sign.
	YSign  byte
	XMajor bool // The X token comes first.
}

// Standard reports whether o is the conventional "-Y N +X M" orientation.
func (o Orientation) Standard() bool {
	return !o.XMajor && o.YSign == '-' && o.XSign == '+'
}

func (o Orientation) String() string {
	x := axisToken(o.XSign, 'X')
	y := axisToken(o.YSign, 'Y')
	if o.XMajor {
		return x + " " + y
	}
	return y + " " + x
}

func axisToken(sign, axis byte) string {
	if sign == 0 {
		return string(axis)
	}
	return string([]byte{sign, axis})
}

// Lookup returns the value of the last variable named key.
func (h Header) Lookup(key string) (string, bool) {
	for i := len(h.Variables) - 1; i >= 0; i-- {
		if h.Variables[i].Key == key {
			return h.Variables[i].Value, true
		}
	}
	return "", false
}

// Exposure returns the product of all EXPOSURE variables, or 1.
// Values that do not parse are skipped.
func (h Header) Exposure() float64 {
	exposure := 1.0
	for _, v := range h.Variables {
		if v.Key != vExposure {
			continue
		}
		if f, err := v.Float(); err == nil && f > 0 {
			exposure *= f
		}
	}
	return exposure
}

type parserState int

const (
	stateMagic parserState = iota
	stateVariables
	stateResolution
	stateDone
	stateFailed
)

type headerParser struct {
	buf   []byte
	off   int // Current offset in buf.
	state parserState
	err   error

	h         Header
	hasFormat bool
}

// ParseHeader parses the text header at the start of data. It returns the
// header and the offset of the first scanline byte.
func ParseHeader(data []byte) (Header, int, error) {
	p := &headerParser{
		buf:   data,
		state: stateMagic,
	}
	for p.state != stateDone {
		if p.state == stateFailed {
			return Header{}, 0, p.err
		}
		p.step()
	}
	return p.h, p.off, nil
}

func (p *headerParser) fail(err error) {
	p.state = stateFailed
	p.err = err
}

func (p *headerParser) step() {
	switch p.state {
	case stateMagic:
		line, ok := p.readLine()
		if !ok {
			p.fail(FormatError("missing magic line"))
			return
		}
		switch {
		case strings.HasPrefix(line, radianceHeader):
			p.h.Variant = VariantRadiance
		case strings.HasPrefix(line, rgbeHeader):
			p.h.Variant = VariantRGBE
		default:
			p.fail(FormatError("malformed header"))
			return
		}
		p.state = stateVariables
	case stateVariables:
		line, ok := p.readLine()
		if !ok {
			p.fail(FormatError("header not terminated"))
			return
		}
		if line != "" {
			p.parseVariable(line)
			return
		}
		// End of the variable block.
		if !p.hasFormat {
			p.fail(&UnsupportedFormatError{})
			return
		}
		if p.h.PixelFormat != FormatRGBE {
			p.fail(&UnsupportedFormatError{Value: p.h.PixelFormat})
			return
		}
		p.state = stateResolution
	case stateResolution:
		line, ok := p.readLine()
		if !ok {
			p.fail(&ResolutionError{Line: line, Reason: "missing resolution line"})
			return
		}
		if err := p.parseResolution(line); err != nil {
			p.fail(err)
			return
		}
		p.state = stateDone
	}
}

// readLine returns the next newline-terminated line, trimmed.
// It reports false when no terminator is left; the partial line is returned.
func (p *headerParser) readLine() (string, bool) {
	rest := p.buf[p.off:]
	i := bytes.IndexByte(rest, '\n')
	if i < 0 {
		return strings.TrimSpace(string(rest)), false
	}
	p.off += i + 1
	return strings.TrimSpace(string(rest[:i])), true
}

func (p *headerParser) parseVariable(line string) {
	if strings.HasPrefix(line, "#") {
		return // Comment.
	}
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return
	}
	v := Variable{
		Key:   strings.TrimSpace(key),
		Value: strings.TrimSpace(value),
	}
	p.h.Variables = append(p.h.Variables, v)
	if v.Key == vFormat {
		p.hasFormat = true
		p.h.PixelFormat = v.Value
	}
}

// parseResolution reads a line such as "-Y 512 +X 768". The two axis
// tokens may appear in either order.
func (p *headerParser) parseResolution(line string) error {
	tokens := strings.Fields(line)
	if len(tokens) != 4 {
		return &ResolutionError{Line: line, Reason: "expected two axis/extent pairs"}
	}

	var o Orientation
	var width, height int
	for i := 0; i < len(tokens); i += 2 {
		sign, axis, ok := parseAxis(tokens[i])
		if !ok {
			return &ResolutionError{Line: line, Reason: fmt.Sprintf("unknown axis %q", tokens[i])}
		}
		n, err := strconv.Atoi(tokens[i+1])
		if err != nil || n <= 0 {
			return &ResolutionError{Line: line, Reason: fmt.Sprintf("invalid extent %q", tokens[i+1])}
		}

		switch axis {
		case 'X':
			if width != 0 {
				return &ResolutionError{Line: line, Reason: "duplicate X axis"}
			}
			width = n
			o.XSign = sign
			o.XMajor = i == 0
		case 'Y':
			if height != 0 {
				return &ResolutionError{Line: line, Reason: "duplicate Y axis"}
			}
			height = n
			o.YSign = sign
		}
	}

	p.h.Width = width
	p.h.Height = height
	p.h.Orientation = o
	return nil
}

func parseAxis(token string) (sign, axis byte, ok bool) {
	if token == "" {
		return 0, 0, false
	}
	if token[0] == '+' || token[0] == '-' {
		sign = token[0]
		token = token[1:]
	}
	if len(token) != 1 {
		return 0, 0, false
	}
	switch axis = token[0] &^ 0x20; axis { // Upper case.
	case 'X', 'Y':
		return sign, axis, true
	}
	return 0, 0, false
}

func (h Header) String() string {
	buf := bytes.NewBufferString("")
	buf.WriteString(fmt.Sprintf("== %s ==\n", h.Variant))
	for _, v := range h.Variables {
		buf.WriteString(fmt.Sprintf("%v\n", v))
	}
	buf.WriteString(fmt.Sprintf("Orientation: %v\n", h.Orientation))
	buf.WriteString(fmt.Sprintf("Bounds: %dx%d\n", h.Width, h.Height))
	return buf.String()
}
