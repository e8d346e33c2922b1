package borland

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/vectext/core/font"
)

// tracer writes to trace with key 'vectext.fonts'
func tracer() tracing.Trace {
	return tracing.Select("vectext.fonts")
}

// segm is a cursor over a font's binary data. Every read is
// bounds-checked; a failed read produces a font.FormatError carrying the
// current byte offset.
type segm struct {
	b   []byte
	pos int
}

// read returns the next n bytes and advances the cursor.
func (s *segm) read(n int) ([]byte, error) {
	if n < 0 || s.pos+n > len(s.b) {
		return nil, font.ErrFormat(Format, s.pos, "unexpected end of data")
	}
	buf := s.b[s.pos : s.pos+n]
	s.pos += n
	return buf, nil
}

func (s *segm) u8() (byte, error) {
	buf, err := s.read(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// u16 reads a 16-bit little-endian integer ("word" in the format docs).
func (s *segm) u16() (uint16, error) {
	buf, err := s.read(2)
	if err != nil {
		return 0, err
	}
	return uint16(buf[0]) | uint16(buf[1])<<8, nil
}

// until reads up to, and consumes, the next occurrence of delim.
func (s *segm) until(delim byte) ([]byte, error) {
	start := s.pos
	for s.pos < len(s.b) {
		if s.b[s.pos] == delim {
			buf := s.b[start:s.pos]
			s.pos++
			return buf, nil
		}
		s.pos++
	}
	return nil, font.ErrFormat(Format, start, "delimiter 0x%02x not found", delim)
}

func (s *segm) skip(n int) error {
	_, err := s.read(n)
	return err
}

// seek places the cursor at an absolute offset.
func (s *segm) seek(off int) error {
	if off < 0 || off > len(s.b) {
		return font.ErrFormat(Format, off, "offset outside buffer of length %d", len(s.b))
	}
	s.pos = off
	return nil
}

// sign7 interprets the low 7 bits of b as a two's-complement integer.
func sign7(b byte) int32 {
	b &= 0x7F
	if b&0x40 != 0 {
		return int32(int8(b | 0x80)) // sign-extend bit 6
	}
	return int32(b)
}

// strokes decodes packed coordinate pairs at the cursor until the
// terminator opcode. Each pair holds the opcode in the top bits of both
// bytes and 7-bit signed x/y coordinates below.
func (s *segm) strokes() ([]font.PenCommand, error) {
	var path []font.PenCommand
	for {
		buf, err := s.read(2)
		if err != nil {
			return nil, font.ErrFormat(Format, s.pos, "stroke record lacks terminator")
		}
		op := (buf[0]>>7)<<1 | buf[1]>>7
		pt := font.Point{X: sign7(buf[0]), Y: sign7(buf[1])}
		switch op {
		case opEnd:
			return path, nil
		case opScan:
			return nil, font.ErrFormat(Format, s.pos-2, "unsupported scan opcode in stroke record")
		case opMove:
			path = append(path, font.PenCommand{Op: font.MoveTo, To: pt})
		case opDraw:
			path = append(path, font.PenCommand{Op: font.LineTo, To: pt})
		}
	}
}
