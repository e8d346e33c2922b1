/*
Package borland decodes stroke fonts in the BGI (Borland Graphics Interface)
.CHR container format.

A .CHR file carries a prefix header (file signature, a ^Z-terminated
description line, the header length and a short font name), followed at the
header boundary by the stroke-font section: a '+' signature, the character
count and first character code, three font metric bytes, a per-character
offset table, a per-character width table, and finally the packed stroke
records. Stroke records are sequences of two-byte packed coordinates, each
holding a 2-bit opcode and 7-bit two's-complement x/y values; an all-zero
opcode terminates the glyph.

Format reference: https://www.fileformat.info/format/borland-chr/corion.htm
*/
package borland

import (
	"bytes"

	"github.com/npillmayer/vectext/core/font"
)

// Format names the container in FormatErrors raised by this package.
const Format = "Borland CHR"

// fileSignature starts every BGI stroke font file.
var fileSignature = []byte{'P', 'K', 0x08, 0x08, 'B', 'G', 'I', ' '}

// strokeSignature starts the stroke-font section.
const strokeSignature = '+'

// descTerminator ends the description line (MS-DOS ^Z).
const descTerminator = 0x1A

// Stroke record opcodes, packed into the top bits of a coordinate pair.
const (
	opEnd  = 0x0 // end of character definition
	opScan = 0x1 // "do scan" fill command; unused by vector devices
	opMove = 0x2 // reposition pen
	opDraw = 0x3 // draw from current position
)

// Font is a decoded .CHR stroke font. It implements font.Table.
type Font struct {
	name    string // 4-character short name from the header
	desc    string // description line from the file prefix
	ascent  int32  // origin to top of capital letters
	base    int32  // origin to baseline
	descent int32  // origin to bottom of descenders, negative
	glyphs  map[rune]font.Glyph
	metrics font.Metrics
}

// Decode eagerly parses a .CHR font container. It validates the file
// signature first and fails with a font.FormatError—carrying the offending
// byte offset—on any malformed header, out-of-bounds offset, or stroke
// record lacking its terminator. No partially decoded font is ever
// returned.
//
// Glyph coordinates are kept in the container's design units; .CHR files
// are natively y-up with the origin on the baseline, which is the shared
// convention of package font.
func Decode(data []byte) (*Font, error) {
	s := &segm{b: data}
	if len(data) < len(fileSignature) || !bytes.Equal(data[:len(fileSignature)], fileSignature) {
		return nil, font.ErrFormat(Format, 0, "missing BGI file signature")
	}
	s.pos = len(fileSignature)
	desc, err := s.until(descTerminator)
	if err != nil {
		return nil, font.ErrFormat(Format, s.pos, "unterminated description line")
	}
	headerLen, err := s.u16()
	if err != nil {
		return nil, err
	}
	nameBytes, err := s.read(4)
	if err != nil {
		return nil, err
	}
	if _, err = s.u16(); err != nil { // declared file size, unused
		return nil, err
	}
	if _, err = s.read(2); err != nil { // driver major/minor version
		return nil, err
	}
	marker, err := s.u16()
	if err != nil {
		return nil, err
	}
	if marker != 0x0001 {
		return nil, font.ErrFormat(Format, s.pos-2, "bad header end marker 0x%04x", marker)
	}
	f := &Font{
		name: string(nameBytes),
		desc: string(desc),
	}
	tracer().Debugf("CHR font %q: %s", f.name, f.desc)

	// The stroke-font section starts at the declared header length.
	if err = s.seek(int(headerLen)); err != nil {
		return nil, err
	}
	sig, err := s.u8()
	if err != nil {
		return nil, err
	}
	if sig != strokeSignature {
		return nil, font.ErrFormat(Format, s.pos-1, "missing stroke section signature '+'")
	}
	numChars, err := s.u16()
	if err != nil {
		return nil, err
	}
	if err = s.skip(1); err != nil { // undefined
		return nil, err
	}
	firstChar, err := s.u8()
	if err != nil {
		return nil, err
	}
	if _, err = s.u16(); err != nil { // offset to stroke definitions, redundant
		return nil, err
	}
	if err = s.skip(1); err != nil { // scan flag
		return nil, err
	}
	metricBytes, err := s.read(3)
	if err != nil {
		return nil, err
	}
	f.ascent = int32(int8(metricBytes[0]))
	f.base = int32(int8(metricBytes[1]))
	f.descent = int32(int8(metricBytes[2]))
	if err = s.skip(5); err != nil { // short name repeat (or nulls) + padding
		return nil, err
	}
	tracer().Debugf("CHR font %q: %d characters from %d, ascent %d, descent %d",
		f.name, numChars, firstChar, f.ascent, f.descent)

	offsets := make([]int, numChars)
	for i := range offsets {
		off, err := s.u16()
		if err != nil {
			return nil, err
		}
		offsets[i] = int(off)
	}
	widths, err := s.read(int(numChars))
	if err != nil {
		return nil, err
	}
	dataStart := s.pos

	f.glyphs = make(map[rune]font.Glyph, numChars)
	for i := 0; i < int(numChars); i++ {
		start := dataStart + offsets[i]
		if err = s.seek(start); err != nil {
			return nil, font.ErrFormat(Format, start, "stroke offset of character %d outside buffer", i)
		}
		strokes, err := s.strokes()
		if err != nil {
			return nil, err
		}
		f.glyphs[rune(int(firstChar)+i)] = font.Glyph{
			Strokes: strokes,
			Advance: int32(widths[i]),
		}
	}
	f.metrics = deriveMetrics(f)
	return f, nil
}

// Glyph looks up the stroke definition for r.
func (f *Font) Glyph(r rune) (font.Glyph, bool) {
	g, ok := f.glyphs[r]
	return g, ok
}

// Metrics returns layout defaults derived from the container's header
// metric bytes.
func (f *Font) Metrics() font.Metrics {
	return f.metrics
}

// Name returns the 4-character short font name from the header.
func (f *Font) Name() string {
	return f.name
}

// Description returns the description line from the file prefix, usually
// a copyright notice.
func (f *Font) Description() string {
	return f.desc
}

// deriveMetrics computes layout defaults from the header metrics: line
// height is the ascent-to-descender band plus 25% leading; whitespace
// width prefers the container's own space character.
func deriveMetrics(f *Font) font.Metrics {
	band := f.ascent - f.descent
	if band <= 0 {
		band = 1
	}
	m := font.Metrics{LineHeight: band + band/4}
	if sp, ok := f.glyphs[' ']; ok && sp.Advance > 0 {
		m.WhitespaceWidth = sp.Advance
	} else {
		m.WhitespaceWidth = max32(1, f.ascent/2)
	}
	m.MissingAdvance = m.WhitespaceWidth
	return m
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
