/*
Package hershey decodes vector fonts in the classic Hershey ASCII
interchange format (.jhf), as distributed by Paul Bourke's compilation:
https://paulbourke.net/dataformats/hershey/

Each record describes one glyph: a 5-column numeric glyph index, a 3-column
vertex count, a left/right extent pair, and then vertex-count-1 coordinate
pairs. Every coordinate is a single ASCII character holding an offset from
the base letter 'R'; the reserved pair " R" lifts the pen for the following
vertex. Records longer than 72 columns continue on the next line.

A glyph's numeric index is not its character code. The raw Hershey data is
a superset of glyphs; a typeface exposes a subset of them, remapped to
character codes by a fixed per-typeface Charmap (the .hmp convention:
consecutive codepoints from 32 upward are assigned ranges of glyph
indices).
*/
package hershey

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/vectext/core/font"
)

// tracer writes to trace with key 'vectext.fonts'
func tracer() tracing.Trace {
	return tracing.Select("vectext.fonts")
}

// Format names the container in FormatErrors raised by this package.
const Format = "Hershey JHF"

// baseLetter is the ordinal anchor of Hershey coordinates.
const baseLetter = 'R'

// recordWidth is the column limit of the interchange format; a record
// filling the full width continues on the next line.
const recordWidth = 72

// maxIndex bounds the occidental glyph numbering; records above it are
// outside the classical set and are ignored.
const maxIndex = 4000

// Font is a decoded Hershey typeface: the raw glyph set filtered and
// remapped through a Charmap. It implements font.Table.
type Font struct {
	charmap Charmap
	glyphs  map[rune]font.Glyph
	metrics font.Metrics
}

// Decode eagerly parses .jhf glyph records and resolves them through the
// given per-typeface charmap. Any record whose declared vertex count
// mismatches its coordinate pairs, or which carries a malformed pen-up
// sentinel or an out-of-range coordinate, fails the whole decode with a
// font.FormatError carrying the record's line number. No partially
// decoded font is ever returned.
func Decode(data []byte, cm Charmap) (*Font, error) {
	raw, err := parse(data)
	if err != nil {
		return nil, err
	}
	f := &Font{
		charmap: cm,
		glyphs:  cm.apply(raw),
	}
	tracer().Debugf("hershey charmap %q maps %d of %d raw glyphs", cm.name, len(f.glyphs), len(raw))
	f.metrics = deriveMetrics(f)
	return f, nil
}

// Glyph looks up the stroke definition for r.
func (f *Font) Glyph(r rune) (font.Glyph, bool) {
	g, ok := f.glyphs[r]
	return g, ok
}

// Metrics returns the typeface's layout defaults.
func (f *Font) Metrics() font.Metrics {
	return f.metrics
}

// Charmap returns the per-typeface index→character mapping the font was
// decoded with.
func (f *Font) Charmap() Charmap {
	return f.charmap
}

// parse reads all glyph records into an index-keyed table.
func parse(data []byte) (map[int]font.Glyph, error) {
	raw := make(map[int]font.Glyph)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		record := line
		recordLine := lineno
		// full-width records continue on the following line(s)
		for len(line) == recordWidth && scanner.Scan() {
			lineno++
			line = scanner.Text()
			record += line
		}
		idx, glyph, err := parseRecord(record, recordLine)
		if err != nil {
			return nil, err
		}
		if idx >= maxIndex {
			tracer().Infof("hershey glyph index %d outside occidental set, ignored", idx)
			continue
		}
		raw[idx] = glyph
	}
	if err := scanner.Err(); err != nil {
		return nil, font.ErrFormat(Format, lineno, "read error: %v", err)
	}
	return raw, nil
}

// parseRecord decodes one reassembled glyph record.
func parseRecord(record string, lineno int) (int, font.Glyph, error) {
	if len(record) < 10 {
		return 0, font.Glyph{}, font.ErrFormat(Format, lineno, "record too short (%d columns)", len(record))
	}
	idx, err := strconv.Atoi(strings.TrimSpace(record[0:5]))
	if err != nil || idx <= 0 {
		return 0, font.Glyph{}, font.ErrFormat(Format, lineno, "bad glyph index %q", record[0:5])
	}
	count, err := strconv.Atoi(strings.TrimSpace(record[5:8]))
	if err != nil || count < 1 {
		return 0, font.Glyph{}, font.ErrFormat(Format, lineno, "bad vertex count %q", record[5:8])
	}
	coords := record[8:]
	// the vertex count includes the extent pair
	if len(coords) != 2*count {
		return 0, font.Glyph{}, font.ErrFormat(Format, lineno,
			"vertex count %d mismatches %d coordinate columns", count, len(coords))
	}
	left := int32(coords[0]) - baseLetter
	right := int32(coords[1]) - baseLetter
	if right < left {
		return 0, font.Glyph{}, font.ErrFormat(Format, lineno, "reversed extents %d..%d", left, right)
	}
	var strokes []font.PenCommand
	penUp := true
	for i := 2; i+1 < len(coords); i += 2 {
		xc, yc := coords[i], coords[i+1]
		if xc == ' ' {
			if yc != baseLetter {
				return 0, font.Glyph{}, font.ErrFormat(Format, lineno,
					"malformed pen-up sentinel %q", coords[i:i+2])
			}
			penUp = true
			continue
		}
		if xc < '!' || xc > '~' || yc < '!' || yc > '~' {
			return 0, font.Glyph{}, font.ErrFormat(Format, lineno,
				"coordinate pair %q out of range", coords[i:i+2])
		}
		pt := font.Point{
			X: int32(xc) - baseLetter - left, // left edge to x=0
			Y: baseLetter - int32(yc),        // raw data is y-down
		}
		op := font.LineTo
		if penUp {
			op = font.MoveTo
			penUp = false
		}
		strokes = append(strokes, font.PenCommand{Op: op, To: pt})
	}
	return idx, font.Glyph{Strokes: strokes, Advance: right - left}, nil
}

// deriveMetrics computes layout defaults: the classical Hershey design
// band is -16..+16 around the baseline row, so the default line height is
// 32; whitespace width prefers the typeface's own mapped space glyph.
func deriveMetrics(f *Font) font.Metrics {
	m := font.Metrics{LineHeight: 32}
	if sp, ok := f.glyphs[' ']; ok && sp.Advance > 0 {
		m.WhitespaceWidth = sp.Advance
	} else {
		m.WhitespaceWidth = 16
	}
	m.MissingAdvance = m.WhitespaceWidth
	return m
}
