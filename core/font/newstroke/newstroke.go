/*
Package newstroke exposes a compact, compiled-in stroke glyph table in the
manner of the NewStroke font (originally created for KiCAD, see
https://vovanium.ru/sledy/newstroke/en).

Unlike the Borland and Hershey packages, this table needs no container
bytes and cannot fail to decode: the glyph definitions are precomputed Go
literals covering printable ASCII. Lookup of an absent character yields no
glyph, not an error.
*/
package newstroke

import (
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/vectext/core/font"
)

// tracer writes to trace with key 'vectext.fonts'
func tracer() tracing.Trace {
	return tracing.Select("vectext.fonts")
}

// Design constants of the glyph grid, in design units (y-up, baseline 0).
const (
	CapHeight      = 21 // top of capital letters
	XHeight        = 14 // top of lowercase letters
	DescenderDepth = 9  // depth of descenders below the baseline
)

// metrics are the table's layout defaults, derived from the grid
// constants above.
var metrics = font.Metrics{
	LineHeight:      2 * CapHeight,
	WhitespaceWidth: 12,
	MissingAdvance:  12,
}

type table struct {
	glyphs map[rune]font.Glyph
}

var (
	buildOnce sync.Once
	builtin   *table
)

// Table returns the compiled-in glyph table. The table is built once and
// shared; it implements font.Table and is safe for concurrent use.
func Table() font.Table {
	buildOnce.Do(build)
	return builtin
}

// Glyph looks up the stroke definition for r.
func (t *table) Glyph(r rune) (font.Glyph, bool) {
	g, ok := t.glyphs[r]
	return g, ok
}

// Metrics returns the table's layout defaults.
func (t *table) Metrics() font.Metrics {
	return metrics
}

// build expands the compact polyline literals into pen commands. The
// first point of every polyline becomes a MoveTo, the remaining points
// LineTo commands.
func build() {
	builtin = &table{glyphs: make(map[rune]font.Glyph, len(glyphdefs))}
	for r, d := range glyphdefs {
		var strokes []font.PenCommand
		for _, line := range d.lines {
			for i, p := range line {
				op := font.LineTo
				if i == 0 {
					op = font.MoveTo
				}
				strokes = append(strokes, font.PenCommand{
					Op: op,
					To: font.Point{X: int32(p[0]), Y: int32(p[1])},
				})
			}
		}
		builtin.glyphs[r] = font.Glyph{Strokes: strokes, Advance: int32(d.adv)}
	}
	tracer().Debugf("newstroke table built with %d glyphs", len(builtin.glyphs))
}
