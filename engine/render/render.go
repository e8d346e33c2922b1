/*
Package render lays out text as a stroke path for vector drawing devices.

Text renders an input string with a selected stroke font into one ordered
sequence of pen commands in a shared coordinate space. The result is meant
for a downstream renderer that walks the commands and emits pen-up/pen-down
motion—pen plotters, laser displays, XY oscilloscopes. Output coordinates
are 26.6 fixed-point units (golang.org/x/image/math/fixed), y-up with the
first baseline at y=0.

Rendering is a pure function of (text, font, configuration): strokes within
a glyph are never reordered, glyphs appear in input order, and identical
inputs yield identical paths. Devices draw strokes sequentially, so any
reordering would corrupt the drawn text.
*/
package render

import (
	"fmt"
	"math"
	"unicode"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/vectext/core"
	"github.com/npillmayer/vectext/core/font"
	"github.com/npillmayer/vectext/core/font/fontregistry"
	"golang.org/x/image/math/fixed"
)

// tracer writes to trace with key 'vectext.render'
func tracer() tracing.Trace {
	return tracing.Select("vectext.render")
}

// Policy decides how the layout engine treats characters without a glyph
// in the selected font.
type Policy uint8

const (
	// SkipMissing advances the cursor by a default width and continues,
	// so one bad character does not abort a plotting job.
	SkipMissing Policy = iota
	// FailMissing aborts rendering with an UnsupportedCharError.
	FailMissing
)

func (p Policy) String() string {
	switch p {
	case SkipMissing:
		return "skip"
	case FailMissing:
		return "fail"
	}
	return fmt.Sprintf("Policy(%d)", p)
}

// Config holds optional layout parameters. The zero value (and a nil
// *Config) selects all defaults: scale 1.0, metric defaults from the
// font's own table, policy SkipMissing.
type Config struct {
	// Scale multiplies all design-unit values. Must be positive;
	// 0 means 1.0.
	Scale float64
	// LineHeight is the baseline-to-baseline distance in design units;
	// 0 means the font's default.
	LineHeight int32
	// WhitespaceWidth is the advance for whitespace characters in design
	// units; 0 means the font's default.
	WhitespaceWidth int32
	// MissingAdvance is the advance substituted for absent glyphs under
	// SkipMissing, in design units; 0 means the font's default.
	MissingAdvance int32
	// OnMissingGlyph selects the missing-glyph policy.
	OnMissingGlyph Policy
}

// Command is one drawing instruction of a rendered path, in the shared
// output space.
type Command struct {
	Op font.PenOp
	To fixed.Point26_6
}

// Path is the rendered stroke path for an input string: cursor-translated
// pen commands in drawing order.
type Path []Command

// Bounds returns the bounding box of all path coordinates. For an empty
// path ok is false.
func (p Path) Bounds() (min, max fixed.Point26_6, ok bool) {
	if len(p) == 0 {
		return min, max, false
	}
	min, max = p[0].To, p[0].To
	for _, cmd := range p[1:] {
		if cmd.To.X < min.X {
			min.X = cmd.To.X
		}
		if cmd.To.Y < min.Y {
			min.Y = cmd.To.Y
		}
		if cmd.To.X > max.X {
			max.X = cmd.To.X
		}
		if cmd.To.Y > max.Y {
			max.Y = cmd.To.Y
		}
	}
	return min, max, true
}

// UnsupportedCharError reports a character the selected font has no glyph
// for, raised under policy FailMissing.
type UnsupportedCharError struct {
	Char rune
	Pos  int // rune position within the input string
}

func (e *UnsupportedCharError) Error() string {
	return fmt.Sprintf("font lacks glyph for %q at position %d", e.Char, e.Pos)
}

// ErrorCode makes UnsupportedCharError a core.AppError.
func (e *UnsupportedCharError) ErrorCode() int {
	return core.EMISSING
}

// UserMessage makes UnsupportedCharError a core.AppError.
func (e *UnsupportedCharError) UserMessage() string {
	return e.Error()
}

var _ core.AppError = &UnsupportedCharError{}

// Text renders text with the selected stroke font into a Path.
//
// The cursor starts at (0,0). Newlines reset the cursor to x=0 and move
// the baseline down (y decreases) by the line height; whitespace advances
// the cursor without emitting strokes ('\t' counts four whitespace widths,
// '\r' is ignored). Every other character is resolved through the font;
// its pen commands are translated by the current cursor and appended in
// original order, then the cursor advances by the glyph's advance width.
//
// Errors are all-or-nothing: a font decode failure or—under FailMissing—a
// missing glyph aborts rendering with no partial path. Empty input yields
// an empty path without ever consulting the font.
func Text(text string, f *fontregistry.VectorFont, conf *Config) (Path, error) {
	if text == "" {
		return Path{}, nil
	}
	if conf == nil {
		conf = &Config{}
	}
	scale := conf.Scale
	if scale == 0 {
		scale = 1.0
	}
	if scale < 0 {
		return nil, core.Error(core.EINVALID, "scale must be positive, is %g", scale)
	}
	table, err := f.Table()
	if err != nil {
		return nil, err
	}
	m := table.Metrics()
	lineHeight := override(m.LineHeight, conf.LineHeight)
	whitespace := override(m.WhitespaceWidth, conf.WhitespaceWidth)
	missing := override(m.MissingAdvance, conf.MissingAdvance)
	tracer().Debugf("render %d bytes with %s %q, scale %g", len(text), f.Family(), f.Name(), scale)

	var path Path
	var x, y float64
	pos := 0
	for _, r := range text {
		switch {
		case r == '\n':
			x = 0
			y -= float64(lineHeight) * scale
		case r == '\r':
			// ignored; '\n' carries the line break
		case r == '\t':
			x += 4 * float64(whitespace) * scale
		case unicode.IsSpace(r):
			x += float64(whitespace) * scale
		default:
			g, ok := table.Glyph(r)
			if !ok {
				if conf.OnMissingGlyph == FailMissing {
					return nil, &UnsupportedCharError{Char: r, Pos: pos}
				}
				tracer().Infof("no glyph for %q, skipped", r)
				x += float64(missing) * scale
				break
			}
			for _, cmd := range g.Strokes {
				path = append(path, Command{
					Op: cmd.Op,
					To: fixed.Point26_6{
						X: toFixed(x + float64(cmd.To.X)*scale),
						Y: toFixed(y + float64(cmd.To.Y)*scale),
					},
				})
			}
			x += float64(g.Advance) * scale
		}
		pos++
	}
	return path, nil
}

// override substitutes a positive configured value for a font default.
func override(def, conf int32) int32 {
	if conf > 0 {
		return conf
	}
	return def
}

// toFixed converts a scaled design-unit value to 26.6 fixed point.
func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
