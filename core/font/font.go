/*
Package font provides the shared in-memory representation for stroke fonts.

A stroke font describes glyphs as sequences of pen movements—straight line
segments drawn with the pen down, and repositioning moves with the pen up—
rather than filled outlines. Devices such as pen plotters, laser projectors
and XY oscilloscope displays consume exactly this kind of instruction stream.

Glyphs from all supported container formats (Borland BGI .CHR files, Hershey
.jhf interchange files, and the compiled-in NewStroke table) are normalized
by their decoders into one coordinate convention:

  - coordinates are integer font design units; the scale is format-defined
    and deliberately not normalized across formats,
  - y grows upwards, the baseline is at y=0,
  - the glyph's left edge is at x=0,
  - Advance is the cursor distance to the next glyph.

Decoded glyphs are immutable. A Table is read-only after construction and
may be shared by concurrent readers without locking.

----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package font

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/vectext/core"
)

// tracer writes to trace with key 'vectext.fonts'
func tracer() tracing.Trace {
	return tracing.Select("vectext.fonts")
}

// Point is a position in font design units. The baseline is at y=0 and
// y grows upwards.
type Point struct {
	X, Y int32
}

// PenOp is the operation of a single pen command.
type PenOp uint8

const (
	// MoveTo repositions the pen without drawing.
	MoveTo PenOp = iota
	// LineTo draws a straight segment from the current pen position.
	LineTo
)

func (op PenOp) String() string {
	switch op {
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	}
	return fmt.Sprintf("PenOp(%d)", op)
}

// PenCommand is one drawing instruction of a glyph.
type PenCommand struct {
	Op PenOp
	To Point
}

// Glyph is the stroke definition for one character in one font.
// Strokes are relative to the glyph-local origin (baseline y=0, left edge
// x=0) and must not be modified by clients: a Glyph is owned by its Table
// and shared between lookups.
type Glyph struct {
	Strokes []PenCommand // ordered pen commands; order is significant for the device
	Advance int32        // cursor advance in design units
}

// IsEmpty is true for a glyph without any pen commands (e.g. a space).
func (g Glyph) IsEmpty() bool {
	return len(g.Strokes) == 0
}

// Metrics are per-table layout defaults, in the table's design units.
// They are derived from each font's own data and may be overridden by
// the layout engine's configuration.
type Metrics struct {
	LineHeight      int32 // baseline-to-baseline distance
	WhitespaceWidth int32 // advance for characters without strokes
	MissingAdvance  int32 // advance substituted for absent glyphs
}

// Table is the decoded, read-only character→Glyph mapping for one typeface.
// All decoder variants (Borland, Hershey, NewStroke) implement it; the
// layout engine knows nothing beyond this interface.
//
// Implementations are immutable after construction and safe for
// concurrent use.
type Table interface {
	// Glyph returns the stroke definition for r. The second return value
	// reports whether the table contains r; absence is not an error.
	Glyph(r rune) (Glyph, bool)

	// Metrics returns the table's layout defaults.
	Metrics() Metrics
}

// --- Format errors ----------------------------------------------------------

// FormatError reports a malformed font container: a bad signature, an
// offset or record reaching outside the buffer, or a count mismatch.
// Decoders never recover from a FormatError silently; a corrupted table
// could otherwise render visually wrong glyphs unsignaled.
type FormatError struct {
	Format string // container format, e.g. "Borland CHR" or "Hershey JHF"
	Offset int    // byte offset (binary formats) or line number (text formats)
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s at %d: %s", e.Format, e.Offset, e.Reason)
}

// ErrorCode makes FormatError a core.AppError.
func (e *FormatError) ErrorCode() int {
	return core.EINVALID
}

// UserMessage makes FormatError a core.AppError.
func (e *FormatError) UserMessage() string {
	return e.Error()
}

var _ core.AppError = &FormatError{}

// ErrFormat creates a FormatError for the given container format, with
// offset pointing at the offending byte or record.
func ErrFormat(format string, offset int, reason string, v ...interface{}) error {
	if len(v) > 0 {
		reason = fmt.Sprintf(reason, v...)
	}
	err := &FormatError{Format: format, Offset: offset, Reason: reason}
	tracer().Errorf(err.Error())
	return err
}
