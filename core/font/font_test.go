package font

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/vectext/core"
)

func TestErrFormat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vectext.fonts")
	defer teardown()
	//
	err := ErrFormat("Borland CHR", 42, "bad marker 0x%04x", 0xBEEF)
	var ferr *FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected FormatError, got %T", err)
	}
	if ferr.Offset != 42 || ferr.Format != "Borland CHR" {
		t.Errorf("error fields wrong: %+v", ferr)
	}
	if ferr.Error() != "Borland CHR at 42: bad marker 0xbeef" {
		t.Errorf("error message = %q", ferr.Error())
	}
	if core.Code(err) != core.EINVALID {
		t.Errorf("error code = %d, want EINVALID", core.Code(err))
	}
}

func TestGlyphIsEmpty(t *testing.T) {
	if !(Glyph{Advance: 6}).IsEmpty() {
		t.Error("glyph without strokes should be empty")
	}
	g := Glyph{Strokes: []PenCommand{{Op: MoveTo, To: Point{1, 2}}}}
	if g.IsEmpty() {
		t.Error("glyph with strokes should not be empty")
	}
}

func TestPenOpString(t *testing.T) {
	if MoveTo.String() != "MoveTo" || LineTo.String() != "LineTo" {
		t.Error("PenOp names wrong")
	}
	if PenOp(9).String() != "PenOp(9)" {
		t.Error("unknown PenOp should fall back to numeric form")
	}
}
