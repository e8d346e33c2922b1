package hershey

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/vectext/core/font"
)

func TestParseRecord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vectext.fonts")
	defer teardown()
	//
	// extents J..Z (-8..8), one segment drawn along the descender row
	idx, g, err := parseRecord("    1  3JZJ[Z[", 1)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if idx != 1 {
		t.Errorf("index = %d, want 1", idx)
	}
	want := font.Glyph{
		Strokes: []font.PenCommand{
			{Op: font.MoveTo, To: font.Point{X: 0, Y: -9}},
			{Op: font.LineTo, To: font.Point{X: 16, Y: -9}},
		},
		Advance: 16,
	}
	if diff := cmp.Diff(want, g); diff != "" {
		t.Errorf("glyph mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRecordPenUp(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vectext.fonts")
	defer teardown()
	//
	// " R" between the two vertices lifts the pen
	_, g, err := parseRecord("    2  4JZRR RRZ", 1)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := []font.PenCommand{
		{Op: font.MoveTo, To: font.Point{X: 8, Y: 0}},
		{Op: font.MoveTo, To: font.Point{X: 8, Y: -8}},
	}
	if diff := cmp.Diff(want, g.Strokes); diff != "" {
		t.Errorf("pen-up strokes mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRecordEmptyGlyph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vectext.fonts")
	defer teardown()
	//
	// a count of 1 covers the extent pair only: a spacing glyph
	_, g, err := parseRecord("  699  1PT", 1)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(g.Strokes) != 0 || g.Advance != 4 {
		t.Errorf("spacing glyph = %v, want no strokes and advance 4", g)
	}
}

func TestParseRecordErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vectext.fonts")
	defer teardown()
	//
	cases := []struct {
		record string
		reason string
	}{
		{"    1  3JZ", "coordinate columns missing"},
		{"    1  5JZRR", "count larger than coordinates"},
		{"  abc  3JZJ[Z[", "non-numeric index"},
		{"    0  3JZJ[Z[", "index zero"},
		{"    1  xJZJ[Z[", "non-numeric count"},
		{"    1  3ZJJ[Z[", "reversed extents"},
		{"    1  3JZ SRR", "malformed pen-up sentinel"},
		{"    1", "record shorter than header"},
	}
	for _, c := range cases {
		_, _, err := parseRecord(c.record, 7)
		var ferr *font.FormatError
		if !errors.As(err, &ferr) {
			t.Errorf("%s: expected FormatError, got %v", c.reason, err)
			continue
		}
		if ferr.Offset != 7 {
			t.Errorf("%s: error line = %d, want 7", c.reason, ferr.Offset)
		}
	}
}

func TestParseContinuationLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vectext.fonts")
	defer teardown()
	//
	// 40 vertex pairs make an 88-column record, split at column 72
	record := "  501 40JZ" + strings.Repeat("RR", 39)
	data := record[:recordWidth] + "\n" + record[recordWidth:] + "\n"
	raw, err := parse([]byte(data))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	g, ok := raw[501]
	if !ok {
		t.Fatal("continued record not decoded")
	}
	if len(g.Strokes) != 39 {
		t.Errorf("decoded %d strokes, want 39", len(g.Strokes))
	}
	if g.Strokes[0].Op != font.MoveTo || g.Strokes[1].Op != font.LineTo {
		t.Error("continued record strokes out of order")
	}
}

func TestParseSkipsBlankLinesAndHighIndices(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vectext.fonts")
	defer teardown()
	//
	data := "    1  3JZJ[Z[\n\n 4001  3JZJ[Z[\n"
	raw, err := parse([]byte(data))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(raw) != 1 {
		t.Errorf("raw table has %d glyphs, want 1 (index 4001 ignored)", len(raw))
	}
}

func TestDecodeWithCharmap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vectext.fonts")
	defer teardown()
	//
	data := strings.Join([]string{
		"  699  1PT",     // space, advance 4
		"  501  3JZJ[Z[", // 'A' in the simplex numbering
		"  710  3PTPRTH", // '.'
		"  601  3JZJ[Z[", // 'a'
		"  700  3JZJ[Z[", // '0'
	}, "\n")
	f, err := Decode([]byte(data), RomanSimplex)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	for _, r := range []rune{' ', 'A', '.', 'a', '0'} {
		if _, ok := f.Glyph(r); !ok {
			t.Errorf("charmap left %q unmapped", r)
		}
	}
	if _, ok := f.Glyph('B'); ok {
		t.Error("'B' mapped without a raw glyph for index 502")
	}
	if f.Charmap().Name() != "romans" {
		t.Errorf("charmap name = %q", f.Charmap().Name())
	}
}

func TestDecodeMetrics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vectext.fonts")
	defer teardown()
	//
	f, err := Decode([]byte("  699  1PT\n"), RomanSimplex)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	m := f.Metrics()
	if m.LineHeight != 32 {
		t.Errorf("line height = %d, want 32", m.LineHeight)
	}
	if m.WhitespaceWidth != 4 || m.MissingAdvance != 4 {
		t.Errorf("whitespace metrics = %v, want space advance 4", m)
	}
	// without a mapped space glyph the classical default applies
	f, err = Decode([]byte("  501  3JZJ[Z[\n"), RomanSimplex)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if f.Metrics().WhitespaceWidth != 16 {
		t.Errorf("default whitespace = %d, want 16", f.Metrics().WhitespaceWidth)
	}
}

func TestCharmapLetterBlocks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vectext.fonts")
	defer teardown()
	//
	// every typeface covers exactly the printable ASCII range
	for _, cm := range []Charmap{RomanSimplex, RomanComplex, RomanTriplex,
		ItalicComplex, ScriptSimplex, GothicEnglish} {
		n := 0
		for _, sp := range cm.spans {
			if sp.last == 0 {
				n++
			} else {
				n += int(sp.last-sp.first) + 1
			}
		}
		if n != 95 {
			t.Errorf("charmap %q covers %d codepoints, want 95", cm.name, n)
		}
	}
}
