package render

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/vectext/core"
	"github.com/npillmayer/vectext/core/font"
	"github.com/npillmayer/vectext/core/font/fontregistry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"
)

// testFont builds a minimal Hershey typeface: 'A' is a segment from (0,0)
// to (4,10) with advance 4, 'B' a segment from (0,0) to (6,10) with
// advance 6, and the space glyph has advance 4.
func testFont() *fontregistry.VectorFont {
	data := "  699  1PT\n" + // space
		"  501  3PTPRTH\n" + // 'A'
		"  502  3OUORUH\n" // 'B'
	return fontregistry.Hershey(fontregistry.HersheyRomanSimplex, []byte(data))
}

// brokenFont fails to decode on first use.
func brokenFont() *fontregistry.VectorFont {
	return fontregistry.Borland(fontregistry.BorlandLitt, []byte("not a CHR container"))
}

// fxp builds a 26.6 fixed-point output coordinate from design units.
func fxp(x, y int) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x << 6), Y: fixed.Int26_6(y << 6)}
}

func TestTextSingleLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vectext.render")
	defer teardown()
	//
	path, err := Text("AB", testFont(), nil)
	require.NoError(t, err)
	want := Path{
		{Op: font.MoveTo, To: fxp(0, 0)},
		{Op: font.LineTo, To: fxp(4, 10)},
		{Op: font.MoveTo, To: fxp(4, 0)},
		{Op: font.LineTo, To: fxp(10, 10)},
	}
	assert.Equal(t, want, path)
}

func TestTextCompiledInFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vectext.render")
	defer teardown()
	//
	f := fontregistry.NewStroke()
	tbl, err := f.Table()
	require.NoError(t, err)
	gA, _ := tbl.Glyph('A')
	gB, _ := tbl.Glyph('B')
	path, err := Text("AB", f, nil)
	require.NoError(t, err)
	require.NotEmpty(t, path)
	// the first command starts the first glyph at the cursor origin
	assert.Equal(t, font.MoveTo, path[0].Op)
	assert.Equal(t, gA.Strokes[0].To.X<<6, int32(path[0].To.X))
	// 'B' strokes are translated by 'A's advance
	assert.Equal(t, font.MoveTo, path[len(gA.Strokes)].Op)
	assert.Equal(t, (gA.Advance+gB.Strokes[0].To.X)<<6, int32(path[len(gA.Strokes)].To.X))
	// nothing reaches past the summed advances
	_, max, ok := path.Bounds()
	require.True(t, ok)
	assert.LessOrEqual(t, int32(max.X), (gA.Advance+gB.Advance)<<6)
}

func TestTextEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vectext.render")
	defer teardown()
	//
	// empty input never consults the font, so even a broken one succeeds
	path, err := Text("", brokenFont(), nil)
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestTextNewline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vectext.render")
	defer teardown()
	//
	path, err := Text("A\nA", testFont(), nil)
	require.NoError(t, err)
	want := Path{
		{Op: font.MoveTo, To: fxp(0, 0)},
		{Op: font.LineTo, To: fxp(4, 10)},
		// second line: x reset, baseline 32 design units lower
		{Op: font.MoveTo, To: fxp(0, -32)},
		{Op: font.LineTo, To: fxp(4, -22)},
	}
	assert.Equal(t, want, path)
}

func TestTextWhitespace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vectext.render")
	defer teardown()
	//
	path, err := Text("A A", testFont(), nil)
	require.NoError(t, err)
	require.Len(t, path, 4)
	// advance 4 plus whitespace 4
	assert.Equal(t, fxp(8, 0), path[2].To)

	path, err = Text("\tA", testFont(), nil)
	require.NoError(t, err)
	require.Len(t, path, 2)
	// a tab counts four whitespace widths
	assert.Equal(t, fxp(16, 0), path[0].To)

	path, err = Text("A\rB", testFont(), nil)
	require.NoError(t, err)
	require.Len(t, path, 4)
	// carriage return moves nothing
	assert.Equal(t, fxp(4, 0), path[2].To)
}

func TestTextMissingGlyphSkipped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vectext.render")
	defer teardown()
	//
	path, err := Text("AZA", testFont(), nil)
	require.NoError(t, err)
	require.Len(t, path, 4)
	// 'Z' has no glyph; the cursor advances by the missing-glyph width 4
	assert.Equal(t, fxp(8, 0), path[2].To)
}

func TestTextMissingGlyphFails(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vectext.render")
	defer teardown()
	//
	conf := &Config{OnMissingGlyph: FailMissing}
	path, err := Text("A…B", testFont(), conf)
	assert.Nil(t, path)
	var uerr *UnsupportedCharError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, '…', uerr.Char)
	assert.Equal(t, 1, uerr.Pos) // rune position, not byte offset
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestTextScale(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vectext.render")
	defer teardown()
	//
	path, err := Text("A", testFont(), &Config{Scale: 2})
	require.NoError(t, err)
	assert.Equal(t, fxp(8, 20), path[1].To)

	path, err = Text("A", testFont(), &Config{Scale: 0.5})
	require.NoError(t, err)
	assert.Equal(t, fxp(2, 5), path[1].To)

	_, err = Text("A", testFont(), &Config{Scale: -1})
	require.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestTextConfigOverrides(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vectext.render")
	defer teardown()
	//
	conf := &Config{LineHeight: 10, WhitespaceWidth: 7, MissingAdvance: 2}
	path, err := Text("A\n A", testFont(), conf)
	require.NoError(t, err)
	require.Len(t, path, 4)
	assert.Equal(t, fxp(7, -10), path[2].To)

	path, err = Text("ZA", testFont(), conf)
	require.NoError(t, err)
	assert.Equal(t, fxp(2, 0), path[0].To)
}

func TestTextDecodeErrorPropagates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vectext.render")
	defer teardown()
	//
	path, err := Text("A", brokenFont(), nil)
	assert.Nil(t, path)
	require.Error(t, err)
}

func TestTextDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vectext.render")
	defer teardown()
	//
	f := testFont()
	p1, err := Text("AB \nBA", f, &Config{Scale: 1.5})
	require.NoError(t, err)
	p2, err := Text("AB \nBA", f, &Config{Scale: 1.5})
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
}

func TestPathBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vectext.render")
	defer teardown()
	//
	path, err := Text("AB", testFont(), nil)
	require.NoError(t, err)
	min, max, ok := path.Bounds()
	require.True(t, ok)
	assert.Equal(t, fxp(0, 0), min)
	assert.Equal(t, fxp(10, 10), max)

	_, _, ok = Path{}.Bounds()
	assert.False(t, ok)
}
