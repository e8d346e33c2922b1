package fontregistry

import (
	"fmt"
	"sync"

	"github.com/npillmayer/vectext/core"
	"github.com/npillmayer/vectext/core/font"
	"github.com/npillmayer/vectext/core/font/borland"
	"github.com/npillmayer/vectext/core/font/hershey"
	"github.com/npillmayer/vectext/core/font/newstroke"
)

// Family identifies a stroke-font container format.
type Family uint8

const (
	FamilyBorland Family = iota + 1
	FamilyHershey
	FamilyNewStroke
)

func (f Family) String() string {
	switch f {
	case FamilyBorland:
		return "Borland"
	case FamilyHershey:
		return "Hershey"
	case FamilyNewStroke:
		return "NewStroke"
	}
	return fmt.Sprintf("Family(%d)", f)
}

// BorlandTypeface identifies one of the supported .CHR stroke-font
// containers. Borland typefaces are identity only: the container bytes
// supplied at construction define the glyphs.
type BorlandTypeface uint8

const (
	BorlandEuro BorlandTypeface = iota + 1
	BorlandGoth
	BorlandLCom
	BorlandLitt
	BorlandSans
	BorlandScri
	BorlandSimp
	BorlandTrip
	BorlandTscr
)

var borlandNames = map[BorlandTypeface]string{
	BorlandEuro: "EURO",
	BorlandGoth: "GOTH",
	BorlandLCom: "LCOM",
	BorlandLitt: "LITT",
	BorlandSans: "SANS",
	BorlandScri: "SCRI",
	BorlandSimp: "SIMP",
	BorlandTrip: "TRIP",
	BorlandTscr: "TSCR",
}

func (t BorlandTypeface) String() string {
	if n, ok := borlandNames[t]; ok {
		return n
	}
	return fmt.Sprintf("BorlandTypeface(%d)", t)
}

// HersheyTypeface identifies one of the supported classical Hershey
// typefaces. The typeface selects the fixed index→character table used
// to decode the raw glyph data.
type HersheyTypeface uint8

const (
	HersheyRomanSimplex HersheyTypeface = iota + 1
	HersheyRomanComplex
	HersheyRomanTriplex
	HersheyItalicComplex
	HersheyScriptSimplex
	HersheyGothicEnglish
)

var hersheyCharmaps = map[HersheyTypeface]hershey.Charmap{
	HersheyRomanSimplex:  hershey.RomanSimplex,
	HersheyRomanComplex:  hershey.RomanComplex,
	HersheyRomanTriplex:  hershey.RomanTriplex,
	HersheyItalicComplex: hershey.ItalicComplex,
	HersheyScriptSimplex: hershey.ScriptSimplex,
	HersheyGothicEnglish: hershey.GothicEnglish,
}

func (t HersheyTypeface) String() string {
	if cm, ok := hersheyCharmaps[t]; ok {
		return cm.Name()
	}
	return fmt.Sprintf("HersheyTypeface(%d)", t)
}

// VectorFont is one selected stroke font: a family, a concrete typeface,
// and—for the container families—the raw font bytes. It fully determines
// which font.Table is consulted.
//
// The decoded table is memoized per value and shared by concurrent
// callers; the memoization is this package's only cache.
type VectorFont struct {
	family Family
	name   string
	hface  HersheyTypeface // Hershey only
	data   []byte          // raw container bytes, nil for NewStroke

	once  sync.Once
	table font.Table
	err   error
}

// Borland selects a BGI .CHR typeface. The container bytes are supplied
// by the caller; obtaining them (file, network, embedding) is outside
// this module's responsibility.
func Borland(face BorlandTypeface, data []byte) *VectorFont {
	return &VectorFont{
		family: FamilyBorland,
		name:   face.String(),
		data:   data,
	}
}

// Hershey selects a classical Hershey typeface over the caller-supplied
// .jhf glyph data.
func Hershey(face HersheyTypeface, data []byte) *VectorFont {
	return &VectorFont{
		family: FamilyHershey,
		name:   face.String(),
		hface:  face,
		data:   data,
	}
}

// NewStroke selects the compiled-in NewStroke table.
func NewStroke() *VectorFont {
	return &VectorFont{
		family: FamilyNewStroke,
		name:   "newstroke",
	}
}

// Family returns the font's container family.
func (v *VectorFont) Family() Family {
	return v.family
}

// Name returns the typeface name, e.g. "LITT" or "romans".
func (v *VectorFont) Name() string {
	return v.name
}

// Table resolves the font to its decoded glyph table, decoding on first
// use. A decode failure is sticky: it surfaces on this and every later
// call, and no partially built table is ever exposed.
func (v *VectorFont) Table() (font.Table, error) {
	v.once.Do(func() {
		tracer().Debugf("decoding %s font %q", v.family, v.name)
		switch v.family {
		case FamilyBorland:
			v.table, v.err = borland.Decode(v.data)
		case FamilyHershey:
			cm, ok := hersheyCharmaps[v.hface]
			if !ok {
				v.err = core.Error(core.EMISSING, "unknown Hershey typeface %v", v.hface)
				return
			}
			v.table, v.err = hershey.Decode(v.data, cm)
		case FamilyNewStroke:
			v.table = newstroke.Table()
		default:
			v.err = core.Error(core.EMISSING, "unknown font family %v", v.family)
		}
	})
	return v.table, v.err
}

// Glyph looks up the stroke definition for r in the font's table,
// decoding the table first if necessary.
func (v *VectorFont) Glyph(r rune) (font.Glyph, bool, error) {
	t, err := v.Table()
	if err != nil {
		return font.Glyph{}, false, err
	}
	g, ok := t.Glyph(r)
	return g, ok, nil
}
