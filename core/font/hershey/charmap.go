package hershey

import "github.com/npillmayer/vectext/core/font"

// Charmap is the fixed index→character table of one Hershey typeface.
// Following the .hmp convention, it is a sequence of glyph-index ranges
// assigned to consecutive character codes starting at 32; a span with
// last=0 covers a single index, and index 0 leaves its character unmapped.
//
// The mapping is externally defined, arbitrary data—not a formula. The
// letter and digit blocks below follow the classical occidental numbering
// of the Hershey distribution; the punctuation rows are this module's
// fixed choice.
type Charmap struct {
	name  string
	spans []span
}

type span struct {
	first, last uint16
}

// Name returns the typeface name, e.g. "romans".
func (cm Charmap) Name() string {
	return cm.name
}

// apply resolves the mapping against a raw index-keyed glyph table,
// producing the character-keyed table of the typeface. Indices without a
// raw glyph simply leave their character unmapped.
func (cm Charmap) apply(raw map[int]font.Glyph) map[rune]font.Glyph {
	glyphs := make(map[rune]font.Glyph)
	cp := rune(32)
	for _, sp := range cm.spans {
		last := sp.last
		if last == 0 {
			last = sp.first
		}
		for idx := sp.first; idx <= last; idx++ {
			if idx != 0 {
				if g, ok := raw[int(idx)]; ok {
					glyphs[cp] = g
				}
			}
			cp++
		}
	}
	return glyphs
}

// The supported classical typefaces. Each table covers the printable
// ASCII range 32–126.
var (
	// RomanSimplex is the single-stroke roman face ("romans").
	RomanSimplex = Charmap{name: "romans", spans: []span{
		{699, 0}, {714, 0}, {717, 0}, {733, 0}, {719, 0}, {2271, 0}, {734, 0}, {731, 0},
		{721, 0}, {722, 0}, {2219, 0}, {725, 0}, {711, 0}, {724, 0}, {710, 0}, {720, 0},
		{700, 709}, // digits
		{712, 0}, {713, 0}, {2241, 0}, {726, 0}, {2242, 0}, {715, 0}, {2273, 0},
		{501, 526}, // A-Z
		{2223, 0}, {804, 0}, {2224, 0}, {2262, 0}, {999, 0}, {730, 0},
		{601, 626}, // a-z
		{2225, 0}, {723, 0}, {2226, 0}, {2246, 0},
	}}

	// RomanComplex is the double-stroke roman face ("romanc").
	RomanComplex = Charmap{name: "romanc", spans: []span{
		{2199, 0}, {2214, 0}, {2217, 0}, {2275, 0}, {2274, 0}, {2271, 0}, {2272, 0}, {2216, 0},
		{2221, 0}, {2222, 0}, {2219, 0}, {2232, 0}, {2211, 0}, {2231, 0}, {2210, 0}, {2220, 0},
		{2200, 2209}, // digits
		{2212, 0}, {2213, 0}, {2241, 0}, {2238, 0}, {2242, 0}, {2215, 0}, {2273, 0},
		{2001, 2026}, // A-Z
		{2223, 0}, {804, 0}, {2224, 0}, {2262, 0}, {999, 0}, {2218, 0},
		{2101, 2126}, // a-z
		{2225, 0}, {2229, 0}, {2226, 0}, {2246, 0},
	}}

	// RomanTriplex is the triple-stroke roman face ("romant").
	RomanTriplex = Charmap{name: "romant", spans: []span{
		{2199, 0}, {3214, 0}, {3217, 0}, {2275, 0}, {2274, 0}, {2271, 0}, {2272, 0}, {3216, 0},
		{2221, 0}, {2222, 0}, {2219, 0}, {2232, 0}, {3211, 0}, {2231, 0}, {3210, 0}, {2220, 0},
		{3200, 3209}, // digits
		{3212, 0}, {3213, 0}, {2241, 0}, {2238, 0}, {2242, 0}, {3215, 0}, {2273, 0},
		{3001, 3026}, // A-Z
		{2223, 0}, {804, 0}, {2224, 0}, {2262, 0}, {999, 0}, {2218, 0},
		{3101, 3126}, // a-z
		{2225, 0}, {2229, 0}, {2226, 0}, {2246, 0},
	}}

	// ItalicComplex is the double-stroke italic face ("italicc").
	ItalicComplex = Charmap{name: "italicc", spans: []span{
		{2199, 0}, {2764, 0}, {2778, 0}, {2275, 0}, {2769, 0}, {2271, 0}, {2768, 0}, {2766, 0},
		{2771, 0}, {2772, 0}, {2219, 0}, {2232, 0}, {2761, 0}, {2231, 0}, {2760, 0}, {2770, 0},
		{2750, 2759}, // digits
		{2762, 0}, {2763, 0}, {2241, 0}, {2238, 0}, {2242, 0}, {2765, 0}, {2273, 0},
		{2051, 2076}, // A-Z
		{2223, 0}, {804, 0}, {2224, 0}, {2262, 0}, {999, 0}, {2767, 0},
		{2151, 2176}, // a-z
		{2225, 0}, {2229, 0}, {2226, 0}, {2246, 0},
	}}

	// ScriptSimplex is the single-stroke script face ("scripts").
	ScriptSimplex = Charmap{name: "scripts", spans: []span{
		{699, 0}, {714, 0}, {717, 0}, {733, 0}, {719, 0}, {2271, 0}, {734, 0}, {731, 0},
		{721, 0}, {722, 0}, {2219, 0}, {725, 0}, {711, 0}, {724, 0}, {710, 0}, {720, 0},
		{700, 709}, // digits
		{712, 0}, {713, 0}, {2241, 0}, {726, 0}, {2242, 0}, {715, 0}, {2273, 0},
		{551, 576}, // A-Z
		{2223, 0}, {804, 0}, {2224, 0}, {2262, 0}, {999, 0}, {730, 0},
		{651, 676}, // a-z
		{2225, 0}, {723, 0}, {2226, 0}, {2246, 0},
	}}

	// GothicEnglish is the gothic blackletter face ("gotheng").
	GothicEnglish = Charmap{name: "gotheng", spans: []span{
		{2199, 0}, {3714, 0}, {3717, 0}, {2275, 0}, {2274, 0}, {2271, 0}, {2272, 0}, {3716, 0},
		{2221, 0}, {2222, 0}, {2219, 0}, {2232, 0}, {3711, 0}, {2231, 0}, {3710, 0}, {2220, 0},
		{3700, 3709}, // digits
		{3712, 0}, {3713, 0}, {2241, 0}, {2238, 0}, {2242, 0}, {3715, 0}, {2273, 0},
		{3501, 3526}, // A-Z
		{2223, 0}, {804, 0}, {2224, 0}, {2262, 0}, {999, 0}, {2218, 0},
		{3601, 3626}, // a-z
		{2225, 0}, {2229, 0}, {2226, 0}, {2246, 0},
	}}
)
