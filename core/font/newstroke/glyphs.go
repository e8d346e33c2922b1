package newstroke

// pt is a compact design-unit coordinate {x, y}.
type pt = [2]int8

// def is the compact form of one glyph: an advance width and a set of
// polylines on the glyph grid (baseline y=0, cap height 21, x-height 14,
// descenders to -9). Polylines are expanded into pen commands by build.
type def struct {
	adv   int8
	lines [][]pt
}

// glyphdefs covers the printable ASCII range. The space character is
// deliberately absent: whitespace is handled by the layout engine and
// never reaches glyph lookup.
var glyphdefs = map[rune]def{
	'!': {5, [][]pt{{{1, 21}, {1, 6}}, {{1, 1}, {1, 0}}}},
	'"': {7, [][]pt{{{0, 21}, {0, 16}}, {{4, 21}, {4, 16}}}},
	'#': {12, [][]pt{{{3, 21}, {1, 0}}, {{7, 21}, {5, 0}}, {{0, 14}, {8, 14}}, {{0, 7}, {8, 7}}}},
	'$': {12, [][]pt{
		{{4, 23}, {4, -2}},
		{{8, 16}, {6, 18}, {2, 18}, {0, 16}, {0, 13}, {2, 11}, {6, 10}, {8, 8}, {8, 5}, {6, 3}, {2, 3}, {0, 5}},
	}},
	'%': {12, [][]pt{
		{{0, 0}, {8, 21}},
		{{1, 21}, {3, 21}, {3, 18}, {1, 18}, {1, 21}},
		{{5, 3}, {7, 3}, {7, 0}, {5, 0}, {5, 3}},
	}},
	'&': {11, [][]pt{
		{{8, 4}, {6, 1}, {3, 0}, {1, 1}, {0, 4}, {0, 6}, {2, 9}, {6, 13}, {7, 16}, {6, 19}, {4, 21}, {2, 19}, {2, 16}, {8, 0}},
	}},
	'\'': {4, [][]pt{{{1, 21}, {1, 16}}}},
	'(':  {7, [][]pt{{{4, 23}, {2, 18}, {1, 13}, {1, 8}, {2, 3}, {4, -2}}}},
	')':  {7, [][]pt{{{0, 23}, {2, 18}, {3, 13}, {3, 8}, {2, 3}, {0, -2}}}},
	'*':  {12, [][]pt{{{4, 17}, {4, 7}}, {{0, 15}, {8, 9}}, {{8, 15}, {0, 9}}}},
	'+':  {12, [][]pt{{{4, 15}, {4, 3}}, {{0, 9}, {8, 9}}}},
	',':  {5, [][]pt{{{2, 2}, {2, 0}, {0, -3}}}},
	'-':  {12, [][]pt{{{0, 9}, {8, 9}}}},
	'.':  {4, [][]pt{{{1, 1}, {1, 0}}}},
	'/':  {11, [][]pt{{{0, -2}, {8, 23}}}},

	'0': {12, [][]pt{{{2, 0}, {6, 0}, {8, 3}, {8, 18}, {6, 21}, {2, 21}, {0, 18}, {0, 3}, {2, 0}}}},
	'1': {12, [][]pt{{{2, 17}, {4, 21}, {4, 0}}, {{1, 0}, {7, 0}}}},
	'2': {12, [][]pt{{{0, 18}, {2, 21}, {6, 21}, {8, 18}, {8, 14}, {0, 2}, {0, 0}, {8, 0}}}},
	'3': {12, [][]pt{
		{{0, 18}, {2, 21}, {6, 21}, {8, 18}, {8, 13}, {5, 11}},
		{{5, 11}, {8, 9}, {8, 3}, {6, 0}, {2, 0}, {0, 3}},
	}},
	'4': {12, [][]pt{{{6, 0}, {6, 21}, {0, 7}, {8, 7}}}},
	'5': {12, [][]pt{{{8, 21}, {0, 21}, {0, 12}, {4, 13}, {7, 11}, {8, 8}, {8, 3}, {5, 0}, {2, 0}, {0, 3}}}},
	'6': {12, [][]pt{{{8, 18}, {5, 21}, {2, 21}, {0, 18}, {0, 3}, {2, 0}, {6, 0}, {8, 2}, {8, 8}, {6, 10}, {2, 10}, {0, 8}}}},
	'7': {12, [][]pt{{{0, 21}, {8, 21}, {3, 0}}}},
	'8': {12, [][]pt{
		{{2, 11}, {0, 13}, {0, 19}, {2, 21}, {6, 21}, {8, 19}, {8, 13}, {6, 11}, {2, 11}},
		{{2, 11}, {0, 9}, {0, 2}, {2, 0}, {6, 0}, {8, 2}, {8, 9}, {6, 11}},
	}},
	'9': {12, [][]pt{{{0, 3}, {3, 0}, {6, 0}, {8, 3}, {8, 18}, {6, 21}, {2, 21}, {0, 19}, {0, 13}, {2, 11}, {6, 11}, {8, 13}}}},

	':': {4, [][]pt{{{1, 10}, {1, 9}}, {{1, 1}, {1, 0}}}},
	';': {5, [][]pt{{{2, 10}, {2, 9}}, {{2, 2}, {2, 0}, {0, -3}}}},
	'<': {11, [][]pt{{{8, 18}, {0, 9}, {8, 0}}}},
	'=': {12, [][]pt{{{0, 12}, {8, 12}}, {{0, 6}, {8, 6}}}},
	'>': {11, [][]pt{{{0, 18}, {8, 9}, {0, 0}}}},
	'?': {11, [][]pt{{{0, 18}, {2, 21}, {6, 21}, {8, 18}, {8, 15}, {4, 11}, {4, 7}}, {{4, 1}, {4, 0}}}},
	'@': {13, [][]pt{{{9, 2}, {6, 0}, {3, 0}, {0, 3}, {0, 11}, {2, 14}, {5, 15}, {8, 14}, {9, 11}, {9, 5}, {7, 4}, {5, 5}, {5, 8}, {7, 9}, {9, 8}}}},

	'A': {14, [][]pt{{{0, 0}, {5, 21}, {10, 0}}, {{2, 6}, {8, 6}}}},
	'B': {14, [][]pt{
		{{0, 0}, {0, 21}, {7, 21}, {9, 19}, {9, 13}, {7, 11}, {0, 11}},
		{{7, 11}, {9, 9}, {9, 2}, {7, 0}, {0, 0}},
	}},
	'C': {14, [][]pt{{{10, 18}, {7, 21}, {3, 21}, {0, 18}, {0, 3}, {3, 0}, {7, 0}, {10, 3}}}},
	'D': {14, [][]pt{{{0, 0}, {0, 21}, {6, 21}, {10, 17}, {10, 4}, {6, 0}, {0, 0}}}},
	'E': {13, [][]pt{{{10, 0}, {0, 0}, {0, 21}, {10, 21}}, {{0, 11}, {7, 11}}}},
	'F': {13, [][]pt{{{0, 0}, {0, 21}, {10, 21}}, {{0, 11}, {7, 11}}}},
	'G': {14, [][]pt{{{10, 18}, {7, 21}, {3, 21}, {0, 18}, {0, 3}, {3, 0}, {7, 0}, {10, 3}, {10, 9}, {5, 9}}}},
	'H': {14, [][]pt{{{0, 0}, {0, 21}}, {{10, 0}, {10, 21}}, {{0, 11}, {10, 11}}}},
	'I': {8, [][]pt{{{2, 0}, {2, 21}}, {{0, 21}, {4, 21}}, {{0, 0}, {4, 0}}}},
	'J': {12, [][]pt{{{8, 21}, {8, 3}, {5, 0}, {2, 0}, {0, 3}}}},
	'K': {14, [][]pt{{{0, 0}, {0, 21}}, {{10, 21}, {0, 9}}, {{4, 12}, {10, 0}}}},
	'L': {12, [][]pt{{{0, 21}, {0, 0}, {10, 0}}}},
	'M': {16, [][]pt{{{0, 0}, {0, 21}, {6, 10}, {12, 21}, {12, 0}}}},
	'N': {14, [][]pt{{{0, 0}, {0, 21}}, {{0, 21}, {10, 0}}, {{10, 0}, {10, 21}}}},
	'O': {14, [][]pt{{{3, 0}, {7, 0}, {10, 3}, {10, 18}, {7, 21}, {3, 21}, {0, 18}, {0, 3}, {3, 0}}}},
	'P': {14, [][]pt{{{0, 0}, {0, 21}, {7, 21}, {10, 18}, {10, 13}, {7, 10}, {0, 10}}}},
	'Q': {14, [][]pt{
		{{3, 0}, {7, 0}, {10, 3}, {10, 18}, {7, 21}, {3, 21}, {0, 18}, {0, 3}, {3, 0}},
		{{6, 4}, {10, -1}},
	}},
	'R': {14, [][]pt{
		{{0, 0}, {0, 21}, {7, 21}, {10, 18}, {10, 13}, {7, 10}, {0, 10}},
		{{4, 10}, {10, 0}},
	}},
	'S': {14, [][]pt{{{10, 18}, {7, 21}, {3, 21}, {0, 18}, {0, 14}, {3, 11}, {7, 10}, {10, 7}, {10, 3}, {7, 0}, {3, 0}, {0, 3}}}},
	'T': {12, [][]pt{{{5, 0}, {5, 21}}, {{0, 21}, {10, 21}}}},
	'U': {14, [][]pt{{{0, 21}, {0, 4}, {3, 0}, {7, 0}, {10, 4}, {10, 21}}}},
	'V': {14, [][]pt{{{0, 21}, {5, 0}, {10, 21}}}},
	'W': {16, [][]pt{{{0, 21}, {3, 0}, {6, 14}, {9, 0}, {12, 21}}}},
	'X': {14, [][]pt{{{0, 0}, {10, 21}}, {{0, 21}, {10, 0}}}},
	'Y': {14, [][]pt{{{0, 21}, {5, 11}, {10, 21}}, {{5, 11}, {5, 0}}}},
	'Z': {14, [][]pt{{{0, 21}, {10, 21}, {0, 0}, {10, 0}}}},

	'[':  {7, [][]pt{{{4, 23}, {1, 23}, {1, -2}, {4, -2}}}},
	'\\': {11, [][]pt{{{0, 23}, {8, -2}}}},
	']':  {7, [][]pt{{{0, 23}, {3, 23}, {3, -2}, {0, -2}}}},
	'^':  {11, [][]pt{{{1, 16}, {4, 21}, {7, 16}}}},
	'_':  {12, [][]pt{{{0, -4}, {10, -4}}}},
	'`':  {6, [][]pt{{{1, 21}, {3, 16}}}},

	'a': {11, [][]pt{
		{{8, 12}, {5, 14}, {2, 14}, {0, 11}, {0, 3}, {2, 0}, {5, 0}, {8, 2}},
		{{8, 14}, {8, 0}},
	}},
	'b': {11, [][]pt{
		{{0, 21}, {0, 0}},
		{{0, 12}, {3, 14}, {6, 14}, {8, 11}, {8, 3}, {6, 0}, {3, 0}, {0, 2}},
	}},
	'c': {11, [][]pt{{{8, 11}, {6, 14}, {2, 14}, {0, 11}, {0, 3}, {2, 0}, {6, 0}, {8, 3}}}},
	'd': {11, [][]pt{
		{{8, 21}, {8, 0}},
		{{8, 12}, {5, 14}, {2, 14}, {0, 11}, {0, 3}, {2, 0}, {5, 0}, {8, 2}},
	}},
	'e': {11, [][]pt{{{0, 8}, {8, 8}, {8, 11}, {6, 14}, {2, 14}, {0, 11}, {0, 3}, {2, 0}, {6, 0}, {8, 2}}}},
	'f': {8, [][]pt{{{6, 21}, {4, 21}, {2, 19}, {2, 0}}, {{0, 14}, {5, 14}}}},
	'g': {11, [][]pt{
		{{8, 12}, {5, 14}, {2, 14}, {0, 11}, {0, 3}, {2, 0}, {5, 0}, {8, 2}},
		{{8, 14}, {8, -4}, {6, -7}, {2, -7}, {0, -5}},
	}},
	'h': {11, [][]pt{{{0, 21}, {0, 0}}, {{0, 11}, {3, 14}, {6, 14}, {8, 11}, {8, 0}}}},
	'i': {4, [][]pt{{{1, 14}, {1, 0}}, {{1, 18}, {1, 19}}}},
	'j': {5, [][]pt{{{3, 14}, {3, -4}, {1, -7}, {0, -6}}, {{3, 18}, {3, 19}}}},
	'k': {11, [][]pt{{{0, 21}, {0, 0}}, {{7, 14}, {0, 5}}, {{3, 9}, {8, 0}}}},
	'l': {4, [][]pt{{{1, 21}, {1, 0}}}},
	'm': {15, [][]pt{
		{{0, 14}, {0, 0}},
		{{0, 11}, {2, 14}, {4, 14}, {6, 11}, {6, 0}},
		{{6, 11}, {8, 14}, {10, 14}, {12, 11}, {12, 0}},
	}},
	'n': {11, [][]pt{{{0, 14}, {0, 0}}, {{0, 11}, {3, 14}, {6, 14}, {8, 11}, {8, 0}}}},
	'o': {11, [][]pt{{{2, 0}, {6, 0}, {8, 3}, {8, 11}, {6, 14}, {2, 14}, {0, 11}, {0, 3}, {2, 0}}}},
	'p': {11, [][]pt{
		{{0, 14}, {0, -7}},
		{{0, 12}, {3, 14}, {6, 14}, {8, 11}, {8, 3}, {6, 0}, {3, 0}, {0, 2}},
	}},
	'q': {11, [][]pt{
		{{8, 14}, {8, -7}},
		{{8, 12}, {5, 14}, {2, 14}, {0, 11}, {0, 3}, {2, 0}, {5, 0}, {8, 2}},
	}},
	'r': {9, [][]pt{{{0, 14}, {0, 0}}, {{0, 10}, {2, 13}, {5, 14}, {7, 12}}}},
	's': {10, [][]pt{{{7, 12}, {5, 14}, {2, 14}, {0, 12}, {0, 9}, {2, 7}, {5, 7}, {7, 5}, {7, 2}, {5, 0}, {2, 0}, {0, 2}}}},
	't': {8, [][]pt{{{2, 21}, {2, 3}, {4, 0}, {6, 0}}, {{0, 14}, {6, 14}}}},
	'u': {11, [][]pt{{{0, 14}, {0, 3}, {3, 0}, {6, 0}, {8, 2}}, {{8, 14}, {8, 0}}}},
	'v': {11, [][]pt{{{0, 14}, {4, 0}, {8, 14}}}},
	'w': {13, [][]pt{{{0, 14}, {2, 0}, {5, 10}, {8, 0}, {10, 14}}}},
	'x': {11, [][]pt{{{0, 14}, {8, 0}}, {{0, 0}, {8, 14}}}},
	'y': {11, [][]pt{{{0, 14}, {4, 2}}, {{8, 14}, {2, -7}, {0, -5}}}},
	'z': {11, [][]pt{{{0, 14}, {8, 14}, {0, 0}, {8, 0}}}},

	'{': {7, [][]pt{{{4, 23}, {2, 21}, {2, 12}, {0, 10}, {2, 8}, {2, 0}, {4, -2}}}},
	'|': {4, [][]pt{{{1, 23}, {1, -2}}}},
	'}': {7, [][]pt{{{0, 23}, {2, 21}, {2, 12}, {4, 10}, {2, 8}, {2, 0}, {0, -2}}}},
	'~': {13, [][]pt{{{0, 9}, {2, 12}, {4, 12}, {6, 9}, {8, 9}, {10, 12}}}},
}
