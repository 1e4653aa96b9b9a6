package tategaki

import (
	"github.com/npillmayer/tategaki/charmap"
)

// The character table packs two facts per BMP code unit into one uint16
// payload: the layout category in the low bits and, for brackets, a 1-based
// slot into the verticalForms store in the high bits. Payload 0 means
// "no entry", which conveniently decodes to CatNormal with no substitution.
const categoryBits = 3
const categoryMask = 1<<categoryBits - 1

var charTable charmap.Table

// verticalForms holds the substitution glyphs, addressed by the payload
// slot (1-based; 0 means none).
var verticalForms []rune

// rotateChars turn 90 degrees clockwise in vertical text: the long-vowel
// mark, dash variants, wave dashes, and ellipses.
var rotateChars = []rune{
	'ー', 'ｰ', // prolonged sound marks, full- and half-width
	'−', '－', '–', '—', '―', // dashes
	'〜', '～', '〰', // wave dashes
	'…', '‥', '⋯', // ellipses
}

// symbolRotateChars are only rotated when symbol rotation is enabled on the
// layouter (see WithSymbolRotation).
var symbolRotateChars = []rune{
	':', ';', '：', '；',
	'=', '＝',
	'→', '←', '↑', '↓',
	'⇒', '⇐', '⇔',
}

// repositionChars render at the same logical position but offset up and to
// the right: the ideographic and full-width comma and full stop family.
var repositionChars = []rune{'、', '，', '。', '．'}

// substitutions maps each bracket to its vertical presentation form.
// The logical character is retained in Glyph.Char; only Display changes.
var substitutions = []struct{ from, to rune }{
	{'「', '﹁'}, {'」', '﹂'},
	{'『', '﹃'}, {'』', '﹄'},
	{'（', '︵'}, {'）', '︶'},
	{'(', '︵'}, {')', '︶'},
	{'【', '︻'}, {'】', '︼'},
	{'〔', '︹'}, {'〕', '︺'},
	{'〈', '︿'}, {'〉', '﹀'},
	{'《', '︽'}, {'》', '︾'},
	{'［', '﹇'}, {'］', '﹈'},
	{'[', '﹇'}, {']', '﹈'},
	{'｛', '︷'}, {'｝', '︸'},
	{'{', '︷'}, {'}', '︸'},
}

// quoteOpenChars are candidates for opening a quoted span. Straight marks
// are listed here, not under close: outside a span a straight mark always
// opens (its closing role is positional, handled by the segmenter).
var quoteOpenChars = []rune{'“', '‘', '"', '\''}

var quoteCloseChars = []rune{'”', '’'}

var symbolRotate = make(map[rune]bool, len(symbolRotateChars))

func init() {
	for _, r := range rotateChars {
		setCategory(r, CatRotate)
	}
	for _, r := range repositionChars {
		setCategory(r, CatRepositionTopRight)
	}
	for _, r := range quoteOpenChars {
		setCategory(r, CatQuoteOpen)
	}
	for _, r := range quoteCloseChars {
		setCategory(r, CatQuoteClose)
	}
	for i, s := range substitutions {
		verticalForms = append(verticalForms, s.to)
		slot := uint16(i + 1)
		assert(slot < 1<<(16-categoryBits), "substitution slot overflows table payload")
		charTable.Set(uint16(s.from), slot<<categoryBits|uint16(CatSubstitute))
	}
	for _, r := range symbolRotateChars {
		symbolRotate[r] = true
	}
}

func setCategory(r rune, cat Category) {
	assert(r <= 0xFFFF, "special character outside the BMP")
	charTable.Set(uint16(r), uint16(cat))
}

// Classify maps a single character to its vertical-layout category.
//
// Classify is total and pure: every rune maps to exactly one category, and
// any character not in the enumerated special sets maps to CatNormal. This
// includes all kana, kanji and alphanumerics, as well as everything outside
// the Basic Multilingual Plane. Straight quotation marks report
// CatQuoteOpen; see quoteOpenChars.
func Classify(r rune) Category {
	if r < 0 || r > 0xFFFF {
		return CatNormal
	}
	return Category(charTable.Lookup(uint16(r)) & categoryMask)
}
