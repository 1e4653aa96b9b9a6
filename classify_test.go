package tategaki

import (
	"testing"
)

func TestClassifyRotate(t *testing.T) {
	for _, r := range []rune{'ー', 'ｰ', '−', '－', '–', '—', '〜', '～', '〰', '…', '‥', '⋯'} {
		if cat := Classify(r); cat != CatRotate {
			t.Fatalf("%q should classify as rotate, is %s", r, cat)
		}
	}
}

func TestClassifyReposition(t *testing.T) {
	for _, r := range []rune{'、', '，', '。', '．'} {
		if cat := Classify(r); cat != CatRepositionTopRight {
			t.Fatalf("%q should classify as reposition-top-right, is %s", r, cat)
		}
	}
}

func TestClassifySubstitute(t *testing.T) {
	for _, s := range substitutions {
		if cat := Classify(s.from); cat != CatSubstitute {
			t.Fatalf("%q should classify as substitute, is %s", s.from, cat)
		}
	}
}

func TestClassifyQuotes(t *testing.T) {
	for _, r := range []rune{'“', '‘', '"', '\''} {
		if cat := Classify(r); cat != CatQuoteOpen {
			t.Fatalf("%q should classify as quote-open, is %s", r, cat)
		}
	}
	for _, r := range []rune{'”', '’'} {
		if cat := Classify(r); cat != CatQuoteClose {
			t.Fatalf("%q should classify as quote-close, is %s", r, cat)
		}
	}
}

func TestClassifyNormal(t *testing.T) {
	for _, r := range []rune{'あ', 'ア', '漢', 'a', 'Z', '7', '０', '・', ' ', '　'} {
		if cat := Classify(r); cat != CatNormal {
			t.Fatalf("%q should classify as normal, is %s", r, cat)
		}
	}
}

// Classify must be total: defined for every scalar value, never panicking,
// and stable across repeated calls.
func TestClassifyTotality(t *testing.T) {
	probes := []rune{0, 'A', 'ー', 0xFFFF, 0x10000, 0x1F600, -1, 0x10FFFF}
	for _, r := range probes {
		first := Classify(r)
		if second := Classify(r); second != first {
			t.Fatalf("classify(%#x) not stable: %s then %s", r, first, second)
		}
	}
	// full BMP sweep; every code unit must map to one of the six categories
	for r := rune(0); r <= 0xFFFF; r++ {
		switch Classify(r) {
		case CatNormal, CatRotate, CatRepositionTopRight, CatSubstitute, CatQuoteOpen, CatQuoteClose:
		default:
			t.Fatalf("classify(%#x) returned an unknown category", r)
		}
	}
}

func TestClassifyBeyondBMP(t *testing.T) {
	if cat := Classify(0x1F600); cat != CatNormal {
		t.Fatalf("non-BMP rune should classify as normal, is %s", cat)
	}
}

// Symbol characters stay upright unless symbol rotation is enabled.
func TestSymbolsNotRotatedByDefault(t *testing.T) {
	for _, r := range symbolRotateChars {
		if cat := Classify(r); cat != CatNormal {
			t.Fatalf("%q should classify as normal by default, is %s", r, cat)
		}
	}
}
