package tategaki

import (
	"strings"
)

// Layouter computes vertical rendering plans. The zero value is usable;
// NewLayouter applies options. Layouters are stateless and safe for
// concurrent use.
type Layouter struct {
	symbolRotation bool
}

// Option configures a Layouter.
type Option func(*Layouter)

// WithSymbolRotation additionally rotates symbol characters (colon,
// semicolon, arrows, equals, in full- and half-width forms). Most verse
// text never contains these; the default leaves them upright.
func WithSymbolRotation(on bool) Option {
	return func(ly *Layouter) {
		ly.symbolRotation = on
	}
}

// NewLayouter creates a Layouter with the given options applied.
func NewLayouter(opts ...Option) *Layouter {
	ly := &Layouter{}
	for _, opt := range opts {
		opt(ly)
	}
	return ly
}

var defaultLayouter = NewLayouter()

// Layout converts horizontal input text into a vertical rendering plan
// using the default layouter. See Layouter.Layout.
func Layout(text string) *Document {
	return defaultLayouter.Layout(text)
}

// Layout converts horizontal input text into a Document.
//
// Input is split at newlines; empty and whitespace-only lines are dropped.
// Each remaining line becomes one Column, the first line the rightmost
// (Columns[0]). Layout never fails: unmatched quotes, stray brackets and
// unknown characters all degrade to defined fallbacks.
//
// Layout is referentially transparent, so callers may cache Documents by
// input string; see Cache.
func (ly *Layouter) Layout(text string) *Document {
	doc := &Document{}
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		doc.Columns = append(doc.Columns, ly.composeColumn(line))
	}
	tracer().Debugf("layout: %d columns from %d input bytes", len(doc.Columns), len(text))
	return doc
}

func (ly *Layouter) composeColumn(line string) Column {
	raws := segmentLine(line)
	col := Column{Segments: make([]Segment, 0, len(raws))}
	for _, raw := range raws {
		if raw.quoted {
			col.Segments = append(col.Segments, quotedSegment(raw))
		} else {
			col.Segments = append(col.Segments, ly.normalSegment(raw))
		}
	}
	return col
}

// normalSegment classifies every character of an ordinary span and assigns
// per-glyph transforms.
func (ly *Layouter) normalSegment(raw rawSegment) Segment {
	seg := Segment{
		Kind:      SegmentNormal,
		Transform: TransformNone,
		Glyphs:    make([]Glyph, 0, len(raw.runes)),
	}
	for _, r := range raw.runes {
		cat := ly.classify(r)
		g := Glyph{Char: r, Display: r, Category: cat}
		switch cat {
		case CatRotate:
			g.Transform = TransformRotate
		case CatRepositionTopRight:
			g.Transform = TransformOffsetTopRight
		case CatSubstitute:
			g.Display = Substitute(r)
		case CatNormal, CatQuoteOpen, CatQuoteClose:
			// upright, identity transform; stray quote marks that never
			// formed a span render as ordinary content
		}
		seg.Glyphs = append(seg.Glyphs, g)
	}
	return seg
}

// quotedSegment wraps a quoted span as one atomic block-rotated run. Its
// content is not reclassified character-by-character: the whole span turns
// as a unit, so interior characters stay in their horizontal form.
func quotedSegment(raw rawSegment) Segment {
	seg := Segment{
		Kind:      SegmentQuoted,
		Transform: TransformRotate,
		Glyphs:    make([]Glyph, 0, len(raw.runes)),
	}
	for i, r := range raw.runes {
		cat := CatNormal
		if i == 0 {
			cat = CatQuoteOpen
		} else if raw.closed && i == len(raw.runes)-1 {
			cat = CatQuoteClose
		}
		seg.Glyphs = append(seg.Glyphs, Glyph{Char: r, Display: r, Category: cat, Transform: TransformNone})
	}
	return seg
}

func (ly *Layouter) classify(r rune) Category {
	if ly.symbolRotation && symbolRotate[r] {
		return CatRotate
	}
	return Classify(r)
}
