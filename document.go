package tategaki

import (
	"encoding/json"
	"strings"
)

// Category classifies a single character for vertical layout.
// Membership is a pure function of the character; the only context-dependent
// aspect is the open/close role of straight quotation marks, which the
// segmenter resolves by sequencing.
type Category int8

const (
	CatNormal             Category = iota // upright, no special treatment
	CatRotate                             // rotated 90 degrees clockwise
	CatRepositionTopRight                 // nudged to the top-right corner of its cell
	CatSubstitute                         // replaced by a vertical presentation form
	CatQuoteOpen
	CatQuoteClose
)

func (c Category) String() string {
	switch c {
	case CatNormal:
		return "normal"
	case CatRotate:
		return "rotate"
	case CatRepositionTopRight:
		return "reposition-top-right"
	case CatSubstitute:
		return "substitute"
	case CatQuoteOpen:
		return "quote-open"
	case CatQuoteClose:
		return "quote-close"
	}
	return "normal"
}

// MarshalJSON encodes the category as its name, not a bare enum number.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// Transform is the rendering primitive a glyph or quoted run maps to.
// The presentation layer decides how to realize it (CSS transform, native
// view transform, or an approximation in a character grid).
type Transform int8

const (
	TransformNone           Transform = iota
	TransformRotate                   // 90 degrees clockwise
	TransformOffsetTopRight           // positional offset, no rotation
)

func (t Transform) String() string {
	switch t {
	case TransformNone:
		return "none"
	case TransformRotate:
		return "rotate"
	case TransformOffsetTopRight:
		return "offset-top-right"
	}
	return "none"
}

func (t Transform) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// Glyph is one laid-out character. Char is the logical input rune and is
// never altered; Display is what the renderer draws (it differs from Char
// only for substituted brackets). Reading Char of every glyph in
// column/top-to-bottom order reconstructs the input line exactly.
type Glyph struct {
	Char      rune
	Display   rune
	Category  Category
	Transform Transform
}

// MarshalJSON encodes runes as strings; code-point integers are useless to
// a downstream renderer.
func (g Glyph) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Char      string    `json:"char"`
		Display   string    `json:"display"`
		Category  Category  `json:"category"`
		Transform Transform `json:"transform"`
	}{string(g.Char), string(g.Display), g.Category, g.Transform})
}

// SegmentKind distinguishes ordinary runs from quoted spans.
type SegmentKind int8

const (
	SegmentNormal SegmentKind = iota
	SegmentQuoted
)

func (k SegmentKind) String() string {
	if k == SegmentQuoted {
		return "quoted"
	}
	return "normal"
}

func (k SegmentKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Segment is a run of glyphs within one column. A quoted segment is atomic:
// its Transform applies to the whole run (the span rotates as one block) and
// its glyphs carry no per-glyph transform. A normal segment has
// TransformNone at segment level and per-glyph transforms.
type Segment struct {
	Kind      SegmentKind `json:"kind"`
	Transform Transform   `json:"transform"`
	Glyphs    []Glyph     `json:"glyphs"`
}

// Text returns the logical characters of the segment.
func (seg Segment) Text() string {
	var b strings.Builder
	for _, g := range seg.Glyphs {
		b.WriteRune(g.Char)
	}
	return b.String()
}

// Column is the rendered form of one input line: segments in original
// left-to-right order of the source, drawn top-to-bottom.
type Column struct {
	Segments []Segment `json:"segments"`
}

// Text reconstructs the source line of the column.
func (col Column) Text() string {
	var b strings.Builder
	for _, seg := range col.Segments {
		for _, g := range seg.Glyphs {
			b.WriteRune(g.Char)
		}
	}
	return b.String()
}

// GlyphCount returns the number of glyphs in the column.
func (col Column) GlyphCount() int {
	n := 0
	for _, seg := range col.Segments {
		n += len(seg.Glyphs)
	}
	return n
}

// Document is the engine's sole output: columns in render order, index 0
// being the rightmost column (the first non-empty input line). A Document
// is recomputed fresh from input text on each Layout call and is never
// mutated afterwards.
type Document struct {
	Columns []Column `json:"columns"`
}

// Text reconstructs the non-empty input lines, joined by newlines.
// Dropped empty lines are not restored.
func (doc *Document) Text() string {
	lines := make([]string, 0, len(doc.Columns))
	for _, col := range doc.Columns {
		lines = append(lines, col.Text())
	}
	return strings.Join(lines, "\n")
}
