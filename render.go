package tategaki

// Renderer is the seam between the layout engine and a platform. The engine
// walks a Document and reports drawing events; implementations map them to
// concrete primitives (CSS transforms, native view transforms, character
// cells). The engine itself has no framework dependency.
//
// Events arrive in render order: columns rightmost first (Document slice
// order), content top-to-bottom within a column. A quoted span is reported
// with a single QuotedRun call - the whole run rotates as one block - while
// normal content arrives glyph by glyph, each carrying its own transform.
type Renderer interface {
	StartColumn(index, total int)
	Glyph(g Glyph)
	QuotedRun(glyphs []Glyph)
	EndColumn(index int)
}

// Render walks the document and drives r. It is a plain traversal; all
// layout decisions were made when the Document was composed.
func (doc *Document) Render(r Renderer) {
	total := len(doc.Columns)
	for i, col := range doc.Columns {
		r.StartColumn(i, total)
		for _, seg := range col.Segments {
			if seg.Kind == SegmentQuoted {
				r.QuotedRun(seg.Glyphs)
				continue
			}
			for _, g := range seg.Glyphs {
				r.Glyph(g)
			}
		}
		r.EndColumn(i)
	}
}
