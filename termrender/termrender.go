// Package termrender renders a layout Document as a monospaced terminal
// preview: one text column per input line, joined right-to-left. It is the
// in-repo reference implementation of the tategaki.Renderer interface and
// the human-readable output path of the CLI.
//
// A character grid cannot rotate glyphs, so the preview approximates:
// rotated characters and substituted brackets are shown by their display
// form (the vertical presentation forms carry the rotation visually), and
// quoted runs are dimmed to mark that they render as one rotated block.
package termrender

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/npillmayer/tategaki"
)

// Preview renders doc with a default renderer.
func Preview(doc *tategaki.Document) string {
	r := New()
	doc.Render(r)
	return r.String()
}

// Renderer collects drawing events into a terminal string. Use one
// Renderer per Document walk.
type Renderer struct {
	quoted  lipgloss.Style
	gutter  string
	columns []string // finished columns, rightmost first
	current []string // rows of the column being built
}

// New creates a terminal renderer with default styling.
func New() *Renderer {
	return &Renderer{
		quoted: lipgloss.NewStyle().Faint(true),
		gutter: "  ",
	}
}

// StartColumn begins collecting rows for one column.
func (r *Renderer) StartColumn(index, total int) {
	r.current = nil
}

// Glyph appends one character cell to the current column.
func (r *Renderer) Glyph(g tategaki.Glyph) {
	r.current = append(r.current, string(g.Display))
}

// QuotedRun appends a quoted span, one cell per character, dimmed.
func (r *Renderer) QuotedRun(glyphs []tategaki.Glyph) {
	for _, g := range glyphs {
		r.current = append(r.current, r.quoted.Render(string(g.Display)))
	}
}

// EndColumn finishes the current column.
func (r *Renderer) EndColumn(index int) {
	r.columns = append(r.columns, strings.Join(r.current, "\n"))
	r.current = nil
}

// String returns the assembled preview. Columns arrive rightmost-first
// from the Document walk; a terminal draws left to right, so the join
// reverses them.
func (r *Renderer) String() string {
	if len(r.columns) == 0 {
		return ""
	}
	blocks := make([]string, 0, 2*len(r.columns)-1)
	for i := len(r.columns) - 1; i >= 0; i-- {
		blocks = append(blocks, r.columns[i])
		if i > 0 {
			blocks = append(blocks, r.gutter)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}
