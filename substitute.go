package tategaki

// Substitute returns the dedicated vertical presentation form for a bracket
// character, e.g. '「' => '﹁' and '(' => '︵'. Outside the substitution
// table it is the identity. Substitution is display-only: layout keeps the
// logical character in Glyph.Char and puts the presentation form in
// Glyph.Display.
func Substitute(r rune) rune {
	if r < 0 || r > 0xFFFF {
		return r
	}
	slot := charTable.Lookup(uint16(r)) >> categoryBits
	if slot == 0 {
		return r
	}
	return verticalForms[slot-1]
}
