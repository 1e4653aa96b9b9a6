package tategaki

// rawSegment is one span of an input line before classification: either
// ordinary content or a quoted span including its quote marks.
type rawSegment struct {
	quoted bool
	closed bool // quoted span saw its closing mark
	runes  []rune
}

// segmentLine partitions one line into alternating normal and quoted spans.
//
// The scan keeps at most one quote active: a candidate opening mark outside
// a span starts a quoted span and records the expected closing mark; the
// matching close ends it. Further opening marks inside a span are ordinary
// content (no nesting). A span still open at end of line is emitted
// open-ended rather than rejected.
func segmentLine(line string) []rawSegment {
	var segments []rawSegment
	var pending []rune
	inQuote := false
	var expectClose rune
	flush := func(quoted, closed bool) {
		if len(pending) == 0 {
			return
		}
		segments = append(segments, rawSegment{quoted: quoted, closed: closed, runes: pending})
		pending = nil
	}
	for _, r := range line {
		switch {
		case inQuote && r == expectClose:
			pending = append(pending, r)
			flush(true, true)
			inQuote = false
		case !inQuote && isQuoteOpenCandidate(r):
			flush(false, false)
			pending = append(pending, r)
			expectClose = matchingClose(r)
			inQuote = true
		default:
			pending = append(pending, r)
		}
	}
	flush(inQuote, false)
	return segments
}

func isQuoteOpenCandidate(r rune) bool {
	switch r {
	case '“', '‘', '"', '\'':
		return true
	}
	return false
}

// matchingClose returns the closing mark expected for an opening quote mark.
// Straight quotes close on the same literal character.
func matchingClose(open rune) rune {
	switch open {
	case '“':
		return '”'
	case '‘':
		return '’'
	}
	return open
}
