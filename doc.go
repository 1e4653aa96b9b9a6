/*
Package tategaki converts horizontal Japanese input text into a vertical
(tategaki) rendering plan.

Tategaki is the traditional Japanese writing direction: columns are read
right-to-left, characters top-to-bottom within a column. Laying out
horizontal input vertically is not a plain transposition. A small, closed
set of characters needs special treatment: prolonged-sound marks, dashes
and ellipses rotate 90 degrees; brackets are replaced by dedicated vertical
presentation forms (CJK Compatibility Forms block); comma and full stop
move to the top-right corner of their cell; and quoted spans are kept
together and rotated as one horizontal block.

The engine is a pure library call:

	doc := tategaki.Layout("一行目\n二行目")

It classifies every character, partitions each line into normal and quoted
spans, and produces a Document: one Column per non-empty input line
(first line = rightmost column), each carrying glyphs with their display
form and transform. The Document is plain data; platform renderers (DOM,
native views, terminals) map each transform to a concrete primitive. See
the Renderer interface and package termrender for an example consumer.

There is no error path. Malformed input - unmatched quotes, stray
brackets, empty lines - degrades to defined fallbacks rather than failing,
since layout runs inside render paths.

Further Reading

	https://www.unicode.org/reports/tr50/   (Unicode vertical text layout)
	https://www.w3.org/TR/jlreq/            (Requirements for Japanese text layout)

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package tategaki

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tategaki'
func tracer() tracing.Trace {
	return tracing.Select("tategaki")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
