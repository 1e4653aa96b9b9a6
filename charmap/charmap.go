// Package charmap provides a compact lookup table from BMP code units to
// small payload values. The layout engine uses one process-wide table to
// resolve a character's layout category and substitution slot with two
// array reads.
package charmap

// Table maps BMP code units (0..65535) to uint16 payloads.
// It's a two-level page table:
//   - top[hi] = page index (1..NumPages), or 0 meaning "page absent".
//   - pages is a flat array of NumPages*256 entries.
//
// Lookup is O(1) with two array reads and a couple of ops.
//
// Memory:
//   - top: 256 * 2 = 512 bytes
//   - Each populated page: 256 * 2 = 512 bytes
//
// The special characters of Japanese vertical layout cluster in a handful
// of high-byte blocks (CJK punctuation, compatibility forms, ASCII), so a
// populated table stays in the low single-digit KB range.
type Table struct {
	top   [256]uint16 // page index (1-based); 0 means none
	pages []uint16    // flat: NumPages*256
}

// Lookup returns the payload for a BMP code unit.
// Returns 0 if absent.
func (t *Table) Lookup(bmp uint16) uint16 {
	hi := bmp >> 8
	pi := t.top[hi]
	if pi == 0 {
		return 0
	}
	base := int(pi-1) << 8 // *256
	return t.pages[base+int(bmp&0xFF)]
}

// NumPages returns the number of allocated pages.
func (t *Table) NumPages() int { return len(t.pages) >> 8 }

// ensurePage ensures that the page for high byte hi exists.
// Returns the 1-based page index.
func (t *Table) ensurePage(hi uint16) uint16 {
	pi := t.top[hi]
	if pi != 0 {
		return pi
	}
	// allocate a new page (256 uint16 initialized to 0)
	t.pages = append(t.pages, make([]uint16, 256)...)
	pi = uint16(len(t.pages) >> 8) // number of pages, 1-based index
	t.top[hi] = pi
	return pi
}

// Set sets mapping bmp -> payload (payload may be 0 to clear).
func (t *Table) Set(bmp uint16, payload uint16) {
	hi := bmp >> 8
	pi := t.top[hi]
	if pi == 0 {
		if payload == 0 {
			return
		}
		pi = t.ensurePage(hi)
	}
	base := int(pi-1) << 8
	t.pages[base+int(bmp&0xFF)] = payload
}
