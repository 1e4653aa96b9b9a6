package charmap

import "testing"

func TestLookupAbsent(t *testing.T) {
	var table Table
	if p := table.Lookup(0x30FC); p != 0 {
		t.Fatalf("empty table lookup should be 0, is %d", p)
	}
	if n := table.NumPages(); n != 0 {
		t.Fatalf("empty table should have 0 pages, has %d", n)
	}
}

func TestSetAndLookup(t *testing.T) {
	var table Table
	table.Set(0x30FC, 7)
	table.Set(0x0028, 42)
	if p := table.Lookup(0x30FC); p != 7 {
		t.Fatalf("payload for 0x30FC should be 7, is %d", p)
	}
	if p := table.Lookup(0x0028); p != 42 {
		t.Fatalf("payload for 0x0028 should be 42, is %d", p)
	}
	if p := table.Lookup(0x30FD); p != 0 {
		t.Fatalf("unset code unit on populated page should be 0, is %d", p)
	}
}

func TestPageSharing(t *testing.T) {
	var table Table
	table.Set(0x3001, 1) // same high byte 0x30
	table.Set(0x30FC, 2)
	if n := table.NumPages(); n != 1 {
		t.Fatalf("code units in one block should share a page, have %d pages", n)
	}
	table.Set(0xFE41, 3)
	if n := table.NumPages(); n != 2 {
		t.Fatalf("second block should allocate a second page, have %d pages", n)
	}
}

func TestClearWithoutPage(t *testing.T) {
	var table Table
	table.Set(0x2026, 0) // clearing an absent entry must not allocate
	if n := table.NumPages(); n != 0 {
		t.Fatalf("clearing an absent entry should not allocate, have %d pages", n)
	}
}
