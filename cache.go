package tategaki

import (
	"sync"
)

// Cache memoizes Documents by exact input string. Layout is referentially
// transparent, so the memo is exact: a hit returns the very Document
// computed for the first call. Useful when the same verse is re-rendered
// across scroll positions.
//
// A Cache is safe for concurrent use. It grows without bound until Reset;
// callers owning long-lived caches should reset on their own policy.
type Cache struct {
	mu   sync.RWMutex
	ly   *Layouter
	docs map[string]*Document
}

// NewCache wraps a Layouter with a memo. A nil layouter uses the default.
func NewCache(ly *Layouter) *Cache {
	if ly == nil {
		ly = defaultLayouter
	}
	return &Cache{ly: ly, docs: make(map[string]*Document)}
}

// Layout returns the memoized Document for text, computing it on first use.
func (c *Cache) Layout(text string) *Document {
	c.mu.RLock()
	doc, found := c.docs[text]
	c.mu.RUnlock()
	if found {
		return doc
	}
	doc = c.ly.Layout(text)
	c.mu.Lock()
	if cached, found := c.docs[text]; found {
		doc = cached // lost the race, keep the first Document
	} else {
		c.docs[text] = doc
	}
	c.mu.Unlock()
	return doc
}

// Len returns the number of memoized Documents.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.docs)
}

// Reset drops all memoized Documents.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.docs = make(map[string]*Document)
	c.mu.Unlock()
}
