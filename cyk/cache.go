package cyk

import (
	"sync"

	"github.com/npillmayer/chomsky/grammar"
)

// Cache holds indexes for grammars, keyed by grammar fingerprint. Two grammars
// with the same start symbol and the same set of productions share an index.
//
// A Cache is safe for concurrent use.
type Cache struct {
	mx      sync.Mutex
	indexes map[string]*Index
}

// NewCache creates an empty index cache.
func NewCache() *Cache {
	return &Cache{indexes: make(map[string]*Index)}
}

// Index returns the index for g, building it if not yet cached.
func (c *Cache) Index(g *grammar.Grammar) (*Index, error) {
	fp, err := g.Fingerprint()
	if err != nil {
		return nil, err
	}
	c.mx.Lock()
	defer c.mx.Unlock()
	if ix, ok := c.indexes[fp]; ok {
		tracer().Debugf("index cache hit for %s", g.Name)
		return ix, nil
	}
	ix, err := BuildIndex(g)
	if err != nil {
		return nil, err
	}
	c.indexes[fp] = ix
	return ix, nil
}

// Len returns the number of cached indexes.
func (c *Cache) Len() int {
	c.mx.Lock()
	defer c.mx.Unlock()
	return len(c.indexes)
}
