package tablefunc

import "sync"

// Catalog receives the providers produced by the multi-table
// orchestrator. A host engine supplies its own implementation;
// MemoryCatalog is a self-contained one for embedding and tests.
type Catalog interface {
	// Register installs t under name, replacing any provider already
	// registered under it.
	Register(name string, t *Table) error
}

// MemoryCatalog is an in-process Catalog backed by a map. Safe for
// concurrent use.
type MemoryCatalog struct {
	mu     sync.RWMutex
	tables map[string]*Table
}

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{tables: make(map[string]*Table)}
}

func (c *MemoryCatalog) Register(name string, t *Table) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if old, ok := c.tables[name]; ok {
		old.Release()
	}
	c.tables[name] = t
	return nil
}

// Lookup returns the provider registered under name, if any.
func (c *MemoryCatalog) Lookup(name string) (*Table, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.tables[name]
	return t, ok
}

// Names returns the registered table names in unspecified order.
func (c *MemoryCatalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.tables))
	for name := range c.tables {
		names = append(names, name)
	}
	return names
}
