// Package garden holds a read-only plant inventory: an ordered mapping
// from plant name to a non-negative count.
package garden

import (
	"errors"
	"fmt"
)

// Sentinel errors for inventory construction.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrDuplicateKey = errors.New("duplicate key")
)

// DuplicateKeyError reports a plant name that appears more than once in
// the construction entries.
type DuplicateKeyError struct {
	Name string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key: plant %q listed more than once", e.Name)
}

// Unwrap lets errors.Is match ErrDuplicateKey.
func (e *DuplicateKeyError) Unwrap() error { return ErrDuplicateKey }

// Entry is one plant and its count.
type Entry struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

// Inventory is an immutable plant inventory preserving insertion order.
type Inventory struct {
	order  []string
	counts map[string]int
}

// New builds an Inventory from entries. Names must be unique and counts
// non-negative.
func New(entries []Entry) (*Inventory, error) {
	inv := &Inventory{
		order:  make([]string, 0, len(entries)),
		counts: make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if e.Count < 0 {
			return nil, fmt.Errorf("%w: plant %q has negative count %d", ErrInvalidInput, e.Name, e.Count)
		}
		if _, exists := inv.counts[e.Name]; exists {
			return nil, &DuplicateKeyError{Name: e.Name}
		}
		inv.order = append(inv.order, e.Name)
		inv.counts[e.Name] = e.Count
	}
	return inv, nil
}

// CountOf returns the count for name and whether name is present.
func (inv *Inventory) CountOf(name string) (int, bool) {
	count, ok := inv.counts[name]
	return count, ok
}

// Len returns the number of plants.
func (inv *Inventory) Len() int { return len(inv.order) }

// Entries returns the inventory in insertion order.
func (inv *Inventory) Entries() []Entry {
	out := make([]Entry, 0, len(inv.order))
	for _, name := range inv.order {
		out = append(out, Entry{Name: name, Count: inv.counts[name]})
	}
	return out
}
