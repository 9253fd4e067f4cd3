// Package station holds named location records in input order.
package station

import (
	"iter"

	"github.com/woozymasta/geostart/internal/geo"
)

// Table maps unique station names to values and remembers the order in
// which names were first seen. Setting an existing name replaces its value
// but keeps its position.
type Table[T any] struct {
	values map[string]T
	names  []string
}

// Offsets is the input side of a batch: station name to meter offset.
type Offsets = Table[geo.Offset]

// Positions is the output side of a batch: station name to coordinate.
type Positions = Table[geo.Coordinate]

// NewTable returns an empty table sized for n records.
func NewTable[T any](n int) *Table[T] {
	return &Table[T]{
		values: make(map[string]T, n),
		names:  make([]string, 0, n),
	}
}

// Set stores v under name.
func (t *Table[T]) Set(name string, v T) {
	if t.values == nil {
		t.values = make(map[string]T)
	}
	if _, ok := t.values[name]; !ok {
		t.names = append(t.names, name)
	}
	t.values[name] = v
}

// Get returns the value stored under name.
func (t *Table[T]) Get(name string) (T, bool) {
	v, ok := t.values[name]
	return v, ok
}

// Len returns the number of distinct names.
func (t *Table[T]) Len() int { return len(t.names) }

// Names returns a copy of the names in order.
func (t *Table[T]) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// All iterates over the records in order.
func (t *Table[T]) All() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		for _, name := range t.names {
			if !yield(name, t.values[name]) {
				return
			}
		}
	}
}
