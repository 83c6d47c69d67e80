package probetable

import "iter"

// Table is a hash table keyed by Key, using open addressing with linear
// probing. Deleted keys leave tombstones behind, those are only purged when
// the table grows or on an explicit Compact.
//
// Table is not safe for concurrent use. Guard the whole table with a single
// lock if it's shared between goroutines.
//
// The zero Table is empty and ready to use.
type Table[V any] struct {
	table[V]
}

// Returns a new empty table. Without WithCapacity it starts with zero
// capacity and allocates on the first Set.
func New[V any](opts ...Option[V]) *Table[V] {
	var tb Table[V]
	tb.init(opts...)

	return &tb
}

// Get returns the value stored for key.
func (tb *Table[V]) Get(key Key) (V, bool) {
	return tb.get(key)
}

// Set stores value for key, overwriting any previous value.
func (tb *Table[V]) Set(key Key, value V) {
	tb.set(key, value)
}

// Delete removes key. Deleting a missing key is a no-op.
func (tb *Table[V]) Delete(key Key) {
	tb.delete(key)
}

// All iterates over the live bindings in slot order.
// The table must not be modified during iteration.
func (tb *Table[V]) All() iter.Seq2[Key, V] {
	return tb.all()
}
