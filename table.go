package probetable

import "iter"

const (
	// Capacity of the first allocation and the floor for every growth.
	minCapacity = 8

	// Maximum load factor is maxLoadNum/maxLoadDen (0.75), checked in integers.
	maxLoadNum = 3
	maxLoadDen = 4
)

// table is the open addressing core shared by Table and KeySet.
//
// count is the number of non-empty slots: occupied plus tombstones. It never
// goes down on delete, which is what keeps at least one empty slot in every
// probe sequence. live is the number of occupied slots.
type table[V any] struct {
	entries []entry[V]
	count   int
	live    int

	capacityHint int
	onGrow       func(from, to int)
}

type Option[V any] func(t *table[V])

// Pre-size the table so that hint keys fit without growing.
func WithCapacity[V any](hint int) Option[V] {
	return func(t *table[V]) {
		t.capacityHint = hint
	}
}

// Register a callback that runs after every growth-triggered resize.
func WithGrowHook[V any](f func(from, to int)) Option[V] {
	return func(t *table[V]) {
		t.onGrow = f
	}
}

func (t *table[V]) init(opts ...Option[V]) {
	for _, opt := range opts {
		opt(t)
	}

	if t.capacityHint > 0 {
		t.entries = make([]entry[V], capacityFor(t.capacityHint))
	}
}

// Count returns the number of non-empty slots, tombstones included.
// Use Len for the number of keys.
func (t *table[V]) Count() int {
	return t.count
}

// Len returns the number of live keys.
func (t *table[V]) Len() int {
	return t.live
}

func (t *table[V]) Capacity() int {
	return len(t.entries)
}

// EffectiveCapacity is the highest count the table holds before it grows.
func (t *table[V]) EffectiveCapacity() int {
	return len(t.entries) * maxLoadNum / maxLoadDen
}

func (t *table[V]) Stats() Stats {
	stats := Stats{
		Size:              t.live,
		Tombstones:        t.count - t.live,
		Count:             t.count,
		Capacity:          len(t.entries),
		EffectiveCapacity: t.EffectiveCapacity(),
	}

	if stats.Capacity > 0 {
		stats.TombstonesCapacityRatio = float32(stats.Tombstones) / float32(stats.Capacity)
	}
	if stats.Size > 0 {
		stats.TombstonesSizeRatio = float32(stats.Tombstones) / float32(stats.Size)
	}

	return stats
}

func (t *table[V]) get(key Key) (V, bool) {
	var emptyV V

	// Nothing to probe, and the modulo in findEntry needs a non-zero capacity.
	if len(t.entries) == 0 {
		return emptyV, false
	}

	res := findEntry(t.entries, key)
	if res.kind != probeFound {
		return emptyV, false
	}

	return t.entries[res.index].value, true
}

// set inserts or overwrites key. Returns whether the key is new.
func (t *table[V]) set(key Key, value V) bool {
	// 1. Load factor check, before the probe and regardless of whether
	// the key is already present.
	if (t.count+1)*maxLoadDen > len(t.entries)*maxLoadNum {
		t.grow()
	}

	res := findEntry(t.entries, key)
	e := &t.entries[res.index]

	switch res.kind {
	case probeFound:
		// 2. Update in place
		e.value = value
		return false
	case probeAvailable:
		// 3. Fresh slot
		t.count++
	case probeTombstone:
		// 4. Reused tombstone, already counted
	}

	e.occupy(key, value)
	t.live++

	return true
}

// delete buries key. Returns whether the key was present.
func (t *table[V]) delete(key Key) bool {
	if t.count == 0 {
		return false
	}

	res := findEntry(t.entries, key)
	if res.kind != probeFound {
		return false
	}

	// Tombstone keeps the probe chain intact and stays counted.
	t.entries[res.index].bury()
	t.live--

	return true
}

func (t *table[V]) grow() {
	from := len(t.entries)
	to := minCapacity
	if from >= minCapacity {
		to = from * 2
	}

	t.adjustCapacity(to)

	if t.onGrow != nil {
		t.onGrow(from, to)
	}
}

// adjustCapacity rehashes every occupied entry into a fresh array of the
// given capacity. Tombstones are dropped.
func (t *table[V]) adjustCapacity(capacity int) {
	entries := make([]entry[V], capacity)
	count := 0

	for i := range t.entries {
		e := &t.entries[i]
		if e.state != slotOccupied {
			continue
		}

		res := findEntry(entries, e.key)
		entries[res.index].occupy(e.key, e.value)
		count++
	}

	t.entries = entries
	t.count = count
	t.live = count
}

// Compact purges all tombstones by rehashing at the current capacity.
// It never shrinks the table.
func (t *table[V]) Compact() {
	if len(t.entries) == 0 {
		return
	}

	t.adjustCapacity(len(t.entries))
}

// Reset empties every slot, keeping the capacity.
func (t *table[V]) Reset() {
	clear(t.entries)

	t.count = 0
	t.live = 0
}

func (t *table[V]) all() iter.Seq2[Key, V] {
	return func(yield func(Key, V) bool) {
		for i := range t.entries {
			e := &t.entries[i]
			if e.state != slotOccupied {
				continue
			}

			if !yield(e.key, e.value) {
				return
			}
		}
	}
}
