package probetable

// slot is the state tag of an entry.
type slot uint8

const (
	// Never written, or reset by a resize. Zero value, so freshly allocated
	// entries are empty.
	slotEmpty slot = iota
	// Previously occupied. Still counted and still part of probe chains.
	slotTombstone
	slotOccupied
)

func (s slot) String() string {
	switch s {
	case slotEmpty:
		return "empty"
	case slotTombstone:
		return "tombstone"
	case slotOccupied:
		return "occupied"
	default:
		return "invalid"
	}
}

// entry is a single table slot. key and value are only meaningful when the
// slot is occupied.
type entry[V any] struct {
	state slot
	key   Key
	value V
}

func (e *entry[V]) occupy(key Key, value V) {
	e.state = slotOccupied
	e.key = key
	e.value = value
}

// bury turns an occupied entry into a tombstone. Key and value are dropped
// so the table doesn't keep them reachable.
func (e *entry[V]) bury() {
	var emptyV V

	e.state = slotTombstone
	e.key = Key{}
	e.value = emptyV
}
