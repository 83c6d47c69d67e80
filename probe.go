package probetable

import (
	"errors"
	"fmt"
)

// ErrProbeExhausted is the panic value (wrapped) raised when a probe visits
// every slot without reaching an empty one. The load factor check in set
// makes this impossible, so seeing it means that check was bypassed.
var ErrProbeExhausted = errors.New("probetable: probe sequence exhausted")

type probeKind uint8

const (
	// The key is stored at index.
	probeFound probeKind = iota
	// index is the empty slot that ended the scan, no tombstone came before it.
	probeAvailable
	// index is the first tombstone seen before the empty slot that ended the scan.
	probeTombstone
)

type probeResult struct {
	kind  probeKind
	index int
}

// findEntry runs the linear probe for key. entries must not be empty.
func findEntry[V any](entries []entry[V], key Key) probeResult {
	capacity := len(entries)
	index := int(uint64(key.hash) % uint64(capacity))
	tombstone := -1

	for range capacity {
		e := &entries[index]

		switch e.state {
		case slotOccupied:
			if e.key.Equal(key) {
				return probeResult{kind: probeFound, index: index}
			}
		case slotTombstone:
			if tombstone < 0 {
				tombstone = index
			}
		case slotEmpty:
			if tombstone >= 0 {
				return probeResult{kind: probeTombstone, index: tombstone}
			}

			return probeResult{kind: probeAvailable, index: index}
		}

		index++
		if index == capacity {
			index = 0
		}
	}

	panic(fmt.Errorf("%w: key %q, capacity %d", ErrProbeExhausted, key.name, capacity))
}
