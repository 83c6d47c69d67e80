package probetable

import "iter"

// KeySet is a set of keys on top of the same probing table as Table,
// it just doesn't store values.
type KeySet struct {
	table[struct{}]
}

func NewKeySet(opts ...Option[struct{}]) *KeySet {
	var ks KeySet
	ks.init(opts...)

	return &ks
}

// Adds a key to the set. Returns whether the key is new.
func (ks *KeySet) Add(key Key) bool {
	return ks.set(key, struct{}{})
}

func (ks *KeySet) Has(key Key) bool {
	_, ok := ks.get(key)
	return ok
}

// Removes a key from the set. Returns whether it was present.
func (ks *KeySet) Remove(key Key) bool {
	return ks.delete(key)
}

func (ks *KeySet) Keys() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		for k := range ks.all() {
			if !yield(k) {
				return
			}
		}
	}
}
