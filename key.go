package probetable

// Key is an immutable table key. The hash is computed once at construction
// and reused by every lookup.
type Key struct {
	name string
	hash uint32
}

// NewKey returns a key for the given name with its hash precomputed.
func NewKey(name string) Key {
	return Key{name: name, hash: Hash(name)}
}

func (k Key) Name() string {
	return k.name
}

func (k Key) Hash() uint32 {
	return k.hash
}

// Equal reports whether both keys have the same name.
// Equal hashes alone never make two keys the same key.
func (k Key) Equal(other Key) bool {
	return k.name == other.name
}

func (k Key) String() string {
	return k.name
}
