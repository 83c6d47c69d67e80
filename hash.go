package probetable

const (
	offset32 = 2166136261
	prime32  = 16777619
)

// Hash computes a 32-bit FNV-1a hash of the name's bytes.
// It's not cryptographic, collisions are expected and resolved by probing.
func Hash(name string) uint32 {
	hash := uint32(offset32)
	for i := 0; i < len(name); i++ {
		hash ^= uint32(name[i])
		hash *= prime32
	}

	return hash
}
