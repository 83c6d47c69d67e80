package probetable

type Stats struct {
	// Number of live keys.
	Size int
	// Deleted slots still holding their place in probe chains.
	Tombstones int
	// Size + Tombstones, the figure the load factor is computed from.
	Count             int
	Capacity          int
	EffectiveCapacity int

	TombstonesCapacityRatio float32
	TombstonesSizeRatio     float32
}
