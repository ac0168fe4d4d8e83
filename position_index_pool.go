package prs

import "sync"

// positionIndexPool is a pool of position indexes. The entry table and
// offsets arena together are over a megabyte, so reusing them across
// Compress calls matters more than for most pooled state.
var positionIndexPool = sync.Pool{
	New: func() any {
		return new(positionIndex)
	},
}

// acquirePositionIndex acquires a position index from the pool.
func acquirePositionIndex() *positionIndex {
	return positionIndexPool.Get().(*positionIndex)
}

// releasePositionIndex releases a position index to the pool. The arena is
// kept so the next compression can reuse its capacity; init overwrites all
// live state.
func releasePositionIndex(x *positionIndex) {
	if x == nil {
		return
	}

	positionIndexPool.Put(x)
}
