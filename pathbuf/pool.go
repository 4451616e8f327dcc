package pathbuf

import "sync"

const (
	defaultCapacity = 256     // covers most paths without growth
	maxPooledLength = 1 << 16 // don't pool oversized storage
)

var storagePool = sync.Pool{
	New: func() any {
		s := make([]byte, defaultCapacity)
		return &s
	},
}

// rent returns a zero-offset slice with at least the requested capacity,
// pool-backed when the default size suffices.
func rent(capacity int) []byte {
	if capacity <= defaultCapacity {
		return *storagePool.Get().(*[]byte)
	}
	return make([]byte, capacity)
}

// giveBack returns storage to the pool. Oversized storage is left to the
// GC rather than pinning large arrays in the pool.
func giveBack(s []byte) {
	if cap(s) < defaultCapacity || cap(s) > maxPooledLength {
		return
	}
	s = s[:defaultCapacity]
	storagePool.Put(&s)
}
