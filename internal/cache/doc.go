// Package cache stores encoded renders so repeated requests can skip the
// pipeline.
//
// # Memory[K, V]
//
// A thread-safe LRU cache with a soft limit. When an insertion takes the
// cache over its limit, the least recently used quarter is evicted.
//
//	m := cache.NewMemory[string, []byte](256)
//	m.Set("hand.png", data)
//	data, ok := m.Get("hand.png")
//
// # DiskStore
//
// Flat directory of files keyed by caller-chosen names. Writes go to a
// temporary file that is renamed into place, so readers never see a
// partially written render.
//
// # Results
//
// Memory in front of a DiskStore. Lookups report which tier answered;
// disk hits are promoted into memory.
//
// # Thread Safety
//
// All types are safe for concurrent use. Memory and Results must not be
// copied after creation (they contain mutexes).
package cache
