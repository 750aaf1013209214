package cache

import (
	"errors"
	"fmt"
)

// Source identifies which tier answered a lookup.
type Source int

const (
	// Miss means no tier holds the entry.
	Miss Source = iota
	// FromMemory means the in-memory LRU answered.
	FromMemory
	// FromDisk means the disk store answered.
	FromDisk
)

// String returns a human readable tier name.
func (s Source) String() string {
	switch s {
	case FromMemory:
		return "memory"
	case FromDisk:
		return "disk"
	default:
		return "miss"
	}
}

// Results caches encoded renders in memory in front of a DiskStore.
// It is safe for concurrent use.
type Results struct {
	memory *Memory[string, []byte]
	disk   DiskStore
}

// NewResults creates a Results over dir keeping at most about memEntries
// renders in memory. A memEntries of 0 or less disables the memory tier.
func NewResults(dir string, memEntries int) *Results {
	r := &Results{disk: DiskStore{Dir: dir}}
	if memEntries > 0 {
		r.memory = NewMemory[string, []byte](memEntries)
	}
	return r
}

// Get returns the render stored under name and the tier that held it.
// A disk hit is promoted into memory. Missing entries return (nil, Miss, nil);
// other disk failures are returned as errors.
func (r *Results) Get(name string) ([]byte, Source, error) {
	if err := ValidName(name); err != nil {
		return nil, Miss, err
	}

	if r.memory != nil {
		if data, ok := r.memory.Get(name); ok {
			return data, FromMemory, nil
		}
	}

	data, err := r.disk.Load(name)
	if errors.Is(err, ErrNotFound) {
		return nil, Miss, nil
	}
	if err != nil {
		return nil, Miss, err
	}

	if r.memory != nil {
		r.memory.Set(name, data)
	}
	return data, FromDisk, nil
}

// Put stores a render under name in both tiers.
func (r *Results) Put(name string, data []byte) error {
	if err := r.disk.Save(name, data); err != nil {
		return err
	}
	if r.memory != nil {
		r.memory.Set(name, data)
	}
	return nil
}

// Remove deletes a render from both tiers. It returns an error wrapping
// ErrNotFound only if neither tier held it.
func (r *Results) Remove(name string) error {
	inMemory := false
	if r.memory != nil {
		inMemory = r.memory.Delete(name)
	}

	err := r.disk.Remove(name)
	if errors.Is(err, ErrNotFound) && inMemory {
		return nil
	}
	if err != nil {
		return fmt.Errorf("remove render: %w", err)
	}
	return nil
}

// Stats returns statistics of the memory tier.
func (r *Results) Stats() Stats {
	if r.memory == nil {
		return Stats{}
	}
	return r.memory.Stats()
}
