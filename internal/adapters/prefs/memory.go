// Package prefs stores per-user tip flags such as favorites and implemented tips.
package prefs

import (
	"slices"
	"sync"
)

// Memory is an in-memory ports.PreferenceStore.
type Memory struct {
	mu  sync.RWMutex
	ids map[int]struct{}
}

// NewMemory returns a store with the given ids already set.
func NewMemory(ids ...int) *Memory {
	m := &Memory{ids: make(map[int]struct{}, len(ids))}
	for _, id := range ids {
		m.ids[id] = struct{}{}
	}

	return m
}

// Get reports whether tipID is set.
func (m *Memory) Get(tipID int) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.ids[tipID]

	return ok
}

// Set turns the flag for tipID on or off. It never fails.
func (m *Memory) Set(tipID int, on bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if on {
		m.ids[tipID] = struct{}{}
	} else {
		delete(m.ids, tipID)
	}

	return nil
}

// IDs returns the set ids in ascending order.
func (m *Memory) IDs() []int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return sortedIDs(m.ids)
}

func sortedIDs(set map[int]struct{}) []int {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	return ids
}
