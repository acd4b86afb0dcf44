// Package testutil holds helpers shared by the package tests.
package testutil

import (
	"math/rand"
	"sort"
)

// SortedSet is a plain slice-backed set of ints used as the reference
// model in property tests. Slow and obviously correct.
type SortedSet struct {
	keys []int
}

// Add inserts a key and reports whether it was absent.
func (s *SortedSet) Add(key int) bool {
	i := sort.SearchInts(s.keys, key)
	if i < len(s.keys) && s.keys[i] == key {
		return false
	}
	s.keys = append(s.keys, 0)
	copy(s.keys[i+1:], s.keys[i:])
	s.keys[i] = key
	return true
}

// Remove deletes a key and reports whether it was present.
func (s *SortedSet) Remove(key int) bool {
	i := sort.SearchInts(s.keys, key)
	if i == len(s.keys) || s.keys[i] != key {
		return false
	}
	s.keys = append(s.keys[:i], s.keys[i+1:]...)
	return true
}

// Contains reports whether a key is present.
func (s *SortedSet) Contains(key int) bool {
	i := sort.SearchInts(s.keys, key)
	return i < len(s.keys) && s.keys[i] == key
}

// Len returns the number of keys.
func (s *SortedSet) Len() int { return len(s.keys) }

// Keys returns the keys in ascending order. The slice is shared, do
// not mutate it.
func (s *SortedSet) Keys() []int { return s.keys }

// Pick returns a random present key. The set must not be empty.
func (s *SortedSet) Pick(rng *rand.Rand) int {
	return s.keys[rng.Intn(len(s.keys))]
}
