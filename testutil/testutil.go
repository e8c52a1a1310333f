package testutil

import (
	"math/rand"
	"slices"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint32n returns a pseudo-random identifier in [0,n).
func (r *RNG) Uint32n(n uint32) uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return uint32(r.rand.Int63n(int64(n)))
}

// Perm returns n distinct identifiers 0..n-1 in random order.
func (r *RNG) Perm(n int) []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]uint32, n)
	for i, v := range r.rand.Perm(n) {
		out[i] = uint32(v)
	}
	return out
}

// Shuffle permutes ids in place.
func (r *RNG) Shuffle(ids []uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
}

// ReferenceSet is a map-backed set used as an oracle in differential tests.
type ReferenceSet struct {
	members map[uint32]struct{}
}

// NewReferenceSet creates an empty ReferenceSet.
func NewReferenceSet() *ReferenceSet {
	return &ReferenceSet{members: make(map[uint32]struct{})}
}

// Insert adds id and reports whether it was absent.
func (s *ReferenceSet) Insert(id uint32) bool {
	if _, ok := s.members[id]; ok {
		return false
	}
	s.members[id] = struct{}{}
	return true
}

// Remove deletes id and reports whether it was present.
func (s *ReferenceSet) Remove(id uint32) bool {
	if _, ok := s.members[id]; !ok {
		return false
	}
	delete(s.members, id)
	return true
}

// Contains reports whether id is present.
func (s *ReferenceSet) Contains(id uint32) bool {
	_, ok := s.members[id]
	return ok
}

// Len returns the number of members.
func (s *ReferenceSet) Len() int {
	return len(s.members)
}

// Sorted returns the members in ascending order.
func (s *ReferenceSet) Sorted() []uint32 {
	out := make([]uint32, 0, len(s.members))
	for id := range s.members {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// Pick returns a random member. The set must not be empty.
func (s *ReferenceSet) Pick(r *RNG) uint32 {
	sorted := s.Sorted()
	return sorted[r.Intn(len(sorted))]
}
