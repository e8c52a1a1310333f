package sparseset

import (
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/sparseset/internal/buffer"
)

const (
	bufferSparse = "sparse"
	bufferDense  = "dense"
)

// Set maps Entity identifiers to positions in a packed dense buffer.
//
// Layout after Insert(3), Insert(1):
//
//	sparse idx:      0     1     2     3
//	sparse slot:  [ -- ,   1 ,  -- ,   0 ]   position in dense, or absent
//
//	dense  idx:      0     1
//	dense  entity:[  3 ,   1 ]
//
// Membership, lookup, insertion and removal are O(1) (insertion amortized
// under GrowthDoubling). Removal swaps the last entity into the freed position,
// so dense order is insertion order only until the first removal.
//
// A Set is not safe for concurrent use. Positions returned by Index, Lookup
// or Remove are invalidated by the next mutation.
//
// Contract violations (Null identifiers, removing or indexing an absent
// entity, inserting a present one, using a closed set) panic with a
// *PreconditionError.
type Set struct {
	sparse buffer.Buffer[slot]
	dense  buffer.Buffer[Entity]

	alloc  buffer.Allocator
	opts   options
	closed bool

	sparseGrows int
	denseGrows  int
}

// Stats is a snapshot of a Set's buffers.
type Stats struct {
	Len          int
	DenseCap     int
	SparseLen    int
	SparseCap    int
	Bytes        int64
	SparseGrows  int
	DenseGrows   int
	GrowthPolicy GrowthPolicy
}

// New creates an empty Set. No storage is allocated until the first insert.
func New(optFns ...Option) *Set {
	opts := applyOptions(optFns)
	return &Set{
		alloc: opts.allocator(),
		opts:  opts,
	}
}

// Len returns the number of present entities.
func (s *Set) Len() int {
	s.mustOpen("Len", Null)
	return s.dense.Len()
}

// IsEmpty reports whether no entity is present.
func (s *Set) IsEmpty() bool {
	return s.Len() == 0
}

// Contains reports whether e is present.
func (s *Set) Contains(e Entity) bool {
	s.checkEntity("Contains", e)
	_, ok := s.lookup(e)
	return ok
}

// Lookup returns the dense position of e and whether e is present.
func (s *Set) Lookup(e Entity) (int, bool) {
	s.checkEntity("Lookup", e)
	return s.lookup(e)
}

// Index returns the dense position of e. e must be present.
func (s *Set) Index(e Entity) int {
	s.checkEntity("Index", e)
	pos, ok := s.lookup(e)
	if !ok {
		s.fail("Index", e, ErrNotPresent)
	}
	return pos
}

// Insert adds e at the end of the dense buffer. e must not be present.
//
// The only returned errors come from buffer growth (ErrOutOfMemory,
// ErrCapacityOverflow); on error the set is left unchanged.
func (s *Set) Insert(e Entity) error {
	s.checkEntity("Insert", e)
	if _, ok := s.lookup(e); ok {
		s.fail("Insert", e, ErrAlreadyPresent)
	}
	if uint64(e) >= uint64(maxEntities) {
		err := &GrowError{Buffer: bufferSparse, Need: maxEntities, cause: translateError(buffer.ErrCapacityOverflow)}
		s.recordInsert(e, 0, err)
		return err
	}

	need := int(e) + 1
	if need > s.sparse.Len() {
		if err := growBuffer(s, bufferSparse, &s.sparse, need); err != nil {
			s.recordInsert(e, 0, err)
			return err
		}
	}
	if s.dense.Free() == 0 {
		if err := growBuffer(s, bufferDense, &s.dense, s.dense.Len()+1); err != nil {
			s.recordInsert(e, 0, err)
			return err
		}
	}

	if need > s.sparse.Len() {
		s.sparse.Extend(need - s.sparse.Len())
	}
	pos := s.dense.Len()
	s.sparse.Set(int(e), slotAt(pos))
	s.dense.Push(e)

	s.recordInsert(e, pos, nil)
	return nil
}

// Remove deletes e and returns the position it occupied. The last entity of
// the dense buffer moves into that position. e must be present.
func (s *Set) Remove(e Entity) int {
	s.checkEntity("Remove", e)
	pos, ok := s.lookup(e)
	if !ok {
		s.fail("Remove", e, ErrNotPresent)
	}

	last := s.dense.Last()
	s.dense.Set(pos, last)
	s.sparse.Set(int(last), slotAt(pos))
	s.sparse.Set(int(e), absent)
	s.dense.Pop()

	s.opts.logger.LogRemove(e, pos, last)
	s.opts.metricsCollector.RecordRemove()
	return pos
}

// Clear removes every entity. Capacity is kept.
func (s *Set) Clear() {
	s.mustOpen("Clear", Null)
	for _, e := range s.dense.Items() {
		s.sparse.Set(int(e), absent)
	}
	s.dense.Truncate(0)
}

// Reserve grows the dense buffer so that n entities fit without further
// growth.
func (s *Set) Reserve(n int) error {
	s.mustOpen("Reserve", Null)
	if n <= s.dense.Cap() {
		return nil
	}
	return growBuffer(s, bufferDense, &s.dense, n)
}

// Compact releases trailing capacity: the dense buffer shrinks to its length
// and the sparse buffer to the largest present identifier plus one.
func (s *Set) Compact() error {
	s.mustOpen("Compact", Null)

	sparseLen := 0
	for _, e := range s.dense.Items() {
		sparseLen = max(sparseLen, int(e)+1)
	}

	dense, err := buffer.Resize(s.alloc, s.dense, s.dense.Len())
	if err != nil {
		err = translateError(err)
		s.opts.logger.LogCompact(s.dense.Cap(), s.sparse.Cap(), err)
		return err
	}
	s.dense = dense

	s.sparse.Truncate(sparseLen)
	sparse, err := buffer.Resize(s.alloc, s.sparse, sparseLen)
	if err != nil {
		err = translateError(err)
		s.opts.logger.LogCompact(s.dense.Cap(), s.sparse.Cap(), err)
		return err
	}
	s.sparse = sparse

	s.opts.logger.LogCompact(s.dense.Cap(), s.sparse.Cap(), nil)
	return nil
}

// Entities returns the dense buffer. The slice is valid until the next
// mutation and must not be modified.
func (s *Set) Entities() []Entity {
	s.mustOpen("Entities", Null)
	return s.dense.Items()
}

// All iterates over (position, entity) pairs in dense order.
// The set must not be mutated during iteration.
func (s *Set) All() iter.Seq2[int, Entity] {
	s.mustOpen("All", Null)
	return func(yield func(int, Entity) bool) {
		for i, e := range s.dense.Items() {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Bitmap returns a roaring bitmap holding every present entity.
func (s *Set) Bitmap() *roaring.Bitmap {
	s.mustOpen("Bitmap", Null)
	rb := roaring.New()
	for _, e := range s.dense.Items() {
		rb.Add(uint32(e))
	}
	return rb
}

// Clone returns an independent copy with the same options. The copy's
// buffers are sized to the current lengths.
func (s *Set) Clone() (*Set, error) {
	s.mustOpen("Clone", Null)

	c := &Set{
		alloc: s.alloc,
		opts:  s.opts,
	}

	sparse, err := buffer.Clone(s.alloc, s.sparse)
	if err != nil {
		return nil, &GrowError{Buffer: bufferSparse, Need: s.sparse.Len(), cause: translateError(err)}
	}
	dense, err := buffer.Clone(s.alloc, s.dense)
	if err != nil {
		buffer.Release(s.alloc, &sparse)
		return nil, &GrowError{Buffer: bufferDense, Need: s.dense.Len(), cause: translateError(err)}
	}
	c.sparse = sparse
	c.dense = dense
	return c, nil
}

// Stats returns a snapshot of buffer sizes.
func (s *Set) Stats() Stats {
	s.mustOpen("Stats", Null)
	return Stats{
		Len:          s.dense.Len(),
		DenseCap:     s.dense.Cap(),
		SparseLen:    s.sparse.Len(),
		SparseCap:    s.sparse.Cap(),
		Bytes:        s.dense.Bytes() + s.sparse.Bytes(),
		SparseGrows:  s.sparseGrows,
		DenseGrows:   s.denseGrows,
		GrowthPolicy: s.opts.growthPolicy,
	}
}

// Validate checks the cross-references between both buffers. It is O(sparse
// length) and meant for tests and debugging.
func (s *Set) Validate() error {
	if s.closed {
		return ErrClosed
	}

	if s.dense.Len() > s.dense.Cap() || s.sparse.Len() > s.sparse.Cap() {
		return &InvariantError{Invariant: "capacity", Detail: fmt.Sprintf(
			"dense %d/%d, sparse %d/%d", s.dense.Len(), s.dense.Cap(), s.sparse.Len(), s.sparse.Cap())}
	}

	for k, e := range s.dense.Items() {
		if e == Null {
			return &InvariantError{Invariant: "null", Detail: fmt.Sprintf("dense[%d] holds null", k)}
		}
		if uint64(e) >= uint64(s.sparse.Len()) {
			return &InvariantError{Invariant: "dense->sparse", Detail: fmt.Sprintf(
				"dense[%d]=%d beyond sparse length %d", k, e, s.sparse.Len())}
		}
		if pos, ok := s.sparse.At(int(e)).position(); !ok || pos != k {
			return &InvariantError{Invariant: "dense->sparse", Detail: fmt.Sprintf(
				"dense[%d]=%d but sparse[%d]=%d (present=%t)", k, e, e, pos, ok)}
		}
	}

	present := 0
	for i, sl := range s.sparse.Items() {
		pos, ok := sl.position()
		if !ok {
			continue
		}
		present++
		if pos >= s.dense.Len() || s.dense.At(pos) != Entity(i) {
			return &InvariantError{Invariant: "sparse->dense", Detail: fmt.Sprintf(
				"sparse[%d]=%d does not point back", i, pos)}
		}
	}
	if present != s.dense.Len() {
		return &InvariantError{Invariant: "size", Detail: fmt.Sprintf(
			"%d present slots, dense length %d", present, s.dense.Len())}
	}
	return nil
}

func (s *Set) lookup(e Entity) (int, bool) {
	if uint64(e) >= uint64(s.sparse.Len()) {
		return 0, false
	}
	return s.sparse.At(int(e)).position()
}

func (s *Set) recordInsert(e Entity, pos int, err error) {
	s.opts.logger.LogInsert(e, pos, err)
	s.opts.metricsCollector.RecordInsert(err)
}

func (s *Set) checkEntity(op string, e Entity) {
	s.mustOpen(op, e)
	if e == Null {
		s.fail(op, e, ErrNullEntity)
	}
}

func (s *Set) mustOpen(op string, e Entity) {
	if s.closed {
		s.fail(op, e, ErrClosed)
	}
}

func (s *Set) fail(op string, e Entity, err error) {
	s.opts.logger.LogPrecondition(op, e, err)
	panic(&PreconditionError{Op: op, Entity: e, Err: err})
}

// growBuffer grows b to hold need elements under the set's allocator. Both
// buffers go through this path so they share one policy.
func growBuffer[T any](s *Set, name string, b *buffer.Buffer[T], need int) error {
	oldCap := b.Cap()
	if need <= oldCap {
		return nil
	}
	grown, err := buffer.Grow(s.alloc, *b, need)
	if err != nil {
		err = &GrowError{Buffer: name, Need: need, cause: translateError(err)}
		s.opts.logger.LogGrow(name, oldCap, need, err)
		s.opts.metricsCollector.RecordGrow(name, oldCap, need, err)
		return err
	}
	*b = grown

	switch name {
	case bufferSparse:
		s.sparseGrows++
	case bufferDense:
		s.denseGrows++
	}
	s.opts.logger.LogGrow(name, oldCap, b.Cap(), nil)
	s.opts.metricsCollector.RecordGrow(name, oldCap, b.Cap(), nil)
	return nil
}
