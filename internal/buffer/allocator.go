package buffer

import (
	"errors"
	"fmt"
)

// ErrCapacityOverflow is returned when a request exceeds the allocator limit.
var ErrCapacityOverflow = errors.New("capacity overflow")

// Accountant reserves and releases bytes for buffer storage.
// *resource.Controller implements it.
type Accountant interface {
	AcquireMemory(bytes int64) error
	ReleaseMemory(bytes int64)
}

// Allocator grows and releases buffers under one policy.
type Allocator struct {
	// Policy computes new capacities.
	Policy Policy
	// Initial is the first capacity used by Doubling.
	Initial int
	// Limit caps the number of elements (0 = unlimited).
	Limit int
	// Acct is charged for every allocated byte. May be nil.
	Acct Accountant
}

// Grow returns a buffer able to hold need elements. If b already fits, b is
// returned unchanged. On failure b is returned and remains valid.
func Grow[T any](a Allocator, b Buffer[T], need int) (Buffer[T], error) {
	if need <= b.Cap() {
		return b, nil
	}
	if a.Limit > 0 && need > a.Limit {
		return b, fmt.Errorf("%w: need %d elements, limit %d", ErrCapacityOverflow, need, a.Limit)
	}

	newCap := a.Policy.NextCap(b.Cap(), need, a.Initial)
	if a.Limit > 0 && newCap > a.Limit {
		newCap = a.Limit
	}
	return Resize(a, b, newCap)
}

// Resize returns a buffer with exactly newCap slots holding the live elements
// of b. newCap must not be smaller than b.Len(). On failure b is returned.
func Resize[T any](a Allocator, b Buffer[T], newCap int) (Buffer[T], error) {
	if newCap < b.Len() {
		return b, fmt.Errorf("%w: capacity %d below length %d", ErrCapacityOverflow, newCap, b.Len())
	}
	if newCap == b.Cap() {
		return b, nil
	}

	oldBytes := b.Bytes()
	newBytes := bytesFor[T](newCap)
	if delta := newBytes - oldBytes; delta > 0 && a.Acct != nil {
		if err := a.Acct.AcquireMemory(delta); err != nil {
			return b, err
		}
	}

	var out Buffer[T]
	if newCap > 0 {
		out.items = make([]T, b.Len(), newCap)
		copy(out.items, b.items)
	}

	if delta := oldBytes - newBytes; delta > 0 && a.Acct != nil {
		a.Acct.ReleaseMemory(delta)
	}
	return out, nil
}

// Release drops the storage of b and returns its bytes to the accountant.
func Release[T any](a Allocator, b *Buffer[T]) {
	if bytes := b.Bytes(); bytes > 0 && a.Acct != nil {
		a.Acct.ReleaseMemory(bytes)
	}
	b.items = nil
}

// Clone returns an independent copy of b whose capacity equals its length.
func Clone[T any](a Allocator, b Buffer[T]) (Buffer[T], error) {
	n := b.Len()
	if n == 0 {
		return Buffer[T]{}, nil
	}
	if a.Acct != nil {
		if err := a.Acct.AcquireMemory(bytesFor[T](n)); err != nil {
			return Buffer[T]{}, err
		}
	}
	items := make([]T, n)
	copy(items, b.items)
	return Buffer[T]{items: items}, nil
}
