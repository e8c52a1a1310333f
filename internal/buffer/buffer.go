package buffer

import "unsafe"

// Buffer is an exclusively owned sequence with explicit capacity.
// The zero value is an empty buffer with no storage.
type Buffer[T any] struct {
	items []T
}

// Len returns the number of live elements.
func (b *Buffer[T]) Len() int { return len(b.items) }

// Cap returns the number of allocated slots.
func (b *Buffer[T]) Cap() int { return cap(b.items) }

// Free returns the number of slots that can be filled without growth.
func (b *Buffer[T]) Free() int { return cap(b.items) - len(b.items) }

// At returns the element at i.
func (b *Buffer[T]) At(i int) T { return b.items[i] }

// Set overwrites the element at i.
func (b *Buffer[T]) Set(i int, v T) { b.items[i] = v }

// Last returns the final live element.
func (b *Buffer[T]) Last() T { return b.items[len(b.items)-1] }

// Push appends v. The buffer must have a free slot.
func (b *Buffer[T]) Push(v T) {
	if len(b.items) == cap(b.items) {
		panic("buffer: push beyond capacity")
	}
	b.items = append(b.items, v)
}

// Pop removes and returns the final live element.
func (b *Buffer[T]) Pop() T {
	n := len(b.items) - 1
	v := b.items[n]
	var zero T
	b.items[n] = zero
	b.items = b.items[:n]
	return v
}

// Extend appends n zero values. The buffer must have n free slots.
func (b *Buffer[T]) Extend(n int) {
	if n > b.Free() {
		panic("buffer: extend beyond capacity")
	}
	old := len(b.items)
	b.items = b.items[:old+n]
	clear(b.items[old:])
}

// Truncate shrinks the length to n, keeping capacity.
func (b *Buffer[T]) Truncate(n int) {
	clear(b.items[n:])
	b.items = b.items[:n]
}

// Items returns the live elements. The slice aliases the buffer and is valid
// until the next mutation; appending to it never writes into the buffer.
func (b *Buffer[T]) Items() []T {
	return b.items[:len(b.items):len(b.items)]
}

// Bytes returns the allocated size in bytes.
func (b *Buffer[T]) Bytes() int64 {
	return bytesFor[T](cap(b.items))
}

func bytesFor[T any](n int) int64 {
	var zero T
	return int64(n) * int64(unsafe.Sizeof(zero))
}
