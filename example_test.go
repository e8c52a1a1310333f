package sparseset_test

import (
	"errors"
	"fmt"

	"github.com/hupe1980/sparseset"
	"github.com/hupe1980/sparseset/resource"
)

// Example demonstrates insertion, lookup and swap-delete.
func Example() {
	s := sparseset.New()
	defer s.Close()

	_ = s.Insert(3)
	_ = s.Insert(1)
	fmt.Println(s.Entities(), s.Contains(3), s.Contains(2))

	// Removing 3 moves the last entity (1) into its position.
	pos := s.Remove(3)
	fmt.Println(pos, s.Entities(), s.Index(1))
	// Output:
	// [3 1] true false
	// 0 [1] 0
}

// ExampleSet_All iterates the dense buffer.
func ExampleSet_All() {
	s := sparseset.New()
	defer s.Close()

	for _, e := range []sparseset.Entity{7, 2, 9} {
		_ = s.Insert(e)
	}
	for pos, e := range s.All() {
		fmt.Println(pos, e)
	}
	// Output:
	// 0 7
	// 1 2
	// 2 9
}

// ExampleWithResourceController caps the memory of a set.
func ExampleWithResourceController() {
	rc := resource.NewController(resource.Config{MemoryLimitBytes: 16})
	s := sparseset.New(
		sparseset.WithGrowthPolicy(sparseset.GrowthExact),
		sparseset.WithResourceController(rc),
	)
	defer s.Close()

	fmt.Println(s.Insert(0), s.Insert(1))

	err := s.Insert(2)
	fmt.Println(errors.Is(err, sparseset.ErrOutOfMemory), s.Contains(2))
	// Output:
	// <nil> <nil>
	// true false
}

// ExampleSet_Bitmap intersects two sets through roaring bitmaps.
func ExampleSet_Bitmap() {
	a := sparseset.New()
	defer a.Close()
	b := sparseset.New()
	defer b.Close()

	for _, e := range []sparseset.Entity{1, 2, 3, 4} {
		_ = a.Insert(e)
	}
	for _, e := range []sparseset.Entity{3, 4, 5} {
		_ = b.Insert(e)
	}

	both := a.Bitmap()
	both.And(b.Bitmap())
	fmt.Println(both.ToArray())
	// Output:
	// [3 4]
}
