// Package sparseset provides a sparse set: an index from small integer
// identifiers to positions in a densely packed array.
//
// A Set answers membership and position queries in O(1) and keeps every
// present identifier contiguous, so iterating all of them is a linear scan
// over a single slice. It is the building block for per-component storage in
// entity-component systems, but carries no payload itself.
//
// # Quick Start
//
//	s := sparseset.New()
//	defer s.Close()
//
//	_ = s.Insert(3)
//	_ = s.Insert(1)
//
//	s.Contains(3)   // true
//	s.Index(1)      // 1
//	s.Remove(3)     // 0: entity 1 now lives at position 0
//
//	for pos, e := range s.All() {
//	    fmt.Println(pos, e)
//	}
//
// # Memory Model
//
// Two buffers are kept:
//
//   - sparse: indexed by identifier, holds the dense position or "absent".
//     Its length is the largest inserted identifier plus one, so memory is
//     O(max identifier). Hand out compact identifiers.
//   - dense: the packed identifiers. Removal swaps the last identifier into
//     the hole, so order is only stable until the first removal.
//
// Both buffers grow through one GrowthPolicy chosen at construction:
//
//	sparseset.New(sparseset.WithGrowthPolicy(sparseset.GrowthExact))
//	sparseset.New(sparseset.WithInitialCapacity(1024)) // doubling from 1024
//
// # Errors
//
// Misuse is a programming error and panics with *PreconditionError:
// passing Null, calling Index or Remove on an absent identifier, inserting a
// present identifier, or using a closed set. The only returned errors come
// from growth: a resource.Controller can cap the memory of one or many sets,
// and Insert then returns an error wrapping ErrOutOfMemory.
//
// # Observability
//
// Logging (WithLogger) and metrics (WithMetricsCollector) are opt-in. Nothing
// is written anywhere unless configured.
//
// # Thread Safety
//
// A Set is single-owner. Serialize access externally if it is shared.
package sparseset
