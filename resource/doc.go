// Package resource implements a memory budget shared by sparse sets.
//
// A Controller tracks the bytes reserved by buffer growth and, when a hard
// limit is configured, refuses reservations that would exceed it:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 64 << 20, // 64MB
//	})
//
//	set := sparseset.New(sparseset.WithResourceController(rc))
//	if err := set.Insert(e); err != nil {
//	    // errors.Is(err, resource.ErrMemoryLimitExceeded)
//	}
//
// AcquireMemory never blocks. The caller decides whether to compact, release
// other sets or give up.
//
// # Thread Safety
//
// All Controller methods are safe for concurrent use, so one Controller may
// govern many independently owned sets.
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully: reservations always succeed
// and nothing is tracked.
package resource
