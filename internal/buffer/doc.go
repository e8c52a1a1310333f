// Package buffer provides an owned, capacity-tracking growable buffer.
//
// A Buffer separates its length (live elements) from its capacity (allocated
// slots). Growth never happens implicitly: callers ask an Allocator for a new
// Buffer, which copies the live elements into fresh storage sized by the
// configured Policy and charges the difference against an optional memory
// Accountant. The old Buffer must not be used afterwards.
//
// # Policies
//
//   - Doubling: capacity starts at the initial hint and doubles until the
//     request fits. Amortized O(1) appends.
//   - Exact: capacity is exactly the requested size. Minimal memory, one
//     reallocation per growth event.
package buffer
