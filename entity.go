package sparseset

import (
	"math"
	"strconv"
)

// Entity is a raw identifier tracked by a Set.
//
// Identifiers index the sparse buffer directly, so memory is proportional to
// the largest identifier ever inserted, not to the number of identifiers.
// Callers should hand out compact, allocator-issued values. Any version or
// generation bits must be stripped before an Entity reaches a Set.
type Entity uint32

// Null is the reserved "no entity" value. It is never a valid argument.
const Null Entity = math.MaxUint32

// maxEntities bounds both buffers. On 64-bit platforms every identifier below
// Null may be present; on 32-bit platforms int limits the sparse buffer.
const maxEntities = int(min(uint64(Null), math.MaxInt))

// Valid reports whether e may be stored in a Set.
func (e Entity) Valid() bool {
	return e != Null
}

func (e Entity) String() string {
	if e == Null {
		return "null"
	}
	return strconv.FormatUint(uint64(e), 10)
}

// slot is a sparse buffer entry: zero means absent, otherwise the dense
// position plus one. Zero-filled growth therefore yields absent slots.
type slot uint32

const absent slot = 0

func slotAt(pos int) slot {
	return slot(pos + 1)
}

func (s slot) position() (int, bool) {
	if s == absent {
		return 0, false
	}
	return int(s - 1), true
}
