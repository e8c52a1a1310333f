package buffer

import (
	"fmt"
	"math"
)

// Policy selects how capacity is computed on growth.
type Policy uint8

const (
	// Doubling grows capacity geometrically, starting from the initial hint.
	Doubling Policy = iota
	// Exact grows capacity to exactly the requested size.
	Exact
)

// String implements fmt.Stringer.
func (p Policy) String() string {
	switch p {
	case Doubling:
		return "doubling"
	case Exact:
		return "exact"
	default:
		return fmt.Sprintf("Policy(%d)", uint8(p))
	}
}

// Valid reports whether p is a known policy.
func (p Policy) Valid() bool {
	return p == Doubling || p == Exact
}

// NextCap returns the capacity to allocate so that need elements fit into a
// buffer currently holding cur slots. If need already fits, cur is returned.
func (p Policy) NextCap(cur, need, initial int) int {
	if need <= cur {
		return cur
	}
	if p == Exact {
		return need
	}

	c := cur
	if c == 0 {
		c = max(initial, 1)
	}
	for c < need {
		if c > math.MaxInt/2 {
			return need
		}
		c *= 2
	}
	return c
}
