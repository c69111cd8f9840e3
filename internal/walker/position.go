package walker

import (
	"fmt"
	"math"
)

// Position is a lattice point. Coordinates stay within
// [-MaxInt64, MaxInt64] so Manhattan never overflows.
type Position struct {
	X, Y int64
}

// Add panics if either coordinate leaves the supported range.
func (p Position) Add(d Position) Position {
	return Position{X: addCoord(p.X, d.X), Y: addCoord(p.Y, d.Y)}
}

func addCoord(a, b int64) int64 {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) || s == math.MinInt64 {
		panic(fmt.Sprintf("walker: coordinate overflow adding %d to %d", b, a))
	}
	return s
}

// Advance is p moved n times by the unit vector d. It panics like Add.
func (p Position) Advance(d Position, n uint32) Position {
	return Position{X: advanceCoord(p.X, d.X, n), Y: advanceCoord(p.Y, d.Y, n)}
}

func advanceCoord(a, d int64, n uint32) int64 {
	k := int64(n)
	if (d > 0 && a > math.MaxInt64-k) || (d < 0 && a < -math.MaxInt64+k) {
		panic(fmt.Sprintf("walker: coordinate overflow moving %d by %d*%d", a, d, k))
	}
	return a + d*k
}

// Manhattan is |x| + |y|.
func (p Position) Manhattan() uint64 {
	return abs(p.X) + abs(p.Y)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}
