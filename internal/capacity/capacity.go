package capacity

import (
	"fmt"
	"math/bits"

	"github.com/hupe1980/unbox"
)

// Policy describes the growth rules of one ID space.
//
// Start is the first addressable index and doubles as the length of the
// reserved prefix (the fixed-boolean variants keep their bitset in word 0).
// MinLen is the backing length of an empty instance, MaxLen the largest
// backing length the 32-bit size contract allows.
type Policy struct {
	Start  int
	MinLen int
	MaxLen int
}

// MaxSlots returns the largest number of addressable slots the policy allows.
func (p Policy) MaxSlots() int {
	return p.MaxLen - p.Start
}

// Slots returns the number of addressable slots of a backing of length n.
func (p Policy) Slots(n int) int {
	return n - p.Start
}

// Grow returns the backing length that satisfies a request for at least
// requested addressable slots.
//
// Results are monotonic in requested and never below MinLen. A negative
// request, or one beyond MaxSlots, fails with unbox.ErrInvalidArgument.
func (p Policy) Grow(requested int) (int, error) {
	if requested < 0 || requested > p.MaxSlots() {
		return 0, fmt.Errorf("%w: reserved size %d not in [0, %d]", unbox.ErrInvalidArgument, requested, p.MaxSlots())
	}
	if requested <= p.MinLen-p.Start {
		return p.MinLen, nil
	}
	// Smallest power of two >= requested, same leading-zeros formulation as
	// a 32 - CLZ(n-1) shift. requested > 1 here, so the subtraction is safe.
	pow := bits.Len32(uint32(requested - 1))
	if pow >= 31 {
		// 1<<31 is outside the 32-bit size domain; clamp instead.
		return p.MaxLen, nil
	}
	return (1 << pow) + p.Start, nil
}
