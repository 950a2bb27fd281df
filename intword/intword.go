package intword

import (
	"fmt"
	"math"

	"github.com/hupe1980/unbox"
	"github.com/hupe1980/unbox/internal/capacity"
	"github.com/hupe1980/unbox/internal/idspace"
)

var (
	primitivePolicy = capacity.Policy{Start: 0, MinLen: 8, MaxLen: math.MaxInt32}
	objectPolicy    = capacity.Policy{Start: 0, MinLen: 8, MaxLen: math.MaxInt32}
)

// Store is one storage instance: 32-bit primitive words and a parallel
// object reference slice. Construct through the Accessor factories; the zero
// value has no slots.
type Store struct {
	words []uint32
	refs  []any
}

// Accessor packs values into 32-bit words. The zero value is ready to use;
// New is provided for symmetry with the other variants.
type Accessor struct{}

// Compile-time check that the contract is satisfied.
var _ unbox.Accessor[*Store] = Accessor{}

// New returns the accessor.
func New() Accessor {
	return Accessor{}
}

var errNilInstance = fmt.Errorf("%w: nil store", unbox.ErrInvalidInstance)

func unknownCategory(c unbox.Category) error {
	return fmt.Errorf("%w: unknown category %s", unbox.ErrInvalidArgument, c)
}

func primitiveSpace(inst *Store) idspace.Space {
	return idspace.Space{Category: unbox.CategoryPrimitive, Start: 0, Limit: len(inst.words)}
}

func boolSpace(inst *Store) idspace.Space {
	// Booleans share the primitive words.
	return idspace.Space{Category: unbox.CategoryBool, Start: 0, Limit: len(inst.words)}
}

func objectSpace(inst *Store) idspace.Space {
	return idspace.Space{Category: unbox.CategoryObject, Start: 0, Limit: len(inst.refs)}
}

// BoolSpaceIndependent reports false: booleans share the primitive ID space.
func (Accessor) BoolSpaceIndependent() bool { return false }

// BoolSpaceFixed reports false: boolean capacity grows with the primitive
// space.
func (Accessor) BoolSpaceFixed() bool { return false }

// BoolSpaceFixedSize returns -1: there is no independent boolean space.
func (Accessor) BoolSpaceFixedSize() int { return -1 }

// Immutable reports false.
func (Accessor) Immutable() bool { return false }

// ThreadSafe reports false.
func (Accessor) ThreadSafe() bool { return false }

// LongUsesTwoPrimitiveSlots reports true: longs span index and index+1.
func (Accessor) LongUsesTwoPrimitiveSlots() bool { return true }

// DoubleUsesTwoPrimitiveSlots reports true: doubles span index and index+1.
func (Accessor) DoubleUsesTwoPrimitiveSlots() bool { return true }

// OptimalPacking reports false for every category: capacity rounds up to
// powers of two.
func (Accessor) OptimalPacking(unbox.Category) bool { return false }

// StartIndex returns the first valid index of the category.
func (Accessor) StartIndex(c unbox.Category) int {
	switch c {
	case unbox.CategoryPrimitive, unbox.CategoryBool, unbox.CategoryObject:
		return 0
	default:
		return -1
	}
}

// MaxSlots returns the largest slot count the category can grow to.
func (Accessor) MaxSlots(c unbox.Category) int {
	switch c {
	case unbox.CategoryPrimitive, unbox.CategoryBool:
		return primitivePolicy.MaxSlots()
	case unbox.CategoryObject:
		return objectPolicy.MaxSlots()
	default:
		return -1
	}
}

// NewEmpty returns a minimum-size instance.
func (Accessor) NewEmpty() *Store {
	return &Store{
		words: make([]uint32, primitivePolicy.MinLen),
		refs:  make([]any, objectPolicy.MinLen),
	}
}

// New returns an instance with at least the requested primitive and object
// slot counts.
func (Accessor) New(primitiveSlots, objectSlots int) (*Store, error) {
	wn, err := primitivePolicy.Grow(primitiveSlots)
	if err != nil {
		return nil, err
	}
	rn, err := objectPolicy.Grow(objectSlots)
	if err != nil {
		return nil, err
	}
	return &Store{
		words: make([]uint32, wn),
		refs:  make([]any, rn),
	}, nil
}

// NewWithBools always fails: booleans share the primitive ID space, so a
// separate boolean reservation cannot be honored.
func (Accessor) NewWithBools(int, int, int) (*Store, error) {
	return nil, fmt.Errorf("%w: boolean values share the primitive ID space", unbox.ErrUnsupportedOperation)
}

// MaximumIndex returns the largest currently valid index of the category.
func (a Accessor) MaximumIndex(inst *Store, c unbox.Category) (int, error) {
	slots, err := a.SlotsAvailable(inst, c)
	if err != nil {
		return 0, err
	}
	return slots - 1, nil
}

// SlotsAvailable returns the number of currently addressable slots of the
// category.
func (Accessor) SlotsAvailable(inst *Store, c unbox.Category) (int, error) {
	if inst == nil {
		return 0, errNilInstance
	}
	switch c {
	case unbox.CategoryPrimitive, unbox.CategoryBool:
		return len(inst.words), nil
	case unbox.CategoryObject:
		return len(inst.refs), nil
	default:
		return 0, unknownCategory(c)
	}
}

// ReservedSize always fails: without optimal packing the exact requested
// size is not tracked.
func (Accessor) ReservedSize(inst *Store, c unbox.Category) (int, error) {
	if inst == nil {
		return 0, errNilInstance
	}
	switch c {
	case unbox.CategoryPrimitive, unbox.CategoryBool, unbox.CategoryObject:
		return 0, fmt.Errorf("%w: %s reserved size is not tracked without optimal packing", unbox.ErrUnsupportedOperation, c)
	default:
		return 0, unknownCategory(c)
	}
}

// Resize grows the category to hold at least slots values. The boolean
// category cannot be resized on its own; grow the primitive space instead.
func (Accessor) Resize(inst *Store, c unbox.Category, slots int) (*Store, error) {
	if inst == nil {
		return nil, errNilInstance
	}
	switch c {
	case unbox.CategoryPrimitive:
		n, err := primitivePolicy.Grow(slots)
		if err != nil {
			return inst, err
		}
		if n <= len(inst.words) {
			return inst, nil
		}
		words := make([]uint32, n)
		copy(words, inst.words)
		return &Store{words: words, refs: inst.refs}, nil
	case unbox.CategoryBool:
		return inst, fmt.Errorf("%w: boolean values share the primitive ID space", unbox.ErrUnsupportedOperation)
	case unbox.CategoryObject:
		n, err := objectPolicy.Grow(slots)
		if err != nil {
			return inst, err
		}
		if n <= len(inst.refs) {
			return inst, nil
		}
		refs := make([]any, n)
		copy(refs, inst.refs)
		return &Store{words: inst.words, refs: refs}, nil
	default:
		return inst, unknownCategory(c)
	}
}
