package doubleword

import (
	"fmt"
	"math"

	"github.com/hupe1980/unbox"
	"github.com/hupe1980/unbox/internal/capacity"
	"github.com/hupe1980/unbox/internal/idspace"
)

// boolSlots is the fixed boolean capacity: the low 52 bits of the reserved
// word's integer value, inside the 2^53 exactness margin of a float64.
const boolSlots = 52

var (
	primitivePolicy = capacity.Policy{Start: 1, MinLen: 9, MaxLen: math.MaxInt32}
	objectPolicy    = capacity.Policy{Start: 0, MinLen: 8, MaxLen: math.MaxInt32}

	fixedBoolSpace = idspace.Space{Category: unbox.CategoryBool, Start: 0, Limit: boolSlots}
)

// Store is one storage instance: float64 primitive words (word 0 reserved as
// the boolean bitset) and a parallel object reference slice. Construct
// through the Accessor factories; the zero value is not usable.
type Store struct {
	words []float64
	refs  []any
}

// Options contains configuration options for the accessor.
type Options struct {
	// TwoSlotLong selects the long fallback that splits values into two
	// 32-bit halves across two slots, for targets without a usable 64-bit
	// pattern round trip through float64. The default keeps longs in one
	// slot.
	TwoSlotLong bool
}

// DefaultOptions contains the default configuration options for the
// accessor.
var DefaultOptions = Options{
	TwoSlotLong: false,
}

// Accessor packs values into 64-bit float words. Construct with New; the
// zero value behaves like the default configuration.
type Accessor struct {
	twoSlotLong bool
}

// Compile-time check that the contract is satisfied.
var _ unbox.Accessor[*Store] = Accessor{}

// New returns an accessor configured by the given options.
func New(optFns ...func(o *Options)) Accessor {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	return Accessor{
		twoSlotLong: opts.TwoSlotLong,
	}
}

// WithTwoSlotLong enables the two-slot long fallback.
func WithTwoSlotLong() func(o *Options) {
	return func(o *Options) {
		o.TwoSlotLong = true
	}
}

var (
	errNilInstance     = fmt.Errorf("%w: nil store", unbox.ErrInvalidInstance)
	errMissingReserved = fmt.Errorf("%w: reserved word missing", unbox.ErrInvalidInstance)
)

func unknownCategory(c unbox.Category) error {
	return fmt.Errorf("%w: unknown category %s", unbox.ErrInvalidArgument, c)
}

// validate rejects handles the factories cannot have produced.
func validate(inst *Store) error {
	if inst == nil {
		return errNilInstance
	}
	if len(inst.words) == 0 {
		return errMissingReserved
	}
	return nil
}

func primitiveSpace(inst *Store) idspace.Space {
	return idspace.Space{Category: unbox.CategoryPrimitive, Start: 1, Limit: len(inst.words)}
}

func objectSpace(inst *Store) idspace.Space {
	return idspace.Space{Category: unbox.CategoryObject, Start: 0, Limit: len(inst.refs)}
}

// BoolSpaceIndependent reports true: booleans live in the reserved word, not
// in primitive slots.
func (Accessor) BoolSpaceIndependent() bool { return true }

// BoolSpaceFixed reports true: the boolean capacity never changes.
func (Accessor) BoolSpaceFixed() bool { return true }

// BoolSpaceFixedSize returns 52.
func (Accessor) BoolSpaceFixedSize() int { return boolSlots }

// Immutable reports false.
func (Accessor) Immutable() bool { return false }

// ThreadSafe reports false.
func (Accessor) ThreadSafe() bool { return false }

// LongUsesTwoPrimitiveSlots reports whether the two-slot fallback was
// selected at construction.
func (a Accessor) LongUsesTwoPrimitiveSlots() bool { return a.twoSlotLong }

// DoubleUsesTwoPrimitiveSlots reports false: a double is the word itself.
func (Accessor) DoubleUsesTwoPrimitiveSlots() bool { return false }

// OptimalPacking reports false for every category: capacity rounds up to
// powers of two.
func (Accessor) OptimalPacking(unbox.Category) bool { return false }

// StartIndex returns the first valid index of the category.
func (Accessor) StartIndex(c unbox.Category) int {
	switch c {
	case unbox.CategoryPrimitive:
		return primitivePolicy.Start
	case unbox.CategoryBool, unbox.CategoryObject:
		return 0
	default:
		return -1
	}
}

// MaxSlots returns the largest slot count the category can grow to.
func (Accessor) MaxSlots(c unbox.Category) int {
	switch c {
	case unbox.CategoryPrimitive:
		return primitivePolicy.MaxSlots()
	case unbox.CategoryBool:
		return boolSlots
	case unbox.CategoryObject:
		return objectPolicy.MaxSlots()
	default:
		return -1
	}
}

// NewEmpty returns a minimum-size instance.
func (Accessor) NewEmpty() *Store {
	return &Store{
		words: make([]float64, primitivePolicy.MinLen),
		refs:  make([]any, objectPolicy.MinLen),
	}
}

// New returns an instance with at least the requested primitive and object
// slot counts. Boolean capacity is always 52, regardless of sizes.
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
		words: make([]float64, wn),
		refs:  make([]any, rn),
	}, nil
}

// NewWithBools always fails: the boolean ID space is fixed at 52.
func (Accessor) NewWithBools(int, int, int) (*Store, error) {
	return nil, fmt.Errorf("%w: boolean ID space is fixed at %d", unbox.ErrUnsupportedOperation, boolSlots)
}

// MaximumIndex returns the largest currently valid index of the category.
func (a Accessor) MaximumIndex(inst *Store, c unbox.Category) (int, error) {
	slots, err := a.SlotsAvailable(inst, c)
	if err != nil {
		return 0, err
	}
	return a.StartIndex(c) + slots - 1, nil
}

// SlotsAvailable returns the number of currently addressable slots of the
// category.
func (Accessor) SlotsAvailable(inst *Store, c unbox.Category) (int, error) {
	if err := validate(inst); err != nil {
		return 0, err
	}
	switch c {
	case unbox.CategoryPrimitive:
		return primitivePolicy.Slots(len(inst.words)), nil
	case unbox.CategoryBool:
		return boolSlots, nil
	case unbox.CategoryObject:
		return len(inst.refs), nil
	default:
		return 0, unknownCategory(c)
	}
}

// ReservedSize always fails: without optimal packing the exact requested
// size is not tracked.
func (Accessor) ReservedSize(inst *Store, c unbox.Category) (int, error) {
	if err := validate(inst); err != nil {
		return 0, err
	}
	switch c {
	case unbox.CategoryPrimitive, unbox.CategoryBool, unbox.CategoryObject:
		return 0, fmt.Errorf("%w: %s reserved size is not tracked without optimal packing", unbox.ErrUnsupportedOperation, c)
	default:
		return 0, unknownCategory(c)
	}
}

// Resize grows the category to hold at least slots values. The boolean
// category cannot be resized.
func (Accessor) Resize(inst *Store, c unbox.Category, slots int) (*Store, error) {
	if err := validate(inst); err != nil {
		return inst, err
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
		words := make([]float64, n)
		copy(words, inst.words)
		return &Store{words: words, refs: inst.refs}, nil
	case unbox.CategoryBool:
		return inst, fmt.Errorf("%w: boolean ID space is fixed at %d", unbox.ErrUnsupportedOperation, boolSlots)
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
