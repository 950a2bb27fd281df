package unbox

// Accessor is the uniform contract over one storage encoding. S is the
// variant's instance type (a pointer to its store).
//
// Accessor values are stateless: every capability answer is fixed when the
// accessor is constructed, and all per-call state lives in the instance the
// caller passes in. One accessor value can therefore serve any number of
// instances, from any number of goroutines, as long as no single instance is
// mutated concurrently.
//
// Mutating operations (Set*, Resize) return the instance to use from then
// on. When no growth is needed that is the argument itself, mutated in
// place; when growth is needed it is a new, larger instance carrying the old
// live contents. Callers must always adopt the returned reference and treat
// the previous one as stale. On error the returned instance is the argument,
// untouched: validation completes before any storage is written.
//
// Reads never validate what type an index was last written with. Reading a
// different primitive type than was stored yields the variant's documented
// bit reinterpretation of the slot, never an error.
type Accessor[S any] interface {
	// BoolSpaceIndependent reports whether booleans have their own ID space
	// rather than sharing the primitive one.
	BoolSpaceIndependent() bool
	// BoolSpaceFixed reports whether the boolean ID space has a constant
	// capacity that can never be resized.
	BoolSpaceFixed() bool
	// BoolSpaceFixedSize returns the constant boolean capacity, or -1 when
	// booleans have no independent ID space.
	BoolSpaceFixedSize() int
	// Immutable reports whether instances are immutable. No shipped variant
	// is.
	Immutable() bool
	// ThreadSafe reports whether instances tolerate concurrent mutation. No
	// shipped variant does.
	ThreadSafe() bool
	// LongUsesTwoPrimitiveSlots reports whether SetLong consumes the slots
	// at index and index+1.
	LongUsesTwoPrimitiveSlots() bool
	// DoubleUsesTwoPrimitiveSlots reports whether SetDouble consumes the
	// slots at index and index+1.
	DoubleUsesTwoPrimitiveSlots() bool
	// OptimalPacking reports whether allocated capacity equals the exact
	// requested size for the category. Always false: capacity rounds up to
	// powers of two.
	OptimalPacking(c Category) bool
	// StartIndex returns the first valid index of the category, or -1 for
	// an unknown category.
	StartIndex(c Category) int
	// MaxSlots returns the largest slot count the category can grow to, or
	// -1 for an unknown category.
	MaxSlots(c Category) int

	// NewEmpty returns a minimum-size instance.
	NewEmpty() S
	// New returns an instance with at least the requested primitive and
	// object slot counts. Sizes outside [0, MaxSlots] fail with
	// ErrInvalidArgument.
	New(primitiveSlots, objectSlots int) (S, error)
	// NewWithBools additionally reserves boolean slots. It is valid only
	// when booleans have an independent, resizable ID space; variants
	// without one fail with ErrUnsupportedOperation.
	NewWithBools(primitiveSlots, boolSlots, objectSlots int) (S, error)

	// MaximumIndex returns the largest currently valid index of the
	// category, StartIndex(c) + SlotsAvailable(inst, c) - 1.
	MaximumIndex(inst S, c Category) (int, error)
	// SlotsAvailable returns the number of currently addressable slots of
	// the category.
	SlotsAvailable(inst S, c Category) (int, error)
	// ReservedSize returns the exact size last requested for the category.
	// It fails with ErrUnsupportedOperation whenever OptimalPacking(c) is
	// false, which holds for every shipped variant and category.
	ReservedSize(inst S, c Category) (int, error)

	// Resize grows the category to hold at least slots values. Capacity
	// never shrinks; a request at or below the current capacity returns the
	// instance unchanged. CategoryBool is resizable only when booleans have
	// an independent, non-fixed ID space; variants without one fail with
	// ErrUnsupportedOperation.
	Resize(inst S, c Category, slots int) (S, error)

	GetBool(inst S, index int) (bool, error)
	SetBool(inst S, index int, value bool) (S, error)
	GetByte(inst S, index int) (int8, error)
	SetByte(inst S, index int, value int8) (S, error)
	GetChar(inst S, index int) (uint16, error)
	SetChar(inst S, index int, value uint16) (S, error)
	GetShort(inst S, index int) (int16, error)
	SetShort(inst S, index int, value int16) (S, error)
	GetInt(inst S, index int) (int32, error)
	SetInt(inst S, index int, value int32) (S, error)
	GetFloat(inst S, index int) (float32, error)
	SetFloat(inst S, index int, value float32) (S, error)
	GetLong(inst S, index int) (int64, error)
	SetLong(inst S, index int, value int64) (S, error)
	GetDouble(inst S, index int) (float64, error)
	SetDouble(inst S, index int, value float64) (S, error)
	GetObject(inst S, index int) (any, error)
	SetObject(inst S, index int, value any) (S, error)
}
