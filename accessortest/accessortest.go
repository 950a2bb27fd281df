package accessortest

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/unbox"
)

// Expectations pins the externally observable constants of one accessor
// variant.
type Expectations struct {
	BoolIndependent bool
	BoolFixed       bool
	BoolFixedSize   int // -1 without an independent boolean space
	LongTwoSlots    bool
	DoubleTwoSlots  bool

	PrimitiveStart int
	BoolStart      int
	ObjectStart    int

	EmptyPrimitiveSlots int
	EmptyBoolSlots      int
	EmptyObjectSlots    int

	MaxPrimitiveSlots int
	MaxBoolSlots      int
	MaxObjectSlots    int
}

var categories = []unbox.Category{
	unbox.CategoryPrimitive,
	unbox.CategoryBool,
	unbox.CategoryObject,
}

// Run executes the contract property grid against acc.
func Run[S any](t *testing.T, acc unbox.Accessor[S], exp Expectations) {
	t.Helper()

	t.Run("Capabilities", func(t *testing.T) { testCapabilities(t, acc, exp) })
	t.Run("EmptyDefaults", func(t *testing.T) { testEmptyDefaults(t, acc, exp) })
	t.Run("RoundTrips", func(t *testing.T) { testRoundTrips(t, acc) })
	t.Run("FactoryGrowth", func(t *testing.T) { testFactoryGrowth(t, acc, exp) })
	t.Run("ResizeGrowth", func(t *testing.T) { testResizeGrowth(t, acc, exp) })
	t.Run("ReservedSizeUnsupported", func(t *testing.T) { testReservedSize(t, acc) })
	t.Run("BoolSpaceRules", func(t *testing.T) { testBoolSpaceRules(t, acc, exp) })
	t.Run("PartialWriteRejected", func(t *testing.T) { testPartialWriteRejected(t, acc) })
	t.Run("InvalidInstance", func(t *testing.T) { testInvalidInstance(t, acc) })
	t.Run("Stateless", func(t *testing.T) { testStateless(t, acc) })
}

func testCapabilities[S any](t *testing.T, acc unbox.Accessor[S], exp Expectations) {
	assert.Equal(t, exp.BoolIndependent, acc.BoolSpaceIndependent())
	assert.Equal(t, exp.BoolFixed, acc.BoolSpaceFixed())
	assert.Equal(t, exp.BoolFixedSize, acc.BoolSpaceFixedSize())
	assert.Equal(t, exp.LongTwoSlots, acc.LongUsesTwoPrimitiveSlots())
	assert.Equal(t, exp.DoubleTwoSlots, acc.DoubleUsesTwoPrimitiveSlots())

	assert.False(t, acc.Immutable())
	assert.False(t, acc.ThreadSafe())

	for _, c := range categories {
		assert.False(t, acc.OptimalPacking(c), "optimal packing for %s", c)
	}

	assert.Equal(t, exp.PrimitiveStart, acc.StartIndex(unbox.CategoryPrimitive))
	assert.Equal(t, exp.BoolStart, acc.StartIndex(unbox.CategoryBool))
	assert.Equal(t, exp.ObjectStart, acc.StartIndex(unbox.CategoryObject))

	assert.Equal(t, exp.MaxPrimitiveSlots, acc.MaxSlots(unbox.CategoryPrimitive))
	assert.Equal(t, exp.MaxBoolSlots, acc.MaxSlots(unbox.CategoryBool))
	assert.Equal(t, exp.MaxObjectSlots, acc.MaxSlots(unbox.CategoryObject))

	assert.Equal(t, -1, acc.StartIndex(unbox.Category(250)))
	assert.Equal(t, -1, acc.MaxSlots(unbox.Category(250)))
}

func testEmptyDefaults[S any](t *testing.T, acc unbox.Accessor[S], exp Expectations) {
	inst := acc.NewEmpty()

	wantSlots := map[unbox.Category]int{
		unbox.CategoryPrimitive: exp.EmptyPrimitiveSlots,
		unbox.CategoryBool:      exp.EmptyBoolSlots,
		unbox.CategoryObject:    exp.EmptyObjectSlots,
	}
	for _, c := range categories {
		slots, err := acc.SlotsAvailable(inst, c)
		require.NoError(t, err)
		assert.Equal(t, wantSlots[c], slots, "%s slots", c)

		maxIdx, err := acc.MaximumIndex(inst, c)
		require.NoError(t, err)
		assert.Equal(t, acc.StartIndex(c)+slots-1, maxIdx, "%s maximum index", c)
	}

	primStart := acc.StartIndex(unbox.CategoryPrimitive)
	primMax, err := acc.MaximumIndex(inst, unbox.CategoryPrimitive)
	require.NoError(t, err)
	for i := primStart; i <= primMax; i++ {
		b, err := acc.GetByte(inst, i)
		require.NoError(t, err)
		assert.Zero(t, b, "byte at %d", i)

		ch, err := acc.GetChar(inst, i)
		require.NoError(t, err)
		assert.Zero(t, ch, "char at %d", i)

		s, err := acc.GetShort(inst, i)
		require.NoError(t, err)
		assert.Zero(t, s, "short at %d", i)

		n, err := acc.GetInt(inst, i)
		require.NoError(t, err)
		assert.Zero(t, n, "int at %d", i)

		f, err := acc.GetFloat(inst, i)
		require.NoError(t, err)
		assert.Zero(t, f, "float at %d", i)

		d, err := acc.GetDouble(inst, i)
		require.NoError(t, err)
		assert.Zero(t, d, "double at %d", i)
	}
	longMax := primMax
	if acc.LongUsesTwoPrimitiveSlots() {
		longMax--
	}
	for i := primStart; i <= longMax; i++ {
		l, err := acc.GetLong(inst, i)
		require.NoError(t, err)
		assert.Zero(t, l, "long at %d", i)
	}

	boolStart := acc.StartIndex(unbox.CategoryBool)
	boolMax, err := acc.MaximumIndex(inst, unbox.CategoryBool)
	require.NoError(t, err)
	for i := boolStart; i <= boolMax; i++ {
		v, err := acc.GetBool(inst, i)
		require.NoError(t, err)
		assert.False(t, v, "bool at %d", i)
	}

	objStart := acc.StartIndex(unbox.CategoryObject)
	objMax, err := acc.MaximumIndex(inst, unbox.CategoryObject)
	require.NoError(t, err)
	for i := objStart; i <= objMax; i++ {
		o, err := acc.GetObject(inst, i)
		require.NoError(t, err)
		assert.Nil(t, o, "object at %d", i)
	}
}

const overwriteCycles = 10

func testRoundTrips[S any](t *testing.T, acc unbox.Accessor[S]) {
	t.Run("Bool", func(t *testing.T) {
		inst := acc.NewEmpty()
		start := acc.StartIndex(unbox.CategoryBool)
		maxIdx, err := acc.MaximumIndex(inst, unbox.CategoryBool)
		require.NoError(t, err)

		for cycle := 0; cycle < overwriteCycles; cycle++ {
			for i := start; i <= maxIdx; i++ {
				want := (i+cycle)%2 == 0
				inst, err = acc.SetBool(inst, i, want)
				require.NoError(t, err)
				got, err := acc.GetBool(inst, i)
				require.NoError(t, err)
				require.Equal(t, want, got, "bool at %d, cycle %d", i, cycle)
			}
		}
		// Full-pattern read-back after the final cycle.
		for i := start; i <= maxIdx; i++ {
			want := (i+overwriteCycles-1)%2 == 0
			got, err := acc.GetBool(inst, i)
			require.NoError(t, err)
			require.Equal(t, want, got, "bool at %d after sweep", i)
		}
	})

	t.Run("Byte", func(t *testing.T) {
		inst := acc.NewEmpty()
		sweepPrimitive(t, acc, &inst, 1,
			func(i, cycle int) int8 { return int8(0x11*cycle + i) },
			func(inst S, i int) (int8, error) { return acc.GetByte(inst, i) },
			func(inst S, i int, v int8) (S, error) { return acc.SetByte(inst, i, v) },
		)
	})

	t.Run("Char", func(t *testing.T) {
		inst := acc.NewEmpty()
		sweepPrimitive(t, acc, &inst, 1,
			func(i, cycle int) uint16 { return uint16(0x1F3*cycle + i) },
			func(inst S, i int) (uint16, error) { return acc.GetChar(inst, i) },
			func(inst S, i int, v uint16) (S, error) { return acc.SetChar(inst, i, v) },
		)
	})

	t.Run("Short", func(t *testing.T) {
		inst := acc.NewEmpty()
		sweepPrimitive(t, acc, &inst, 1,
			func(i, cycle int) int16 { return int16(0x2E5*cycle - i) },
			func(inst S, i int) (int16, error) { return acc.GetShort(inst, i) },
			func(inst S, i int, v int16) (S, error) { return acc.SetShort(inst, i, v) },
		)
	})

	t.Run("Int", func(t *testing.T) {
		inst := acc.NewEmpty()
		sweepPrimitive(t, acc, &inst, 1,
			func(i, cycle int) int32 { return int32(0x1234567*(cycle+1)) ^ int32(i) },
			func(inst S, i int) (int32, error) { return acc.GetInt(inst, i) },
			func(inst S, i int, v int32) (S, error) { return acc.SetInt(inst, i, v) },
		)
	})

	t.Run("Float", func(t *testing.T) {
		inst := acc.NewEmpty()
		sweepPrimitive(t, acc, &inst, 1,
			func(i, cycle int) float32 { return float32(cycle+1)*100 - float32(i)/4 },
			func(inst S, i int) (float32, error) { return acc.GetFloat(inst, i) },
			func(inst S, i int, v float32) (S, error) { return acc.SetFloat(inst, i, v) },
		)

		// Specials round-trip bit-exactly on every variant; NaN payloads are
		// variant-specific and pinned in the variant tests instead.
		start := acc.StartIndex(unbox.CategoryPrimitive)
		specials := []float32{
			0,
			float32(math.Copysign(0, -1)),
			1.5,
			-1.5,
			math.MaxFloat32,
			math.SmallestNonzeroFloat32,
			float32(math.Inf(1)),
			float32(math.Inf(-1)),
		}
		var err error
		for _, want := range specials {
			inst, err = acc.SetFloat(inst, start, want)
			require.NoError(t, err)
			got, err := acc.GetFloat(inst, start)
			require.NoError(t, err)
			require.Equal(t, math.Float32bits(want), math.Float32bits(got), "float bits of %g", want)
		}
	})

	t.Run("Long", func(t *testing.T) {
		width := 1
		if acc.LongUsesTwoPrimitiveSlots() {
			width = 2
		}
		inst := acc.NewEmpty()
		sweepPrimitive(t, acc, &inst, width,
			func(i, cycle int) int64 { return 0x0F1E2D3C4B5A6978*int64(cycle+1) + int64(i) },
			func(inst S, i int) (int64, error) { return acc.GetLong(inst, i) },
			func(inst S, i int, v int64) (S, error) { return acc.SetLong(inst, i, v) },
		)

		start := acc.StartIndex(unbox.CategoryPrimitive)
		specials := []int64{0, 1, -1, math.MaxInt64, math.MinInt64, 0x1122334455667788}
		var err error
		for _, want := range specials {
			inst, err = acc.SetLong(inst, start, want)
			require.NoError(t, err)
			got, err := acc.GetLong(inst, start)
			require.NoError(t, err)
			require.Equal(t, want, got)
		}
	})

	t.Run("Double", func(t *testing.T) {
		width := 1
		if acc.DoubleUsesTwoPrimitiveSlots() {
			width = 2
		}
		inst := acc.NewEmpty()
		sweepPrimitive(t, acc, &inst, width,
			func(i, cycle int) float64 { return float64(cycle+1)*1e9 - float64(i)/8 },
			func(inst S, i int) (float64, error) { return acc.GetDouble(inst, i) },
			func(inst S, i int, v float64) (S, error) { return acc.SetDouble(inst, i, v) },
		)

		start := acc.StartIndex(unbox.CategoryPrimitive)
		specials := []float64{
			0,
			math.Copysign(0, -1),
			1.5,
			math.MaxFloat64,
			math.SmallestNonzeroFloat64,
			math.Inf(1),
			math.Inf(-1),
		}
		var err error
		for _, want := range specials {
			inst, err = acc.SetDouble(inst, start, want)
			require.NoError(t, err)
			got, err := acc.GetDouble(inst, start)
			require.NoError(t, err)
			require.Equal(t, math.Float64bits(want), math.Float64bits(got), "double bits of %g", want)
		}
	})

	t.Run("Object", func(t *testing.T) {
		inst := acc.NewEmpty()
		start := acc.StartIndex(unbox.CategoryObject)
		maxIdx, err := acc.MaximumIndex(inst, unbox.CategoryObject)
		require.NoError(t, err)

		for cycle := 0; cycle < overwriteCycles; cycle++ {
			for i := start; i <= maxIdx; i++ {
				want := fmt.Sprintf("obj-%d-%d", i, cycle)
				inst, err = acc.SetObject(inst, i, want)
				require.NoError(t, err)
				got, err := acc.GetObject(inst, i)
				require.NoError(t, err)
				require.Equal(t, want, got)
			}
		}

		// Mixed reference types and nil clearing.
		inst, err = acc.SetObject(inst, start, 42)
		require.NoError(t, err)
		got, err := acc.GetObject(inst, start)
		require.NoError(t, err)
		require.Equal(t, 42, got)

		inst, err = acc.SetObject(inst, start, nil)
		require.NoError(t, err)
		got, err = acc.GetObject(inst, start)
		require.NoError(t, err)
		require.Nil(t, got)
	})
}

// sweepPrimitive writes and reads back every valid index across overwrite
// cycles, then re-reads a non-overlapping stride after the last cycle to
// prove persistence. width is the number of slots one value occupies.
func sweepPrimitive[S, V any](
	t *testing.T,
	acc unbox.Accessor[S],
	inst *S,
	width int,
	value func(i, cycle int) V,
	get func(inst S, i int) (V, error),
	set func(inst S, i int, v V) (S, error),
) {
	t.Helper()

	start := acc.StartIndex(unbox.CategoryPrimitive)
	maxIdx, err := acc.MaximumIndex(*inst, unbox.CategoryPrimitive)
	require.NoError(t, err)
	last := maxIdx - (width - 1)

	for cycle := 0; cycle < overwriteCycles; cycle++ {
		for i := start; i <= last; i++ {
			want := value(i, cycle)
			*inst, err = set(*inst, i, want)
			require.NoError(t, err)
			got, err := get(*inst, i)
			require.NoError(t, err)
			require.Equal(t, want, got, "index %d, cycle %d", i, cycle)
		}
	}

	// Non-overlapping pass: values written at stride width must all survive.
	for i := start; i <= last; i += width {
		want := value(i, 0)
		*inst, err = set(*inst, i, want)
		require.NoError(t, err)
	}
	for i := start; i <= last; i += width {
		got, err := get(*inst, i)
		require.NoError(t, err)
		require.Equal(t, value(i, 0), got, "index %d after strided sweep", i)
	}
}

func testFactoryGrowth[S any](t *testing.T, acc unbox.Accessor[S], exp Expectations) {
	inst, err := acc.New(42, 42)
	require.NoError(t, err)

	slots, err := acc.SlotsAvailable(inst, unbox.CategoryPrimitive)
	require.NoError(t, err)
	assert.Equal(t, 64, slots, "42 requested primitive slots round up to 64")

	slots, err = acc.SlotsAvailable(inst, unbox.CategoryObject)
	require.NoError(t, err)
	assert.Equal(t, 64, slots, "42 requested object slots round up to 64")

	inst, err = acc.New(0, 0)
	require.NoError(t, err)
	slots, err = acc.SlotsAvailable(inst, unbox.CategoryPrimitive)
	require.NoError(t, err)
	assert.Equal(t, exp.EmptyPrimitiveSlots, slots)
	slots, err = acc.SlotsAvailable(inst, unbox.CategoryObject)
	require.NoError(t, err)
	assert.Equal(t, exp.EmptyObjectSlots, slots)

	_, err = acc.New(-1, 0)
	assert.ErrorIs(t, err, unbox.ErrInvalidArgument)
	_, err = acc.New(0, -1)
	assert.ErrorIs(t, err, unbox.ErrInvalidArgument)
	_, err = acc.New(exp.MaxPrimitiveSlots+1, 0)
	assert.ErrorIs(t, err, unbox.ErrInvalidArgument)
	_, err = acc.New(0, exp.MaxObjectSlots+1)
	assert.ErrorIs(t, err, unbox.ErrInvalidArgument)

	prev := 0
	for n := 0; n <= 200; n++ {
		inst, err := acc.New(n, 0)
		require.NoError(t, err)
		slots, err := acc.SlotsAvailable(inst, unbox.CategoryPrimitive)
		require.NoError(t, err)
		require.GreaterOrEqual(t, slots, n)
		require.GreaterOrEqual(t, slots, prev, "capacity must be monotonic in the request")
		prev = slots
	}
}

func testResizeGrowth[S any](t *testing.T, acc unbox.Accessor[S], exp Expectations) {
	inst := acc.NewEmpty()
	start := acc.StartIndex(unbox.CategoryPrimitive)

	// Live contents must survive reallocation.
	var err error
	for i := start; i < start+exp.EmptyPrimitiveSlots; i++ {
		inst, err = acc.SetInt(inst, i, int32(i)*3)
		require.NoError(t, err)
	}
	objStart := acc.StartIndex(unbox.CategoryObject)
	inst, err = acc.SetObject(inst, objStart, "keep")
	require.NoError(t, err)

	old := inst
	inst, err = acc.Resize(inst, unbox.CategoryPrimitive, 42)
	require.NoError(t, err)

	slots, err := acc.SlotsAvailable(inst, unbox.CategoryPrimitive)
	require.NoError(t, err)
	assert.Equal(t, 64, slots)

	oldSlots, err := acc.SlotsAvailable(old, unbox.CategoryPrimitive)
	require.NoError(t, err)
	assert.Equal(t, exp.EmptyPrimitiveSlots, oldSlots, "stale handle keeps its capacity")

	for i := start; i < start+exp.EmptyPrimitiveSlots; i++ {
		got, err := acc.GetInt(inst, i)
		require.NoError(t, err)
		assert.Equal(t, int32(i)*3, got, "int at %d after resize", i)
	}
	gotObj, err := acc.GetObject(inst, objStart)
	require.NoError(t, err)
	assert.Equal(t, "keep", gotObj)

	// Grow-only: smaller requests keep the capacity.
	inst, err = acc.Resize(inst, unbox.CategoryPrimitive, 3)
	require.NoError(t, err)
	slots, err = acc.SlotsAvailable(inst, unbox.CategoryPrimitive)
	require.NoError(t, err)
	assert.Equal(t, 64, slots)

	inst, err = acc.Resize(inst, unbox.CategoryObject, 100)
	require.NoError(t, err)
	slots, err = acc.SlotsAvailable(inst, unbox.CategoryObject)
	require.NoError(t, err)
	assert.Equal(t, 128, slots)

	// Failed resizes leave the instance unchanged.
	before, err := acc.SlotsAvailable(inst, unbox.CategoryPrimitive)
	require.NoError(t, err)
	res, err := acc.Resize(inst, unbox.CategoryPrimitive, -1)
	assert.ErrorIs(t, err, unbox.ErrInvalidArgument)
	after, err := acc.SlotsAvailable(res, unbox.CategoryPrimitive)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	_, err = acc.Resize(inst, unbox.Category(250), 1)
	assert.ErrorIs(t, err, unbox.ErrInvalidArgument)
}

func testReservedSize[S any](t *testing.T, acc unbox.Accessor[S]) {
	inst := acc.NewEmpty()
	for _, c := range categories {
		_, err := acc.ReservedSize(inst, c)
		assert.ErrorIs(t, err, unbox.ErrUnsupportedOperation, "reserved size for %s", c)
	}
}

func testBoolSpaceRules[S any](t *testing.T, acc unbox.Accessor[S], exp Expectations) {
	inst := acc.NewEmpty()

	if exp.BoolFixed {
		_, err := acc.Resize(inst, unbox.CategoryBool, exp.BoolFixedSize*2)
		assert.ErrorIs(t, err, unbox.ErrUnsupportedOperation)

		_, err = acc.NewWithBools(1, 1, 1)
		assert.ErrorIs(t, err, unbox.ErrUnsupportedOperation)

		last := exp.BoolFixedSize - 1
		inst, err = acc.SetBool(inst, last, true)
		require.NoError(t, err)
		got, err := acc.GetBool(inst, last)
		require.NoError(t, err)
		assert.True(t, got)

		_, err = acc.SetBool(inst, exp.BoolFixedSize, true)
		assert.ErrorIs(t, err, unbox.ErrIndexOutOfRange)
		_, err = acc.GetBool(inst, exp.BoolFixedSize)
		assert.ErrorIs(t, err, unbox.ErrIndexOutOfRange)

		// Independence: saturating one space must not leak into the other.
		for i := 0; i < exp.BoolFixedSize; i++ {
			inst, err = acc.SetBool(inst, i, true)
			require.NoError(t, err)
		}
		primStart := acc.StartIndex(unbox.CategoryPrimitive)
		n, err := acc.GetInt(inst, primStart)
		require.NoError(t, err)
		assert.Zero(t, n, "boolean writes must not touch primitive slots")

		inst, err = acc.SetInt(inst, primStart, -1)
		require.NoError(t, err)
		bit, err := acc.GetBool(inst, 0)
		require.NoError(t, err)
		assert.True(t, bit, "primitive writes must not touch boolean slots")
		return
	}

	// Shared ID space: booleans are not resizable on their own, only
	// through the primitive space they live in.
	require.False(t, exp.BoolIndependent)

	_, err := acc.NewWithBools(1, 1, 1)
	assert.ErrorIs(t, err, unbox.ErrUnsupportedOperation)

	res, err := acc.Resize(inst, unbox.CategoryBool, 42)
	assert.ErrorIs(t, err, unbox.ErrUnsupportedOperation)
	slots, err := acc.SlotsAvailable(res, unbox.CategoryBool)
	require.NoError(t, err)
	assert.Equal(t, exp.EmptyBoolSlots, slots, "failed boolean resize must not grow anything")

	inst, err = acc.Resize(inst, unbox.CategoryPrimitive, 42)
	require.NoError(t, err)
	slots, err = acc.SlotsAvailable(inst, unbox.CategoryBool)
	require.NoError(t, err)
	assert.Equal(t, 64, slots, "primitive growth carries the shared boolean space along")
}

// testPartialWriteRejected drives the two-slot writers into their high-word
// failure and checks nothing was written.
func testPartialWriteRejected[S any](t *testing.T, acc unbox.Accessor[S]) {
	if !acc.LongUsesTwoPrimitiveSlots() && !acc.DoubleUsesTwoPrimitiveSlots() {
		t.Skip("no two-slot values on this variant")
	}

	inst := acc.NewEmpty()
	maxIdx, err := acc.MaximumIndex(inst, unbox.CategoryPrimitive)
	require.NoError(t, err)

	inst, err = acc.SetInt(inst, maxIdx, 7)
	require.NoError(t, err)

	if acc.LongUsesTwoPrimitiveSlots() {
		res, err := acc.SetLong(inst, maxIdx, -1)
		assert.ErrorIs(t, err, unbox.ErrIndexOutOfRange)
		got, err := acc.GetInt(res, maxIdx)
		require.NoError(t, err)
		assert.Equal(t, int32(7), got, "low word must stay untouched")
	}
	if acc.DoubleUsesTwoPrimitiveSlots() {
		res, err := acc.SetDouble(inst, maxIdx, math.Pi)
		assert.ErrorIs(t, err, unbox.ErrIndexOutOfRange)
		got, err := acc.GetInt(res, maxIdx)
		require.NoError(t, err)
		assert.Equal(t, int32(7), got, "low word must stay untouched")
	}
}

func testInvalidInstance[S any](t *testing.T, acc unbox.Accessor[S]) {
	var zero S

	_, err := acc.MaximumIndex(zero, unbox.CategoryPrimitive)
	assert.ErrorIs(t, err, unbox.ErrInvalidInstance)
	_, err = acc.SlotsAvailable(zero, unbox.CategoryObject)
	assert.ErrorIs(t, err, unbox.ErrInvalidInstance)
	_, err = acc.ReservedSize(zero, unbox.CategoryPrimitive)
	assert.ErrorIs(t, err, unbox.ErrInvalidInstance)
	_, err = acc.Resize(zero, unbox.CategoryPrimitive, 16)
	assert.ErrorIs(t, err, unbox.ErrInvalidInstance)
	_, err = acc.GetInt(zero, 0)
	assert.ErrorIs(t, err, unbox.ErrInvalidInstance)
	_, err = acc.SetLong(zero, 0, 1)
	assert.ErrorIs(t, err, unbox.ErrInvalidInstance)
	_, err = acc.GetObject(zero, 0)
	assert.ErrorIs(t, err, unbox.ErrInvalidInstance)
	_, err = acc.SetBool(zero, 0, true)
	assert.ErrorIs(t, err, unbox.ErrInvalidInstance)
}

// testStateless shares one accessor value across goroutines, each mutating
// only its own instances. Run under -race this proves accessors carry no
// per-call state.
func testStateless[S any](t *testing.T, acc unbox.Accessor[S]) {
	const workers = 8

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			inst := acc.NewEmpty()
			start := acc.StartIndex(unbox.CategoryPrimitive)

			var err error
			for round := 0; round < 50; round++ {
				want := int32(w<<16 + round)
				inst, err = acc.SetInt(inst, start, want)
				if err != nil {
					return err
				}
				got, err := acc.GetInt(inst, start)
				if err != nil {
					return err
				}
				if got != want {
					return fmt.Errorf("worker %d round %d: got %d, want %d", w, round, got, want)
				}

				inst, err = acc.Resize(inst, unbox.CategoryPrimitive, 8+round)
				if err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
