package intword_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/unbox"
	"github.com/hupe1980/unbox/accessortest"
	"github.com/hupe1980/unbox/intword"
)

func TestAccessorContract(t *testing.T) {
	accessortest.Run(t, intword.New(), accessortest.Expectations{
		BoolIndependent: false,
		BoolFixed:       false,
		BoolFixedSize:   -1,
		LongTwoSlots:    true,
		DoubleTwoSlots:  true,

		PrimitiveStart: 0,
		BoolStart:      0,
		ObjectStart:    0,

		EmptyPrimitiveSlots: 8,
		EmptyBoolSlots:      8,
		EmptyObjectSlots:    8,

		MaxPrimitiveSlots: math.MaxInt32,
		MaxBoolSlots:      math.MaxInt32,
		MaxObjectSlots:    math.MaxInt32,
	})
}

func TestLongSplitsAcrossWords(t *testing.T) {
	acc := intword.New()
	inst := acc.NewEmpty()

	inst, err := acc.SetLong(inst, 0, 0x1122334455667788)
	require.NoError(t, err)

	lo, err := acc.GetInt(inst, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(0x55667788), lo, "low half at index")

	hi, err := acc.GetInt(inst, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(0x11223344), hi, "high half at index+1")

	got, err := acc.GetLong(inst, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0x1122334455667788), got)

	// Negative values must survive the split without sign smearing.
	inst, err = acc.SetLong(inst, 2, -2)
	require.NoError(t, err)
	got, err = acc.GetLong(inst, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(-2), got)

	lo, err = acc.GetInt(inst, 2)
	require.NoError(t, err)
	assert.Equal(t, int32(-2), lo)
	hi, err = acc.GetInt(inst, 3)
	require.NoError(t, err)
	assert.Equal(t, int32(-1), hi)
}

func TestDoubleSplitsAcrossWords(t *testing.T) {
	acc := intword.New()
	inst := acc.NewEmpty()

	inst, err := acc.SetDouble(inst, 0, math.Pi)
	require.NoError(t, err)

	bits := math.Float64bits(math.Pi)
	lo, err := acc.GetInt(inst, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(uint32(bits)), lo)

	hi, err := acc.GetInt(inst, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(uint32(bits>>32)), hi)

	got, err := acc.GetDouble(inst, 0)
	require.NoError(t, err)
	assert.Equal(t, bits, math.Float64bits(got))
}

func TestFloatStoresExactBits(t *testing.T) {
	acc := intword.New()
	inst := acc.NewEmpty()

	// A quiet NaN with a payload: the slot holds the pattern verbatim.
	const nanBits = uint32(0x7FC00123)
	inst, err := acc.SetFloat(inst, 0, math.Float32frombits(nanBits))
	require.NoError(t, err)

	got, err := acc.GetFloat(inst, 0)
	require.NoError(t, err)
	assert.Equal(t, nanBits, math.Float32bits(got))

	n, err := acc.GetInt(inst, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(nanBits), n, "float and int views share the word")
}

func TestBoolSharesWord(t *testing.T) {
	acc := intword.New()
	inst := acc.NewEmpty()

	// Any nonzero word reads as true.
	inst, err := acc.SetInt(inst, 3, 2)
	require.NoError(t, err)
	v, err := acc.GetBool(inst, 3)
	require.NoError(t, err)
	assert.True(t, v)

	inst, err = acc.SetBool(inst, 3, true)
	require.NoError(t, err)
	n, err := acc.GetInt(inst, 3)
	require.NoError(t, err)
	assert.Equal(t, int32(1), n, "true writes the whole word to 1")

	inst, err = acc.SetBool(inst, 3, false)
	require.NoError(t, err)
	n, err = acc.GetInt(inst, 3)
	require.NoError(t, err)
	assert.Zero(t, n, "false clears the whole word")
}

func TestBoolResizeUnsupported(t *testing.T) {
	acc := intword.New()
	inst := acc.NewEmpty()

	// Without an ID space of their own, booleans cannot be resized; only
	// primitive growth makes room for more of them.
	res, err := acc.Resize(inst, unbox.CategoryBool, 42)
	assert.ErrorIs(t, err, unbox.ErrUnsupportedOperation)

	slots, err := acc.SlotsAvailable(res, unbox.CategoryBool)
	require.NoError(t, err)
	assert.Equal(t, 8, slots, "failed resize must leave capacity alone")

	inst, err = acc.Resize(inst, unbox.CategoryPrimitive, 42)
	require.NoError(t, err)
	slots, err = acc.SlotsAvailable(inst, unbox.CategoryBool)
	require.NoError(t, err)
	assert.Equal(t, 64, slots)

	inst, err = acc.SetBool(inst, 63, true)
	require.NoError(t, err)
	v, err := acc.GetBool(inst, 63)
	require.NoError(t, err)
	assert.True(t, v)
}

func TestNarrowWritesFillWord(t *testing.T) {
	acc := intword.New()
	inst := acc.NewEmpty()

	inst, err := acc.SetByte(inst, 0, -1)
	require.NoError(t, err)
	n, err := acc.GetInt(inst, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(-1), n, "bytes sign-extend into the word")

	inst, err = acc.SetShort(inst, 1, math.MinInt16)
	require.NoError(t, err)
	n, err = acc.GetInt(inst, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(math.MinInt16), n, "shorts sign-extend into the word")

	inst, err = acc.SetChar(inst, 2, math.MaxUint16)
	require.NoError(t, err)
	n, err = acc.GetInt(inst, 2)
	require.NoError(t, err)
	assert.Equal(t, int32(math.MaxUint16), n, "chars zero-extend into the word")

	// Narrow reads truncate whatever the word holds.
	inst, err = acc.SetInt(inst, 4, 0x12345678)
	require.NoError(t, err)
	b, err := acc.GetByte(inst, 4)
	require.NoError(t, err)
	assert.Equal(t, int8(0x78), b)
	ch, err := acc.GetChar(inst, 4)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x5678), ch)
	s, err := acc.GetShort(inst, 4)
	require.NoError(t, err)
	assert.Equal(t, int16(0x5678), s)
}
