package longword_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/unbox"
	"github.com/hupe1980/unbox/accessortest"
	"github.com/hupe1980/unbox/longword"
)

func TestAccessorContract(t *testing.T) {
	accessortest.Run(t, longword.New(), accessortest.Expectations{
		BoolIndependent: true,
		BoolFixed:       true,
		BoolFixedSize:   64,
		LongTwoSlots:    false,
		DoubleTwoSlots:  false,

		PrimitiveStart: 1,
		BoolStart:      0,
		ObjectStart:    0,

		EmptyPrimitiveSlots: 8,
		EmptyBoolSlots:      64,
		EmptyObjectSlots:    8,

		MaxPrimitiveSlots: math.MaxInt32 - 1,
		MaxBoolSlots:      64,
		MaxObjectSlots:    math.MaxInt32,
	})
}

func TestLongFitsOneWord(t *testing.T) {
	acc := longword.New()
	inst := acc.NewEmpty()

	inst, err := acc.SetLong(inst, 1, 0x1122334455667788)
	require.NoError(t, err)

	got, err := acc.GetLong(inst, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0x1122334455667788), got)

	// The neighboring slot stays free.
	n, err := acc.GetLong(inst, 2)
	require.NoError(t, err)
	assert.Zero(t, n)

	// Narrow reads truncate the same word.
	i32, err := acc.GetInt(inst, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(0x55667788), i32)
	i16, err := acc.GetShort(inst, 1)
	require.NoError(t, err)
	assert.Equal(t, int16(0x7788), i16)
	u16, err := acc.GetChar(inst, 1)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x7788), u16)
	i8, err := acc.GetByte(inst, 1)
	require.NoError(t, err)
	assert.Equal(t, int8(-0x78), i8)
}

func TestBoolBitsAreDisjoint(t *testing.T) {
	acc := longword.New()
	inst := acc.NewEmpty()

	inst, err := acc.SetBool(inst, 63, true)
	require.NoError(t, err)

	for i := 0; i < 63; i++ {
		v, err := acc.GetBool(inst, i)
		require.NoError(t, err)
		assert.False(t, v, "bit %d", i)
	}
	v, err := acc.GetBool(inst, 63)
	require.NoError(t, err)
	assert.True(t, v)

	inst, err = acc.SetBool(inst, 63, false)
	require.NoError(t, err)
	v, err = acc.GetBool(inst, 63)
	require.NoError(t, err)
	assert.False(t, v)
}

func TestNarrowWritesExtend(t *testing.T) {
	acc := longword.New()
	inst := acc.NewEmpty()

	inst, err := acc.SetByte(inst, 1, -1)
	require.NoError(t, err)
	l, err := acc.GetLong(inst, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), l, "bytes sign-extend into the word")

	inst, err = acc.SetShort(inst, 2, math.MinInt16)
	require.NoError(t, err)
	l, err = acc.GetLong(inst, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt16), l, "shorts sign-extend into the word")

	inst, err = acc.SetInt(inst, 3, math.MinInt32)
	require.NoError(t, err)
	l, err = acc.GetLong(inst, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt32), l, "ints sign-extend into the word")

	inst, err = acc.SetChar(inst, 4, math.MaxUint16)
	require.NoError(t, err)
	l, err = acc.GetLong(inst, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxUint16), l, "chars zero-extend into the word")
}

func TestFloatPatternSignExtends(t *testing.T) {
	acc := longword.New()
	inst := acc.NewEmpty()

	// A float with the sign bit set sign-extends its bit pattern, exactly
	// like an int write of the same pattern would.
	inst, err := acc.SetFloat(inst, 1, -1.5)
	require.NoError(t, err)

	f, err := acc.GetFloat(inst, 1)
	require.NoError(t, err)
	assert.Equal(t, float32(-1.5), f)

	l, err := acc.GetLong(inst, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(int32(math.Float32bits(-1.5))), l)

	inst, err = acc.SetFloat(inst, 2, 1.5)
	require.NoError(t, err)
	l, err = acc.GetLong(inst, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(math.Float32bits(1.5)), l)
}

func TestFloatKeepsNaNBits(t *testing.T) {
	acc := longword.New()
	inst := acc.NewEmpty()

	const nanBits = uint32(0x7FC00123)
	inst, err := acc.SetFloat(inst, 1, math.Float32frombits(nanBits))
	require.NoError(t, err)

	got, err := acc.GetFloat(inst, 1)
	require.NoError(t, err)
	assert.Equal(t, nanBits, math.Float32bits(got))
}

func TestReservedWordIsNotAddressable(t *testing.T) {
	acc := longword.New()
	inst := acc.NewEmpty()

	// Index 0 belongs to the boolean bitset, not to primitives.
	_, err := acc.GetInt(inst, 0)
	assert.ErrorIs(t, err, unbox.ErrIndexOutOfRange)
	_, err = acc.SetLong(inst, 0, 1)
	assert.ErrorIs(t, err, unbox.ErrIndexOutOfRange)
}
