package unbox_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/unbox"
	"github.com/hupe1980/unbox/intword"
	"github.com/hupe1980/unbox/longword"
)

func TestNewObjectDefaults(t *testing.T) {
	obj, err := unbox.NewObject(intword.New())
	require.NoError(t, err)

	slots, err := obj.SlotsAvailable(unbox.CategoryPrimitive)
	require.NoError(t, err)
	assert.Equal(t, 8, slots)

	slots, err = obj.SlotsAvailable(unbox.CategoryObject)
	require.NoError(t, err)
	assert.Equal(t, 8, slots)
}

func TestNewObjectWithSizes(t *testing.T) {
	obj, err := unbox.NewObject(intword.New(),
		unbox.WithPrimitiveSlots(42),
		unbox.WithObjectSlots(100),
	)
	require.NoError(t, err)

	slots, err := obj.SlotsAvailable(unbox.CategoryPrimitive)
	require.NoError(t, err)
	assert.Equal(t, 64, slots)

	slots, err = obj.SlotsAvailable(unbox.CategoryObject)
	require.NoError(t, err)
	assert.Equal(t, 128, slots)
}

func TestNewObjectInvalidSizes(t *testing.T) {
	_, err := unbox.NewObject(intword.New(), unbox.WithPrimitiveSlots(-1))
	assert.ErrorIs(t, err, unbox.ErrInvalidArgument)

	_, err = unbox.NewObject(intword.New(), unbox.WithObjectSlots(-1))
	assert.ErrorIs(t, err, unbox.ErrInvalidArgument)
}

func TestObjectRoundTrips(t *testing.T) {
	obj, err := unbox.NewObject(longword.New())
	require.NoError(t, err)

	require.NoError(t, obj.SetBool(0, true))
	b, err := obj.GetBool(0)
	require.NoError(t, err)
	assert.True(t, b)

	require.NoError(t, obj.SetByte(1, -7))
	i8, err := obj.GetByte(1)
	require.NoError(t, err)
	assert.Equal(t, int8(-7), i8)

	require.NoError(t, obj.SetChar(2, 'x'))
	ch, err := obj.GetChar(2)
	require.NoError(t, err)
	assert.Equal(t, uint16('x'), ch)

	require.NoError(t, obj.SetShort(3, -300))
	i16, err := obj.GetShort(3)
	require.NoError(t, err)
	assert.Equal(t, int16(-300), i16)

	require.NoError(t, obj.SetInt(4, 1<<20))
	i32, err := obj.GetInt(4)
	require.NoError(t, err)
	assert.Equal(t, int32(1<<20), i32)

	require.NoError(t, obj.SetFloat(5, 2.25))
	f32, err := obj.GetFloat(5)
	require.NoError(t, err)
	assert.Equal(t, float32(2.25), f32)

	require.NoError(t, obj.SetLong(6, 1<<40))
	i64, err := obj.GetLong(6)
	require.NoError(t, err)
	assert.Equal(t, int64(1<<40), i64)

	require.NoError(t, obj.SetDouble(7, -0.125))
	f64, err := obj.GetDouble(7)
	require.NoError(t, err)
	assert.Equal(t, -0.125, f64)

	require.NoError(t, obj.SetObject(0, "payload"))
	v, err := obj.GetObject(0)
	require.NoError(t, err)
	assert.Equal(t, "payload", v)
}

func TestObjectAdoptsGrowth(t *testing.T) {
	obj, err := unbox.NewObject(intword.New())
	require.NoError(t, err)

	require.NoError(t, obj.SetInt(0, 123))
	before := obj.Instance()

	require.NoError(t, obj.Resize(unbox.CategoryPrimitive, 1000))
	assert.NotSame(t, before, obj.Instance(), "growth must swap the wrapped instance")

	slots, err := obj.SlotsAvailable(unbox.CategoryPrimitive)
	require.NoError(t, err)
	assert.Equal(t, 1024, slots)

	n, err := obj.GetInt(0)
	require.NoError(t, err)
	assert.Equal(t, int32(123), n, "contents survive adoption")

	// No growth, no swap.
	same := obj.Instance()
	require.NoError(t, obj.Resize(unbox.CategoryPrimitive, 10))
	assert.Same(t, same, obj.Instance())
}

func TestObjectForwardsErrors(t *testing.T) {
	obj, err := unbox.NewObject(intword.New())
	require.NoError(t, err)

	assert.ErrorIs(t, obj.SetInt(8, 1), unbox.ErrIndexOutOfRange)
	_, err = obj.GetLong(7)
	assert.ErrorIs(t, err, unbox.ErrIndexOutOfRange)

	_, err = obj.ReservedSize(unbox.CategoryPrimitive)
	assert.ErrorIs(t, err, unbox.ErrUnsupportedOperation)

	assert.ErrorIs(t, obj.Resize(unbox.CategoryPrimitive, -1), unbox.ErrInvalidArgument)

	// A failed call must not disturb the wrapped instance.
	n, err := obj.GetInt(0)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestObjectLogsResize(t *testing.T) {
	var buf bytes.Buffer
	logger := unbox.NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	obj, err := unbox.NewObject(intword.New(), unbox.WithLogger(logger))
	require.NoError(t, err)

	require.NoError(t, obj.Resize(unbox.CategoryPrimitive, 42))
	assert.Contains(t, buf.String(), "resized")
	assert.Contains(t, buf.String(), "category=primitive")
	assert.Contains(t, buf.String(), "after=64")

	buf.Reset()
	require.NoError(t, obj.Resize(unbox.CategoryPrimitive, 5))
	assert.Contains(t, buf.String(), "resize kept capacity")
}

func TestObjectLoggerNilStaysQuiet(t *testing.T) {
	obj, err := unbox.NewObject(intword.New(), unbox.WithLogger(nil))
	require.NoError(t, err)

	// Must not panic: nil falls back to the noop logger.
	require.NoError(t, obj.Resize(unbox.CategoryPrimitive, 42))
}
