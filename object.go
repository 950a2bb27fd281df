package unbox

// Object pairs one accessor with one storage instance for object-style call
// syntax. Every mutating call adopts the returned handle, so Object users
// never track replacement instances themselves.
//
// An Object is not safe for concurrent use, matching the instance it wraps.
// The zero value is not usable; construct with NewObject.
type Object[S any] struct {
	acc    Accessor[S]
	inst   S
	logger *Logger
}

// NewObject wraps a fresh instance of acc.
//
// Without size options the instance is the accessor's minimum-size empty
// one; with them it is sized as by Accessor.New.
func NewObject[S any](acc Accessor[S], optFns ...Option) (*Object[S], error) {
	o := options{
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&o)
	}

	obj := &Object[S]{
		acc:    acc,
		logger: o.logger,
	}
	if o.primitiveSlots == 0 && o.objectSlots == 0 {
		obj.inst = acc.NewEmpty()
		return obj, nil
	}

	inst, err := acc.New(o.primitiveSlots, o.objectSlots)
	if err != nil {
		return nil, err
	}
	obj.inst = inst

	return obj, nil
}

// Accessor returns the accessor the object was built with.
func (o *Object[S]) Accessor() Accessor[S] { return o.acc }

// Instance returns the current storage handle. It goes stale on the next
// mutating call; hold it only for immediate direct accessor use.
func (o *Object[S]) Instance() S { return o.inst }

// MaximumIndex returns the largest currently valid index of the category.
func (o *Object[S]) MaximumIndex(c Category) (int, error) {
	return o.acc.MaximumIndex(o.inst, c)
}

// SlotsAvailable returns the number of currently addressable slots of the
// category.
func (o *Object[S]) SlotsAvailable(c Category) (int, error) {
	return o.acc.SlotsAvailable(o.inst, c)
}

// ReservedSize returns the exact size last requested for the category; see
// Accessor.ReservedSize for when this is supported.
func (o *Object[S]) ReservedSize(c Category) (int, error) {
	return o.acc.ReservedSize(o.inst, c)
}

// Resize grows the category to hold at least slots values, adopting the
// replacement instance if the accessor allocated one.
func (o *Object[S]) Resize(c Category, slots int) error {
	before, _ := o.acc.SlotsAvailable(o.inst, c)

	inst, err := o.acc.Resize(o.inst, c, slots)
	if err != nil {
		return err
	}
	o.inst = inst

	after, _ := o.acc.SlotsAvailable(o.inst, c)
	o.logger.LogResize(c, before, after)

	return nil
}

// GetBool reads the boolean at index.
func (o *Object[S]) GetBool(index int) (bool, error) {
	return o.acc.GetBool(o.inst, index)
}

// SetBool writes the boolean at index.
func (o *Object[S]) SetBool(index int, value bool) error {
	inst, err := o.acc.SetBool(o.inst, index, value)
	if err != nil {
		return err
	}
	o.inst = inst
	return nil
}

// GetByte reads the byte at index.
func (o *Object[S]) GetByte(index int) (int8, error) {
	return o.acc.GetByte(o.inst, index)
}

// SetByte writes the byte at index.
func (o *Object[S]) SetByte(index int, value int8) error {
	inst, err := o.acc.SetByte(o.inst, index, value)
	if err != nil {
		return err
	}
	o.inst = inst
	return nil
}

// GetChar reads the char at index.
func (o *Object[S]) GetChar(index int) (uint16, error) {
	return o.acc.GetChar(o.inst, index)
}

// SetChar writes the char at index.
func (o *Object[S]) SetChar(index int, value uint16) error {
	inst, err := o.acc.SetChar(o.inst, index, value)
	if err != nil {
		return err
	}
	o.inst = inst
	return nil
}

// GetShort reads the short at index.
func (o *Object[S]) GetShort(index int) (int16, error) {
	return o.acc.GetShort(o.inst, index)
}

// SetShort writes the short at index.
func (o *Object[S]) SetShort(index int, value int16) error {
	inst, err := o.acc.SetShort(o.inst, index, value)
	if err != nil {
		return err
	}
	o.inst = inst
	return nil
}

// GetInt reads the int at index.
func (o *Object[S]) GetInt(index int) (int32, error) {
	return o.acc.GetInt(o.inst, index)
}

// SetInt writes the int at index.
func (o *Object[S]) SetInt(index int, value int32) error {
	inst, err := o.acc.SetInt(o.inst, index, value)
	if err != nil {
		return err
	}
	o.inst = inst
	return nil
}

// GetFloat reads the float at index.
func (o *Object[S]) GetFloat(index int) (float32, error) {
	return o.acc.GetFloat(o.inst, index)
}

// SetFloat writes the float at index.
func (o *Object[S]) SetFloat(index int, value float32) error {
	inst, err := o.acc.SetFloat(o.inst, index, value)
	if err != nil {
		return err
	}
	o.inst = inst
	return nil
}

// GetLong reads the long at index.
func (o *Object[S]) GetLong(index int) (int64, error) {
	return o.acc.GetLong(o.inst, index)
}

// SetLong writes the long at index. On variants where longs span two slots,
// index and index+1 must both be valid.
func (o *Object[S]) SetLong(index int, value int64) error {
	inst, err := o.acc.SetLong(o.inst, index, value)
	if err != nil {
		return err
	}
	o.inst = inst
	return nil
}

// GetDouble reads the double at index.
func (o *Object[S]) GetDouble(index int) (float64, error) {
	return o.acc.GetDouble(o.inst, index)
}

// SetDouble writes the double at index. On variants where doubles span two
// slots, index and index+1 must both be valid.
func (o *Object[S]) SetDouble(index int, value float64) error {
	inst, err := o.acc.SetDouble(o.inst, index, value)
	if err != nil {
		return err
	}
	o.inst = inst
	return nil
}

// GetObject reads the object reference at index.
func (o *Object[S]) GetObject(index int) (any, error) {
	return o.acc.GetObject(o.inst, index)
}

// SetObject writes the object reference at index. A nil value clears the
// slot.
func (o *Object[S]) SetObject(index int, value any) error {
	inst, err := o.acc.SetObject(o.inst, index, value)
	if err != nil {
		return err
	}
	o.inst = inst
	return nil
}
