package intword

import "math"

// wideLoad reassembles the 64-bit value spanning index (low word) and
// index+1 (high word).
func wideLoad(inst *Store, index int) (uint64, error) {
	if inst == nil {
		return 0, errNilInstance
	}
	if err := primitiveSpace(inst).CheckSpan(index, 2); err != nil {
		return 0, err
	}
	lo := uint64(inst.words[index])
	hi := uint64(inst.words[index+1])
	return hi<<32 | lo, nil
}

// wideStore splits a 64-bit value across index (low word) and index+1 (high
// word). Both slots validate before either is written.
func wideStore(inst *Store, index int, bits uint64) error {
	if inst == nil {
		return errNilInstance
	}
	if err := primitiveSpace(inst).CheckSpan(index, 2); err != nil {
		return err
	}
	inst.words[index] = uint32(bits)
	inst.words[index+1] = uint32(bits >> 32)
	return nil
}

// GetBool reads the boolean at index: any non-zero word is true.
func (Accessor) GetBool(inst *Store, index int) (bool, error) {
	if inst == nil {
		return false, errNilInstance
	}
	if err := boolSpace(inst).Check(index); err != nil {
		return false, err
	}
	return inst.words[index] != 0, nil
}

// SetBool writes the boolean at index as a whole word, 1 or 0.
func (Accessor) SetBool(inst *Store, index int, value bool) (*Store, error) {
	if inst == nil {
		return nil, errNilInstance
	}
	if err := boolSpace(inst).Check(index); err != nil {
		return inst, err
	}
	if value {
		inst.words[index] = 1
	} else {
		inst.words[index] = 0
	}
	return inst, nil
}

// GetByte reads the byte at index from the word's low 8 bits.
func (Accessor) GetByte(inst *Store, index int) (int8, error) {
	if inst == nil {
		return 0, errNilInstance
	}
	if err := primitiveSpace(inst).Check(index); err != nil {
		return 0, err
	}
	return int8(inst.words[index]), nil
}

// SetByte writes the byte at index, sign-extended into the word.
func (Accessor) SetByte(inst *Store, index int, value int8) (*Store, error) {
	if inst == nil {
		return nil, errNilInstance
	}
	if err := primitiveSpace(inst).Check(index); err != nil {
		return inst, err
	}
	inst.words[index] = uint32(int32(value))
	return inst, nil
}

// GetChar reads the char at index from the word's low 16 bits.
func (Accessor) GetChar(inst *Store, index int) (uint16, error) {
	if inst == nil {
		return 0, errNilInstance
	}
	if err := primitiveSpace(inst).Check(index); err != nil {
		return 0, err
	}
	return uint16(inst.words[index]), nil
}

// SetChar writes the char at index, zero-extended into the word.
func (Accessor) SetChar(inst *Store, index int, value uint16) (*Store, error) {
	if inst == nil {
		return nil, errNilInstance
	}
	if err := primitiveSpace(inst).Check(index); err != nil {
		return inst, err
	}
	inst.words[index] = uint32(value)
	return inst, nil
}

// GetShort reads the short at index from the word's low 16 bits.
func (Accessor) GetShort(inst *Store, index int) (int16, error) {
	if inst == nil {
		return 0, errNilInstance
	}
	if err := primitiveSpace(inst).Check(index); err != nil {
		return 0, err
	}
	return int16(inst.words[index]), nil
}

// SetShort writes the short at index, sign-extended into the word.
func (Accessor) SetShort(inst *Store, index int, value int16) (*Store, error) {
	if inst == nil {
		return nil, errNilInstance
	}
	if err := primitiveSpace(inst).Check(index); err != nil {
		return inst, err
	}
	inst.words[index] = uint32(int32(value))
	return inst, nil
}

// GetInt reads the int at index.
func (Accessor) GetInt(inst *Store, index int) (int32, error) {
	if inst == nil {
		return 0, errNilInstance
	}
	if err := primitiveSpace(inst).Check(index); err != nil {
		return 0, err
	}
	return int32(inst.words[index]), nil
}

// SetInt writes the int at index.
func (Accessor) SetInt(inst *Store, index int, value int32) (*Store, error) {
	if inst == nil {
		return nil, errNilInstance
	}
	if err := primitiveSpace(inst).Check(index); err != nil {
		return inst, err
	}
	inst.words[index] = uint32(value)
	return inst, nil
}

// GetFloat reads the float at index from its exact 32-bit pattern.
func (Accessor) GetFloat(inst *Store, index int) (float32, error) {
	if inst == nil {
		return 0, errNilInstance
	}
	if err := primitiveSpace(inst).Check(index); err != nil {
		return 0, err
	}
	return math.Float32frombits(inst.words[index]), nil
}

// SetFloat writes the float at index as its exact 32-bit pattern.
func (Accessor) SetFloat(inst *Store, index int, value float32) (*Store, error) {
	if inst == nil {
		return nil, errNilInstance
	}
	if err := primitiveSpace(inst).Check(index); err != nil {
		return inst, err
	}
	inst.words[index] = math.Float32bits(value)
	return inst, nil
}

// GetLong reads the long spanning index and index+1.
func (Accessor) GetLong(inst *Store, index int) (int64, error) {
	bits, err := wideLoad(inst, index)
	if err != nil {
		return 0, err
	}
	return int64(bits), nil
}

// SetLong writes the long across index and index+1.
func (Accessor) SetLong(inst *Store, index int, value int64) (*Store, error) {
	if err := wideStore(inst, index, uint64(value)); err != nil {
		return inst, err
	}
	return inst, nil
}

// GetDouble reads the double spanning index and index+1 from its exact
// 64-bit pattern.
func (Accessor) GetDouble(inst *Store, index int) (float64, error) {
	bits, err := wideLoad(inst, index)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

// SetDouble writes the double across index and index+1 as its exact 64-bit
// pattern.
func (Accessor) SetDouble(inst *Store, index int, value float64) (*Store, error) {
	if err := wideStore(inst, index, math.Float64bits(value)); err != nil {
		return inst, err
	}
	return inst, nil
}

// GetObject reads the object reference at index.
func (Accessor) GetObject(inst *Store, index int) (any, error) {
	if inst == nil {
		return nil, errNilInstance
	}
	if err := objectSpace(inst).Check(index); err != nil {
		return nil, err
	}
	return inst.refs[index], nil
}

// SetObject writes the object reference at index. A nil value clears the
// slot.
func (Accessor) SetObject(inst *Store, index int, value any) (*Store, error) {
	if inst == nil {
		return nil, errNilInstance
	}
	if err := objectSpace(inst).Check(index); err != nil {
		return inst, err
	}
	inst.refs[index] = value
	return inst, nil
}
