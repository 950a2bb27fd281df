package doubleword

import (
	"math"

	"github.com/hupe1980/unbox/internal/bitword"
)

// GetBool reads bit index of the reserved word's integer value.
func (Accessor) GetBool(inst *Store, index int) (bool, error) {
	if err := validate(inst); err != nil {
		return false, err
	}
	if err := fixedBoolSpace.Check(index); err != nil {
		return false, err
	}
	return bitword.Test(uint64(inst.words[0]), uint(index)), nil
}

// SetBool writes bit index of the reserved word's integer value. The bitset
// stays below 2^52, so the value round-trips exactly through the float.
func (Accessor) SetBool(inst *Store, index int, value bool) (*Store, error) {
	if err := validate(inst); err != nil {
		return inst, err
	}
	if err := fixedBoolSpace.Check(index); err != nil {
		return inst, err
	}
	inst.words[0] = float64(bitword.Assign(uint64(inst.words[0]), uint(index), value))
	return inst, nil
}

// GetByte reads the byte at index by exact numeric cast.
func (Accessor) GetByte(inst *Store, index int) (int8, error) {
	if err := validate(inst); err != nil {
		return 0, err
	}
	if err := primitiveSpace(inst).Check(index); err != nil {
		return 0, err
	}
	return int8(inst.words[index]), nil
}

// SetByte writes the byte at index by exact numeric cast.
func (Accessor) SetByte(inst *Store, index int, value int8) (*Store, error) {
	if err := validate(inst); err != nil {
		return inst, err
	}
	if err := primitiveSpace(inst).Check(index); err != nil {
		return inst, err
	}
	inst.words[index] = float64(value)
	return inst, nil
}

// GetChar reads the char at index by exact numeric cast.
func (Accessor) GetChar(inst *Store, index int) (uint16, error) {
	if err := validate(inst); err != nil {
		return 0, err
	}
	if err := primitiveSpace(inst).Check(index); err != nil {
		return 0, err
	}
	return uint16(inst.words[index]), nil
}

// SetChar writes the char at index by exact numeric cast.
func (Accessor) SetChar(inst *Store, index int, value uint16) (*Store, error) {
	if err := validate(inst); err != nil {
		return inst, err
	}
	if err := primitiveSpace(inst).Check(index); err != nil {
		return inst, err
	}
	inst.words[index] = float64(value)
	return inst, nil
}

// GetShort reads the short at index by exact numeric cast.
func (Accessor) GetShort(inst *Store, index int) (int16, error) {
	if err := validate(inst); err != nil {
		return 0, err
	}
	if err := primitiveSpace(inst).Check(index); err != nil {
		return 0, err
	}
	return int16(inst.words[index]), nil
}

// SetShort writes the short at index by exact numeric cast.
func (Accessor) SetShort(inst *Store, index int, value int16) (*Store, error) {
	if err := validate(inst); err != nil {
		return inst, err
	}
	if err := primitiveSpace(inst).Check(index); err != nil {
		return inst, err
	}
	inst.words[index] = float64(value)
	return inst, nil
}

// GetInt reads the int at index by exact numeric cast.
func (Accessor) GetInt(inst *Store, index int) (int32, error) {
	if err := validate(inst); err != nil {
		return 0, err
	}
	if err := primitiveSpace(inst).Check(index); err != nil {
		return 0, err
	}
	return int32(inst.words[index]), nil
}

// SetInt writes the int at index by exact numeric cast: every int32 fits the
// 52 exact bits.
func (Accessor) SetInt(inst *Store, index int, value int32) (*Store, error) {
	if err := validate(inst); err != nil {
		return inst, err
	}
	if err := primitiveSpace(inst).Check(index); err != nil {
		return inst, err
	}
	inst.words[index] = float64(value)
	return inst, nil
}

// GetFloat reads the float at index by numeric narrowing cast.
func (Accessor) GetFloat(inst *Store, index int) (float32, error) {
	if err := validate(inst); err != nil {
		return 0, err
	}
	if err := primitiveSpace(inst).Check(index); err != nil {
		return 0, err
	}
	return float32(inst.words[index]), nil
}

// SetFloat writes the float at index by numeric widening cast, exact for
// every float32 value.
func (Accessor) SetFloat(inst *Store, index int, value float32) (*Store, error) {
	if err := validate(inst); err != nil {
		return inst, err
	}
	if err := primitiveSpace(inst).Check(index); err != nil {
		return inst, err
	}
	inst.words[index] = float64(value)
	return inst, nil
}

// GetLong reads the long at index: the word's exact 64-bit pattern, or the
// two-slot halves when the fallback is active.
func (a Accessor) GetLong(inst *Store, index int) (int64, error) {
	if err := validate(inst); err != nil {
		return 0, err
	}
	if a.twoSlotLong {
		if err := primitiveSpace(inst).CheckSpan(index, 2); err != nil {
			return 0, err
		}
		lo := int64(int32(inst.words[index]))
		hi := int64(int32(inst.words[index+1]))
		return hi<<32 | lo&0xFFFFFFFF, nil
	}
	if err := primitiveSpace(inst).Check(index); err != nil {
		return 0, err
	}
	return int64(math.Float64bits(inst.words[index])), nil
}

// SetLong writes the long at index: bit-exact through the word's pattern, or
// split into two exact 32-bit halves (low at index, high at index+1) when
// the fallback is active.
func (a Accessor) SetLong(inst *Store, index int, value int64) (*Store, error) {
	if err := validate(inst); err != nil {
		return inst, err
	}
	if a.twoSlotLong {
		if err := primitiveSpace(inst).CheckSpan(index, 2); err != nil {
			return inst, err
		}
		inst.words[index] = float64(int32(value))
		inst.words[index+1] = float64(int32(value >> 32))
		return inst, nil
	}
	if err := primitiveSpace(inst).Check(index); err != nil {
		return inst, err
	}
	inst.words[index] = math.Float64frombits(uint64(value))
	return inst, nil
}

// GetDouble reads the double at index.
func (Accessor) GetDouble(inst *Store, index int) (float64, error) {
	if err := validate(inst); err != nil {
		return 0, err
	}
	if err := primitiveSpace(inst).Check(index); err != nil {
		return 0, err
	}
	return inst.words[index], nil
}

// SetDouble writes the double at index.
func (Accessor) SetDouble(inst *Store, index int, value float64) (*Store, error) {
	if err := validate(inst); err != nil {
		return inst, err
	}
	if err := primitiveSpace(inst).Check(index); err != nil {
		return inst, err
	}
	inst.words[index] = value
	return inst, nil
}

// GetObject reads the object reference at index.
func (Accessor) GetObject(inst *Store, index int) (any, error) {
	if err := validate(inst); err != nil {
		return nil, err
	}
	if err := objectSpace(inst).Check(index); err != nil {
		return nil, err
	}
	return inst.refs[index], nil
}

// SetObject writes the object reference at index. A nil value clears the
// slot.
func (Accessor) SetObject(inst *Store, index int, value any) (*Store, error) {
	if err := validate(inst); err != nil {
		return inst, err
	}
	if err := objectSpace(inst).Check(index); err != nil {
		return inst, err
	}
	inst.refs[index] = value
	return inst, nil
}
