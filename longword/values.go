package longword

import (
	"math"

	"github.com/hupe1980/unbox/internal/bitword"
)

// GetBool reads bit index of the reserved word.
func (Accessor) GetBool(inst *Store, index int) (bool, error) {
	if err := validate(inst); err != nil {
		return false, err
	}
	if err := fixedBoolSpace.Check(index); err != nil {
		return false, err
	}
	return bitword.Test(inst.words[0], uint(index)), nil
}

// SetBool writes bit index of the reserved word.
func (Accessor) SetBool(inst *Store, index int, value bool) (*Store, error) {
	if err := validate(inst); err != nil {
		return inst, err
	}
	if err := fixedBoolSpace.Check(index); err != nil {
		return inst, err
	}
	inst.words[0] = bitword.Assign(inst.words[0], uint(index), value)
	return inst, nil
}

// GetByte reads the byte at index from the word's low 8 bits.
func (Accessor) GetByte(inst *Store, index int) (int8, error) {
	if err := validate(inst); err != nil {
		return 0, err
	}
	if err := primitiveSpace(inst).Check(index); err != nil {
		return 0, err
	}
	return int8(inst.words[index]), nil
}

// SetByte writes the byte at index, sign-extended into the word.
func (Accessor) SetByte(inst *Store, index int, value int8) (*Store, error) {
	if err := validate(inst); err != nil {
		return inst, err
	}
	if err := primitiveSpace(inst).Check(index); err != nil {
		return inst, err
	}
	inst.words[index] = uint64(int64(value))
	return inst, nil
}

// GetChar reads the char at index from the word's low 16 bits.
func (Accessor) GetChar(inst *Store, index int) (uint16, error) {
	if err := validate(inst); err != nil {
		return 0, err
	}
	if err := primitiveSpace(inst).Check(index); err != nil {
		return 0, err
	}
	return uint16(inst.words[index]), nil
}

// SetChar writes the char at index, zero-extended into the word.
func (Accessor) SetChar(inst *Store, index int, value uint16) (*Store, error) {
	if err := validate(inst); err != nil {
		return inst, err
	}
	if err := primitiveSpace(inst).Check(index); err != nil {
		return inst, err
	}
	inst.words[index] = uint64(value)
	return inst, nil
}

// GetShort reads the short at index from the word's low 16 bits.
func (Accessor) GetShort(inst *Store, index int) (int16, error) {
	if err := validate(inst); err != nil {
		return 0, err
	}
	if err := primitiveSpace(inst).Check(index); err != nil {
		return 0, err
	}
	return int16(inst.words[index]), nil
}

// SetShort writes the short at index, sign-extended into the word.
func (Accessor) SetShort(inst *Store, index int, value int16) (*Store, error) {
	if err := validate(inst); err != nil {
		return inst, err
	}
	if err := primitiveSpace(inst).Check(index); err != nil {
		return inst, err
	}
	inst.words[index] = uint64(int64(value))
	return inst, nil
}

// GetInt reads the int at index from the word's low 32 bits.
func (Accessor) GetInt(inst *Store, index int) (int32, error) {
	if err := validate(inst); err != nil {
		return 0, err
	}
	if err := primitiveSpace(inst).Check(index); err != nil {
		return 0, err
	}
	return int32(inst.words[index]), nil
}

// SetInt writes the int at index, sign-extended into the word.
func (Accessor) SetInt(inst *Store, index int, value int32) (*Store, error) {
	if err := validate(inst); err != nil {
		return inst, err
	}
	if err := primitiveSpace(inst).Check(index); err != nil {
		return inst, err
	}
	inst.words[index] = uint64(int64(value))
	return inst, nil
}

// GetFloat reads the float at index from the exact 32-bit pattern in the
// word's low half.
func (Accessor) GetFloat(inst *Store, index int) (float32, error) {
	if err := validate(inst); err != nil {
		return 0, err
	}
	if err := primitiveSpace(inst).Check(index); err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(inst.words[index])), nil
}

// SetFloat writes the float at index as its exact 32-bit pattern, widened
// into the word.
func (Accessor) SetFloat(inst *Store, index int, value float32) (*Store, error) {
	if err := validate(inst); err != nil {
		return inst, err
	}
	if err := primitiveSpace(inst).Check(index); err != nil {
		return inst, err
	}
	inst.words[index] = uint64(int64(int32(math.Float32bits(value))))
	return inst, nil
}

// GetLong reads the long at index.
func (Accessor) GetLong(inst *Store, index int) (int64, error) {
	if err := validate(inst); err != nil {
		return 0, err
	}
	if err := primitiveSpace(inst).Check(index); err != nil {
		return 0, err
	}
	return int64(inst.words[index]), nil
}

// SetLong writes the long at index.
func (Accessor) SetLong(inst *Store, index int, value int64) (*Store, error) {
	if err := validate(inst); err != nil {
		return inst, err
	}
	if err := primitiveSpace(inst).Check(index); err != nil {
		return inst, err
	}
	inst.words[index] = uint64(value)
	return inst, nil
}

// GetDouble reads the double at index from its exact 64-bit pattern.
func (Accessor) GetDouble(inst *Store, index int) (float64, error) {
	if err := validate(inst); err != nil {
		return 0, err
	}
	if err := primitiveSpace(inst).Check(index); err != nil {
		return 0, err
	}
	return math.Float64frombits(inst.words[index]), nil
}

// SetDouble writes the double at index as its exact 64-bit pattern.
func (Accessor) SetDouble(inst *Store, index int, value float64) (*Store, error) {
	if err := validate(inst); err != nil {
		return inst, err
	}
	if err := primitiveSpace(inst).Check(index); err != nil {
		return inst, err
	}
	inst.words[index] = math.Float64bits(value)
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
