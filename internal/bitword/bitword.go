// Package bitword manipulates single-word bitsets.
//
// The fixed-boolean storage variants keep their whole boolean ID space inside
// one reserved 64-bit word (all 64 bits, or the low 52 bits whose values a
// float64 represents exactly). These helpers are the word-level operations
// behind that packing; growable multi-word bitsets are out of scope here.
package bitword

import "math/bits"

// Test reports whether bit i of w is set.
func Test(w uint64, i uint) bool {
	return w&(1<<i) != 0
}

// Set returns w with bit i set.
func Set(w uint64, i uint) uint64 {
	return w | 1<<i
}

// Clear returns w with bit i cleared.
func Clear(w uint64, i uint) uint64 {
	return w &^ (1 << i)
}

// Assign returns w with bit i set to v.
func Assign(w uint64, i uint, v bool) uint64 {
	if v {
		return Set(w, i)
	}
	return Clear(w, i)
}

// Count returns the number of set bits in w.
func Count(w uint64) int {
	return bits.OnesCount64(w)
}
