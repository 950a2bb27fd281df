// Package longword implements generic object storage over 64-bit integer
// words.
//
// Layout:
//   - One uint64 word per primitive slot, valid indices [1, len); word 0 is
//     reserved.
//   - Booleans cost no primitive slot: bit i of the reserved word 0 is
//     boolean index i, a fixed, independent space of exactly 64 booleans.
//   - byte/char/short/int pass through numeric widening (sign-extended,
//     char zero-extended) and truncation.
//   - float stores its exact 32-bit pattern widened into the word; double
//     round-trips through its exact 64-bit pattern. Never numeric casts.
//   - long is stored directly, one slot per value.
//   - Object references live in a parallel []any, valid indices [0, len).
//
// This variant trades one reserved word for dense booleans and single-slot
// wide values.
package longword
