// Package doubleword implements generic object storage over 64-bit float
// words.
//
// Layout:
//   - One float64 word per primitive slot, valid indices [1, len); word 0 is
//     reserved.
//   - Booleans cost no primitive slot: they are bits of the integer VALUE
//     held in word 0. A float64 represents unsigned integers exactly only up
//     to 2^53, so the space is fixed at the low 52 bits, margin included.
//   - byte/char/short/int use exact numeric casts (lossless, they fit the 52
//     exact bits); float uses a numeric widening/narrowing cast.
//   - double is stored directly.
//   - long round-trips through the word's exact 64-bit pattern by default;
//     WithTwoSlotLong selects a fallback that splits it into two 32-bit
//     halves across index (low) and index+1 (high), each an exact small
//     float. The choice is fixed at construction.
//   - Object references live in a parallel []any, valid indices [0, len).
//
// This variant exists for targets where float64 is the only efficient word
// type; everything numeric stays in one slot and booleans remain dense.
package doubleword
