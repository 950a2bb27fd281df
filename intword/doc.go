// Package intword implements generic object storage over 32-bit words.
//
// Layout:
//   - One uint32 word per primitive slot, valid indices [0, len).
//   - byte/char/short/int pass through numeric widening and truncation.
//   - float round-trips through its exact 32-bit pattern, never a numeric
//     cast.
//   - long and double span two adjacent slots: low 32 bits at index, high 32
//     bits at index+1.
//   - Booleans spend one whole word each (non-zero reads true) and share the
//     primitive ID space; there is no independent boolean space.
//   - Object references live in a parallel []any, valid indices [0, len).
//
// This is the portable, no-tricks variant: wide values cost two slots, and
// boolean density is poor, but every codec is a plain shift or mask.
package intword
