// Package unbox provides boxing-free generic object storage for Go.
//
// Unbox lets heterogeneous primitive values and object references be
// addressed by small integer indices inside a flat storage block. Primitives
// are packed into a single word slice instead of individually allocated
// values, so dynamic, schema-free objects pay no per-field allocation and no
// boxing overhead.
//
// # Quick Start
//
// Direct accessor use (zero-overhead, caller adopts returned handles):
//
//	acc := intword.New()
//	inst := acc.NewEmpty()
//	inst, _ = acc.SetInt(inst, 3, 42)
//	inst, _ = acc.SetObject(inst, 0, "name")
//	v, _ := acc.GetInt(inst, 3)
//
// Wrapper use (handle adoption managed for you):
//
//	obj, _ := unbox.NewObject[*intword.Store](intword.New(),
//	    unbox.WithPrimitiveSlots(16))
//	_ = obj.SetDouble(2, 3.14)
//	d, _ := obj.GetDouble(2)
//
// # Accessors
//
// An accessor is a stateless policy+codec pair: it decides how primitives
// (bool, int8, uint16, int16, int32, float32, int64, float64) and object
// references pack into two parallel slices, how indices partition into ID
// spaces, and how capacity grows. Three variants ship, chosen once per
// storage instance and never mixed:
//
//   - intword: 32-bit words. Fast and portable; long/double span two slots;
//     booleans spend a whole word each and share the primitive ID space.
//   - longword: 64-bit integer words. One slot per value; a fixed,
//     independent space of 64 booleans packed into reserved word 0.
//   - doubleword: 64-bit float words. One slot per value; a fixed,
//     independent space of 52 booleans packed into the integer value of
//     reserved word 0 (the exactness margin of a float64).
//
// Mutating operations return the (possibly replacement) instance; the single
// live handle is always the most recently returned one. Instances are not
// safe for concurrent mutation; accessor values themselves are stateless and
// freely shared.
//
// # Key Features
//
//   - No boxing: primitives live in one contiguous word slice
//   - Three backing encodings with explicit capability queries
//   - Power-of-two, grow-only capacity with a 32-bit size contract
//   - Bit-exact float/double round trips via bit reinterpretation
//   - Uniform error taxonomy discriminated with errors.Is
//   - Arena for handle-addressed bulk management of wrapped objects
package unbox
