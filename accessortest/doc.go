// Package accessortest verifies accessor implementations against the
// uniform storage contract.
//
// Run executes the full property grid (capability coherence, zero defaults,
// per-type round trips, growth, error taxonomy, statelessness) against any
// unbox.Accessor. The shipped variants run it from their own test files;
// external implementations can do the same:
//
//	func TestContract(t *testing.T) {
//	    accessortest.Run(t, myAccessor{}, accessortest.Expectations{...})
//	}
//
// The suite assumes the accessor's instance type is a pointer (its zero
// value stands in for the invalid handle), which holds for every shipped
// variant.
package accessortest
