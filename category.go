package unbox

import "strconv"

// Category identifies one of the value categories (ID spaces) of a storage
// instance. Each category has its own start index, bounds, and growth rules,
// fixed by the accessor variant.
type Category uint8

const (
	// CategoryPrimitive addresses the primitive word slots.
	CategoryPrimitive Category = iota
	// CategoryBool addresses the boolean slots. Depending on the variant,
	// booleans either share the primitive ID space or occupy a fixed,
	// independent one.
	CategoryBool
	// CategoryObject addresses the object reference slots.
	CategoryObject
)

func (c Category) String() string {
	switch c {
	case CategoryPrimitive:
		return "primitive"
	case CategoryBool:
		return "bool"
	case CategoryObject:
		return "object"
	default:
		return "Category(" + strconv.Itoa(int(c)) + ")"
	}
}
