package unbox_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/unbox"
	"github.com/hupe1980/unbox/doubleword"
	"github.com/hupe1980/unbox/intword"
	"github.com/hupe1980/unbox/longword"
)

// Example_object demonstrates the object-style wrapper, which tracks the
// storage handle internally.
func Example_object() {
	obj, err := unbox.NewObject(intword.New())
	if err != nil {
		log.Fatal(err)
	}

	if err := obj.SetInt(0, 42); err != nil {
		log.Fatal(err)
	}
	if err := obj.SetLong(2, 1<<40); err != nil {
		log.Fatal(err)
	}
	if err := obj.SetObject(0, "hello"); err != nil {
		log.Fatal(err)
	}

	n, _ := obj.GetInt(0)
	l, _ := obj.GetLong(2)
	s, _ := obj.GetObject(0)
	fmt.Println(n, l, s)
	// Output: 42 1099511627776 hello
}

// Example_directAccessor demonstrates the raw accessor API, where the caller
// adopts the handle returned by every mutating call.
func Example_directAccessor() {
	acc := longword.New()
	inst := acc.NewEmpty()

	inst, err := acc.SetLong(inst, 1, 0x1122334455667788)
	if err != nil {
		log.Fatal(err)
	}

	v, err := acc.GetLong(inst, 1)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%#x\n", v)
	// Output: 0x1122334455667788
}

// Example_growth demonstrates capacity rounding and handle adoption on
// resize.
func Example_growth() {
	acc := intword.New()
	inst := acc.NewEmpty()

	before, _ := acc.SlotsAvailable(inst, unbox.CategoryPrimitive)

	inst, err := acc.Resize(inst, unbox.CategoryPrimitive, 42)
	if err != nil {
		log.Fatal(err)
	}
	after, _ := acc.SlotsAvailable(inst, unbox.CategoryPrimitive)

	fmt.Printf("%d -> %d slots\n", before, after)
	// Output: 8 -> 64 slots
}

// Example_booleanBitset demonstrates the fixed boolean ID space of the
// 64-bit variant.
func Example_booleanBitset() {
	acc := longword.New()
	inst := acc.NewEmpty()

	inst, err := acc.SetBool(inst, 63, true)
	if err != nil {
		log.Fatal(err)
	}

	v, _ := acc.GetBool(inst, 63)
	slots, _ := acc.SlotsAvailable(inst, unbox.CategoryBool)
	fmt.Println(v, slots)
	// Output: true 64
}

// Example_capabilities demonstrates how callers discover a variant's layout
// without knowing its concrete type.
func Example_capabilities() {
	report := func(name string, twoSlot bool, boolSize int) {
		fmt.Printf("%s: long two-slot=%v bool capacity=%d\n", name, twoSlot, boolSize)
	}

	iw := intword.New()
	report("intword", iw.LongUsesTwoPrimitiveSlots(), iw.BoolSpaceFixedSize())

	lw := longword.New()
	report("longword", lw.LongUsesTwoPrimitiveSlots(), lw.BoolSpaceFixedSize())

	dw := doubleword.New()
	report("doubleword", dw.LongUsesTwoPrimitiveSlots(), dw.BoolSpaceFixedSize())

	dw2 := doubleword.New(doubleword.WithTwoSlotLong())
	report("doubleword+twoslot", dw2.LongUsesTwoPrimitiveSlots(), dw2.BoolSpaceFixedSize())

	// Output:
	// intword: long two-slot=true bool capacity=-1
	// longword: long two-slot=false bool capacity=64
	// doubleword: long two-slot=false bool capacity=52
	// doubleword+twoslot: long two-slot=true bool capacity=52
}
