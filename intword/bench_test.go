package intword_test

import (
	"testing"

	"github.com/hupe1980/unbox"
	"github.com/hupe1980/unbox/intword"
)

const benchSlots = 1024

// Benchmark single-slot writes
func BenchmarkSetInt(b *testing.B) {
	acc := intword.New()
	inst, err := acc.New(benchSlots, 0)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; b.Loop(); i++ {
		inst, err = acc.SetInt(inst, i%benchSlots, int32(i))
		if err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark single-slot reads
func BenchmarkGetInt(b *testing.B) {
	acc := intword.New()
	inst, err := acc.New(benchSlots, 0)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < benchSlots; i++ {
		inst, err = acc.SetInt(inst, i, int32(i))
		if err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	b.ReportAllocs()

	var sink int32
	for i := 0; b.Loop(); i++ {
		v, err := acc.GetInt(inst, i%benchSlots)
		if err != nil {
			b.Fatal(err)
		}
		sink += v
	}
	_ = sink
}

// Benchmark two-slot writes
func BenchmarkSetLong(b *testing.B) {
	acc := intword.New()
	inst, err := acc.New(benchSlots, 0)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; b.Loop(); i++ {
		inst, err = acc.SetLong(inst, (i*2)%benchSlots, int64(i))
		if err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark two-slot reads
func BenchmarkGetLong(b *testing.B) {
	acc := intword.New()
	inst, err := acc.New(benchSlots, 0)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < benchSlots; i += 2 {
		inst, err = acc.SetLong(inst, i, int64(i))
		if err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	b.ReportAllocs()

	var sink int64
	for i := 0; b.Loop(); i++ {
		v, err := acc.GetLong(inst, (i*2)%benchSlots)
		if err != nil {
			b.Fatal(err)
		}
		sink += v
	}
	_ = sink
}

// Benchmark reference-slot writes
func BenchmarkSetObject(b *testing.B) {
	acc := intword.New()
	inst, err := acc.New(0, benchSlots)
	if err != nil {
		b.Fatal(err)
	}
	value := "payload"

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; b.Loop(); i++ {
		inst, err = acc.SetObject(inst, i%benchSlots, value)
		if err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark growth from the minimum size
func BenchmarkResizeFromEmpty(b *testing.B) {
	acc := intword.New()

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		inst := acc.NewEmpty()
		inst, err := acc.Resize(inst, unbox.CategoryPrimitive, benchSlots)
		if err != nil {
			b.Fatal(err)
		}
		_ = inst
	}
}
