package rand

import "testing"

func TestRandomMatchesJavaStream(t *testing.T) {
	// Values produced by new java.util.Random(42).
	r := NewRandom(42)
	want := []int32{0, 3, 8, 4, 0}
	for i, w := range want {
		if got := r.Int31n(10); got != w {
			t.Fatalf("value %v: expected %v, got %v", i, w, got)
		}
	}

	r = NewRandom(0)
	for i, w := range []int32{2, 3, 0, 2, 2, 1, 2, 0} {
		if got := r.Int31n(4); got != w {
			t.Fatalf("power of two value %v: expected %v, got %v", i, w, got)
		}
	}

	r = NewRandom(42)
	if got := r.Float32(); got != 0.7275637 {
		t.Fatalf("expected first float of seed 42 to be 0.7275637, got %v", got)
	}
}

func TestRandomSetSeedResets(t *testing.T) {
	r := NewRandom(7)
	first := []float32{r.Float32(), r.Float32(), r.Float32()}
	r.SetSeed(7)
	for i, w := range first {
		if got := r.Float32(); got != w {
			t.Fatalf("value %v after reset: expected %v, got %v", i, w, got)
		}
	}
}

func TestRandomBounds(t *testing.T) {
	r := NewRandom(1)
	for i := 0; i < 10000; i++ {
		if v := r.Int31n(4); v < 0 || v >= 4 {
			t.Fatalf("Int31n(4) out of range: %v", v)
		}
		if v := r.Int31n(7); v < 0 || v >= 7 {
			t.Fatalf("Int31n(7) out of range: %v", v)
		}
		if f := r.Float32(); f < 0 || f >= 1 {
			t.Fatalf("Float32 out of range: %v", f)
		}
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %v", f)
		}
		if v := r.Range(-3, 3); v < -3 || v > 3 {
			t.Fatalf("Range(-3, 3) out of range: %v", v)
		}
	}
}
