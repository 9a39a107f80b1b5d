package rng

import "testing"

func TestSeedNormalization(t *testing.T) {
	tests := []struct {
		seed int64
		want int64
	}{
		{42, 42},
		{0, 2147483646},
		{2147483647, 2147483646},
		{2147483648, 1},
		{-5, 2147483641},
	}

	for _, tt := range tests {
		if got := New(tt.seed).State(); got != tt.want {
			t.Errorf("New(%d).State() = %d, want %d", tt.seed, got, tt.want)
		}
	}
}

func TestNextGoldenSequence(t *testing.T) {
	r := New(42)
	want := []int64{705894, 1126542223, 1579310009}

	for i, w := range want {
		got := r.Next()
		if r.State() != w {
			t.Fatalf("draw %d: state = %d, want %d", i, r.State(), w)
		}
		if got != float64(w)/2147483647 {
			t.Errorf("draw %d: Next() = %v, want %v", i, got, float64(w)/2147483647)
		}
	}
}

func TestNextRange(t *testing.T) {
	r := New(12345)
	for i := 0; i < 10000; i++ {
		v := r.Next()
		if v <= 0 || v >= 1 {
			t.Fatalf("Next() = %v, outside (0,1)", v)
		}
	}
}

func TestNextIntHalfOpen(t *testing.T) {
	r := New(99)
	seen := make(map[int]bool)
	for i := 0; i < 5000; i++ {
		v := r.NextInt(3, 7)
		if v < 3 || v >= 7 {
			t.Fatalf("NextInt(3,7) = %d", v)
		}
		seen[v] = true
	}
	for v := 3; v < 7; v++ {
		if !seen[v] {
			t.Errorf("value %d never drawn", v)
		}
	}
}

func TestReproducibility(t *testing.T) {
	a, b := New(777), New(777)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("sequences diverged at draw %d", i)
		}
	}
}

func TestSelect(t *testing.T) {
	r := New(1)

	if _, ok := Select(r, []string{}); ok {
		t.Error("Select on empty slice should report !ok")
	}

	items := []string{"a", "b", "c"}
	for i := 0; i < 50; i++ {
		v, ok := Select(r, items)
		if !ok {
			t.Fatal("Select on non-empty slice reported !ok")
		}
		if v != "a" && v != "b" && v != "c" {
			t.Fatalf("unexpected selection %q", v)
		}
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	Shuffle(New(5), items)

	seen := make(map[int]int)
	for _, v := range items {
		seen[v]++
	}
	for v := 1; v <= 8; v++ {
		if seen[v] != 1 {
			t.Errorf("value %d appears %d times after shuffle", v, seen[v])
		}
	}

	again := []int{1, 2, 3, 4, 5, 6, 7, 8}
	Shuffle(New(5), again)
	for i := range items {
		if items[i] != again[i] {
			t.Fatalf("shuffle with same seed differs at %d", i)
		}
	}
}
