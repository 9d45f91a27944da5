package random

import "testing"

func TestDistinctIsDistinctAndInRange(t *testing.T) {
	src := NewSource(7)
	for round := 0; round < 200; round++ {
		vals := src.Distinct(5, 0, 5)
		if len(vals) != 5 {
			t.Fatalf("expected 5 values, got %d", len(vals))
		}
		seen := map[int]bool{}
		for _, v := range vals {
			if v < 0 || v >= 5 {
				t.Fatalf("value %d out of range", v)
			}
			if seen[v] {
				t.Fatalf("duplicate value %d in %v", v, vals)
			}
			seen[v] = true
		}
	}
}

func TestDistinctCoversEveryValue(t *testing.T) {
	src := NewSource(11)
	counts := make([]int, 5)
	for round := 0; round < 1000; round++ {
		counts[src.Distinct(1, 0, 5)[0]]++
	}
	for v, c := range counts {
		if c == 0 {
			t.Fatalf("value %d never drawn", v)
		}
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	a, b := NewSource(42), NewSource(42)
	for i := 0; i < 50; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestDistinctPanicsOnSmallRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewSource(1).Distinct(3, 0, 2)
}

func TestNewSeed(t *testing.T) {
	if _, err := NewSeed(); err != nil {
		t.Fatalf("new seed: %v", err)
	}
}
