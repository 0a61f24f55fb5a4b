package deck

import (
	"errors"
	"math/rand"
	"slices"
	"testing"
)

func TestShuffle_IsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	src := []string{"a", "b", "c", "d", "e", "f", "g"}

	for trial := 0; trial < 50; trial++ {
		out := Shuffle(src, rng)
		if len(out) != len(src) {
			t.Fatalf("length mismatch: expected %d, got %d", len(src), len(out))
		}
		sortedOut := slices.Clone(out)
		slices.Sort(sortedOut)
		if !slices.Equal(sortedOut, src) {
			t.Fatalf("not a permutation of %v: %v", src, out)
		}
	}
}

func TestShuffle_DoesNotMutateInput(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	src := []int{1, 2, 3, 4, 5}
	orig := slices.Clone(src)

	_ = Shuffle(src, rng)

	if !slices.Equal(src, orig) {
		t.Errorf("input was mutated: expected %v, got %v", orig, src)
	}
}

func TestShuffle_EmptyAndSingle(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	if out := Shuffle([]int{}, rng); len(out) != 0 {
		t.Errorf("expected empty result, got %v", out)
	}
	if out := Shuffle([]int{42}, rng); len(out) != 1 || out[0] != 42 {
		t.Errorf("expected [42], got %v", out)
	}
}

// Every element should land in every position about equally often.
func TestShuffle_Uniform(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	src := []int{0, 1, 2, 3}
	const trials = 40000

	var counts [4][4]int
	for i := 0; i < trials; i++ {
		out := Shuffle(src, rng)
		for pos, v := range out {
			counts[pos][v]++
		}
	}

	expected := float64(trials) / float64(len(src))
	for pos := range counts {
		for v, c := range counts[pos] {
			dev := (float64(c) - expected) / expected
			if dev < -0.05 || dev > 0.05 {
				t.Errorf("position %d value %d: count %d deviates %.3f from %.0f", pos, v, c, dev, expected)
			}
		}
	}
}

func TestPickRandom_Distinct(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	pool := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}

	for k := 0; k <= len(pool); k++ {
		picks, err := PickRandom(pool, k, rng)
		if err != nil {
			t.Fatalf("k=%d: unexpected error: %v", k, err)
		}
		if len(picks) != k {
			t.Fatalf("k=%d: expected %d picks, got %d", k, k, len(picks))
		}
		seen := map[string]bool{}
		for _, p := range picks {
			if seen[p] {
				t.Errorf("k=%d: duplicate pick %q", k, p)
			}
			seen[p] = true
			if !slices.Contains(pool, p) {
				t.Errorf("k=%d: pick %q not in pool", k, p)
			}
		}
	}
}

func TestPickRandom_DoesNotMutateInput(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	pool := []int{1, 2, 3, 4}
	orig := slices.Clone(pool)

	if _, err := PickRandom(pool, 3, rng); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(pool, orig) {
		t.Errorf("input was mutated: expected %v, got %v", orig, pool)
	}
}

func TestPickRandom_TooMany(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	_, err := PickRandom([]int{1, 2}, 3, rng)
	if !errors.Is(err, ErrNotEnoughItems) {
		t.Errorf("expected ErrNotEnoughItems, got %v", err)
	}

	_, err = PickRandom([]int{1, 2}, -1, rng)
	if !errors.Is(err, ErrNotEnoughItems) {
		t.Errorf("expected ErrNotEnoughItems for negative k, got %v", err)
	}
}
