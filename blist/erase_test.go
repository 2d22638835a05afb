package blist

import (
	"errors"
	"math/rand"
	"testing"
)

// Scenario 4: construct from [0..99]; erase at positions [5,5,5,5,5]
// sequentially; expect the sequence with elements originally at indices
// 5..9 removed; validate holds after each erase.
func TestEraseSamePositionRepeatedly(t *testing.T) {
	elems := make([]int, 100)
	for i := range elems {
		elems[i] = i
	}
	l, err := NewFrom[int](Config{NodeCapacity: 8}, elems...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		if _, err := l.Erase(5); err != nil {
			t.Fatalf("erase %d: unexpected error: %v", i, err)
		}
		if err := l.Validate(); err != nil {
			t.Fatalf("erase %d: validate failed: %v", i, err)
		}
	}
	want := make([]int, 0, 95)
	for i := 0; i < 100; i++ {
		if i >= 5 && i < 10 {
			continue
		}
		want = append(want, i)
	}
	got := collect(l)
	if !equalSeq(got, want) {
		t.Fatalf("unexpected contents after repeated erase, got len %d want len %d", len(got), len(want))
	}
}

func TestEraseOutOfRange(t *testing.T) {
	l, _ := NewFrom[int](Config{NodeCapacity: 8}, 1, 2, 3)
	if _, err := l.Erase(3); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

// Scenario: clear is idempotent; erase of every element in some order
// yields an empty container with depth 1.
func TestEraseEveryElementYieldsEmptyDepthOne(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	elems := make([]int, 60)
	for i := range elems {
		elems[i] = i
	}
	l, _ := NewFrom[int](Config{NodeCapacity: 8}, elems...)
	for l.Size() > 0 {
		i := rng.Intn(l.Size())
		if _, err := l.Erase(i); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := l.Validate(); err != nil {
			t.Fatalf("validate failed with %d elements remaining: %v", l.Size(), err)
		}
	}
	if !l.Empty() || l.Depth() != 1 {
		t.Fatalf("expected empty, depth 1, got size=%d depth=%d", l.Size(), l.Depth())
	}

	l.Clear()
	if !l.Empty() || l.Depth() != 1 {
		t.Fatalf("Clear on already-empty list: size=%d depth=%d", l.Size(), l.Depth())
	}
}

func TestRandomizedEraseMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	n := 150
	elems := make([]int, n)
	ref := make([]int, n)
	for i := range elems {
		elems[i] = i
		ref[i] = i
	}
	l, _ := NewFrom[int](Config{NodeCapacity: 8}, elems...)
	for len(ref) > 0 {
		i := rng.Intn(len(ref))
		got, err := l.Erase(i)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != ref[i] {
			t.Fatalf("erase returned %d, want %d", got, ref[i])
		}
		ref = append(ref[:i], ref[i+1:]...)
		if err := l.Validate(); err != nil {
			t.Fatalf("validate failed with %d remaining: %v", len(ref), err)
		}
		if !equalSeq(collect(l), ref) {
			t.Fatalf("contents diverged from reference with %d remaining", len(ref))
		}
	}
	if !l.Empty() || l.Depth() != 1 {
		t.Fatalf("expected empty depth-1 list, got size=%d depth=%d", l.Size(), l.Depth())
	}
}
