package blist

import (
	"errors"
	"testing"
)

// Scenario: default-construct BList; assert size=0, depth=1, empty=true;
// validate holds.
func TestNewIsEmpty(t *testing.T) {
	l, err := New[int](Config{NodeCapacity: 8})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !l.Empty() || l.Size() != 0 || l.Depth() != 1 {
		t.Fatalf("unexpected fresh BList: size=%d depth=%d empty=%v", l.Size(), l.Depth(), l.Empty())
	}
	if err := l.Validate(); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	if _, err := New[int](Config{NodeCapacity: 7}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for odd capacity, got %v", err)
	}
	if _, err := New[int](Config{NodeCapacity: 2}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig below minimum, got %v", err)
	}
}

func TestNewDefaultUsesDefaultCapacity(t *testing.T) {
	l := NewDefault[int]()
	if l.Config().NodeCapacity != DefaultNodeCapacity {
		t.Fatalf("unexpected default capacity: %d", l.Config().NodeCapacity)
	}
}

func TestFrontBack(t *testing.T) {
	l, _ := NewFrom[int](Config{NodeCapacity: 8}, 1, 2, 3)
	if l.Front() != 1 || l.Back() != 3 {
		t.Fatalf("unexpected Front/Back: %d/%d", l.Front(), l.Back())
	}
}

func TestAtOutOfRange(t *testing.T) {
	l, _ := NewFrom[int](Config{NodeCapacity: 8}, 1, 2, 3)
	if _, err := l.At(3); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	l, _ := NewFrom[int](Config{NodeCapacity: 8}, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	clone := l.Clone()
	clone.Set(0, 99)
	if l.Get(0) == 99 {
		t.Fatalf("Clone aliased source storage")
	}
	if err := clone.Validate(); err != nil {
		t.Fatalf("clone validate failed: %v", err)
	}
	if err := l.Validate(); err != nil {
		t.Fatalf("source validate failed: %v", err)
	}
}

// Scenario 8: move a nonempty BList; the moved-from BList validates as
// empty (size 0, depth 1) and the moved-to BList validates; a pre-saved
// iterator into the moved-to BList still dereferences to the original
// element.
func TestMovePreservesIteratorsAndEmptiesSource(t *testing.T) {
	l, _ := NewFrom[int](Config{NodeCapacity: 8}, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	it := l.Begin().Next().Next() // points at element 3
	moved := l.Move()

	if !l.Empty() || l.Size() != 0 || l.Depth() != 1 {
		t.Fatalf("moved-from list not reset: size=%d depth=%d empty=%v", l.Size(), l.Depth(), l.Empty())
	}
	if err := l.Validate(); err != nil {
		t.Fatalf("moved-from validate failed: %v", err)
	}
	if err := moved.Validate(); err != nil {
		t.Fatalf("moved-to validate failed: %v", err)
	}
	if it.Value() != 3 {
		t.Fatalf("iterator into moved-to list changed value: got %d, want 3", it.Value())
	}
}

func TestClear(t *testing.T) {
	l, _ := NewFrom[int](Config{NodeCapacity: 8}, 1, 2, 3, 4, 5)
	l.Clear()
	if !l.Empty() || l.Size() != 0 || l.Depth() != 1 {
		t.Fatalf("unexpected state after Clear: size=%d depth=%d", l.Size(), l.Depth())
	}
	if err := l.Validate(); err != nil {
		t.Fatalf("validate failed after Clear: %v", err)
	}
}

func collect[T any](l *BList[T]) []T {
	var out []T
	for v := range l.Seq() {
		out = append(out, v)
	}
	return out
}

func collectReverse[T any](l *BList[T]) []T {
	var out []T
	for v := range l.SeqReverse() {
		out = append(out, v)
	}
	return out
}

func equalSeq(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
