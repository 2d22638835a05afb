package blist

import "testing"

// trackedElem mirrors svec's lifecycle-accounting approximation of
// spec.md's destructor-correctness property at the BList level: release is
// called explicitly wherever Erase or Clear logically removes an element,
// since structural moves during split/merge/borrow only relocate a live
// value and never destroy one.
type trackedElem struct {
	id    int
	count *int
}

func newTrackedElem(id int, count *int) trackedElem {
	*count++
	return trackedElem{id: id, count: count}
}

func (t trackedElem) release() {
	*t.count--
}

func TestLifecycleAccountingBalancesAcrossSplitsAndMerges(t *testing.T) {
	var alive int
	l, err := New[trackedElem](Config{NodeCapacity: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 40; i++ {
		l.PushBack(newTrackedElem(i, &alive))
	}
	if alive != 40 {
		t.Fatalf("expected 40 live values after pushes, got %d", alive)
	}
	if err := l.Validate(); err != nil {
		t.Fatalf("validate failed: %v", err)
	}

	for l.Size() > 20 {
		v, err := l.Erase(0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		v.release()
	}
	if alive != 20 {
		t.Fatalf("expected 20 live values remaining, got %d", alive)
	}

	for v := range l.Seq() {
		v.release()
	}
	l.Clear()
	if alive != 0 {
		t.Fatalf("expected balanced lifecycle accounting after Clear, got %d outstanding", alive)
	}
}
