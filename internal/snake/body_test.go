package snake

import "testing"

func TestBodyDequeOperations(t *testing.T) {
	b := NewBody(Position{X: 1, Y: 0})
	b.PushFront(Position{X: 2, Y: 0})
	b.PushBack(Position{X: 0, Y: 0})

	if b.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", b.Len())
	}
	if b.Front() != (Position{X: 2, Y: 0}) || b.Back() != (Position{X: 0, Y: 0}) {
		t.Errorf("Front/Back = %v/%v", b.Front(), b.Back())
	}
	if got := b.PopBack(); got != (Position{X: 0, Y: 0}) {
		t.Errorf("PopBack() = %v", got)
	}
	if got := b.PopFront(); got != (Position{X: 2, Y: 0}) {
		t.Errorf("PopFront() = %v", got)
	}
	if b.Len() != 1 || b.Front() != (Position{X: 1, Y: 0}) {
		t.Errorf("remaining body = %v", b.Slice())
	}
}

func TestBodyGrowsAcrossWrap(t *testing.T) {
	b := NewBody(Position{X: 0, Y: 0})

	// Slide the window so the head wraps around the buffer before growing.
	for i := 1; i <= 6; i++ {
		b.PushFront(Position{X: i, Y: 0})
		b.PopBack()
	}
	for i := 7; i <= 40; i++ {
		b.PushFront(Position{X: i, Y: 0})
	}

	if b.Len() != 35 {
		t.Fatalf("Len() = %d, expected 35", b.Len())
	}
	got := b.Slice()
	for i, p := range got {
		if want := 40 - i; p.X != want {
			t.Fatalf("segment %d = %v, expected x=%d", i, p, want)
		}
	}
	if !b.Contains(Position{X: 6, Y: 0}) || b.Contains(Position{X: 5, Y: 0}) {
		t.Error("Contains() disagrees with the segments")
	}
}

func TestBodyAtPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("At(len) should panic")
		}
	}()
	NewBody(Position{}).At(1)
}
