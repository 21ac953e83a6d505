package vec

import (
	"errors"
	"testing"
)

// countingAllocator tracks the reservation balance and can be told to
// refuse further reservations.
type countingAllocator struct {
	reserved int
	refuse   bool
}

func (c *countingAllocator) Reserve(n int) error {
	if c.refuse {
		return ErrOutOfMemory
	}
	c.reserved += n
	return nil
}

func (c *countingAllocator) Release(n int) { c.reserved -= n }

func swapAllocator(t *testing.T, a Allocator) {
	t.Helper()
	prev := DefaultAllocator
	DefaultAllocator = a
	t.Cleanup(func() { DefaultAllocator = prev })
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}

func TestNewRawStorage(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		wantCap  int
	}{
		{"zero capacity", 0, 0},
		{"single slot", 1, 1},
		{"several slots", 8, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRawStorage[int](tt.capacity)
			if err != nil {
				t.Fatalf("NewRawStorage(%d) error = %v", tt.capacity, err)
			}
			if r.Cap() != tt.wantCap {
				t.Errorf("Cap() = %d, want %d", r.Cap(), tt.wantCap)
			}
			if (r.buf == nil) != (tt.capacity == 0) {
				t.Errorf("buf nil = %v, want %v", r.buf == nil, tt.capacity == 0)
			}
		})
	}

	mustPanic(t, "NewRawStorage(-1)", func() { NewRawStorage[int](-1) })
}

func TestNewRawStorageRefused(t *testing.T) {
	alloc := &countingAllocator{refuse: true}
	swapAllocator(t, alloc)

	if _, err := NewRawStorage[int](4); !errors.Is(err, ErrOutOfMemory) {
		t.Fatalf("NewRawStorage error = %v, want ErrOutOfMemory", err)
	}
	if alloc.reserved != 0 {
		t.Errorf("reserved after refusal = %d, want 0", alloc.reserved)
	}
}

func TestRawStorageDealloc(t *testing.T) {
	alloc := &countingAllocator{}
	swapAllocator(t, alloc)

	r, err := NewRawStorage[int64](4)
	if err != nil {
		t.Fatalf("NewRawStorage error: %v", err)
	}
	want := 4 * sizeOf[int64]()
	if alloc.reserved != want {
		t.Errorf("reserved = %d, want %d", alloc.reserved, want)
	}

	r.Dealloc()
	if alloc.reserved != 0 {
		t.Errorf("reserved after Dealloc = %d, want 0", alloc.reserved)
	}
	if r.Cap() != 0 {
		t.Errorf("Cap after Dealloc = %d, want 0", r.Cap())
	}

	// Dealloc on empty storage is a no-op, and the storage is reusable.
	r.Dealloc()
	if err := r.init(2); err != nil {
		t.Fatalf("init after Dealloc error: %v", err)
	}
	if r.Cap() != 2 {
		t.Errorf("Cap after re-init = %d, want 2", r.Cap())
	}
}

func TestRawStorageSwap(t *testing.T) {
	a, err := NewRawStorage[int](3)
	if err != nil {
		t.Fatalf("NewRawStorage error: %v", err)
	}
	b, err := NewRawStorage[int](7)
	if err != nil {
		t.Fatalf("NewRawStorage error: %v", err)
	}
	*a.Ptr(0) = 11

	a.Swap(b)
	if a.Cap() != 7 || b.Cap() != 3 {
		t.Errorf("caps after Swap = %d, %d; want 7, 3", a.Cap(), b.Cap())
	}
	if *b.Ptr(0) != 11 {
		t.Errorf("slot contents did not travel with the block")
	}
}

func TestRawStorageMoveFrom(t *testing.T) {
	alloc := &countingAllocator{}
	swapAllocator(t, alloc)

	a, _ := NewRawStorage[int](2)
	b, _ := NewRawStorage[int](5)
	*b.Ptr(2) = 42

	a.MoveFrom(b)
	if a.Cap() != 5 {
		t.Errorf("dst Cap = %d, want 5", a.Cap())
	}
	if b.Cap() != 0 || b.buf != nil {
		t.Errorf("src not reset: cap=%d", b.Cap())
	}
	if *a.Ptr(2) != 42 {
		t.Errorf("slot contents did not travel with the block")
	}
	// The 2-slot block was released by the move.
	if want := 5 * sizeOf[int](); alloc.reserved != want {
		t.Errorf("reserved = %d, want %d", alloc.reserved, want)
	}

	// Self-move is a no-op.
	a.MoveFrom(a)
	if a.Cap() != 5 {
		t.Errorf("Cap after self-move = %d, want 5", a.Cap())
	}
}

func TestRawStorageSlotAccess(t *testing.T) {
	r, err := NewRawStorage[int](4)
	if err != nil {
		t.Fatalf("NewRawStorage error: %v", err)
	}

	s := r.Slots(1, 3)
	if len(s) != 2 {
		t.Errorf("Slots(1,3) len = %d, want 2", len(s))
	}
	s[0] = 9
	if *r.Ptr(1) != 9 {
		t.Errorf("Slots window does not alias the block")
	}

	mustPanic(t, "Ptr(-1)", func() { r.Ptr(-1) })
	mustPanic(t, "Ptr(cap)", func() { r.Ptr(4) })
	mustPanic(t, "Slots(3,1)", func() { r.Slots(3, 1) })
	mustPanic(t, "Slots(0,5)", func() { r.Slots(0, 5) })
	mustPanic(t, "double init", func() { r.init(1) })
}
