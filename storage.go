package vec

// noCopy flags a type as move-only for go vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// RawStorage owns a block of slots sized for exactly Cap elements of T.
// It tracks nothing about which slots hold live values: it never writes,
// clears, or interprets a slot itself. The owner alone decides which slots
// are live and must destroy them before the block is deallocated or
// replaced.
//
// RawStorage is move-only. Transfer ownership with MoveFrom or Swap; a
// shallow copy would give two owners the same block.
type RawStorage[T any] struct {
	noCopy noCopy

	buf   []T // len(buf) == capacity; nil when capacity is 0
	alloc Allocator
}

// NewRawStorage reserves capacity*sizeof(T) bytes with DefaultAllocator and
// acquires a block of that many slots. Zero capacity acquires nothing and
// reserves nothing. A refused reservation is returned as-is.
func NewRawStorage[T any](capacity int) (*RawStorage[T], error) {
	r := new(RawStorage[T])
	if err := r.init(capacity); err != nil {
		return nil, err
	}
	return r, nil
}

// init acquires a block into an empty storage.
func (r *RawStorage[T]) init(capacity int) error {
	if r.buf != nil {
		panic("vec: storage already holds a block")
	}
	if capacity < 0 {
		panic("vec: negative capacity")
	}
	if capacity == 0 {
		return nil
	}
	a := DefaultAllocator
	if err := a.Reserve(capacity * sizeOf[T]()); err != nil {
		return err
	}
	r.buf = make([]T, capacity)
	r.alloc = a
	return nil
}

// Cap returns the number of slots in the block.
func (r *RawStorage[T]) Cap() int {
	return len(r.buf)
}

// Ptr returns the address of slot i. The caller is responsible for only
// reading slots it knows are live. Requires 0 <= i < Cap().
func (r *RawStorage[T]) Ptr(i int) *T {
	if i < 0 || i >= len(r.buf) {
		panic("vec: slot index out of range")
	}
	return &r.buf[i]
}

// Slots returns a window onto slots [i, j) for bulk moves and clears by the
// owner. Requires 0 <= i <= j <= Cap().
func (r *RawStorage[T]) Slots(i, j int) []T {
	if i < 0 || j < i || j > len(r.buf) {
		panic("vec: slot range out of range")
	}
	return r.buf[i:j]
}

// Swap exchanges the blocks and capacities of two storages in O(1).
// No slot is touched.
func (r *RawStorage[T]) Swap(other *RawStorage[T]) {
	r.buf, other.buf = other.buf, r.buf
	r.alloc, other.alloc = other.alloc, r.alloc
}

// MoveFrom releases r's block and takes ownership of other's, leaving other
// empty. Any live elements in either block must already be destroyed.
// Self-move is a no-op.
func (r *RawStorage[T]) MoveFrom(other *RawStorage[T]) {
	if r == other {
		return
	}
	r.Dealloc()
	r.buf, r.alloc = other.buf, other.alloc
	other.buf, other.alloc = nil, nil
}

// Dealloc returns the reservation and drops the block without touching slot
// contents. No-op on empty storage; afterwards the storage is empty and may
// acquire a new block.
func (r *RawStorage[T]) Dealloc() {
	if r.buf == nil {
		return
	}
	r.alloc.Release(len(r.buf) * sizeOf[T]())
	r.buf = nil
	r.alloc = nil
}
