package vec

import (
	"errors"
	"unsafe"
)

// ErrOutOfMemory is returned when the allocator refuses a capacity
// reservation. Operations that hit it leave the vector exactly as it was
// before the call.
var ErrOutOfMemory = errors.New("vec: allocation refused by allocator")

// Allocator admits and releases raw-capacity reservations, in bytes.
// An implementation may refuse a reservation to signal exhaustion; the
// refusal propagates out of whichever vector operation triggered it.
type Allocator interface {
	// Reserve asks permission for n more bytes of backing storage.
	Reserve(n int) error
	// Release returns n previously reserved bytes.
	Release(n int)
}

// GoAllocator delegates to the Go runtime: every reservation is admitted
// and Release is a no-op, since the garbage collector owns the memory.
type GoAllocator struct{}

// Reserve always admits the request.
func (GoAllocator) Reserve(int) error { return nil }

// Release is a no-op.
func (GoAllocator) Release(int) {}

// DefaultAllocator is the global allocation strategy consulted whenever new
// storage is acquired. Storage remembers the allocator that admitted it, so
// swapping DefaultAllocator never unbalances earlier reservations.
var DefaultAllocator Allocator = GoAllocator{}

// sizeOf reports the in-memory size of one element of type T.
func sizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
