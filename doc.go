// Package vec implements a generic resizable array built in two layers:
// RawStorage, which owns a block of element slots and knows nothing about
// which of them hold live values, and Vector, which owns one RawStorage plus
// a live-element count and decides when slots become live, when they are
// destroyed, and when the whole block is replaced by a larger one.
//
// # Overview
//
// Splitting memory acquisition from element lifetime is what makes the
// container safe to grow: every reallocating operation acquires the new
// block and constructs the risky new element first, and only then relocates
// the existing elements and commits. A failure at any fallible step —
// an allocator refusal, a user constructor or copier returning an error —
// leaves the original vector exactly as it was before the call.
//
// # Basic Usage
//
//	v := vec.New[int]()
//	defer v.Destroy() // optional; returns the allocator reservation
//
//	for i := 0; i < 5; i++ {
//		if err := v.Append(i * i); err != nil {
//			// allocator refused growth; v is unchanged
//		}
//	}
//
//	v.Insert(2, 99)        // [0 1 99 4 9 16]
//	next := v.Erase(0)     // [1 99 4 9 16], next == 0
//	fmt.Println(v.At(next))
//
// Elements that need deep copies install a copier:
//
//	v := vec.New(vec.WithCopier(func(b Buffer) (Buffer, error) {
//		return b.Clone()
//	}))
//
// # Failure Model
//
// Two failure classes are kept strictly apart. Contract violations — an
// index at or past Len, RemoveLast or Erase on an empty vector, an insert
// position past Len — panic with a vec-prefixed message; they are caller
// bugs, not recoverable conditions. Resource exhaustion and element
// construction failures are returned as errors: the allocator may refuse a
// reservation (ErrOutOfMemory for the built-in quota style), and
// constructor or copier funcs may fail, in which case any elements built
// during the failing call are destroyed in place and the error is returned
// with the vector in its pre-call state.
//
// # Allocation
//
// All storage is admitted by DefaultAllocator, a package-global strategy.
// The default GoAllocator admits everything and lets the garbage collector
// own the memory; a quota implementation can refuse reservations to cap the
// bytes a vector may hold. Each block remembers the allocator that admitted
// it, so swapping DefaultAllocator never unbalances accounting.
//
// # Invalidation
//
// Pointers from Ref and EmplaceBack and views from Slice borrow the backing
// storage. Any operation that may reallocate (Append, EmplaceBack, Insert,
// Emplace, Reserve, Resize upward) invalidates all of them; Erase and
// in-capacity inserts invalidate those at or after the mutation point.
//
// # Thread Safety
//
// Vector is a single-owner value type. Nothing locks internally; concurrent
// mutation requires external synchronization.
package vec
