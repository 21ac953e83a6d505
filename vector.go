package vec

// Option configures a Vector before first use.
type Option[T any] func(*Vector[T])

// WithCopier installs a deep-copy function used whenever elements are
// duplicated (Clone, CopyFrom). Without a copier, elements are duplicated by
// plain assignment, which cannot fail.
func WithCopier[T any](copier func(T) (T, error)) Option[T] {
	return func(v *Vector[T]) { v.copier = copier }
}

// Vector is a generic resizable array built on RawStorage. The first size
// slots of the storage hold live values in insertion order; the remaining
// slots are dead (zero-valued). Not goroutine-safe: it is a single-owner
// value type and concurrent mutation needs external synchronization.
type Vector[T any] struct {
	data   RawStorage[T]
	size   int
	copier func(T) (T, error)
}

// New returns an empty vector. No storage is acquired.
func New[T any](opts ...Option[T]) *Vector[T] {
	v := new(Vector[T])
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewLen returns a vector of n zero-valued elements with capacity exactly n.
// A refused allocation propagates and nothing is retained.
func NewLen[T any](n int, opts ...Option[T]) (*Vector[T], error) {
	v := New[T](opts...)
	if err := v.data.init(n); err != nil {
		return nil, err
	}
	v.size = n
	return v, nil
}

// NewLenFunc returns a vector of n elements produced by ctor, called with
// indices 0 through n-1 in order. If ctor fails partway, every element it
// already produced is destroyed and the storage released before the error
// is returned; no partial vector survives.
func NewLenFunc[T any](n int, ctor func(i int) (T, error), opts ...Option[T]) (*Vector[T], error) {
	v := New[T](opts...)
	if err := v.data.init(n); err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		x, err := ctor(i)
		if err != nil {
			clear(v.data.Slots(0, i))
			v.data.Dealloc()
			return nil, err
		}
		*v.data.Ptr(i) = x
	}
	v.size = n
	return v, nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of slots in the backing storage.
func (v *Vector[T]) Cap() int {
	return v.data.Cap()
}

// At returns the element at index i. Requires i < Len().
func (v *Vector[T]) At(i int) T {
	v.check(i)
	return *v.data.Ptr(i)
}

// Ref returns a pointer to the element at index i. The pointer is
// invalidated by any operation that reallocates or shifts storage.
// Requires i < Len().
func (v *Vector[T]) Ref(i int) *T {
	v.check(i)
	return v.data.Ptr(i)
}

// Set overwrites the element at index i. Requires i < Len().
func (v *Vector[T]) Set(i int, x T) {
	v.check(i)
	*v.data.Ptr(i) = x
}

// Each calls fn for each element in order until fn returns false.
func (v *Vector[T]) Each(fn func(i int, x T) bool) {
	for i := 0; i < v.size; i++ {
		if !fn(i, *v.data.Ptr(i)) {
			return
		}
	}
}

// EachRef calls fn with a pointer to each element in order until fn returns
// false. fn must not retain the pointers across mutating calls.
func (v *Vector[T]) EachRef(fn func(i int, p *T) bool) {
	for i := 0; i < v.size; i++ {
		if !fn(i, v.data.Ptr(i)) {
			return
		}
	}
}

// Slice returns the live prefix of the backing storage as a slice. It is a
// borrowed view: any reallocating or shifting operation invalidates it.
func (v *Vector[T]) Slice() []T {
	return v.data.Slots(0, v.size)
}

// Clone returns a copy with capacity exactly Len() and every element
// duplicated in order. If the copier fails partway, elements already
// duplicated are destroyed and the new storage released; the receiver is
// never touched.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	out := &Vector[T]{copier: v.copier}
	if err := out.data.init(v.size); err != nil {
		return nil, err
	}
	if err := copyInto(&out.data, 0, v.data.Slots(0, v.size), v.copier); err != nil {
		out.data.Dealloc()
		return nil, err
	}
	out.size = v.size
	return out, nil
}

// MoveFrom destroys the receiver's contents, releases its storage, and
// steals rhs's storage and size in O(1). rhs is left empty with no storage.
// Self-move is a no-op.
func (v *Vector[T]) MoveFrom(rhs *Vector[T]) {
	if v == rhs {
		return
	}
	clear(v.data.Slots(0, v.size))
	v.data.MoveFrom(&rhs.data)
	v.size = rhs.size
	v.copier = rhs.copier
	rhs.size = 0
}

// CopyFrom replaces the receiver's contents with copies of rhs's elements.
//
// When rhs does not fit in the current capacity, a full copy is built aside
// and swapped in, so a failure leaves the receiver untouched. Otherwise the
// existing storage is reused: the overlapping prefix is overwritten in
// place, a surplus tail is destroyed, and a missing tail is constructed into
// dead slots. Capacity is unchanged on the reuse path.
//
// Elements are duplicated with rhs's copier; the receiver's own
// configuration is not altered.
func (v *Vector[T]) CopyFrom(rhs *Vector[T]) error {
	if v == rhs {
		return nil
	}
	if rhs.size > v.data.Cap() {
		tmp, err := rhs.Clone()
		if err != nil {
			return err
		}
		tmp.copier = v.copier
		v.Swap(tmp)
		tmp.Destroy()
		return nil
	}
	n := min(v.size, rhs.size)
	for i := 0; i < n; i++ {
		x, err := dup(*rhs.data.Ptr(i), rhs.copier)
		if err != nil {
			return err
		}
		*v.data.Ptr(i) = x
	}
	switch {
	case rhs.size < v.size:
		clear(v.data.Slots(rhs.size, v.size))
	case rhs.size > v.size:
		if err := copyInto(&v.data, v.size, rhs.data.Slots(v.size, rhs.size), rhs.copier); err != nil {
			return err
		}
	}
	v.size = rhs.size
	return nil
}

// Swap exchanges the contents of two vectors in O(1). No element is
// touched.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
	v.copier, other.copier = other.copier, v.copier
}

// Destroy destroys all live elements and releases the storage, returning
// the allocator reservation. The vector is left empty and remains usable.
// Calling it is optional: an unreferenced vector is reclaimed by the
// garbage collector, but only Destroy returns the reservation promptly.
func (v *Vector[T]) Destroy() {
	clear(v.data.Slots(0, v.size))
	v.size = 0
	v.data.Dealloc()
}

func (v *Vector[T]) check(i int) {
	if i < 0 || i >= v.size {
		panic("vec: index out of range")
	}
}

// dup duplicates one element with the given copier, or by assignment when
// no copier is set.
func dup[T any](x T, copier func(T) (T, error)) (T, error) {
	if copier != nil {
		return copier(x)
	}
	return x, nil
}

// copyInto copy-constructs src's elements into dst slots starting at off.
// On failure it destroys the elements it constructed and returns the
// copier's error; src and dst's other slots are untouched.
func copyInto[T any](dst *RawStorage[T], off int, src []T, copier func(T) (T, error)) error {
	for i := range src {
		x, err := dup(src[i], copier)
		if err != nil {
			clear(dst.Slots(off, off+i))
			return err
		}
		*dst.Ptr(off + i) = x
	}
	return nil
}
