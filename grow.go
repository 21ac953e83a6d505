package vec

// growthFactor is the capacity multiplier applied when full storage must
// grow. Capacity 0 grows to 1.
const growthFactor = 2

// grownCap returns the capacity for the next growth step.
func (v *Vector[T]) grownCap() int {
	if v.size == 0 {
		return 1
	}
	return v.size * growthFactor
}

// relocate moves live slots [i, j) of the current storage into dst starting
// at slot off, then destroys the moved-from range. Go moves are bitwise and
// cannot fail, so every step that can still fail must run before this one.
func (v *Vector[T]) relocate(dst *RawStorage[T], i, j, off int) {
	src := v.data.Slots(i, j)
	copy(dst.Slots(off, off+(j-i)), src)
	clear(src)
}

// adopt swaps dst in as the backing storage and releases the old block.
// All old live slots must already be destroyed.
func (v *Vector[T]) adopt(dst *RawStorage[T]) {
	v.data.Swap(dst)
	dst.Dealloc()
}

// Reserve ensures capacity of at least n. It is a no-op when n <= Cap();
// otherwise new storage of exactly n slots is acquired, all live elements
// relocated, and the old block released. A refused allocation leaves the
// vector untouched. Growing invalidates all element pointers and views.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.data.Cap() {
		return nil
	}
	var nd RawStorage[T]
	if err := nd.init(n); err != nil {
		return err
	}
	v.relocate(&nd, 0, v.size, 0)
	v.adopt(&nd)
	return nil
}

// Resize sets the length to n. Growing reserves capacity first and exposes
// zero-valued elements; shrinking destroys the surplus tail. Equal length
// is a no-op. A slot destroyed by shrinking is never resurrected: growing
// again exposes fresh zero values.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic("vec: negative length")
	}
	switch {
	case n == v.size:
		return nil
	case n > v.size:
		if err := v.Reserve(n); err != nil {
			return err
		}
	default:
		clear(v.data.Slots(n, v.size))
	}
	v.size = n
	return nil
}

// ResizeFunc grows the vector to length n with elements produced by ctor,
// called with the indices of the new slots in order. Shrinking and equal
// length behave as Resize. If ctor fails partway, the elements it produced
// in this call are destroyed and the prior length restored; elements that
// existed before the call are retained (as is any capacity already
// reserved).
func (v *Vector[T]) ResizeFunc(n int, ctor func(i int) (T, error)) error {
	if n <= v.size {
		return v.Resize(n)
	}
	if err := v.Reserve(n); err != nil {
		return err
	}
	for i := v.size; i < n; i++ {
		x, err := ctor(i)
		if err != nil {
			clear(v.data.Slots(v.size, i))
			return err
		}
		*v.data.Ptr(i) = x
	}
	v.size = n
	return nil
}

// Append places x after the last element, growing storage when full.
func (v *Vector[T]) Append(x T) error {
	_, err := v.EmplaceBack(func() (T, error) { return x, nil })
	return err
}

// EmplaceBack constructs a new last element with ctor and returns a pointer
// to it (valid until the next reallocating or shifting operation).
//
// With spare capacity the element is constructed straight into the tail
// slot. When storage is full, new storage of max(1, Len()*2) slots is
// acquired and the new element is constructed into it before any existing
// element is relocated; a failure at either step therefore leaves the
// original storage and elements completely intact. The length grows only
// after the element is live.
func (v *Vector[T]) EmplaceBack(ctor func() (T, error)) (*T, error) {
	if v.size < v.data.Cap() {
		x, err := ctor()
		if err != nil {
			return nil, err
		}
		p := v.data.Ptr(v.size)
		*p = x
		v.size++
		return p, nil
	}
	var nd RawStorage[T]
	if err := nd.init(v.grownCap()); err != nil {
		return nil, err
	}
	x, err := ctor()
	if err != nil {
		nd.Dealloc()
		return nil, err
	}
	*nd.Ptr(v.size) = x
	v.relocate(&nd, 0, v.size, 0)
	v.adopt(&nd)
	v.size++
	return v.data.Ptr(v.size - 1), nil
}

// RemoveLast destroys the last element. Requires Len() > 0.
func (v *Vector[T]) RemoveLast() {
	if v.size == 0 {
		panic("vec: RemoveLast on empty vector")
	}
	clear(v.data.Slots(v.size-1, v.size))
	v.size--
}
