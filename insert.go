package vec

// Emplace constructs a new element at index i, shifting later elements one
// slot right, and returns the index of the new element. Requires
// 0 <= i <= Len(); i == Len() appends.
//
// With spare capacity the value is constructed before any shifting begins,
// so a constructor failure leaves the vector untouched. When storage is
// full, the new element is constructed into fresh doubled storage before
// the prefix [0, i) and suffix [i, Len()) are relocated around it; failures
// before adoption leave the original intact.
func (v *Vector[T]) Emplace(i int, ctor func() (T, error)) (int, error) {
	if i < 0 || i > v.size {
		panic("vec: insert position out of range")
	}
	if v.size == v.data.Cap() {
		return i, v.emplaceGrow(i, ctor)
	}
	x, err := ctor()
	if err != nil {
		return i, err
	}
	// One overlapping move shifts [i, size) right; slot i then holds a
	// moved-from duplicate and is overwritten by the new value.
	s := v.data.Slots(0, v.size+1)
	copy(s[i+1:], s[i:v.size])
	s[i] = x
	v.size++
	return i, nil
}

// emplaceGrow is the reallocating branch of Emplace.
func (v *Vector[T]) emplaceGrow(i int, ctor func() (T, error)) error {
	var nd RawStorage[T]
	if err := nd.init(v.grownCap()); err != nil {
		return err
	}
	x, err := ctor()
	if err != nil {
		nd.Dealloc()
		return err
	}
	*nd.Ptr(i) = x
	v.relocate(&nd, 0, i, 0)
	v.relocate(&nd, i, v.size, i+1)
	v.adopt(&nd)
	v.size++
	return nil
}

// Insert places x at index i, shifting later elements one slot right.
// The value is inserted exactly as given. Requires 0 <= i <= Len().
func (v *Vector[T]) Insert(i int, x T) error {
	_, err := v.Emplace(i, func() (T, error) { return x, nil })
	return err
}

// Erase removes the element at index i, shifting later elements one slot
// left, and returns i: the index now held by the next element, or Len() if
// the last element was erased. Requires i < Len().
func (v *Vector[T]) Erase(i int) int {
	v.check(i)
	s := v.data.Slots(0, v.size)
	copy(s[i:], s[i+1:])
	clear(s[v.size-1:])
	v.size--
	return i
}
