package vec_test

import (
	"errors"
	"testing"

	"github.com/pavanmanishd/vec"
)

// errBoom simulates a failing element constructor or copier.
var errBoom = errors.New("boom")

// quotaAllocator admits reservations up to a byte budget and tracks the
// outstanding balance, so tests can both trigger exhaustion and verify that
// failed operations leak nothing.
type quotaAllocator struct {
	budget   int
	reserved int
}

func (q *quotaAllocator) Reserve(n int) error {
	if q.reserved+n > q.budget {
		return vec.ErrOutOfMemory
	}
	q.reserved += n
	return nil
}

func (q *quotaAllocator) Release(n int) { q.reserved -= n }

// installAllocator swaps DefaultAllocator for the duration of the test.
func installAllocator(t *testing.T, a vec.Allocator) {
	t.Helper()
	prev := vec.DefaultAllocator
	vec.DefaultAllocator = a
	t.Cleanup(func() { vec.DefaultAllocator = prev })
}

// intVector builds a vector holding xs in order.
func intVector(t *testing.T, xs ...int) *vec.Vector[int] {
	t.Helper()
	v := vec.New[int]()
	for _, x := range xs {
		if err := v.Append(x); err != nil {
			t.Fatalf("Append(%d) error: %v", x, err)
		}
	}
	return v
}

// elems snapshots the vector's contents.
func elems(v *vec.Vector[int]) []int {
	out := make([]int, 0, v.Len())
	v.Each(func(_ int, x int) bool {
		out = append(out, x)
		return true
	})
	return out
}

// ctorOf returns a constructor that yields x.
func ctorOf(x int) func() (int, error) {
	return func() (int, error) { return x, nil }
}

// failCtor always fails with errBoom.
func failCtor() (int, error) { return 0, errBoom }
