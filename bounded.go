package collections

import (
	"fmt"
	"iter"
)

// BoundedArray is fixed-capacity, index-addressed storage. Each slot is either
// written or empty; reading an empty slot fails with ErrNoValue. The capacity
// never changes and there is no Add, Remove or resize.
type BoundedArray[T any] struct {
	slots []Optional[T]
}

// NewBoundedArray creates a BoundedArray with the given capacity.
// Returns ErrInvalidArgument if capacity <= 0.
func NewBoundedArray[T any](capacity int) (*BoundedArray[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be greater than 0, got %d", ErrInvalidArgument, capacity)
	}
	return &BoundedArray[T]{slots: make([]Optional[T], capacity)}, nil
}

// Len returns the fixed capacity of the array.
func (a *BoundedArray[T]) Len() int {
	return len(a.slots)
}

// Set stores v at index i, overwriting any previous value.
func (a *BoundedArray[T]) Set(i int, v T) error {
	if err := checkIndex("set", i, len(a.slots)); err != nil {
		return err
	}
	a.slots[i] = Some(v)
	return nil
}

// Get returns the value at index i. It fails with ErrIndexOutOfRange for an
// invalid index and with ErrNoValue if the slot was never written.
func (a *BoundedArray[T]) Get(i int) (T, error) {
	var zero T
	if err := checkIndex("get", i, len(a.slots)); err != nil {
		return zero, err
	}
	v, ok := a.slots[i].Get()
	if !ok {
		return zero, &NoValueError{Index: i}
	}
	return v, nil
}

// IsSet reports whether the slot at index i holds a value.
func (a *BoundedArray[T]) IsSet(i int) (bool, error) {
	if err := checkIndex("isset", i, len(a.slots)); err != nil {
		return false, err
	}
	return a.slots[i].IsSet(), nil
}

// Unset empties the slot at index i.
func (a *BoundedArray[T]) Unset(i int) error {
	if err := checkIndex("unset", i, len(a.slots)); err != nil {
		return err
	}
	a.slots[i] = None[T]()
	return nil
}

// Values yields the written slots in ascending index order.
func (a *BoundedArray[T]) Values() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, slot := range a.slots {
			v, ok := slot.Get()
			if !ok {
				continue
			}
			if !yield(i, v) {
				return
			}
		}
	}
}

// Iterator returns a cursor over the written slots in ascending index order.
// Empty slots are skipped. Remove is not supported.
func (a *BoundedArray[T]) Iterator() Iterator[T] {
	return &boundedIterator[T]{arr: a}
}

type boundedIterator[T any] struct {
	arr *BoundedArray[T]
	pos int // next slot to inspect
}

// seek returns the first written slot at or after pos, or -1.
func (it *boundedIterator[T]) seek() int {
	for i := it.pos; i < len(it.arr.slots); i++ {
		if it.arr.slots[i].IsSet() {
			return i
		}
	}
	return -1
}

func (it *boundedIterator[T]) HasNext() bool {
	return it.seek() >= 0
}

func (it *boundedIterator[T]) Next() (T, error) {
	i := it.seek()
	if i < 0 {
		var zero T
		return zero, ErrNoSuchElement
	}
	v, _ := it.arr.slots[i].Get()
	it.pos = i + 1
	return v, nil
}

func (it *boundedIterator[T]) Remove() error {
	return fmt.Errorf("%w: bounded array has no removal", ErrUnsupportedOperation)
}
