package collections

import (
	"fmt"
	"iter"
)

// DefaultCapacity is the backing capacity of a list created by NewArrayList.
const DefaultCapacity = 10

// ArrayList is a growable list backed by a single slice. When the backing
// storage is full, Append allocates storage of twice the capacity, copies the
// live elements over and drops the old storage, so N appends cost O(N) copies
// in total. Not goroutine-safe.
type ArrayList[T any] struct {
	storage  []T // len(storage) is the backing capacity
	length   int // elements in storage[:length] are live, the rest is zeroed
	modCount int // bumped on every structural modification
	growths  int
	cfg      config
}

// NewArrayList creates an empty list with DefaultCapacity (or the configured
// maximum capacity if that is smaller).
func NewArrayList[T any](opts ...Option) *ArrayList[T] {
	cfg := newConfig(opts)
	return &ArrayList[T]{
		storage: make([]T, min(DefaultCapacity, cfg.maxCapacity)),
		cfg:     cfg,
	}
}

// NewArrayListWithCapacity creates an empty list with the given backing
// capacity. Returns ErrInvalidArgument if capacity <= 0 or exceeds the
// configured maximum.
func NewArrayListWithCapacity[T any](capacity int, opts ...Option) (*ArrayList[T], error) {
	cfg := newConfig(opts)
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be greater than 0, got %d", ErrInvalidArgument, capacity)
	}
	if capacity > cfg.maxCapacity {
		return nil, fmt.Errorf("%w: capacity %d exceeds the maximum %d", ErrInvalidArgument, capacity, cfg.maxCapacity)
	}
	storage, err := allocStorage[T](capacity)
	if err != nil {
		return nil, err
	}
	return &ArrayList[T]{storage: storage, cfg: cfg}, nil
}

// NewArrayListFrom creates a list holding a copy of values.
// Returns ErrResourceExhausted if values do not fit the configured maximum.
func NewArrayListFrom[T any](values []T, opts ...Option) (*ArrayList[T], error) {
	cfg := newConfig(opts)
	if len(values) > cfg.maxCapacity {
		return nil, fmt.Errorf("%w: %d values exceed the maximum capacity %d", ErrResourceExhausted, len(values), cfg.maxCapacity)
	}
	storage, err := allocStorage[T](max(len(values), min(DefaultCapacity, cfg.maxCapacity)))
	if err != nil {
		return nil, err
	}
	n := copy(storage, values)
	return &ArrayList[T]{storage: storage, length: n, cfg: cfg}, nil
}

// Len returns the number of elements in the list.
func (l *ArrayList[T]) Len() int {
	return l.length
}

// Size is the same as Len.
func (l *ArrayList[T]) Size() int {
	return l.length
}

// IsEmpty reports whether the list has no elements.
func (l *ArrayList[T]) IsEmpty() bool {
	return l.length == 0
}

// Capacity returns the current backing capacity.
func (l *ArrayList[T]) Capacity() int {
	return len(l.storage)
}

// Append adds v at the end of the list, growing the storage if it is full.
// On ErrResourceExhausted the list is unchanged.
func (l *ArrayList[T]) Append(v T) error {
	if err := l.ensureRoom(); err != nil {
		return err
	}
	l.storage[l.length] = v
	l.length++
	l.modCount++
	return nil
}

// AppendAll appends vs in order. It stops at the first failure; values
// appended before it stay in the list.
func (l *ArrayList[T]) AppendAll(vs ...T) error {
	for _, v := range vs {
		if err := l.Append(v); err != nil {
			return err
		}
	}
	return nil
}

// Add appends v and reports whether it was added.
func (l *ArrayList[T]) Add(v T) bool {
	return l.Append(v) == nil
}

// Get returns the element at index i.
func (l *ArrayList[T]) Get(i int) (T, error) {
	if err := checkIndex("get", i, l.length); err != nil {
		var zero T
		return zero, err
	}
	return l.storage[i], nil
}

// Set replaces the element at index i. This is not a structural modification.
func (l *ArrayList[T]) Set(i int, v T) error {
	if err := checkIndex("set", i, l.length); err != nil {
		return err
	}
	l.storage[i] = v
	return nil
}

// Insert puts v at index i, shifting the elements at i and after to the
// right. i == Len() appends.
func (l *ArrayList[T]) Insert(i int, v T) error {
	if err := checkIndex("insert", i, l.length+1); err != nil {
		return err
	}
	if err := l.ensureRoom(); err != nil {
		return err
	}
	copy(l.storage[i+1:l.length+1], l.storage[i:l.length])
	l.storage[i] = v
	l.length++
	l.modCount++
	return nil
}

// RemoveAt removes and returns the element at index i, shifting the elements
// after it to the left.
func (l *ArrayList[T]) RemoveAt(i int) (T, error) {
	if err := checkIndex("remove", i, l.length); err != nil {
		var zero T
		return zero, err
	}
	v := l.storage[i]
	copy(l.storage[i:], l.storage[i+1:l.length])
	l.length--
	zeroRange(l.storage, l.length, l.length+1)
	l.modCount++
	return v, nil
}

// Remove removes the first element equal to v and reports whether one was
// found.
func (l *ArrayList[T]) Remove(v T) bool {
	i := l.IndexOf(v)
	if i < 0 {
		return false
	}
	_, err := l.RemoveAt(i)
	return err == nil
}

// IndexOf returns the index of the first element equal to v, or -1.
func (l *ArrayList[T]) IndexOf(v T) int {
	for i := 0; i < l.length; i++ {
		if l.cfg.equal(l.storage[i], v) {
			return i
		}
	}
	return -1
}

// Contains reports whether the list has an element equal to v.
func (l *ArrayList[T]) Contains(v T) bool {
	return l.IndexOf(v) >= 0
}

// Clear removes all elements. The backing capacity is kept.
func (l *ArrayList[T]) Clear() {
	zeroRange(l.storage, 0, l.length)
	l.cfg.log.Debug().Int("len", l.length).Int("capacity", len(l.storage)).Msg("list cleared")
	l.length = 0
	l.modCount++
}

// ToSlice returns a copy of the elements. Later changes to the list do not
// affect the returned slice.
func (l *ArrayList[T]) ToSlice() []T {
	out := make([]T, l.length)
	copy(out, l.storage[:l.length])
	return out
}

// All yields the index and value of every element in order.
// It panics if the list is structurally modified during the loop.
func (l *ArrayList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		expected := l.modCount
		for i := 0; i < l.length; i++ {
			if !yield(i, l.storage[i]) {
				return
			}
			if l.modCount != expected {
				panic(fmt.Errorf("%w: list modified during range", ErrConcurrentModification))
			}
		}
	}
}

// Values yields every element in order.
// It panics if the list is structurally modified during the loop.
func (l *ArrayList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// ensureRoom grows the storage if there is no free slot left.
func (l *ArrayList[T]) ensureRoom() error {
	if l.length < len(l.storage) {
		return nil
	}
	return l.grow()
}

// grow swaps in storage of the next capacity. The list keeps its old storage
// if the new one cannot be allocated.
func (l *ArrayList[T]) grow() error {
	from := len(l.storage)
	to, err := nextCapacity(from, l.cfg.maxCapacity)
	if err != nil {
		l.cfg.log.Warn().Int("capacity", from).Int("max", l.cfg.maxCapacity).Msg("list growth refused")
		return err
	}
	storage, err := allocStorage[T](to)
	if err != nil {
		l.cfg.log.Warn().Int("capacity", from).Int("requested", to).Err(err).Msg("list growth refused")
		return err
	}
	copy(storage, l.storage[:l.length])
	l.storage = storage
	l.growths++
	l.cfg.log.Debug().Int("from", from).Int("to", to).Int("len", l.length).Msg("list grown")
	return nil
}
