package collections

import "fmt"

// FixedSizeList is a Collection that holds at most Limit elements. Add
// returns false once the list is full.
type FixedSizeList[T any] struct {
	list  *ArrayList[T]
	limit int
}

// NewFixedSizeList creates an empty list that accepts up to limit elements.
// Returns ErrInvalidArgument if limit <= 0. A WithMaxCapacity option is
// overridden by limit.
func NewFixedSizeList[T any](limit int, opts ...Option) (*FixedSizeList[T], error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be greater than 0, got %d", ErrInvalidArgument, limit)
	}
	opts = append(opts[:len(opts):len(opts)], WithMaxCapacity(limit))
	l, err := NewArrayListWithCapacity[T](min(DefaultCapacity, limit), opts...)
	if err != nil {
		return nil, err
	}
	return &FixedSizeList[T]{list: l, limit: limit}, nil
}

// Limit returns the maximum number of elements.
func (f *FixedSizeList[T]) Limit() int { return f.limit }

// IsFull reports whether Add would be refused.
func (f *FixedSizeList[T]) IsFull() bool { return f.list.Len() >= f.limit }

func (f *FixedSizeList[T]) Len() int              { return f.list.Len() }
func (f *FixedSizeList[T]) Size() int             { return f.list.Size() }
func (f *FixedSizeList[T]) IsEmpty() bool         { return f.list.IsEmpty() }
func (f *FixedSizeList[T]) Contains(v T) bool     { return f.list.Contains(v) }
func (f *FixedSizeList[T]) Remove(v T) bool       { return f.list.Remove(v) }
func (f *FixedSizeList[T]) Clear()                { f.list.Clear() }
func (f *FixedSizeList[T]) Iterator() Iterator[T] { return f.list.Iterator() }

// Add appends v unless the list is full.
func (f *FixedSizeList[T]) Add(v T) bool {
	if f.IsFull() {
		return false
	}
	return f.list.Add(v)
}

// Get returns the element at index i.
func (f *FixedSizeList[T]) Get(i int) (T, error) {
	return f.list.Get(i)
}

// ToSlice returns a copy of the elements.
func (f *FixedSizeList[T]) ToSlice() []T {
	return f.list.ToSlice()
}
