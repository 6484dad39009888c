package collections

// Sized is implemented by containers that know their length.
type Sized interface {
	Len() int
}

// Indexable is implemented by containers addressed by position.
type Indexable[T any] interface {
	Get(i int) (T, error)
	Set(i int, v T) error
}

// Growable is implemented by containers whose storage expands on append.
type Growable[T any] interface {
	Append(v T) error
	Capacity() int
}

// Iterable is implemented by containers that can hand out a cursor.
type Iterable[T any] interface {
	Iterator() Iterator[T]
}

// Collection is the general-purpose container contract.
type Collection[T any] interface {
	Iterable[T]
	Size() int
	IsEmpty() bool
	Contains(v T) bool
	// Add reports whether the collection changed.
	Add(v T) bool
	// Remove removes one element equal to v and reports whether one was found.
	Remove(v T) bool
	Clear()
}

// Iterator is a cursor over a container's elements.
//
// HasNext reports whether Next would yield an element. Next returns
// ErrNoSuchElement once the cursor is exhausted. Remove deletes the element
// most recently returned by Next; it returns ErrIllegalState before the first
// Next or when called twice in a row.
type Iterator[T any] interface {
	HasNext() bool
	Next() (T, error)
	Remove() error
}

var (
	_ Collection[int] = (*ArrayList[int])(nil)
	_ Indexable[int]  = (*ArrayList[int])(nil)
	_ Growable[int]   = (*ArrayList[int])(nil)
	_ Sized           = (*ArrayList[int])(nil)

	_ Indexable[int] = (*BoundedArray[int])(nil)
	_ Iterable[int]  = (*BoundedArray[int])(nil)
	_ Sized          = (*BoundedArray[int])(nil)

	_ Collection[int] = (*FixedSizeList[int])(nil)
	_ Sized           = (*FixedSizeList[int])(nil)
)
