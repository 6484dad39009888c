package collections

// Iterator returns a cursor over the list. Any structural modification that
// does not go through the cursor's own Remove makes its next call to Next or
// Remove fail with ErrConcurrentModification.
func (l *ArrayList[T]) Iterator() Iterator[T] {
	return &listIterator[T]{
		list:     l,
		lastRet:  -1,
		expected: l.modCount,
	}
}

// listIterator is a cursor over an ArrayList. It holds a reference to the
// list, never a copy of its storage.
type listIterator[T any] struct {
	list     *ArrayList[T]
	cursor   int // index of the next element to return
	lastRet  int // index of the last element returned, -1 if none
	expected int // list modCount the cursor is in sync with
}

func (it *listIterator[T]) HasNext() bool {
	return it.cursor < it.list.length
}

func (it *listIterator[T]) Next() (T, error) {
	var zero T
	if err := it.checkModification(); err != nil {
		return zero, err
	}
	if it.cursor >= it.list.length {
		return zero, ErrNoSuchElement
	}
	i := it.cursor
	it.cursor++
	it.lastRet = i
	return it.list.storage[i], nil
}

func (it *listIterator[T]) Remove() error {
	if it.lastRet < 0 {
		return ErrIllegalState
	}
	if err := it.checkModification(); err != nil {
		return err
	}
	if _, err := it.list.RemoveAt(it.lastRet); err != nil {
		return err
	}
	it.cursor = it.lastRet
	it.lastRet = -1
	it.expected = it.list.modCount
	return nil
}

func (it *listIterator[T]) checkModification() error {
	if it.list.modCount != it.expected {
		return ErrConcurrentModification
	}
	return nil
}
