// Package collections implements generic sequence containers for Go.
//
// # Overview
//
// Three pieces make up the package:
//
//   - BoundedArray: fixed-capacity, index-addressed storage where every slot
//     is either written or empty, with strict bounds checking.
//   - ArrayList: a growable list with amortized O(1) append. The backing
//     storage doubles when full; its capacity and the logical length are
//     tracked separately.
//   - Iterator: a cursor shared by both containers. List cursors fail fast
//     when the list is structurally modified behind their back.
//
// # Basic Usage
//
//	list := collections.NewArrayList[string]()
//	_ = list.Append("a")
//	_ = list.Append("b")
//
//	v, err := list.Get(5)
//	if errors.Is(err, collections.ErrIndexOutOfRange) {
//		// index 5 is past the logical length, even if capacity allows it
//	}
//
//	it := list.Iterator()
//	for it.HasNext() {
//		v, err := it.Next()
//		if err != nil {
//			return err
//		}
//		if v == "a" {
//			_ = it.Remove() // safe: the cursor stays aligned
//		}
//	}
//
//	// Range-over-func views are available as well
//	for i, v := range list.All() {
//		fmt.Println(i, v)
//	}
//
// # Capabilities
//
// Instead of a class hierarchy the containers implement small interfaces:
// Sized, Indexable, Growable, Iterable and Collection. ArrayList implements
// all of them. BoundedArray has no Add, Remove or resize, so it only
// implements Sized, Indexable and Iterable.
//
// # Errors
//
// Every failure is returned as an error that matches one of the package
// sentinels with errors.Is: ErrInvalidArgument, ErrIndexOutOfRange,
// ErrNoValue, ErrNoSuchElement, ErrIllegalState, ErrConcurrentModification,
// ErrResourceExhausted and ErrUnsupportedOperation. Nothing is retried and no
// zero value stands in for an error.
//
// # Thread Safety
//
// None of the containers are safe for concurrent use. Callers that share a
// container between goroutines must hold their own lock around every
// mutating or iterating call.
//
// # Logging
//
// Lists log growth through an injected zerolog.Logger (see WithLogger). The
// default logger discards everything.
//
// # Metrics
//
//	m := list.Metrics()
//	fmt.Printf("len=%d cap=%d growths=%d utilization=%.2f\n",
//		m.Len, m.Capacity, m.Growths, m.Utilization)
package collections
