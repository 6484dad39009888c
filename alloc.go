package collections

import (
	"fmt"
	"math"
	"runtime"
)

// MaxCapacity is the default ceiling on a list's backing capacity.
const MaxCapacity = math.MaxInt

// allocStorage returns zeroed storage for n elements. A runtime refusal to
// allocate (length out of range, size overflow) is reported as
// ErrResourceExhausted instead of panicking. Other panics propagate.
func allocStorage[T any](n int) (s []T, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		rerr, ok := r.(runtime.Error)
		if !ok {
			panic(r)
		}
		s = nil
		err = fmt.Errorf("%w: cannot allocate storage for %d elements: %v", ErrResourceExhausted, n, rerr)
	}()
	return make([]T, n), nil
}

// nextCapacity returns the capacity to grow to from cur. It doubles, clamped
// to limit. Returns ErrResourceExhausted if cur is already at limit.
func nextCapacity(cur, limit int) (int, error) {
	if cur >= limit {
		return 0, fmt.Errorf("%w: capacity %d reached the maximum %d", ErrResourceExhausted, cur, limit)
	}
	if cur < 1 {
		return 1, nil
	}
	if cur > limit/2 {
		return limit, nil
	}
	return cur * 2, nil
}

// zeroRange clears s[from:to] so removed elements are not kept reachable.
func zeroRange[T any](s []T, from, to int) {
	if from < to {
		clear(s[from:to])
	}
}
