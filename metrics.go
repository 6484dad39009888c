package collections

// Growths returns how many times the backing storage has been replaced.
func (l *ArrayList[T]) Growths() int {
	return l.growths
}

// Utilization returns the ratio of length to backing capacity (0.0 to 1.0).
// Returns 0.0 if the list has no capacity.
func (l *ArrayList[T]) Utilization() float64 {
	capacity := l.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(l.length) / float64(capacity)
}

// Metrics returns a snapshot of list statistics.
func (l *ArrayList[T]) Metrics() ListMetrics {
	return ListMetrics{
		Len:         l.Len(),
		Capacity:    l.Capacity(),
		Growths:     l.Growths(),
		ModCount:    l.modCount,
		Utilization: l.Utilization(),
	}
}

// ListMetrics contains statistical information about a list.
type ListMetrics struct {
	Len         int     // Elements in the list
	Capacity    int     // Backing capacity
	Growths     int     // Storage replacements so far
	ModCount    int     // Structural modifications so far
	Utilization float64 // Ratio of length to capacity (0.0-1.0)
}
