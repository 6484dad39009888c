package collections

import (
	"testing"
)

// BenchmarkRealisticUsage compares the list against a builtin slice for
// common access patterns
func BenchmarkRealisticUsage(b *testing.B) {

	// Test 1: Build a list of 1000 ints from the default capacity
	b.Run("Append1000/ArrayList", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			l := NewArrayList[int]()
			for j := 0; j < 1000; j++ {
				_ = l.Append(j)
			}
		}
	})

	b.Run("Append1000/Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			s := make([]int, 0, DefaultCapacity)
			for j := 0; j < 1000; j++ {
				s = append(s, j)
			}
			_ = s
		}
	})

	// Test 2: Presized list, no growth
	b.Run("Append1000Presized/ArrayList", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			l, _ := NewArrayListWithCapacity[int](1000)
			for j := 0; j < 1000; j++ {
				_ = l.Append(j)
			}
		}
	})

	// Test 3: Iteration styles
	l := NewArrayList[int]()
	for j := 0; j < 1000; j++ {
		_ = l.Append(j)
	}
	s := l.ToSlice()

	b.Run("Iterate/Iterator", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sum := 0
			it := l.Iterator()
			for it.HasNext() {
				v, _ := it.Next()
				sum += v
			}
			_ = sum
		}
	})

	b.Run("Iterate/All", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sum := 0
			for _, v := range l.All() {
				sum += v
			}
			_ = sum
		}
	})

	b.Run("Iterate/Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sum := 0
			for _, v := range s {
				sum += v
			}
			_ = sum
		}
	})

	// Test 4: Drain from the front through the cursor
	b.Run("DrainFront/Iterator", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			l, _ := NewArrayListFrom(s[:100])
			b.StartTimer()
			it := l.Iterator()
			for it.HasNext() {
				_, _ = it.Next()
				_ = it.Remove()
			}
		}
	})
}

func BenchmarkArrayListGet(b *testing.B) {
	l := NewArrayList[int]()
	for j := 0; j < 1024; j++ {
		_ = l.Append(j)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = l.Get(i & 1023)
	}
}
