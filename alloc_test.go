package collections

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	a int64
	b int32
	c int16
	d int8
}

func TestAllocStorage(t *testing.T) {
	s, err := allocStorage[testStruct](8)
	require.NoError(t, err)
	assert.Len(t, s, 8)
	for i, v := range s {
		assert.Zero(t, v, "s[%d] not zeroed", i)
	}
}

func TestAllocStorageRefused(t *testing.T) {
	s, err := allocStorage[int64](math.MaxInt)
	assert.ErrorIs(t, err, ErrResourceExhausted)
	assert.Nil(t, s)
}

func TestNextCapacity(t *testing.T) {
	tests := []struct {
		cur, limit int
		expected   int
		wantErr    bool
	}{
		{0, 10, 1, false},
		{1, 10, 2, false},
		{4, 10, 8, false},
		{5, 10, 10, false},
		{6, 10, 10, false},
		{10, 10, 0, true},
		{11, 10, 0, true},
		{math.MaxInt/2 + 1, math.MaxInt, math.MaxInt, false},
		{math.MaxInt, math.MaxInt, 0, true},
	}

	for _, tt := range tests {
		got, err := nextCapacity(tt.cur, tt.limit)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrResourceExhausted, "nextCapacity(%d, %d)", tt.cur, tt.limit)
			continue
		}
		if assert.NoError(t, err) {
			assert.Equal(t, tt.expected, got, "nextCapacity(%d, %d)", tt.cur, tt.limit)
		}
	}
}

func TestZeroRange(t *testing.T) {
	s := []int{1, 2, 3, 4}
	zeroRange(s, 1, 3)
	assert.Equal(t, []int{1, 0, 0, 4}, s)

	zeroRange(s, 2, 2)
	zeroRange(s, 3, 1)
	assert.Equal(t, []int{1, 0, 0, 4}, s)
}
