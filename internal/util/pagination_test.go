package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		page, size    int
		offset, limit int
	}{
		{"first page", 1, 10, 0, 10},
		{"third page", 3, 10, 20, 10},
		{"page below one", 0, 5, 0, 5},
		{"zero size", 2, 0, DefaultPageSize, DefaultPageSize},
		{"oversized", 1, 500, 0, DefaultPageSize},
		{"page beyond max", math.MaxInt / 10, MaxPageSize, (MaxPage - 1) * MaxPageSize, MaxPageSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			offset, limit := Calculate(tt.page, tt.size)
			assert.Equal(t, tt.offset, offset)
			assert.Equal(t, tt.limit, limit)
		})
	}
}

func TestParseIntDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 7, ParseIntDefault("", 7))
	assert.Equal(t, 7, ParseIntDefault("abc", 7))
	assert.Equal(t, 3, ParseIntDefault("3", 7))
}

func TestNewMeta(t *testing.T) {
	t.Parallel()

	m := NewMeta(2, 10, 10, 25)
	assert.EqualValues(t, 3, m.TotalPages)
	assert.True(t, m.HasPrev)
	assert.True(t, m.HasNext)

	m = NewMeta(3, 20, 10, 25)
	assert.False(t, m.HasNext)

	m = NewMeta(1, 0, 10, 0)
	assert.EqualValues(t, 0, m.TotalPages)
	assert.False(t, m.HasPrev)
	assert.False(t, m.HasNext)
}

func TestClampPage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, ClampPage(-5))
	assert.Equal(t, 7, ClampPage(7))
	assert.Equal(t, MaxPage, ClampPage(math.MaxInt))

	offset, limit := Calculate(math.MaxInt, MaxPageSize)
	assert.GreaterOrEqual(t, offset, 0)
	assert.LessOrEqual(t, offset, math.MaxInt-limit)
}
