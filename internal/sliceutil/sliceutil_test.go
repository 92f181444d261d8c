package sliceutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirst(t *testing.T) {
	v, ok := First([]string{"a", "bb", "ccc"}, func(s string) bool { return len(s) > 1 })
	assert.True(t, ok)
	assert.Equal(t, "bb", v)

	_, ok = First([]string{"a"}, func(s string) bool { return false })
	assert.False(t, ok)

	_, ok = First(nil, func(int) bool { return true })
	assert.False(t, ok)
}

func TestFirstEqual(t *testing.T) {
	v, ok := FirstEqual([]int{1, 2, 3}, 2)
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = FirstEqual([]int{1, 2, 3}, 4)
	assert.False(t, ok)
}

func TestLast(t *testing.T) {
	v, ok := Last([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = Last([]string(nil))
	assert.False(t, ok)
}

func TestFilter(t *testing.T) {
	got := Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []int{2, 4}, got)

	assert.Nil(t, Filter([]int{1, 3}, func(n int) bool { return n%2 == 0 }))
}

func TestMap(t *testing.T) {
	got := Map([]string{"a", "b"}, strings.ToUpper)
	assert.Equal(t, []string{"A", "B"}, got)

	assert.Equal(t, []int{}, Map(nil, func(s string) int { return len(s) }))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"x", "y"}, "y"))
	assert.False(t, Contains([]string{"x", "y"}, "z"))
}
