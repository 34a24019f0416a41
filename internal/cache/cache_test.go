package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_StartsInvalid(t *testing.T) {
	c := NewList[string]()

	items, ok := c.Get()
	assert.False(t, ok)
	assert.Nil(t, items)
}

func TestList_PutThenGet(t *testing.T) {
	c := NewList[string]()
	c.Put([]string{"a", "b"})

	items, ok := c.Get()
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, items)

	// Mutating the returned slice does not leak into the cache.
	items[0] = "z"
	items, _ = c.Get()
	assert.Equal(t, "a", items[0])
}

func TestList_AppendOnValidCache(t *testing.T) {
	c := NewList[int]()
	c.Put([]int{1, 2})
	c.Append(3)

	items, ok := c.Get()
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, items)
}

func TestList_AppendOnInvalidCacheIsNoop(t *testing.T) {
	c := NewList[int]()
	c.Append(1)

	_, ok := c.Get()
	assert.False(t, ok)

	c.Put([]int{5})
	c.Invalidate()
	c.Append(6)
	_, ok = c.Get()
	assert.False(t, ok)
}

func TestList_Invalidate(t *testing.T) {
	c := NewList[string]()
	c.Put([]string{"a"})
	c.Invalidate()

	items, ok := c.Get()
	assert.False(t, ok)
	assert.Nil(t, items)
}
