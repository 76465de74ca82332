package cache

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLRU_BasicGetPut(t *testing.T) {
	c := NewLRU[string](3, nil)

	c.Put("a", "A")
	c.Put("b", "B")

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "A", v)

	_, ok = c.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestLRU_Eviction(t *testing.T) {
	var evicted []string
	c := NewLRU[int](2, func(key string, _ int) { evicted = append(evicted, key) })

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3) // evicts "a"

	_, ok := c.Get("a")
	assert.False(t, ok, "a should have been evicted")
	assert.Equal(t, []string{"a"}, evicted)

	v, ok := c.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, c.Len())
}

func TestLRU_AccessPromotesEntry(t *testing.T) {
	c := NewLRU[int](2, nil)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a")
	c.Put("c", 3) // evicts "b", not "a"

	_, ok := c.Get("a")
	assert.True(t, ok, "a was accessed recently, should not be evicted")

	_, ok = c.Get("b")
	assert.False(t, ok, "b should have been evicted")
}

func TestLRU_UpdateExisting(t *testing.T) {
	c := NewLRU[string](2, nil)

	c.Put("a", "A1")
	c.Put("a", "A2")

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "A2", v)
	assert.Equal(t, 1, c.Len())
}

func TestLRU_MinimumCapacity(t *testing.T) {
	c := NewLRU[int](0, nil)

	c.Put("a", 1)
	c.Put("b", 2)

	assert.Equal(t, 1, c.Len())
	_, ok := c.Get("b")
	assert.True(t, ok)
}

func TestLRU_ConcurrentAccess(t *testing.T) {
	c := NewLRU[int](50, nil)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := range 100 {
				key := strconv.Itoa(worker*100 + j)
				c.Put(key, j)
				c.Get(key)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, c.Len())
}
