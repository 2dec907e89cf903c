package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func setupCache(t *testing.T) *Cache {
	t.Helper()
	c := New(time.Minute)
	t.Cleanup(c.Close)
	return c
}

func TestCache_SetAndGet(t *testing.T) {
	c := setupCache(t)

	c.Set("key", "value")

	v, found := c.Get("key")
	assert.True(t, found)
	assert.Equal(t, "value", v)
}

func TestCache_Get_Missing(t *testing.T) {
	c := setupCache(t)

	_, found := c.Get("missing")
	assert.False(t, found)
}

func TestCache_Get_Expired(t *testing.T) {
	c := setupCache(t)

	c.Set("key", "value", time.Nanosecond)
	time.Sleep(time.Millisecond)

	_, found := c.Get("key")
	assert.False(t, found)
}

func TestCache_Delete(t *testing.T) {
	c := setupCache(t)

	c.Set("key", "value")
	c.Delete("key")

	_, found := c.Get("key")
	assert.False(t, found)
}

func TestCache_DeleteByPrefix(t *testing.T) {
	c := setupCache(t)

	c.Set("products:list:a", 1)
	c.Set("products:list:b", 2)
	c.Set("orders:list", 3)

	c.DeleteByPrefix("products:")

	_, found := c.Get("products:list:a")
	assert.False(t, found)
	_, found = c.Get("products:list:b")
	assert.False(t, found)

	v, found := c.Get("orders:list")
	assert.True(t, found)
	assert.Equal(t, 3, v)
	assert.Equal(t, 1, c.Size())
}
