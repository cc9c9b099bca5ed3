package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c, err := New(context.Background(), "", time.Minute)
	require.NoError(t, err)
	defer c.Close()

	_, ok := c.Get(context.Background(), "most-books-read")
	assert.False(t, ok)

	c.Set(context.Background(), "most-books-read", []byte(`[{"playerId":"1"}]`))
	val, ok := c.Get(context.Background(), "most-books-read")
	require.True(t, ok)
	assert.Equal(t, `[{"playerId":"1"}]`, string(val))
}

func TestMemoryCache_Expiry(t *testing.T) {
	c, err := New(context.Background(), "", 20*time.Millisecond)
	require.NoError(t, err)
	defer c.Close()

	c.Set(context.Background(), "top-reviewers", []byte(`[]`))
	_, ok := c.Get(context.Background(), "top-reviewers")
	require.True(t, ok)

	time.Sleep(30 * time.Millisecond)
	_, ok = c.Get(context.Background(), "top-reviewers")
	assert.False(t, ok)
}

func TestMemoryCache_KeysIndependent(t *testing.T) {
	c, err := New(context.Background(), "", time.Minute)
	require.NoError(t, err)
	defer c.Close()

	c.Set(context.Background(), "a", []byte("1"))
	_, ok := c.Get(context.Background(), "b")
	assert.False(t, ok)
}
