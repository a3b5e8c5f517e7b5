package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGetDelete(t *testing.T) {
	store := NewMemoryStore(0)
	defer store.Close()

	store.Set("session:1", []byte("one"), 0)

	v, ok := store.Get("session:1")
	require.True(t, ok)
	assert.Equal(t, "one", string(v))

	v[0] = 'X'
	v, _ = store.Get("session:1")
	assert.Equal(t, "one", string(v), "Get must return a copy")

	store.Delete("session:1")
	_, ok = store.Get("session:1")
	assert.False(t, ok)
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore(0)
	defer store.Close()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set("a", []byte("1"), time.Minute)
	store.Set("b", []byte("2"), 0)

	now = now.Add(2 * time.Minute)

	_, ok := store.Get("a")
	assert.False(t, ok)
	_, ok = store.Get("b")
	assert.True(t, ok)
	assert.Equal(t, []string{"b"}, store.Keys(""))

	store.purge()
	assert.Len(t, store.items, 1)
}

func TestMemoryStore_Keys(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	defer store.Close()

	store.Set("session:b", nil, 0)
	store.Set("session:a", nil, 0)
	store.Set("other:c", nil, 0)

	assert.Equal(t, []string{"session:a", "session:b"}, store.Keys("session:"))
}
