package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureIssuesAndReuses(t *testing.T) {
	store := NewStore(30)

	id, fresh := store.Ensure("")
	require.True(t, fresh)
	require.NotEmpty(t, id)

	again, fresh := store.Ensure(id)
	assert.False(t, fresh)
	assert.Equal(t, id, again)

	other, fresh := store.Ensure("no-such-session")
	assert.True(t, fresh)
	assert.NotEqual(t, id, other)
}

func TestSetGetDelete(t *testing.T) {
	store := NewStore(30)
	id, _ := store.Ensure("")

	store.Set(id, "reddit_insights", map[string]any{"count": 3})
	v, ok := store.Get(id, "reddit_insights")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"count": 3}, v)

	_, ok = store.Get(id, "news_insights")
	assert.False(t, ok)

	store.Delete(id, "reddit_insights")
	_, ok = store.Get(id, "reddit_insights")
	assert.False(t, ok)
}

func TestExpiry(t *testing.T) {
	store := NewStore(30)
	base := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return base }

	id, _ := store.Ensure("")
	store.Set(id, "k", "v")

	// TTL 경과 전에는 살아 있다.
	store.now = func() time.Time { return base.Add(29 * time.Minute) }
	_, ok := store.Get(id, "k")
	assert.True(t, ok)

	store.now = func() time.Time { return base.Add(60 * time.Minute) }
	_, ok = store.Get(id, "k")
	assert.False(t, ok)

	_, fresh := store.Ensure(id)
	assert.True(t, fresh)
}

func TestSweep(t *testing.T) {
	store := NewStore(30)
	base := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return base }

	a, _ := store.Ensure("")
	store.now = func() time.Time { return base.Add(20 * time.Minute) }
	b, _ := store.Ensure("")

	store.now = func() time.Time { return base.Add(35 * time.Minute) }
	assert.Equal(t, 1, store.Sweep())

	_, ok := store.Get(b, "anything")
	assert.False(t, ok) // 세션은 살아 있지만 키가 없다

	_, fresh := store.Ensure(a)
	assert.True(t, fresh)
	_, fresh = store.Ensure(b)
	assert.False(t, fresh)
}
