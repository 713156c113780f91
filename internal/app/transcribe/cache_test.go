package transcribe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speechcut/internal/app/model"
)

func TestCacheRoundTrip(t *testing.T) {
	cache := NewCache()

	_, ok := cache.Get("sess1")
	assert.False(t, ok)

	transcript := model.Transcript{{Text: "hi", Start: 0.1, End: 0.4}}
	cache.Put("sess1", transcript)

	got, ok := cache.Get("sess1")
	require.True(t, ok)
	assert.Equal(t, transcript, got)

	_, ok = cache.Get("sess2")
	assert.False(t, ok, "sessions do not share transcripts")
}

func TestCachePutReplaces(t *testing.T) {
	cache := NewCache()
	cache.Put("sess1", model.Transcript{{Text: "old", Start: 0, End: 1}})
	cache.Put("sess1", model.Transcript{{Text: "new", Start: 0, End: 1}})

	got, ok := cache.Get("sess1")
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].Text)
}

func TestCacheInvalidate(t *testing.T) {
	cache := NewCache()
	cache.Put("sess1", model.Transcript{{Text: "hi", Start: 0.1, End: 0.4}})

	cache.Invalidate("sess1")

	_, ok := cache.Get("sess1")
	assert.False(t, ok)

	// Invalidating an absent key is a no-op.
	cache.Invalidate("sess1")
}
