package transcribe

import (
	"sync"

	"speechcut/internal/app/model"
)

// Cache keeps the last transcript produced per session key so repeated
// renders within a session's lifetime skip re-decoding the audio. It is
// process-scoped and deliberately not persisted; a restart simply forces
// re-transcription.
type Cache struct {
	mu          sync.RWMutex
	transcripts map[string]model.Transcript
}

// NewCache creates an empty transcript cache.
func NewCache() *Cache {
	return &Cache{
		transcripts: make(map[string]model.Transcript),
	}
}

// Get returns the cached transcript for the session key, if any.
func (c *Cache) Get(key string) (model.Transcript, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	transcript, ok := c.transcripts[key]
	return transcript, ok
}

// Put stores the transcript for the session key, replacing any prior one.
func (c *Cache) Put(key string, transcript model.Transcript) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transcripts[key] = transcript
}

// Invalidate drops the cached transcript for the session key. Ingest calls
// this: new source media makes the old transcript meaningless.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.transcripts, key)
}
