package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"speechcut/internal/api/errors"
)

// Artifact names the fixed roles a session directory may hold.
type Artifact string

const (
	ArtifactVideo Artifact = "video.mp4"
	ArtifactAudio Artifact = "audio.wav"
	ConcatAudio   Artifact = "concat.wav"
	ConcatVideo   Artifact = "concat.mp4"
)

// Store maps opaque session keys onto directories under a single storage
// root. It performs path resolution and existence checks only; pipeline
// rules live with the ingest and render components.
type Store struct {
	root string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore creates a store rooted at dir. The root itself is created lazily
// on first ingest.
func NewStore(dir string) *Store {
	return &Store{
		root:  dir,
		locks: make(map[string]*sync.Mutex),
	}
}

// Resolve returns the directory for a session key without creating it.
// Keys are client-supplied opaque strings used as a path component, so
// anything that could escape the storage root is rejected.
func (s *Store) Resolve(key string) (string, error) {
	if err := validateKey(key); err != nil {
		return "", errors.NewStorageError(err)
	}
	return filepath.Join(s.root, key), nil
}

// EnsureDir resolves the session directory and creates it if absent.
func (s *Store) EnsureDir(key string) (string, error) {
	dir, err := s.Resolve(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.NewStorageError(err)
	}
	return dir, nil
}

// ArtifactPath returns the full path of an artifact within a session.
func (s *Store) ArtifactPath(key string, artifact Artifact) (string, error) {
	dir, err := s.Resolve(key)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, string(artifact)), nil
}

// Exists reports whether the artifact is present for the session.
func (s *Store) Exists(key string, artifact Artifact) bool {
	path, err := s.ArtifactPath(key, artifact)
	if err != nil {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Lock serializes pipeline operations on one session key and returns the
// unlock function. Sessions are independent: two keys never contend.
// Racing ingest and render on the same key would otherwise interleave
// artifact writes.
func (s *Store) Lock(key string) func() {
	s.mu.Lock()
	m, ok := s.locks[key]
	if !ok {
		m = &sync.Mutex{}
		s.locks[key] = m
	}
	s.mu.Unlock()

	m.Lock()
	return m.Unlock
}

func validateKey(key string) error {
	if key == "" {
		return fmt.Errorf("session key is empty")
	}
	if key == "." || key == ".." {
		return fmt.Errorf("session key %q is not a valid directory name", key)
	}
	if strings.ContainsAny(key, `/\`) || strings.ContainsRune(key, os.PathSeparator) {
		return fmt.Errorf("session key %q contains a path separator", key)
	}
	return nil
}
