package media

import (
	"log"
	"os"

	"speechcut/internal/api/errors"
	"speechcut/internal/app/session"
)

// Ingester normalizes an upload into the session's canonical artifacts:
// always a mono 16-bit PCM audio.wav, plus the untouched original
// container when the upload is video.
type Ingester struct {
	store *session.Store
	codec Codec
}

// NewIngester creates an Ingester writing through the given store and codec.
func NewIngester(store *session.Store, codec Codec) *Ingester {
	return &Ingester{
		store: store,
		codec: codec,
	}
}

// Ingest persists the upload for the session and returns the path of the
// canonical audio artifact. Re-ingesting a key resets the session: prior
// artifacts are overwritten, never merged.
func (i *Ingester) Ingest(key string, raw []byte, isVideo bool) (string, error) {
	if _, err := i.store.EnsureDir(key); err != nil {
		return "", err
	}

	audioPath, err := i.store.ArtifactPath(key, session.ArtifactAudio)
	if err != nil {
		return "", err
	}

	if !isVideo {
		if err := os.WriteFile(audioPath, raw, 0o644); err != nil {
			return "", errors.NewStorageError(err)
		}
		log.Printf("ingested audio for session %s (%d bytes)\n", key, len(raw))
		return audioPath, nil
	}

	videoPath, err := i.store.ArtifactPath(key, session.ArtifactVideo)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(videoPath, raw, 0o644); err != nil {
		return "", errors.NewStorageError(err)
	}

	// The original container is kept verbatim for later span
	// extraction; only its audio track is demuxed for transcription.
	if err := i.codec.DemuxAudio(videoPath, audioPath); err != nil {
		return "", errors.NewUnsupportedMediaError(err)
	}

	log.Printf("ingested video for session %s (%d bytes)\n", key, len(raw))
	return audioPath, nil
}
