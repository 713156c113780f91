package media

import (
	goerrors "errors"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"speechcut/internal/api/errors"
	"speechcut/internal/app/model"
	"speechcut/internal/app/session"
)

var errEmptySelection = goerrors.New("selection is empty")

// Renderer cuts the selected spans out of a session's source artifact and
// concatenates them, in selection order, into the session's concat output.
type Renderer struct {
	store *session.Store
	codec Codec
}

// NewRenderer creates a Renderer reading and writing through the given
// store and codec.
func NewRenderer(store *session.Store, codec Codec) *Renderer {
	return &Renderer{
		store: store,
		codec: codec,
	}
}

// Render produces the concat artifact for the session and returns its path.
//
// Selection order is authoritative: spans are extracted and joined exactly
// as supplied, so a client can reorder or repeat words. Every span is
// validated against the source duration before any extraction starts, and
// the output replaces the previous concat artifact only once it is fully
// written, so a failed render never leaves a truncated result behind.
func (r *Renderer) Render(key string, spans []model.Span, kind model.OutputKind) (string, error) {
	srcArtifact := session.ArtifactAudio
	outArtifact := session.ConcatAudio
	if kind == model.OutputVideo {
		srcArtifact = session.ArtifactVideo
		outArtifact = session.ConcatVideo
	}

	if !r.store.Exists(key, srcArtifact) {
		return "", errors.NewMissingSourceError(kind.String())
	}

	srcPath, err := r.store.ArtifactPath(key, srcArtifact)
	if err != nil {
		return "", err
	}
	outPath, err := r.store.ArtifactPath(key, outArtifact)
	if err != nil {
		return "", err
	}

	if len(spans) == 0 {
		return "", errors.NewInvalidSpanError(errEmptySelection)
	}

	duration, err := r.codec.ProbeDuration(srcPath)
	if err != nil {
		return "", errors.NewUnsupportedMediaError(err)
	}
	if err := model.ValidateSpans(spans, duration); err != nil {
		return "", errors.NewInvalidSpanError(err)
	}

	sessionDir, err := r.store.Resolve(key)
	if err != nil {
		return "", err
	}
	scratchDir := filepath.Join(sessionDir, "render-"+uuid.New().String())
	if err := os.MkdirAll(scratchDir, 0o755); err != nil {
		return "", errors.NewStorageError(err)
	}
	defer os.RemoveAll(scratchDir)

	parts := make([]string, 0, len(spans))
	for i, span := range spans {
		partPath := scratchPartPath(scratchDir, i, kind)
		if err := r.codec.ExtractSpan(srcPath, partPath, span, kind); err != nil {
			return "", errors.NewEncodeError(err)
		}
		parts = append(parts, partPath)
	}

	// Concatenate into the scratch dir first and rename into place, so
	// the previous concat artifact survives any encode failure intact.
	tmpOut := filepath.Join(scratchDir, "concat"+filepath.Ext(outPath))
	if err := r.codec.Concat(parts, tmpOut, kind); err != nil {
		return "", errors.NewEncodeError(err)
	}
	if err := os.Rename(tmpOut, outPath); err != nil {
		return "", errors.NewStorageError(err)
	}

	log.Printf("rendered %d span(s) for session %s into %s\n", len(spans), key, filepath.Base(outPath))
	return outPath, nil
}
