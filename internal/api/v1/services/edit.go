package services

import (
	"context"

	"speechcut/internal/app/media"
	"speechcut/internal/app/model"
	"speechcut/internal/app/session"
	"speechcut/internal/app/transcribe"
)

// EditService orchestrates the transcript-driven editing pipeline for the
// transport layer: upload to transcript, selection to rendered artifact.
type EditService interface {
	// IngestAndTranscribe stores the upload as the session's source and
	// returns its word-level transcript.
	IngestAndTranscribe(ctx context.Context, key string, raw []byte, isVideo bool, sel transcribe.ModelSelection) (model.Transcript, error)
	// Render cuts the selected spans out of the session's source and
	// returns the path of the concatenated output.
	Render(ctx context.Context, key string, spans []model.Span, kind model.OutputKind) (string, error)
	// Transcript returns the cached transcript for a session, if the
	// process transcribed it earlier.
	Transcript(key string) (model.Transcript, bool)
}

type editService struct {
	store      *session.Store
	ingester   *media.Ingester
	renderer   *media.Renderer
	recognizer transcribe.Recognizer
	cache      *transcribe.Cache
}

// NewEditService wires the pipeline components into an EditService.
func NewEditService(
	store *session.Store,
	ingester *media.Ingester,
	renderer *media.Renderer,
	recognizer transcribe.Recognizer,
	cache *transcribe.Cache,
) EditService {
	return &editService{
		store:      store,
		ingester:   ingester,
		renderer:   renderer,
		recognizer: recognizer,
		cache:      cache,
	}
}

func (s *editService) IngestAndTranscribe(ctx context.Context, key string, raw []byte, isVideo bool, sel transcribe.ModelSelection) (model.Transcript, error) {
	unlock := s.store.Lock(key)
	defer unlock()

	// New source media invalidates whatever was transcribed before,
	// even if the new transcription fails below.
	s.cache.Invalidate(key)

	audioPath, err := s.ingester.Ingest(key, raw, isVideo)
	if err != nil {
		return nil, err
	}

	transcript, err := s.recognizer.Recognize(ctx, audioPath, sel)
	if err != nil {
		return nil, err
	}

	s.cache.Put(key, transcript)
	return transcript, nil
}

func (s *editService) Render(_ context.Context, key string, spans []model.Span, kind model.OutputKind) (string, error) {
	unlock := s.store.Lock(key)
	defer unlock()

	return s.renderer.Render(key, spans, kind)
}

func (s *editService) Transcript(key string) (model.Transcript, bool) {
	return s.cache.Get(key)
}
