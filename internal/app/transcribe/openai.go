package transcribe

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"speechcut/internal/api/errors"
	"speechcut/internal/app/model"
)

// OpenAIRecognizer delegates recognition to the OpenAI transcription API,
// requesting word-level timestamp granularity. The remote engine serves
// every supported language with one model, so the size flag is ignored.
type OpenAIRecognizer struct {
	client   *openai.Client
	registry *Registry
}

// NewOpenAIRecognizer creates a recognizer using the given API client. The
// registry is consulted only to reject unknown language tags, keeping the
// language surface identical across engines.
func NewOpenAIRecognizer(client *openai.Client, registry *Registry) *OpenAIRecognizer {
	return &OpenAIRecognizer{
		client:   client,
		registry: registry,
	}
}

func (o *OpenAIRecognizer) Recognize(ctx context.Context, audioPath string, sel ModelSelection) (model.Transcript, error) {
	known := false
	for _, lang := range o.registry.Languages() {
		if lang == sel.Lang {
			known = true
			break
		}
	}
	if !known {
		return nil, errors.NewUnknownModelError(sel.Lang)
	}

	req := openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: audioPath,
		Language: sel.Lang,
		Format:   openai.AudioResponseFormatVerboseJSON,
		TimestampGranularities: []openai.TranscriptionTimestampGranularity{
			openai.TranscriptionTimestampGranularityWord,
		},
	}

	resp, err := o.client.CreateTranscription(ctx, req)
	if err != nil {
		return nil, errors.NewTranscriptionFailedError(err)
	}

	words := make([]model.Word, 0, len(resp.Words))
	for _, w := range resp.Words {
		words = append(words, model.Word{
			Text:  w.Word,
			Start: w.Start,
			End:   w.End,
		})
	}
	return normalizeTranscript(words), nil
}
