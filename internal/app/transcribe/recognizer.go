package transcribe

import (
	"context"
	"sort"

	"speechcut/internal/app/model"
)

// Recognizer wraps an external speech engine. Implementations guarantee the
// returned transcript is time-ordered with each word inside the duration of
// the input audio; silence simply produces no words, so the sequence is not
// necessarily contiguous.
type Recognizer interface {
	Recognize(ctx context.Context, audioPath string, sel ModelSelection) (model.Transcript, error)
}

// normalizeTranscript enforces the adapter contract on raw engine output:
// words with inverted or negative timestamps are dropped and the rest is
// put into temporal order.
func normalizeTranscript(words []model.Word) model.Transcript {
	transcript := make(model.Transcript, 0, len(words))
	for _, w := range words {
		if w.Valid() {
			transcript = append(transcript, w)
		}
	}
	sort.SliceStable(transcript, func(i, j int) bool {
		return transcript[i].Start < transcript[j].Start
	})
	return transcript
}
