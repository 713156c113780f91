package dto

import (
	"fmt"
	"math"
	"strconv"

	"github.com/samber/lo"

	"speechcut/internal/api/errors"
	"speechcut/internal/app/model"
)

// WireWord is the word shape the editor client exchanges with the service.
// The "id" field carries the word's start time rendered as a string; the
// client uses it both as a list key and as the span start when sending a
// selection back.
type WireWord struct {
	ID   string `json:"id"`
	End  string `json:"end"`
	Word string `json:"word"`
}

// SourceResponse carries the transcript produced by an upload.
type SourceResponse struct {
	Words []WireWord `json:"words"`
}

// NewSourceResponse converts a transcript into its wire form.
func NewSourceResponse(transcript model.Transcript) SourceResponse {
	return SourceResponse{
		Words: lo.Map(transcript, func(w model.Word, _ int) WireWord {
			return WireWord{
				ID:   formatSeconds(w.Start),
				End:  formatSeconds(w.End),
				Word: w.Text,
			}
		}),
	}
}

// GenerateRequest asks for a render of the chosen words, in the order the
// client arranged them.
type GenerateRequest struct {
	SessionKey  string     `json:"sessionKey" binding:"required"`
	IsVideo     bool       `json:"isVideo"`
	AudioOnly   bool       `json:"audioOnly"`
	ChosenWords []WireWord `json:"chosenWords" binding:"required"`
}

// Validate performs domain-specific validation
func (r *GenerateRequest) Validate() error {
	if len(r.ChosenWords) == 0 {
		return errors.NewInvalidSpanError(fmt.Errorf("chosenWords is empty"))
	}
	return nil
}

// OutputKind derives the render target. A video session can still ask for
// an audio-only cut; audioOnly wins over isVideo.
func (r *GenerateRequest) OutputKind() model.OutputKind {
	if r.IsVideo && !r.AudioOnly {
		return model.OutputVideo
	}
	return model.OutputAudio
}

// Spans parses the chosen words into render spans, in selection order.
// A missing or unparseable time is rejected here so a malformed entry never
// reaches the render engine as a generic runtime failure.
func (r *GenerateRequest) Spans() ([]model.Span, error) {
	spans := make([]model.Span, 0, len(r.ChosenWords))
	for i, w := range r.ChosenWords {
		start, err := parseSeconds(w.ID)
		if err != nil {
			return nil, errors.NewInvalidSpanError(fmt.Errorf("chosenWords[%d]: bad start %q", i, w.ID))
		}
		end, err := parseSeconds(w.End)
		if err != nil {
			return nil, errors.NewInvalidSpanError(fmt.Errorf("chosenWords[%d]: bad end %q", i, w.End))
		}
		spans = append(spans, model.Span{Start: start, End: end})
	}
	return spans, nil
}

// parseSeconds parses a timestamp string, refusing the non-finite values
// ParseFloat otherwise accepts ("nan", "inf") since they poison every
// downstream bounds comparison.
func parseSeconds(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite timestamp %q", s)
	}
	return v, nil
}

func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64)
}
