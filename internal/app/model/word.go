package model

import (
	"fmt"
	"math"
)

// Word is a single recognized word with its position in the source audio,
// in seconds from the start of the recording.
type Word struct {
	Text  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Valid reports whether the word's timestamps form a proper interval.
func (w Word) Valid() bool {
	return w.Start >= 0 && w.Start < w.End
}

// Transcript is the time-ordered sequence of words recognized from one
// audio artifact. It is immutable once produced.
type Transcript []Word

// Duration returns the end time of the last word, or zero for an empty
// transcript.
func (t Transcript) Duration() float64 {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].End
}

// Span is a half-open time range [Start, End) selected for rendering.
// Spans come from the client in selection order, which is authoritative:
// they may repeat, overlap, and need not follow transcript order.
type Span struct {
	Start float64
	End   float64
}

// Validate checks the span against the duration of the source artifact.
// Bounds outside [0, duration] are an error, never clamped.
func (s Span) Validate(duration float64) error {
	// NaN compares false against everything, so the ordering checks below
	// would wave a non-finite span through.
	if !isFinite(s.Start) || !isFinite(s.End) {
		return fmt.Errorf("span bounds %v..%v are not finite", s.Start, s.End)
	}
	if s.Start >= s.End {
		return fmt.Errorf("span start %.3f is not before end %.3f", s.Start, s.End)
	}
	if s.Start < 0 {
		return fmt.Errorf("span start %.3f is negative", s.Start)
	}
	if s.End > duration {
		return fmt.Errorf("span end %.3f exceeds source duration %.3f", s.End, duration)
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ValidateSpans checks every span in selection order and reports the first
// offender, so no extraction work starts on a selection that cannot render.
func ValidateSpans(spans []Span, duration float64) error {
	for i, s := range spans {
		if err := s.Validate(duration); err != nil {
			return fmt.Errorf("span %d: %w", i, err)
		}
	}
	return nil
}

// OutputKind selects the container of a rendered artifact.
type OutputKind int

const (
	OutputAudio OutputKind = iota
	OutputVideo
)

func (k OutputKind) String() string {
	if k == OutputVideo {
		return "video"
	}
	return "audio"
}
