package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordValid(t *testing.T) {
	tests := []struct {
		name  string
		word  Word
		valid bool
	}{
		{"proper_interval", Word{Text: "hello", Start: 1.0, End: 1.5}, true},
		{"starts_at_zero", Word{Text: "hi", Start: 0, End: 0.3}, true},
		{"inverted", Word{Text: "bad", Start: 2.0, End: 1.0}, false},
		{"zero_length", Word{Text: "bad", Start: 1.0, End: 1.0}, false},
		{"negative_start", Word{Text: "bad", Start: -0.5, End: 1.0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.word.Valid())
		})
	}
}

func TestSpanValidate(t *testing.T) {
	const duration = 10.0

	tests := []struct {
		name    string
		span    Span
		wantErr bool
	}{
		{"inside_duration", Span{Start: 2.0, End: 2.5}, false},
		{"full_range", Span{Start: 0, End: duration}, false},
		{"inverted", Span{Start: 5.0, End: 3.0}, true},
		{"negative_start", Span{Start: -1.0, End: 2.0}, true},
		{"end_past_duration", Span{Start: 9.0, End: 10.5}, true},
		{"zero_length", Span{Start: 4.0, End: 4.0}, true},
		{"nan_bounds", Span{Start: math.NaN(), End: math.NaN()}, true},
		{"nan_end", Span{Start: 1.0, End: math.NaN()}, true},
		{"infinite_end", Span{Start: 1.0, End: math.Inf(1)}, true},
		{"negative_infinite_start", Span{Start: math.Inf(-1), End: 2.0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.span.Validate(duration)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSpansReportsOffendingIndex(t *testing.T) {
	spans := []Span{
		{Start: 0.5, End: 1.0},
		{Start: 5.0, End: 3.0},
	}

	err := ValidateSpans(spans, 10.0)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "span 1")
}

func TestTranscriptDuration(t *testing.T) {
	assert.Zero(t, Transcript{}.Duration())

	transcript := Transcript{
		{Text: "one", Start: 0.1, End: 0.4},
		{Text: "two", Start: 0.6, End: 1.2},
	}
	assert.Equal(t, 1.2, transcript.Duration())
}
