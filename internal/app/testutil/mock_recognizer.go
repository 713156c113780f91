package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"speechcut/internal/app/model"
	"speechcut/internal/app/transcribe"
)

// MockRecognizer is a mock implementation of the transcribe.Recognizer
// interface.
type MockRecognizer struct {
	mock.Mock
}

// NewMockRecognizer creates a new MockRecognizer.
func NewMockRecognizer() *MockRecognizer {
	return &MockRecognizer{}
}

func (m *MockRecognizer) Recognize(ctx context.Context, audioPath string, sel transcribe.ModelSelection) (model.Transcript, error) {
	args := m.Called(ctx, audioPath, sel)
	if transcript, ok := args.Get(0).(model.Transcript); ok {
		return transcript, args.Error(1)
	}
	return nil, args.Error(1)
}
