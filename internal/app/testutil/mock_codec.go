package testutil

import (
	"os"
	"sync"

	"github.com/stretchr/testify/mock"

	"speechcut/internal/app/model"
)

// MockCodec is a configurable mock of the media.Codec interface. Beyond the
// testify expectations it records every extracted span in call order, so
// tests can assert that selection order reached the codec unchanged.
type MockCodec struct {
	mock.Mock
	mu sync.Mutex

	// ExtractedSpans collects the spans passed to ExtractSpan, in order.
	ExtractedSpans []model.Span
	// ConcatParts collects the part lists passed to Concat.
	ConcatParts [][]string
	// WriteOutputs makes ExtractSpan and Concat create their dst files,
	// mimicking a codec that actually produces output.
	WriteOutputs bool
}

// NewMockCodec creates a MockCodec that materializes output files.
func NewMockCodec() *MockCodec {
	return &MockCodec{WriteOutputs: true}
}

func (m *MockCodec) ProbeDuration(path string) (float64, error) {
	args := m.Called(path)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockCodec) DemuxAudio(src, dst string) error {
	args := m.Called(src, dst)
	if err := args.Error(0); err != nil {
		return err
	}
	if m.WriteOutputs {
		return os.WriteFile(dst, []byte("demuxed:"+src), 0o644)
	}
	return nil
}

func (m *MockCodec) ExtractSpan(src, dst string, span model.Span, kind model.OutputKind) error {
	m.mu.Lock()
	m.ExtractedSpans = append(m.ExtractedSpans, span)
	m.mu.Unlock()

	args := m.Called(src, dst, span, kind)
	if err := args.Error(0); err != nil {
		return err
	}
	if m.WriteOutputs {
		return os.WriteFile(dst, []byte("part"), 0o644)
	}
	return nil
}

func (m *MockCodec) Concat(parts []string, dst string, kind model.OutputKind) error {
	m.mu.Lock()
	m.ConcatParts = append(m.ConcatParts, append([]string(nil), parts...))
	m.mu.Unlock()

	args := m.Called(parts, dst, kind)
	if err := args.Error(0); err != nil {
		return err
	}
	if m.WriteOutputs {
		return os.WriteFile(dst, []byte("concat"), 0o644)
	}
	return nil
}
