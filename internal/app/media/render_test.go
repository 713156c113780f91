package media

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"speechcut/internal/api/errors"
	"speechcut/internal/app/model"
	"speechcut/internal/app/session"
	"speechcut/internal/app/testutil"
)

// seedSession creates a session directory with the given artifacts present.
func seedSession(t *testing.T, root, key string, artifacts ...session.Artifact) *session.Store {
	t.Helper()
	store := session.NewStore(root)
	_, err := store.EnsureDir(key)
	require.NoError(t, err)
	for _, artifact := range artifacts {
		path, err := store.ArtifactPath(key, artifact)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, []byte("source"), 0o644))
	}
	return store
}

func TestRenderAudioConcatenatesInSelectionOrder(t *testing.T) {
	root := t.TempDir()
	store := seedSession(t, root, "sess1", session.ArtifactAudio)
	codec := testutil.NewMockCodec()
	codec.On("ProbeDuration", mock.Anything).Return(10.0, nil)
	codec.On("ExtractSpan", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	codec.On("Concat", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	renderer := NewRenderer(store, codec)

	// Selection deliberately out of transcript order, with a repeat.
	spans := []model.Span{
		{Start: 6.0, End: 7.0},
		{Start: 1.0, End: 2.0},
		{Start: 6.0, End: 7.0},
	}

	outPath, err := renderer.Render("sess1", spans, model.OutputAudio)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "sess1", "concat.wav"), outPath)

	// The codec saw the spans exactly as supplied: no reorder, no dedup.
	assert.Equal(t, spans, codec.ExtractedSpans)

	require.Len(t, codec.ConcatParts, 1)
	assert.Len(t, codec.ConcatParts[0], 3)

	_, err = os.Stat(outPath)
	assert.NoError(t, err)
}

func TestRenderVideoUsesVideoSource(t *testing.T) {
	root := t.TempDir()
	store := seedSession(t, root, "sess1", session.ArtifactAudio, session.ArtifactVideo)
	codec := testutil.NewMockCodec()
	codec.On("ProbeDuration", mock.Anything).Return(10.0, nil)
	codec.On("ExtractSpan", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	codec.On("Concat", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	renderer := NewRenderer(store, codec)

	outPath, err := renderer.Render("sess1", []model.Span{{Start: 0.5, End: 1.5}}, model.OutputVideo)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "sess1", "concat.mp4"), outPath)

	videoPath := filepath.Join(root, "sess1", "video.mp4")
	codec.AssertCalled(t, "ProbeDuration", videoPath)
	codec.AssertCalled(t, "ExtractSpan", videoPath, mock.Anything, model.Span{Start: 0.5, End: 1.5}, model.OutputVideo)
}

func TestRenderVideoWithoutVideoArtifact(t *testing.T) {
	store := seedSession(t, t.TempDir(), "sess1", session.ArtifactAudio)
	renderer := NewRenderer(store, testutil.NewMockCodec())

	_, err := renderer.Render("sess1", []model.Span{{Start: 0, End: 1}}, model.OutputVideo)
	require.Error(t, err)
	assert.Equal(t, errors.KindMissingSource, errors.Kind(err))
}

func TestRenderWithoutIngest(t *testing.T) {
	store := session.NewStore(t.TempDir())
	renderer := NewRenderer(store, testutil.NewMockCodec())

	_, err := renderer.Render("never-ingested", []model.Span{{Start: 0, End: 1}}, model.OutputAudio)
	require.Error(t, err)
	assert.Equal(t, errors.KindMissingSource, errors.Kind(err))
}

func TestRenderRejectsInvalidSpans(t *testing.T) {
	tests := []struct {
		name  string
		spans []model.Span
	}{
		{"inverted", []model.Span{{Start: 5.0, End: 3.0}}},
		{"negative_start", []model.Span{{Start: -1.0, End: 2.0}}},
		{"past_duration", []model.Span{{Start: 9.5, End: 11.0}}},
		{"empty_selection", nil},
		{"valid_then_invalid", []model.Span{{Start: 0, End: 1}, {Start: 2, End: 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			store := seedSession(t, root, "sess1", session.ArtifactAudio)
			codec := testutil.NewMockCodec()
			codec.On("ProbeDuration", mock.Anything).Return(10.0, nil)
			renderer := NewRenderer(store, codec)

			_, err := renderer.Render("sess1", tt.spans, model.OutputAudio)
			require.Error(t, err)
			assert.Equal(t, errors.KindInvalidSpan, errors.Kind(err))

			// Validation failed before any extraction started and no
			// concat artifact appeared.
			codec.AssertNotCalled(t, "ExtractSpan", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			assert.False(t, store.Exists("sess1", session.ConcatAudio))
		})
	}
}

func TestRenderKeepsPreviousOutputOnEncodeFailure(t *testing.T) {
	root := t.TempDir()
	store := seedSession(t, root, "sess1", session.ArtifactAudio)

	// A previous successful render left an output in place.
	prevPath := filepath.Join(root, "sess1", "concat.wav")
	require.NoError(t, os.WriteFile(prevPath, []byte("previous render"), 0o644))

	codec := testutil.NewMockCodec()
	codec.On("ProbeDuration", mock.Anything).Return(10.0, nil)
	codec.On("ExtractSpan", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	codec.On("Concat", mock.Anything, mock.Anything, mock.Anything).Return(fmt.Errorf("muxer died"))
	renderer := NewRenderer(store, codec)

	_, err := renderer.Render("sess1", []model.Span{{Start: 0, End: 1}}, model.OutputAudio)
	require.Error(t, err)
	assert.Equal(t, errors.KindEncode, errors.Kind(err))

	content, err := os.ReadFile(prevPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("previous render"), content, "failed render must not clobber the previous artifact")
}

func TestRenderOverwritesPreviousOutputOnSuccess(t *testing.T) {
	root := t.TempDir()
	store := seedSession(t, root, "sess1", session.ArtifactAudio)

	prevPath := filepath.Join(root, "sess1", "concat.wav")
	require.NoError(t, os.WriteFile(prevPath, []byte("previous render"), 0o644))

	codec := testutil.NewMockCodec()
	codec.On("ProbeDuration", mock.Anything).Return(10.0, nil)
	codec.On("ExtractSpan", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	codec.On("Concat", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	renderer := NewRenderer(store, codec)

	outPath, err := renderer.Render("sess1", []model.Span{{Start: 0, End: 1}}, model.OutputAudio)
	require.NoError(t, err)

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.NotEqual(t, []byte("previous render"), content)
}

func TestRenderCleansUpScratchFiles(t *testing.T) {
	root := t.TempDir()
	store := seedSession(t, root, "sess1", session.ArtifactAudio)
	codec := testutil.NewMockCodec()
	codec.On("ProbeDuration", mock.Anything).Return(10.0, nil)
	codec.On("ExtractSpan", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	codec.On("Concat", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	renderer := NewRenderer(store, codec)

	_, err := renderer.Render("sess1", []model.Span{{Start: 0, End: 1}, {Start: 2, End: 3}}, model.OutputAudio)
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Join(root, "sess1"))
	require.NoError(t, err)
	for _, entry := range entries {
		assert.False(t, entry.IsDir(), "scratch directory %s left behind", entry.Name())
	}
}
