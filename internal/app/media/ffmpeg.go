package media

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"speechcut/internal/app/model"
)

// Codec is the boundary to the external container/codec service. The
// pipeline treats demuxing, cutting, and concatenation as opaque
// operations on files.
type Codec interface {
	// ProbeDuration returns the duration of the media file in seconds.
	ProbeDuration(path string) (float64, error)
	// DemuxAudio extracts the audio track of src into dst as mono,
	// 16-bit PCM WAV.
	DemuxAudio(src, dst string) error
	// ExtractSpan cuts the half-open range [span.Start, span.End) out of
	// src into dst. For video the embedded audio track is cut together
	// with the frames so the two stay synchronized.
	ExtractSpan(src, dst string, span model.Span, kind model.OutputKind) error
	// Concat joins the parts in order into dst with hard cuts.
	Concat(parts []string, dst string, kind model.OutputKind) error
}

// FFmpeg implements Codec by shelling out to ffmpeg and ffprobe.
type FFmpeg struct {
	ffmpegBinary  string
	ffprobeBinary string
}

// NewFFmpeg creates an FFmpeg codec using the given binaries.
func NewFFmpeg(ffmpegBinary, ffprobeBinary string) *FFmpeg {
	return &FFmpeg{
		ffmpegBinary:  ffmpegBinary,
		ffprobeBinary: ffprobeBinary,
	}
}

func (f *FFmpeg) ProbeDuration(path string) (float64, error) {
	cmd := exec.Command(f.ffprobeBinary, "-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1", path)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed for %s: %w", path, err)
	}
	duration, err := strconv.ParseFloat(strings.TrimSpace(string(output)), 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable ffprobe duration for %s: %w", path, err)
	}
	if math.IsNaN(duration) || duration < 0 {
		return 0, fmt.Errorf("ffprobe reported invalid duration %f for %s", duration, path)
	}
	return duration, nil
}

func (f *FFmpeg) DemuxAudio(src, dst string) error {
	args := []string{
		"-y",
		"-i", src,
		"-vn",
		"-acodec", "pcm_s16le",
		"-ac", "1",
		dst,
	}
	return f.run(args)
}

func (f *FFmpeg) ExtractSpan(src, dst string, span model.Span, kind model.OutputKind) error {
	args := []string{
		"-y",
		"-ss", formatSeconds(span.Start),
		"-to", formatSeconds(span.End),
		"-i", src,
	}
	if kind == model.OutputVideo {
		// Re-encode so every subclip starts on a keyframe; stream
		// copy would snap the cut to the nearest preceding keyframe
		// and drift audio against video.
		args = append(args,
			"-c:v", "libx264",
			"-preset", "veryfast",
			"-c:a", "aac",
			"-movflags", "+faststart",
		)
	} else {
		args = append(args,
			"-acodec", "pcm_s16le",
			"-ac", "1",
		)
	}
	args = append(args, dst)
	return f.run(args)
}

func (f *FFmpeg) Concat(parts []string, dst string, kind model.OutputKind) error {
	if len(parts) == 0 {
		return fmt.Errorf("nothing to concatenate")
	}

	listPath := dst + ".parts.txt"
	var list bytes.Buffer
	for _, part := range parts {
		fmt.Fprintf(&list, "file '%s'\n", part)
	}
	if err := os.WriteFile(listPath, list.Bytes(), 0o644); err != nil {
		return fmt.Errorf("cannot write concat list: %w", err)
	}
	defer os.Remove(listPath)

	// All parts were produced by ExtractSpan with identical encoding
	// parameters, so stream copy joins them without another re-encode.
	args := []string{
		"-y",
		"-f", "concat",
		"-safe", "0",
		"-i", listPath,
		"-c", "copy",
		dst,
	}
	return f.run(args)
}

func (f *FFmpeg) run(args []string) error {
	cmd := exec.Command(f.ffmpegBinary, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("FFmpeg error: %v, stderr: %s", err, lastLines(stderr.String(), 5))
	}
	return nil
}

// formatSeconds renders a timestamp the way ffmpeg expects seek arguments.
func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', 3, 64)
}

// lastLines keeps ffmpeg error output readable; the interesting message is
// at the tail of its stderr.
func lastLines(s string, n int) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}

// scratchPartPath names a subclip inside the render scratch directory,
// numbered by selection position.
func scratchPartPath(scratchDir string, index int, kind model.OutputKind) string {
	ext := ".wav"
	if kind == model.OutputVideo {
		ext = ".mp4"
	}
	return filepath.Join(scratchDir, fmt.Sprintf("part_%04d%s", index, ext))
}
