package transcribe

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"

	"speechcut/internal/api/errors"
	"speechcut/internal/app/model"
)

// VoskRecognizer runs a local vosk CLI against a model directory resolved
// by the registry. The CLI writes one JSON object per recognized utterance,
// each carrying word-level timestamps.
type VoskRecognizer struct {
	binaryPath string
	registry   *Registry
}

// NewVoskRecognizer creates a recognizer execing binaryPath with models
// from the registry.
func NewVoskRecognizer(binaryPath string, registry *Registry) *VoskRecognizer {
	return &VoskRecognizer{
		binaryPath: binaryPath,
		registry:   registry,
	}
}

// voskWord is one word entry inside an utterance result.
type voskWord struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Conf  float64 `json:"conf"`
}

// voskUtterance is one line of recognizer output.
type voskUtterance struct {
	Result []voskWord `json:"result"`
	Text   string     `json:"text"`
}

func (v *VoskRecognizer) Recognize(ctx context.Context, audioPath string, sel ModelSelection) (model.Transcript, error) {
	modelPath, err := v.registry.Resolve(sel)
	if err != nil {
		return nil, err
	}

	outFile, err := os.CreateTemp("", "vosk-*.jsonl")
	if err != nil {
		return nil, errors.NewStorageError(err)
	}
	outPath := outFile.Name()
	outFile.Close()
	defer os.Remove(outPath)

	args := []string{
		"-m", modelPath,
		"-i", audioPath,
		"-t", "json",
		"-o", outPath,
	}

	cmd := exec.CommandContext(ctx, v.binaryPath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	log.Printf("running recognizer: %s %s\n", v.binaryPath, strings.Join(args, " "))

	if err := cmd.Run(); err != nil {
		return nil, errors.NewTranscriptionFailedError(
			fmt.Errorf("recognizer error: %v, stderr: %s", err, strings.TrimSpace(stderr.String())))
	}

	output, err := os.ReadFile(outPath)
	if err != nil {
		return nil, errors.NewTranscriptionFailedError(fmt.Errorf("cannot read recognizer output: %w", err))
	}

	transcript, err := parseVoskOutput(output)
	if err != nil {
		return nil, errors.NewTranscriptionFailedError(err)
	}
	return transcript, nil
}

// parseVoskOutput flattens utterance lines into a single word sequence.
// Blank lines are skipped; utterances with no word results (silence,
// non-speech) contribute nothing.
func parseVoskOutput(output []byte) (model.Transcript, error) {
	var words []model.Word

	scanner := bufio.NewScanner(bytes.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var utterance voskUtterance
		if err := json.Unmarshal([]byte(line), &utterance); err != nil {
			return nil, fmt.Errorf("malformed recognizer output line: %w", err)
		}
		for _, w := range utterance.Result {
			words = append(words, model.Word{
				Text:  w.Word,
				Start: w.Start,
				End:   w.End,
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading recognizer output: %w", err)
	}

	return normalizeTranscript(words), nil
}
