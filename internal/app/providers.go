package app

import (
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"speechcut/internal/app/media"
	"speechcut/internal/app/session"
	"speechcut/internal/app/transcribe"
	"speechcut/internal/config"
)

func provideStore(cfg *config.Config) *session.Store {
	return session.NewStore(cfg.StorageDir)
}

func provideCodec(cfg *config.Config) media.Codec {
	return media.NewFFmpeg(cfg.FFmpegBinary, cfg.FFprobeBinary)
}

func provideRegistry(cfg *config.Config) (*transcribe.Registry, error) {
	return transcribe.NewRegistry(cfg.ModelsDir, cfg.ModelsConfigPath)
}

// provideRecognizer selects the speech engine: the local vosk CLI by
// default, or the OpenAI API when configured.
func provideRecognizer(cfg *config.Config, registry *transcribe.Registry) (transcribe.Recognizer, error) {
	switch cfg.Engine {
	case "vosk":
		return transcribe.NewVoskRecognizer(cfg.RecognizerBinary, registry), nil
	case "openai":
		return transcribe.NewOpenAIRecognizer(openai.NewClient(cfg.OpenAIAPIKey), registry), nil
	default:
		return nil, fmt.Errorf("unknown recognizer engine %q", cfg.Engine)
	}
}
