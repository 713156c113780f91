package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the full process configuration. It is constructed once at
// startup and passed by reference into each component; nothing reads the
// environment after Load returns.
type Config struct {
	// StorageDir is the root directory holding one subdirectory per
	// session key.
	StorageDir string

	// ModelsDir is the root directory holding the speech model
	// directories referenced by the model registry.
	ModelsDir string

	// ModelsConfigPath optionally points at a YAML file overriding the
	// built-in language/model table. Empty means built-ins only.
	ModelsConfigPath string

	// Engine selects the speech recognizer implementation: "vosk" for
	// the local CLI or "openai" for the remote API.
	Engine string

	// RecognizerBinary is the vosk CLI executable.
	RecognizerBinary string

	// OpenAIAPIKey is required only when Engine is "openai".
	OpenAIAPIKey string

	// FFmpegBinary and FFprobeBinary locate the codec tools.
	FFmpegBinary  string
	FFprobeBinary string

	Server ServerConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	Environment  string
}

// LoadEnv loads environment variables from a .env file if one exists.
// Environment variables set system-wide still apply when no file is found.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// Load builds the configuration from the environment, applying defaults and
// validating fail-fast so a misconfigured process never serves requests.
func Load() (*Config, error) {
	cfg := &Config{
		StorageDir:       getEnvOrDefault("STORAGE_DIR", "storage"),
		ModelsDir:        getEnvOrDefault("MODELS_DIR", "models"),
		ModelsConfigPath: strings.TrimSpace(os.Getenv("MODELS_CONFIG")),
		Engine:           getEnvOrDefault("RECOGNIZER_ENGINE", "vosk"),
		RecognizerBinary: getEnvOrDefault("RECOGNIZER_BINARY", "vosk-transcriber"),
		OpenAIAPIKey:     strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		FFmpegBinary:     getEnvOrDefault("FFMPEG_BINARY", "ffmpeg"),
		FFprobeBinary:    getEnvOrDefault("FFPROBE_BINARY", "ffprobe"),
		Server: ServerConfig{
			Host:         getEnvOrDefault("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvOrDefault("SERVER_PORT", "8080"),
			ReadTimeout:  getDurationOrDefault("SERVER_READ_TIMEOUT_SEC", 300),
			WriteTimeout: getDurationOrDefault("SERVER_WRITE_TIMEOUT_SEC", 300),
			IdleTimeout:  getDurationOrDefault("SERVER_IDLE_TIMEOUT_SEC", 120),
			Environment:  getEnvOrDefault("ENVIRONMENT", "development"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks settings that would otherwise fail mid-request.
func (c *Config) Validate() error {
	switch c.Engine {
	case "vosk":
		if c.RecognizerBinary == "" {
			return fmt.Errorf("RECOGNIZER_BINARY must not be empty for the vosk engine")
		}
	case "openai":
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY must be set for the openai engine")
		}
		if !strings.HasPrefix(c.OpenAIAPIKey, "sk-") {
			return fmt.Errorf("invalid OPENAI_API_KEY format: must start with 'sk-'")
		}
	default:
		return fmt.Errorf("unknown recognizer engine %q (expected vosk or openai)", c.Engine)
	}

	if c.StorageDir == "" {
		return fmt.Errorf("STORAGE_DIR must not be empty")
	}
	if c.ModelsDir == "" {
		return fmt.Errorf("MODELS_DIR must not be empty")
	}

	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultSeconds int) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return time.Duration(defaultSeconds) * time.Second
}
