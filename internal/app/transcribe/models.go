package transcribe

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"speechcut/internal/api/errors"
)

// ModelSelection picks exactly one speech model: a language tag plus, for
// English only, a small/big size flag. Other languages ship a single small
// model and ignore the flag.
type ModelSelection struct {
	Lang        string
	UseBigModel bool
}

// modelEntry holds the model directory names for one language.
type modelEntry struct {
	Small string `yaml:"small"`
	Big   string `yaml:"big,omitempty"`
}

// builtinModels mirrors the model set the service is deployed with.
var builtinModels = map[string]modelEntry{
	"en": {Small: "vosk-model-small-en-us-0.15", Big: "vosk-model-en-us-0.22"},
	"es": {Small: "vosk-model-small-es-0.42"},
	"fr": {Small: "vosk-model-small-fr-0.22"},
	"ru": {Small: "vosk-model-small-ru-0.22"},
	"de": {Small: "vosk-model-small-de-0.15"},
}

// Registry resolves a ModelSelection to a model directory on disk.
type Registry struct {
	modelsDir string
	models    map[string]modelEntry
}

// registryFile is the optional YAML override for the built-in model table.
type registryFile struct {
	Models map[string]modelEntry `yaml:"models"`
}

// NewRegistry builds a registry over modelsDir. When configPath is
// non-empty the YAML file replaces the built-in entries for the languages
// it names; other languages keep their defaults.
func NewRegistry(modelsDir, configPath string) (*Registry, error) {
	models := make(map[string]modelEntry, len(builtinModels))
	for lang, entry := range builtinModels {
		models[lang] = entry
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("cannot read model config %s: %w", configPath, err)
		}
		var file registryFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("cannot parse model config %s: %w", configPath, err)
		}
		for lang, entry := range file.Models {
			if entry.Small == "" {
				return nil, fmt.Errorf("model config %s: language %q has no small model", configPath, lang)
			}
			models[lang] = entry
		}
	}

	return &Registry{
		modelsDir: modelsDir,
		models:    models,
	}, nil
}

// Resolve maps the selection to a model directory and verifies it exists.
// An unrecognized language tag, a size variant the language does not ship,
// or a missing directory all surface as an unknown-model error.
func (r *Registry) Resolve(sel ModelSelection) (string, error) {
	entry, ok := r.models[sel.Lang]
	if !ok {
		return "", errors.NewUnknownModelError(sel.Lang)
	}

	name := entry.Small
	if sel.UseBigModel && entry.Big != "" {
		name = entry.Big
	}

	path := filepath.Join(r.modelsDir, name)
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return "", errors.NewUnknownModelError(sel.Lang)
	}
	return path, nil
}

// Languages returns the language tags the registry can resolve.
func (r *Registry) Languages() []string {
	langs := make([]string, 0, len(r.models))
	for lang := range r.models {
		langs = append(langs, lang)
	}
	return langs
}
