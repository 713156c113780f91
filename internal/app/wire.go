//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"speechcut/internal/api/v1/services"
	"speechcut/internal/app/media"
	"speechcut/internal/app/transcribe"
	"speechcut/internal/config"
)

// InitializeEditService builds the full pipeline from configuration.
func InitializeEditService(cfg *config.Config) (services.EditService, error) {
	wire.Build(
		provideStore,
		provideCodec,
		provideRegistry,
		provideRecognizer,
		transcribe.NewCache,
		media.NewIngester,
		media.NewRenderer,
		services.NewEditService,
	)
	return nil, nil
}
