package service

import (
	"fmt"

	"github.com/MKhiriev/style-keeper/internal/adapter"
	"github.com/MKhiriev/style-keeper/internal/config"
	"github.com/MKhiriev/style-keeper/internal/crypto"
	"github.com/MKhiriev/style-keeper/internal/logger"
	"github.com/MKhiriev/style-keeper/internal/store"
	"github.com/MKhiriev/style-keeper/internal/style"
	"github.com/MKhiriev/style-keeper/internal/validators"
)

type Services struct {
	StyleProfileService StyleProfileService
	AuthService         AuthService
	AppInfoService      AppInfoService
}

// NewServices wires the service layer. The style profile service is wrapped
// with request validation.
func NewServices(
	storages *store.Storages,
	codec crypto.Codec,
	extractor style.Extractor,
	plans adapter.PlanProvider,
	comments adapter.CommentFetcher,
	validator validators.Validator,
	cfg config.App,
	logger *logger.Logger,
) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	styleProfileService := NewStyleProfileService(storages.StyleProfileRepository, codec, extractor, plans, comments, logger)

	return &Services{
		StyleProfileService: NewStyleProfileValidationService(validator).Wrap(styleProfileService),
		AuthService:         NewAuthService(cfg, logger),
		AppInfoService:      appInfoService,
	}, nil
}
