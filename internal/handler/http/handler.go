package http

import (
	"github.com/MKhiriev/style-keeper/internal/config"
	"github.com/MKhiriev/style-keeper/internal/logger"
	"github.com/MKhiriev/style-keeper/internal/service"
	"golang.org/x/time/rate"
)

type Handler struct {
	services *service.Services
	cfg      config.Server

	// extractLimiter throttles extraction requests process-wide; each one
	// fans out to two collaborators and rewrites a stored profile.
	extractLimiter *rate.Limiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	limit := rate.Inf
	if cfg.ExtractRateLimit > 0 {
		limit = rate.Limit(cfg.ExtractRateLimit)
	}
	burst := cfg.ExtractBurst
	if burst <= 0 {
		burst = 1
	}

	return &Handler{
		services:       services,
		cfg:            cfg,
		extractLimiter: rate.NewLimiter(limit, burst),
		logger:         logger,
	}
}
