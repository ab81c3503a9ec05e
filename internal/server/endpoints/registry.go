package endpoints

import (
	"log/slog"

	"github.com/printworks/duplexer/internal/api"
)

// Config holds dependencies needed by some endpoints.
type Config struct {
	Logger         *slog.Logger
	MaxUploadBytes int64
}

// All returns all endpoint instances.
func All(cfg Config) []api.Endpoint {
	return []api.Endpoint{
		&HealthEndpoint{},
		&ProcessEndpoint{Logger: cfg.Logger, MaxUploadBytes: cfg.MaxUploadBytes},

		// Static files (catch-all, must be last)
		&StaticEndpoint{},
	}
}
