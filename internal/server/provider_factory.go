package server

import (
	"log/slog"
	"net/http"

	"scoreboard-service/internal/config"
	"scoreboard-service/internal/providers"
	"scoreboard-service/internal/providers/espn"
	"scoreboard-service/internal/providers/fixture"
)

// buildProvider assembles the configured score source behind the retry
// wrapper.
func buildProvider(cfg *config.Config, logger *slog.Logger) providers.ScoreProvider {
	var base providers.ScoreProvider
	switch cfg.Provider {
	case "fixture":
		base = fixture.New()
	default:
		base = espn.NewClient(espn.Config{
			BaseURL:    cfg.ESPNBaseURL,
			HTTPClient: &http.Client{Timeout: cfg.ESPNTimeout},
		})
	}
	return providers.NewRetryingProvider(base, logger, cfg.RetryAttempts, cfg.RetryBackoff)
}
