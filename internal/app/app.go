package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/fantasy-dashboard/external/espn"
	"github.com/riskibarqy/fantasy-dashboard/internal/config"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/division"
	infraownership "github.com/riskibarqy/fantasy-dashboard/internal/infrastructure/ownership"
	"github.com/riskibarqy/fantasy-dashboard/internal/interfaces/httpapi"
	"github.com/riskibarqy/fantasy-dashboard/internal/platform/logging"
	"github.com/riskibarqy/fantasy-dashboard/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	registry, err := infraownership.LoadRegistry(cfg.OwnershipRegistryPath)
	if err != nil {
		return nil, fmt.Errorf("load ownership registry: %w", err)
	}

	leagueSvc := usecase.NewLeagueService(buildSources(cfg, logger), registry, logger)

	handler := httpapi.NewHandler(leagueSvc, logger)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterOptions{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitEnabled:   cfg.RateLimitEnabled,
		RateLimitRPS:       cfg.RateLimitRPS,
		RateLimitBurst:     cfg.RateLimitBurst,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

// buildSources creates one ESPN client per configured division.
func buildSources(cfg config.Config, logger *logging.Logger) map[division.Division]usecase.DivisionSource {
	sources := make(map[division.Division]usecase.DivisionSource, len(cfg.Divisions))
	for _, div := range division.All() {
		dc, ok := cfg.Divisions[div]
		if !ok {
			continue
		}

		if !dc.HasCredentials() {
			logger.Warn("espn credentials not configured, using anonymous access",
				"division", div.String(),
				"league_id", dc.LeagueID,
			)
		}

		client := espn.NewClient(espn.ClientConfig{
			BaseURL:        cfg.ESPNBaseURL,
			LeagueID:       dc.LeagueID,
			ESPNS2:         dc.ESPNS2,
			SWID:           dc.SWID,
			Timeout:        cfg.ESPNTimeout,
			Logger:         logger.With("division", div.String()),
			CircuitBreaker: cfg.ESPNCircuit,
		})

		sources[div] = usecase.DivisionSource{
			LeagueID: dc.LeagueID,
			SeasonID: dc.SeasonID,
			Provider: client,
		}
	}
	return sources
}
