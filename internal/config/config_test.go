package config

import (
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-dashboard/internal/domain/division"
	"github.com/riskibarqy/fantasy-dashboard/internal/platform/logging"
)

func setRequiredLeagues(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("GREEN_LEAGUE_ID", "1111")
	t.Setenv("GREEN_SEASON_ID", "2025")
	t.Setenv("WHITE_LEAGUE_ID", "2222")
	t.Setenv("WHITE_SEASON_ID", "2025")
	t.Setenv("GREEN_ESPN_S2", "")
	t.Setenv("GREEN_SWID", "")
	t.Setenv("WHITE_ESPN_S2", "")
	t.Setenv("WHITE_SWID", "")
}

func TestLoad_AppEnvValidation(t *testing.T) {
	setRequiredLeagues(t)
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	setRequiredLeagues(t)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	setRequiredLeagues(t)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected uptrace dsn: %q", cfg.UptraceDSN)
	}
}

func TestLoad_DivisionLeaguesRequired(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "missing green league", key: "GREEN_LEAGUE_ID", val: ""},
		{name: "missing white season", key: "WHITE_SEASON_ID", val: ""},
		{name: "non numeric league", key: "WHITE_LEAGUE_ID", val: "abc"},
		{name: "zero season", key: "GREEN_SEASON_ID", val: "0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			setRequiredLeagues(t)
			t.Setenv(tc.key, tc.val)

			_, err := Load()
			if err == nil {
				t.Fatalf("expected error when %s=%q", tc.key, tc.val)
			}
			if !strings.Contains(err.Error(), tc.key) {
				t.Fatalf("expected error to name %s, got %v", tc.key, err)
			}
		})
	}
}

func TestLoad_DivisionConfigParsing(t *testing.T) {
	setRequiredLeagues(t)
	t.Setenv("WHITE_ESPN_S2", " s2-cookie ")
	t.Setenv("WHITE_SWID", "{ABC}")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	green := cfg.Divisions[division.Green]
	if green.LeagueID != 1111 || green.SeasonID != 2025 {
		t.Fatalf("unexpected green division config: %+v", green)
	}
	if green.HasCredentials() {
		t.Fatalf("expected green division without credentials")
	}

	white := cfg.Divisions[division.White]
	if white.LeagueID != 2222 {
		t.Fatalf("unexpected white league id: %d", white.LeagueID)
	}
	if !white.HasCredentials() || white.ESPNS2 != "s2-cookie" || white.SWID != "{ABC}" {
		t.Fatalf("unexpected white credentials: %+v", white)
	}
}

func TestLoad_CredentialPairMustBeComplete(t *testing.T) {
	setRequiredLeagues(t)
	t.Setenv("GREEN_ESPN_S2", "only-half")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when GREEN_ESPN_S2 is set without GREEN_SWID")
	}
}

func TestLoad_ESPNDefaults(t *testing.T) {
	setRequiredLeagues(t)
	t.Setenv("ESPN_TIMEOUT", "")
	t.Setenv("ESPN_CIRCUIT_ENABLED", "")
	t.Setenv("ESPN_BASE_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ESPNTimeout != 20*time.Second {
		t.Fatalf("expected ESPN timeout 20s, got %s", cfg.ESPNTimeout)
	}
	if cfg.ESPNCircuit.Enabled {
		t.Fatalf("expected ESPN circuit breaker disabled by default")
	}
	if cfg.ESPNCircuit.FailureThreshold != 5 || cfg.ESPNCircuit.OpenTimeout != 15*time.Second {
		t.Fatalf("unexpected circuit defaults: %+v", cfg.ESPNCircuit)
	}
	if !strings.HasPrefix(cfg.ESPNBaseURL, "https://lm-api-reads.fantasy.espn.com") {
		t.Fatalf("unexpected ESPN base url: %q", cfg.ESPNBaseURL)
	}
}

func TestLoad_ESPNCircuitValidation(t *testing.T) {
	setRequiredLeagues(t)
	t.Setenv("ESPN_CIRCUIT_ENABLED", "true")
	t.Setenv("ESPN_CIRCUIT_FAILURE_COUNT", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for ESPN_CIRCUIT_FAILURE_COUNT=0")
	}
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	setRequiredLeagues(t)
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	setRequiredLeagues(t)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	setRequiredLeagues(t)
	t.Setenv("APP_SERVICE_NAME", "fantasy-dashboard-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "fantasy-dashboard-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	setRequiredLeagues(t)

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
			t.Fatalf("unexpected second CORS origin: %s", cfg.CORSAllowedOrigins[1])
		}
	})
}

func TestLoad_RateLimitParsing(t *testing.T) {
	setRequiredLeagues(t)

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_ENABLED", "")
		t.Setenv("RATE_LIMIT_RPS", "")
		t.Setenv("RATE_LIMIT_BURST", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.RateLimitEnabled || cfg.RateLimitRPS != 10 || cfg.RateLimitBurst != 20 {
			t.Fatalf("unexpected rate limit defaults: enabled=%v rps=%v burst=%d", cfg.RateLimitEnabled, cfg.RateLimitRPS, cfg.RateLimitBurst)
		}
	})

	t.Run("invalid rps", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_RPS", "-1")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for negative RATE_LIMIT_RPS")
		}
	})
}

func TestLoad_LogFormatByEnv(t *testing.T) {
	setRequiredLeagues(t)

	t.Run("dev uses console", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.LogFormat != logging.FormatConsole {
			t.Fatalf("expected console log format in dev, got %q", cfg.LogFormat)
		}
	})

	t.Run("prod uses json", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("APP_LOG_LEVEL", "warn")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.LogFormat != logging.FormatJSON {
			t.Fatalf("expected json log format in prod, got %q", cfg.LogFormat)
		}
		if cfg.LogLevel != logging.LevelWarn {
			t.Fatalf("expected warn log level, got %s", cfg.LogLevel)
		}
	})
}
