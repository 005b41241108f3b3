package app

import (
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-dashboard/internal/config"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/division"
	"github.com/riskibarqy/fantasy-dashboard/internal/platform/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func testConfig() config.Config {
	return config.Config{
		HTTPAddr:     ":0",
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
		ESPNBaseURL:  "http://127.0.0.1:1",
		ESPNTimeout:  time.Second,
		Divisions: map[division.Division]config.DivisionConfig{
			division.Green: {LeagueID: 111, SeasonID: 2025, ESPNS2: "s2", SWID: "{swid}"},
			division.White: {LeagueID: 222, SeasonID: 2025},
		},
	}
}

func TestNewHTTPServer(t *testing.T) {
	srv, err := NewHTTPServer(testConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("build server: %v", err)
	}
	if srv.Handler == nil {
		t.Fatalf("expected router to be wired")
	}
	if srv.ReadTimeout != time.Second || srv.WriteTimeout != time.Second {
		t.Fatalf("unexpected timeouts read=%s write=%s", srv.ReadTimeout, srv.WriteTimeout)
	}
}

func TestNewHTTPServer_EmptyAddr(t *testing.T) {
	cfg := testConfig()
	cfg.HTTPAddr = ""
	if _, err := NewHTTPServer(cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}

func TestNewHTTPServer_BadRegistryPath(t *testing.T) {
	cfg := testConfig()
	cfg.OwnershipRegistryPath = t.TempDir() + "/missing.json"
	if _, err := NewHTTPServer(cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for missing registry file")
	}
}

func TestBuildSources_WarnsForAnonymousDivision(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	sources := buildSources(testConfig(), logging.FromZap(zap.New(core)))

	if len(sources) != 2 {
		t.Fatalf("expected both divisions, got %d", len(sources))
	}
	if sources[division.White].LeagueID != 222 || sources[division.White].SeasonID != 2025 {
		t.Fatalf("unexpected white source %+v", sources[division.White])
	}

	warnings := logs.FilterMessage("espn credentials not configured, using anonymous access").All()
	if len(warnings) != 1 {
		t.Fatalf("expected one anonymous warning, got %d", len(warnings))
	}
	if got := warnings[0].ContextMap()["division"]; got != "white" {
		t.Fatalf("expected warning for white division, got %v", got)
	}
}
