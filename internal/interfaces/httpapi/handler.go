package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/division"
	"github.com/riskibarqy/fantasy-dashboard/internal/platform/logging"
	"github.com/riskibarqy/fantasy-dashboard/internal/usecase"
)

// DashboardQueries is the read side the handlers serve.
type DashboardQueries interface {
	GetSummary(ctx context.Context) (usecase.Summary, error)
	GetLeague(ctx context.Context, div division.Division) (usecase.LeagueSnapshot, error)
	GetRoster(ctx context.Context, div division.Division, teamID int) (usecase.Roster, error)
	GetMatchupDetail(ctx context.Context, div division.Division, homeTeamID, awayTeamID int) (usecase.MatchupDetail, error)
}

type Handler struct {
	queries   DashboardQueries
	logger    *logging.Logger
	validator *validator.Validate
}

func NewHandler(queries DashboardQueries, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		queries:   queries,
		logger:    logger,
		validator: validator.New(),
	}
}

type divisionRequest struct {
	Division string `validate:"required,oneof=green white"`
}

type rosterRequest struct {
	Division string `validate:"required,oneof=green white"`
	TeamID   int    `validate:"gt=0"`
}

type matchupDetailRequest struct {
	Division   string `validate:"required,oneof=green white"`
	HomeTeamID int    `validate:"gt=0"`
	AwayTeamID int    `validate:"gt=0,nefield=HomeTeamID"`
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSummary")
	defer span.End()

	summary, err := h.queries.GetSummary(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get summary failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summaryToDTO(summary))
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	req := divisionRequest{Division: chi.URLParam(r, "division")}
	if err := h.validate(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	snapshot, err := h.queries.GetLeague(ctx, division.Division(req.Division))
	if err != nil {
		h.logger.WarnContext(ctx, "get league failed", "division", req.Division, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, snapshotToDTO(snapshot))
}

func (h *Handler) GetRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRoster")
	defer span.End()

	teamID, err := parseTeamID("teamID", chi.URLParam(r, "teamID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	req := rosterRequest{Division: chi.URLParam(r, "division"), TeamID: teamID}
	if err := h.validate(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	roster, err := h.queries.GetRoster(ctx, division.Division(req.Division), req.TeamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get roster failed", "division", req.Division, "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rosterToDTO(roster))
}

func (h *Handler) GetMatchupDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchupDetail")
	defer span.End()

	homeTeamID, err := parseTeamID("homeTeamID", chi.URLParam(r, "homeTeamID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	awayTeamID, err := parseTeamID("awayTeamID", chi.URLParam(r, "awayTeamID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	req := matchupDetailRequest{
		Division:   chi.URLParam(r, "division"),
		HomeTeamID: homeTeamID,
		AwayTeamID: awayTeamID,
	}
	if err := h.validate(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	detail, err := h.queries.GetMatchupDetail(ctx, division.Division(req.Division), req.HomeTeamID, req.AwayTeamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get matchup detail failed",
			"division", req.Division,
			"home_team_id", req.HomeTeamID,
			"away_team_id", req.AwayTeamID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchupDetailToDTO(detail))
}

func (h *Handler) validate(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: %s", usecase.ErrInvalidInput, describeValidation(err))
	}
	return nil
}

func describeValidation(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err.Error()
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "oneof":
			parts = append(parts, fmt.Sprintf("%s must be one of [%s]", lowerFirst(fe.Field()), fe.Param()))
		case "nefield":
			parts = append(parts, fmt.Sprintf("%s must differ from %s", lowerFirst(fe.Field()), lowerFirst(fe.Param())))
		case "gt":
			parts = append(parts, fmt.Sprintf("%s must be greater than %s", lowerFirst(fe.Field()), fe.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s is %s", lowerFirst(fe.Field()), fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}

// parseTeamID accepts base-10 digits only.
func parseTeamID(name, raw string) (int, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, fmt.Errorf("%w: %s is required", usecase.ErrInvalidInput, name)
	}
	for _, ch := range value {
		if ch < '0' || ch > '9' {
			return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", usecase.ErrInvalidInput, name, raw)
		}
	}
	id, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", usecase.ErrInvalidInput, name, raw)
	}
	return id, nil
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
