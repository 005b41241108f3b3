package espn

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/league"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/team"
	"github.com/riskibarqy/fantasy-dashboard/internal/platform/logging"
	"github.com/riskibarqy/fantasy-dashboard/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-dashboard/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultBaseURL = "https://lm-api-reads.fantasy.espn.com/apis/v3/games/ffl"
	defaultTimeout = 20 * time.Second
	maxBodyBytes   = 16 << 20

	filterHeader = "X-Fantasy-Filter"
	cookieS2     = "espn_s2"
	cookieSWID   = "SWID"
)

var errESPNTransient = crerr.New("espn transient failure")

var _ league.Provider = (*Client)(nil)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	LeagueID       int
	ESPNS2         string
	SWID           string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.BreakerConfig
}

// Client reads one ESPN fantasy football league. Cookies are attached only
// when both espn_s2 and SWID are configured.
type Client struct {
	httpClient *http.Client
	baseURL    string
	leagueID   int
	espnS2     string
	swid       string
	logger     *logging.Logger
	breaker    *resilience.Breaker
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = timeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		leagueID:   cfg.LeagueID,
		espnS2:     strings.TrimSpace(cfg.ESPNS2),
		swid:       strings.TrimSpace(cfg.SWID),
		logger:     logger.With("league_id", cfg.LeagueID),
		breaker:    resilience.NewBreaker(cfg.CircuitBreaker),
	}
}

// HasCredentials reports whether requests carry the private league cookies.
func (c *Client) HasCredentials() bool {
	return c.espnS2 != "" && c.swid != ""
}

func (c *Client) FetchLeagueInfo(ctx context.Context, seasonID int) (league.Info, error) {
	var payload leagueEnvelope
	if err := c.doJSON(ctx, seasonID, []string{"mSettings", "mStatus"}, nil, nil, &payload); err != nil {
		return league.Info{}, crerr.Wrapf(err, "fetch league info league_id=%d season_id=%d", c.leagueID, seasonID)
	}

	info := mapLeagueInfo(payload)
	if info.SeasonID == 0 {
		info.SeasonID = seasonID
	}
	return info, nil
}

func (c *Client) FetchTeams(ctx context.Context, seasonID, scoringPeriodID int) ([]team.Team, error) {
	query := url.Values{}
	if scoringPeriodID > 0 {
		query.Set("scoringPeriodId", fmt.Sprintf("%d", scoringPeriodID))
	}

	var payload teamsEnvelope
	if err := c.doJSON(ctx, seasonID, []string{"mTeam"}, query, nil, &payload); err != nil {
		return nil, crerr.Wrapf(err, "fetch teams league_id=%d season_id=%d", c.leagueID, seasonID)
	}

	out := make([]team.Team, 0, len(payload.Teams))
	for _, item := range payload.Teams {
		out = append(out, mapTeam(item))
	}
	return out, nil
}

func (c *Client) FetchBoxscores(ctx context.Context, seasonID, matchupPeriodID, scoringPeriodID int) ([]lineup.Boxscore, error) {
	query := url.Values{}
	if scoringPeriodID > 0 {
		query.Set("scoringPeriodId", fmt.Sprintf("%d", scoringPeriodID))
	}
	filter := &fantasyFilter{Schedule: scheduleFilter{FilterMatchupPeriodIDs: filterValues{Value: []int{matchupPeriodID}}}}

	var payload scheduleEnvelope
	views := []string{"mMatchupScore", "mBoxscore", "mScoreboard"}
	if err := c.doJSON(ctx, seasonID, views, query, filter, &payload); err != nil {
		return nil, crerr.Wrapf(err, "fetch boxscores league_id=%d season_id=%d matchup_period=%d", c.leagueID, seasonID, matchupPeriodID)
	}

	return mapBoxscores(payload.Schedule, matchupPeriodID, scoringPeriodID), nil
}

func (c *Client) doJSON(ctx context.Context, seasonID int, views []string, query url.Values, filter *fantasyFilter, target any) error {
	values := url.Values{}
	for key, items := range query {
		for _, item := range items {
			values.Add(key, item)
		}
	}
	for _, view := range views {
		values.Add("view", view)
	}

	fullURL := fmt.Sprintf("%s/seasons/%d/segments/0/leagues/%d", c.baseURL, seasonID, c.leagueID)
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	var filterValue string
	if filter != nil {
		raw, err := sonic.Marshal(filter)
		if err != nil {
			return crerr.Wrap(err, "encode fantasy filter")
		}
		filterValue = string(raw)
	}

	var raw []byte
	err := c.breaker.Execute(func() error {
		var reqErr error
		raw, reqErr = c.executeRequest(ctx, fullURL, filterValue)
		return reqErr
	}, isCircuitFailure)
	if err != nil {
		if crerr.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "espn circuit breaker rejected request", "state", string(c.breaker.State()))
			return crerr.Wrapf(usecase.ErrDependencyUnavailable, "espn league_id=%d is temporarily unavailable", c.leagueID)
		}
		return err
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrap(err, "decode espn payload")
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL, filterValue string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, crerr.Wrap(err, "build request")
	}
	req.Header.Set("accept", "application/json")
	if filterValue != "" {
		req.Header.Set(filterHeader, filterValue)
	}
	if c.HasCredentials() {
		req.AddCookie(&http.Cookie{Name: cookieS2, Value: c.espnS2})
		req.AddCookie(&http.Cookie{Name: cookieSWID, Value: c.swid})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		sendErr := crerr.Mark(crerr.Newf("send request: %s", c.sanitize(err.Error())), errESPNTransient)
		c.logger.WarnContext(ctx, "espn request failed", "url", fullURL, "error", sendErr)
		return nil, sendErr
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "read response body"), errESPNTransient)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := crerr.Newf("espn status=%d body=%s", resp.StatusCode, c.sanitize(abbreviateBody(raw)))
		if isRetryableStatus(resp.StatusCode) {
			statusErr = crerr.Mark(statusErr, errESPNTransient)
		}
		c.logger.WarnContext(ctx, "espn request failed", "url", fullURL, "status", resp.StatusCode, "error", statusErr)
		return nil, statusErr
	}

	return raw, nil
}

// sanitize strips cookie values that can leak into transport errors or echoed bodies.
func (c *Client) sanitize(value string) string {
	value = strings.TrimSpace(value)
	for _, secret := range []string{c.espnS2, c.swid} {
		if secret != "" {
			value = strings.ReplaceAll(value, secret, "REDACTED")
		}
	}
	return value
}

// isCircuitFailure counts transport errors and 5xx/429 against the breaker.
// A 401 on a private league is a configuration problem, not an outage.
func isCircuitFailure(err error) bool {
	return crerr.Is(err, errESPNTransient)
}

func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
