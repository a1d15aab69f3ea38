package apa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client talks to the league GraphQL API. Requests are sent one at a time
// through a token bucket limiter.
type Client struct {
	httpClient *http.Client
	cfg        Config
	limiter    *rate.Limiter
	logger     *zap.Logger

	mu          sync.RWMutex
	accessToken string
}

// NewClient creates an API client from cfg.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	limit := rate.Inf
	if cfg.RequestsPerMinute > 0 {
		limit = rate.Limit(float64(cfg.RequestsPerMinute) / 60.0)
	}

	return &Client{
		httpClient: &http.Client{Timeout: time.Duration(timeout) * time.Second},
		cfg:        cfg,
		limiter:    rate.NewLimiter(limit, 1),
		logger:     logger,
	}
}

type operation struct {
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
	Query         string         `json:"query"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type operationResult struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// Authenticate exchanges refreshToken for an access token, which later
// queries send in the authorization header.
func (c *Client) Authenticate(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", &APIError{Operation: opGenerateAccessToken, Message: "refresh token is empty"}
	}

	var data struct {
		GenerateAccessToken *struct {
			AccessToken string `json:"accessToken"`
		} `json:"generateAccessToken"`
	}
	err := c.do(ctx, operation{
		OperationName: opGenerateAccessToken,
		Variables:     map[string]any{"refreshToken": refreshToken},
		Query:         generateAccessTokenMutation,
	}, "", &data)
	if err != nil {
		return "", err
	}

	if data.GenerateAccessToken == nil || data.GenerateAccessToken.AccessToken == "" {
		return "", &APIError{Operation: opGenerateAccessToken, Message: "response has no access token"}
	}

	c.mu.Lock()
	c.accessToken = data.GenerateAccessToken.AccessToken
	c.mu.Unlock()

	c.logger.Info("Access token obtained")
	return data.GenerateAccessToken.AccessToken, nil
}

// FetchRoster returns the division with every team's roster.
func (c *Client) FetchRoster(ctx context.Context, divisionID int) (*Division, error) {
	division, err := c.fetchDivision(ctx, opDivisionRosters, divisionRostersQuery, divisionID)
	if err != nil {
		return nil, err
	}
	c.logger.Info("Division roster received",
		zap.Int("division_id", divisionID),
		zap.Int("teams", len(division.ActiveTeams())),
	)
	return division, nil
}

// FetchSchedule returns the division with its teams and weekly schedule.
func (c *Client) FetchSchedule(ctx context.Context, divisionID int) (*Division, error) {
	division, err := c.fetchDivision(ctx, opDivisionSchedule, divisionScheduleQuery, divisionID)
	if err != nil {
		return nil, err
	}

	matches := 0
	for _, w := range division.Schedule {
		if !w.Skip {
			matches += len(w.Matches)
		}
	}
	c.logger.Info("Division schedule received",
		zap.Int("division_id", divisionID),
		zap.Int("weeks", len(division.Schedule)),
		zap.Int("matches", matches),
	)
	return division, nil
}

func (c *Client) fetchDivision(ctx context.Context, name, query string, divisionID int) (*Division, error) {
	c.mu.RLock()
	token := c.accessToken
	c.mu.RUnlock()
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	var data struct {
		Division *Division `json:"division"`
	}
	err := c.do(ctx, operation{
		OperationName: name,
		Variables:     map[string]any{"id": divisionID},
		Query:         query,
	}, token, &data)
	if err != nil {
		return nil, err
	}
	if data.Division == nil {
		return nil, &APIError{Operation: name, Message: fmt.Sprintf("division %d missing from response", divisionID)}
	}
	return data.Division, nil
}

// do sends op as a single-element batch and decodes the first result's data into out.
func (c *Client) do(ctx context.Context, op operation, token string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	body, err := json.Marshal([]operation{op})
	if err != nil {
		return fmt.Errorf("encode %s: %w", op.OperationName, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req, token)

	c.logger.Debug("GraphQL request", zap.String("operation", op.OperationName))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Operation: op.OperationName, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Operation: op.OperationName, StatusCode: resp.StatusCode, Message: truncate(raw, 200)}
	}

	var results []operationResult
	if err := json.Unmarshal(raw, &results); err != nil {
		return &APIError{Operation: op.OperationName, StatusCode: resp.StatusCode, Message: "decode response: " + truncate(raw, 200), Err: err}
	}
	if len(results) == 0 {
		return &APIError{Operation: op.OperationName, StatusCode: resp.StatusCode, Message: "empty batch response"}
	}

	result := results[0]
	if len(result.Errors) > 0 {
		msgs := make([]string, len(result.Errors))
		for i, e := range result.Errors {
			msgs[i] = e.Message
		}
		return &APIError{Operation: op.OperationName, StatusCode: resp.StatusCode, Message: strings.Join(msgs, "; ")}
	}
	if len(result.Data) == 0 || string(result.Data) == "null" {
		return &APIError{Operation: op.OperationName, StatusCode: resp.StatusCode, Message: "response has no data"}
	}

	if err := json.Unmarshal(result.Data, out); err != nil {
		return &APIError{Operation: op.OperationName, StatusCode: resp.StatusCode, Message: "decode data", Err: err}
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request, token string) {
	req.Header.Set("accept", "*/*")
	req.Header.Set("accept-language", "en-US,en;q=0.9")
	req.Header.Set("content-type", "application/json")
	req.Header.Set("apollographql-client-name", c.cfg.ClientName)
	req.Header.Set("apollographql-client-version", c.cfg.ClientVersion)
	if c.cfg.Origin != "" {
		req.Header.Set("origin", c.cfg.Origin)
		req.Header.Set("referer", strings.TrimSuffix(c.cfg.Origin, "/")+"/")
	}
	if c.cfg.UserAgent != "" {
		req.Header.Set("user-agent", c.cfg.UserAgent)
	}
	if token != "" {
		req.Header.Set("authorization", token)
	}
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
