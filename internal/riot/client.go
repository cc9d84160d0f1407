// Package riot provides the outbound Riot Games API client shared by every
// upstream lookup (account-v1, match-v5).
//
// All calls go through a single token-bucket limiter sized for the dev-key
// budget, carry the X-Riot-Token header, and retry transient failures with
// exponential backoff.
package riot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultTimeout = 10 * time.Second

	maxAttempts   = 3
	baseBackoff   = 1 * time.Second
	retryAfterCap = 30 * time.Second
)

// Client is a rate-limited, retrying Riot API client bound to one regional
// routing value (americas, europe, asia, sea).
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
	logger     *slog.Logger

	// sleep is swappable so retry tests don't wait out real backoffs.
	sleep func(ctx context.Context, d time.Duration) error
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the regional base URL (useful for testing).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithTimeout overrides the per-call HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// NewClient creates a Riot API client. requestsPer2Min sizes the shared token
// bucket; keep it under the key's published budget.
func NewClient(region, apiKey string, requestsPer2Min int, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if requestsPer2Min < 1 {
		requestsPer2Min = 1
	}
	rps := float64(requestsPer2Min) / 120.0
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    fmt.Sprintf("https://%s.api.riotgames.com", region),
		apiKey:     apiKey,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		logger:     logger,
		sleep:      sleepCtx,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get performs a rate-limited GET with retry/backoff and decodes the JSON
// response into result. Terminal 4xx codes fail on the first attempt; 429 and
// 5xx are retried up to maxAttempts with the backoff doubling each round.
func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	var lastErr error
	backoff := baseBackoff

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		body, err := c.doOnce(ctx, path)
		if err == nil {
			if err := json.Unmarshal(body, result); err != nil {
				return fmt.Errorf("decode %s: %w", path, err)
			}
			return nil
		}
		lastErr = err

		if apiErr, ok := err.(*APIError); ok && !apiErr.Retryable() {
			return err
		}
		if attempt == maxAttempts {
			break
		}

		wait := backoff
		if apiErr, ok := err.(*APIError); ok && apiErr.StatusCode == http.StatusTooManyRequests {
			if ra := retryAfterOf(apiErr); ra > wait {
				wait = ra
			}
		}
		c.logger.Warn("riot request failed, retrying",
			"path", path, "attempt", attempt, "backoff", wait, "error", err)
		if err := c.sleep(ctx, wait); err != nil {
			return err
		}
		backoff *= 2
	}

	return lastErr
}

// doOnce performs exactly one HTTP round trip.
func (c *Client) doOnce(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Riot-Token", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Path:       path,
			Body:       truncate(body, 200),
		}
		if resp.StatusCode == http.StatusTooManyRequests {
			apiErr.retryAfter = parseRetryAfter(resp.Header.Get("Retry-After"))
		}
		return nil, apiErr
	}

	return body, nil
}

// --------------------------------------------------------------------------
// Endpoints
// --------------------------------------------------------------------------

// AccountByRiotID resolves a gameName#tagLine pair to an account (PUUID).
func (c *Client) AccountByRiotID(ctx context.Context, gameName, tagLine string) (*Account, error) {
	path := fmt.Sprintf("/riot/account/v1/accounts/by-riot-id/%s/%s",
		url.PathEscape(gameName), url.PathEscape(tagLine))

	var account Account
	if err := c.get(ctx, path, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// MatchIDs fetches the recency-descending match ID list for a player.
// queue > 0 applies the upstream's server-side queue filter.
func (c *Client) MatchIDs(ctx context.Context, puuid string, queue, count int) ([]string, error) {
	params := url.Values{}
	params.Set("count", strconv.Itoa(count))
	if queue > 0 {
		params.Set("queue", strconv.Itoa(queue))
	}
	path := fmt.Sprintf("/lol/match/v5/matches/by-puuid/%s/ids?%s",
		url.PathEscape(puuid), params.Encode())

	var ids []string
	if err := c.get(ctx, path, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// Match fetches full match detail by ID.
func (c *Client) Match(ctx context.Context, matchID string) (*Match, error) {
	path := "/lol/match/v5/matches/" + url.PathEscape(matchID)

	var match Match
	if err := c.get(ctx, path, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

// --------------------------------------------------------------------------
// Helpers
// --------------------------------------------------------------------------

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 0
	}
	secs, err := strconv.Atoi(header)
	if err != nil || secs < 0 {
		return 0
	}
	d := time.Duration(secs) * time.Second
	if d > retryAfterCap {
		d = retryAfterCap
	}
	return d
}

func retryAfterOf(e *APIError) time.Duration { return e.retryAfter }

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
