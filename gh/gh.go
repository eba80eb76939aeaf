package gh

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"repo-analyzer/model"
)

const userAgent = "repo-analyzer"

// Client issues GET requests against a GitHub-compatible REST API.
// It holds no per-request state and is safe for concurrent use.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a client for baseURL. Each request is bounded by timeout.
// An empty token sends unauthenticated requests.
func NewClient(baseURL, token string, timeout time.Duration, log *slog.Logger) *Client {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// RepoURL returns the repository metadata URL for id.
func (c *Client) RepoURL(id model.RepoIdentifier) string {
	return fmt.Sprintf("%s/repos/%s/%s", c.baseURL, id.Owner, id.Repository)
}

// API makes a GET request to url and returns the response body. Any status
// outside 2xx is returned as a *StatusError.
func (c *Client) API(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	c.log.Debug("github request",
		"method", http.MethodGet,
		"url", url,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response from %s: %w", url, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newStatusError(http.MethodGet, url, resp, body)
	}

	return body, nil
}
