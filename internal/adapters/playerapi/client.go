package playerapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Amund211/roster/internal/domain"
	"github.com/Amund211/roster/internal/logging"
	"github.com/Amund211/roster/internal/reporting"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const userAgent = "roster/1.0"

type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewHTTPClient returns a client with a request timeout, traced by otelhttp
func NewHTTPClient() *http.Client {
	return &http.Client{
		Timeout:   10 * time.Second,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

type Client struct {
	httpClient HttpClient
	playersURL string
}

// cohortURL is the root of the cohort, the players collection lives at cohortURL/players
func NewClient(httpClient HttpClient, cohortURL string) (*Client, error) {
	parsed, err := url.Parse(cohortURL)
	if err != nil {
		return nil, fmt.Errorf("invalid cohort url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid cohort url: %s", cohortURL)
	}

	return &Client{
		httpClient: httpClient,
		playersURL: parsed.JoinPath("players").String(),
	}, nil
}

func (c *Client) playerURL(id domain.PlayerID) string {
	return fmt.Sprintf("%s/%s", c.playersURL, url.PathEscape(string(id)))
}

func (c *Client) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	data, statusCode, err := c.do(ctx, "list", http.MethodGet, c.playersURL, nil)
	if err != nil {
		return nil, err
	}

	players, err := playersFromListResponse(statusCode, data)
	if err != nil {
		return nil, c.handleResponseError(ctx, "list", err, statusCode, data)
	}

	return players, nil
}

func (c *Client) GetPlayer(ctx context.Context, id domain.PlayerID) (domain.Player, error) {
	data, statusCode, err := c.do(ctx, "get", http.MethodGet, c.playerURL(id), nil)
	if err != nil {
		return domain.Player{}, err
	}

	player, err := playerFromGetResponse(statusCode, data)
	if err != nil {
		return domain.Player{}, c.handleResponseError(ctx, "get", err, statusCode, data)
	}

	return player, nil
}

func (c *Client) CreatePlayer(ctx context.Context, draft domain.PlayerDraft) (domain.Player, error) {
	body, err := json.Marshal(newCreateRequest(draft))
	if err != nil {
		err := fmt.Errorf("failed to marshal create request: %w", err)
		reporting.Report(ctx, err)
		return domain.Player{}, err
	}

	data, statusCode, err := c.do(ctx, "create", http.MethodPost, c.playersURL, body)
	if err != nil {
		return domain.Player{}, err
	}

	player, err := playerFromCreateResponse(statusCode, data)
	if err != nil {
		return domain.Player{}, c.handleResponseError(ctx, "create", err, statusCode, data)
	}

	return player, nil
}

func (c *Client) DeletePlayer(ctx context.Context, id domain.PlayerID) error {
	data, statusCode, err := c.do(ctx, "delete", http.MethodDelete, c.playerURL(id), nil)
	if err != nil {
		return err
	}

	if err := checkDeleteResponse(statusCode, data); err != nil {
		return c.handleResponseError(ctx, "delete", err, statusCode, data)
	}

	return nil
}

// Report unexpected response errors, pass expected ones through
func (c *Client) handleResponseError(ctx context.Context, operation string, err error, statusCode int, data []byte) error {
	if errors.Is(err, domain.ErrPlayerNotFound) || errors.Is(err, domain.ErrTemporarilyUnavailable) {
		return err
	}

	err = fmt.Errorf("failed to %s players: %w", operation, err)
	reporting.Report(ctx, err, map[string]string{
		"data":   string(data),
		"status": strconv.Itoa(statusCode),
	})
	return err
}

func (c *Client) do(ctx context.Context, operation string, method string, url string, body []byte) ([]byte, int, error) {
	logger := logging.FromContext(ctx)

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		err := fmt.Errorf("failed to create request: %w", err)
		reporting.Report(ctx, err)
		return nil, -1, err
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		recordRequest(ctx, operation, method, -1)
		err := fmt.Errorf("%w: failed to send request: %w", domain.ErrNetworkFailure, err)
		reporting.Report(ctx, err)
		return nil, -1, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		recordRequest(ctx, operation, method, -1)
		err := fmt.Errorf("%w: failed to read response body: %w", domain.ErrNetworkFailure, err)
		reporting.Report(ctx, err)
		return nil, -1, err
	}

	recordRequest(ctx, operation, method, resp.StatusCode)
	logger.InfoContext(ctx, "roster API request completed",
		"operation", operation,
		"method", method,
		"url", url,
		"status", resp.StatusCode,
		"duration", time.Since(start).String(),
	)

	return data, resp.StatusCode, nil
}
