// Package tdx implements the TDX open-data API client and the parking and
// EV-charging data sources built on it.
package tdx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const fetchTimeout = 60 * time.Second

// Client performs authenticated GET requests against the TDX API and
// flattens the varying response envelopes into record lists.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     *TokenSource
	logger     *slog.Logger
}

func NewClient(baseURL string, tokens *TokenSource, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: fetchTimeout},
		baseURL:    baseURL,
		tokens:     tokens,
		logger:     logger.With("component", "tdx_client"),
	}
}

// GetList fetches endpoint and returns its records. TDX wraps some
// responses in an object keyed by one of wrapperKeys instead of a bare
// array; both shapes are accepted. A 404 means the city has no data of
// this type and yields an empty list, not an error.
func (c *Client) GetList(ctx context.Context, endpoint string, wrapperKeys ...string) ([]json.RawMessage, error) {
	url := c.baseURL + endpoint + "?%24format=JSON"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("get access token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		c.logger.Debug("no data for endpoint", "endpoint", endpoint)
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, endpoint)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return unwrapList(body, wrapperKeys)
}

func unwrapList(body []byte, wrapperKeys []string) ([]json.RawMessage, error) {
	var list []json.RawMessage
	if err := json.Unmarshal(body, &list); err == nil {
		return list, nil
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	for _, key := range wrapperKeys {
		raw, ok := wrapped[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("decode %q list: %w", key, err)
		}
		if len(list) > 0 {
			return list, nil
		}
	}

	return nil, nil
}
