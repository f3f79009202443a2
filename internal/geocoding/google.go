// Package geocoding resolves facility addresses to coordinates through
// the Google Maps Geocoding API.
package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"
	geocodeTimeout = 10 * time.Second
)

type Config struct {
	APIKey  string
	BaseURL string
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: geocodeTimeout},
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		logger:     logger.With("component", "geocoding"),
	}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// GeocodeAddress resolves a free-text address to coordinates. The query is
// suffixed with the city and "Taiwan" when missing to keep results in
// region. found is false when the API has no match; only transport and
// decoding problems are errors.
func (c *Client) GeocodeAddress(ctx context.Context, address, city string) (lat, lng float64, found bool, err error) {
	query := strings.TrimSpace(address)
	if query == "" {
		return 0, 0, false, nil
	}
	if city != "" && !strings.Contains(query, city) {
		query = fmt.Sprintf("%s, %s, Taiwan", query, city)
	} else if !strings.Contains(query, "Taiwan") && !strings.Contains(query, "台灣") {
		query += ", Taiwan"
	}

	params := url.Values{
		"address":  {query},
		"key":      {c.apiKey},
		"language": {"zh-TW"},
		"region":   {"tw"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return 0, 0, false, fmt.Errorf("create geocode request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, 0, false, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return 0, 0, false, fmt.Errorf("decode geocode response: %w", err)
	}

	if decoded.Status != "OK" || len(decoded.Results) == 0 {
		c.logger.Debug("no geocoding match", "status", decoded.Status, "query", query)
		return 0, 0, false, nil
	}

	loc := decoded.Results[0].Geometry.Location
	return loc.Lat, loc.Lng, true, nil
}
