package tdx

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const (
	authTimeout = 30 * time.Second

	// TDX tokens are valid for 86400 seconds (one day).
	defaultTokenTTL = 86400 * time.Second

	// refreshMargin renews the token before it actually expires so that
	// in-flight requests never carry a token about to lapse.
	refreshMargin = 5 * time.Minute
)

// AuthConfig holds TDX client-credentials settings.
type AuthConfig struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
}

// TokenSource acquires and caches a TDX bearer token. The cached token is
// shared by all callers; concurrent refreshes are collapsed into a single
// request.
type TokenSource struct {
	httpClient *http.Client
	tokenURL   string
	clientID   string
	secret     string
	logger     *slog.Logger

	mu         sync.Mutex
	token      string
	validUntil time.Time

	group singleflight.Group
}

func NewTokenSource(cfg AuthConfig, logger *slog.Logger) *TokenSource {
	return &TokenSource{
		httpClient: &http.Client{Timeout: authTimeout},
		tokenURL:   cfg.TokenURL,
		clientID:   cfg.ClientID,
		secret:     cfg.ClientSecret,
		logger:     logger.With("component", "tdx_auth"),
	}
}

// Token returns a valid bearer token, refreshing it when the cached one is
// within the refresh margin of expiry.
func (ts *TokenSource) Token(ctx context.Context) (string, error) {
	ts.mu.Lock()
	if ts.token != "" && time.Now().Before(ts.validUntil.Add(-refreshMargin)) {
		token := ts.token
		ts.mu.Unlock()
		return token, nil
	}
	ts.mu.Unlock()

	token, err, _ := ts.group.Do("token", func() (interface{}, error) {
		// The refresh result is shared by every collapsed caller, so it
		// must not die with the caller that happened to trigger it. The
		// client timeout still bounds the request.
		return ts.refresh(context.WithoutCancel(ctx))
	})
	if err != nil {
		return "", err
	}
	return token.(string), nil
}

func (ts *TokenSource) refresh(ctx context.Context) (string, error) {
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {ts.clientID},
		"client_secret": {ts.secret},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ts.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := ts.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if payload.AccessToken == "" {
		return "", fmt.Errorf("token endpoint returned empty access_token")
	}

	ttl := defaultTokenTTL
	if payload.ExpiresIn > 0 {
		ttl = time.Duration(payload.ExpiresIn) * time.Second
	}

	ts.mu.Lock()
	ts.token = payload.AccessToken
	ts.validUntil = time.Now().Add(ttl)
	ts.mu.Unlock()

	ts.logger.Debug("refreshed access token", "expires_in", ttl)

	return payload.AccessToken, nil
}
