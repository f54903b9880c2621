package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/versioncheck/internal/client/models"
	"github.com/dmitrijs2005/versioncheck/internal/common"
	"github.com/google/uuid"
)

const (
	tokenPath        = "/oauth/token"
	refreshTokenPath = "/oauth/refresh_token"
)

// TokenClient calls the token endpoints under baseURL.
type TokenClient struct {
	baseURL string
	http    *http.Client
}

func NewTokenClient(baseURL string, httpClient *http.Client) *TokenClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &TokenClient{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

type passwordGrantRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	GrantType string `json:"grant_type"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// PasswordGrant logs in with username and password. Any non-2xx answer is
// reported as common.ErrInvalidCredentials.
func (c *TokenClient) PasswordGrant(ctx context.Context, username, password string) (models.TokenPair, error) {
	payload := passwordGrantRequest{Username: username, Password: password, GrantType: "password"}

	pair, status, err := c.exchange(ctx, tokenPath, payload)
	if err != nil {
		return models.TokenPair{}, err
	}
	if status < 200 || status > 299 {
		return models.TokenPair{}, fmt.Errorf("%w: status %d", common.ErrInvalidCredentials, status)
	}
	return pair, nil
}

// Refresh exchanges refreshToken for a new pair. Any non-2xx answer is
// reported as common.ErrRefreshRejected.
func (c *TokenClient) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	pair, status, err := c.exchange(ctx, refreshTokenPath, refreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return models.TokenPair{}, err
	}
	if status < 200 || status > 299 {
		return models.TokenPair{}, fmt.Errorf("%w: status %d", common.ErrRefreshRejected, status)
	}
	return pair, nil
}

// exchange POSTs payload as JSON and decodes a token pair from a 2xx answer.
// For other statuses the pair is empty and only the status is returned.
func (c *TokenClient) exchange(ctx context.Context, path string, payload any) (models.TokenPair, int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return models.TokenPair{}, 0, fmt.Errorf("encode %s request: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return models.TokenPair{}, 0, fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return models.TokenPair{}, 0, fmt.Errorf("%w: POST %s: %w", common.ErrNetworkFailure, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return models.TokenPair{}, resp.StatusCode, nil
	}

	var pair models.TokenPair
	if err := json.NewDecoder(resp.Body).Decode(&pair); err != nil {
		return models.TokenPair{}, resp.StatusCode, fmt.Errorf("%w: decode %s response: %w", common.ErrNetworkFailure, path, err)
	}
	return pair, resp.StatusCode, nil
}
