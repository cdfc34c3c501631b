// Package gateway holds the HTTP clients for the remote storefront
// backend: the auth endpoint that issues session tokens and the payment
// endpoint that creates checkout sessions.
//
// Both clients make exactly one attempt per call. Retry policy belongs to
// the user, not to this layer.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aamart/storefront/pkg/config"
	"github.com/aamart/storefront/pkg/domain"
)

// AuthClient talks to the backend login endpoint.
type AuthClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewAuthClient creates an auth gateway client using the configured base
// URL and timeout.
func NewAuthClient(cfg *config.Backend, logger *slog.Logger) *AuthClient {
	return &AuthClient{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		logger:     logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	Error string `json:"error,omitempty"`
}

// Login exchanges credentials for a session token.
//
// A non-2xx response with a structured error payload yields
// domain.ErrRemoteRejected; unreachable backend, timeout or garbled payload
// yield domain.ErrTransport.
func (c *AuthClient) Login(ctx context.Context, email, password string) (string, error) {
	log := c.logger.With("context", "Login", "email", email)

	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return "", fmt.Errorf("%w: encoding login request: %w", domain.ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/login", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: building login request: %w", domain.ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("login request failed", "error", err)
		return "", fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	var decoded loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		log.Error("login response undecodable", "status", resp.StatusCode, "error", err)
		return "", fmt.Errorf("%w: decoding login response: %w", domain.ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn("login rejected", "status", resp.StatusCode)
		if decoded.Error != "" {
			return "", fmt.Errorf("%w: %s", domain.ErrRemoteRejected, decoded.Error)
		}
		return "", fmt.Errorf("%w: status %d", domain.ErrRemoteRejected, resp.StatusCode)
	}

	if decoded.Token == "" {
		log.Error("login response missing token", "status", resp.StatusCode)
		return "", fmt.Errorf("%w: response carried no token", domain.ErrTransport)
	}

	log.Info("login successful")
	return decoded.Token, nil
}
