package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aamart/storefront/pkg/cart"
	"github.com/aamart/storefront/pkg/config"
	"github.com/aamart/storefront/pkg/domain"
)

// PaymentClient talks to the backend checkout-session endpoint.
type PaymentClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewPaymentClient creates a payment gateway client using the configured
// base URL and timeout.
func NewPaymentClient(cfg *config.Backend, logger *slog.Logger) *PaymentClient {
	return &PaymentClient{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		logger:     logger,
	}
}

type createSessionRequest struct {
	Products []cart.LineItem `json:"products"`
}

type createSessionResponse struct {
	ID    string `json:"id"`
	Error string `json:"error,omitempty"`
}

// CreateCheckoutSession posts the cart snapshot and returns the
// server-issued session id. Pricing in the snapshot is display-only; the
// backend recomputes the authoritative amounts from item identities.
func (c *PaymentClient) CreateCheckoutSession(
	ctx context.Context,
	items []cart.LineItem,
) (string, error) {
	log := c.logger.With("context", "CreateCheckoutSession", "items", len(items))

	body, err := json.Marshal(createSessionRequest{Products: items})
	if err != nil {
		return "", fmt.Errorf("%w: encoding checkout request: %w", domain.ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/create-checkout-session", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: building checkout request: %w", domain.ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("checkout session request failed", "error", err)
		return "", fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	var decoded createSessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		log.Error("checkout session response undecodable",
			"status", resp.StatusCode, "error", err)
		return "", fmt.Errorf("%w: decoding checkout response: %w", domain.ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn("checkout session rejected", "status", resp.StatusCode)
		if decoded.Error != "" {
			return "", fmt.Errorf("%w: %s", domain.ErrRemoteRejected, decoded.Error)
		}
		return "", fmt.Errorf("%w: status %d", domain.ErrRemoteRejected, resp.StatusCode)
	}

	if decoded.ID == "" {
		log.Error("checkout session response missing id", "status", resp.StatusCode)
		return "", fmt.Errorf("%w: response carried no session id", domain.ErrTransport)
	}

	log.Info("checkout session created", "session_id", decoded.ID)
	return decoded.ID, nil
}
