package razorpay

import (
	"context"
	"errors"
	"fmt"
	"strings"

	razorpay "github.com/razorpay/razorpay-go"

	"github.com/vedicwisdom/funnel-backend/pkg/config"
	"github.com/vedicwisdom/funnel-backend/pkg/logger"
)

var (
	errKeyIDRequired  = errors.New("razorpay key id is required")
	errSecretRequired = errors.New("razorpay key secret is required")
)

// Order is the subset of the gateway order we hand back to the client.
type Order struct {
	ID       string
	Amount   int64
	Currency string
}

// Client wraps the Razorpay SDK plus the server-held signing secret.
type Client struct {
	api       *razorpay.Client
	keySecret string
}

// NewClient initializes the Razorpay SDK once with the configured keys.
func NewClient(ctx context.Context, cfg config.RazorpayConfig, logg *logger.Logger) (*Client, error) {
	keyID := strings.TrimSpace(cfg.KeyID)
	if keyID == "" {
		return nil, errKeyIDRequired
	}
	keySecret := strings.TrimSpace(cfg.KeySecret)
	if keySecret == "" {
		return nil, errSecretRequired
	}

	api := razorpay.NewClient(keyID, keySecret)

	if logg != nil {
		logg.Info(ctx, "razorpay client initialized")
	}

	return &Client{api: api, keySecret: keySecret}, nil
}

// KeySecret returns the server-held secret used for signature verification.
func (c *Client) KeySecret() string {
	if c == nil {
		return ""
	}
	return c.keySecret
}

// CreateOrder creates a gateway order for the given amount in minor units.
// The SDK is not context-aware; ctx is accepted for interface symmetry.
func (c *Client) CreateOrder(_ context.Context, amount int64, currency, receipt string) (*Order, error) {
	if c == nil || c.api == nil {
		return nil, errors.New("razorpay client not initialized")
	}
	if amount <= 0 {
		return nil, fmt.Errorf("invalid order amount %d", amount)
	}
	if currency == "" {
		currency = "INR"
	}

	data := map[string]interface{}{
		"amount":          amount,
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}

	body, err := c.api.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("creating razorpay order: %w", err)
	}

	order := &Order{Currency: currency, Amount: amount}
	if id, ok := body["id"].(string); ok {
		order.ID = id
	}
	if order.ID == "" {
		return nil, errors.New("razorpay order response missing id")
	}
	if amt, ok := body["amount"].(float64); ok {
		order.Amount = int64(amt)
	}
	if cur, ok := body["currency"].(string); ok && cur != "" {
		order.Currency = cur
	}
	return order, nil
}
