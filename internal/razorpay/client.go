package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"
)

// MaxReceiptLen is the gateway's limit on the receipt field.
const MaxReceiptLen = 40

type Config struct {
	KeyID     string
	KeySecret string

	// BaseURL defaults to the production API, e.g. https://api.razorpay.com/v1
	BaseURL string

	Client *http.Client
	Logger *slog.Logger
}

// Client is a minimal Razorpay Orders API client.
type Client struct {
	keyID      string
	keySecret  string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.KeyID) == "" || strings.TrimSpace(cfg.KeySecret) == "" {
		return nil, fmt.Errorf("razorpay: key_id/key_secret are required")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.razorpay.com/v1"
	}
	httpClient := cfg.Client
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		keyID:      cfg.KeyID,
		keySecret:  cfg.KeySecret,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// KeyID returns the publishable key identifier for the checkout widget.
func (c *Client) KeyID() string { return c.keyID }

// Secret returns the key secret used for callback signatures.
func (c *Client) Secret() string { return c.keySecret }

// ToPaise converts rupees to the minor currency unit the API expects.
func ToPaise(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// Receipt builds a receipt token from a timestamp and a due id prefix,
// bounded to MaxReceiptLen.
func Receipt(dueID string, now time.Time) string {
	prefix := dueID
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	r := fmt.Sprintf("%d-%s", now.UnixMilli(), prefix)
	if len(r) > MaxReceiptLen {
		r = r[:MaxReceiptLen]
	}
	return r
}

// CreateOrderRequest describes parameters for order creation.
type CreateOrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

// Order is the created gateway order.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// CreateOrder opens a payment intent with the gateway.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (Order, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Order{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return Order{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Order{}, fmt.Errorf("razorpay: orders request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		c.logger.Error("razorpay order creation failed", "status", resp.Status, "body", trim(string(b), 2000))
		return Order{}, &Error{StatusCode: resp.StatusCode, Status: resp.Status, Body: string(b)}
	}

	var out Order
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Order{}, fmt.Errorf("razorpay: decode order: %w", err)
	}
	if strings.TrimSpace(out.ID) == "" {
		return Order{}, fmt.Errorf("razorpay: empty order id")
	}
	return out, nil
}

func trim(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}

type Error struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	bt := strings.TrimSpace(e.Body)
	if bt == "" {
		return fmt.Sprintf("razorpay error: %s", e.Status)
	}
	return fmt.Sprintf("razorpay error: %s: %s", e.Status, bt)
}
