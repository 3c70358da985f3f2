package pesapal

//go:generate go run go.uber.org/mock/mockgen -source=./pesapal.go -destination=./mocks/pesapal_mock.go -package=mocks

import (
	"bytes"
	"checkinhq/config"
	"checkinhq/infras/otel"
	"checkinhq/shared/timezone"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	authPath   = "/api/Auth/RequestToken"
	orderPath  = "/api/Transactions/SubmitOrderRequest"
	statusPath = "/api/Transactions/GetTransactionStatus"

	otelScopeName = "pesapal"

	// PaymentStatusCompleted is the gateway's terminal success description.
	PaymentStatusCompleted = "COMPLETED"
)

type OrderRequest struct {
	ID             string  `json:"id"`
	Currency       string  `json:"currency"`
	Amount         float64 `json:"amount"`
	Description    string  `json:"description"`
	CallbackURL    string  `json:"callback_url"`
	NotificationID string  `json:"notification_id"`
	BillingAddress Billing `json:"billing_address"`
}

type Billing struct {
	EmailAddress string `json:"email_address"`
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
}

type OrderResponse struct {
	OrderTrackingID string `json:"order_tracking_id"`
	MerchantRef     string `json:"merchant_reference"`
	RedirectURL     string `json:"redirect_url"`
	Status          string `json:"status"`
}

type TransactionStatus struct {
	OrderTrackingID   string  `json:"order_tracking_id"`
	MerchantRef       string  `json:"merchant_reference"`
	PaymentMethod     string  `json:"payment_method"`
	Amount            float64 `json:"amount"`
	Currency          string  `json:"currency"`
	StatusDescription string  `json:"payment_status_description"`
	ConfirmationCode  string  `json:"confirmation_code"`
}

func (t *TransactionStatus) Completed() bool {
	return t.StatusDescription == PaymentStatusCompleted
}

type tokenResponse struct {
	Token      string `json:"token"`
	ExpiryDate string `json:"expiryDate"`
	Status     string `json:"status"`
	Message    string `json:"message"`
}

// Client talks to the Pesapal v3 API.
type Client interface {
	SubmitOrder(ctx context.Context, order OrderRequest) (*OrderResponse, error)
	GetTransactionStatus(ctx context.Context, orderTrackingID string) (*TransactionStatus, error)
}

type clientImpl struct {
	config     *config.Config
	httpClient *http.Client
	otel       otel.Otel

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

func New(cfg *config.Config, otl otel.Otel) Client {
	return &clientImpl{
		config: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Pesapal.TimeoutSeconds) * time.Second,
		},
		otel: otl,
	}
}

func (c *clientImpl) SubmitOrder(ctx context.Context, order OrderRequest) (res *OrderResponse, err error) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+".SubmitOrder")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("pesapal.merchant_reference", order.ID)

	res = &OrderResponse{}
	if err = c.post(ctx, orderPath, order, res); err != nil {
		return nil, err
	}

	if res.RedirectURL == "" {
		return nil, fmt.Errorf("pesapal order %s rejected with status %s", order.ID, res.Status)
	}

	return res, nil
}

func (c *clientImpl) GetTransactionStatus(ctx context.Context, orderTrackingID string) (res *TransactionStatus, err error) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+".GetTransactionStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("pesapal.order_tracking_id", orderTrackingID)

	endpoint := statusPath + "?orderTrackingId=" + url.QueryEscape(orderTrackingID)

	res = &TransactionStatus{}
	if err = c.get(ctx, endpoint, res); err != nil {
		return nil, err
	}

	return res, nil
}

// requestToken refreshes the bearer token when the cached one is gone or stale.
func (c *clientImpl) requestToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && timezone.Now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	payload := map[string]string{
		"consumer_key":    c.config.Pesapal.ConsumerKey,
		"consumer_secret": c.config.Pesapal.ConsumerSecret,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal token request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Pesapal.BaseURL+authPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to request pesapal token: %w", err)
	}
	defer resp.Body.Close()

	var token tokenResponse
	if err = json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("failed to decode pesapal token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || token.Token == "" {
		log.Error().Int("status", resp.StatusCode).Str("message", token.Message).Msg("Pesapal token request rejected")

		return "", fmt.Errorf("pesapal token request rejected with status %d", resp.StatusCode)
	}

	c.token = token.Token
	// The expiry payload is informational only, the token lives 5 minutes.
	c.tokenExpiry = timezone.Now().Add(4 * time.Minute)

	return c.token, nil
}

func (c *clientImpl) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal pesapal request: %w", err)
	}

	return c.do(ctx, http.MethodPost, path, bytes.NewReader(body), out)
}

func (c *clientImpl) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *clientImpl) do(ctx context.Context, method, path string, body io.Reader, out any) error {
	token, err := c.requestToken(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.Pesapal.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build pesapal request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call pesapal %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		log.Error().Int("status", resp.StatusCode).Str("path", path).Bytes("body", raw).Msg("Pesapal request failed")

		return fmt.Errorf("pesapal %s returned status %d", path, resp.StatusCode)
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode pesapal response: %w", err)
	}

	return nil
}
