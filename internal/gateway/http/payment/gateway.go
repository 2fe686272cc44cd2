package payment

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
	"strings"
	"time"

	"quickparcel/internal/entities"
	"quickparcel/internal/gateway/metrics"
	retrierconfig "quickparcel/pkg/retrier"
	"quickparcel/pkg/retrier/backoff_adapter"
)

const serviceName = "razorpay"

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 1 * time.Second
	maxElapsedTime  = 3 * time.Second
	maxRetries      = 3
	randomization   = 0.5
	multiplier      = 2.0
)

type Config struct {
	BaseURL   string
	KeyID     string
	KeySecret string
	Currency  string
	Timeout   time.Duration
}

// Gateway клиент Razorpay Orders/Payments API.
type Gateway struct {
	client  httpClient
	retrier retrier
	config  Config
}

func New(config Config) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		MaxRetries:      maxRetries,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return NewWithClient(&http.Client{Timeout: config.Timeout}, backoff_adapter.New(retryConfig), config)
}

func NewWithClient(client httpClient, retrier retrier, config Config) *Gateway {
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	return &Gateway{
		client:  client,
		retrier: retrier,
		config:  config,
	}
}

// CreateOrder не повторяется: повтор после таймаута может завести второй заказ.
func (g *Gateway) CreateOrder(ctx context.Context, amountMinor int64, receipt string) (*entities.PaymentOrder, error) {
	body, err := json.Marshal(createOrderRequest{
		Amount:         amountMinor,
		Currency:       g.config.Currency,
		Receipt:        receipt,
		PaymentCapture: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("gateway payment, encode order: %w", err)
	}

	start := time.Now()
	var resp orderResponse
	err = g.do(ctx, http.MethodPost, "/v1/orders", body, &resp)
	metrics.Observe(serviceName, "CreateOrder", codeOf(err), start, 1)
	if err != nil {
		return nil, fmt.Errorf("gateway payment, create order: %w", err)
	}

	return &entities.PaymentOrder{
		ID:          resp.ID,
		AmountMinor: resp.Amount,
		Currency:    resp.Currency,
		KeyID:       g.config.KeyID,
	}, nil
}

// FetchPayment идемпотентен, временные сбои повторяются.
func (g *Gateway) FetchPayment(ctx context.Context, paymentID string) (*entities.GatewayPayment, error) {
	var attempt uint64
	start := time.Now()

	var resp paymentResponse
	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return g.do(ctx, http.MethodGet, "/v1/payments/"+url.PathEscape(paymentID), nil, &resp)
	})
	metrics.Observe(serviceName, "FetchPayment", codeOf(err), start, attempt)
	if err != nil {
		return nil, fmt.Errorf("gateway payment, fetch payment %s: %w", paymentID, err)
	}

	return &entities.GatewayPayment{
		ID:          resp.ID,
		OrderID:     resp.OrderID,
		AmountMinor: resp.Amount,
		Status:      entities.GatewayPaymentStatus(resp.Status),
	}, nil
}

func (g *Gateway) do(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.config.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(g.config.KeyID, g.config.KeySecret)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrPaymentNotFound
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errResp errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		return &StatusError{Code: resp.StatusCode, Description: errResp.Error.Description}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		// успешный ответ с битым телом повтором не исправить
		return retrierconfig.Permanent(fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func codeOf(err error) string {
	if err == nil {
		return "OK"
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.Code)
	}
	if errors.Is(err, ErrPaymentNotFound) {
		return strconv.Itoa(http.StatusNotFound)
	}
	return "UNKNOWN"
}
