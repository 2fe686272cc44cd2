package distance

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"quickparcel/internal/gateway/metrics"
)

const (
	serviceName = "google-distance-matrix"
	matrixPath  = "/maps/api/distancematrix/json"
	statusOK    = "OK"
)

// Gateway клиент Google Distance Matrix. Ошибки вызывающий переводит в fallback расстояние.
type Gateway struct {
	client  httpClient
	baseURL string
	apiKey  string
}

func New(baseURL, apiKey string, timeout time.Duration) *Gateway {
	return NewWithClient(&http.Client{Timeout: timeout}, baseURL, apiKey)
}

func NewWithClient(client httpClient, baseURL, apiKey string) *Gateway {
	return &Gateway{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

// DistanceKm расстояние по дорогам между двумя адресами в километрах.
func (g *Gateway) DistanceKm(ctx context.Context, origin, destination string) (float64, error) {
	if g.apiKey == "" {
		return 0, ErrNotConfigured
	}

	start := time.Now()
	km, code, err := g.fetch(ctx, origin, destination)
	metrics.Observe(serviceName, "DistanceMatrix", code, start, 1)
	if err != nil {
		return 0, fmt.Errorf("gateway distance: %w", err)
	}

	return km, nil
}

func (g *Gateway) fetch(ctx context.Context, origin, destination string) (float64, string, error) {
	query := url.Values{}
	query.Set("origins", origin)
	query.Set("destinations", destination)
	query.Set("units", "metric")
	query.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+matrixPath+"?"+query.Encode(), nil)
	if err != nil {
		return 0, "REQUEST", fmt.Errorf("create request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return 0, "TRANSPORT", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	code := http.StatusText(resp.StatusCode)
	if resp.StatusCode != http.StatusOK {
		return 0, code, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var matrix matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&matrix); err != nil {
		return 0, code, fmt.Errorf("decode response: %w", err)
	}

	if matrix.Status != statusOK {
		return 0, matrix.Status, fmt.Errorf("%w: %s %s", ErrBadStatus, matrix.Status, matrix.ErrorMessage)
	}
	if len(matrix.Rows) == 0 || len(matrix.Rows[0].Elements) == 0 {
		return 0, matrix.Status, ErrNoRoute
	}

	element := matrix.Rows[0].Elements[0]
	if element.Status != statusOK || element.Distance == nil {
		return 0, element.Status, fmt.Errorf("%w: %s", ErrNoRoute, element.Status)
	}

	return float64(element.Distance.Value) / 1000, statusOK, nil
}
