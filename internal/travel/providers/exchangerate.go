package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/nettikantis/TravelCompanionApp/internal/travel"
)

// ExchangeRateProvider fetches exchange rates from an exchangerate.host style
// endpoint. The hosted service requires an access key; without one the
// provider reports itself unconfigured and the orchestrator serves an empty
// rate table.
type ExchangeRateProvider struct {
	name      string
	baseURL   string
	accessKey string
	client    *http.Client
}

func NewExchangeRateProvider(client *http.Client, baseURL, accessKey string) *ExchangeRateProvider {
	if baseURL == "" {
		baseURL = "https://api.exchangerate.host/latest"
	}
	return &ExchangeRateProvider{
		name:      "exchangerate",
		baseURL:   baseURL,
		accessKey: accessKey,
		client:    client,
	}
}

func (p *ExchangeRateProvider) Name() string {
	return p.name
}

func (p *ExchangeRateProvider) Rates(ctx context.Context, base string, symbols []string) (map[string]float64, error) {
	if p.accessKey == "" {
		return nil, fmt.Errorf("exchangerate: %w", travel.ErrNotConfigured)
	}

	values := url.Values{}
	values.Set("base", base)
	values.Set("access_key", p.accessKey)
	if len(symbols) > 0 {
		values.Set("symbols", strings.Join(symbols, ","))
	}

	var payload struct {
		Rates map[string]any `json:"rates"`
	}
	if err := getJSON(ctx, p.client, fmt.Sprintf("%s?%s", p.baseURL, values.Encode()), nil, &payload); err != nil {
		return nil, err
	}

	// Non-numeric entries are dropped silently.
	rates := make(map[string]float64, len(payload.Rates))
	for code, v := range payload.Rates {
		if f, ok := v.(float64); ok {
			rates[code] = f
		}
	}
	return rates, nil
}
