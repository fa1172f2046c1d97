package travel

import (
	"context"
	"log"
	"strings"
)

// DefaultBaseCurrency is assumed when the caller does not name a base.
const DefaultBaseCurrency = "USD"

// CurrencyService fetches exchange rates. It has no fallback provider:
// when the provider is unreachable or its key is missing the service reports
// an empty rate table, which callers must read as "rates unavailable".
type CurrencyService struct {
	provider RateProvider
}

// NewCurrencyService creates a CurrencyService backed by a single provider.
func NewCurrencyService(provider RateProvider) *CurrencyService {
	return &CurrencyService{provider: provider}
}

// Rates returns exchange rates relative to base, optionally restricted to
// the given symbols. It never returns an error for upstream problems.
func (s *CurrencyService) Rates(ctx context.Context, base string, symbols []string) (RateTable, error) {
	base = strings.ToUpper(strings.TrimSpace(base))
	if base == "" {
		base = DefaultBaseCurrency
	}

	table := RateTable{
		Base:    base,
		Rates:   map[string]float64{},
		Symbols: symbols,
	}
	if s.provider == nil {
		return table, nil
	}

	rates, err := s.provider.Rates(ctx, base, symbols)
	if err != nil {
		log.Printf("currency: provider %s failed: %v", s.provider.Name(), err)
		return table, nil
	}
	if rates != nil {
		table.Rates = rates
	}
	return table, nil
}
