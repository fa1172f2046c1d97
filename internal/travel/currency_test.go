package travel

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRateProvider struct {
	name  string
	rates map[string]float64
	err   error
}

func (s *stubRateProvider) Name() string { return s.name }

func (s *stubRateProvider) Rates(_ context.Context, _ string, _ []string) (map[string]float64, error) {
	return s.rates, s.err
}

func TestRatesSuccess(t *testing.T) {
	svc := NewCurrencyService(&stubRateProvider{
		name:  "exchangerate",
		rates: map[string]float64{"EUR": 0.92, "GBP": 0.79},
	})

	table, err := svc.Rates(context.Background(), "usd", []string{"EUR", "GBP"})
	require.NoError(t, err)
	assert.Equal(t, "USD", table.Base)
	assert.Equal(t, 0.92, table.Rates["EUR"])
	assert.Equal(t, []string{"EUR", "GBP"}, table.Symbols)
}

func TestRatesUnavailableYieldsEmptyTableNotError(t *testing.T) {
	svc := NewCurrencyService(&stubRateProvider{
		name: "exchangerate",
		err:  ErrNotConfigured,
	})

	table, err := svc.Rates(context.Background(), "USD", nil)
	require.NoError(t, err)
	// Empty means "rates unavailable", never "zero rates for all currencies".
	assert.NotNil(t, table.Rates)
	assert.Empty(t, table.Rates)
}

func TestRatesProviderFailureYieldsEmptyTable(t *testing.T) {
	svc := NewCurrencyService(&stubRateProvider{
		name: "exchangerate",
		err:  errors.New("connection refused"),
	})

	table, err := svc.Rates(context.Background(), "", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseCurrency, table.Base)
	assert.Empty(t, table.Rates)
}
