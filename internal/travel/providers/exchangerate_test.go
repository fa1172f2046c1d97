package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nettikantis/TravelCompanionApp/internal/travel"
)

func TestExchangeRateRates(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `{"base": "USD", "rates": {"EUR": 0.92, "GBP": 0.79, "XXX": "not-a-number", "YYY": null}}`)
	}))
	defer srv.Close()

	p := NewExchangeRateProvider(srv.Client(), srv.URL, "secret")

	rates, err := p.Rates(context.Background(), "USD", []string{"EUR", "GBP"})
	require.NoError(t, err)

	assert.Equal(t, []string{"USD"}, gotQuery["base"])
	assert.Equal(t, []string{"secret"}, gotQuery["access_key"])
	assert.Equal(t, []string{"EUR,GBP"}, gotQuery["symbols"])

	// Non-numeric entries are dropped silently.
	assert.Equal(t, map[string]float64{"EUR": 0.92, "GBP": 0.79}, rates)
}

func TestExchangeRateMissingKey(t *testing.T) {
	p := NewExchangeRateProvider(http.DefaultClient, "", "")
	_, err := p.Rates(context.Background(), "USD", nil)
	assert.ErrorIs(t, err, travel.ErrNotConfigured)
}
