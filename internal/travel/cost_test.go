package travel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateCostPerMode(t *testing.T) {
	tests := []struct {
		mode     string
		distance float64
		base     float64
		variable float64
	}{
		{"driving-car", 10, 0.0, 5.0},
		{"driving", 10, 0.0, 5.0},
		{"taxi", 10, 1.5, 12.0},
		{"cycling-regular", 100, 0.0, 2.0},
		{"cycling", 100, 0.0, 2.0},
		{"foot-walking", 42, 0.0, 0.0},
		{"walking", 42, 0.0, 0.0},
		{"foot", 42, 0.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			cost := EstimateCost(tt.distance, tt.mode)
			assert.Equal(t, tt.base, cost.BaseFee)
			assert.Equal(t, tt.variable, cost.Variable)
			assert.Equal(t, cost.BaseFee+cost.Variable, cost.Total)
		})
	}
}

func TestEstimateCostUnmappedModeUsesDefaultRate(t *testing.T) {
	cost := EstimateCost(10, "hoverboard")
	assert.Equal(t, 0.0, cost.BaseFee)
	assert.Equal(t, 4.0, cost.Variable)
	assert.Equal(t, 4.0, cost.Total)
}

func TestEstimateCostRoundsComponentsIndependently(t *testing.T) {
	// 0.50 * 3.333 = 1.6665, which rounds to 1.67; the total is the sum of
	// the rounded components, not a rounding of the raw sum.
	cost := EstimateCost(3.333, "driving-car")
	assert.Equal(t, 1.67, cost.Variable)
	assert.Equal(t, 1.67, cost.Total)
}

func TestEstimateCostWalkingIsFree(t *testing.T) {
	cost := EstimateCost(12345.6, "foot-walking")
	assert.Equal(t, 0.0, cost.Total)
}
