package travel

import "strings"

// modeRate is a static per-mode pricing entry in a single currency unit.
type modeRate struct {
	PerKm   float64
	BaseFee float64
}

// modeRates is the fixed cost table. It is a static lookup, not live pricing.
var modeRates = map[string]modeRate{
	"driving":         {PerKm: 0.50},
	"driving-car":     {PerKm: 0.50},
	"taxi":            {PerKm: 1.20, BaseFee: 1.50},
	"cycling":         {PerKm: 0.02},
	"cycling-regular": {PerKm: 0.02},
	"walking":         {},
	"foot":            {},
	"foot-walking":    {},
}

// defaultPerKm is the variable rate applied to modes missing from the table;
// unmapped modes carry no base fee.
const defaultPerKm = 0.40

// EstimateCost derives a cost estimate for a trip of distanceKm in the given
// mode: total = base_fee + variable_per_km * distance_km. Base fee and
// variable cost are rounded to 2 decimals independently and the total is
// computed from the rounded components.
func EstimateCost(distanceKm float64, mode string) CostBreakdown {
	rate, ok := modeRates[strings.ToLower(strings.TrimSpace(mode))]
	if !ok {
		rate = modeRate{PerKm: defaultPerKm}
	}

	baseFee := round2(rate.BaseFee)
	variable := round2(rate.PerKm * distanceKm)
	return CostBreakdown{
		BaseFee:  baseFee,
		Variable: variable,
		Total:    round2(baseFee + variable),
	}
}
