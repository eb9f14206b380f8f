// Package pricing computes window prices.
// Prices are a pure function of the request and the rate card: no state,
// no I/O, no errors.
package pricing

import (
	"github.com/shopspring/decimal"

	"windowprice/core/window"
)

// RateCard holds every price constant the engine uses
type RateCard struct {
	// Base is the base price keyed by window type then size class
	Base map[window.Type]map[window.SizeClass]decimal.Decimal `json:"base"`

	// PerLite is charged for every lite once a sash has more than one
	PerLite decimal.Decimal `json:"per_lite"`

	// RestorationPerSqFt is the restoration glass rate per square foot
	RestorationPerSqFt decimal.Decimal `json:"restoration_per_sq_ft"`

	// RetailMultiplier is applied to the summed wholesale price
	RetailMultiplier decimal.Decimal `json:"retail_multiplier"`
}

// squareInchesPerFoot converts glass area to square feet
var squareInchesPerFoot = decimal.NewFromInt(144)

// DefaultRateCard returns the current shop rates
func DefaultRateCard() RateCard {
	return RateCard{
		Base: map[window.Type]map[window.SizeClass]decimal.Decimal{
			window.DoubleHung: {
				window.SizeSmall:    decimal.NewFromInt(615),
				window.SizeMedium:   decimal.NewFromInt(655),
				window.SizeLarge:    decimal.NewFromInt(700),
				window.SizeOversize: decimal.NewFromInt(965),
			},
			window.Casement: {
				window.SizeSmall:    decimal.NewFromInt(420),
				window.SizeMedium:   decimal.NewFromInt(460),
				window.SizeLarge:    decimal.NewFromInt(500),
				window.SizeOversize: decimal.NewFromInt(680),
			},
		},
		PerLite:            decimal.NewFromInt(55),
		RestorationPerSqFt: decimal.NewFromInt(18),
		RetailMultiplier:   decimal.RequireFromString("1.25"),
	}
}

// BasePrice looks up the base price. Invalid sizes and unknown window types
// price at zero.
func (c RateCard) BasePrice(t window.Type, size window.SizeClass) decimal.Decimal {
	column, ok := c.Base[t]
	if !ok {
		return decimal.Zero
	}
	price, ok := column[size]
	if !ok {
		return decimal.Zero
	}
	return price
}
