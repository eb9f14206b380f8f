package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"windowprice/core/window"
)

// Engine prices windows against a rate card. An Engine is immutable and safe
// for concurrent use.
type Engine struct {
	rates RateCard
}

// NewEngine creates an engine with the default rate card
func NewEngine() *Engine {
	return &Engine{rates: DefaultRateCard()}
}

// NewEngineWithRates creates an engine with a custom rate card
func NewEngineWithRates(rates RateCard) *Engine {
	return &Engine{rates: rates}
}

// Rates returns the rate card
func (e *Engine) Rates() RateCard {
	return e.rates
}

// Compute prices a request: classify, base price, lite surcharge, glass
// surcharge, then the retail multiplier on the sum. It never fails; an
// invalid size prices at zero base plus whatever surcharges apply.
func (e *Engine) Compute(req window.PriceRequest) window.PriceResult {
	size := Classify(req.Width, req.Height)

	total := e.rates.BasePrice(req.WindowType, size)
	total = total.Add(e.rates.LiteSurcharge(req))
	total = total.Add(e.rates.GlassSurcharge(req.Glass, req.Width, req.Height))
	total = e.rates.RetailAdjustment(total, req.IsRetail)

	return window.Priced(total)
}

// LineItem is one billable part of a window price
type LineItem struct {
	// ID is stable within a breakdown (base, upper_lites, ...)
	ID string `json:"id"`

	// Label is a human-readable label
	Label string `json:"label"`

	// Quantity and Rate are set for per-unit charges
	Quantity decimal.Decimal `json:"quantity"`
	Rate     decimal.Decimal `json:"rate"`

	// Amount is the charge
	Amount decimal.Decimal `json:"amount"`

	// Formula describes how the amount was calculated
	Formula string `json:"formula"`
}

// Breakdown explains a computed price
type Breakdown struct {
	Request   window.PriceRequest `json:"request"`
	SizeClass window.SizeClass    `json:"size_class"`
	Items     []LineItem          `json:"items"`

	// Subtotal is the wholesale price before the retail markup
	Subtotal decimal.Decimal `json:"subtotal"`

	// Total always equals Compute for the same request
	Total decimal.Decimal `json:"total"`
}

// Result returns the total as a PriceResult
func (b *Breakdown) Result() window.PriceResult {
	return window.Priced(b.Total)
}

// Quote prices a request and records each charge as a line item.
// Zero-amount surcharges are left out.
func (e *Engine) Quote(req window.PriceRequest) *Breakdown {
	size := Classify(req.Width, req.Height)
	b := &Breakdown{
		Request:   req,
		SizeClass: size,
	}

	base := e.rates.BasePrice(req.WindowType, size)
	b.Items = append(b.Items, LineItem{
		ID:       "base",
		Label:    fmt.Sprintf("%s, %s", req.WindowType.Label(), size),
		Quantity: decimal.NewFromInt(1),
		Rate:     base,
		Amount:   base,
		Formula:  fmt.Sprintf("base price for %s %s", size, req.WindowType.Label()),
	})

	switch req.WindowType {
	case window.DoubleHung:
		b.addLites("upper_lites", "Upper lites", req.UpperLites, e.rates.PerLite)
		b.addLites("lower_lites", "Lower lites", req.LowerLites, e.rates.PerLite)
	case window.Casement:
		b.addLites("sash_lites", "Sash lites", req.SashLites, e.rates.PerLite)
	}

	if glass := e.rates.GlassSurcharge(req.Glass, req.Width, req.Height); !glass.IsZero() {
		area := decimal.NewFromInt(req.Width.Value).Mul(decimal.NewFromInt(req.Height.Value)).Div(squareInchesPerFoot)
		b.Items = append(b.Items, LineItem{
			ID:       "glass",
			Label:    req.Glass.Label() + " glass",
			Quantity: area,
			Rate:     e.rates.RestorationPerSqFt,
			Amount:   glass,
			Formula: fmt.Sprintf("%d x %d in / 144 sq in/sq ft x $%s/sq ft",
				req.Width.Value, req.Height.Value, e.rates.RestorationPerSqFt.StringFixed(2)),
		})
	}

	subtotal := decimal.Zero
	for _, item := range b.Items {
		subtotal = subtotal.Add(item.Amount)
	}
	b.Subtotal = subtotal
	b.Total = e.rates.RetailAdjustment(subtotal, req.IsRetail)

	if req.IsRetail {
		b.Items = append(b.Items, LineItem{
			ID:       "retail",
			Label:    "Retail markup",
			Quantity: decimal.NewFromInt(1),
			Rate:     e.rates.RetailMultiplier,
			Amount:   b.Total.Sub(subtotal),
			Formula:  fmt.Sprintf("subtotal x %s", e.rates.RetailMultiplier.String()),
		})
	}

	return b
}

func (b *Breakdown) addLites(id, label string, count window.Number, rate decimal.Decimal) {
	charge := liteCharge(count, rate)
	if charge.IsZero() {
		return
	}
	b.Items = append(b.Items, LineItem{
		ID:       id,
		Label:    label,
		Quantity: decimal.NewFromInt(count.Value),
		Rate:     rate,
		Amount:   charge,
		Formula:  fmt.Sprintf("%d lites x $%s", count.Value, rate.StringFixed(2)),
	})
}
