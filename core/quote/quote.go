// Package quote prices several windows together.
// Quotes are built on demand and never stored.
package quote

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"windowprice/core/pricing"
	"windowprice/core/window"
	"windowprice/internal/errors"
)

// Line is one window on a quote request
type Line struct {
	// Label names the opening, e.g. "kitchen"
	Label string `json:"label"`

	// Quantity is how many identical windows to price; 0 means 1
	Quantity int64 `json:"quantity"`

	// Request describes the window
	Request window.PriceRequest `json:"request"`
}

// Item is one priced line
type Item struct {
	Label     string              `json:"label"`
	Quantity  int64               `json:"quantity"`
	UnitPrice decimal.Decimal     `json:"unit_price"`
	Amount    decimal.Decimal     `json:"amount"`
	Breakdown *pricing.Breakdown `json:"breakdown"`
}

// Quote is a priced set of windows
type Quote struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	Items     []Item          `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Currency  string          `json:"currency"`
}

// Windows returns the number of windows on the quote
func (q *Quote) Windows() int64 {
	var n int64
	for _, item := range q.Items {
		n += item.Quantity
	}
	return n
}

// Builder prices quote lines
type Builder struct {
	engine   *pricing.Engine
	currency string
	now      func() time.Time
	newID    func() uuid.UUID
}

// NewBuilder creates a builder. A nil engine uses the default rate card.
func NewBuilder(engine *pricing.Engine, currency string) *Builder {
	if engine == nil {
		engine = pricing.NewEngine()
	}
	if currency == "" {
		currency = "USD"
	}
	return &Builder{
		engine:   engine,
		currency: currency,
		now:      time.Now,
		newID:    uuid.New,
	}
}

// Build prices every line. Each line's unit price comes from the engine;
// the amount is unit price times quantity.
func (b *Builder) Build(name string, lines []Line) (*Quote, error) {
	if len(lines) == 0 {
		return nil, errors.Input("windows", "a quote needs at least one window")
	}

	q := &Quote{
		ID:        b.newID(),
		Name:      name,
		CreatedAt: b.now().UTC(),
		Items:     make([]Item, 0, len(lines)),
		Total:     decimal.Zero,
		Currency:  b.currency,
	}

	for i, line := range lines {
		qty := line.Quantity
		if qty == 0 {
			qty = 1
		}
		if qty < 0 {
			return nil, errors.Input("quantity", "quantity must not be negative").
				WithContext("line", i+1).WithContext("label", line.Label)
		}

		req := line.Request.WithDefaults()
		if err := req.Validate(); err != nil {
			if e, ok := err.(*errors.Error); ok {
				e.WithContext("line", i+1).WithContext("label", line.Label)
			}
			return nil, err
		}

		breakdown := b.engine.Quote(req)
		amount := breakdown.Total.Mul(decimal.NewFromInt(qty))

		label := line.Label
		if label == "" {
			label = req.WindowType.Label()
		}

		q.Items = append(q.Items, Item{
			Label:     label,
			Quantity:  qty,
			UnitPrice: breakdown.Total,
			Amount:    amount,
			Breakdown: breakdown,
		})
		q.Total = q.Total.Add(amount)
	}

	return q, nil
}
