package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"windowprice/core/pricing"
	"windowprice/core/quote"
	"windowprice/core/window"
)

// JSONFormatter renders machine-readable JSON. Amounts are full-precision
// decimal strings; display fields are rounded.
type JSONFormatter struct {
	opts Options
}

// Format returns FormatJSON
func (f *JSONFormatter) Format() Format { return FormatJSON }

// PriceView is the JSON shape of a single price
type PriceView struct {
	Request   window.PriceRequest `json:"request"`
	SizeClass window.SizeClass    `json:"size_class"`
	Items     []LineView          `json:"items,omitempty"`
	Subtotal  decimal.Decimal     `json:"subtotal"`
	Total     decimal.Decimal     `json:"total"`
	Display   string              `json:"display"`
	Currency  string              `json:"currency"`
}

// LineView is the JSON shape of a line item
type LineView struct {
	ID      string          `json:"id"`
	Label   string          `json:"label"`
	Amount  decimal.Decimal `json:"amount"`
	Display string          `json:"display"`
	Formula string          `json:"formula"`
}

// QuoteView is the JSON shape of a quote
type QuoteView struct {
	ID        string          `json:"id"`
	Name      string          `json:"name,omitempty"`
	CreatedAt string          `json:"created_at"`
	Windows   int64           `json:"windows"`
	Items     []QuoteItemView `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Display   string          `json:"display"`
	Currency  string          `json:"currency"`
}

// QuoteItemView is the JSON shape of a quote line
type QuoteItemView struct {
	Label     string          `json:"label"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Amount    decimal.Decimal `json:"amount"`
	Display   string          `json:"display"`
	Price     PriceView       `json:"price"`
}

// NewPriceView converts a breakdown to its JSON shape
func NewPriceView(b *pricing.Breakdown, opts Options) PriceView {
	v := PriceView{
		Request:   b.Request,
		SizeClass: b.SizeClass,
		Subtotal:  b.Subtotal,
		Total:     b.Total,
		Display:   b.Result().Display(opts.Places),
		Currency:  opts.Currency,
	}
	if opts.ShowBreakdown {
		for _, item := range b.Items {
			v.Items = append(v.Items, LineView{
				ID:      item.ID,
				Label:   item.Label,
				Amount:  item.Amount,
				Display: window.FormatMoney(item.Amount, opts.Places),
				Formula: item.Formula,
			})
		}
	}
	return v
}

// NewQuoteView converts a quote to its JSON shape
func NewQuoteView(q *quote.Quote, opts Options) QuoteView {
	v := QuoteView{
		ID:        q.ID.String(),
		Name:      q.Name,
		CreatedAt: q.CreatedAt.Format(time.RFC3339),
		Windows:   q.Windows(),
		Items:     make([]QuoteItemView, 0, len(q.Items)),
		Total:     q.Total,
		Display:   window.FormatMoney(q.Total, opts.Places),
		Currency:  q.Currency,
	}
	for _, item := range q.Items {
		v.Items = append(v.Items, QuoteItemView{
			Label:     item.Label,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Amount:    item.Amount,
			Display:   window.FormatMoney(item.Amount, opts.Places),
			Price:     NewPriceView(item.Breakdown, opts),
		})
	}
	return v
}

// RenderPrice writes a PriceView
func (f *JSONFormatter) RenderPrice(w io.Writer, b *pricing.Breakdown) error {
	return encode(w, NewPriceView(b, f.opts))
}

// RenderQuote writes a QuoteView
func (f *JSONFormatter) RenderQuote(w io.Writer, q *quote.Quote) error {
	return encode(w, NewQuoteView(q, f.opts))
}

// RenderRates writes the rate card
func (f *JSONFormatter) RenderRates(w io.Writer, rates pricing.RateCard) error {
	return encode(w, NewRatesView(rates))
}

// RatesView is the JSON shape of the rate card
type RatesView struct {
	Base               map[string]map[string]decimal.Decimal `json:"base"`
	PerLite            decimal.Decimal                        `json:"per_lite"`
	RestorationPerSqFt decimal.Decimal                        `json:"restoration_per_sq_ft"`
	RetailMultiplier   decimal.Decimal                        `json:"retail_multiplier"`
}

// NewRatesView converts the rate card to its JSON shape, listing every
// size class including invalid
func NewRatesView(rates pricing.RateCard) RatesView {
	v := RatesView{
		Base:               make(map[string]map[string]decimal.Decimal),
		PerLite:            rates.PerLite,
		RestorationPerSqFt: rates.RestorationPerSqFt,
		RetailMultiplier:   rates.RetailMultiplier,
	}
	for _, t := range []window.Type{window.DoubleHung, window.Casement} {
		column := make(map[string]decimal.Decimal)
		for _, size := range window.SizeClasses {
			column[size.String()] = rates.BasePrice(t, size)
		}
		v.Base[string(t)] = column
	}
	return v
}

func encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
