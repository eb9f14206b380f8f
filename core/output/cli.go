package output

import (
	"fmt"
	"io"

	"windowprice/core/pricing"
	"windowprice/core/quote"
	"windowprice/core/ui"
	"windowprice/core/window"
)

// CLIFormatter renders terminal tables
type CLIFormatter struct {
	opts Options
}

// Format returns FormatCLI
func (f *CLIFormatter) Format() Format { return FormatCLI }

// RenderPrice prints the window, its line items and the price
func (f *CLIFormatter) RenderPrice(w io.Writer, b *pricing.Breakdown) error {
	out := ui.NewWriter(w, f.opts.NoColor)
	req := b.Request

	out.Header(fmt.Sprintf("%s %sx%s in", req.WindowType.Label(), dim(req.Width), dim(req.Height)))
	out.Muted("size: %s   glass: %s", b.SizeClass, req.Glass.Label())
	if b.SizeClass == window.SizeInvalid {
		out.Warning("size could not be classified; base price is $0")
	}

	if f.opts.ShowBreakdown {
		table := out.NewTable("Item", "Detail", "Amount").AlignRight(2)
		for _, item := range b.Items {
			table.AddRow(item.Label, item.Formula, window.FormatMoney(item.Amount, f.opts.Places))
		}
		table.Render()
	}

	out.Total("Price:", b.Result().Display(f.opts.Places)+" "+f.opts.Currency)
	return nil
}

// RenderQuote prints one row per window and the quote total
func (f *CLIFormatter) RenderQuote(w io.Writer, q *quote.Quote) error {
	out := ui.NewWriter(w, f.opts.NoColor)

	title := "Quote " + q.ID.String()
	if q.Name != "" {
		title = q.Name
	}
	out.Header(title)

	table := out.NewTable("Window", "Type", "Size", "Qty", "Each", "Amount").AlignRight(3, 4, 5)
	for _, item := range q.Items {
		req := item.Breakdown.Request
		table.AddRow(
			item.Label,
			req.WindowType.Label(),
			fmt.Sprintf("%sx%s %s", dim(req.Width), dim(req.Height), item.Breakdown.SizeClass),
			fmt.Sprintf("%d", item.Quantity),
			window.FormatMoney(item.UnitPrice, f.opts.Places),
			window.FormatMoney(item.Amount, f.opts.Places),
		)
	}
	table.Render()

	if f.opts.ShowBreakdown {
		for _, item := range q.Items {
			out.Muted("%s:", item.Label)
			for _, li := range item.Breakdown.Items {
				out.Muted("  %-24s %12s  %s", li.Label, window.FormatMoney(li.Amount, f.opts.Places), li.Formula)
			}
		}
	}

	out.Total(fmt.Sprintf("Total (%d windows):", q.Windows()), window.FormatMoney(q.Total, f.opts.Places)+" "+q.Currency)
	return nil
}

// RenderRates prints the base price table and surcharges
func (f *CLIFormatter) RenderRates(w io.Writer, rates pricing.RateCard) error {
	out := ui.NewWriter(w, f.opts.NoColor)
	out.Header("Base prices")

	table := out.NewTable("Size", "Double Hung", "Casement").AlignRight(1, 2)
	for _, size := range window.SizeClasses {
		table.AddRow(
			size.String(),
			window.FormatMoney(rates.BasePrice(window.DoubleHung, size), 2),
			window.FormatMoney(rates.BasePrice(window.Casement, size), 2),
		)
	}
	table.Render()

	out.Println("")
	out.Println("Lites:             %s per lite when a sash has more than one", window.FormatMoney(rates.PerLite, 2))
	out.Println("Restoration glass: %s per sq ft (width x height / 144)", window.FormatMoney(rates.RestorationPerSqFt, 2))
	out.Println("Retail:            x%s on the total", rates.RetailMultiplier.String())
	return nil
}

// dim renders a dimension, "?" when missing
func dim(n window.Number) string {
	if !n.Valid {
		return "?"
	}
	return n.String()
}
