package output

import (
	"fmt"
	"io"
	"strings"

	"windowprice/core/pricing"
	"windowprice/core/quote"
	"windowprice/core/window"
)

// MarkdownFormatter renders markdown tables for emails and tickets
type MarkdownFormatter struct {
	opts Options
}

// Format returns FormatMarkdown
func (f *MarkdownFormatter) Format() Format { return FormatMarkdown }

// RenderPrice writes a heading, the line items and the price
func (f *MarkdownFormatter) RenderPrice(w io.Writer, b *pricing.Breakdown) error {
	var sb strings.Builder
	req := b.Request

	fmt.Fprintf(&sb, "### %s %sx%s in (%s)\n\n", req.WindowType.Label(), dim(req.Width), dim(req.Height), b.SizeClass)
	fmt.Fprintf(&sb, "Glass: %s\n\n", req.Glass.Label())
	if f.opts.ShowBreakdown {
		sb.WriteString("| Item | Detail | Amount |\n|---|---|---:|\n")
		for _, item := range b.Items {
			fmt.Fprintf(&sb, "| %s | %s | %s |\n", item.Label, item.Formula, window.FormatMoney(item.Amount, f.opts.Places))
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "**Price: %s %s**\n", b.Result().Display(f.opts.Places), f.opts.Currency)

	_, err := io.WriteString(w, sb.String())
	return err
}

// RenderQuote writes a summary table with one row per window
func (f *MarkdownFormatter) RenderQuote(w io.Writer, q *quote.Quote) error {
	var sb strings.Builder

	title := q.Name
	if title == "" {
		title = "Quote"
	}
	fmt.Fprintf(&sb, "## %s\n\n", title)
	fmt.Fprintf(&sb, "Quote `%s`, %s\n\n", q.ID, q.CreatedAt.Format("2006-01-02"))
	sb.WriteString("| Window | Type | Size | Qty | Each | Amount |\n|---|---|---|---:|---:|---:|\n")
	for _, item := range q.Items {
		req := item.Breakdown.Request
		fmt.Fprintf(&sb, "| %s | %s | %sx%s %s | %d | %s | %s |\n",
			item.Label, req.WindowType.Label(), dim(req.Width), dim(req.Height), item.Breakdown.SizeClass,
			item.Quantity,
			window.FormatMoney(item.UnitPrice, f.opts.Places),
			window.FormatMoney(item.Amount, f.opts.Places))
	}
	fmt.Fprintf(&sb, "\n**Total: %s %s**\n", window.FormatMoney(q.Total, f.opts.Places), q.Currency)

	_, err := io.WriteString(w, sb.String())
	return err
}

// RenderRates writes the base price table
func (f *MarkdownFormatter) RenderRates(w io.Writer, rates pricing.RateCard) error {
	var sb strings.Builder
	sb.WriteString("| Size | Double Hung | Casement |\n|---|---:|---:|\n")
	for _, size := range window.SizeClasses {
		fmt.Fprintf(&sb, "| %s | %s | %s |\n", size,
			window.FormatMoney(rates.BasePrice(window.DoubleHung, size), 2),
			window.FormatMoney(rates.BasePrice(window.Casement, size), 2))
	}
	fmt.Fprintf(&sb, "\nLites: %s each when a sash has more than one. Restoration glass: %s per sq ft. Retail: x%s.\n",
		window.FormatMoney(rates.PerLite, 2), window.FormatMoney(rates.RestorationPerSqFt, 2), rates.RetailMultiplier)

	_, err := io.WriteString(w, sb.String())
	return err
}
