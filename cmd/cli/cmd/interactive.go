// Package cmd - interactive command
package cmd

import (
	"bufio"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"windowprice/core/calculator"
	"windowprice/core/ui"
	"windowprice/core/window"
)

// interactiveCmd runs the calculator form on stdin
var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"form"},
	Short:   "Edit a window field by field and watch the price update",
	Long: `Start an interactive calculator. Each line sets one field and reprices.

Commands:
  <field>=<value>   set a field (type, width, height, glass,
                    upper_lites, lower_lites, sash_lites, retail)
  retail            toggle the retail markup
  show              print the form and its line items
  reset             clear the form
  help              list commands
  quit              exit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(in io.Reader, w io.Writer) error {
	opts := outputOptions(false)
	out := ui.NewWriter(w, opts.NoColor)

	session := calculator.NewSession(newEngine())
	session.OnChange = func(p window.PriceResult) {
		out.Total("Price:", p.Display(opts.Places))
	}

	out.Header("Window price calculator")
	out.Muted("fields: %s", session.String())
	out.Total("Price:", session.Price().Display(opts.Places))

	scanner := bufio.NewScanner(in)
	for {
		out.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit", "q":
			return nil
		case "help", "?":
			for _, f := range session.Visible() {
				out.Muted("  %s", f)
			}
			continue
		case "retail", "toggle":
			session.ToggleRetail()
			continue
		case "reset":
			session.Reset()
			out.Total("Price:", session.Price().Display(opts.Places))
			continue
		case "show":
			showSession(out, session, opts.Places)
			continue
		}

		name, value, ok := strings.Cut(line, "=")
		if !ok {
			out.Error("expected field=value, got %q", line)
			continue
		}
		field, err := calculator.ParseField(name)
		if err != nil {
			out.Error("%v", err)
			continue
		}
		if err := session.Set(field, strings.TrimSpace(value)); err != nil {
			out.Error("%v", err)
		}
	}
	return scanner.Err()
}

func showSession(out *ui.Writer, session *calculator.Session, places int32) {
	out.Muted("fields: %s", session.String())
	b := session.Breakdown()
	if b == nil {
		out.Total("Price:", session.Price().Display(places))
		return
	}
	table := out.NewTable("Item", "Detail", "Amount").AlignRight(2)
	for _, item := range b.Items {
		table.AddRow(item.Label, item.Formula, window.FormatMoney(item.Amount, places))
	}
	table.Render()
	out.Muted("size: %s", b.SizeClass)
	out.Total("Price:", session.Price().Display(places))
}
