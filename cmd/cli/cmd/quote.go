// Package cmd - quote command
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"windowprice/core/quote"
	"windowprice/internal/config"
	"windowprice/internal/logging"
)

var (
	quoteFormat    string
	quoteName      string
	quoteTotalOnly bool
)

// quoteCmd prices every window in a quote file
var quoteCmd = &cobra.Command{
	Use:   "quote <file>",
	Short: "Price a multi-window quote file",
	Long: `Price every window listed in an HCL or JSON quote file.

Example quote file:

  name   = "Smith residence"
  retail = true

  window "kitchen" {
    type       = "casement"
    width      = 50
    height     = 50
    glass      = "restoration"
    sash_lites = 2
  }

  window "bedroom" {
    type        = "double_hung"
    width       = 40
    height      = 50
    upper_lites = 3
    quantity    = 2
  }`,
	Args: cobra.ExactArgs(1),
	RunE: runQuote,
}

func init() {
	rootCmd.AddCommand(quoteCmd)

	quoteCmd.Flags().StringVarP(&quoteFormat, "format", "f", "", "output format (cli, json, markdown)")
	quoteCmd.Flags().StringVarP(&quoteName, "name", "n", "", "override the quote name")
	quoteCmd.Flags().BoolVar(&quoteTotalOnly, "total-only", false, "omit per-window line items")
}

func runQuote(cmd *cobra.Command, args []string) error {
	out, err := formatter(quoteFormat, quoteTotalOnly)
	if err != nil {
		return err
	}

	req, err := quote.Load(args[0])
	if err != nil {
		return err
	}

	name := req.Name
	if quoteName != "" {
		name = quoteName
	}

	q, err := quote.NewBuilder(newEngine(), config.Get().Pricing.Currency).Build(name, req.Windows)
	if err != nil {
		return err
	}

	logging.Info("quote built",
		zap.String("file", args[0]),
		zap.String("quote_id", q.ID.String()),
		zap.Int64("windows", q.Windows()))

	return out.RenderQuote(cmd.OutOrStdout(), q)
}
