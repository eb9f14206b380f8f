// Package cmd - rates command
package cmd

import (
	"github.com/spf13/cobra"
)

var ratesFormat string

// ratesCmd prints the rate card
var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Show base prices and surcharges",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := formatter(ratesFormat, false)
		if err != nil {
			return err
		}
		return out.RenderRates(cmd.OutOrStdout(), newEngine().Rates())
	},
}

func init() {
	rootCmd.AddCommand(ratesCmd)
	ratesCmd.Flags().StringVarP(&ratesFormat, "format", "f", "", "output format (cli, json, markdown)")
}
