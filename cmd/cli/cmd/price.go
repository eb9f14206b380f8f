// Package cmd - price command
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"windowprice/core/window"
	"windowprice/internal/logging"
)

type priceOptions struct {
	windowType string
	width      string
	height     string
	glass      string
	upperLites string
	lowerLites string
	sashLites  string
	retail     bool
	format     string
	totalOnly  bool
}

var priceOpts priceOptions

// priceCmd prices a single window
var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Price a single window",
	Long: `Price one window from its type, size, glass and lite counts.

Dimensions are whole inches. Text after the leading digits is ignored, and
empty or non-numeric values count as not entered.

Examples:
  windowprice price --width 25 --height 30
  windowprice price --type casement --width 50 --height 50 --glass restoration --sash-lites 2 --retail
  windowprice price --type dh --width 40 --height 50 --upper-lites 3 --format json`,
	Args: cobra.NoArgs,
	RunE: runPrice,
}

func init() {
	rootCmd.AddCommand(priceCmd)

	f := priceCmd.Flags()
	f.StringVarP(&priceOpts.windowType, "type", "t", "", "window type (double_hung, casement)")
	f.StringVarP(&priceOpts.width, "width", "w", "", "width in inches")
	f.StringVarP(&priceOpts.height, "height", "H", "", "height in inches")
	f.StringVarP(&priceOpts.glass, "glass", "g", "", "glass (annealed, restoration)")
	f.StringVar(&priceOpts.upperLites, "upper-lites", "", "lites in the upper sash (double hung)")
	f.StringVar(&priceOpts.lowerLites, "lower-lites", "", "lites in the lower sash (double hung)")
	f.StringVar(&priceOpts.sashLites, "sash-lites", "", "lites in the sash (casement)")
	f.BoolVarP(&priceOpts.retail, "retail", "r", false, "apply the retail markup")
	f.StringVarP(&priceOpts.format, "format", "f", "", "output format (cli, json, markdown)")
	f.BoolVar(&priceOpts.totalOnly, "total-only", false, "omit the line item breakdown")
}

func runPrice(cmd *cobra.Command, args []string) error {
	req, err := priceOpts.request()
	if err != nil {
		return err
	}

	out, err := formatter(priceOpts.format, priceOpts.totalOnly)
	if err != nil {
		return err
	}

	breakdown := newEngine().Quote(req)
	logging.Debug("priced window",
		zap.String("type", string(req.WindowType)),
		zap.Stringer("size", breakdown.SizeClass),
		zap.String("total", breakdown.Total.String()))

	return out.RenderPrice(cmd.OutOrStdout(), breakdown)
}

func (o priceOptions) request() (window.PriceRequest, error) {
	t, err := window.ParseType(o.windowType)
	if err != nil {
		return window.PriceRequest{}, err
	}
	g, err := window.ParseGlass(o.glass)
	if err != nil {
		return window.PriceRequest{}, err
	}
	return window.PriceRequest{
		WindowType: t,
		Width:      window.ParseNumber(o.width),
		Height:     window.ParseNumber(o.height),
		Glass:      g,
		UpperLites: window.ParseNumber(o.upperLites),
		LowerLites: window.ParseNumber(o.lowerLites),
		SashLites:  window.ParseNumber(o.sashLites),
		IsRetail:   o.retail,
	}, nil
}
