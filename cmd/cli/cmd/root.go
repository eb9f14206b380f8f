// Package cmd provides the CLI commands for windowprice.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"windowprice/core/output"
	"windowprice/core/pricing"
	"windowprice/core/ui"
	"windowprice/internal/config"
	"windowprice/internal/logging"
)

// version is overridden at build time with -ldflags "-X ..."
var version = "0.1.0"

var (
	cfgFile string
	verbose bool
	noColor bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "windowprice",
	Short: "Price window restoration work",
	Long: `windowprice prices double-hung and casement window restoration.

A window's price is its base price for the size class, plus lite and
restoration glass surcharges, times 1.25 for retail customers.

Examples:
  windowprice price --type casement --width 50 --height 50 --glass restoration
  windowprice quote ./smith.hcl --format markdown
  windowprice interactive
  windowprice serve --addr :8080`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file, JSON or .toml (default is $HOME/.windowprice.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing config file")
}

func initConfig() {
	if err := config.LoadEnvFiles(".env"); err != nil {
		logging.Warn("ignoring .env file", zap.Error(err))
	}

	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Environment overrides the config file
	cfg := config.Get()
	if err := cfg.ApplyEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error in environment: %v\n", err)
		os.Exit(1)
	}

	// Initialize logging
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// newEngine returns the engine every command prices with
func newEngine() *pricing.Engine {
	return pricing.NewEngine()
}

// outputOptions builds formatter options from the loaded config
func outputOptions(totalOnly bool) output.Options {
	cfg := config.Get()
	return output.Options{
		Places:        cfg.Pricing.DisplayPlaces,
		Currency:      cfg.Pricing.Currency,
		ShowBreakdown: cfg.Output.ShowBreakdown && !totalOnly,
		NoColor:       cfg.Output.NoColor || noColor,
	}
}

// formatter resolves a --format value, falling back to the configured default
func formatter(format string, totalOnly bool) (output.Formatter, error) {
	if format == "" {
		format = config.Get().Output.DefaultFormat
	}
	return output.NewRegistry(outputOptions(totalOnly)).Get(format)
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "windowprice version %s\n", version)
	},
}

var configForce bool

// configCmd manages configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(config.Get())
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = config.DefaultPath()
		}
		if _, err := os.Stat(path); err == nil && !configForce {
			return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
		}
		if err := config.Default().Save(path); err != nil {
			return err
		}
		ui.NewWriter(cmd.OutOrStdout(), outputOptions(false).NoColor).Success("Wrote %s", path)
		return nil
	},
}
