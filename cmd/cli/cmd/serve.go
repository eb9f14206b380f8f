// Package cmd - serve command
package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"windowprice/api"
	"windowprice/internal/config"
	"windowprice/internal/logging"
)

var serveAddr string

// serveCmd runs the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the pricing API over HTTP",
	Long: `Serve the pricing API.

Endpoints:
  POST /price    price one window
  POST /quote    price a list of windows
  GET  /rates    the rate card
  GET  /health   liveness
  GET  /version  build version`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	addr := serveAddr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	server := api.NewServer(version, newEngine(), api.Options{
		Output:       outputOptions(false),
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("windowprice API v%s listening on %s\n", version, addr)
	if err := server.ListenAndServe(ctx, addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logging.Error("server stopped", zap.String("addr", addr), zap.Error(err))
		return err
	}
	return nil
}
