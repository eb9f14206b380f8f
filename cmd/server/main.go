// Package main - Entry point for the window pricing API server
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"windowprice/api"
	"windowprice/core/output"
	"windowprice/core/pricing"
	"windowprice/internal/config"
	"windowprice/internal/logging"
)

const version = "1.0.0"

func main() {
	addr := flag.String("addr", "", "Server address (default from config, :8080)")
	cfgPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	if err := config.LoadEnvFiles(".env"); err != nil {
		log.Fatal(err)
	}

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		log.Fatal(err)
	}
	if *addr == "" {
		*addr = cfg.Server.Addr
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		log.Fatal(err)
	}
	defer logging.Sync()

	// Create API server
	apiServer := api.NewServer(version, pricing.NewEngine(), api.Options{
		Output: output.Options{
			Places:        cfg.Pricing.DisplayPlaces,
			Currency:      cfg.Pricing.Currency,
			ShowBreakdown: cfg.Output.ShowBreakdown,
		},
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
	})

	fmt.Printf("Window Price Server v%s\n", version)
	fmt.Printf("   API: http://localhost%s\n", *addr)
	fmt.Println()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := apiServer.ListenAndServe(ctx, *addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
