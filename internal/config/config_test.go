package config

import (
	"os"
	"path/filepath"
	"testing"

	"windowprice/internal/errors"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Pricing.DisplayPlaces != 2 {
		t.Errorf("expected 2 display places, got %d", cfg.Pricing.DisplayPlaces)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %s", cfg.Server.Addr)
	}
}

func TestSaveThenLoadKeepsOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "windowprice.json")

	cfg := Default()
	cfg.Output.DefaultFormat = "markdown"
	cfg.Server.Addr = "127.0.0.1:9000"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Output.DefaultFormat != "markdown" {
		t.Errorf("expected markdown, got %s", loaded.Output.DefaultFormat)
	}
	if loaded.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("expected 127.0.0.1:9000, got %s", loaded.Server.Addr)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"pricing":`},
		{name: "too many places", body: `{"pricing":{"display_places":9}}`},
		{name: "unknown format", body: `{"output":{"default_format":"html"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cfg.json")
			if err := os.WriteFile(path, []byte(tt.body), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.IsType(err, errors.TypeConfig) {
				t.Errorf("expected config error, got %v", err)
			}
		})
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "windowprice.toml")
	body := `
[pricing]
currency = "CAD"
display_places = 3

[output]
default_format = "json"

[server]
addr = ":9090"
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Pricing.Currency != "CAD" || cfg.Pricing.DisplayPlaces != 3 {
		t.Errorf("unexpected pricing config: %+v", cfg.Pricing)
	}
	if cfg.Output.DefaultFormat != "json" {
		t.Errorf("expected json, got %s", cfg.Output.DefaultFormat)
	}
	// untouched sections keep their defaults
	if cfg.Server.ReadTimeoutSeconds != 10 {
		t.Errorf("expected default read timeout, got %d", cfg.Server.ReadTimeoutSeconds)
	}
}

func TestSaveTOMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "windowprice.toml")

	cfg := Default()
	cfg.Logging.Level = "debug"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if data[0] == '{' {
		t.Fatal("expected TOML, got JSON")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Logging.Level != "debug" {
		t.Errorf("expected debug, got %s", loaded.Logging.Level)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvPrefix+"ADDR", "127.0.0.1:7000")
	t.Setenv(EnvPrefix+"FORMAT", "markdown")
	t.Setenv(EnvPrefix+"DISPLAY_PLACES", "0")
	t.Setenv("NO_COLOR", "")

	cfg := Default()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:7000" {
		t.Errorf("expected env addr, got %s", cfg.Server.Addr)
	}
	if cfg.Output.DefaultFormat != "markdown" {
		t.Errorf("expected markdown, got %s", cfg.Output.DefaultFormat)
	}
	if cfg.Pricing.DisplayPlaces != 0 {
		t.Errorf("expected 0 places, got %d", cfg.Pricing.DisplayPlaces)
	}
	if !cfg.Output.NoColor {
		t.Error("expected NO_COLOR to disable colors")
	}
}

func TestApplyEnvRejectsBadValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{EnvPrefix + "DISPLAY_PLACES", "two"},
		{EnvPrefix + "DISPLAY_PLACES", "9"},
		{EnvPrefix + "FORMAT", "html"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			err := Default().ApplyEnv()
			if !errors.IsType(err, errors.TypeConfig) {
				t.Errorf("expected config error, got %v", err)
			}
		})
	}
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("WINDOWPRICE_CURRENCY=EUR\n"), 0644); err != nil {
		t.Fatal(err)
	}
	// registered so the variable is removed again after the test
	t.Setenv(EnvPrefix+"CURRENCY", "")
	os.Unsetenv(EnvPrefix + "CURRENCY")

	if err := LoadEnvFiles(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := Default()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Pricing.Currency != "EUR" {
		t.Errorf("expected EUR from env file, got %s", cfg.Pricing.Currency)
	}
}
