package window

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"

	"windowprice/internal/errors"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want Number
	}{
		{in: "", want: Unset},
		{in: "   ", want: Unset},
		{in: "abc", want: Unset},
		{in: "25", want: N(25)},
		{in: " 40 ", want: N(40)},
		{in: "48.9", want: N(48)},
		{in: "36in", want: N(36)},
		{in: "+7", want: N(7)},
		{in: "-5", want: Unset},
		{in: "-", want: Unset},
		{in: "0", want: N(0)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseNumber(tt.in); got != tt.want {
				t.Errorf("ParseNumber(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseLabels(t *testing.T) {
	types := map[string]Type{
		"Double Hung": DoubleHung,
		"double-hung": DoubleHung,
		"double_hung": DoubleHung,
		"":            DoubleHung,
		"Casement":    Casement,
		"c":           Casement,
	}
	for in, want := range types {
		got, err := ParseType(in)
		if err != nil || got != want {
			t.Errorf("ParseType(%q) = %q, %v; want %q", in, got, err, want)
		}
	}

	glasses := map[string]Glass{
		"1/8 annealed":    Annealed1_8,
		"annealed_1_8":    Annealed1_8,
		"3mm Restoration": Restoration3mm,
		"restoration":     Restoration3mm,
		"restoration_3mm": Restoration3mm,
	}
	for in, want := range glasses {
		got, err := ParseGlass(in)
		if err != nil || got != want {
			t.Errorf("ParseGlass(%q) = %q, %v; want %q", in, got, err, want)
		}
	}

	if _, err := ParseType("awning"); !errors.IsType(err, errors.TypeInput) {
		t.Errorf("expected input error for awning, got %v", err)
	}
	if _, err := ParseGlass("tempered"); !errors.IsType(err, errors.TypeInput) {
		t.Errorf("expected input error for tempered, got %v", err)
	}
}

func TestPriceRequestJSON(t *testing.T) {
	body := `{"window_type":"Casement","width":"50","height":50,"glass":"3mm Restoration","sash_lites":"","retail":true}`

	var req PriceRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.WindowType != Casement {
		t.Errorf("expected casement, got %q", req.WindowType)
	}
	if req.Width != N(50) || req.Height != N(50) {
		t.Errorf("expected 50x50, got %v x %v", req.Width, req.Height)
	}
	if req.SashLites.Valid {
		t.Error("empty sash_lites should be unset")
	}
	if req.UpperLites.Valid {
		t.Error("missing upper_lites should be unset")
	}
	if !req.IsRetail {
		t.Error("expected retail")
	}

	var bad PriceRequest
	if err := json.Unmarshal([]byte(`{"window_type":"bay"}`), &bad); err == nil {
		t.Error("expected an error for an unknown window type")
	}
}

func TestWithDefaults(t *testing.T) {
	req := PriceRequest{}.WithDefaults()
	if req.WindowType != DoubleHung || req.Glass != Annealed1_8 {
		t.Errorf("unexpected defaults: %+v", req)
	}
	if err := req.Validate(); err != nil {
		t.Errorf("defaulted request should validate: %v", err)
	}
	if err := (PriceRequest{WindowType: "bay", Glass: Annealed1_8}).Validate(); err == nil {
		t.Error("expected validation error")
	}
}

func TestPriceResultDisplay(t *testing.T) {
	if got := Unspecified().Display(2); got != "Awaiting Input" {
		t.Errorf("expected Awaiting Input, got %q", got)
	}

	r := Priced(decimal.RequireFromString("1378.125"))
	if got := r.Display(2); got != "$1378.13" {
		t.Errorf("expected $1378.13, got %q", got)
	}
	if r.IsUnspecified() {
		t.Error("priced result reported unspecified")
	}

	data, err := json.Marshal(Priced(decimal.NewFromInt(615)))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"amount":"615","display":"$615.00"}` {
		t.Errorf("unexpected JSON: %s", data)
	}
}
