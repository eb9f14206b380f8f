// Package pricing - pricing rule tests
package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"windowprice/core/window"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// TestClassifyPriorityOrder checks the rule order, including the overlapping
// ranges where a later rule would also match
func TestClassifyPriorityOrder(t *testing.T) {
	tests := []struct {
		name   string
		width  window.Number
		height window.Number
		want   window.SizeClass
	}{
		{"small", window.N(25), window.N(30), window.SizeSmall},
		{"small upper bound exclusive", window.N(29), window.N(35), window.SizeSmall},
		{"width 30 is medium", window.N(30), window.N(35), window.SizeMedium},
		{"height 36 is medium", window.N(29), window.N(36), window.SizeMedium},
		{"medium corner", window.N(42), window.N(54), window.SizeMedium},
		{"45x50 is large", window.N(45), window.N(50), window.SizeLarge},
		{"50x60 is oversize not large", window.N(50), window.N(60), window.SizeOversize},
		{"oversize corner", window.N(48), window.N(48), window.SizeOversize},
		{"oversize tall", window.N(50), window.N(90), window.SizeOversize},
		{"wide but short is large", window.N(60), window.N(40), window.SizeLarge},
		{"narrow but tall is large", window.N(40), window.N(60), window.SizeLarge},
		{"45x60 is large", window.N(45), window.N(60), window.SizeLarge},
		{"43x54 is large", window.N(43), window.N(54), window.SizeLarge},
		{"zero dimensions are small", window.N(0), window.N(0), window.SizeSmall},
		{"both missing", window.Unset, window.Unset, window.SizeInvalid},
		{"missing width, short", window.Unset, window.N(40), window.SizeInvalid},
		{"missing height, narrow", window.N(20), window.Unset, window.SizeInvalid},
		{"missing width, tall", window.Unset, window.N(60), window.SizeLarge},
		{"missing height, wide", window.N(45), window.Unset, window.SizeLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.width, tt.height); got != tt.want {
				t.Errorf("Classify(%v, %v) = %s, want %s", tt.width, tt.height, got, tt.want)
			}
		})
	}
}

func TestBasePriceTable(t *testing.T) {
	card := DefaultRateCard()
	want := map[window.Type]map[window.SizeClass]string{
		window.DoubleHung: {
			window.SizeSmall:    "615.00",
			window.SizeMedium:   "655.00",
			window.SizeLarge:    "700.00",
			window.SizeOversize: "965.00",
			window.SizeInvalid:  "0.00",
		},
		window.Casement: {
			window.SizeSmall:    "420.00",
			window.SizeMedium:   "460.00",
			window.SizeLarge:    "500.00",
			window.SizeOversize: "680.00",
			window.SizeInvalid:  "0.00",
		},
	}

	for wt, column := range want {
		for _, size := range window.SizeClasses {
			got := card.BasePrice(wt, size)
			if !got.Equal(dec(column[size])) {
				t.Errorf("BasePrice(%s, %s) = %s, want %s", wt, size, got, column[size])
			}
		}
	}

	if got := card.BasePrice("awning", window.SizeSmall); !got.IsZero() {
		t.Errorf("unknown window type should price at zero, got %s", got)
	}
}

func TestLiteSurcharge(t *testing.T) {
	card := DefaultRateCard()
	tests := []struct {
		name string
		req  window.PriceRequest
		want string
	}{
		{
			name: "double hung unspecified",
			req:  window.PriceRequest{WindowType: window.DoubleHung},
			want: "0",
		},
		{
			name: "double hung single lites",
			req:  window.PriceRequest{WindowType: window.DoubleHung, UpperLites: window.N(1), LowerLites: window.N(1)},
			want: "0",
		},
		{
			name: "double hung upper only",
			req:  window.PriceRequest{WindowType: window.DoubleHung, UpperLites: window.N(3), LowerLites: window.N(1)},
			want: "165",
		},
		{
			name: "double hung both",
			req:  window.PriceRequest{WindowType: window.DoubleHung, UpperLites: window.N(6), LowerLites: window.N(2)},
			want: "440",
		},
		{
			name: "double hung ignores sash lites",
			req:  window.PriceRequest{WindowType: window.DoubleHung, SashLites: window.N(4)},
			want: "0",
		},
		{
			name: "zero lites charge nothing",
			req:  window.PriceRequest{WindowType: window.DoubleHung, UpperLites: window.N(0)},
			want: "0",
		},
		{
			name: "casement sash lites",
			req:  window.PriceRequest{WindowType: window.Casement, SashLites: window.N(2)},
			want: "110",
		},
		{
			name: "casement ignores upper and lower",
			req:  window.PriceRequest{WindowType: window.Casement, UpperLites: window.N(4), LowerLites: window.N(4)},
			want: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := card.LiteSurcharge(tt.req); !got.Equal(dec(tt.want)) {
				t.Errorf("LiteSurcharge = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestGlassSurcharge(t *testing.T) {
	card := DefaultRateCard()
	tests := []struct {
		name   string
		glass  window.Glass
		width  window.Number
		height window.Number
		want   string
	}{
		{"annealed is free", window.Annealed1_8, window.N(50), window.N(50), "0"},
		{"restoration 50x50", window.Restoration3mm, window.N(50), window.N(50), "312.5"},
		{"restoration 12x12 is one square foot", window.Restoration3mm, window.N(12), window.N(12), "18"},
		{"restoration 25x30", window.Restoration3mm, window.N(25), window.N(30), "93.75"},
		{"restoration without width", window.Restoration3mm, window.Unset, window.N(30), "0"},
		{"restoration without height", window.Restoration3mm, window.N(30), window.Unset, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := card.GlassSurcharge(tt.glass, tt.width, tt.height)
			if !got.Equal(dec(tt.want)) {
				t.Errorf("GlassSurcharge = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRetailAppliesToSummedTotal(t *testing.T) {
	engine := NewEngine()
	req := window.PriceRequest{
		WindowType: window.Casement,
		Width:      window.N(50),
		Height:     window.N(50),
		Glass:      window.Restoration3mm,
		SashLites:  window.N(2),
	}

	wholesale := engine.Compute(req).Amount()
	req.IsRetail = true
	retail := engine.Compute(req).Amount()

	if !retail.Equal(wholesale.Mul(dec("1.25"))) {
		t.Errorf("retail %s is not 1.25 x wholesale %s", retail, wholesale)
	}
}

// TestComputeExamples covers the reference prices quoted to customers
func TestComputeExamples(t *testing.T) {
	engine := NewEngine()
	tests := []struct {
		name    string
		req     window.PriceRequest
		want    string
		display string
	}{
		{
			name: "small double hung",
			req: window.PriceRequest{
				WindowType: window.DoubleHung,
				Width:      window.N(25),
				Height:     window.N(30),
				Glass:      window.Annealed1_8,
			},
			want:    "615",
			display: "$615.00",
		},
		{
			name: "medium double hung with upper lites",
			req: window.PriceRequest{
				WindowType: window.DoubleHung,
				Width:      window.N(40),
				Height:     window.N(50),
				Glass:      window.Annealed1_8,
				UpperLites: window.N(3),
				LowerLites: window.N(1),
			},
			want:    "820",
			display: "$820.00",
		},
		{
			name: "oversize casement with restoration glass",
			req: window.PriceRequest{
				WindowType: window.Casement,
				Width:      window.N(50),
				Height:     window.N(50),
				Glass:      window.Restoration3mm,
				SashLites:  window.N(2),
			},
			want:    "1102.5",
			display: "$1102.50",
		},
		{
			name: "oversize casement retail",
			req: window.PriceRequest{
				WindowType: window.Casement,
				Width:      window.N(50),
				Height:     window.N(50),
				Glass:      window.Restoration3mm,
				SashLites:  window.N(2),
				IsRetail:   true,
			},
			want:    "1378.125",
			display: "$1378.13",
		},
		{
			name: "invalid size still charges lites",
			req: window.PriceRequest{
				WindowType: window.DoubleHung,
				Height:     window.N(40),
				Glass:      window.Restoration3mm,
				LowerLites: window.N(2),
			},
			want:    "110",
			display: "$110.00",
		},
		{
			name: "nothing entered",
			req: window.PriceRequest{
				WindowType: window.Casement,
				Glass:      window.Annealed1_8,
			},
			want:    "0",
			display: "$0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.Compute(tt.req)
			if result.IsUnspecified() {
				t.Fatal("Compute returned an unspecified result")
			}
			if !result.Amount().Equal(dec(tt.want)) {
				t.Errorf("Compute = %s, want %s", result.Amount(), tt.want)
			}
			if got := result.Display(2); got != tt.display {
				t.Errorf("Display = %s, want %s", got, tt.display)
			}
		})
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	engine := NewEngine()
	req := window.PriceRequest{
		WindowType: window.DoubleHung,
		Width:      window.N(37),
		Height:     window.N(61),
		Glass:      window.Restoration3mm,
		UpperLites: window.N(4),
		LowerLites: window.N(4),
		IsRetail:   true,
	}

	first := engine.Compute(req).Amount()
	for i := 0; i < 50; i++ {
		if got := engine.Compute(req).Amount(); !got.Equal(first) {
			t.Fatalf("run %d: got %s, first run gave %s", i, got, first)
		}
	}
	if got := NewEngine().Compute(req).Amount(); !got.Equal(first) {
		t.Errorf("a second engine gave %s, want %s", got, first)
	}
}

func TestQuoteMatchesCompute(t *testing.T) {
	engine := NewEngine()
	requests := []window.PriceRequest{
		{WindowType: window.DoubleHung, Width: window.N(25), Height: window.N(30), Glass: window.Annealed1_8},
		{WindowType: window.DoubleHung, Width: window.N(44), Height: window.N(70), Glass: window.Restoration3mm, UpperLites: window.N(6), LowerLites: window.N(6), IsRetail: true},
		{WindowType: window.Casement, Width: window.N(50), Height: window.N(50), Glass: window.Restoration3mm, SashLites: window.N(2), IsRetail: true},
		{WindowType: window.Casement, Glass: window.Restoration3mm},
	}

	for _, req := range requests {
		b := engine.Quote(req)
		want := engine.Compute(req).Amount()
		if !b.Total.Equal(want) {
			t.Errorf("Quote total %s != Compute %s for %+v", b.Total, want, req)
		}

		sum := decimal.Zero
		for _, item := range b.Items {
			sum = sum.Add(item.Amount)
		}
		if !sum.Equal(b.Total) {
			t.Errorf("line items sum to %s, total is %s", sum, b.Total)
		}
	}
}

func TestQuoteLineItems(t *testing.T) {
	b := NewEngine().Quote(window.PriceRequest{
		WindowType: window.Casement,
		Width:      window.N(50),
		Height:     window.N(50),
		Glass:      window.Restoration3mm,
		SashLites:  window.N(2),
		IsRetail:   true,
	})

	if b.SizeClass != window.SizeOversize {
		t.Errorf("expected oversize, got %s", b.SizeClass)
	}

	wantIDs := []string{"base", "sash_lites", "glass", "retail"}
	if len(b.Items) != len(wantIDs) {
		t.Fatalf("expected %d items, got %d: %+v", len(wantIDs), len(b.Items), b.Items)
	}
	for i, id := range wantIDs {
		if b.Items[i].ID != id {
			t.Errorf("item %d: expected %s, got %s", i, id, b.Items[i].ID)
		}
	}
	if !b.Subtotal.Equal(dec("1102.5")) {
		t.Errorf("expected subtotal 1102.5, got %s", b.Subtotal)
	}
	if !b.Items[3].Amount.Equal(dec("275.625")) {
		t.Errorf("expected retail markup 275.625, got %s", b.Items[3].Amount)
	}
}

func TestQuoteGlassItemQuantityTimesRate(t *testing.T) {
	tests := []struct {
		name          string
		width, height int64
		amount        string
	}{
		{"typical", 50, 50, "312.5"},
		{"dimensions whose product overflows int64", 4294967296, 4294967296, "2305843009213693952"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewEngine().Quote(window.PriceRequest{
				WindowType: window.Casement,
				Width:      window.N(tt.width),
				Height:     window.N(tt.height),
				Glass:      window.Restoration3mm,
			})

			var glass *LineItem
			for i := range b.Items {
				if b.Items[i].ID == "glass" {
					glass = &b.Items[i]
				}
			}
			if glass == nil {
				t.Fatalf("no glass item in %+v", b.Items)
			}
			if !glass.Amount.Equal(dec(tt.amount)) {
				t.Errorf("expected amount %s, got %s", tt.amount, glass.Amount)
			}
			if !glass.Quantity.IsPositive() {
				t.Errorf("expected positive area, got %s", glass.Quantity)
			}
			// area is rounded at division precision, so compare at cents
			got := glass.Quantity.Mul(glass.Rate).Round(2)
			if !got.Equal(glass.Amount.Round(2)) {
				t.Errorf("quantity x rate = %s, amount = %s", got, glass.Amount)
			}
		})
	}
}
