package pricing

import (
	"github.com/shopspring/decimal"

	"windowprice/core/window"
)

// liteCharge is count*rate when the sash has more than one lite. Unset
// counts default to a single lite.
func liteCharge(count window.Number, rate decimal.Decimal) decimal.Decimal {
	n := count.Or(1)
	if n <= 1 {
		return decimal.Zero
	}
	return rate.Mul(decimal.NewFromInt(n))
}

// LiteSurcharge sums the lite charges for the sashes of the window type.
// Double-hung windows are charged for upper and lower lites; casements for
// sash lites. The other fields are ignored.
func (c RateCard) LiteSurcharge(req window.PriceRequest) decimal.Decimal {
	switch req.WindowType {
	case window.DoubleHung:
		return liteCharge(req.UpperLites, c.PerLite).Add(liteCharge(req.LowerLites, c.PerLite))
	case window.Casement:
		return liteCharge(req.SashLites, c.PerLite)
	default:
		return decimal.Zero
	}
}

// GlassSurcharge charges restoration glass by area: (w*h/144) * rate.
// Annealed glass is included in the base price. Without both dimensions
// there is no area to charge for.
func (c RateCard) GlassSurcharge(glass window.Glass, width, height window.Number) decimal.Decimal {
	if glass != window.Restoration3mm || !width.Valid || !height.Valid {
		return decimal.Zero
	}
	area := decimal.NewFromInt(width.Value).Mul(decimal.NewFromInt(height.Value))
	// multiply before dividing so whole-dollar results stay exact
	return area.Mul(c.RestorationPerSqFt).Div(squareInchesPerFoot)
}

// RetailAdjustment applies the retail multiplier to a summed total
func (c RateCard) RetailAdjustment(total decimal.Decimal, retail bool) decimal.Decimal {
	if !retail {
		return total
	}
	return total.Mul(c.RetailMultiplier)
}
