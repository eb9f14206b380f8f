// Package window defines the window pricing request and result types.
package window

import (
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"
)

// Type is the window style being priced
type Type string

const (
	// DoubleHung has an upper and a lower sash, each with its own lites
	DoubleHung Type = "double_hung"

	// Casement has a single hinged sash
	Casement Type = "casement"
)

// Label returns the form label for the window type
func (t Type) Label() string {
	switch t {
	case DoubleHung:
		return "Double Hung"
	case Casement:
		return "Casement"
	default:
		return string(t)
	}
}

// Glass is the glazing option
type Glass string

const (
	// Annealed1_8 is 1/8" annealed glass, included in the base price
	Annealed1_8 Glass = "annealed_1_8"

	// Restoration3mm is 3mm restoration glass, charged by area
	Restoration3mm Glass = "restoration_3mm"
)

// Label returns the form label for the glass option
func (g Glass) Label() string {
	switch g {
	case Annealed1_8:
		return "1/8 annealed"
	case Restoration3mm:
		return "3mm Restoration"
	default:
		return string(g)
	}
}

// SizeClass is the pricing tier derived from width and height
type SizeClass int

const (
	SizeInvalid SizeClass = iota
	SizeSmall
	SizeMedium
	SizeLarge
	SizeOversize
)

// SizeClasses lists every class in table order
var SizeClasses = []SizeClass{SizeSmall, SizeMedium, SizeLarge, SizeOversize, SizeInvalid}

// String returns the size class name
func (c SizeClass) String() string {
	switch c {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	case SizeOversize:
		return "oversize"
	default:
		return "invalid"
	}
}

// MarshalText encodes the class by name
func (c SizeClass) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Number is an integer form value that may be absent. An absent value stands
// for an empty or unparsable field.
type Number struct {
	Value int64
	Valid bool
}

// N returns a present Number
func N(v int64) Number {
	return Number{Value: v, Valid: true}
}

// Unset is the absent Number
var Unset = Number{}

// Or returns the value, or def when absent
func (n Number) Or(def int64) int64 {
	if !n.Valid {
		return def
	}
	return n.Value
}

// String returns the value or an empty string
func (n Number) String() string {
	if !n.Valid {
		return ""
	}
	return strconv.FormatInt(n.Value, 10)
}

// MarshalJSON encodes absent values as null
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(n.Value, 10)), nil
}

// UnmarshalJSON accepts a number, a numeric string, an empty string or null.
// Strings go through ParseNumber, so "36in" reads as 36.
func (n *Number) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = Unset
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = ParseNumber(s)
		return nil
	}
	var f json.Number
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = ParseNumber(f.String())
	return nil
}

// PriceRequest is the input to a single price computation
type PriceRequest struct {
	// WindowType selects the base price column and which lite fields apply
	WindowType Type `json:"window_type"`

	// Width and Height are in inches
	Width  Number `json:"width"`
	Height Number `json:"height"`

	// Glass is the glazing option
	Glass Glass `json:"glass"`

	// UpperLites and LowerLites apply to double-hung windows only
	UpperLites Number `json:"upper_lites"`
	LowerLites Number `json:"lower_lites"`

	// SashLites applies to casement windows only
	SashLites Number `json:"sash_lites"`

	// IsRetail applies the retail markup
	IsRetail bool `json:"retail"`
}

// PriceResult is either a computed amount or unspecified. The zero value is
// unspecified.
type PriceResult struct {
	amount   decimal.Decimal
	computed bool
}

// Priced returns a computed result
func Priced(amount decimal.Decimal) PriceResult {
	return PriceResult{amount: amount, computed: true}
}

// Unspecified returns the "awaiting input" result
func Unspecified() PriceResult {
	return PriceResult{}
}

// IsUnspecified reports whether no computation has happened
func (r PriceResult) IsUnspecified() bool {
	return !r.computed
}

// Amount returns the full-precision amount; zero when unspecified
func (r PriceResult) Amount() decimal.Decimal {
	return r.amount
}

// Display formats the result as currency, or "Awaiting Input".
// Rounding is half away from zero, so 1378.125 shows as $1378.13.
func (r PriceResult) Display(places int32) string {
	if !r.computed {
		return "Awaiting Input"
	}
	return FormatMoney(r.amount, places)
}

// MarshalJSON encodes the amount and its display string
func (r PriceResult) MarshalJSON() ([]byte, error) {
	if !r.computed {
		return json.Marshal(map[string]interface{}{
			"amount":  nil,
			"display": r.Display(2),
		})
	}
	return json.Marshal(map[string]interface{}{
		"amount":  r.amount.String(),
		"display": r.Display(2),
	})
}

// FormatMoney renders an amount as "$1234.56"
func FormatMoney(amount decimal.Decimal, places int32) string {
	if amount.IsNegative() {
		return "-$" + amount.Neg().StringFixed(places)
	}
	return "$" + amount.StringFixed(places)
}
