// Package calculator holds the state of one price calculator form.
//
// Every field change clears the displayed price back to "Awaiting Input"
// and then recomputes it, so the price on screen always matches the fields.
// A Session is not safe for concurrent use; each form owns its own.
package calculator

import (
	"fmt"
	"strings"

	"windowprice/core/determinism"
	"windowprice/core/pricing"
	"windowprice/core/window"
	"windowprice/internal/errors"
)

// Field names a form field
type Field string

const (
	FieldWindowType Field = "window_type"
	FieldWidth      Field = "width"
	FieldHeight     Field = "height"
	FieldGlass      Field = "glass"
	FieldUpperLites Field = "upper_lites"
	FieldLowerLites Field = "lower_lites"
	FieldSashLites  Field = "sash_lites"
	FieldRetail     Field = "retail"
)

var fieldAliases = map[string]Field{
	"type":   FieldWindowType,
	"w":      FieldWidth,
	"h":      FieldHeight,
	"upper":  FieldUpperLites,
	"lower":  FieldLowerLites,
	"sash":   FieldSashLites,
	"lites":  FieldSashLites,
	"markup": FieldRetail,
}

// ParseField resolves a field name or alias
func ParseField(s string) (Field, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.ReplaceAll(name, "-", "_")
	if f, ok := fieldAliases[name]; ok {
		return f, nil
	}
	for _, f := range Fields() {
		if string(f) == name {
			return f, nil
		}
	}
	return "", errors.Input(s, "unknown field: "+s)
}

// Fields lists the form fields in display order
func Fields() []Field {
	return []Field{
		FieldWindowType, FieldWidth, FieldHeight, FieldGlass,
		FieldUpperLites, FieldLowerLites, FieldSashLites, FieldRetail,
	}
}

// Session is the form state
type Session struct {
	engine *pricing.Engine

	windowType window.Type
	glass      window.Glass
	raw        map[Field]string
	retail     bool

	price window.PriceResult

	// OnChange, if set, is called after every recompute
	OnChange func(window.PriceResult)
}

// NewSession creates a form with its initial selections: Double Hung,
// 1/8 annealed, empty fields, not retail, awaiting input.
func NewSession(engine *pricing.Engine) *Session {
	if engine == nil {
		engine = pricing.NewEngine()
	}
	return &Session{
		engine:     engine,
		windowType: window.DoubleHung,
		glass:      window.Annealed1_8,
		raw:        make(map[Field]string),
		price:      window.Unspecified(),
	}
}

// Set changes one field and recomputes. Window type and glass must be
// recognised labels; an unknown label leaves the form unchanged. Numeric
// fields accept any text.
func (s *Session) Set(field Field, value string) error {
	switch field {
	case FieldWindowType:
		t, err := window.ParseType(value)
		if err != nil {
			return err
		}
		s.windowType = t
	case FieldGlass:
		g, err := window.ParseGlass(value)
		if err != nil {
			return err
		}
		s.glass = g
	case FieldRetail:
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "true", "yes", "on", "1", "y":
			s.retail = true
		case "false", "no", "off", "0", "n", "":
			s.retail = false
		default:
			return errors.Input(string(field), "retail must be yes or no")
		}
	case FieldWidth, FieldHeight, FieldUpperLites, FieldLowerLites, FieldSashLites:
		s.raw[field] = value
	default:
		return errors.Input(string(field), "unknown field: "+string(field))
	}

	s.price = window.Unspecified()
	s.recompute()
	return nil
}

// ToggleRetail flips the retail checkbox and recomputes
func (s *Session) ToggleRetail() {
	s.retail = !s.retail
	s.price = window.Unspecified()
	s.recompute()
}

// Reset returns the form to its initial state
func (s *Session) Reset() {
	s.windowType = window.DoubleHung
	s.glass = window.Annealed1_8
	s.raw = make(map[Field]string)
	s.retail = false
	s.price = window.Unspecified()
}

func (s *Session) recompute() {
	s.price = s.engine.Compute(s.Request())
	if s.OnChange != nil {
		s.OnChange(s.price)
	}
}

// Request converts the form into a PriceRequest
func (s *Session) Request() window.PriceRequest {
	return window.PriceRequest{
		WindowType: s.windowType,
		Width:      window.ParseNumber(s.raw[FieldWidth]),
		Height:     window.ParseNumber(s.raw[FieldHeight]),
		Glass:      s.glass,
		UpperLites: window.ParseNumber(s.raw[FieldUpperLites]),
		LowerLites: window.ParseNumber(s.raw[FieldLowerLites]),
		SashLites:  window.ParseNumber(s.raw[FieldSashLites]),
		IsRetail:   s.retail,
	}
}

// Price returns the current result
func (s *Session) Price() window.PriceResult {
	return s.price
}

// Breakdown explains the current price, or nil while awaiting input
func (s *Session) Breakdown() *pricing.Breakdown {
	if s.price.IsUnspecified() {
		return nil
	}
	return s.engine.Quote(s.Request())
}

// Display renders the price line the form shows
func (s *Session) Display() string {
	return "Price: " + s.price.Display(2)
}

// Visible lists the fields the form shows for the current window type.
// Lite fields for the other window type are hidden.
func (s *Session) Visible() []Field {
	fields := []Field{FieldWindowType, FieldWidth, FieldHeight, FieldGlass}
	if s.windowType == window.DoubleHung {
		fields = append(fields, FieldUpperLites, FieldLowerLites)
	} else {
		fields = append(fields, FieldSashLites)
	}
	return append(fields, FieldRetail)
}

// Values returns the visible fields and their current text
func (s *Session) Values() map[Field]string {
	values := make(map[Field]string)
	for _, f := range s.Visible() {
		switch f {
		case FieldWindowType:
			values[f] = s.windowType.Label()
		case FieldGlass:
			values[f] = s.glass.Label()
		case FieldRetail:
			values[f] = fmt.Sprintf("%t", s.retail)
		default:
			values[f] = s.raw[f]
		}
	}
	return values
}

// String renders the visible fields as "name=value" pairs
func (s *Session) String() string {
	var parts []string
	determinism.RangeMapSorted(s.Values(), func(f Field, v string) bool {
		parts = append(parts, fmt.Sprintf("%s=%q", f, v))
		return true
	})
	return strings.Join(parts, " ")
}
