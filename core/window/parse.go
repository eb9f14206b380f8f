package window

import (
	"strconv"
	"strings"

	"windowprice/internal/errors"
)

// ParseNumber reads a form field the way the calculator always has: leading
// whitespace is skipped, an optional sign and the leading run of digits are
// taken, and everything after is ignored. "48.5" reads as 48 and "36in" as
// 36. An empty or non-numeric field is Unset. Negative values are Unset
// because no window dimension or lite count can be below zero.
func ParseNumber(s string) Number {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return Unset
	}
	v, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil || v < 0 {
		return Unset
	}
	return N(v)
}

// ParseType accepts the form labels and common shorthands. An empty value
// selects Double Hung, the form's initial choice.
func ParseType(s string) (Type, error) {
	switch normalize(s) {
	case "doublehung", "dh", "double", "":
		return DoubleHung, nil
	case "casement", "c", "cas":
		return Casement, nil
	}
	return "", errors.Input("window_type", "unknown window type: "+s).
		WithContext("accepted", []string{DoubleHung.Label(), Casement.Label()})
}

// ParseGlass accepts the form labels and common shorthands. An empty value
// selects 1/8 annealed.
func ParseGlass(s string) (Glass, error) {
	switch normalize(s) {
	case "18annealed", "annealed18", "annealed", "18", "":
		return Annealed1_8, nil
	case "3mmrestoration", "restoration3mm", "restoration", "3mm":
		return Restoration3mm, nil
	}
	return "", errors.Input("glass", "unknown glass type: "+s).
		WithContext("accepted", []string{Annealed1_8.Label(), Restoration3mm.Label()})
}

// normalize lowercases and drops spaces, dashes, underscores and slashes so
// "Double Hung", "double-hung" and "double_hung" compare equal.
func normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch r {
		case ' ', '-', '_', '/', '"':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Validate checks the enumerated fields. Dimensions and lite counts are never
// rejected: missing values price as an invalid size or the default lite count.
func (r PriceRequest) Validate() error {
	switch r.WindowType {
	case DoubleHung, Casement:
	default:
		return errors.Input("window_type", "unknown window type: "+string(r.WindowType))
	}
	switch r.Glass {
	case Annealed1_8, Restoration3mm:
	default:
		return errors.Input("glass", "unknown glass type: "+string(r.Glass))
	}
	return nil
}

// UnmarshalText accepts any label ParseType understands
func (t *Type) UnmarshalText(text []byte) error {
	v, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// UnmarshalText accepts any label ParseGlass understands
func (g *Glass) UnmarshalText(text []byte) error {
	v, err := ParseGlass(string(text))
	if err != nil {
		return err
	}
	*g = v
	return nil
}

// WithDefaults fills the form's initial selections for empty enum fields
func (r PriceRequest) WithDefaults() PriceRequest {
	if r.WindowType == "" {
		r.WindowType = DoubleHung
	}
	if r.Glass == "" {
		r.Glass = Annealed1_8
	}
	return r
}
