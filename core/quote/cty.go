package quote

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"windowprice/core/window"
	"windowprice/internal/errors"
)

// attrValue evaluates an attribute without variables or functions; quote
// files hold literals only.
func attrValue(attr *hcl.Attribute) (cty.Value, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, diagError(diags)
	}
	if !val.IsKnown() {
		return cty.NilVal, errors.Input(attr.Name, attr.Name+" must be a literal value")
	}
	return val, nil
}

// numberAttr reads a dimension or count. Numbers are truncated toward zero,
// strings go through the form parser, null and negatives are unset.
func numberAttr(attr *hcl.Attribute) (window.Number, error) {
	val, err := attrValue(attr)
	if err != nil {
		return window.Unset, err
	}
	if val.IsNull() {
		return window.Unset, nil
	}

	switch ty := val.Type(); {
	case ty.Equals(cty.Number):
		bf := val.AsBigFloat()
		if bf.Sign() < 0 {
			return window.Unset, nil
		}
		n, _ := bf.Int64()
		return window.N(n), nil
	case ty.Equals(cty.String):
		return window.ParseNumber(val.AsString()), nil
	default:
		return window.Unset, errors.Input(attr.Name, attr.Name+" must be a number, got "+val.Type().FriendlyName())
	}
}

func stringAttr(attr *hcl.Attribute) (string, error) {
	val, err := attrValue(attr)
	if err != nil {
		return "", err
	}
	if val.IsNull() {
		return "", nil
	}
	str, convErr := convert.Convert(val, cty.String)
	if convErr != nil {
		return "", errors.Input(attr.Name, attr.Name+" must be a string, got "+val.Type().FriendlyName())
	}
	return str.AsString(), nil
}

func boolAttr(attr *hcl.Attribute) (bool, error) {
	val, err := attrValue(attr)
	if err != nil {
		return false, err
	}
	if val.IsNull() {
		return false, nil
	}
	b, convErr := convert.Convert(val, cty.Bool)
	if convErr != nil {
		return false, errors.Input(attr.Name, attr.Name+" must be true or false")
	}
	return b.True(), nil
}
