package pricing

import "windowprice/core/window"

// Classify assigns a size class. The rules overlap and are checked in order,
// first match wins:
//
//	w < 30 && h < 36    small
//	w <= 42 && h <= 54  medium
//	w >= 48 && h >= 48  oversize
//	w > 42 || h > 54    large
//	otherwise           invalid
//
// So 29x35 is small though it also fits medium, and 50x60 is oversize though
// it also fits large. With both dimensions present one
// of the rules always matches; a missing dimension fails every comparison it
// takes part in, which is the only way to reach invalid.
func Classify(width, height window.Number) window.SizeClass {
	switch {
	case lt(width, 30) && lt(height, 36):
		return window.SizeSmall
	case le(width, 42) && le(height, 54):
		return window.SizeMedium
	case ge(width, 48) && ge(height, 48):
		return window.SizeOversize
	case gt(width, 42) || gt(height, 54):
		return window.SizeLarge
	default:
		return window.SizeInvalid
	}
}

func lt(n window.Number, v int64) bool { return n.Valid && n.Value < v }
func le(n window.Number, v int64) bool { return n.Valid && n.Value <= v }
func ge(n window.Number, v int64) bool { return n.Valid && n.Value >= v }
func gt(n window.Number, v int64) bool { return n.Valid && n.Value > v }
