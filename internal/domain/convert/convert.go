// Package convert holds the pure color and unit conversions between the Hue
// data model (hue 0-65535, sat/bri 0-254, mired 153-500) and the Domoticz one
// (hue 0-360, sat/level 0-100, cw/ww 0-255). Inputs are clamped, never
// rejected.
package convert

import "math"

// RGBToHSV converts an RGB triple (0-255 per channel) to hexagonal HSV with
// all components in [0,1]. The degenerate grey case yields hue 0, sat 0.
func RGBToHSV(r, g, b int) (h, s, v float64) {
	rf := clampF(float64(r)/255, 0, 1)
	gf := clampF(float64(g)/255, 0, 1)
	bf := clampF(float64(b)/255, 0, 1)

	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))
	v = max
	if max == min {
		return 0, 0, v
	}
	s = (max - min) / max

	rc := (max - rf) / (max - min)
	gc := (max - gf) / (max - min)
	bc := (max - bf) / (max - min)
	switch max {
	case rf:
		h = bc - gc
	case gf:
		h = 2 + rc - bc
	default:
		h = 4 + gc - rc
	}
	h = h / 6
	h = h - math.Floor(h) // wrap into [0,1)
	return h, s, v
}

// HSVToHueScale scales a [0,1] hue/saturation pair into Hue's integer ranges.
func HSVToHueScale(h, s float64) (hue, sat int) {
	return int(clampF(h, 0, 1) * 65535), int(clampF(s, 0, 1) * 254)
}

// HueSatToHub rescales Hue's hue/sat integers into the hub's 0-360 / 0-100
// command parameters.
func HueSatToHub(hue, sat int) (hubHue, hubSat int) {
	return clamp(hue, 0, 65535) * 360 / 65535, clamp(sat, 0, 254) * 100 / 254
}

// MiredToWhiteMix interpolates a mired color temperature into the hub's
// cool/warm white channel mix. 153 yields (255,0), 500 yields (0,255);
// out-of-range input clamps to the nearest bound.
func MiredToWhiteMix(mired int) (cool, warm int) {
	normalized := (float64(clamp(mired, 153, 500)) - 153) / (500 - 153)
	return int(255 * (1 - normalized)), int(255 * normalized)
}

// BriToPercent maps Hue brightness (0-254) onto the hub's percent scale.
func BriToPercent(bri int) int {
	return int(math.Round(float64(clamp(bri, 0, 254)) * 100 / 254))
}

// PercentToBri is the inverse of BriToPercent.
func PercentToBri(pct int) int {
	return int(math.Round(float64(clamp(pct, 0, 100)) * 254 / 100))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampF(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
