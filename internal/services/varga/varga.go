// Package varga derives harmonic (divisional) charts from base longitudes.
package varga

import "github.com/newdevoleper/match-making/internal/services/zodiac"

// Navamsa returns the 9th-harmonic (D9) longitude of a base longitude. The
// sign is found from the pada slice and the sign's starting group; the result
// is pinned to the target sign's 15° midpoint, discarding sub-sign precision.
func Navamsa(lon float64) float64 {
	lon = zodiac.Norm(lon)
	sign := int(lon / 30)
	inSign := lon - float64(sign)*30
	pada := int(inSign / zodiac.PadaSpan)

	var start int
	switch sign % 3 {
	case 0: // movable signs
		start = 0
	case 1: // fixed signs
		start = 9
	default: // dual signs
		start = 6
	}
	d9sign := (start + pada) % 12
	return float64(d9sign)*30 + 15
}

// D50 returns the 50th-harmonic longitude: a pure multiplicative wrap that
// keeps full precision.
func D50(lon float64) float64 {
	return zodiac.Norm(lon * 50.0)
}

// TransformAll applies the given harmonic to every body of a chart,
// including the synthetic Lagna entry.
func TransformAll(bodies map[string]float64, harmonic func(float64) float64) map[string]float64 {
	out := make(map[string]float64, len(bodies))
	for name, lon := range bodies {
		out[name] = harmonic(lon)
	}
	return out
}
