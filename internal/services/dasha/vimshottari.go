// Package dasha computes the Vimshottari time-period hierarchy.
package dasha

import "github.com/newdevoleper/match-making/internal/services/zodiac"

const (
	totalYears  = 120.0
	daysPerYear = 365.25
)

// Period is one (lord, interval) slot at any level of the hierarchy.
// Start and End are Julian Day numbers.
type Period struct {
	Lord  string  `json:"lord"`
	Start float64 `json:"start_jd"`
	End   float64 `json:"end_jd"`
}

// Pointer is the nested period triple active at a target instant, from the
// outermost maha period down to the pratyantar level.
type Pointer struct {
	Maha       Period `json:"maha"`
	Antar      Period `json:"antar"`
	Pratyantar Period `json:"pratyantar"`
}

// Current returns the dasha pointer active at targetJD for a native born at
// birthJD with the Moon at moonLon. The birth nakshatra's lord opens the
// cycle, its period backdated by the fraction of the nakshatra already
// traversed; each level walks the nine-lord sequence forward until the
// target falls inside a slot. Only forward walking is needed: callers pass
// targets at or after birth.
func Current(birthJD, moonLon, targetJD float64) Pointer {
	nakIndex, fraction := zodiac.NakshatraFraction(moonLon)
	birthLord := zodiac.NakshatraLord(nakIndex)
	lordIdx := lordIndex(birthLord)

	years := float64(zodiac.DashaYears[birthLord])
	mahaStart := birthJD - fraction*years*daysPerYear
	mahaEnd := mahaStart + years*daysPerYear

	// Maha level: whole periods.
	idx := lordIdx
	start, end := mahaStart, mahaEnd
	for targetJD >= end {
		idx = (idx + 1) % 9
		start = end
		end += float64(zodiac.DashaYears[zodiac.DashaLords[idx]]) * daysPerYear
	}
	maha := Period{Lord: zodiac.DashaLords[idx], Start: start, End: end}

	antar := subdivide(maha, float64(zodiac.DashaYears[maha.Lord]), idx, targetJD)
	pratyantar := subdivide(antar, float64(zodiac.DashaYears[antar.Lord]), lordIndex(antar.Lord), targetJD)

	return Pointer{Maha: maha, Antar: antar, Pratyantar: pratyantar}
}

// subdivide walks the proportional sub-periods of a parent slot. The child
// sequence starts at the parent's own lord; each child occupies
// parentYears*childYears/120 years of the parent's span.
func subdivide(parent Period, parentYears float64, startIdx int, targetJD float64) Period {
	idx := startIdx
	lord := zodiac.DashaLords[idx]
	start := parent.Start
	end := start + spanDays(parentYears, lord)
	for targetJD >= end {
		idx = (idx + 1) % 9
		lord = zodiac.DashaLords[idx]
		start = end
		end += spanDays(parentYears, lord)
	}
	return Period{Lord: lord, Start: start, End: end}
}

func spanDays(parentYears float64, lord string) float64 {
	return parentYears * float64(zodiac.DashaYears[lord]) / totalYears * daysPerYear
}

func lordIndex(lord string) int {
	for i, l := range zodiac.DashaLords {
		if l == lord {
			return i
		}
	}
	return 0
}
