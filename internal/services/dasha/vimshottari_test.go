package dasha

import (
	"testing"

	"github.com/newdevoleper/match-making/internal/services/zodiac"
)

const birthJD = 2451545.0 // 2000-01-01 noon

func TestCurrentAtBirth(t *testing.T) {
	// Moon at 0°: Ashwini start, nothing traversed, Ketu's full 7-year
	// period opens exactly at birth.
	p := Current(birthJD, 0, birthJD)
	if p.Maha.Lord != zodiac.Ketu {
		t.Fatalf("maha lord=%s, want Ketu", p.Maha.Lord)
	}
	if p.Maha.Start != birthJD {
		t.Fatalf("maha start=%v, want %v", p.Maha.Start, birthJD)
	}
	if got, want := p.Maha.End-p.Maha.Start, 7*365.25; got != want {
		t.Fatalf("maha span=%v days, want %v", got, want)
	}
	// The first antar and pratyantar belong to the maha lord itself.
	if p.Antar.Lord != zodiac.Ketu || p.Pratyantar.Lord != zodiac.Ketu {
		t.Fatalf("antar=%s pratyantar=%s, want Ketu/Ketu", p.Antar.Lord, p.Pratyantar.Lord)
	}
}

func TestCurrentBackdatesTraversedFraction(t *testing.T) {
	// Moon halfway through Ashwini: half of Ketu's period is already spent.
	moon := zodiac.NakshatraSpan / 2
	p := Current(birthJD, moon, birthJD)
	wantStart := birthJD - 0.5*7*365.25
	if p.Maha.Start != wantStart {
		t.Fatalf("maha start=%v, want %v", p.Maha.Start, wantStart)
	}
	if p.Maha.End != wantStart+7*365.25 {
		t.Fatalf("maha end=%v", p.Maha.End)
	}
}

func TestCurrentWalksForward(t *testing.T) {
	// 8 years after birth with Moon at 0°: Ketu's 7 years are over, Venus
	// rules the maha.
	target := birthJD + 8*365.25
	p := Current(birthJD, 0, target)
	if p.Maha.Lord != zodiac.Venus {
		t.Fatalf("maha lord=%s, want Venus", p.Maha.Lord)
	}
	if p.Maha.Start != birthJD+7*365.25 {
		t.Fatalf("maha start=%v", p.Maha.Start)
	}
}

func TestNestingInvariant(t *testing.T) {
	moons := []float64{0, 10, 133.7, 266.61, 359.2}
	offsets := []float64{0, 100, 3650, 12000, 36525}
	for _, moon := range moons {
		for _, off := range offsets {
			target := birthJD + off
			p := Current(birthJD, moon, target)
			if p.Antar.Start < p.Maha.Start || p.Antar.End > p.Maha.End {
				t.Fatalf("antar %+v escapes maha %+v", p.Antar, p.Maha)
			}
			if p.Pratyantar.Start < p.Antar.Start {
				t.Fatalf("pratyantar %+v starts before antar %+v", p.Pratyantar, p.Antar)
			}
			for _, per := range []Period{p.Maha, p.Antar, p.Pratyantar} {
				if !(per.Start <= target && target < per.End) {
					t.Fatalf("target %v outside %+v", target, per)
				}
			}
		}
	}
}

func TestAntarPartitionsParentExactly(t *testing.T) {
	// Walking all nine antar slots of a maha must land exactly on the
	// maha's end: the proportional spans sum to the parent by the 120-year
	// table.
	p := Current(birthJD, 0, birthJD)
	start := p.Maha.Start
	parentYears := float64(zodiac.DashaYears[p.Maha.Lord])
	startIdx := 0 // Ketu
	end := start
	for i := 0; i < 9; i++ {
		lord := zodiac.DashaLords[(startIdx+i)%9]
		end += parentYears * float64(zodiac.DashaYears[lord]) / 120.0 * 365.25
	}
	if diff := end - p.Maha.End; diff > 1e-6 || diff < -1e-6 {
		t.Fatalf("antar slots sum to %v, maha ends at %v", end, p.Maha.End)
	}
}
