// Package dosha classifies affliction patterns in a natal chart.
package dosha

import (
	"fmt"

	"github.com/newdevoleper/match-making/internal/services/zodiac"
)

// Axis and roll-up states.
const (
	Afflicted    = "Afflicted"
	Clean        = "Clean"
	NotAfflicted = "Not Afflicted"
)

// KujaStatus reports the Mars affliction per reference point. Total is the
// cancellation reason when cancelled, "Afflicted" when not, and
// "Not Afflicted" when no axis was afflicted to begin with.
type KujaStatus struct {
	Lagna   string `json:"lagna"`
	Chandra string `json:"chandra"`
	Shukra  string `json:"shukra"`
	Total   string `json:"total"`
}

// Afflicted reports whether the dosha stands uncancelled.
func (s KujaStatus) Afflicted() bool { return s.Total == Afflicted }

// KujaPoints carries everything the Mars dosha evaluation reads.
type KujaPoints struct {
	MarsHouse  int
	MoonHouse  int
	VenusHouse int
	MarsLon    float64
	MoonLon    float64
	SunLon     float64
	Bodies     map[string]float64
	D9Bodies   map[string]float64
}

// kujaHouses are the afflicting relative houses for Mars.
var kujaHouses = map[int]bool{2: true, 4: true, 7: true, 8: true, 12: true}

// EvaluateKuja flags the Mars dosha from the Lagna, Moon and Venus axes and
// applies the cancellation ladder when any axis is afflicted.
func EvaluateKuja(p KujaPoints) KujaStatus {
	fromLagna := kujaHouses[p.MarsHouse]
	fromMoon := kujaHouses[zodiac.RelativeHouse(p.MarsHouse, p.MoonHouse)]
	fromVenus := kujaHouses[zodiac.RelativeHouse(p.MarsHouse, p.VenusHouse)]

	st := KujaStatus{
		Lagna:   axis(fromLagna),
		Chandra: axis(fromMoon),
		Shukra:  axis(fromVenus),
		Total:   NotAfflicted,
	}
	if fromLagna || fromMoon || fromVenus {
		if cancelled, reason := CheckKujaCancellation(p); cancelled {
			st.Total = reason
		} else {
			st.Total = Afflicted
		}
	}
	return st
}

func axis(afflicted bool) string {
	if afflicted {
		return Afflicted
	}
	return Clean
}

// kujaCancellations is the ordered rule ladder; first match wins. The order
// is part of the contract: the reason string of an earlier rule must not be
// shadowed by a later one.
var kujaCancellations = []func(p KujaPoints) (string, bool){
	ownDignityD1,
	beneficSignD1,
	beneficConjunction,
	beneficAspect,
	jupiterTrineAspect,
	ownDignityD9,
}

// CheckKujaCancellation walks the cancellation ladder. It is evaluated
// independently of the afflicted axes, so a Mars in its own sign cancels
// regardless of which axis raised the flag.
func CheckKujaCancellation(p KujaPoints) (bool, string) {
	for _, rule := range kujaCancellations {
		if reason, ok := rule(p); ok {
			return true, reason
		}
	}
	return false, Afflicted
}

func ownDignityD1(p KujaPoints) (string, bool) {
	sign := zodiac.SignIndex(p.MarsLon)
	switch {
	case zodiac.InOwnSign(zodiac.Mars, sign):
		return "Cancelled (Own Sign D1)", true
	case zodiac.IsExalted(zodiac.Mars, sign):
		return "Cancelled (Exalted D1)", true
	case zodiac.IsDebilitated(zodiac.Mars, sign):
		return "Cancelled (Debilitated D1)", true
	}
	return "", false
}

// beneficSigns are Leo, Sagittarius and Pisces.
var beneficSigns = map[int]bool{4: true, 8: true, 11: true}

func beneficSignD1(p KujaPoints) (string, bool) {
	if beneficSigns[zodiac.SignIndex(p.MarsLon)] {
		return "Cancelled (Benefic Sign D1)", true
	}
	return "", false
}

// benefics returns the benefic reference points in a fixed order. The Moon
// joins only when it stands roughly opposite the Sun (separation within
// (150°,210°)), acting as a benefic in that configuration.
func benefics(p KujaPoints) []struct {
	name string
	lon  float64
	ok   bool
} {
	moonBenefic := false
	if sep := zodiac.ArcDistance(p.MoonLon, p.SunLon); sep > 150 {
		moonBenefic = true
	}
	jup, jupOK := p.Bodies[zodiac.Jupiter]
	ven, venOK := p.Bodies[zodiac.Venus]
	return []struct {
		name string
		lon  float64
		ok   bool
	}{
		{zodiac.Jupiter, jup, jupOK},
		{zodiac.Venus, ven, venOK},
		{zodiac.Moon, p.MoonLon, moonBenefic},
	}
}

func beneficConjunction(p KujaPoints) (string, bool) {
	for _, b := range benefics(p) {
		if !b.ok {
			continue
		}
		if zodiac.ArcDistance(p.MarsLon, b.lon) < 8 {
			return fmt.Sprintf("Cancelled (Conj. %s D1)", b.name), true
		}
	}
	return "", false
}

func beneficAspect(p KujaPoints) (string, bool) {
	marsSign := zodiac.SignIndex(p.MarsLon)
	for _, b := range benefics(p) {
		if !b.ok {
			continue
		}
		if marsSign == (zodiac.SignIndex(b.lon)+6)%12 {
			return fmt.Sprintf("Cancelled (Aspect %s D1)", b.name), true
		}
	}
	return "", false
}

func jupiterTrineAspect(p KujaPoints) (string, bool) {
	jup, ok := p.Bodies[zodiac.Jupiter]
	if !ok {
		return "", false
	}
	marsSign := zodiac.SignIndex(p.MarsLon)
	jupSign := zodiac.SignIndex(jup)
	if marsSign == (jupSign+4)%12 || marsSign == (jupSign+8)%12 {
		return "Cancelled (Aspect Jupiter D1)", true
	}
	return "", false
}

func ownDignityD9(p KujaPoints) (string, bool) {
	lon, ok := p.D9Bodies[zodiac.Mars]
	if !ok {
		return "", false
	}
	sign := zodiac.SignIndex(lon)
	switch {
	case zodiac.InOwnSign(zodiac.Mars, sign):
		return "Cancelled (Own Sign D9)", true
	case zodiac.IsExalted(zodiac.Mars, sign):
		return "Cancelled (Exalted D9)", true
	case zodiac.IsDebilitated(zodiac.Mars, sign):
		return "Cancelled (Debilitated D9)", true
	}
	return "", false
}
