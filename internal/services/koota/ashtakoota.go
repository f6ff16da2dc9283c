// Package koota implements the eight-factor Guna Milan comparison between
// two Moon positions.
package koota

import (
	"math"

	"github.com/newdevoleper/match-making/internal/services/zodiac"
)

// Breakdown carries the per-factor points behind a Guna Milan total. The
// weights are fixed: Varna 1, Vashya 2, Tara 3, Yoni 4, Graha Maitri 5,
// Gana 6, Bhakoot 7, Nadi 8.
type Breakdown struct {
	Varna       float64 `json:"varna"`
	Vashya      float64 `json:"vashya"`
	Tara        float64 `json:"tara"`
	Yoni        float64 `json:"yoni"`
	GrahaMaitri float64 `json:"graha_maitri"`
	Gana        float64 `json:"gana"`
	Bhakoot     float64 `json:"bhakoot"`
	Nadi        float64 `json:"nadi"`
}

// Total sums the factors, clamped to [0,36] and rounded to the nearest
// integer. Halves round away from zero, so the 1.5-point tara directions
// can only push a total up: 23.5 reports as 24.
func (b Breakdown) Total() int {
	sum := b.Varna + b.Vashya + b.Tara + b.Yoni + b.GrahaMaitri + b.Gana + b.Bhakoot + b.Nadi
	n := int(math.Round(sum))
	if n < 0 {
		return 0
	}
	if n > 36 {
		return 36
	}
	return n
}

// Score compares two Moon longitudes (native 1 first) and returns the Guna
// Milan total with its factor breakdown. The factor tables are fixed design
// constants; any deviation changes real matching outcomes.
func Score(moon1, moon2 float64) (int, Breakdown) {
	nak1, _ := zodiac.NakshatraFraction(moon1)
	nak2, _ := zodiac.NakshatraFraction(moon2)
	rasi1 := zodiac.SignIndex(moon1)
	rasi2 := zodiac.SignIndex(moon2)

	b := Breakdown{
		Varna:       varna(rasi1, rasi2),
		Vashya:      vashya(rasi1, rasi2),
		Tara:        tara(nak1, nak2),
		Yoni:        yoni(nak1, nak2),
		GrahaMaitri: grahaMaitri(zodiac.SignLord(rasi1), zodiac.SignLord(rasi2)),
		Gana:        gana(nak1, nak2),
		Bhakoot:     bhakoot(rasi1, rasi2),
		Nadi:        nadi(nak1, nak2),
	}
	return b.Total(), b
}

// varna scores 1 when native 1's caste rank does not exceed native 2's.
func varna(rasi1, rasi2 int) float64 {
	if varnaRank[rasi1] <= varnaRank[rasi2] {
		return 1
	}
	return 0
}

// vashya: identical dominance category scores full; the antagonistic
// quadruped/wild pair scores zero; everything else scores half.
func vashya(rasi1, rasi2 int) float64 {
	v1, v2 := vashyaGroup[rasi1], vashyaGroup[rasi2]
	switch {
	case v1 == v2:
		return 2
	case (v1 == vashyaChatushpada && v2 == vashyaVanachara) ||
		(v1 == vashyaVanachara && v2 == vashyaChatushpada):
		return 0
	default:
		return 1
	}
}

// tara checks the nakshatra count in both directions; a direction scores 1.5
// unless its 9-fold remainder lands on the 3rd, 5th or 7th tara.
func tara(nak1, nak2 int) float64 {
	score := 0.0
	if taraOK((nak2 - nak1 + 27) % 27) {
		score += 1.5
	}
	if taraOK((nak1 - nak2 + 27) % 27) {
		score += 1.5
	}
	return score
}

func taraOK(dist int) bool {
	switch (dist + 1) % 9 {
	case 3, 5, 7:
		return false
	}
	return true
}

// yoni: identical animal scores full, same parity scores 3, else nothing.
func yoni(nak1, nak2 int) float64 {
	y1, y2 := yoniAnimal(nak1), yoniAnimal(nak2)
	switch {
	case y1 == y2:
		return 4
	case (y1+y2)%2 == 0:
		return 3
	default:
		return 0
	}
}

// grahaMaitri rates the Moon-sign lords: same lord or mutual friends score
// full, a one-way friend scores 4, the luminary/Saturn-Venus antagonism
// scores zero, anything else the minimal 1.
func grahaMaitri(lord1, lord2 string) float64 {
	if lord1 == lord2 {
		return 5
	}
	fwd := friendlyPairs[[2]string{lord1, lord2}]
	rev := friendlyPairs[[2]string{lord2, lord1}]
	switch {
	case fwd && rev:
		return 5
	case fwd || rev:
		return 4
	case (lord1 == zodiac.Sun || lord1 == zodiac.Moon) && (lord2 == zodiac.Saturn || lord2 == zodiac.Venus):
		return 0
	default:
		return 1
	}
}

// gana: matched temperaments score 6, deva/manushya adjacency 5,
// manushya/rakshasa 1, deva/rakshasa nothing.
func gana(nak1, nak2 int) float64 {
	g1, g2 := ganaGroup(nak1), ganaGroup(nak2)
	switch {
	case g1 == g2:
		return 6
	case (g1 == ganaDeva && g2 == ganaManushya) || (g1 == ganaManushya && g2 == ganaDeva):
		return 5
	case (g1 == ganaManushya && g2 == ganaRakshasa) || (g1 == ganaRakshasa && g2 == ganaManushya):
		return 1
	default:
		return 0
	}
}

// bhakoot is binary: full unless the sign distance falls in the bad set
// (2/12, 5/9 and 6/8 axes).
func bhakoot(rasi1, rasi2 int) float64 {
	switch (rasi2 - rasi1 + 12) % 12 {
	case 2, 10, 5, 9, 6, 8:
		return 0
	}
	return 7
}

// nadi is binary with the heaviest weight: full only when the nakshatra
// nadi groups differ.
func nadi(nak1, nak2 int) float64 {
	if nak1%3 != nak2%3 {
		return 8
	}
	return 0
}
