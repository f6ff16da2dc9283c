package koota

import "github.com/newdevoleper/match-making/internal/services/zodiac"

// varnaRank maps a sign index to its caste rank, lower being the higher
// caste.
var varnaRank = [12]int{
	1, // Aries
	2, // Taurus
	0, // Gemini
	2, // Cancer
	1, // Leo
	0, // Virgo
	0, // Libra
	1, // Scorpio
	2, // Sagittarius
	0, // Capricorn
	1, // Aquarius
	2, // Pisces
}

// Vashya dominance categories.
const (
	vashyaChatushpada = iota // quadruped
	vashyaManava             // human
	vashyaJalachara          // aquatic
	vashyaVanachara          // wild
	vashyaKeeta              // insect / mixed
)

var vashyaGroup = [12]int{
	vashyaChatushpada, // Aries
	vashyaChatushpada, // Taurus
	vashyaManava,      // Gemini
	vashyaJalachara,   // Cancer
	vashyaVanachara,   // Leo
	vashyaManava,      // Virgo
	vashyaManava,      // Libra
	vashyaKeeta,       // Scorpio
	vashyaKeeta,       // Sagittarius
	vashyaKeeta,       // Capricorn
	vashyaKeeta,       // Aquarius
	vashyaKeeta,       // Pisces
}

// yoniAnimal maps a nakshatra to its yoni animal class. The 14 classes
// repeat after Shatabhisha, so Purva Bhadrapada onward wrap back to 1.
func yoniAnimal(nak int) int {
	return nak%14 + 1
}

// friendlyPairs holds the directed friendship edges used for Graha Maitri.
// A pair present in both directions is a mutual friendship.
var friendlyPairs = map[[2]string]bool{
	{zodiac.Sun, zodiac.Moon}:        true,
	{zodiac.Sun, zodiac.Mars}:        true,
	{zodiac.Sun, zodiac.Jupiter}:     true,
	{zodiac.Moon, zodiac.Mars}:       true,
	{zodiac.Moon, zodiac.Jupiter}:    true,
	{zodiac.Mars, zodiac.Jupiter}:    true,
	{zodiac.Mars, zodiac.Sun}:        true,
	{zodiac.Mercury, zodiac.Venus}:   true,
	{zodiac.Mercury, zodiac.Saturn}:  true,
	{zodiac.Jupiter, zodiac.Sun}:     true,
	{zodiac.Jupiter, zodiac.Moon}:    true,
	{zodiac.Jupiter, zodiac.Mars}:    true,
	{zodiac.Jupiter, zodiac.Saturn}:  true,
	{zodiac.Venus, zodiac.Mercury}:   true,
	{zodiac.Venus, zodiac.Saturn}:    true,
	{zodiac.Saturn, zodiac.Mercury}:  true,
	{zodiac.Saturn, zodiac.Jupiter}:  true,
	{zodiac.Saturn, zodiac.Venus}:    true,
}

// Gana temperament groups.
const (
	ganaDeva = iota
	ganaManushya
	ganaRakshasa
)

var ganaDevaNaks = map[int]struct{}{
	0: {}, 4: {}, 6: {}, 7: {}, 12: {}, 14: {}, 16: {}, 21: {}, 26: {},
}

var ganaManushyaNaks = map[int]struct{}{
	1: {}, 3: {}, 5: {}, 10: {}, 11: {}, 19: {}, 20: {}, 24: {}, 25: {},
}

func ganaGroup(nak int) int {
	if _, ok := ganaDevaNaks[nak]; ok {
		return ganaDeva
	}
	if _, ok := ganaManushyaNaks[nak]; ok {
		return ganaManushya
	}
	return ganaRakshasa
}
