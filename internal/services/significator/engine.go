// Package significator derives the KP house significations of a planet.
package significator

import (
	"sort"

	"github.com/newdevoleper/match-making/internal/services/zodiac"
)

// Houses returns the houses a planet signifies, as two concatenated sorted
// halves: the star-lord-derived houses followed by the planet's own
// sign-lordship houses. Duplicates across the halves are preserved; callers
// test membership, and the split is meaningful downstream. An empty result
// means no significations were found.
func Houses(planetLon float64, cusps [12]float64, bodies map[string]float64) []int {
	starLord, _ := zodiac.StarSubLord(planetLon)
	owner := zodiac.SignLord(zodiac.SignIndex(planetLon))

	// The nodes own no signs: a node star lord resolves through the lord of
	// whichever sign the node occupies. A node missing from the chart map
	// yields no star-level significations rather than an error.
	starOwner := starLord
	if starLord == zodiac.Rahu || starLord == zodiac.Ketu {
		nodeLon, ok := bodies[starLord]
		if !ok {
			starOwner = ""
		} else {
			starOwner = zodiac.SignLord(zodiac.SignIndex(nodeLon))
		}
	}

	starHouses := map[int]struct{}{}
	if starOwner != "" {
		if ownerLon, ok := bodies[starOwner]; ok {
			if h := zodiac.HouseOf(ownerLon, cusps); h > 0 {
				starHouses[h] = struct{}{}
			}
			for i, cuspLon := range cusps {
				if zodiac.SignLord(zodiac.SignIndex(cuspLon)) == starOwner {
					starHouses[i+1] = struct{}{}
				}
			}
		}
	}

	ownHouses := map[int]struct{}{}
	if h := zodiac.HouseOf(planetLon, cusps); h > 0 {
		ownHouses[h] = struct{}{}
	}
	for i, cuspLon := range cusps {
		if zodiac.SignLord(zodiac.SignIndex(cuspLon)) == owner {
			ownHouses[i+1] = struct{}{}
		}
	}

	return append(sortedKeys(starHouses), sortedKeys(ownHouses)...)
}

func sortedKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for h := range set {
		out = append(out, h)
	}
	sort.Ints(out)
	return out
}

// Contains reports whether any of the wanted houses appears in the
// signification list.
func Contains(sigs []int, houses ...int) bool {
	for _, h := range houses {
		for _, s := range sigs {
			if s == h {
				return true
			}
		}
	}
	return false
}
