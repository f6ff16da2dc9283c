package dosha

import "github.com/newdevoleper/match-making/internal/services/zodiac"

// RahuStatus reports the node affliction from the Lagna and Moon axes.
// There is no cancellation for this dosha.
type RahuStatus struct {
	Lagna   string `json:"lagna"`
	Chandra string `json:"chandra"`
	Total   string `json:"total"`
}

// rahuHouses are the afflicting houses for the node: the 1st, 5th and 9th.
var rahuHouses = map[int]bool{1: true, 5: true, 9: true}

// EvaluateRahu flags the node dosha from the chart's Lagna and the Moon.
func EvaluateRahu(rahuHouse, moonHouse int) RahuStatus {
	fromLagna := rahuHouses[rahuHouse]
	fromMoon := rahuHouses[zodiac.RelativeHouse(rahuHouse, moonHouse)]

	st := RahuStatus{
		Lagna:   axis(fromLagna),
		Chandra: axis(fromMoon),
		Total:   NotAfflicted,
	}
	if fromLagna || fromMoon {
		st.Total = Afflicted
	}
	return st
}
