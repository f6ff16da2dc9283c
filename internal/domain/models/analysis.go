package models

import (
	"github.com/newdevoleper/match-making/internal/services/dasha"
	"github.com/newdevoleper/match-making/internal/services/dosha"
)

// ChartAnalysis is the fully resolved natal picture for one native: the
// radical chart, both harmonic charts, significator chains, dosha statuses
// and the dasha pointer at the target moment. All downstream comparison
// reads from this structure only.
type ChartAnalysis struct {
	Name  string       `json:"name"`
	Birth BirthDetails `json:"birth"`
	JD    float64      `json:"jd"`

	Cusps  [12]float64        `json:"cusps"`
	Bodies map[string]float64 `json:"bodies"` // D1, Lagna included

	D9Bodies  map[string]float64 `json:"d9_bodies"`
	D50Bodies map[string]float64 `json:"d50_bodies"`

	Positions []PositionRow `json:"positions"`

	// Significators holds the 4-level house chain per graha.
	Significators map[string][]int `json:"significators"`

	SeventhSubLord   string `json:"seventh_sub_lord"`
	CSLSignificators []int  `json:"csl_significators"`
	MarriagePromise  string `json:"marriage_promise"` // STRONG, MIXED, DENIAL, NEUTRAL

	Kuja       dosha.KujaStatus `json:"kuja_dosha"`
	Rahu       dosha.RahuStatus `json:"rahu_dosha"`
	PitraDosha bool             `json:"pitra_dosha"`

	// Favorability maps the five weighty grahas to a strength verdict with
	// its favorable/unfavorable link counts, e.g. "Favorable (3F/1UF)".
	Favorability map[string]string `json:"favorability"`

	RasiLord string        `json:"rasi_lord"` // Moon sign lord
	Dasha    dasha.Pointer `json:"dasha"`

	D9LagnaSign  string `json:"d9_lagna_sign"`
	D9LagnaLord  string `json:"d9_lagna_lord"`
	D50LagnaLord string `json:"d50_lagna_lord"`

	SeventhLordName    string `json:"seventh_lord_name"`
	SeventhLordD9Place string `json:"seventh_lord_d9_place"` // e.g. "In 3H (Leo)"
}
