package models

import (
	"time"

	"github.com/newdevoleper/match-making/internal/services/koota"
)

// Supplementary factor keys, stable across the JSON payload and the verdict
// rules.
const (
	FactorKujaParity    = "kuja_dosha_parity"
	FactorAyurvriddhi   = "ayurvriddhi_match"
	FactorVaidhavya     = "vaidhavya_risk"
	FactorPitraMatch    = "pitra_dosha_match"
	FactorProgeny       = "progeny_match"
	FactorFinancial     = "financial_match"
	FactorKaraka        = "karaka_compatibility"
	FactorSeventhLord   = "seventh_lord_strength"
	FactorAshtamaShani  = "ashtama_shani_effect"
	FactorDashaSync     = "dasha_synchronization"
	FactorRasiLords     = "rasi_lord_match"
	FactorLagnaLords    = "lagna_lord_friendship"
	FactorD9LagnaLords  = "d9_lagna_lord_friendship"
)

// CompatibilityResult is the full two-native comparison: the Guna Milan
// score with its breakdown, the supplementary factor map, the per-varga
// friendly-pair counts and the final verdict with its reasoning.
type CompatibilityResult struct {
	Guna          int               `json:"guna"`
	GunaBreakdown koota.Breakdown   `json:"guna_breakdown"`
	Supplementary map[string]string `json:"supplementary"`

	DashaVerdict string `json:"dasha_verdict"`

	D1Friendly  int `json:"d1_friendly"`
	D9Friendly  int `json:"d9_friendly"`
	D50Friendly int `json:"d50_friendly"`

	PromiseStatus string `json:"promise_status"` // Strong, Mixed, Average, DENIAL
	DashaStatus   string `json:"dasha_status"`

	GoodFactors   int    `json:"good_factors"`
	FactorSummary string `json:"factor_summary"` // e.g. "Strong (9/12 favorable)"

	Verdict string   `json:"verdict"`
	Notes   []string `json:"notes"`
}

// MatchRecord is the summary row handed to the result sink after a
// completed match.
type MatchRecord struct {
	Native1     string    `json:"native1"`
	Native2     string    `json:"native2"`
	Guna        int       `json:"guna"`
	Verdict     string    `json:"verdict"`
	GeneratedAt time.Time `json:"generated_at"`
}
