package models

// Requests for the matching HTTP endpoints. Defined in domain for
// consistency and reuse.

type MatchRequest struct {
	Native1 BirthDetails `json:"native1" validate:"required"`
	Native2 BirthDetails `json:"native2" validate:"required"`
	// TargetDate anchors the dasha pointer; empty means today.
	TargetDate string `json:"target_date" validate:"omitempty,datetime=2006-01-02"`
}

type ChartRequest struct {
	Native     BirthDetails `json:"native" validate:"required"`
	TargetDate string       `json:"target_date" validate:"omitempty,datetime=2006-01-02"`
}

type MatchResponse struct {
	Result   CompatibilityResult `json:"result"`
	Analysis [2]ChartAnalysis    `json:"analysis"`
}
