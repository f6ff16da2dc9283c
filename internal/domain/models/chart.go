package models

// BirthDetails identifies a native: civil birth date and time, IANA timezone
// and geographic coordinates. Carried on requests, so validation and default
// tags live here.
type BirthDetails struct {
	Name     string  `json:"name" validate:"required"`
	Date     string  `json:"date" validate:"required,datetime=2006-01-02"`
	Time     string  `json:"time" validate:"required,datetime=15:04"`
	Timezone string  `json:"timezone" default:"UTC" validate:"required"`
	Lat      float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon      float64 `json:"lon" validate:"gte=-180,lte=180"`
}

// PositionRow is one line of the positional table: a body with its sign
// lord, star lord, sub lord, formatted longitude, nakshatra and pada.
type PositionRow struct {
	Body      string `json:"body"`
	RasiLord  string `json:"rasi_lord"`
	StarLord  string `json:"star_lord"`
	SubLord   string `json:"sub_lord"`
	Longitude string `json:"longitude"`
	Nakshatra string `json:"nakshatra"`
	Pada      int    `json:"pada"`
}
