package service

import "context"

// Ephemeris supplies the raw astronomical inputs for chart construction.
// Longitudes are sidereal (Krishnamurti ayanamsa), degrees in [0, 360).
type Ephemeris interface {
	// Cusps returns the twelve Placidus house cusps for the given Julian
	// Day and geographic location, cusp 1 first.
	Cusps(ctx context.Context, jd, lat, lon float64) ([12]float64, error)

	// Bodies returns the longitudes of the eight computed bodies (Sun
	// through Saturn plus Rahu). Ketu is derived by the caller.
	Bodies(ctx context.Context, jd float64) (map[string]float64, error)
}
