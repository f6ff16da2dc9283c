package util

import "time"

// Julian Day of the Unix epoch (1970-01-01 00:00 UT).
const jdUnixEpoch = 2440587.5

// JulianDay converts a civil instant to the astronomical Julian Day number.
func JulianDay(t time.Time) float64 {
	return float64(t.UTC().Unix())/86400.0 + jdUnixEpoch
}
