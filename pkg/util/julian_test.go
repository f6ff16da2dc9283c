package util

import (
	"math"
	"testing"
	"time"
)

func TestJulianDay(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want float64
	}{
		{"unix epoch", time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), 2440587.5},
		{"J2000.0", time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), 2451545.0},
		{"noon is integer boundary", time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), 2460463.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JulianDay(tt.in); math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("JulianDay(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestJulianDayTimezoneIndependence(t *testing.T) {
	utc := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	shifted := utc.In(time.FixedZone("IST", 5*3600+1800))
	if JulianDay(utc) != JulianDay(shifted) {
		t.Fatalf("same instant in different zones produced different JDs")
	}
}
