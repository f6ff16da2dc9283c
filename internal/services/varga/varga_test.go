package varga

import (
	"math"
	"testing"
)

func TestNavamsa(t *testing.T) {
	cases := []struct {
		lon  float64
		sign int
	}{
		// Aries (movable, start 0): padas map to Aries..
		{0, 0},
		{3.4, 1},
		{10.1, 3},
		{29.9, 8},
		// Taurus (fixed, start 9): first pada lands in Capricorn.
		{30, 9},
		// Gemini (dual, start 6): first pada lands in Libra.
		{60, 6},
		// Cancer restarts the movable group.
		{90, 0},
	}
	for _, c := range cases {
		got := Navamsa(c.lon)
		if int(got/30) != c.sign {
			t.Fatalf("Navamsa(%v) sign=%d, want %d", c.lon, int(got/30), c.sign)
		}
		if math.Mod(got, 30) != 15 {
			t.Fatalf("Navamsa(%v)=%v, want sign midpoint", c.lon, got)
		}
	}
}

func TestD50(t *testing.T) {
	cases := []struct {
		lon, want float64
	}{
		{0, 0},
		{1, 50},
		{7.2, 0},
		{10, 140},
		{100, 320},
	}
	for _, c := range cases {
		if got := D50(c.lon); math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("D50(%v)=%v, want %v", c.lon, got, c.want)
		}
	}
}

func TestTransformAllIncludesLagna(t *testing.T) {
	bodies := map[string]float64{"Sun": 12.0, "Lagna": 100.0}
	d50 := TransformAll(bodies, D50)
	if len(d50) != 2 {
		t.Fatalf("expected 2 bodies, got %d", len(d50))
	}
	if d50["Lagna"] != 320 {
		t.Fatalf("Lagna D50=%v, want 320", d50["Lagna"])
	}
}
