package significator

import (
	"reflect"
	"testing"
)

func equalCusps() [12]float64 {
	var c [12]float64
	for i := range c {
		c[i] = float64(i) * 30
	}
	return c
}

func TestHousesNodeStarLordResolvesThroughOccupiedSign(t *testing.T) {
	cusps := equalCusps()
	// Planet at 5° sits in Ashwini, ruled by Ketu. Ketu occupies Cancer, so
	// its significations resolve through the Moon.
	bodies := map[string]float64{
		"Ketu": 95,  // Cancer
		"Moon": 200, // Libra, house 7
	}
	got := Houses(5, cusps, bodies)
	// Star half: Moon occupies house 7 and rules the Cancer cusp (house 4).
	// Own half: the planet occupies house 1; Mars rules Aries (1) and
	// Scorpio (8) cusps.
	want := []int{4, 7, 1, 8}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Houses=%v, want %v", got, want)
	}
}

func TestHousesMissingNodeSoftFails(t *testing.T) {
	cusps := equalCusps()
	// Same planet, but the chart map lacks Ketu: the star half is empty and
	// only the planet's own significations remain.
	got := Houses(5, cusps, map[string]float64{"Moon": 200})
	want := []int{1, 8}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Houses=%v, want %v", got, want)
	}
}

func TestHousesPreservesDuplicatesAcrossHalves(t *testing.T) {
	cusps := equalCusps()
	// Planet at 125° (Leo, house 5) sits in Magha, ruled by Ketu; Ketu also
	// in Leo, so the star owner is the Sun. The Sun occupies house 5 too:
	// house 5 must appear in both halves.
	bodies := map[string]float64{
		"Ketu": 130, // Leo
		"Sun":  127, // Leo, house 5
	}
	got := Houses(125, cusps, bodies)
	want := []int{5, 5}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Houses=%v, want %v", got, want)
	}
}

func TestContains(t *testing.T) {
	sigs := []int{2, 7, 11}
	if !Contains(sigs, 7) {
		t.Fatalf("expected 7 in %v", sigs)
	}
	if Contains(sigs, 1, 6, 10) {
		t.Fatalf("unexpected denial house in %v", sigs)
	}
	if Contains(nil, 2) {
		t.Fatalf("empty significator list contains nothing")
	}
}
