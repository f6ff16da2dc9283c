package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/newdevoleper/match-making/internal/domain/models"
)

type fakeEphemeris struct {
	cusps  [12]float64
	bodies map[string]float64
	err    error
}

func (f *fakeEphemeris) Cusps(context.Context, float64, float64, float64) ([12]float64, error) {
	return f.cusps, f.err
}

func (f *fakeEphemeris) Bodies(context.Context, float64) (map[string]float64, error) {
	return f.bodies, f.err
}

type fakeMetrics struct {
	charts, errors int
	verdicts       []string
}

func (m *fakeMetrics) RecordChartAnalyzed()        { m.charts++ }
func (m *fakeMetrics) RecordMatchVerdict(v string) { m.verdicts = append(m.verdicts, v) }
func (m *fakeMetrics) RecordGunaScore(int)         {}
func (m *fakeMetrics) RecordLatency(string, float64) {}
func (m *fakeMetrics) RecordError(string)          { m.errors++ }
func (m *fakeMetrics) RecordSinkPublished(string)  {}

func signAlignedCusps() [12]float64 {
	var c [12]float64
	for i := range c {
		c[i] = float64(i) * 30
	}
	return c
}

func testBodies() map[string]float64 {
	return map[string]float64{
		"Sun":     100,
		"Moon":    10,
		"Mars":    130,
		"Mercury": 95,
		"Jupiter": 200,
		"Venus":   40,
		"Saturn":  250,
		"Rahu":    255,
	}
}

func testBirth() models.BirthDetails {
	return models.BirthDetails{
		Name:     "Asha",
		Date:     "1992-03-15",
		Time:     "06:30",
		Timezone: "Asia/Kolkata",
		Lat:      12.97,
		Lon:      77.59,
	}
}

func TestAnalyze(t *testing.T) {
	eph := &fakeEphemeris{cusps: signAlignedCusps(), bodies: testBodies()}
	a := NewChartAnalyzer(eph, &fakeMetrics{})

	target := time.Date(1992, 3, 15, 6, 30, 0, 0, time.UTC)
	analysis, err := a.Analyze(context.Background(), testBirth(), target)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if got := analysis.Bodies["Ketu"]; got != 75 {
		t.Fatalf("Ketu = %v, want 75 (Rahu+180)", got)
	}
	if got := analysis.Bodies["Lagna"]; got != 0 {
		t.Fatalf("Lagna = %v, want ascendant cusp 0", got)
	}
	if analysis.RasiLord != "Mars" {
		t.Fatalf("RasiLord = %q, want Mars for an Aries Moon", analysis.RasiLord)
	}

	// Mars in the 4th from Venus triggers the dosha, then cancels on its
	// benefic sign Leo.
	if analysis.Kuja.Shukra != "Afflicted" {
		t.Fatalf("Kuja.Shukra = %q, want Afflicted", analysis.Kuja.Shukra)
	}
	if analysis.Kuja.Total != "Cancelled (Benefic Sign D1)" {
		t.Fatalf("Kuja.Total = %q", analysis.Kuja.Total)
	}
	if analysis.Kuja.Afflicted() {
		t.Fatalf("cancelled dosha must not count as afflicted")
	}

	// Rahu in the 9th afflicts both axes and marks the pitra dosha.
	if analysis.Rahu.Total != "Afflicted" {
		t.Fatalf("Rahu.Total = %q, want Afflicted", analysis.Rahu.Total)
	}
	if !analysis.PitraDosha {
		t.Fatalf("PitraDosha = false, want true with Rahu in the 9th")
	}

	if len(analysis.Positions) != 10 {
		t.Fatalf("positions = %d rows, want 10", len(analysis.Positions))
	}
	if analysis.Positions[0].Body != "Lagna Cusp" {
		t.Fatalf("first position row = %q, want Lagna Cusp", analysis.Positions[0].Body)
	}

	if len(analysis.Significators) != 9 {
		t.Fatalf("significators for %d grahas, want 9", len(analysis.Significators))
	}
	if len(analysis.Favorability) != 5 {
		t.Fatalf("favorability for %d grahas, want 5", len(analysis.Favorability))
	}

	// Moon at 10 degrees sits three quarters into Ashwini, so Ketu's maha
	// period is running at birth.
	if analysis.Dasha.Maha.Lord != "Ketu" {
		t.Fatalf("maha lord = %q, want Ketu", analysis.Dasha.Maha.Lord)
	}

	// Navamsa of a 0-degree ascendant stays in Aries.
	if analysis.D9LagnaLord != "Mars" {
		t.Fatalf("D9 Lagna lord = %q, want Mars", analysis.D9LagnaLord)
	}
}

func TestAnalyzeRejectsUnknownTimezone(t *testing.T) {
	eph := &fakeEphemeris{cusps: signAlignedCusps(), bodies: testBodies()}
	a := NewChartAnalyzer(eph, &fakeMetrics{})

	b := testBirth()
	b.Timezone = "Nowhere/Atlantis"
	if _, err := a.Analyze(context.Background(), b, time.Now()); err == nil {
		t.Fatalf("expected error for unknown timezone")
	}
}

func TestAnalyzeRejectsMissingBody(t *testing.T) {
	bodies := testBodies()
	delete(bodies, "Saturn")
	eph := &fakeEphemeris{cusps: signAlignedCusps(), bodies: bodies}
	a := NewChartAnalyzer(eph, &fakeMetrics{})

	if _, err := a.Analyze(context.Background(), testBirth(), time.Now()); err == nil {
		t.Fatalf("expected error for missing body longitude")
	}
}

func TestFavorabilityFormat(t *testing.T) {
	tests := []struct {
		name string
		sigs []int
		want string
	}{
		{"favorable", []int{2, 5, 9, 3}, "Favorable (3F/0UF)"},
		{"unfavorable", []int{1, 6, 2}, "Unfavorable (1F/2UF)"},
		{"balanced", []int{2, 6}, "Neutral (1F/1UF)"},
		{"empty", nil, "Neutral (0F/0UF)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := favorability(tt.sigs); got != tt.want {
				t.Fatalf("favorability(%v) = %q, want %q", tt.sigs, got, tt.want)
			}
		})
	}
}

func TestPromiseVerdict(t *testing.T) {
	tests := []struct {
		name string
		csl  []int
		want string
	}{
		{"strong", []int{2, 7, 3}, PromiseStrong},
		{"mixed", []int{7, 6}, PromiseMixed},
		{"denial", []int{1, 10}, PromiseDenial},
		{"neutral", []int{3, 4}, PromiseNeutral},
		{"empty soft-fail", []int{}, PromiseNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := promiseVerdict(tt.csl); got != tt.want {
				t.Fatalf("promiseVerdict(%v) = %q, want %q", tt.csl, got, tt.want)
			}
		})
	}
}
