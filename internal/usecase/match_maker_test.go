package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/newdevoleper/match-making/internal/domain/models"
	applogger "github.com/newdevoleper/match-making/pkg/logger"
)

type fakeSink struct {
	records []*models.MatchRecord
	err     error
}

func (s *fakeSink) Init(context.Context) error { return nil }
func (s *fakeSink) Close() error               { return nil }

func (s *fakeSink) Publish(_ context.Context, rec *models.MatchRecord) error {
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, rec)
	return nil
}

func testLogger(t *testing.T) *applogger.Logger {
	t.Helper()
	log, err := applogger.New(&applogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

func newTestMatchMaker(t *testing.T, sink *fakeSink) *MatchMaker {
	t.Helper()
	eph := &fakeEphemeris{cusps: signAlignedCusps(), bodies: testBodies()}
	metrics := &fakeMetrics{}
	return NewMatchMaker(NewChartAnalyzer(eph, metrics), sink, metrics, testLogger(t))
}

func testMatchRequest() *models.MatchRequest {
	b1 := testBirth()
	b2 := testBirth()
	b2.Name = "Ravi"
	b2.Date = "1990-11-02"
	b2.Time = "21:15"
	return &models.MatchRequest{Native1: b1, Native2: b2, TargetDate: "2026-01-01"}
}

func TestMatchPublishesRecord(t *testing.T) {
	sink := &fakeSink{}
	m := newTestMatchMaker(t, sink)

	resp, err := m.Match(context.Background(), testMatchRequest())
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(sink.records) != 1 {
		t.Fatalf("sink received %d records, want 1", len(sink.records))
	}
	rec := sink.records[0]
	if rec.Native1 != "Asha" || rec.Native2 != "Ravi" {
		t.Fatalf("record natives = %q/%q", rec.Native1, rec.Native2)
	}
	if rec.Guna != resp.Result.Guna || rec.Verdict != resp.Result.Verdict {
		t.Fatalf("record disagrees with result: %+v vs %+v", rec, resp.Result)
	}
}

func TestMatchSurvivesSinkFailure(t *testing.T) {
	sink := &fakeSink{err: errors.New("broker down")}
	m := newTestMatchMaker(t, sink)

	resp, err := m.Match(context.Background(), testMatchRequest())
	if err != nil {
		t.Fatalf("Match must not fail on sink error: %v", err)
	}
	if resp.Result.Verdict == "" {
		t.Fatalf("result lost after sink failure")
	}
}

func TestMatchIdenticalNatives(t *testing.T) {
	req := testMatchRequest()
	req.Native2 = req.Native1
	m := newTestMatchMaker(t, &fakeSink{})

	resp, err := m.Match(context.Background(), req)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	r := resp.Result

	// Identical charts carry identical affliction status, so parity matches.
	if r.Supplementary[models.FactorKujaParity] != "Matched (Dosha Parity)" {
		t.Fatalf("kuja parity = %q", r.Supplementary[models.FactorKujaParity])
	}
	// Identical Moons max every factor except Nadi.
	if r.Guna != 28 {
		t.Fatalf("guna = %d, want 28 for identical moons", r.Guna)
	}
	// Every sign lord is its own great friend.
	if r.D1Friendly != 10 || r.D9Friendly != 10 || r.D50Friendly != 10 {
		t.Fatalf("friendly counts = %d/%d/%d, want 10 each", r.D1Friendly, r.D9Friendly, r.D50Friendly)
	}
	if len(r.Supplementary) != 13 {
		t.Fatalf("supplementary has %d entries, want 13", len(r.Supplementary))
	}
}

func TestFriendlyPairs(t *testing.T) {
	// Aries against Aries for every body: lords identical, all friendly.
	same := map[string]float64{}
	for _, b := range matchBodies {
		same[b] = 15
	}
	if got := friendlyPairs(same, same); got != 10 {
		t.Fatalf("friendlyPairs identical = %d, want 10", got)
	}

	// A missing body on one side is skipped, not counted.
	partial := map[string]float64{}
	for _, b := range matchBodies[:4] {
		partial[b] = 15
	}
	if got := friendlyPairs(same, partial); got != 4 {
		t.Fatalf("friendlyPairs partial = %d, want 4", got)
	}

	// Aries (Mars) vs Taurus (Venus): enemies one way, neutral verdict does
	// not contain "Friend".
	taurus := map[string]float64{}
	for _, b := range matchBodies {
		taurus[b] = 45
	}
	if got := friendlyPairs(same, taurus); got != 0 {
		t.Fatalf("friendlyPairs Mars/Venus lords = %d, want 0", got)
	}
}

func TestPromiseStatusOf(t *testing.T) {
	tests := []struct {
		p1, p2, want string
	}{
		{PromiseStrong, PromiseStrong, "Strong"},
		{PromiseStrong, PromiseDenial, "DENIAL"},
		{PromiseMixed, PromiseMixed, "Mixed"},
		{PromiseStrong, PromiseMixed, "Average"},
		{PromiseNeutral, PromiseNeutral, "Average"},
	}
	for _, tt := range tests {
		if got := promiseStatusOf(tt.p1, tt.p2); got != tt.want {
			t.Fatalf("promiseStatusOf(%s, %s) = %q, want %q", tt.p1, tt.p2, got, tt.want)
		}
	}
}

func TestFinalVerdictLadder(t *testing.T) {
	tests := []struct {
		name          string
		promise, dash string
		guna          int
		fold          string
		want          string
	}{
		{"promise denial rejects", "DENIAL", "Strong", 30, "Strong", VerdictReject},
		{"dasha denial rejects", "Strong", "DENIAL", 30, "Strong", VerdictReject},
		{"low guna rejects", "Strong", "Strong", 17, "Strong", VerdictReject},
		{"weak factors reject", "Strong", "Strong", 30, "Weak", VerdictReject},
		{"all strong recommends", "Strong", "Strong", 18, "Strong", VerdictProceedStrong},
		{"average promise cautions", "Average", "Strong", 30, "Strong", VerdictProceedCaution},
		{"mixed dasha cautions", "Strong", "Mixed", 30, "Strong", VerdictProceedCaution},
		{"average factors caution", "Strong", "Strong", 30, "Average", VerdictProceedCaution},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, notes := finalVerdict(tt.promise, tt.dash, tt.guna, tt.fold, tt.fold)
			if got != tt.want {
				t.Fatalf("verdict = %q, want %q", got, tt.want)
			}
			if len(notes) == 0 {
				t.Fatalf("verdict %q carries no notes", got)
			}
		})
	}
}

func TestFinalVerdictRejectListsAllFailures(t *testing.T) {
	_, notes := finalVerdict("DENIAL", "DENIAL", 10, "Weak", "Weak (2/12 favorable)")
	if len(notes) != 4 {
		t.Fatalf("expected all 4 failure reasons, got %v", notes)
	}
}

func TestGoodFactorCount(t *testing.T) {
	supp := map[string]string{
		models.FactorKujaParity:   "Matched (Dosha Parity)",
		models.FactorAyurvriddhi:  "Good",
		models.FactorVaidhavya:    "Low",
		models.FactorPitraMatch:   "Mixed",
		models.FactorProgeny:      "Strong",
		models.FactorFinancial:    "Strong",
		models.FactorKaraka:       "High",
		models.FactorSeventhLord:  "Good",
		models.FactorAshtamaShani: "Low Risk",
	}
	if got := goodFactorCount(supp, 10, 10, 10); got != 12 {
		t.Fatalf("all favorable = %d, want 12", got)
	}

	supp[models.FactorKujaParity] = "Unmatched (Dosha in Asha)"
	supp[models.FactorPitraMatch] = "Present in Both"
	if got := goodFactorCount(supp, 4, 5, 4); got != 8 {
		t.Fatalf("partial = %d, want 8", got)
	}
}

func TestDashaStatusOf(t *testing.T) {
	tests := []struct {
		verdict, want string
	}{
		{"DENIAL: Current Dasha period strongly signifies denial houses (1, 6, 10).", "DENIAL"},
		{"STRONGLY SUPPORTIVE: Dasha periods support marriage in both charts.", "Strong"},
		{"MIXED: Dasha supports marriage for only one native.", "Mixed"},
		{"WEAK/NEUTRAL: Current Dasha relies heavily on natal promise.", "Mixed"},
	}
	for _, tt := range tests {
		if got := dashaStatusOf(tt.verdict); got != tt.want {
			t.Fatalf("dashaStatusOf(%q) = %q, want %q", tt.verdict, got, tt.want)
		}
	}
}

func TestMatchRejectsBadTargetDate(t *testing.T) {
	req := testMatchRequest()
	req.TargetDate = "01-01-2026"
	m := newTestMatchMaker(t, &fakeSink{})
	if _, err := m.Match(context.Background(), req); err == nil {
		t.Fatalf("expected error for malformed target date")
	}
}
