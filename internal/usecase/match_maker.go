package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/newdevoleper/match-making/internal/domain/models"
	drepo "github.com/newdevoleper/match-making/internal/domain/repository"
	"github.com/newdevoleper/match-making/internal/services/koota"
	"github.com/newdevoleper/match-making/internal/services/significator"
	"github.com/newdevoleper/match-making/internal/services/zodiac"
	applogger "github.com/newdevoleper/match-making/pkg/logger"
)

// Fixed verdict thresholds.
const (
	gunaAcceptable    = 18
	goodFactorsWeak   = 6
	goodFactorsStrong = 9
	friendlyFavorable = 5
)

// Dasha marriage potential of one period lord's significator set.
const (
	DashaStrongPromise = "STRONG_PROMISE"
	DashaMixedRisk     = "MIXED_RISK"
	DashaDenialPeriod  = "DENIAL_PERIOD"
	DashaNeutral       = "NEUTRAL"
)

// Final verdicts.
const (
	VerdictReject         = "TRY ANOTHER MATCH"
	VerdictProceedCaution = "PROCEED (With Caution)"
	VerdictProceedStrong  = "PROCEED (Strongly Recommended)"
)

// MatchMaker analyzes two natives and reduces both analyses to a single
// compatibility result.
type MatchMaker struct {
	analyzer *ChartAnalyzer
	sink     drepo.ResultSink
	metrics  drepo.Metrics
	log      *applogger.Logger
	now      func() time.Time
}

func NewMatchMaker(analyzer *ChartAnalyzer, sink drepo.ResultSink, metrics drepo.Metrics, log *applogger.Logger) *MatchMaker {
	return &MatchMaker{
		analyzer: analyzer,
		sink:     sink,
		metrics:  metrics,
		log:      log,
		now:      time.Now,
	}
}

// Chart analyzes a single native.
func (m *MatchMaker) Chart(ctx context.Context, req *models.ChartRequest) (*models.ChartAnalysis, error) {
	target, err := m.targetTime(req.TargetDate)
	if err != nil {
		return nil, err
	}
	return m.analyzer.Analyze(ctx, req.Native, target)
}

// Match analyzes both natives and compares them. The two analyses are
// independent and run in parallel. The completed record is handed to the
// result sink; sink failure is logged but never fails the match.
func (m *MatchMaker) Match(ctx context.Context, req *models.MatchRequest) (*models.MatchResponse, error) {
	start := time.Now()
	target, err := m.targetTime(req.TargetDate)
	if err != nil {
		return nil, err
	}

	var (
		wg       sync.WaitGroup
		analyses [2]*models.ChartAnalysis
		errs     [2]error
	)
	for i, b := range []models.BirthDetails{req.Native1, req.Native2} {
		wg.Add(1)
		go func(i int, b models.BirthDetails) {
			defer wg.Done()
			analyses[i], errs[i] = m.analyzer.Analyze(ctx, b, target)
		}(i, b)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("analyze natives: %w", err)
		}
	}

	result := Compare(analyses[0], analyses[1])

	m.metrics.RecordMatchVerdict(result.Verdict)
	m.metrics.RecordGunaScore(result.Guna)
	m.metrics.RecordLatency("match", time.Since(start).Seconds())

	rec := &models.MatchRecord{
		Native1:     analyses[0].Name,
		Native2:     analyses[1].Name,
		Guna:        result.Guna,
		Verdict:     result.Verdict,
		GeneratedAt: m.now().UTC(),
	}
	if err := m.sink.Publish(ctx, rec); err != nil {
		m.metrics.RecordError("sink")
		m.log.Error("publish match record",
			applogger.String("native1", rec.Native1),
			applogger.String("native2", rec.Native2),
			applogger.Error(err),
		)
	}

	return &models.MatchResponse{
		Result:   result,
		Analysis: [2]models.ChartAnalysis{*analyses[0], *analyses[1]},
	}, nil
}

func (m *MatchMaker) targetTime(date string) (time.Time, error) {
	if date == "" {
		return m.now(), nil
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse target date: %w", err)
	}
	return t, nil
}

// Compare is the pure reduction of two completed analyses into a
// compatibility result. It never fails: every lookup degrades to a neutral
// classification.
func Compare(a1, a2 *models.ChartAnalysis) models.CompatibilityResult {
	guna, breakdown := koota.Score(a1.Bodies[zodiac.Moon], a2.Bodies[zodiac.Moon])

	dashaVerdict := dashaSynchronization(a1, a2)
	supp := supplementaryFactors(a1, a2, dashaVerdict)

	d1 := friendlyPairs(a1.Bodies, a2.Bodies)
	d9 := friendlyPairs(a1.D9Bodies, a2.D9Bodies)
	d50 := friendlyPairs(a1.D50Bodies, a2.D50Bodies)

	good := goodFactorCount(supp, d1, d9, d50)
	foldStatus := "Average"
	switch {
	case good >= goodFactorsStrong:
		foldStatus = "Strong"
	case good < goodFactorsWeak:
		foldStatus = "Weak"
	}
	foldText := fmt.Sprintf("%s (%d/12 favorable)", foldStatus, good)

	promiseStatus := promiseStatusOf(a1.MarriagePromise, a2.MarriagePromise)
	dashaStatus := dashaStatusOf(dashaVerdict)

	verdict, notes := finalVerdict(promiseStatus, dashaStatus, guna, foldStatus, foldText)

	return models.CompatibilityResult{
		Guna:          guna,
		GunaBreakdown: breakdown,
		Supplementary: supp,
		DashaVerdict:  dashaVerdict,
		D1Friendly:    d1,
		D9Friendly:    d9,
		D50Friendly:   d50,
		PromiseStatus: promiseStatus,
		DashaStatus:   dashaStatus,
		GoodFactors:   good,
		FactorSummary: foldText,
		Verdict:       verdict,
		Notes:         notes,
	}
}

// dashaPotential classifies one period lord's significator set against the
// marriage houses {2,7,11} and denial houses {1,6,10}.
func dashaPotential(sigs []int) string {
	marriage := significator.Contains(sigs, 2, 7, 11)
	denial := significator.Contains(sigs, 1, 6, 10)
	switch {
	case marriage && !denial:
		return DashaStrongPromise
	case marriage && denial:
		return DashaMixedRisk
	case denial:
		return DashaDenialPeriod
	default:
		return DashaNeutral
	}
}

func dashaSupport(a *models.ChartAnalysis) (support, denial bool) {
	ad := dashaPotential(a.Significators[a.Dasha.Antar.Lord])
	pd := dashaPotential(a.Significators[a.Dasha.Pratyantar.Lord])
	support = ad == DashaStrongPromise || pd == DashaStrongPromise
	denial = ad == DashaDenialPeriod || pd == DashaDenialPeriod
	return support, denial
}

func dashaSynchronization(a1, a2 *models.ChartAnalysis) string {
	support1, denial1 := dashaSupport(a1)
	support2, denial2 := dashaSupport(a2)
	unmatchedDosha := a1.Kuja.Afflicted() != a2.Kuja.Afflicted()

	switch {
	case denial1 || denial2:
		return "DENIAL: Current Dasha period strongly signifies denial houses (1, 6, 10)."
	case unmatchedDosha && !(support1 && support2):
		return "DENIAL: Severe natal affliction (unmatched Dosha) blocks marriage."
	case support1 && support2:
		return "STRONGLY SUPPORTIVE: Dasha periods support marriage in both charts."
	case support1 || support2:
		return "MIXED: Dasha supports marriage for only one native."
	default:
		return "WEAK/NEUTRAL: Current Dasha relies heavily on natal promise."
	}
}

func supplementaryFactors(a1, a2 *models.ChartAnalysis, dashaVerdict string) map[string]string {
	r := make(map[string]string, 13)

	d1, d2 := a1.Kuja.Afflicted(), a2.Kuja.Afflicted()
	switch {
	case d1 == d2:
		r[models.FactorKujaParity] = "Matched (Dosha Parity)"
	case d1:
		r[models.FactorKujaParity] = fmt.Sprintf("Unmatched (Dosha in %s)", a1.Name)
	default:
		r[models.FactorKujaParity] = fmt.Sprintf("Unmatched (Dosha in %s)", a2.Name)
	}

	risk1 := significator.Contains(a1.CSLSignificators, 8, 12)
	risk2 := significator.Contains(a2.CSLSignificators, 8, 12)
	if risk1 && risk2 {
		r[models.FactorAyurvriddhi] = "Poor (Shared Risk)"
		r[models.FactorVaidhavya] = "High"
	} else {
		r[models.FactorAyurvriddhi] = "Good"
		r[models.FactorVaidhavya] = "Low"
	}

	if a1.PitraDosha && a2.PitraDosha {
		r[models.FactorPitraMatch] = "Present in Both"
	} else {
		r[models.FactorPitraMatch] = "Mixed"
	}

	if significator.Contains(a1.CSLSignificators, 5, 11) && significator.Contains(a2.CSLSignificators, 5, 11) {
		r[models.FactorProgeny] = "Strong"
	} else {
		r[models.FactorProgeny] = "Weak/Mixed"
	}

	if significator.Contains(a1.CSLSignificators, 2, 11) && significator.Contains(a2.CSLSignificators, 2, 11) {
		r[models.FactorFinancial] = "Strong"
	} else {
		r[models.FactorFinancial] = "Average"
	}

	if significator.Contains(a1.Significators[zodiac.Jupiter], 7, 11) &&
		significator.Contains(a2.Significators[zodiac.Venus], 7, 11) {
		r[models.FactorKaraka] = "High"
	} else {
		r[models.FactorKaraka] = "Moderate"
	}

	if !significator.Contains(a1.CSLSignificators, 6, 8, 12) && !significator.Contains(a2.CSLSignificators, 6, 8, 12) {
		r[models.FactorSeventhLord] = "Good"
	} else {
		r[models.FactorSeventhLord] = "Weak/Afflicted"
	}

	if significator.Contains(a1.Significators[zodiac.Saturn], 8) || significator.Contains(a2.Significators[zodiac.Saturn], 8) {
		r[models.FactorAshtamaShani] = "High Risk (Natal)"
	} else {
		r[models.FactorAshtamaShani] = "Low Risk"
	}

	r[models.FactorDashaSync] = dashaVerdict
	r[models.FactorRasiLords] = fmt.Sprintf("Moon Rasi Lords: %s vs %s", a1.RasiLord, a2.RasiLord)

	l1 := zodiac.SignLord(zodiac.SignIndex(a1.Cusps[0]))
	l2 := zodiac.SignLord(zodiac.SignIndex(a2.Cusps[0]))
	r[models.FactorLagnaLords] = fmt.Sprintf("Lords are %s & %s", l1, l2)

	r[models.FactorD9LagnaLords] = zodiac.Friendship(a1.D9LagnaLord, a2.D9LagnaLord)

	return r
}

// matchBodies are the ten bodies counted in the friendly-pair comparison.
var matchBodies = []string{
	zodiac.Lagna, zodiac.Sun, zodiac.Moon, zodiac.Mars, zodiac.Mercury,
	zodiac.Jupiter, zodiac.Venus, zodiac.Saturn, zodiac.Rahu, zodiac.Ketu,
}

// friendlyPairs counts, over the ten matched bodies, how many land in signs
// whose lords are friendly between the two charts.
func friendlyPairs(bodies1, bodies2 map[string]float64) int {
	count := 0
	for _, b := range matchBodies {
		lon1, ok1 := bodies1[b]
		lon2, ok2 := bodies2[b]
		if !ok1 || !ok2 {
			continue
		}
		l1 := zodiac.SignLord(zodiac.SignIndex(lon1))
		l2 := zodiac.SignLord(zodiac.SignIndex(lon2))
		if strings.Contains(zodiac.Friendship(l1, l2), "Friend") {
			count++
		}
	}
	return count
}

// goodFactorCount tallies the twelve favorable signals: nine supplementary
// factor checks plus the three varga friendly-pair counts.
func goodFactorCount(supp map[string]string, d1, d9, d50 int) int {
	checks := []bool{
		!strings.Contains(supp[models.FactorKujaParity], "Unmatched"),
		supp[models.FactorAyurvriddhi] == "Good",
		supp[models.FactorVaidhavya] == "Low",
		supp[models.FactorPitraMatch] != "Present in Both",
		supp[models.FactorProgeny] == "Strong",
		supp[models.FactorFinancial] == "Strong",
		supp[models.FactorKaraka] == "High",
		supp[models.FactorSeventhLord] == "Good",
		supp[models.FactorAshtamaShani] == "Low Risk",
		d1 >= friendlyFavorable,
		d9 >= friendlyFavorable,
		d50 >= friendlyFavorable,
	}
	count := 0
	for _, ok := range checks {
		if ok {
			count++
		}
	}
	return count
}

func promiseStatusOf(p1, p2 string) string {
	switch {
	case p1 == PromiseDenial || p2 == PromiseDenial:
		return "DENIAL"
	case p1 == PromiseStrong && p2 == PromiseStrong:
		return "Strong"
	case p1 == PromiseMixed && p2 == PromiseMixed:
		return "Mixed"
	default:
		return "Average"
	}
}

func dashaStatusOf(verdict string) string {
	switch {
	case strings.HasPrefix(verdict, "DENIAL"):
		return "DENIAL"
	case strings.HasPrefix(verdict, "STRONGLY SUPPORTIVE"):
		return "Strong"
	default:
		return "Mixed"
	}
}

// finalVerdict applies the priority ladder: hard failures reject, then the
// all-strong combination recommends, everything in between proceeds with the
// unmet conditions as notes.
func finalVerdict(promiseStatus, dashaStatus string, guna int, foldStatus, foldText string) (string, []string) {
	var fail []string
	if promiseStatus == "DENIAL" {
		fail = append(fail, "Natal KP promise shows DENIAL.")
	}
	if dashaStatus == "DENIAL" {
		fail = append(fail, "Current Dasha indicates strong DENIAL.")
	}
	if guna < gunaAcceptable {
		fail = append(fail, fmt.Sprintf("Guna Milan (%d/36) below %d.", guna, gunaAcceptable))
	}
	if foldStatus == "Weak" {
		fail = append(fail, "Supplementary Match is Weak.")
	}
	if len(fail) > 0 {
		return VerdictReject, fail
	}

	var caution []string
	if promiseStatus != "Strong" {
		caution = append(caution, fmt.Sprintf("Natal Promise is %s.", promiseStatus))
	}
	if dashaStatus != "Strong" {
		caution = append(caution, fmt.Sprintf("Dasha Timing is %s.", dashaStatus))
	}
	if foldStatus != "Strong" {
		caution = append(caution, fmt.Sprintf("Supplementary Match is %s.", foldText))
	}
	if len(caution) > 0 {
		return VerdictProceedCaution, caution
	}
	return VerdictProceedStrong, []string{"All major parameters (KP, D9, D50, Dasha, Guna) are favorable."}
}
