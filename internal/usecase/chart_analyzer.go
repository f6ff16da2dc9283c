package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/newdevoleper/match-making/internal/domain/models"
	drepo "github.com/newdevoleper/match-making/internal/domain/repository"
	"github.com/newdevoleper/match-making/internal/domain/service"
	"github.com/newdevoleper/match-making/internal/services/dasha"
	"github.com/newdevoleper/match-making/internal/services/dosha"
	"github.com/newdevoleper/match-making/internal/services/significator"
	"github.com/newdevoleper/match-making/internal/services/varga"
	"github.com/newdevoleper/match-making/internal/services/zodiac"
	"github.com/newdevoleper/match-making/pkg/util"
)

// requiredBodies must all come back from the ephemeris; Ketu and Lagna are
// derived afterwards.
var requiredBodies = []string{
	zodiac.Sun, zodiac.Moon, zodiac.Mars, zodiac.Mercury,
	zodiac.Jupiter, zodiac.Venus, zodiac.Saturn, zodiac.Rahu,
}

// ChartAnalyzer builds the full natal analysis for one native.
type ChartAnalyzer struct {
	eph     service.Ephemeris
	metrics drepo.Metrics
}

func NewChartAnalyzer(eph service.Ephemeris, metrics drepo.Metrics) *ChartAnalyzer {
	return &ChartAnalyzer{eph: eph, metrics: metrics}
}

// Analyze resolves the birth instant, fetches cusps and body longitudes and
// derives every downstream structure. target anchors the dasha pointer.
func (a *ChartAnalyzer) Analyze(ctx context.Context, b models.BirthDetails, target time.Time) (*models.ChartAnalysis, error) {
	start := time.Now()

	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		a.metrics.RecordError("timezone")
		return nil, fmt.Errorf("resolve timezone %q: %w", b.Timezone, err)
	}
	birth, err := time.ParseInLocation("2006-01-02 15:04", b.Date+" "+b.Time, loc)
	if err != nil {
		a.metrics.RecordError("birth_time")
		return nil, fmt.Errorf("parse birth time: %w", err)
	}
	jd := util.JulianDay(birth)

	cusps, err := a.eph.Cusps(ctx, jd, b.Lat, b.Lon)
	if err != nil {
		a.metrics.RecordError("ephemeris")
		return nil, fmt.Errorf("house cusps for %s: %w", b.Name, err)
	}
	raw, err := a.eph.Bodies(ctx, jd)
	if err != nil {
		a.metrics.RecordError("ephemeris")
		return nil, fmt.Errorf("body longitudes for %s: %w", b.Name, err)
	}

	bodies := make(map[string]float64, len(raw)+2)
	for _, name := range requiredBodies {
		lon, ok := raw[name]
		if !ok {
			a.metrics.RecordError("ephemeris")
			return nil, fmt.Errorf("body %s missing from ephemeris response", name)
		}
		bodies[name] = zodiac.Norm(lon)
	}
	bodies[zodiac.Ketu] = zodiac.Norm(bodies[zodiac.Rahu] + 180)
	bodies[zodiac.Lagna] = cusps[0]

	d9 := varga.TransformAll(bodies, varga.Navamsa)
	d50 := varga.TransformAll(bodies, varga.D50)

	analysis := &models.ChartAnalysis{
		Name:      b.Name,
		Birth:     b,
		JD:        jd,
		Cusps:     cusps,
		Bodies:    bodies,
		D9Bodies:  d9,
		D50Bodies: d50,

		RasiLord:     zodiac.SignLord(zodiac.SignIndex(bodies[zodiac.Moon])),
		D9LagnaSign:  zodiac.SignName(d9[zodiac.Lagna]),
		D9LagnaLord:  zodiac.SignLord(zodiac.SignIndex(d9[zodiac.Lagna])),
		D50LagnaLord: zodiac.SignLord(zodiac.SignIndex(d50[zodiac.Lagna])),
	}

	moonHouse := zodiac.HouseOf(bodies[zodiac.Moon], cusps)
	rahuHouse := zodiac.HouseOf(bodies[zodiac.Rahu], cusps)
	sunHouse := zodiac.HouseOf(bodies[zodiac.Sun], cusps)

	analysis.Kuja = dosha.EvaluateKuja(dosha.KujaPoints{
		MarsHouse:  zodiac.HouseOf(bodies[zodiac.Mars], cusps),
		MoonHouse:  moonHouse,
		VenusHouse: zodiac.HouseOf(bodies[zodiac.Venus], cusps),
		MarsLon:    bodies[zodiac.Mars],
		MoonLon:    bodies[zodiac.Moon],
		SunLon:     bodies[zodiac.Sun],
		Bodies:     bodies,
		D9Bodies:   d9,
	})
	analysis.Rahu = dosha.EvaluateRahu(rahuHouse, moonHouse)

	analysis.Significators = make(map[string][]int, len(zodiac.Grahas))
	for _, g := range zodiac.Grahas {
		analysis.Significators[g] = significator.Houses(bodies[g], cusps, bodies)
	}

	analysis.PitraDosha = significator.Contains(analysis.Significators[zodiac.Rahu], 9) ||
		significator.Contains(analysis.Significators[zodiac.Ketu], 9) ||
		rahuHouse == 9 || sunHouse == 9

	analysis.Positions = make([]models.PositionRow, 0, len(zodiac.Grahas)+1)
	analysis.Positions = append(analysis.Positions, positionRow("Lagna Cusp", cusps[0]))
	for _, g := range zodiac.Grahas {
		analysis.Positions = append(analysis.Positions, positionRow(g, bodies[g]))
	}

	// 7th-cusp sub-lord; a sub-lord whose longitude is not in the chart
	// (Lagna can never be one) yields an empty significator list rather
	// than an error.
	_, analysis.SeventhSubLord = zodiac.StarSubLord(cusps[6])
	if lon, ok := bodies[analysis.SeventhSubLord]; ok {
		analysis.CSLSignificators = significator.Houses(lon, cusps, bodies)
	} else {
		analysis.CSLSignificators = []int{}
	}
	analysis.MarriagePromise = promiseVerdict(analysis.CSLSignificators)

	analysis.Favorability = make(map[string]string, 5)
	for _, g := range []string{zodiac.Jupiter, zodiac.Saturn, zodiac.Venus, zodiac.Sun, zodiac.Mars} {
		analysis.Favorability[g] = favorability(analysis.Significators[g])
	}

	analysis.Dasha = dasha.Current(jd, bodies[zodiac.Moon], util.JulianDay(target))

	seventhLord := zodiac.SignLord(zodiac.SignIndex(cusps[6]))
	analysis.SeventhLordName = seventhLord
	if lon, ok := d9[seventhLord]; ok {
		h := zodiac.WholeSignHouse(lon, d9[zodiac.Lagna])
		analysis.SeventhLordD9Place = fmt.Sprintf("In %dH (%s)", h, zodiac.SignName(lon))
	}

	a.metrics.RecordChartAnalyzed()
	a.metrics.RecordLatency("analyze_chart", time.Since(start).Seconds())
	return analysis, nil
}

func positionRow(body string, lon float64) models.PositionRow {
	star, sub := zodiac.StarSubLord(lon)
	_, nakName, pada := zodiac.Nakshatra(lon)
	return models.PositionRow{
		Body:      body,
		RasiLord:  zodiac.SignLord(zodiac.SignIndex(lon)),
		StarLord:  star,
		SubLord:   sub,
		Longitude: zodiac.DMS(lon),
		Nakshatra: nakName,
		Pada:      pada,
	}
}

// Marriage promise verdicts derived from the 7th-cusp sub-lord's
// significators.
const (
	PromiseStrong  = "STRONG"
	PromiseMixed   = "MIXED"
	PromiseDenial  = "DENIAL"
	PromiseNeutral = "NEUTRAL"
)

func promiseVerdict(csl []int) string {
	promise := significator.Contains(csl, 2, 7, 11)
	denial := significator.Contains(csl, 1, 6, 10)
	switch {
	case promise && !denial:
		return PromiseStrong
	case promise && denial:
		return PromiseMixed
	case denial:
		return PromiseDenial
	default:
		return PromiseNeutral
	}
}

var (
	favorableHouses   = []int{2, 5, 9, 11}
	unfavorableHouses = []int{1, 6, 8, 12}
)

func favorability(sigs []int) string {
	var fav, unfav int
	for _, h := range sigs {
		for _, f := range favorableHouses {
			if h == f {
				fav++
			}
		}
		for _, u := range unfavorableHouses {
			if h == u {
				unfav++
			}
		}
	}
	strength := "Neutral"
	if fav > unfav {
		strength = "Favorable"
	} else if unfav > fav {
		strength = "Unfavorable"
	}
	return fmt.Sprintf("%s (%dF/%dUF)", strength, fav, unfav)
}
