package zodiac

import (
	"fmt"
	"math"
)

// NakshatraSpan is 13°20′, the width of one of the 27 lunar mansions.
const NakshatraSpan = 360.0 / 27.0

// PadaSpan is 3°20′, a quarter of a nakshatra.
const PadaSpan = NakshatraSpan / 4.0

// Norm reduces a longitude into [0,360). Out-of-range input is normalized,
// never rejected.
func Norm(lon float64) float64 {
	lon = math.Mod(lon, 360)
	if lon < 0 {
		lon += 360
	}
	return lon
}

// SignIndex returns the sign 0..11 containing the longitude.
func SignIndex(lon float64) int {
	return int(Norm(lon)/30) % 12
}

// SignName returns the name of the sign containing the longitude.
func SignName(lon float64) string {
	return SignNames[SignIndex(lon)]
}

// SignLord returns the ruling planet of a sign index.
func SignLord(sign int) string {
	return signLords[((sign%12)+12)%12]
}

// Nakshatra resolves a longitude to its nakshatra index 0..26, name, and
// pada 1..4.
func Nakshatra(lon float64) (index int, name string, pada int) {
	lon = Norm(lon)
	index = int(lon/NakshatraSpan) % 27
	offset := lon - float64(index)*NakshatraSpan
	pada = int(offset/PadaSpan) + 1
	return index, NakshatraNames[index], pada
}

// NakshatraFraction returns the nakshatra index and the fraction of its span
// already traversed. The fraction anchors the Vimshottari dasha at birth.
func NakshatraFraction(lon float64) (index int, fraction float64) {
	lon = Norm(lon)
	index = int(lon/NakshatraSpan) % 27
	fraction = (lon - float64(index)*NakshatraSpan) / NakshatraSpan
	return index, fraction
}

// NakshatraLord returns the Vimshottari lord ruling nakshatra i.
func NakshatraLord(i int) string {
	return DashaLords[((i%9)+9)%9]
}

// StarSubLord resolves the KP star lord and sub lord of a longitude. The sub
// lord is found by scaling the traversed fraction of the nakshatra onto the
// 120-unit Vimshottari cycle and walking the lord sequence starting at the
// star lord itself; the allotments are deliberately non-uniform.
func StarSubLord(lon float64) (star, sub string) {
	idx, fraction := NakshatraFraction(lon)
	star = NakshatraLord(idx)
	startIdx := idx % 9
	cumulative := fraction * 120.0
	running := 0.0
	for i := 0; i < 9; i++ {
		lord := DashaLords[(startIdx+i)%9]
		running += float64(DashaYears[lord])
		if cumulative < running {
			return star, lord
		}
	}
	// Unreachable for fraction < 1: the allotments sum to exactly 120.
	return star, star
}

// ArcDistance returns the circular distance between two longitudes in [0,180].
func ArcDistance(a, b float64) float64 {
	d := math.Abs(Norm(a) - Norm(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// DMS formats a longitude as degrees, minutes and seconds for report payloads.
func DMS(lon float64) string {
	lon = Norm(lon)
	deg := int(lon)
	minF := (lon - float64(deg)) * 60
	min := int(minF)
	sec := math.Round((minF-float64(min))*60*100) / 100
	return fmt.Sprintf("%d° %d' %g\"", deg, min, sec)
}
