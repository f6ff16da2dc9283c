package zodiac

// Fixed reference tables for the sidereal zodiac. Constructed once;
// nothing here is mutated at runtime.

// Graha names used as map keys across the whole engine.
const (
	Sun     = "Sun"
	Moon    = "Moon"
	Mars    = "Mars"
	Mercury = "Mercury"
	Jupiter = "Jupiter"
	Venus   = "Venus"
	Saturn  = "Saturn"
	Rahu    = "Rahu"
	Ketu    = "Ketu"
	Lagna   = "Lagna"
)

// SignNames indexed by sign 0..11 (Aries..Pisces).
var SignNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// signLords maps sign index to its ruling planet.
var signLords = [12]string{
	Mars, Venus, Mercury, Moon, Sun, Mercury,
	Venus, Mars, Jupiter, Saturn, Saturn, Jupiter,
}

// NakshatraNames indexed 0..26 (Ashwini..Revati).
var NakshatraNames = [27]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni", "Uttara Phalguni",
	"Hasta", "Chitra", "Swati", "Vishakha", "Anuradha", "Jyeshtha",
	"Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana", "Dhanishta",
	"Shatabhisha", "Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}

// DashaLords is the Vimshottari lord sequence. The 27 nakshatras cycle
// through it three times, so the lord of nakshatra i is DashaLords[i%9].
var DashaLords = [9]string{Ketu, Venus, Sun, Moon, Mars, Rahu, Jupiter, Saturn, Mercury}

// DashaYears holds each lord's allotment in the 120-year cycle.
var DashaYears = map[string]int{
	Ketu: 7, Venus: 20, Sun: 6, Moon: 10, Mars: 7,
	Rahu: 18, Jupiter: 16, Saturn: 19, Mercury: 17,
}

// Dignity tables for the seven classical planets. The nodes own no signs.
var (
	ownSigns     = map[string][]int{Sun: {4}, Moon: {3}, Mars: {0, 7}, Mercury: {2, 5}, Jupiter: {8, 11}, Venus: {1, 6}, Saturn: {9, 10}}
	exaltation   = map[string]int{Sun: 0, Moon: 1, Mars: 9, Mercury: 5, Jupiter: 3, Venus: 11, Saturn: 6}
	debilitation = map[string]int{Sun: 6, Moon: 7, Mars: 3, Mercury: 11, Jupiter: 9, Venus: 5, Saturn: 0}
)

// maitri is the Parashari natural friendship grid: 2 friend, 1 neutral, 0 enemy.
var maitri = map[string]map[string]int{
	Sun:     {Sun: 2, Moon: 2, Mars: 2, Mercury: 1, Jupiter: 2, Venus: 0, Saturn: 0},
	Moon:    {Sun: 2, Moon: 2, Mars: 1, Mercury: 2, Jupiter: 1, Venus: 1, Saturn: 0},
	Mars:    {Sun: 2, Moon: 2, Mars: 2, Mercury: 0, Jupiter: 2, Venus: 1, Saturn: 0},
	Mercury: {Sun: 2, Moon: 0, Mars: 1, Mercury: 2, Jupiter: 1, Venus: 2, Saturn: 1},
	Jupiter: {Sun: 2, Moon: 2, Mars: 2, Mercury: 0, Jupiter: 2, Venus: 0, Saturn: 1},
	Venus:   {Sun: 1, Moon: 1, Mars: 1, Mercury: 2, Jupiter: 0, Venus: 2, Saturn: 2},
	Saturn:  {Sun: 0, Moon: 0, Mars: 0, Mercury: 2, Jupiter: 1, Venus: 2, Saturn: 2},
}

// Grahas lists the nine bodies of a chart in report order.
var Grahas = [9]string{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu}
