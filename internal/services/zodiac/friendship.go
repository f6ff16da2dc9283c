package zodiac

// Friendship verdicts from the Parashari grid.
const (
	GreatFriends = "Great Friends"
	Friends      = "Friends"
	Neutral      = "Neutral"
	Enemies      = "Enemies"
	GreatEnemies = "Great Enemies"
)

// Friendship rates two sign lords against the Parashari natural friendship
// grid. A planet absent from the grid (the nodes) rates neutral in both
// directions rather than erroring.
func Friendship(lord1, lord2 string) string {
	l1to2 := rating(lord1, lord2)
	l2to1 := rating(lord2, lord1)
	switch {
	case l1to2 == 2 && l2to1 == 2:
		return GreatFriends
	case l1to2 == 2 || l2to1 == 2:
		return Friends
	case l1to2 == 0 && l2to1 == 0:
		return GreatEnemies
	case l1to2 == 0 || l2to1 == 0:
		return Enemies
	default:
		return Neutral
	}
}

func rating(from, to string) int {
	row, ok := maitri[from]
	if !ok {
		return 1
	}
	r, ok := row[to]
	if !ok {
		return 1
	}
	return r
}

// InOwnSign reports whether the planet rules the given sign.
func InOwnSign(planet string, sign int) bool {
	for _, s := range ownSigns[planet] {
		if s == sign {
			return true
		}
	}
	return false
}

// IsExalted reports whether the sign is the planet's exaltation sign.
func IsExalted(planet string, sign int) bool {
	s, ok := exaltation[planet]
	return ok && s == sign
}

// IsDebilitated reports whether the sign is the planet's debilitation sign.
func IsDebilitated(planet string, sign int) bool {
	s, ok := debilitation[planet]
	return ok && s == sign
}
