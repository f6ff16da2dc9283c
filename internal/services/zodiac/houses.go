package zodiac

// HouseOf maps a longitude to a house 1..12 given the 12 cusp boundaries.
// Intervals are closed-open and circular: a house whose end cusp wraps past
// 360° contains longitudes on either side of the wrap. Exactly one house
// matches for a well-formed cusp set; 0 is returned only for degenerate
// cusps, which valid ephemeris output never produces.
func HouseOf(lon float64, cusps [12]float64) int {
	lon = Norm(lon)
	for i := 0; i < 12; i++ {
		start := cusps[i]
		end := cusps[(i+1)%12]
		if start < end {
			if start <= lon && lon < end {
				return i + 1
			}
		} else if start <= lon || lon < end {
			return i + 1
		}
	}
	return 0
}

// WholeSignHouse maps a longitude to a house 1..12 counted sign-by-sign from
// the ascendant's sign. This is a different convention from HouseOf (sign
// based, equal width) and the two are used in different report sections;
// they agree only when cusps are exactly sign-aligned.
func WholeSignHouse(lon, ascendant float64) int {
	return (SignIndex(lon)-SignIndex(ascendant)+12)%12 + 1
}

// RelativeHouse counts house h as seen from house `from`, 1..12.
func RelativeHouse(h, from int) int {
	return (h-from+12)%12 + 1
}
