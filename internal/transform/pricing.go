package transform

import "math"

// PublicPrice converts a wholesale price into the listed price by applying
// the markup rate. Rounding is math.Round, half away from zero; the exact
// .5 boundary is practically unreachable with a 17% markup but the choice
// is deliberate and stable.
func PublicPrice(wholesale, rate float64) int {
	price := int(math.Round(wholesale + wholesale*rate))
	if price < 0 {
		return 0
	}
	return price
}
