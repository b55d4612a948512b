package pattern

import "github.com/jyotisha-io/grahakala/internal/domain/geometry"

// Zodiacal elements in sign order: Aries is fire, Taurus earth, Gemini air,
// Cancer water, and the cycle repeats four times around the zodiac.
var elements = [4]string{"fire", "earth", "air", "water"}

// SignIndex returns the zodiac sign index (0 = Aries … 11 = Pisces) of a
// longitude.
func SignIndex(longitude float64) int {
	return int(geometry.Normalize(longitude) / 30)
}

// Element returns the zodiacal element of a longitude.
func Element(longitude float64) string {
	return elements[SignIndex(longitude)%4]
}

// sharedElement returns the common element of all longitudes, or
// MixedDescriptor when they disagree.
func sharedElement(longitudes []float64) string {
	if len(longitudes) == 0 {
		return MixedDescriptor
	}
	first := Element(longitudes[0])
	for _, lon := range longitudes[1:] {
		if Element(lon) != first {
			return MixedDescriptor
		}
	}
	return first
}

//Personal.AI order the ending
