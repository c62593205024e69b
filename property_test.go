package grid9

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// genLat and genLon draw coordinates across the full legal domain,
// including the poles and the antimeridian boundary.
func genLat(t *rapid.T) float64 {
	return rapid.Float64Range(-90, 90).Draw(t, "lat")
}

func genLon(t *rapid.T) float64 {
	return rapid.Float64Range(-180, 180).Draw(t, "lon")
}

// TestPropertyBoundedError checks spec.md §8 invariant 2: decoding an
// encoded coordinate never drifts more than 3.5 m from the input. The
// share of points within 3.0 m is not checked here.
func TestPropertyBoundedError(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lat := genLat(t)
		lon := genLon(t)

		code, err := Encode(lat, lon, false)
		if !assert.NoError(t, err) {
			return
		}

		decLat, decLon, err := Decode(code)
		if !assert.NoError(t, err) {
			return
		}

		d := haversine(lat, lon, decLat, decLon)
		assert.LessOrEqual(t, d, 3.5)
	})
}

// TestPropertyRoundTripStability checks spec.md §8 invariant 1:
// encode(decode(c)) == c for every code produced by Encode.
func TestPropertyRoundTripStability(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lat := genLat(t)
		lon := genLon(t)

		code, err := Encode(lat, lon, false)
		if !assert.NoError(t, err) {
			return
		}

		decLat, decLon, err := Decode(code)
		if !assert.NoError(t, err) {
			return
		}

		reencoded, err := Encode(decLat, decLon, false)
		if !assert.NoError(t, err) {
			return
		}

		assert.Equal(t, code, reencoded)
	})
}

// TestPropertyIdempotentFormatting checks spec.md §8 invariant 3.
func TestPropertyIdempotentFormatting(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lat := genLat(t)
		lon := genLon(t)

		code, err := Encode(lat, lon, false)
		if !assert.NoError(t, err) {
			return
		}

		formatted, err := Format(code)
		if !assert.NoError(t, err) {
			return
		}
		unformatted, err := Unformat(formatted)
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, code, unformatted)

		reformatted, err := Format(unformatted)
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, formatted, reformatted)
	})
}

// TestPropertyDistanceSymmetryAndZero checks spec.md §8 invariant 6.
func TestPropertyDistanceSymmetryAndZero(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lat1, lon1 := genLat(t), genLon(t)
		lat2, lon2 := genLat(t), genLon(t)

		c1, err := Encode(lat1, lon1, false)
		if !assert.NoError(t, err) {
			return
		}
		c2, err := Encode(lat2, lon2, false)
		if !assert.NoError(t, err) {
			return
		}

		dSelf, err := Distance(c1, c1)
		if assert.NoError(t, err) {
			assert.Equal(t, 0.0, dSelf)
		}

		dAB, errAB := Distance(c1, c2)
		dBA, errBA := Distance(c2, c1)
		if assert.NoError(t, errAB) && assert.NoError(t, errBA) {
			assert.Equal(t, dAB, dBA)
		}
	})
}

// TestPropertyValidityClosure checks the first half of spec.md §8
// invariant 4: every code Encode produces is accepted by IsValid.
// Rejection of the excluded letters is covered by
// TestDecodeRejectsDisallowedCharacters, at the last position only.
func TestPropertyValidityClosure(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lat := genLat(t)
		lon := genLon(t)

		code, err := Encode(lat, lon, false)
		if !assert.NoError(t, err) {
			return
		}
		assert.True(t, IsValid(code))
	})
}
