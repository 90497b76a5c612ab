package units

import "math"

// IAU nominal conversion constants (2009/2015 resolutions), in meters.
const (
	// Astronomical Unit (exact, IAU 2012 definition).
	auMeters = 149_597_870_700.0

	// Light-year (derived from c = 299,792,458 m/s).
	lightYearMeters = 9.4607e15

	// Parsec (exact, derived from the au).
	parsecMeters = 3.085677581e16

	// Nominal Solar radius (IAU 2015 Resolution B3).
	solarRadiusMeters = 695_700_000.0

	// Nominal Earth equatorial radius (IAU 2015 Resolution B3).
	earthRadiusMeters = 6_378_100.0
)

// Reference masses, in kilograms.
const (
	gramKilograms = 1e-3
	earthMassKg   = 5.9722e24
	jupiterMassKg = 1.89813e27
	solarMassKg   = 1.98847e30
)

// Temperature constants, in Kelvin.
const (
	// Offset between the Celsius and Kelvin scales.
	celsiusOffset = 273.15

	// Representative surface temperatures for the fixed categories.
	whiteDwarfKelvins  = 1.0e4
	neutronStarKelvins = 1.0e6
)

// nan marks degenerate catalog lookups and the black-hole temperature.
func nan() float64 { return math.NaN() }

// cmpValues orders two base-unit magnitudes: -1 when a < b, +1 when a > b,
// 0 otherwise (including when either value is NaN).
func cmpValues(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
