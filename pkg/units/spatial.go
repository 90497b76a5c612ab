package units

import "fmt"

// SpatialUnit identifies a distance or radius unit. The constant value is the
// unit's display symbol.
type SpatialUnit string

// Spatial unit variants.
const (
	Meter            SpatialUnit = "m"
	EarthRadius      SpatialUnit = "R⊕"
	SolarRadius      SpatialUnit = "R☉"
	AstronomicalUnit SpatialUnit = "au"
	LightYear        SpatialUnit = "ly"
	Parsec           SpatialUnit = "pc"
)

// validSpatialUnits is the set of recognized spatial unit variants.
var validSpatialUnits = map[SpatialUnit]bool{
	Meter:            true,
	EarthRadius:      true,
	SolarRadius:      true,
	AstronomicalUnit: true,
	LightYear:        true,
	Parsec:           true,
}

// IsValid reports whether u is a recognized spatial unit variant.
func (u SpatialUnit) IsValid() bool {
	return validSpatialUnits[u]
}

// Factor returns the conversion factor from u to meters, such that
// base_value = magnitude * Factor(). Unrecognized units yield NaN so that
// garbage propagates as NaN instead of silently converting.
func (u SpatialUnit) Factor() float64 {
	switch u {
	case Meter:
		return 1
	case EarthRadius:
		return earthRadiusMeters
	case SolarRadius:
		return solarRadiusMeters
	case AstronomicalUnit:
		return auMeters
	case LightYear:
		return lightYearMeters
	case Parsec:
		return parsecMeters
	default:
		return nan()
	}
}

// String implements fmt.Stringer.
func (u SpatialUnit) String() string {
	return string(u)
}

// Spatial is a distance or radius quantity: a magnitude tagged with a
// SpatialUnit. The magnitude is stored strictly in its own unit; conversion
// happens only at operation time. Spatial is an immutable value type.
type Spatial struct {
	unit  SpatialUnit
	value float64
}

// NewSpatial builds a quantity from a unit variant and a magnitude.
func NewSpatial(u SpatialUnit, v float64) Spatial {
	return Spatial{unit: u, value: v}
}

// Meters builds a quantity of v meters.
func Meters(v float64) Spatial { return Spatial{Meter, v} }

// EarthRadii builds a quantity of v Earth equatorial radii.
func EarthRadii(v float64) Spatial { return Spatial{EarthRadius, v} }

// SolarRadii builds a quantity of v Solar radii.
func SolarRadii(v float64) Spatial { return Spatial{SolarRadius, v} }

// AU builds a quantity of v astronomical units.
func AU(v float64) Spatial { return Spatial{AstronomicalUnit, v} }

// LightYears builds a quantity of v light-years.
func LightYears(v float64) Spatial { return Spatial{LightYear, v} }

// Parsecs builds a quantity of v parsecs.
func Parsecs(v float64) Spatial { return Spatial{Parsec, v} }

// Unit returns the quantity's unit variant.
func (s Spatial) Unit() SpatialUnit { return s.unit }

// Value returns the magnitude expressed in the quantity's own unit.
func (s Spatial) Value() float64 { return s.value }

// Meters returns the magnitude expressed in the base unit.
func (s Spatial) Meters() float64 { return s.value * s.unit.Factor() }

// To re-expresses the quantity in the given unit.
func (s Spatial) To(u SpatialUnit) Spatial {
	if u == s.unit {
		return s
	}
	return Spatial{unit: u, value: s.Meters() / u.Factor()}
}

// Add returns s + o expressed in s's unit. The left operand's unit wins,
// so Add is not symmetric across mixed units.
func (s Spatial) Add(o Spatial) Spatial {
	return Spatial{unit: s.unit, value: (s.Meters() + o.Meters()) / s.unit.Factor()}
}

// Sub returns s - o expressed in s's unit.
func (s Spatial) Sub(o Spatial) Spatial {
	return Spatial{unit: s.unit, value: (s.Meters() - o.Meters()) / s.unit.Factor()}
}

// Mul returns the product of the base-unit magnitudes, expressed in meters.
// Symmetric: s.Mul(o) and o.Mul(s) are the same quantity, unit included.
func (s Spatial) Mul(o Spatial) Spatial {
	return Meters(s.Meters() * o.Meters())
}

// Div returns the quotient of the base-unit magnitudes, expressed in meters.
func (s Spatial) Div(o Spatial) Spatial {
	return Meters(s.Meters() / o.Meters())
}

// MulScalar scales the magnitude by k, keeping the unit.
func (s Spatial) MulScalar(k float64) Spatial {
	return Spatial{unit: s.unit, value: s.value * k}
}

// DivScalar divides the magnitude by k, keeping the unit.
func (s Spatial) DivScalar(k float64) Spatial {
	return Spatial{unit: s.unit, value: s.value / k}
}

// Compare orders two quantities by base-unit magnitude: -1 when s < o,
// +1 when s > o, 0 otherwise.
func (s Spatial) Compare(o Spatial) int {
	return cmpValues(s.Meters(), o.Meters())
}

// Equal reports whether the base-unit magnitudes are exactly equal.
func (s Spatial) Equal(o Spatial) bool {
	return s.Meters() == o.Meters()
}

// Less reports whether s < o.
func (s Spatial) Less(o Spatial) bool { return s.Compare(o) < 0 }

// LessEq reports whether s <= o.
func (s Spatial) LessEq(o Spatial) bool { return s.Less(o) || s.Equal(o) }

// Greater reports whether s > o.
func (s Spatial) Greater(o Spatial) bool { return s.Compare(o) > 0 }

// GreaterEq reports whether s >= o.
func (s Spatial) GreaterEq(o Spatial) bool { return s.Greater(o) || s.Equal(o) }

// String implements fmt.Stringer.
func (s Spatial) String() string {
	return fmt.Sprintf("%g %s", s.value, s.unit)
}
