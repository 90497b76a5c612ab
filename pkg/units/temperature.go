package units

import "fmt"

// TemperatureUnit identifies a temperature unit or category. The constant
// value is the unit's display symbol.
//
// Kelvin and Celsius are scalable units.
// WhiteDwarf and NeutronStar are fixed-value categories: each stands for a
// single representative value and ignores the stored magnitude. BlackHole is
// degenerate: a black hole's temperature has no conventional scale value, so
// the variant takes part in arithmetic and comparison only as a special case.
type TemperatureUnit string

const (
	Kelvin      TemperatureUnit = "K"
	Celsius     TemperatureUnit = "°C"
	WhiteDwarf  TemperatureUnit = "WD"
	NeutronStar TemperatureUnit = "NS"
	BlackHole   TemperatureUnit = "X"
)

// AbsoluteZero is 0 K.
var AbsoluteZero = Kelvins(0)

// validTemperatureUnits is the set of recognized temperature unit variants.
var validTemperatureUnits = map[TemperatureUnit]bool{
	Kelvin:      true,
	Celsius:     true,
	WhiteDwarf:  true,
	NeutronStar: true,
	BlackHole:   true,
}

// IsValid reports whether u is a recognized temperature unit variant.
func (u TemperatureUnit) IsValid() bool {
	return validTemperatureUnits[u]
}

// IsFixed reports whether u is a fixed-value category (a single
// representative value rather than a scalable unit).
func (u TemperatureUnit) IsFixed() bool {
	return u == WhiteDwarf || u == NeutronStar
}

// String implements fmt.Stringer.
func (u TemperatureUnit) String() string {
	return string(u)
}

// Temperature is a temperature quantity: a magnitude tagged with a
// TemperatureUnit. The magnitude is stored strictly in its own unit and is
// ignored for the fixed-value categories. Temperature is an immutable value
// type.
type Temperature struct {
	unit  TemperatureUnit
	value float64
}

// NewTemperature builds a quantity from a unit variant and a magnitude.
func NewTemperature(u TemperatureUnit, v float64) Temperature {
	return Temperature{unit: u, value: v}
}

// Kelvins builds a quantity of v Kelvin.
func Kelvins(v float64) Temperature { return Temperature{Kelvin, v} }

// DegreesCelsius builds a quantity of v degrees Celsius.
func DegreesCelsius(v float64) Temperature { return Temperature{Celsius, v} }

// WhiteDwarfTemperature builds the white-dwarf fixed category.
func WhiteDwarfTemperature() Temperature { return Temperature{WhiteDwarf, whiteDwarfKelvins} }

// NeutronStarTemperature builds the neutron-star fixed category.
func NeutronStarTemperature() Temperature { return Temperature{NeutronStar, neutronStarKelvins} }

// BlackHoleTemperature builds the degenerate black-hole category.
func BlackHoleTemperature() Temperature { return Temperature{BlackHole, nan()} }

// Unit returns the quantity's unit variant.
func (t Temperature) Unit() TemperatureUnit { return t.unit }

// Value returns the stored magnitude in the quantity's own unit. For the
// fixed-value categories this is display-only; for BlackHole it is NaN.
func (t Temperature) Value() float64 { return t.value }

// Kelvins returns the magnitude expressed in the base unit. The fixed-value
// categories yield their representative value regardless of the stored
// magnitude; BlackHole yields NaN.
func (t Temperature) Kelvins() float64 {
	switch t.unit {
	case Kelvin:
		return t.value
	case Celsius:
		return t.value + celsiusOffset
	case WhiteDwarf:
		return whiteDwarfKelvins
	case NeutronStar:
		return neutronStarKelvins
	default:
		return nan()
	}
}

// To re-expresses the quantity in the given unit. Conversion to a scalable
// unit clamps at absolute zero. BlackHole converts to nothing and nothing
// converts to BlackHole: either way the result is the black-hole category.
func (t Temperature) To(u TemperatureUnit) Temperature {
	if t.unit == BlackHole || u == BlackHole {
		return BlackHoleTemperature()
	}
	switch u {
	case Kelvin:
		return Temperature{Kelvin, max(t.Kelvins(), 0)}
	case Celsius:
		return Temperature{Celsius, max(t.Kelvins(), 0) - celsiusOffset}
	default:
		// Fixed categories keep the converted magnitude for display only.
		return Temperature{u, t.Kelvins()}
	}
}

// express re-expresses a base-unit value in u without clamping; arithmetic
// results may legitimately pass below absolute zero (e.g. Sub).
func express(u TemperatureUnit, kelvins float64) Temperature {
	if u == Celsius {
		return Temperature{Celsius, kelvins - celsiusOffset}
	}
	return Temperature{u, kelvins}
}

// resultUnit is the unit that carries an arithmetic result for a given left
// operand. Fixed-value categories ignore their stored magnitude and cannot
// carry a result, so they fall back to Kelvin.
func (t Temperature) resultUnit() TemperatureUnit {
	if t.unit.IsFixed() {
		return Kelvin
	}
	return t.unit
}

// Add returns t + o expressed in t's unit (Kelvin when t is a fixed-value
// category). BlackHole is absorbing: if either operand is the black-hole
// category, so is the result.
func (t Temperature) Add(o Temperature) Temperature {
	if t.unit == BlackHole || o.unit == BlackHole {
		return BlackHoleTemperature()
	}
	return express(t.resultUnit(), t.Kelvins()+o.Kelvins())
}

// Sub returns t - o expressed in t's unit, with the same fixed-category and
// black-hole handling as Add.
func (t Temperature) Sub(o Temperature) Temperature {
	if t.unit == BlackHole || o.unit == BlackHole {
		return BlackHoleTemperature()
	}
	return express(t.resultUnit(), t.Kelvins()-o.Kelvins())
}

// Mul returns the product of the base-unit magnitudes, expressed in Kelvin.
// Symmetric: t.Mul(o) and o.Mul(t) are the same quantity. BlackHole is
// absorbing.
func (t Temperature) Mul(o Temperature) Temperature {
	if t.unit == BlackHole || o.unit == BlackHole {
		return BlackHoleTemperature()
	}
	return Kelvins(t.Kelvins() * o.Kelvins())
}

// Div returns the quotient of the base-unit magnitudes, expressed in Kelvin.
// BlackHole is absorbing.
func (t Temperature) Div(o Temperature) Temperature {
	if t.unit == BlackHole || o.unit == BlackHole {
		return BlackHoleTemperature()
	}
	return Kelvins(t.Kelvins() / o.Kelvins())
}

// MulScalar scales the stored magnitude by k, keeping the unit. On the
// fixed-value categories the stored magnitude is display-only, so scaling
// does not change the quantity's value.
func (t Temperature) MulScalar(k float64) Temperature {
	return Temperature{unit: t.unit, value: t.value * k}
}

// DivScalar divides the stored magnitude by k, keeping the unit.
func (t Temperature) DivScalar(k float64) Temperature {
	return Temperature{unit: t.unit, value: t.value / k}
}

// Compare orders two quantities by base-unit magnitude. The bool is false
// when the operands are incomparable, which happens exactly when either is
// the black-hole category.
func (t Temperature) Compare(o Temperature) (int, bool) {
	if t.unit == BlackHole || o.unit == BlackHole {
		return 0, false
	}
	return cmpValues(t.Kelvins(), o.Kelvins()), true
}

// Equal reports whether the base-unit magnitudes are exactly equal. The
// black-hole category equals nothing, itself included.
func (t Temperature) Equal(o Temperature) bool {
	if t.unit == BlackHole || o.unit == BlackHole {
		return false
	}
	return t.Kelvins() == o.Kelvins()
}

// Less reports whether t < o; false when incomparable.
func (t Temperature) Less(o Temperature) bool {
	c, ok := t.Compare(o)
	return ok && c < 0
}

// LessEq reports whether t <= o; false when incomparable.
func (t Temperature) LessEq(o Temperature) bool {
	return t.Less(o) || t.Equal(o)
}

// Greater reports whether t > o; false when incomparable.
func (t Temperature) Greater(o Temperature) bool {
	c, ok := t.Compare(o)
	return ok && c > 0
}

// GreaterEq reports whether t >= o; false when incomparable.
func (t Temperature) GreaterEq(o Temperature) bool {
	return t.Greater(o) || t.Equal(o)
}

// String implements fmt.Stringer.
func (t Temperature) String() string {
	switch t.unit {
	case BlackHole:
		return "∞K"
	case Kelvin:
		return fmt.Sprintf("%.1fK", t.value)
	case Celsius:
		return fmt.Sprintf("%.1f°C", t.value)
	case WhiteDwarf:
		return fmt.Sprintf("~%.0fK (white dwarf)", whiteDwarfKelvins)
	case NeutronStar:
		return fmt.Sprintf("~%.0fK (neutron star)", neutronStarKelvins)
	default:
		return fmt.Sprintf("%g %s", t.value, t.unit)
	}
}
