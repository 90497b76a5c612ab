package units

import "fmt"

// MassUnit identifies a mass unit. The constant value is the unit's display
// symbol.
type MassUnit string

// Mass unit variants.
const (
	Gram        MassUnit = "g"
	Kilogram    MassUnit = "kg"
	EarthMass   MassUnit = "M⊕"
	JupiterMass MassUnit = "M♃"
	SolarMass   MassUnit = "M☉"
)

// validMassUnits is the set of recognized mass unit variants.
var validMassUnits = map[MassUnit]bool{
	Gram:        true,
	Kilogram:    true,
	EarthMass:   true,
	JupiterMass: true,
	SolarMass:   true,
}

// IsValid reports whether u is a recognized mass unit variant.
func (u MassUnit) IsValid() bool {
	return validMassUnits[u]
}

// Factor returns the conversion factor from u to kilograms, such that
// base_value = magnitude * Factor(). Unrecognized units yield NaN.
func (u MassUnit) Factor() float64 {
	switch u {
	case Gram:
		return gramKilograms
	case Kilogram:
		return 1
	case EarthMass:
		return earthMassKg
	case JupiterMass:
		return jupiterMassKg
	case SolarMass:
		return solarMassKg
	default:
		return nan()
	}
}

// String implements fmt.Stringer.
func (u MassUnit) String() string {
	return string(u)
}

// Mass is a mass quantity: a magnitude tagged with a MassUnit. The magnitude
// is stored strictly in its own unit; conversion happens only at operation
// time. Mass is an immutable value type.
type Mass struct {
	unit  MassUnit
	value float64
}

// NewMass builds a quantity from a unit variant and a magnitude.
func NewMass(u MassUnit, v float64) Mass {
	return Mass{unit: u, value: v}
}

// Grams builds a quantity of v grams.
func Grams(v float64) Mass { return Mass{Gram, v} }

// Kilograms builds a quantity of v kilograms.
func Kilograms(v float64) Mass { return Mass{Kilogram, v} }

// EarthMasses builds a quantity of v Earth masses.
func EarthMasses(v float64) Mass { return Mass{EarthMass, v} }

// JupiterMasses builds a quantity of v Jupiter masses.
func JupiterMasses(v float64) Mass { return Mass{JupiterMass, v} }

// SolarMasses builds a quantity of v Solar masses.
func SolarMasses(v float64) Mass { return Mass{SolarMass, v} }

// Unit returns the quantity's unit variant.
func (m Mass) Unit() MassUnit { return m.unit }

// Value returns the magnitude expressed in the quantity's own unit.
func (m Mass) Value() float64 { return m.value }

// Kilograms returns the magnitude expressed in the base unit.
func (m Mass) Kilograms() float64 { return m.value * m.unit.Factor() }

// To re-expresses the quantity in the given unit.
func (m Mass) To(u MassUnit) Mass {
	if u == m.unit {
		return m
	}
	return Mass{unit: u, value: m.Kilograms() / u.Factor()}
}

// Add returns m + o expressed in m's unit. The left operand's unit wins,
// so Add is not symmetric across mixed units.
func (m Mass) Add(o Mass) Mass {
	return Mass{unit: m.unit, value: (m.Kilograms() + o.Kilograms()) / m.unit.Factor()}
}

// Sub returns m - o expressed in m's unit.
func (m Mass) Sub(o Mass) Mass {
	return Mass{unit: m.unit, value: (m.Kilograms() - o.Kilograms()) / m.unit.Factor()}
}

// Mul returns the product of the base-unit magnitudes, expressed in
// kilograms. Symmetric: m.Mul(o) and o.Mul(m) are the same quantity.
func (m Mass) Mul(o Mass) Mass {
	return Kilograms(m.Kilograms() * o.Kilograms())
}

// Div returns the quotient of the base-unit magnitudes, expressed in
// kilograms.
func (m Mass) Div(o Mass) Mass {
	return Kilograms(m.Kilograms() / o.Kilograms())
}

// MulScalar scales the magnitude by k, keeping the unit.
func (m Mass) MulScalar(k float64) Mass {
	return Mass{unit: m.unit, value: m.value * k}
}

// DivScalar divides the magnitude by k, keeping the unit.
func (m Mass) DivScalar(k float64) Mass {
	return Mass{unit: m.unit, value: m.value / k}
}

// Compare orders two quantities by base-unit magnitude: -1 when m < o,
// +1 when m > o, 0 otherwise.
func (m Mass) Compare(o Mass) int {
	return cmpValues(m.Kilograms(), o.Kilograms())
}

// Equal reports whether the base-unit magnitudes are exactly equal.
func (m Mass) Equal(o Mass) bool {
	return m.Kilograms() == o.Kilograms()
}

// Less reports whether m < o.
func (m Mass) Less(o Mass) bool { return m.Compare(o) < 0 }

// LessEq reports whether m <= o.
func (m Mass) LessEq(o Mass) bool { return m.Less(o) || m.Equal(o) }

// Greater reports whether m > o.
func (m Mass) Greater(o Mass) bool { return m.Compare(o) > 0 }

// GreaterEq reports whether m >= o.
func (m Mass) GreaterEq(o Mass) bool { return m.Greater(o) || m.Equal(o) }

// String implements fmt.Stringer.
func (m Mass) String() string {
	switch m.unit {
	case SolarMass:
		return fmt.Sprintf("%.2f M☉", m.value)
	case JupiterMass:
		return fmt.Sprintf("%.3f M♃", m.value)
	case EarthMass:
		return fmt.Sprintf("%.3f M⊕", m.value)
	case Kilogram:
		return fmt.Sprintf("%.1f kg", m.value)
	default:
		return fmt.Sprintf("%.0fg", m.value)
	}
}
