package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCelsiusKelvinEquality(t *testing.T) {
	assert.True(t, DegreesCelsius(0).Equal(Kelvins(273.15)))
	assert.True(t, Kelvins(273.15).Equal(DegreesCelsius(0)))
	assert.False(t, DegreesCelsius(0).Equal(Kelvins(0)))
}

func TestTemperatureComparison(t *testing.T) {
	a := Kelvins(1)
	b := Kelvins(2)
	assert.True(t, a.Less(b))
	assert.True(t, b.GreaterEq(a))

	// Cross-unit ordering converts through Kelvin.
	assert.True(t, DegreesCelsius(0).Greater(Kelvins(100)))
	assert.True(t, Kelvins(300).Greater(DegreesCelsius(0)))

	c, ok := Kelvins(100).Compare(Kelvins(50))
	require.True(t, ok)
	assert.Equal(t, 1, c)
}

func TestTemperatureOperators(t *testing.T) {
	diff := Kelvins(100).Sub(Kelvins(50))
	assert.True(t, Kelvins(50).Equal(diff))

	// Left operand's unit carries the Add/Sub result.
	sum := DegreesCelsius(0).Add(Kelvins(10))
	assert.Equal(t, Celsius, sum.Unit())
	assert.InDelta(t, 10, sum.Value(), 1e-9)

	flipped := Kelvins(10).Add(DegreesCelsius(0))
	assert.Equal(t, Kelvin, flipped.Unit())
	assert.InDelta(t, 283.15, flipped.Value(), 1e-9)

	// Mul and Div are symmetric and expressed in Kelvin.
	a, b := Kelvins(3), DegreesCelsius(0)
	assert.Equal(t, a.Mul(b), b.Mul(a))
	assert.Equal(t, Kelvin, a.Mul(b).Unit())
	assert.InDelta(t, 3*273.15, a.Mul(b).Value(), 1e-9)
}

func TestTemperatureScalarOps(t *testing.T) {
	tt := Kelvins(100).MulScalar(1.5)
	assert.Equal(t, Kelvin, tt.Unit())
	assert.Equal(t, 150.0, tt.Value())

	tt = tt.DivScalar(3)
	assert.Equal(t, 50.0, tt.Value())
}

func TestBlackHoleIsIncomparable(t *testing.T) {
	bh := BlackHoleTemperature()

	assert.False(t, bh.Equal(Kelvins(100)))
	assert.False(t, Kelvins(100).Equal(bh))
	assert.False(t, bh.Equal(bh))

	_, ok := bh.Compare(Kelvins(100))
	assert.False(t, ok)
	assert.False(t, bh.Less(Kelvins(100)))
	assert.False(t, bh.Greater(Kelvins(100)))
	assert.False(t, Kelvins(100).LessEq(bh))
}

func TestBlackHoleAbsorbsArithmetic(t *testing.T) {
	bh := BlackHoleTemperature()

	for name, got := range map[string]Temperature{
		"add left":  bh.Add(Kelvins(1)),
		"add right": Kelvins(1).Add(bh),
		"sub":       Kelvins(1).Sub(bh),
		"mul":       bh.Mul(Kelvins(2)),
		"div":       DegreesCelsius(10).Div(bh),
	} {
		assert.Equal(t, BlackHole, got.Unit(), name)
		assert.True(t, math.IsNaN(got.Value()), name)
	}
}

func TestFixedCategoriesIgnoreMagnitude(t *testing.T) {
	a := NewTemperature(WhiteDwarf, 5)
	b := NewTemperature(WhiteDwarf, 99999)
	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(Kelvins(whiteDwarfKelvins)))

	assert.True(t, NeutronStarTemperature().Greater(WhiteDwarfTemperature()))
}

func TestFixedCategoryArithmeticFallsBackToKelvin(t *testing.T) {
	sum := WhiteDwarfTemperature().Add(Kelvins(100))
	require.Equal(t, Kelvin, sum.Unit())
	assert.Equal(t, whiteDwarfKelvins+100, sum.Value())
}

func TestTemperatureConversion(t *testing.T) {
	// Round trip through the other scalable unit.
	got := DegreesCelsius(20).To(Kelvin).To(Celsius)
	assert.InDelta(t, 20, got.Value(), 1e-9)

	// Conversions clamp at absolute zero.
	assert.Equal(t, 0.0, Kelvins(-5).To(Kelvin).Value())
	assert.Equal(t, -celsiusOffset, DegreesCelsius(-300).To(Celsius).Value())

	// Black hole converts to nothing and nothing converts to it.
	assert.Equal(t, BlackHole, BlackHoleTemperature().To(Kelvin).Unit())
	assert.Equal(t, BlackHole, Kelvins(100).To(BlackHole).Unit())
}

func TestTemperatureNaNPropagation(t *testing.T) {
	q := Kelvins(math.NaN()).Add(Kelvins(1))
	assert.True(t, math.IsNaN(q.Value()))
	assert.False(t, q.Equal(q))
}

func TestTemperatureString(t *testing.T) {
	assert.Equal(t, "300.0K", Kelvins(300).String())
	assert.Equal(t, "21.5°C", DegreesCelsius(21.5).String())
	assert.Equal(t, "∞K", BlackHoleTemperature().String())
	assert.Equal(t, "~10000K (white dwarf)", WhiteDwarfTemperature().String())
	assert.Equal(t, "~1000000K (neutron star)", NeutronStarTemperature().String())
}
