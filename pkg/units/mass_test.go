package units

import (
	"math"
	"testing"
)

// massUnitsUnderTest lists every mass unit variant.
var massUnitsUnderTest = []MassUnit{
	Gram, Kilogram, EarthMass, JupiterMass, SolarMass,
}

func TestMassRoundTrip(t *testing.T) {
	const magnitude = 2.25
	for _, from := range massUnitsUnderTest {
		for _, to := range massUnitsUnderTest {
			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				got := NewMass(from, magnitude).To(to).To(from).Value()
				if rel := math.Abs(got-magnitude) / magnitude; rel > 1e-12 {
					t.Errorf("round trip %s -> %s -> %s: got %v, want %v", from, to, from, got, magnitude)
				}
			})
		}
	}
}

func TestMassComparison(t *testing.T) {
	a := Kilograms(1)
	b := Kilograms(1.5)
	c := Kilograms(1.0)

	if !a.Less(b) {
		t.Error("1 kg < 1.5 kg failed")
	}
	if !a.Equal(c) {
		t.Error("1 kg == 1.0 kg failed")
	}
	if !b.Greater(c) {
		t.Error("1.5 kg > 1.0 kg failed")
	}
	if !Kilograms(1).Greater(Grams(500)) {
		t.Error("1 kg > 500 g failed")
	}
	if !Kilograms(1).Equal(Grams(1000)) {
		t.Error("1 kg == 1000 g failed")
	}
}

func TestMassOperators(t *testing.T) {
	a := Kilograms(1)
	b := Kilograms(0.5)
	if sum := a.Add(b); !sum.Equal(Kilograms(1.5)) {
		t.Errorf("1 kg + 0.5 kg = %v, want 1.5 kg", sum)
	}

	// Mixed units: the left operand's unit carries the result.
	sum := SolarMasses(1).Add(JupiterMasses(1))
	if sum.Unit() != SolarMass {
		t.Fatalf("Add result unit = %q, want %q", sum.Unit(), SolarMass)
	}
	want := 1 + jupiterMassKg/solarMassKg
	if math.Abs(sum.Value()-want) > 1e-12 {
		t.Errorf("Add result value = %v, want %v", sum.Value(), want)
	}

	diff := Kilograms(1).Sub(Grams(250))
	if diff.Unit() != Kilogram || diff.Value() != 0.75 {
		t.Errorf("1 kg - 250 g = %v, want 0.75 kg", diff)
	}
}

func TestMassMulDivSymmetry(t *testing.T) {
	a := EarthMasses(2)
	b := Grams(300)

	if ab, ba := a.Mul(b), b.Mul(a); ab != ba {
		t.Errorf("Mul not symmetric: %v vs %v", ab, ba)
	}
	if got := a.Mul(b).Unit(); got != Kilogram {
		t.Errorf("Mul result unit = %q, want %q", got, Kilogram)
	}
	if got := a.Div(b).Unit(); got != Kilogram {
		t.Errorf("Div result unit = %q, want %q", got, Kilogram)
	}
}

func TestMassScalarOps(t *testing.T) {
	m := JupiterMasses(3).MulScalar(2)
	if m.Unit() != JupiterMass || m.Value() != 6 {
		t.Errorf("MulScalar = %v, want 6 M♃", m)
	}
	m = m.DivScalar(4)
	if m.Unit() != JupiterMass || m.Value() != 1.5 {
		t.Errorf("DivScalar = %v, want 1.5 M♃", m)
	}
}

func TestMassString(t *testing.T) {
	tests := []struct {
		m    Mass
		want string
	}{
		{SolarMasses(1.5), "1.50 M☉"},
		{JupiterMasses(0.25), "0.250 M♃"},
		{EarthMasses(2), "2.000 M⊕"},
		{Kilograms(1.25), "1.2 kg"},
		{Grams(42), "42g"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.m.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
