package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertQuantity(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		from  string
		to    string
		want  string
	}{
		{"grams to kilograms", 500, "g", "kg", "0.500000 kg"},
		{"celsius to kelvin", 0, "c", "k", "273.150000 K"},
		{"meters identity", 2, "m", "m", "2.000000 m"},
		{"kelvin to black hole", 5, "k", "x", "∞K"},
		{"symbols are case-insensitive", 500, "G", "KG", "0.500000 kg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := convertQuantity(tt.value, tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertQuantityErrors(t *testing.T) {
	_, err := convertQuantity(1, "ly", "kg")
	assert.ErrorIs(t, err, errDimensionMismatch)

	_, err = convertQuantity(1, "furlong", "m")
	assert.ErrorIs(t, err, errUnknownUnit)
}

func TestCompareQuantities(t *testing.T) {
	tests := []struct {
		name string
		aVal float64
		aSym string
		bVal float64
		bSym string
		want string
	}{
		{"1 ly > 1 au", 1, "ly", 1, "au", ">"},
		{"1 kg > 500 g", 1, "kg", 500, "g", ">"},
		{"0 C = 273.15 K", 0, "c", 273.15, "k", "="},
		{"1 au < 1 pc", 1, "au", 1, "pc", "<"},
		{"black hole is incomparable", 1, "x", 1, "k", "incomparable"},
		{"white dwarf ignores magnitude", 42, "wd", 7, "wd", "="},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := compareQuantities(tt.aVal, tt.aSym, tt.bVal, tt.bSym)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompareQuantitiesErrors(t *testing.T) {
	_, err := compareQuantities(1, "kg", 1, "ly")
	assert.ErrorIs(t, err, errDimensionMismatch)

	_, err = compareQuantities(1, "", 1, "m")
	assert.ErrorIs(t, err, errUnknownUnit)
}
