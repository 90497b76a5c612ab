// Unit symbol resolution and shared formatting for the astral CLI.
// The units library deliberately exposes no free-text parsing; this fixed
// symbol table belongs to the CLI front end.
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/astral/pkg/units"
)

// CLI symbols per dimension, lower-cased.
var (
	spatialSymbols = map[string]units.SpatialUnit{
		"m":  units.Meter,
		"re": units.EarthRadius,
		"ro": units.SolarRadius,
		"au": units.AstronomicalUnit,
		"ly": units.LightYear,
		"pc": units.Parsec,
	}

	massSymbols = map[string]units.MassUnit{
		"g":  units.Gram,
		"kg": units.Kilogram,
		"me": units.EarthMass,
		"mj": units.JupiterMass,
		"mo": units.SolarMass,
	}

	temperatureSymbols = map[string]units.TemperatureUnit{
		"k":  units.Kelvin,
		"c":  units.Celsius,
		"wd": units.WhiteDwarf,
		"ns": units.NeutronStar,
		"x":  units.BlackHole,
	}
)

var (
	errUnknownUnit       = errors.New("unknown unit symbol")
	errDimensionMismatch = errors.New("units belong to different dimensions")
)

// formatMagnitude renders a magnitude with the configured precision.
func formatMagnitude(value float64, unit fmt.Stringer) string {
	return fmt.Sprintf("%.*f %s", outputPrecision, value, unit)
}

// convertQuantity converts value from one unit symbol to another within a
// single dimension and returns the display string.
func convertQuantity(value float64, fromSym, toSym string) (string, error) {
	fromSym = strings.ToLower(fromSym)
	toSym = strings.ToLower(toSym)

	if from, ok := spatialSymbols[fromSym]; ok {
		to, ok := spatialSymbols[toSym]
		if !ok {
			return "", fmt.Errorf("%w: %q is not a distance unit", errDimensionMismatch, toSym)
		}
		q := units.NewSpatial(from, value).To(to)
		return formatMagnitude(q.Value(), q.Unit()), nil
	}

	if from, ok := massSymbols[fromSym]; ok {
		to, ok := massSymbols[toSym]
		if !ok {
			return "", fmt.Errorf("%w: %q is not a mass unit", errDimensionMismatch, toSym)
		}
		q := units.NewMass(from, value).To(to)
		return formatMagnitude(q.Value(), q.Unit()), nil
	}

	if from, ok := temperatureSymbols[fromSym]; ok {
		to, ok := temperatureSymbols[toSym]
		if !ok {
			return "", fmt.Errorf("%w: %q is not a temperature unit", errDimensionMismatch, toSym)
		}
		q := units.NewTemperature(from, value).To(to)
		if q.Unit() == units.BlackHole || q.Unit().IsFixed() {
			return q.String(), nil
		}
		return formatMagnitude(q.Value(), q.Unit()), nil
	}

	return "", fmt.Errorf("%w: %q", errUnknownUnit, fromSym)
}

// compareQuantities orders two quantities of the same dimension and returns
// "<", "=", ">", or "incomparable".
func compareQuantities(aVal float64, aSym string, bVal float64, bSym string) (string, error) {
	aSym = strings.ToLower(aSym)
	bSym = strings.ToLower(bSym)

	if ua, ok := spatialSymbols[aSym]; ok {
		ub, ok := spatialSymbols[bSym]
		if !ok {
			return "", fmt.Errorf("%w: %q is not a distance unit", errDimensionMismatch, bSym)
		}
		return relation(units.NewSpatial(ua, aVal).Compare(units.NewSpatial(ub, bVal))), nil
	}

	if ua, ok := massSymbols[aSym]; ok {
		ub, ok := massSymbols[bSym]
		if !ok {
			return "", fmt.Errorf("%w: %q is not a mass unit", errDimensionMismatch, bSym)
		}
		return relation(units.NewMass(ua, aVal).Compare(units.NewMass(ub, bVal))), nil
	}

	if ua, ok := temperatureSymbols[aSym]; ok {
		ub, ok := temperatureSymbols[bSym]
		if !ok {
			return "", fmt.Errorf("%w: %q is not a temperature unit", errDimensionMismatch, bSym)
		}
		c, comparable := units.NewTemperature(ua, aVal).Compare(units.NewTemperature(ub, bVal))
		if !comparable {
			return "incomparable", nil
		}
		return relation(c), nil
	}

	return "", fmt.Errorf("%w: %q", errUnknownUnit, aSym)
}

// relation renders a three-way comparison result.
func relation(c int) string {
	switch {
	case c < 0:
		return "<"
	case c > 0:
		return ">"
	default:
		return "="
	}
}
