// Package units provides typed astrometric quantities: distance and radius,
// mass, temperature, and galactic-radius ranges. A quantity is a magnitude
// tagged with a unit variant; arithmetic and comparison across mixed units of
// the same dimension convert through the dimension's base unit internally.
// Cross-dimension arithmetic does not type-check.
package units
