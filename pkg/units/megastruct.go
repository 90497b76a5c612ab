package units

import "errors"

// Galactic band names returned by GalacticRadii.Contains.
type Band string

const (
	BandVisibleDisk Band = "visible_disk"
	BandArms        Band = "arms"
	BandHalo        Band = "halo"
)

// GalacticRadii validation errors.
var (
	ErrRangeInverted   = errors.New("range minimum exceeds maximum")
	ErrBandsOutOfOrder = errors.New("bands must be ordered visible disk, arms, halo")
)

// SpatialRange is an inclusive distance interval. Min and Max may carry
// different units; comparisons convert through meters.
type SpatialRange struct {
	Min Spatial
	Max Spatial
}

// Contains reports whether s lies within the interval, bounds included.
func (r SpatialRange) Contains(s Spatial) bool {
	return s.GreaterEq(r.Min) && s.LessEq(r.Max)
}

// GalacticRadii describes a galaxy's radial structure as three adjacent
// bands: the visible disk, the spiral arms, and the halo. Bands are
// non-overlapping and ordered outward; each band's lower bound is at least
// the previous band's upper bound.
type GalacticRadii struct {
	visibleDisk SpatialRange
	arms        SpatialRange
	halo        SpatialRange
}

// NewGalacticRadii validates the band layout and builds a GalacticRadii.
// Returns ErrRangeInverted when any band's minimum exceeds its maximum, and
// ErrBandsOutOfOrder when the bands are not ordered disk, arms, halo.
func NewGalacticRadii(visibleDisk, arms, halo SpatialRange) (GalacticRadii, error) {
	for _, r := range []SpatialRange{visibleDisk, arms, halo} {
		if r.Min.Greater(r.Max) {
			return GalacticRadii{}, ErrRangeInverted
		}
	}
	if arms.Min.Less(visibleDisk.Max) || halo.Min.Less(arms.Max) {
		return GalacticRadii{}, ErrBandsOutOfOrder
	}
	return GalacticRadii{visibleDisk: visibleDisk, arms: arms, halo: halo}, nil
}

// NewGalacticRadiiLightYears builds a GalacticRadii from band bounds given
// in light-years.
func NewGalacticRadiiLightYears(diskMin, diskMax, armsMin, armsMax, haloMin, haloMax float64) (GalacticRadii, error) {
	return NewGalacticRadii(
		SpatialRange{Min: LightYears(diskMin), Max: LightYears(diskMax)},
		SpatialRange{Min: LightYears(armsMin), Max: LightYears(armsMax)},
		SpatialRange{Min: LightYears(haloMin), Max: LightYears(haloMax)},
	)
}

// VisibleDisk returns the visible-disk band.
func (g GalacticRadii) VisibleDisk() SpatialRange { return g.visibleDisk }

// Arms returns the spiral-arms band.
func (g GalacticRadii) Arms() SpatialRange { return g.arms }

// Halo returns the halo band.
func (g GalacticRadii) Halo() SpatialRange { return g.halo }

// Contains reports which band holds the distance s, checking the visible
// disk first, then the arms, then the halo. The bool is false when s lies
// outside all three bands.
func (g GalacticRadii) Contains(s Spatial) (Band, bool) {
	switch {
	case g.visibleDisk.Contains(s):
		return BandVisibleDisk, true
	case g.arms.Contains(s):
		return BandArms, true
	case g.halo.Contains(s):
		return BandHalo, true
	default:
		return "", false
	}
}
