package gimbal

import "github.com/ensigniasec/gimbal/internal/geometry"

// Preference picks which source of a LimitRule is authoritative when both a
// percent and a pixel constraint are supplied.
type Preference int

const (
	PreferUnset Preference = iota
	PreferPixels
	PreferPercent
)

// LimitRule is a user-supplied size constraint, expressed as a percentage of
// the container, an absolute pixel value, or both. Nil fields are absent.
type LimitRule struct {
	Percent *float64
	Pixels  *int
	Prefer  Preference
}

// preference resolves the effective preference: an explicit Prefer wins,
// otherwise pixels when a pixel value is supplied, else percent.
func (r LimitRule) preference() Preference {
	if r.Prefer != PreferUnset {
		return r.Prefer
	}
	if r.Pixels != nil {
		return PreferPixels
	}
	return PreferPercent
}

// ResolvedBounds are the absolute positions the handle may occupy along the
// active axis, already adjusted for axis reversal. Offset is the handle's
// half-thickness, used to center the split point on the handle.
type ResolvedBounds struct {
	Maximum int
	Minimum int
	Offset  int
}

// ResolveBounds converts the raw min/max rules into absolute positions for a
// container of the given size.
//
// A bound with a single supplied source resolves to that source converted to
// pixels; the percent defaults (100 for maximum, 0 for minimum) apply only
// when the rule carries no constraint at all. When both sources are supplied
// the maximum takes the larger candidate, while the minimum takes the larger
// only when percent is preferred and the smaller otherwise. The asymmetry
// between the two bounds is intentional, original behavior; do not "fix" it.
func ResolveBounds(isReverse bool, containerLimit, handleOffset int, maxRule, minRule LimitRule) ResolvedBounds {
	maximum := resolveLimit(maxRule, containerLimit, 100, false)
	minimum := resolveLimit(minRule, containerLimit, 0, true)

	maximum = geometry.Clamp(maximum, 0, containerLimit)
	minimum = geometry.Clamp(minimum, 0, containerLimit)

	if isReverse {
		maximum, minimum = containerLimit-minimum, containerLimit-maximum
	}

	return ResolvedBounds{
		Maximum: maximum,
		Minimum: minimum,
		Offset:  handleOffset,
	}
}

// resolveLimit collapses one rule to an absolute pixel value.
func resolveLimit(r LimitRule, limit int, defaultPercent float64, isMinimum bool) int {
	percent := defaultPercent
	if r.Percent != nil {
		percent = *r.Percent
	}
	fromPercent := geometry.PixelsFromPercentage(percent, limit)

	if r.Pixels == nil {
		return fromPercent
	}
	if r.Percent == nil {
		return *r.Pixels
	}

	// Both sources supplied. The maximum always takes the more permissive
	// (larger) candidate; the preference only breaks ties between sources.
	// The minimum inverts the comparison unless percent is preferred.
	pixels := *r.Pixels
	if !isMinimum {
		return max(pixels, fromPercent)
	}
	if r.preference() == PreferPercent {
		return max(pixels, fromPercent)
	}
	return min(pixels, fromPercent)
}
