// Package geometry holds the unit arithmetic shared by the bounds calculator
// and the drag engine: percent/pixel conversion, range clamping and the
// pixel-length string format used by emitted resize events.
package geometry

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrNotPixels is returned by ParsePixels for values without a px suffix.
var ErrNotPixels = errors.New("geometry: not a pixel length")

// PixelsFromPercentage converts a percentage of limit to an absolute pixel
// value, rounded to the nearest unit.
func PixelsFromPercentage(percent float64, limit int) int {
	return int(math.Round(float64(limit) * percent / 100))
}

// PercentageFromPixels is the inverse of PixelsFromPercentage. A zero limit
// yields zero rather than dividing by it.
func PercentageFromPixels(pixels, limit int) float64 {
	if limit == 0 {
		return 0
	}
	return float64(pixels) / float64(limit) * 100
}

// Clamp restricts v to [lo, hi]. The upper bound is applied before the lower
// one, so when a caller supplies lo > hi the lower bound wins and Clamp
// always returns lo. Resolved bounds with minimum > maximum rely on this.
func Clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// FormatPixels renders an absolute size as a pixel length, e.g. "250px".
func FormatPixels(pixels int) string {
	return strconv.Itoa(pixels) + "px"
}

// ParsePixels converts a pixel length back to its numeric value.
func ParsePixels(s string) (int, error) {
	v, ok := strings.CutSuffix(s, "px")
	if !ok {
		return 0, ErrNotPixels
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}
	return n, nil
}
