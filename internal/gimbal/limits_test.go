package gimbal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func percentPtr(v float64) *float64 { return &v }
func pixelPtr(v int) *int           { return &v }

func TestResolveBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		isReverse    bool
		limit        int
		handleOffset int
		maxRule      LimitRule
		minRule      LimitRule
		wantMax      int
		wantMin      int
		wantOffset   int
	}{
		{
			name:    "no rules span the whole container",
			limit:   500,
			wantMax: 500,
			wantMin: 0,
		},
		{
			name:    "percent max with pixel min",
			limit:   500,
			maxRule: LimitRule{Percent: percentPtr(80)},
			minRule: LimitRule{Pixels: pixelPtr(50)},
			wantMax: 400,
			wantMin: 50,
		},
		{
			name:      "reversed axis swaps and complements",
			isReverse: true,
			limit:     500,
			maxRule:   LimitRule{Percent: percentPtr(80)},
			minRule:   LimitRule{Pixels: pixelPtr(50)},
			wantMax:   450,
			wantMin:   100,
		},
		{
			name:    "maximum takes the larger of both sources",
			limit:   500,
			maxRule: LimitRule{Percent: percentPtr(60), Pixels: pixelPtr(450)},
			wantMax: 450,
			wantMin: 0,
		},
		{
			name:    "maximum takes the larger even when percent preferred",
			limit:   500,
			maxRule: LimitRule{Percent: percentPtr(60), Pixels: pixelPtr(450), Prefer: PreferPercent},
			wantMax: 450,
			wantMin: 0,
		},
		{
			name:    "minimum defaults toward the smaller source",
			limit:   500,
			minRule: LimitRule{Percent: percentPtr(20), Pixels: pixelPtr(150)},
			wantMax: 500,
			wantMin: 100,
		},
		{
			name:    "minimum takes the larger when percent preferred",
			limit:   500,
			minRule: LimitRule{Percent: percentPtr(20), Pixels: pixelPtr(150), Prefer: PreferPercent},
			wantMax: 500,
			wantMin: 150,
		},
		{
			name:    "maximum clamped to container",
			limit:   500,
			maxRule: LimitRule{Pixels: pixelPtr(900)},
			wantMax: 500,
			wantMin: 0,
		},
		{
			name:    "negative pixel minimum clamped to zero",
			limit:   500,
			minRule: LimitRule{Pixels: pixelPtr(-40)},
			wantMax: 500,
			wantMin: 0,
		},
		{
			name:         "handle offset is passed through",
			limit:        500,
			handleOffset: 3,
			wantMax:      500,
			wantMin:      0,
			wantOffset:   3,
		},
		{
			name:    "zero container collapses everything",
			limit:   0,
			maxRule: LimitRule{Percent: percentPtr(80)},
			minRule: LimitRule{Pixels: pixelPtr(50)},
			wantMax: 0,
			wantMin: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ResolveBounds(tt.isReverse, tt.limit, tt.handleOffset, tt.maxRule, tt.minRule)
			assert.Equal(t, tt.wantMax, got.Maximum, "maximum")
			assert.Equal(t, tt.wantMin, got.Minimum, "minimum")
			assert.Equal(t, tt.wantOffset, got.Offset, "offset")
		})
	}
}

func TestResolveBoundsOrdering(t *testing.T) {
	t.Parallel()

	// Whenever the supplied rules satisfy min <= max before clamping, the
	// resolved bounds must satisfy 0 <= minimum <= maximum <= limit.
	limits := []int{0, 1, 10, 500, 1337}
	for _, limit := range limits {
		for minPct := 0.0; minPct <= 100; minPct += 25 {
			for maxPct := minPct; maxPct <= 100; maxPct += 25 {
				got := ResolveBounds(false, limit, 0,
					LimitRule{Percent: percentPtr(maxPct)},
					LimitRule{Percent: percentPtr(minPct)})
				assert.GreaterOrEqual(t, got.Minimum, 0)
				assert.LessOrEqual(t, got.Minimum, got.Maximum)
				assert.LessOrEqual(t, got.Maximum, limit)
			}
		}
	}
}

func TestResolveBoundsReversalSymmetry(t *testing.T) {
	t.Parallel()

	const limit = 500
	maxRule := LimitRule{Percent: percentPtr(80)}
	minRule := LimitRule{Pixels: pixelPtr(50)}

	fwd := ResolveBounds(false, limit, 0, maxRule, minRule)
	rev := ResolveBounds(true, limit, 0, maxRule, minRule)

	assert.Equal(t, limit-fwd.Minimum, rev.Maximum)
	assert.Equal(t, limit-fwd.Maximum, rev.Minimum)
}

func TestLimitRulePreference(t *testing.T) {
	t.Parallel()

	assert.Equal(t, PreferPixels, LimitRule{Pixels: pixelPtr(10)}.preference())
	assert.Equal(t, PreferPercent, LimitRule{Percent: percentPtr(10)}.preference())
	assert.Equal(t, PreferPercent, LimitRule{}.preference())
	assert.Equal(t, PreferPercent,
		LimitRule{Pixels: pixelPtr(10), Prefer: PreferPercent}.preference())
}
