package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ensigniasec/gimbal/internal/gimbal"
)

func TestNewOrExistingStore_CreatesProfile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "profile.yaml")

	s, err := NewOrExistingStore(path)
	require.NoError(t, err)
	require.NotNil(t, s)

	// The default profile is written to disk immediately.
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected profile file to exist: %v", err)
	}
	assert.Equal(t, "horizontal", s.Profile.Orientation)
	require.NotNil(t, s.Profile.Default)
	require.NotNil(t, s.Profile.Default.Percent)
	assert.InDelta(t, 50.0, *s.Profile.Default.Percent, 0)
}

func TestStore_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "profile.yaml")

	s, err := NewOrExistingStore(path)
	require.NoError(t, err)

	px := 40
	pct := 80.0
	s.Profile.Orientation = "vertical-reverse"
	s.Profile.MouseTimeoutMS = 250
	s.Profile.Minimum = &Rule{Pixels: &px}
	s.Profile.Maximum = &Rule{Percent: &pct, Prefer: "percent"}
	require.NoError(t, s.Save())

	s2, err := NewStore(path)
	require.NoError(t, err)
	assert.Equal(t, "vertical-reverse", s2.Profile.Orientation)
	assert.Equal(t, 250, s2.Profile.MouseTimeoutMS)
	require.NotNil(t, s2.Profile.Minimum.Pixels)
	assert.Equal(t, 40, *s2.Profile.Minimum.Pixels)
	assert.Equal(t, "percent", s2.Profile.Maximum.Prefer)

	axis := s2.Profile.Axis()
	assert.True(t, axis.Vertical)
	assert.True(t, axis.Reverse)
	assert.Equal(t, 250*time.Millisecond, s2.Profile.MouseTimeout())
}

func TestStore_SelfHealsInvalidValues(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "profile.yaml")
	content := `orientation: diagonal
mouse_timeout_ms: -5
minimum:
  percent: 130
maximum:
  percent: 80
  prefer: biggest
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	s, err := NewStore(path)
	require.NoError(t, err)

	assert.Equal(t, "horizontal", s.Profile.Orientation)
	assert.Equal(t, 100, s.Profile.MouseTimeoutMS)
	assert.Nil(t, s.Profile.Minimum.Percent)
	assert.Empty(t, s.Profile.Maximum.Prefer)

	// Healed values were persisted back to disk.
	s2, err := NewStore(path)
	require.NoError(t, err)
	assert.Equal(t, "horizontal", s2.Profile.Orientation)
}

func TestProfile_Conversions(t *testing.T) {
	t.Parallel()

	px := 50
	pct := 80.0
	p := Profile{
		Orientation: "horizontal",
		Minimum:     &Rule{Pixels: &px, Prefer: "pixels"},
		Maximum:     &Rule{Percent: &pct},
	}

	minRule := p.Minimum.LimitRule()
	assert.Equal(t, gimbal.PreferPixels, minRule.Prefer)
	require.NotNil(t, minRule.Pixels)
	assert.Equal(t, 50, *minRule.Pixels)

	maxRule := p.Maximum.LimitRule()
	assert.Equal(t, gimbal.PreferUnset, maxRule.Prefer)

	// Nil rules convert to the unconstrained zero value, and a missing
	// default disables the reset.
	var nilRule *Rule
	assert.Equal(t, gimbal.LimitRule{}, nilRule.LimitRule())
	assert.Nil(t, p.DefaultRule())
}

func TestExpandTilde(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Tilde expansion not applicable on Windows")
	}

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := expandTilde("~/gimbal/profile.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "gimbal", "profile.yaml"), got)

	got, err = expandTilde("/absolute/path")
	require.NoError(t, err)
	assert.Equal(t, "/absolute/path", got)

	got, err = expandTilde("")
	require.NoError(t, err)
	assert.Empty(t, got)
}
