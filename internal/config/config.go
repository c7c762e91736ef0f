package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/ensigniasec/gimbal/internal/gimbal"
	"github.com/ensigniasec/gimbal/internal/validate"
)

// Rule mirrors gimbal.LimitRule in its on-disk form.
type Rule struct {
	Percent *float64 `yaml:"percent,omitempty" validate:"omitempty,gte=0,lte=100"`
	Pixels  *int     `yaml:"pixels,omitempty"`
	Prefer  string   `yaml:"prefer,omitempty" validate:"omitempty,oneof=percent pixels"`
}

// Profile represents the structure of the profile file.
type Profile struct {
	Orientation    string `yaml:"orientation,omitempty" validate:"omitempty,orientation"`
	MouseTimeoutMS int    `yaml:"mouse_timeout_ms,omitempty" validate:"gte=0"`
	Cursor         string `yaml:"cursor,omitempty"`
	Default        *Rule  `yaml:"default,omitempty"`
	Minimum        *Rule  `yaml:"minimum,omitempty"`
	Maximum        *Rule  `yaml:"maximum,omitempty"`
}

// Store handles the loading and saving of the profile file.
type Store struct {
	Path    string `validate:"required,filepath"`
	Profile Profile
}

// DefaultProfile is the profile used when no file exists yet.
func DefaultProfile() Profile {
	half := 50.0
	return Profile{
		Orientation:    gimbal.Horizontal.String(),
		MouseTimeoutMS: int(gimbal.DefaultMouseTimeout / time.Millisecond),
		Default:        &Rule{Percent: &half},
	}
}

// NewStore creates a new Store instance, loading the profile file when it
// exists.
func NewStore(path string) (*Store, error) {
	expandedPath, err := expandTilde(path)
	if err != nil {
		return nil, err
	}

	s := &Store{
		Path:    expandedPath,
		Profile: DefaultProfile(),
	}

	if err := s.Load(); err != nil {
		// If the file doesn't exist, we can ignore the error.
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return s, nil
}

// NewOrExistingStore returns existing profile storage if the file exists, or
// creates a new one otherwise. When creating, the default profile is written
// to disk immediately.
func NewOrExistingStore(path string) (*Store, error) {
	expandedPath, err := expandTilde(path)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(expandedPath); err == nil {
		return NewStore(path)
	} else if os.IsNotExist(err) {
		s, err := NewStore(path)
		if err != nil {
			return nil, err
		}
		if err := s.Save(); err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, err
}

func (s *Store) Load() error {
	logrus.Debug("Loading profile file from: ", s.Path)
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, &s.Profile); err != nil {
		return err
	}

	// Validate loaded data and self-heal when possible.
	if err := validate.Struct(s.Profile); err != nil {
		changed := false
		if s.Profile.Orientation != "" && validate.Var(s.Profile.Orientation, "orientation") != nil {
			logrus.Warn("Invalid orientation found in profile; resetting to horizontal.")
			s.Profile.Orientation = gimbal.Horizontal.String()
			changed = true
		}
		if s.Profile.MouseTimeoutMS < 0 {
			logrus.Warn("Negative mouse timeout found in profile; resetting to default.")
			s.Profile.MouseTimeoutMS = int(gimbal.DefaultMouseTimeout / time.Millisecond)
			changed = true
		}
		for _, r := range []*Rule{s.Profile.Default, s.Profile.Minimum, s.Profile.Maximum} {
			if r == nil {
				continue
			}
			if r.Percent != nil && (*r.Percent < 0 || *r.Percent > 100) {
				logrus.Warn("Out-of-range percent found in profile; clearing.")
				r.Percent = nil
				changed = true
			}
			if r.Prefer != "" && validate.Var(r.Prefer, "oneof=percent pixels") != nil {
				logrus.Warn("Invalid prefer value found in profile; clearing.")
				r.Prefer = ""
				changed = true
			}
		}
		if changed {
			if err := s.Save(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Save writes the profile to the file.
func (s *Store) Save() error {
	logrus.Debug("Saving profile file to: ", s.Path)
	// Ensure parent directory exists.
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(s.Profile)
	if err != nil {
		return err
	}

	return os.WriteFile(s.Path, data, 0o600)
}

// Axis derives the axis configuration from the profile, defaulting to a
// plain horizontal axis when unset.
func (p Profile) Axis() gimbal.AxisConfig {
	o := gimbal.Horizontal
	if p.Orientation != "" {
		if parsed, err := gimbal.ParseOrientation(p.Orientation); err == nil {
			o = parsed
		} else {
			logrus.Debugf("ignoring invalid orientation %q", p.Orientation)
		}
	}
	return gimbal.NewAxisConfig(o)
}

// MouseTimeout converts the stored millisecond value to a duration. Zero or
// unset falls back to the engine default.
func (p Profile) MouseTimeout() time.Duration {
	if p.MouseTimeoutMS <= 0 {
		return gimbal.DefaultMouseTimeout
	}
	return time.Duration(p.MouseTimeoutMS) * time.Millisecond
}

// LimitRule converts an on-disk rule to its engine form. A nil rule yields
// the unconstrained zero value.
func (r *Rule) LimitRule() gimbal.LimitRule {
	if r == nil {
		return gimbal.LimitRule{}
	}
	out := gimbal.LimitRule{Percent: r.Percent, Pixels: r.Pixels}
	switch r.Prefer {
	case "pixels":
		out.Prefer = gimbal.PreferPixels
	case "percent":
		out.Prefer = gimbal.PreferPercent
	}
	return out
}

// DefaultRule converts the double-click reset rule; nil disables the reset.
func (p Profile) DefaultRule() *gimbal.LimitRule {
	if p.Default == nil {
		return nil
	}
	r := p.Default.LimitRule()
	return &r
}

// expandTilde expands the tilde in a path to the user's home directory.
func expandTilde(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}
