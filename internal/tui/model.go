package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ensigniasec/gimbal/internal/config"
	"github.com/ensigniasec/gimbal/internal/geometry"
	"github.com/ensigniasec/gimbal/internal/gimbal"
)

// splitState is the mutable cell engine callbacks write into. Bubble Tea
// copies the model value on every Update, so emissions land in this shared
// cell instead of a stale model copy. All writes happen synchronously inside
// Update, on the program's single goroutine.
type splitState struct {
	before   int
	after    int
	resolved bool
	// cursor holds the override string while the gimbal is active. A
	// terminal cannot restyle the pointer, so the view surfaces it in the
	// status bar instead.
	cursor string
}

// Model is the root Bubble Tea model hosting one gimbal between two panes.
type Model struct {
	axis   gimbal.AxisConfig
	engine *gimbal.Engine
	sched  *hostScheduler
	split  *splitState

	width  int
	height int
	// limit is the measured content size along the active axis,
	// excluding the handle's own thickness.
	limit int

	// lastPress timestamps the previous press on the handle so two quick
	// presses synthesize a double-click.
	lastPress time.Time
	now       func() time.Time

	keys        keyMap
	helpVisible bool
	quitting    bool
}

// NewModel constructs a Model from a gimbal profile.
func NewModel(profile config.Profile) Model {
	axis := profile.Axis()
	sched := newHostScheduler()
	split := &splitState{}

	cursor := profile.Cursor
	if cursor == "" {
		if axis.Vertical {
			cursor = "row-resize"
		} else {
			cursor = "col-resize"
		}
	}

	engine := gimbal.New(gimbal.Options{
		Axis:         axis,
		Maximum:      profile.Maximum.LimitRule(),
		Minimum:      profile.Minimum.LimitRule(),
		Default:      profile.DefaultRule(),
		MouseTimeout: profile.MouseTimeout(),
		Cursor:       cursor,
		Scheduler:    sched,
		OnResize: func(ev gimbal.Event) {
			if b, err := geometry.ParsePixels(ev.Before); err == nil {
				split.before = b
			}
			if a, err := geometry.ParsePixels(ev.After); err == nil {
				split.after = a
			}
			split.resolved = true
		},
		OnCursor: func(c string) {
			split.cursor = c
		},
	})

	return Model{
		axis:   axis,
		engine: engine,
		sched:  sched,
		split:  split,
		now:    time.Now,
		keys:   newKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// before returns the current size of the leading region, falling back to an
// even split until the first emission and clamping to the measured limit
// after shrinking resizes.
func (m Model) before() int {
	if !m.split.resolved {
		return m.limit / 2
	}
	return geometry.Clamp(m.split.before, 0, m.limit)
}

// after is the complementary region size.
func (m Model) after() int {
	return m.limit - m.before()
}
