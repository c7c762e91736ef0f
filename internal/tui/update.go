package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ensigniasec/gimbal/internal/gimbal"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { // nolint:ireturn
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = x.Width, x.Height
		m.measure()
		return m, m.sched.drain()

	case tea.KeyMsg:
		return m.handleKey(x)

	case tea.MouseMsg:
		m.handleMouse(x)
		return m, m.sched.drain()

	case timerFiredMsg:
		// Engine callbacks may schedule further timers while firing
		// (e.g. the cursor-restore grace period), so drain again.
		m.sched.fire(x.id)
		return m, m.sched.drain()
	}

	return m, nil
}

// handleKey processes key bindings and returns updated model and command.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) { // nolint:ireturn
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.helpVisible = !m.helpVisible
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		// Keyboard alias for double-clicking the handle.
		m.engine.Pointer(gimbal.DoubleClick{})
		return m, m.sched.drain()
	}

	return m, nil
}

// measure feeds the current content size along the active axis into the
// engine. The handle's own thickness is not part of the resizable content,
// and the panes start at the window origin so the leading offset is zero.
func (m *Model) measure() {
	size := m.width
	if m.axis.Vertical {
		size = m.height - statusBarHeight
	}
	m.limit = max(0, size-handleThickness)
	m.engine.SetMeasurement(m.limit, 0)
}

// handleMouse converts a raw terminal mouse event into the engine's pointer
// vocabulary. The host owns target identification: a left press lands as
// HandleDown when it hits the handle cell and GlobalDown otherwise, and two
// quick presses on the handle synthesize a double-click.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	pos := m.enginePos(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if !m.onHandle(msg.X, msg.Y) {
			m.engine.Pointer(gimbal.GlobalDown{Pos: pos})
			return
		}
		now := m.now()
		if now.Sub(m.lastPress) < doubleClickWindow {
			m.lastPress = time.Time{}
			m.engine.Pointer(gimbal.DoubleClick{})
			return
		}
		m.lastPress = now
		m.engine.Pointer(gimbal.HandleDown{Pos: pos})

	case tea.MouseActionMotion:
		m.engine.Pointer(gimbal.Move{Pos: pos})

	case tea.MouseActionRelease:
		m.engine.Pointer(gimbal.GlobalUp{Pos: pos})
	}
}

// enginePos maps a cell coordinate to the engine's position units. Reversed
// axes measure from the trailing edge, so the coordinate is complemented.
func (m Model) enginePos(x, y int) int {
	coord := x
	if m.axis.Vertical {
		coord = y
	}
	if m.axis.Reverse {
		return m.limit - coord
	}
	return coord
}

// handleCell is the cell index the handle currently occupies along the
// active axis.
func (m Model) handleCell() int {
	if m.axis.Reverse {
		return m.after()
	}
	return m.before()
}

// onHandle reports whether a cell coordinate hits the handle.
func (m Model) onHandle(x, y int) bool {
	coord, cross := x, y
	if m.axis.Vertical {
		coord, cross = y, x
	}
	if coord != m.handleCell() {
		return false
	}
	if m.axis.Vertical {
		return cross >= 0 && cross < m.width
	}
	// The status bar row is not part of the handle.
	return cross >= 0 && cross < m.height-statusBarHeight
}
