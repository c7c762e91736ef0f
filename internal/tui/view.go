package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ensigniasec/gimbal/internal/geometry"
)

//nolint:gochecknoglobals // Shared immutable styles.
var (
	paneStyle = lipgloss.NewStyle().
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(lipgloss.Color("245"))

	handleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	activeHandleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("69")).
				Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Background(lipgloss.Color("236"))
)

func (m Model) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}
	if m.width == 0 || m.height == 0 {
		return "measuring..."
	}

	content := m.renderPanes()
	status := m.renderStatusBar()
	return lipgloss.JoinVertical(lipgloss.Left, content, status)
}

// renderPanes lays the two regions and the handle out along the active axis.
// On reversed axes the before region sits at the trailing edge.
func (m Model) renderPanes() string {
	before, after := m.before(), m.after()
	contentHeight := m.height - statusBarHeight

	beforeLabel := "before: " + geometry.FormatPixels(before)
	afterLabel := "after: " + geometry.FormatPixels(after)

	if m.axis.Vertical {
		beforePane := paneStyle.Width(m.width).Height(before).Render(beforeLabel)
		afterPane := paneStyle.Width(m.width).Height(after).Render(afterLabel)
		handle := m.renderHandle()
		if m.axis.Reverse {
			return lipgloss.JoinVertical(lipgloss.Left, afterPane, handle, beforePane)
		}
		return lipgloss.JoinVertical(lipgloss.Left, beforePane, handle, afterPane)
	}

	beforePane := paneStyle.Width(before).Height(contentHeight).Render(beforeLabel)
	afterPane := paneStyle.Width(after).Height(contentHeight).Render(afterLabel)
	handle := m.renderHandle()
	if m.axis.Reverse {
		return lipgloss.JoinHorizontal(lipgloss.Top, afterPane, handle, beforePane)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, beforePane, handle, afterPane)
}

// renderHandle draws the divider, highlighted while the gimbal is active.
func (m Model) renderHandle() string {
	style := handleStyle
	if m.engine.Active() {
		style = activeHandleStyle
	}
	if m.axis.Vertical {
		return style.Render(strings.Repeat("─", max(1, m.width)))
	}
	contentHeight := max(1, m.height-statusBarHeight)
	cells := make([]string, contentHeight)
	for i := range cells {
		cells[i] = "│"
	}
	return style.Render(strings.Join(cells, "\n"))
}

// renderStatusBar shows the current split, activation state and the cursor
// override. A terminal cannot restyle the pointer, so the override string is
// surfaced here instead of applied.
func (m Model) renderStatusBar() string {
	state := "idle"
	if m.engine.Active() {
		state = "active"
	}
	left := fmt.Sprintf(" %s │ %s / %s │ %s",
		m.axis.Orientation,
		geometry.FormatPixels(m.before()),
		geometry.FormatPixels(m.after()),
		state,
	)
	if m.split.cursor != "" {
		left += " │ cursor: " + m.split.cursor
	}

	right := "h: help "
	if m.helpVisible {
		right = "drag the divider · double-click or r: reset · q: quit "
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return statusStyle.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}
