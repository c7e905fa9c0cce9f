package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/gridwatch/gridwatch/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true

	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is also the source for printed dashboard snapshots.
func (m *Model) RenderToString() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	contentHeight := m.height
	if m.chromeShown {
		contentHeight -= ui.HeaderHeight + ui.FooterHeight
	}
	if contentHeight < 1 {
		contentHeight = 1
	}

	var content string
	switch {
	case m.lockdown:
		content = m.renderLockdown(contentHeight)
	case m.modal.IsVisible():
		content = m.modal.View(m.width, contentHeight)
	default:
		content = m.renderDashboard()
	}

	if !m.chromeShown {
		return content
	}

	m.header.SetUptime(m.sim.Uptime(m.now()))
	m.header.SetViewMode(m.modes.ActiveProfile().DisplayName)
	m.header.SetScanning(m.sim.Scanning())
	m.header.SetScanFrame(scanFrames[m.scanFrame])
	m.footer.SetContext(m.layout.EditMode(), m.modal.IsVisible(), m.lockdown)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		content,
		m.footer.View(),
	)
}

// renderDashboard renders the widget columns with the edit banner and
// toast stacked around them.
func (m *Model) renderDashboard() string {
	data := m.widgetData()
	state := m.layout.State()

	colWidth := m.width / len(state.Columns)
	if colWidth < ui.MinColumnWidth {
		colWidth = ui.MinColumnWidth
	}

	columns := make([]string, 0, len(state.Columns))
	for colIdx, col := range state.Columns {
		var cells []string
		for rowIdx, w := range col {
			if !m.widgetVisible(w.Type) {
				continue
			}
			selected := m.layout.EditMode() && colIdx == m.selCol && rowIdx == m.selRow
			cells = append(cells, ui.RenderWidget(w, data, colWidth-ui.BorderSize, selected))
		}
		columns = append(columns, lipgloss.JoinVertical(lipgloss.Left, cells...))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	var rows []string
	if m.layout.EditMode() {
		banner := " EDIT MODE  ↑/↓/←/→ select  m move  a add  x remove  s resize  r reset "
		if m.moving {
			banner = " EDIT MODE  moving widget: ←/→ to relocate, m to place "
		}
		rows = append(rows, ui.EditBannerStyle.Width(m.width).Render(banner))
	}
	rows = append(rows, body)
	if m.toast.Active(m.now()) {
		rows = append(rows, lipgloss.PlaceHorizontal(
			m.width, lipgloss.Right, m.toast.View(m.now()),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderLockdown renders the full-screen lockdown overlay
func (m *Model) renderLockdown(height int) string {
	box := ui.LockdownStyle.Render(
		"EMERGENCY LOCKDOWN ACTIVE\n\nAll input disabled\nAutomatic release in progress",
	)
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, box)
}

// plainView renders the dashboard stripped of styling for file output
func (m *Model) plainView() string {
	return ansi.Strip(m.RenderToString())
}

func formatPercent(v int) string {
	return fmt.Sprintf("%d%%", v)
}

func formatCount(v int) string {
	return fmt.Sprintf("%d", v)
}
