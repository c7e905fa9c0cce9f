package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/gridwatch/gridwatch/internal/clipboard"
	"github.com/gridwatch/gridwatch/internal/export"
	"github.com/gridwatch/gridwatch/internal/logger"
	"github.com/gridwatch/gridwatch/internal/notification"
	"github.com/gridwatch/gridwatch/internal/shortcut"
	"github.com/gridwatch/gridwatch/internal/simdata"
	"github.com/gridwatch/gridwatch/internal/ui"
)

// Category groups shortcuts in the help modal
type Category string

const (
	CategoryGeneral   Category = "General"
	CategoryDashboard Category = "Dashboard"
	CategoryData      Category = "Data & Reports"
	CategoryEmergency Category = "Emergency"
)

// categoryOrder defines display order in help
var categoryOrder = []Category{
	CategoryGeneral,
	CategoryDashboard,
	CategoryData,
	CategoryEmergency,
}

// actionCategories places each action in its help section
var actionCategories = map[shortcut.Action]Category{
	shortcut.ActionShowHelp:          CategoryGeneral,
	shortcut.ActionToggleTheme:       CategoryGeneral,
	shortcut.ActionToggleAudio:       CategoryGeneral,
	shortcut.ActionToggleFullscreen:  CategoryGeneral,
	shortcut.ActionCancel:            CategoryGeneral,
	shortcut.ActionToggleViewMode:    CategoryDashboard,
	shortcut.ActionToggleEditMode:    CategoryDashboard,
	shortcut.ActionQuickSave:         CategoryDashboard,
	shortcut.ActionShowMetrics:       CategoryDashboard,
	shortcut.ActionScanNetwork:       CategoryData,
	shortcut.ActionRefreshData:       CategoryData,
	shortcut.ActionSaveReport:        CategoryData,
	shortcut.ActionPrintDashboard:    CategoryData,
	shortcut.ActionExportData:        CategoryData,
	shortcut.ActionEmergencyLockdown: CategoryEmergency,
}

// buildHandlers wires every dispatchable action to its behavior. The
// handlers close over the model, so they always see current state.
func (m *Model) buildHandlers() map[shortcut.Action]shortcut.Handler {
	return map[shortcut.Action]shortcut.Handler{
		shortcut.ActionShowHelp:          m.handleShowHelp,
		shortcut.ActionScanNetwork:       m.handleScanNetwork,
		shortcut.ActionToggleTheme:       m.handleToggleTheme,
		shortcut.ActionToggleViewMode:    m.handleToggleViewMode,
		shortcut.ActionRefreshData:       m.handleRefreshData,
		shortcut.ActionToggleEditMode:    m.handleToggleEditMode,
		shortcut.ActionToggleAudio:       m.handleToggleAudio,
		shortcut.ActionQuickSave:         m.handleQuickSave,
		shortcut.ActionShowMetrics:       m.handleShowMetrics,
		shortcut.ActionToggleFullscreen:  m.handleToggleFullscreen,
		shortcut.ActionEmergencyLockdown: m.handleEmergencyLockdown,
		shortcut.ActionCancel:            m.handleCancel,
		shortcut.ActionSaveReport:        m.handleSaveReport,
		shortcut.ActionPrintDashboard:    m.handlePrintDashboard,
		shortcut.ActionExportData:        m.handleExportData,
	}
}

// helpSections builds the help modal content from the live bindings, so
// customized chords show their remapped keys.
func (m *Model) helpSections() []ui.HelpSection {
	grouped := make(map[Category][]ui.HelpShortcut)
	for _, b := range m.dispatcher.Bindings() {
		cat, ok := actionCategories[b.Action]
		if !ok {
			cat = CategoryGeneral
		}
		key := b.Chord
		if b.Custom {
			key += " *"
		}
		grouped[cat] = append(grouped[cat], ui.HelpShortcut{
			Key:  key,
			Desc: b.Description,
		})
	}

	sections := make([]ui.HelpSection, 0, len(categoryOrder))
	for _, cat := range categoryOrder {
		if len(grouped[cat]) == 0 {
			continue
		}
		sections = append(sections, ui.HelpSection{
			Title:     string(cat),
			Shortcuts: grouped[cat],
		})
	}
	return sections
}

// footerHints builds the footer's keybinding hints from the live
// bindings, so a remapped action advertises its custom chord.
func (m *Model) footerHints() []ui.KeyBinding {
	chords := make(map[shortcut.Action]string)
	for _, b := range m.dispatcher.Bindings() {
		if _, seen := chords[b.Action]; !seen || b.Custom {
			chords[b.Action] = b.Chord
		}
	}

	hints := []struct {
		action shortcut.Action
		desc   string
	}{
		{shortcut.ActionShowHelp, "help"},
		{shortcut.ActionScanNetwork, "scan"},
		{shortcut.ActionToggleTheme, "theme"},
		{shortcut.ActionToggleViewMode, "view mode"},
		{shortcut.ActionToggleEditMode, "edit layout"},
		{shortcut.ActionSaveReport, "report"},
	}

	bindings := make([]ui.KeyBinding, 0, len(hints)+1)
	for _, h := range hints {
		chord, ok := chords[h.action]
		if !ok {
			continue
		}
		bindings = append(bindings, ui.KeyBinding{Key: chord, Desc: h.desc})
	}
	return append(bindings, ui.KeyBinding{Key: "q", Desc: "quit"})
}

func (m *Model) handleShowHelp() tea.Cmd {
	m.modal.Show(ui.NewHelpState(m.helpSections()))
	return nil
}

func (m *Model) handleScanNetwork() tea.Cmd {
	if !m.sim.BeginScan() {
		m.toast.Show("Scan already in progress", ui.ToastActionDuration, m.now())
		return nil
	}
	m.toast.Show("Network scan started", ui.ToastActionDuration, m.now())
	return tea.Batch(
		tea.Tick(simdata.ScanDuration, func(time.Time) tea.Msg {
			return ScanCompleteMsg{}
		}),
		m.scheduleScanFrame(),
	)
}

func (m *Model) handleToggleTheme() tea.Cmd {
	next := ui.NextThemeName(ui.CurrentThemeName())
	ui.SetTheme(next)
	m.config.SetTheme(string(next))
	if err := m.config.Save(); err != nil {
		logger.Warn("App: saving theme failed: %v", err)
	}
	m.toast.Show("Theme: "+ui.GetTheme(next).Name, ui.ToastActionDuration, m.now())
	return nil
}

func (m *Model) handleToggleViewMode() tea.Cmd {
	m.modes.SwitchMode(m.modes.NextMode())
	// The profile switch replaced the refresh cadence; start it
	return m.scheduleTick()
}

func (m *Model) handleRefreshData() tea.Cmd {
	m.sim.UpdateMetrics()
	m.toast.Show("Data refreshed", ui.ToastActionDuration, m.now())
	return nil
}

func (m *Model) handleToggleEditMode() tea.Cmd {
	editing := m.layout.ToggleEditMode()
	m.selCol, m.selRow = 0, 0
	m.moving = false
	if editing {
		m.toast.Show("Edit mode: rearrange widgets", ui.ToastModeDuration, m.now())
	} else {
		m.toast.Show("Edit mode off", ui.ToastActionDuration, m.now())
	}
	return nil
}

func (m *Model) handleToggleAudio() tea.Cmd {
	m.audio = !m.audio
	m.config.SetAudioEnabled(m.audio)
	if err := m.config.Save(); err != nil {
		logger.Warn("App: saving audio setting failed: %v", err)
	}
	if m.audio {
		m.toast.Show("Audio alerts on", ui.ToastActionDuration, m.now())
	} else {
		m.toast.Show("Audio alerts off", ui.ToastActionDuration, m.now())
	}
	return nil
}

// toggleNotifications flips the desktop notification flag. Reached via
// the local "n" key rather than a dispatcher action, like the other
// settings keys.
func (m *Model) toggleNotifications() tea.Cmd {
	enabled := !m.config.GetNotificationsEnabled()
	m.config.SetNotificationsEnabled(enabled)
	if err := m.config.Save(); err != nil {
		logger.Warn("App: saving notification setting failed: %v", err)
	}
	if enabled {
		m.toast.Show("Desktop notifications on", ui.ToastActionDuration, m.now())
	} else {
		m.toast.Show("Desktop notifications off", ui.ToastActionDuration, m.now())
	}
	return nil
}

func (m *Model) handleQuickSave() tea.Cmd {
	if err := m.layout.SaveLayout(); err != nil {
		logger.Error("App: quick save failed: %v", err)
		m.toast.Show("Save failed", ui.ToastActionDuration, m.now())
		return nil
	}
	m.toast.Show("Layout saved", ui.ToastActionDuration, m.now())
	return nil
}

func (m *Model) handleShowMetrics() tea.Cmd {
	metrics := m.sim.Metrics()
	rows := []ui.HelpShortcut{
		{Key: "Security level", Desc: formatPercent(metrics.SecurityLevel)},
		{Key: "Threats blocked", Desc: formatCount(metrics.ThreatsBlocked)},
		{Key: "Critical alerts", Desc: formatCount(metrics.CriticalAlerts)},
		{Key: "Active analysts", Desc: formatCount(metrics.ActiveUsers)},
		{Key: "Defenses", Desc: metrics.DefensesActive},
		{Key: "View mode", Desc: m.modes.ActiveProfile().DisplayName},
		{Key: "Theme", Desc: ui.CurrentTheme().Name},
		{Key: "Version", Desc: m.version},
	}
	m.modal.Show(ui.NewMetricsDetailState(rows, m.sim.Uptime(m.now())))
	return nil
}

func (m *Model) handleToggleFullscreen() tea.Cmd {
	m.chromeShown = !m.chromeShown
	if m.chromeShown {
		m.toast.Show("Fullscreen off", ui.ToastActionDuration, m.now())
	} else {
		m.toast.Show("Fullscreen: press F10 or Esc to exit", ui.ToastActionDuration, m.now())
	}
	return nil
}

func (m *Model) handleEmergencyLockdown() tea.Cmd {
	m.modal.Show(ui.NewConfirmLockdownState())
	return nil
}

// handleCancel unwinds the topmost transient state. Modals are handled
// before dispatch, so by the time this runs only edit mode, fullscreen,
// and the toast remain.
func (m *Model) handleCancel() tea.Cmd {
	switch {
	case m.layout.EditMode():
		m.layout.ToggleEditMode()
		m.moving = false
		m.toast.Show("Edit mode off", ui.ToastActionDuration, m.now())
	case !m.chromeShown:
		m.chromeShown = true
	default:
		m.toast.Clear()
	}
	return nil
}

func (m *Model) handleSaveReport() tea.Cmd {
	report := export.BuildReport(
		m.sim.Metrics(), m.sim.Alerts(),
		string(ui.CurrentThemeName()), m.modes.Active(), m.now(),
	)
	name, payload, err := export.WriteReport(m.writeDir, report, m.now())
	if err != nil {
		logger.Error("App: report save failed: %v", err)
		m.toast.Show("Report save failed", ui.ToastActionDuration, m.now())
		return nil
	}
	if err := clipboard.WriteText(string(payload)); err != nil {
		logger.Warn("App: report copy to clipboard failed: %v", err)
	}
	m.toast.Show("Report saved: "+name, ui.ToastModeDuration, m.now())
	return nil
}

func (m *Model) handlePrintDashboard() tea.Cmd {
	name, err := export.WriteSnapshot(m.writeDir, m.plainView(), m.now())
	if err != nil {
		logger.Error("App: dashboard print failed: %v", err)
		m.toast.Show("Print failed", ui.ToastActionDuration, m.now())
		return nil
	}
	m.toast.Show("Dashboard printed: "+name, ui.ToastModeDuration, m.now())
	return nil
}

func (m *Model) handleExportData() tea.Cmd {
	name, err := export.WriteData(m.writeDir, m.sim.Metrics(), m.sim.Alerts(), m.now())
	if err != nil {
		logger.Error("App: data export failed: %v", err)
		m.toast.Show("Export failed", ui.ToastActionDuration, m.now())
		return nil
	}
	m.toast.Show("Data exported: "+name, ui.ToastModeDuration, m.now())
	return nil
}

// notify emits a desktop notification when notifications are enabled
func (m *Model) notify(fn func() error) {
	if !m.config.GetNotificationsEnabled() {
		return
	}
	if err := fn(); err != nil {
		logger.Debug("App: notification failed: %v", err)
	}
}

// engageLockdown activates the emergency lockdown after confirmation
func (m *Model) engageLockdown() tea.Cmd {
	m.lockdown = true
	m.sim.RaiseAlert(
		simdata.SeverityCritical,
		"EMERGENCY LOCKDOWN ACTIVATED",
		"OPERATOR", "ALL SYSTEMS", "Command Center",
	)
	m.notify(notification.LockdownEngaged)
	logger.Warn("App: emergency lockdown engaged for %s", LockdownDuration)
	return tea.Tick(LockdownDuration, func(time.Time) tea.Msg {
		return LockdownEndMsg{}
	})
}
