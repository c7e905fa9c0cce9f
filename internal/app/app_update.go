package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/gridwatch/gridwatch/internal/keys"
	"github.com/gridwatch/gridwatch/internal/layout"
	"github.com/gridwatch/gridwatch/internal/logger"
	"github.com/gridwatch/gridwatch/internal/notification"
	"github.com/gridwatch/gridwatch/internal/shortcut"
	"github.com/gridwatch/gridwatch/internal/simdata"
	"github.com/gridwatch/gridwatch/internal/ui"
)

// newAlertEvery is the tick cadence for injecting fresh simulated alerts
const newAlertEvery = 3

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.SetWidth(msg.Width)
		m.footer.SetWidth(msg.Width)
		return m, nil

	case TickMsg:
		// Ticks from a replaced refresh schedule are stale; drop them
		if msg.Gen != m.tickGen {
			return m, nil
		}
		m.tickCount++
		m.sim.UpdateMetrics()
		if m.tickCount%newAlertEvery == 0 {
			alert := m.sim.NextAlert()
			if alert.Severity == simdata.SeverityCritical {
				m.notify(func() error {
					return notification.CriticalAlert(alert.Title)
				})
			}
		}
		return m, m.scheduleTick()

	case ScanFrameMsg:
		if !m.sim.Scanning() {
			return m, nil
		}
		m.scanFrame = (m.scanFrame + 1) % len(scanFrames)
		return m, m.scheduleScanFrame()

	case ScanCompleteMsg:
		m.sim.CompleteScan()
		m.scanFrame = 0
		m.toast.Show("Network scan completed", ui.ToastModeDuration, m.now())
		return m, nil

	case LockdownEndMsg:
		m.lockdown = false
		m.toast.Show("Lockdown lifted", ui.ToastModeDuration, m.now())
		return m, nil

	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes a keypress through the input layers in precedence
// order: quit, lockdown, modal, edit mode, local keys, then the
// shortcut dispatcher.
func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()

	if key == keys.CtrlC {
		m.quitting = true
		return tea.Quit
	}

	// The lockdown overlay swallows all input until its timer lifts it
	if m.lockdown {
		logger.Debug("App: key %q ignored during lockdown", key)
		return nil
	}

	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	if m.layout.EditMode() {
		if cmd, handled := m.handleEditKey(key); handled {
			return cmd
		}
	}

	switch key {
	case "q":
		m.quitting = true
		return tea.Quit
	case "b":
		m.sim.BlockThreats()
		m.toast.Show("Inbound threats blocked", ui.ToastActionDuration, m.now())
		return nil
	case "t":
		m.modal.Show(ui.NewThemeFormState(ui.CurrentThemeName()))
		return nil
	case "k":
		m.modal.Show(ui.NewRemapState(m.remapOptions()))
		return nil
	case "n":
		return m.toggleNotifications()
	}

	chord := shortcut.Normalize(msg)
	if _, cmd, ok := m.dispatcher.Execute(chord); ok {
		return cmd
	}
	return nil
}

// handleEditKey processes edit-mode keys. Unhandled keys fall through to
// the dispatcher so F6 and Escape still exit edit mode.
func (m *Model) handleEditKey(key string) (tea.Cmd, bool) {
	switch key {
	case keys.Up:
		m.selRow--
		m.clampCursor()
		return nil, true
	case keys.Down:
		m.selRow++
		m.clampCursor()
		return nil, true
	case keys.Left:
		return m.moveCursor(-1), true
	case keys.Right:
		return m.moveCursor(1), true
	case "m":
		if _, ok := m.selectedWidget(); !ok {
			return nil, true
		}
		m.moving = !m.moving
		if m.moving {
			m.toast.Show("Move: ←/→ to relocate, m to place", ui.ToastActionDuration, m.now())
		}
		return nil, true
	case "a":
		m.modal.Show(ui.NewPaletteState(m.paletteOptions()))
		return nil, true
	case "x":
		w, ok := m.selectedWidget()
		if !ok {
			return nil, true
		}
		m.pendingRemoveID = w.ID
		m.modal.Show(ui.NewConfirmRemoveWidgetState(ui.WidgetTitle(w.Type)))
		return nil, true
	case "s":
		w, ok := m.selectedWidget()
		if !ok {
			return nil, true
		}
		if err := m.layout.ToggleWidgetSize(w.ID); err != nil {
			logger.Warn("App: resize failed: %v", err)
		}
		return nil, true
	case "r":
		m.modal.Show(ui.NewConfirmResetLayoutState())
		return nil, true
	}
	return nil, false
}

// moveCursor shifts the edit cursor between columns, relocating the
// selected widget instead when move mode is armed.
func (m *Model) moveCursor(delta int) tea.Cmd {
	target := m.selCol + delta
	if target < 0 || target >= len(m.layout.State().Columns) {
		return nil
	}
	if m.moving {
		w, ok := m.selectedWidget()
		if !ok {
			m.moving = false
			return nil
		}
		if err := m.layout.MoveWidget(w.ID, target); err != nil {
			logger.Warn("App: move failed: %v", err)
			return nil
		}
		m.selCol = target
		if col, _, ok := m.layout.Find(w.ID); ok {
			m.selCol = col
		}
		m.clampCursor()
		return nil
	}
	m.selCol = target
	m.clampCursor()
	return nil
}

// remapOptions lists every rebindable action for the customization modal
func (m *Model) remapOptions() []ui.ActionOption {
	opts := make([]ui.ActionOption, 0, len(shortcut.Defaults()))
	for _, b := range shortcut.Defaults() {
		opts = append(opts, ui.ActionOption{
			Label: b.Description,
			Value: string(b.Action),
		})
	}
	return opts
}

// paletteOptions lists the widget types offered by the add-widget palette
func (m *Model) paletteOptions() []ui.ActionOption {
	opts := make([]ui.ActionOption, 0, len(layout.PaletteTypes))
	for _, t := range layout.PaletteTypes {
		opts = append(opts, ui.ActionOption{
			Label: ui.WidgetTitle(t),
			Value: string(t),
		})
	}
	return opts
}

// handleModalKey processes a keypress while a modal is open. Enter and
// Escape carry modal-specific semantics; everything else is delegated to
// the modal state.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()

	switch state := m.modal.State.(type) {
	case *ui.ConfirmState:
		switch key {
		case keys.Enter:
			return m.resolveConfirm(state)
		case keys.Escape:
			m.pendingRemoveID = ""
			m.modal.Hide()
			return nil
		}

	case *ui.HelpState:
		if key == keys.Escape && !state.Filtering() {
			m.modal.Hide()
			return nil
		}

	case *ui.MetricsDetailState:
		switch key {
		case keys.Escape, keys.Enter, "q":
			m.modal.Hide()
			return nil
		}

	case *ui.ThemeFormState:
		switch key {
		case keys.Enter:
			name := state.Selected()
			ui.SetTheme(name)
			m.config.SetTheme(string(name))
			if err := m.config.Save(); err != nil {
				logger.Warn("App: saving theme failed: %v", err)
			}
			m.modal.Hide()
			m.toast.Show("Theme: "+ui.GetTheme(name).Name, ui.ToastActionDuration, m.now())
			return nil
		case keys.Escape:
			m.modal.Hide()
			return nil
		}

	case *ui.PaletteState:
		switch key {
		case keys.Enter:
			t := layout.WidgetType(state.Selected())
			if _, err := m.layout.AddWidget(m.selCol, t); err != nil {
				m.modal.SetError(err.Error())
				return nil
			}
			m.modal.Hide()
			m.clampCursor()
			m.toast.Show("Added "+ui.WidgetTitle(t), ui.ToastActionDuration, m.now())
			return nil
		case keys.Escape:
			m.modal.Hide()
			return nil
		}

	case *ui.RemapState:
		return m.handleRemapKey(state, msg)
	}

	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)
	return cmd
}

// resolveConfirm applies an accepted confirmation and closes the modal
func (m *Model) resolveConfirm(state *ui.ConfirmState) tea.Cmd {
	accepted := state.Accepted()
	m.modal.Hide()
	if !accepted {
		m.pendingRemoveID = ""
		return nil
	}

	switch state.Kind {
	case ui.ConfirmLockdown:
		return m.engageLockdown()

	case ui.ConfirmResetLayout:
		if err := m.layout.ResetLayout(); err != nil {
			logger.Error("App: layout reset failed: %v", err)
			m.toast.Show("Reset failed", ui.ToastActionDuration, m.now())
			return nil
		}
		m.selCol, m.selRow = 0, 0
		m.toast.Show("Layout reset to defaults", ui.ToastActionDuration, m.now())

	case ui.ConfirmRemoveWidget:
		id := m.pendingRemoveID
		m.pendingRemoveID = ""
		if id == "" {
			return nil
		}
		if err := m.layout.RemoveWidget(id); err != nil {
			logger.Warn("App: remove failed: %v", err)
			m.toast.Show("Remove failed", ui.ToastActionDuration, m.now())
			return nil
		}
		m.clampCursor()
		m.toast.Show("Widget removed", ui.ToastActionDuration, m.now())
	}
	return nil
}

// handleRemapKey drives the two-phase shortcut customization modal
func (m *Model) handleRemapKey(state *ui.RemapState, msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()

	if state.Capturing {
		if key == keys.Escape {
			m.modal.Hide()
			return nil
		}
		chord := shortcut.Normalize(msg)
		if chord == "" {
			return nil
		}
		action := shortcut.Action(state.Action())
		if err := m.dispatcher.Bind(chord, action, m.actionDescription(action)); err != nil {
			m.modal.SetError(err.Error())
			return nil
		}
		m.modal.Hide()
		m.footer.SetBindings(m.footerHints())
		m.toast.Show("Shortcut bound: "+chord, ui.ToastActionDuration, m.now())
		return nil
	}

	switch key {
	case keys.Enter:
		state.BeginCapture()
		return nil
	case keys.Escape:
		m.modal.Hide()
		return nil
	}

	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)
	return cmd
}

// actionDescription returns the default description for an action
func (m *Model) actionDescription(action shortcut.Action) string {
	for _, b := range shortcut.Defaults() {
		if b.Action == action {
			return b.Description
		}
	}
	return string(action)
}
