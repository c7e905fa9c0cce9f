package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/gridwatch/gridwatch/internal/config"
	"github.com/gridwatch/gridwatch/internal/logger"
	"github.com/gridwatch/gridwatch/internal/shortcut"
	"github.com/gridwatch/gridwatch/internal/ui"
	"github.com/gridwatch/gridwatch/internal/viewmode"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()

	logger.Reset()
	if err := logger.Init(filepath.Join(t.TempDir(), "test.log")); err != nil {
		t.Fatalf("logger init: %v", err)
	}
	t.Cleanup(func() { logger.Close() })

	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	cfg.SetViewMode(viewmode.ModeOperator)

	m, err := New(cfg, "test")
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	m.writeDir = t.TempDir()
	m.now = func() time.Time {
		return time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	}
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

var fnKeyCodes = map[int]rune{
	1: tea.KeyF1, 2: tea.KeyF2, 3: tea.KeyF3, 4: tea.KeyF4,
	5: tea.KeyF5, 6: tea.KeyF6, 7: tea.KeyF7, 8: tea.KeyF8,
	9: tea.KeyF9, 10: tea.KeyF10, 11: tea.KeyF11,
}

func fnKey(n int) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: fnKeyCodes[n]}
}

func ctrlKey(c rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: c, Mod: tea.ModCtrl}
}

func letterKey(c rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: c, Text: string(c)}
}

func TestNewModelAppliesPersistedViewMode(t *testing.T) {
	logger.Reset()
	if err := logger.Init(filepath.Join(t.TempDir(), "test.log")); err != nil {
		t.Fatalf("logger init: %v", err)
	}
	defer logger.Close()

	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	cfg.SetViewMode(viewmode.ModeTechnical)

	m, err := New(cfg, "test")
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	if m.modes.Active() != viewmode.ModeTechnical {
		t.Errorf("active mode = %q, want %q", m.modes.Active(), viewmode.ModeTechnical)
	}
	if m.refresh != 500*time.Millisecond {
		t.Errorf("refresh = %v, want 500ms", m.refresh)
	}
	if !m.visibility.RawData {
		t.Error("technical mode should show raw data")
	}
}

func TestViewModeCycleReplacesRefreshSchedule(t *testing.T) {
	m := newTestModel(t)
	genBefore := m.tickGen

	m.handleKey(fnKey(4))

	if m.modes.Active() != viewmode.ModeExecutive {
		t.Errorf("active mode = %q, want executive", m.modes.Active())
	}
	if m.tickGen == genBefore {
		t.Error("refresh generation should advance on mode switch")
	}

	countBefore := m.tickCount
	m.Update(TickMsg{Gen: genBefore})
	if m.tickCount != countBefore {
		t.Error("stale tick should be dropped")
	}
	m.Update(TickMsg{Gen: m.tickGen})
	if m.tickCount != countBefore+1 {
		t.Error("current tick should be processed")
	}
}

func TestExecutiveModeHidesRawDataAndAlerts(t *testing.T) {
	m := newTestModel(t)
	m.modes.SwitchMode(viewmode.ModeExecutive)

	view := m.RenderToString()
	if strings.Contains(view, "RAW TELEMETRY") {
		t.Error("executive view should hide the raw telemetry widget")
	}
	if strings.Contains(view, "ALERT FEED") {
		t.Error("executive view should hide the alert feed widget")
	}
	if !strings.Contains(view, "SYSTEM METRICS") {
		t.Error("executive view should keep the metrics widget")
	}
}

func TestScanBusyGate(t *testing.T) {
	m := newTestModel(t)

	cmd := m.handleKey(fnKey(2))
	if cmd == nil {
		t.Fatal("scan start should schedule completion")
	}
	if !m.sim.Scanning() {
		t.Fatal("scan should be in progress")
	}

	m.handleKey(fnKey(2))
	if m.toast.Message() != "Scan already in progress" {
		t.Errorf("toast = %q, want busy message", m.toast.Message())
	}

	m.Update(ScanCompleteMsg{})
	if m.sim.Scanning() {
		t.Error("scan should be complete")
	}
	if m.toast.Message() != "Network scan completed" {
		t.Errorf("toast = %q, want completion message", m.toast.Message())
	}
}

func TestThemeCyclePersists(t *testing.T) {
	m := newTestModel(t)
	ui.SetTheme(ui.DefaultTheme)
	before := ui.CurrentThemeName()

	m.handleKey(fnKey(3))

	after := ui.CurrentThemeName()
	if after == before {
		t.Error("theme should advance")
	}
	if m.config.GetTheme() != string(after) {
		t.Errorf("persisted theme = %q, want %q", m.config.GetTheme(), after)
	}
}

func TestLockdownBlocksInputUntilRelease(t *testing.T) {
	m := newTestModel(t)

	m.handleKey(fnKey(11))
	if !m.modal.IsVisible() {
		t.Fatal("lockdown should require confirmation")
	}

	// Select "Engage" and confirm
	m.handleKey(tea.KeyPressMsg{Code: tea.KeyDown})
	m.handleKey(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !m.lockdown {
		t.Fatal("lockdown should be active after confirmation")
	}

	ui.SetTheme(ui.DefaultTheme)
	before := ui.CurrentThemeName()
	m.handleKey(fnKey(3))
	if ui.CurrentThemeName() != before {
		t.Error("input should be ignored during lockdown")
	}

	alerts := m.sim.Alerts()
	if len(alerts) == 0 || alerts[0].Title != "EMERGENCY LOCKDOWN ACTIVATED" {
		t.Error("lockdown should raise a critical alert")
	}

	m.Update(LockdownEndMsg{})
	if m.lockdown {
		t.Error("lockdown should lift on release message")
	}
}

func TestLockdownDeclinedLeavesInputLive(t *testing.T) {
	m := newTestModel(t)

	m.handleKey(fnKey(11))
	// Default selection is "Stand down"
	m.handleKey(tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.lockdown {
		t.Error("declining the confirmation should not engage lockdown")
	}
	if m.modal.IsVisible() {
		t.Error("modal should close after the decision")
	}
}

func TestEditModeAddAndRemoveWidget(t *testing.T) {
	m := newTestModel(t)

	m.handleKey(fnKey(6))
	if !m.layout.EditMode() {
		t.Fatal("F6 should enter edit mode")
	}

	before := len(m.layout.State().Columns[0])
	m.handleKey(letterKey('a'))
	if !m.modal.IsVisible() {
		t.Fatal("palette modal should open")
	}
	m.handleKey(tea.KeyPressMsg{Code: tea.KeyEnter})
	if got := len(m.layout.State().Columns[0]); got != before+1 {
		t.Errorf("column 0 length = %d, want %d", got, before+1)
	}

	m.selCol, m.selRow = 0, 0
	removed := m.layout.State().Columns[0][0].ID
	m.handleKey(letterKey('x'))
	if !m.modal.IsVisible() {
		t.Fatal("remove should require confirmation")
	}
	m.handleKey(tea.KeyPressMsg{Code: tea.KeyDown})
	m.handleKey(tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, _, ok := m.layout.Find(removed); ok {
		t.Error("widget should be removed after confirmation")
	}
}

func TestEditModeMoveWidget(t *testing.T) {
	m := newTestModel(t)
	m.handleKey(fnKey(6))

	id := m.layout.State().Columns[0][0].ID
	m.handleKey(letterKey('m'))
	if !m.moving {
		t.Fatal("m should arm move mode")
	}
	m.handleKey(tea.KeyPressMsg{Code: tea.KeyRight})

	col, _, ok := m.layout.Find(id)
	if !ok || col != 1 {
		t.Errorf("widget column = %d, want 1", col)
	}
	if m.selCol != 1 {
		t.Errorf("cursor should follow the moved widget, selCol = %d", m.selCol)
	}
}

func TestEscapeUnwindsEditModeThenFullscreen(t *testing.T) {
	m := newTestModel(t)

	m.handleKey(fnKey(6))
	m.handleKey(tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.layout.EditMode() {
		t.Error("escape should exit edit mode")
	}

	m.handleKey(fnKey(10))
	if m.chromeShown {
		t.Fatal("F10 should hide the chrome")
	}
	m.handleKey(tea.KeyPressMsg{Code: tea.KeyEscape})
	if !m.chromeShown {
		t.Error("escape should restore the chrome")
	}
}

func TestRemapCustomShortcut(t *testing.T) {
	m := newTestModel(t)

	m.handleKey(letterKey('k'))
	if !m.modal.IsVisible() {
		t.Fatal("remap modal should open")
	}

	m.handleKey(tea.KeyPressMsg{Code: tea.KeyEnter})
	state, ok := m.modal.State.(*ui.RemapState)
	if !ok || !state.Capturing {
		t.Fatal("enter should move the modal into capture phase")
	}

	m.handleKey(ctrlKey('r'))
	if m.modal.IsVisible() {
		t.Fatal("successful bind should close the modal")
	}

	b, found := m.dispatcher.Lookup("Ctrl+R")
	if !found || !b.Custom {
		t.Fatalf("Ctrl+R should resolve to a custom binding, got %+v", b)
	}
	if b.Action != shortcut.ActionShowHelp {
		t.Errorf("bound action = %q, want the first rebindable action", b.Action)
	}
}

func TestRemapShadowsBuiltinChord(t *testing.T) {
	m := newTestModel(t)

	m.handleKey(letterKey('k'))
	m.handleKey(tea.KeyPressMsg{Code: tea.KeyEnter})
	m.handleKey(fnKey(2)) // F2 normally starts a scan

	b, found := m.dispatcher.Lookup("F2")
	if !found || !b.Custom {
		t.Fatalf("F2 should resolve to the custom binding, got %+v", b)
	}
	if b.Action != shortcut.ActionShowHelp {
		t.Errorf("F2 action = %q, want the rebound action", b.Action)
	}

	m.handleKey(fnKey(2))
	if m.sim.Scanning() {
		t.Error("shadowed chord should not trigger the built-in action")
	}
}

func TestSaveReportWritesFileAndToasts(t *testing.T) {
	m := newTestModel(t)

	m.handleKey(ctrlKey('s'))

	entries, err := os.ReadDir(m.writeDir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	var found bool
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "gridwatch-report-") && strings.HasSuffix(e.Name(), ".json") {
			found = true
		}
	}
	if !found {
		t.Error("report file should be written")
	}
	if !strings.HasPrefix(m.toast.Message(), "Report saved: ") {
		t.Errorf("toast = %q, want report confirmation", m.toast.Message())
	}
}

func TestExportDataWritesFile(t *testing.T) {
	m := newTestModel(t)

	m.handleKey(ctrlKey('e'))

	entries, err := os.ReadDir(m.writeDir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	var found bool
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "gridwatch-export-") {
			found = true
		}
	}
	if !found {
		t.Error("export file should be written")
	}
}

func TestPrintDashboardWritesPlainSnapshot(t *testing.T) {
	m := newTestModel(t)

	m.handleKey(ctrlKey('p'))

	entries, err := os.ReadDir(m.writeDir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "gridwatch-dashboard-") {
			data, err := os.ReadFile(filepath.Join(m.writeDir, e.Name()))
			if err != nil {
				t.Fatalf("read snapshot: %v", err)
			}
			if strings.Contains(string(data), "\x1b[") {
				t.Error("snapshot should be stripped of escape sequences")
			}
			return
		}
	}
	t.Error("snapshot file should be written")
}

func TestHelpModalGroupsByCategory(t *testing.T) {
	m := newTestModel(t)

	m.handleKey(fnKey(1))
	state, ok := m.modal.State.(*ui.HelpState)
	if !ok {
		t.Fatal("F1 should open the help modal")
	}
	view := state.Render()
	for _, section := range []string{"General", "Dashboard", "Data & Reports", "Emergency"} {
		if !strings.Contains(view, section) {
			t.Errorf("help should contain section %q", section)
		}
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t)
	if cmd := m.handleKey(letterKey('q')); cmd == nil {
		t.Error("q should quit")
	}

	m = newTestModel(t)
	if cmd := m.handleKey(ctrlKey('c')); cmd == nil {
		t.Error("ctrl+c should quit")
	}
}

func TestTickInjectsAlerts(t *testing.T) {
	m := newTestModel(t)

	before := len(m.sim.Alerts())
	for i := 0; i < newAlertEvery; i++ {
		m.Update(TickMsg{Gen: m.tickGen})
	}
	if len(m.sim.Alerts()) <= before && before < 10 {
		t.Error("alert feed should grow after a full alert cadence")
	}
}

func TestNotificationsToggleGatesDesktopPath(t *testing.T) {
	m := newTestModel(t)

	if m.config.GetNotificationsEnabled() {
		t.Fatal("notifications should start disabled")
	}
	fired := false
	m.notify(func() error { fired = true; return nil })
	if fired {
		t.Fatal("notify should be a no-op while disabled")
	}

	m.handleKey(letterKey('n'))
	if !m.config.GetNotificationsEnabled() {
		t.Fatal("n should enable desktop notifications")
	}
	if got := m.toast.Message(); got != "Desktop notifications on" {
		t.Errorf("toast = %q", got)
	}
	m.notify(func() error { fired = true; return nil })
	if !fired {
		t.Error("notify should invoke the sender once enabled")
	}

	m.handleKey(letterKey('n'))
	if m.config.GetNotificationsEnabled() {
		t.Error("second press should disable notifications again")
	}
}

func TestViewModeToastCarriesDescription(t *testing.T) {
	m := newTestModel(t)

	m.handleKey(fnKey(4))
	want := "View mode: Executive (Simplified view with key KPIs)"
	if got := m.toast.Message(); got != want {
		t.Errorf("toast = %q, want %q", got, want)
	}
}

func TestFooterShowsRemappedChord(t *testing.T) {
	m := newTestModel(t)

	if !strings.Contains(m.plainView(), "F1: help") {
		t.Fatal("footer should hint the default help chord")
	}

	m.handleKey(letterKey('k'))
	m.handleKey(tea.KeyPressMsg{Code: tea.KeyEnter})
	m.handleKey(ctrlKey('j'))
	if m.modal.IsVisible() {
		t.Fatal("successful bind should close the modal")
	}

	view := m.plainView()
	if !strings.Contains(view, "Ctrl+J: help") {
		t.Errorf("footer should advertise the custom chord, got %q", view)
	}
}
