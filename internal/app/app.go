// Package app contains the main Bubble Tea model that wires the dashboard
// together: simulated telemetry, the layout builder, the shortcut
// dispatcher, and the view-mode controller.
package app

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/gridwatch/gridwatch/internal/config"
	"github.com/gridwatch/gridwatch/internal/layout"
	"github.com/gridwatch/gridwatch/internal/logger"
	"github.com/gridwatch/gridwatch/internal/shortcut"
	"github.com/gridwatch/gridwatch/internal/simdata"
	"github.com/gridwatch/gridwatch/internal/ui"
	"github.com/gridwatch/gridwatch/internal/viewmode"
)

// LockdownDuration is how long the emergency lockdown overlay blocks input.
const LockdownDuration = 5 * time.Second

// scanFrames are the characters cycled by the scan-in-progress indicator
var scanFrames = []string{"▖", "▘", "▝", "▗"}

// TickMsg drives the periodic data refresh. Gen identifies the refresh
// schedule that produced the tick; ticks from an abandoned schedule are
// dropped so a view-mode switch replaces the cadence instead of stacking.
type TickMsg struct {
	Gen int
}

// ScanCompleteMsg is sent when the simulated network scan finishes
type ScanCompleteMsg struct{}

// ScanFrameMsg advances the scan indicator animation
type ScanFrameMsg struct{}

// LockdownEndMsg clears the emergency lockdown overlay
type LockdownEndMsg struct{}

// Model is the main Bubble Tea model
type Model struct {
	config     *config.Config
	version    string // App version (injected at build time)
	sim        *simdata.Service
	layout     *layout.Builder
	dispatcher *shortcut.Dispatcher
	modes      *viewmode.Controller

	header *ui.Header
	footer *ui.Footer
	modal  *ui.Modal
	toast  *ui.Toast

	width  int
	height int

	// Settings applied by the active view-mode profile
	visibility viewmode.Visibility
	density    viewmode.DataDensity
	animCycle  time.Duration
	refresh    time.Duration

	tickGen   int
	tickCount int
	scanFrame int

	lockdown    bool
	chromeShown bool // Header and footer visible; toggled by fullscreen
	audio       bool

	// Edit mode selection cursor
	selCol int
	selRow int
	moving bool // Next left/right relocates the selected widget

	// ID of the widget a pending remove confirmation targets
	pendingRemoveID string

	// writeDir is where exports and reports land
	writeDir string

	now func() time.Time // Injectable clock for tests

	quitting bool
}

// New creates a new app model. The dispatcher handler table is validated
// at construction, so a missing or unknown action surfaces here rather
// than on first keypress.
func New(cfg *config.Config, version string) (*Model, error) {
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	m := &Model{
		config:      cfg,
		version:     version,
		sim:         simdata.New(),
		layout:      layout.NewBuilder(cfg),
		header:      ui.NewHeader(),
		footer:      ui.NewFooter(),
		modal:       ui.NewModal(),
		toast:       ui.NewToast(),
		chromeShown: true,
		audio:       cfg.GetAudioEnabled(),
		writeDir:    ".",
		now:         time.Now,
	}

	dispatcher, err := shortcut.NewDispatcher(cfg, m.buildHandlers())
	if err != nil {
		return nil, err
	}
	m.dispatcher = dispatcher
	m.footer.SetBindings(m.footerHints())

	// A persisted mode wins; otherwise the mode is picked by time of day
	start := cfg.GetViewMode()
	if start == "" {
		start = viewmode.AutoDetectNow()
		logger.Info("App: auto-detected view mode %q", start)
	}
	m.modes = viewmode.NewController(start, m)

	return m, nil
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return m.scheduleTick()
}

// scheduleTick arms the next data refresh at the active profile's cadence.
func (m *Model) scheduleTick() tea.Cmd {
	gen := m.tickGen
	return tea.Tick(m.refresh, func(time.Time) tea.Msg {
		return TickMsg{Gen: gen}
	})
}

// scheduleScanFrame arms the next scan indicator frame. The profile's
// animation cycle duration is spread over one full frame rotation.
func (m *Model) scheduleScanFrame() tea.Cmd {
	interval := m.animCycle / time.Duration(len(scanFrames))
	if interval <= 0 {
		interval = 125 * time.Millisecond
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return ScanFrameMsg{}
	})
}

// Applier implementation: the view-mode controller pushes profile
// settings into the model through these.

// ApplyVisibility records which widget groups the profile shows
func (m *Model) ApplyVisibility(v viewmode.Visibility) {
	m.visibility = v
}

// ApplyAnimation records the profile's animation cycle duration
func (m *Model) ApplyAnimation(d time.Duration) {
	m.animCycle = d
}

// ApplyRefresh replaces the data refresh cadence. Bumping the generation
// abandons any tick already in flight for the old cadence.
func (m *Model) ApplyRefresh(interval time.Duration) {
	m.refresh = interval
	m.tickGen++
}

// ModeChanged announces the new profile and persists the selection
func (m *Model) ModeChanged(p viewmode.Profile) {
	m.density = p.DataDensity
	m.toast.Show("View mode: "+p.DisplayName+" ("+p.Description+")", ui.ToastModeDuration, m.now())
	m.config.SetViewMode(p.Name)
	if err := m.config.Save(); err != nil {
		logger.Warn("App: saving view mode failed: %v", err)
	}
}

// widgetVisible applies the profile's visibility flags to a widget type
func (m *Model) widgetVisible(t layout.WidgetType) bool {
	switch t {
	case layout.WidgetRawData:
		return m.visibility.RawData
	case layout.WidgetAlerts:
		return m.visibility.Alerts
	case layout.WidgetNetworkChart:
		return m.visibility.Charts
	case layout.WidgetMetrics:
		return m.visibility.Metrics
	default:
		return true
	}
}

// widgetData snapshots the simulation state for the widget renderers
func (m *Model) widgetData() ui.WidgetData {
	labels, normal, attacks := m.sim.TrafficSeries()
	return ui.WidgetData{
		Metrics:        m.sim.Metrics(),
		Alerts:         m.sim.Alerts(),
		Regions:        m.sim.ThreatRegions(),
		TrafficLabels:  labels,
		TrafficNormal:  normal,
		TrafficAttacks: attacks,
		RawJSON:        m.rawTelemetry(),
		Scanning:       m.sim.Scanning(),
		Density:        m.density,
	}
}

// rawTelemetry renders the raw data widget's JSON payload
func (m *Model) rawTelemetry() string {
	metrics := m.sim.Metrics()
	return fmt.Sprintf(
		"{\n  \"securityLevel\": %d,\n  \"threatsBlocked\": %d,\n  \"activeUsers\": %d,\n  \"criticalAlerts\": %d,\n  \"defenses\": %q,\n  \"viewMode\": %q\n}",
		metrics.SecurityLevel, metrics.ThreatsBlocked, metrics.ActiveUsers,
		metrics.CriticalAlerts, metrics.DefensesActive, m.modes.Active(),
	)
}

// selectedWidget returns the widget under the edit-mode cursor
func (m *Model) selectedWidget() (layout.Widget, bool) {
	state := m.layout.State()
	if m.selCol < 0 || m.selCol >= len(state.Columns) {
		return layout.Widget{}, false
	}
	col := state.Columns[m.selCol]
	if m.selRow < 0 || m.selRow >= len(col) {
		return layout.Widget{}, false
	}
	return col[m.selRow], true
}

// clampCursor keeps the edit-mode cursor on an existing widget after
// layout mutations
func (m *Model) clampCursor() {
	state := m.layout.State()
	if len(state.Columns) == 0 {
		m.selCol, m.selRow = 0, 0
		return
	}
	if m.selCol >= len(state.Columns) {
		m.selCol = len(state.Columns) - 1
	}
	if m.selCol < 0 {
		m.selCol = 0
	}
	col := state.Columns[m.selCol]
	if m.selRow >= len(col) {
		m.selRow = len(col) - 1
	}
	if m.selRow < 0 {
		m.selRow = 0
	}
}
