// Package shortcut implements the dashboard's keyboard shortcut dispatcher:
// chord normalization, the closed set of named actions, the built-in binding
// table, and user-defined custom bindings that shadow it.
package shortcut

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"unicode"

	tea "charm.land/bubbletea/v2"

	"github.com/gridwatch/gridwatch/internal/errors"
	"github.com/gridwatch/gridwatch/internal/logger"
)

// Action is one of the named dashboard operations a chord can invoke.
// The set is closed: bindings naming anything else are rejected when
// they are created, not when they fire.
type Action string

const (
	ActionShowHelp          Action = "showHelp"
	ActionScanNetwork       Action = "scanNetwork"
	ActionToggleTheme       Action = "toggleTheme"
	ActionToggleViewMode    Action = "toggleViewMode"
	ActionRefreshData       Action = "refreshData"
	ActionToggleEditMode    Action = "toggleEditMode"
	ActionToggleAudio       Action = "toggleAudio"
	ActionQuickSave         Action = "quickSave"
	ActionShowMetrics       Action = "showMetrics"
	ActionToggleFullscreen  Action = "toggleFullscreen"
	ActionEmergencyLockdown Action = "emergencyLockdown"
	ActionCancel            Action = "cancelAction"
	ActionSaveReport        Action = "saveReport"
	ActionPrintDashboard    Action = "printDashboard"
	ActionExportData        Action = "exportData"
)

// Actions lists every valid action in display order.
var Actions = []Action{
	ActionShowHelp,
	ActionScanNetwork,
	ActionToggleTheme,
	ActionToggleViewMode,
	ActionRefreshData,
	ActionToggleEditMode,
	ActionToggleAudio,
	ActionQuickSave,
	ActionShowMetrics,
	ActionToggleFullscreen,
	ActionEmergencyLockdown,
	ActionCancel,
	ActionSaveReport,
	ActionPrintDashboard,
	ActionExportData,
}

// Valid reports whether a is a registered action.
func (a Action) Valid() bool {
	for _, known := range Actions {
		if a == known {
			return true
		}
	}
	return false
}

// Binding maps a normalized chord to an action.
type Binding struct {
	Chord       string `json:"chord"`
	Action      Action `json:"action"`
	Description string `json:"description"`
	Custom      bool   `json:"-"`
}

// defaults is the immutable built-in binding table.
var defaults = []Binding{
	{Chord: "F1", Action: ActionShowHelp, Description: "Show help"},
	{Chord: "F2", Action: ActionScanNetwork, Description: "Scan network"},
	{Chord: "F3", Action: ActionToggleTheme, Description: "Cycle theme"},
	{Chord: "F4", Action: ActionToggleViewMode, Description: "Cycle view mode"},
	{Chord: "F5", Action: ActionRefreshData, Description: "Refresh data"},
	{Chord: "F6", Action: ActionToggleEditMode, Description: "Toggle dashboard edit mode"},
	{Chord: "F7", Action: ActionToggleAudio, Description: "Toggle audio"},
	{Chord: "F8", Action: ActionQuickSave, Description: "Save layout"},
	{Chord: "F9", Action: ActionShowMetrics, Description: "Show detailed metrics"},
	{Chord: "F10", Action: ActionToggleFullscreen, Description: "Toggle fullscreen"},
	{Chord: "F11", Action: ActionEmergencyLockdown, Description: "Emergency lockdown"},
	{Chord: "Escape", Action: ActionCancel, Description: "Cancel current action"},
	{Chord: "Ctrl+S", Action: ActionSaveReport, Description: "Save report"},
	{Chord: "Ctrl+P", Action: ActionPrintDashboard, Description: "Print dashboard"},
	{Chord: "Ctrl+E", Action: ActionExportData, Description: "Export data"},
}

// Defaults returns a copy of the built-in binding table.
func Defaults() []Binding {
	out := make([]Binding, len(defaults))
	copy(out, defaults)
	return out
}

// functionKeys maps Bubble Tea function key codes to chord tokens.
var functionKeys = map[rune]string{
	tea.KeyF1: "F1", tea.KeyF2: "F2", tea.KeyF3: "F3", tea.KeyF4: "F4",
	tea.KeyF5: "F5", tea.KeyF6: "F6", tea.KeyF7: "F7", tea.KeyF8: "F8",
	tea.KeyF9: "F9", tea.KeyF10: "F10", tea.KeyF11: "F11", tea.KeyF12: "F12",
}

// Normalize builds the canonical chord string for a key press: modifier
// prefixes in fixed Ctrl, Alt, Shift order, then the key token (F<n> for
// function keys, Escape for escape, otherwise the upper-cased key).
// The same physical chord always normalizes to the same string, which is
// what makes the stored binding tables usable for lookup.
func Normalize(msg tea.KeyPressMsg) string {
	var sb strings.Builder

	if msg.Mod&tea.ModCtrl != 0 {
		sb.WriteString("Ctrl+")
	}
	if msg.Mod&tea.ModAlt != 0 {
		sb.WriteString("Alt+")
	}
	if msg.Mod&tea.ModShift != 0 {
		sb.WriteString("Shift+")
	}

	sb.WriteString(keyToken(msg.Code))
	return sb.String()
}

// keyToken renders a key code as its chord token.
func keyToken(code rune) string {
	if name, ok := functionKeys[code]; ok {
		return name
	}
	switch code {
	case tea.KeyEscape:
		return "Escape"
	case tea.KeyEnter:
		return "Enter"
	case tea.KeyTab:
		return "Tab"
	case tea.KeySpace:
		return "Space"
	case tea.KeyBackspace:
		return "Backspace"
	case tea.KeyDelete:
		return "Delete"
	case tea.KeyUp:
		return "Up"
	case tea.KeyDown:
		return "Down"
	case tea.KeyLeft:
		return "Left"
	case tea.KeyRight:
		return "Right"
	}
	if unicode.IsPrint(code) {
		return strings.ToUpper(string(code))
	}
	return fmt.Sprintf("Key(%d)", code)
}

// Handler performs an action and may return a follow-up command.
type Handler func() tea.Cmd

// Store is the persistence seam for custom bindings.
type Store interface {
	// CustomShortcutData returns the persisted custom binding payload,
	// or nil when absent.
	CustomShortcutData() []byte
	// SetCustomShortcutData replaces the persisted payload.
	SetCustomShortcutData(data []byte)
	// Persist flushes the store to disk.
	Persist() error
}

// Dispatcher resolves chords to bindings and invokes their handlers.
// Custom bindings shadow built-ins with the same chord.
type Dispatcher struct {
	handlers map[Action]Handler
	builtin  map[string]Binding
	custom   map[string]Binding
	store    Store
}

// NewDispatcher creates a dispatcher with the given handler table and
// loads persisted custom bindings from the store. Every action in the
// handler table must be a registered action, and every built-in binding
// must have a handler; violations are binding-time errors.
func NewDispatcher(store Store, handlers map[Action]Handler) (*Dispatcher, error) {
	for action := range handlers {
		if !action.Valid() {
			return nil, errors.UnknownAction(string(action))
		}
	}
	for _, b := range defaults {
		if handlers[b.Action] == nil {
			return nil, errors.E(errors.Op("shortcut.New"), errors.KindShortcut,
				fmt.Sprintf("no handler for built-in action %q", b.Action))
		}
	}

	d := &Dispatcher{
		handlers: handlers,
		builtin:  make(map[string]Binding, len(defaults)),
		custom:   make(map[string]Binding),
		store:    store,
	}
	for _, b := range defaults {
		d.builtin[b.Chord] = b
	}
	d.loadCustomShortcuts()
	return d, nil
}

// Lookup resolves a chord, custom bindings first.
func (d *Dispatcher) Lookup(chord string) (Binding, bool) {
	if b, ok := d.custom[chord]; ok {
		return b, true
	}
	b, ok := d.builtin[chord]
	return b, ok
}

// Execute resolves a chord and invokes its handler. The boolean reports
// whether the chord was bound; unbound chords are not intercepted.
func (d *Dispatcher) Execute(chord string) (Binding, tea.Cmd, bool) {
	b, ok := d.Lookup(chord)
	if !ok {
		return Binding{}, nil, false
	}
	logger.Debug("Shortcut: %s -> %s", chord, b.Action)
	return b, d.handlers[b.Action](), true
}

// Bind creates or replaces a custom binding and persists the custom map.
// Unknown actions are rejected here, at binding time.
func (d *Dispatcher) Bind(chord string, action Action, description string) error {
	if !action.Valid() {
		return errors.UnknownAction(string(action))
	}
	if d.handlers[action] == nil {
		return errors.UnknownAction(string(action))
	}
	d.custom[chord] = Binding{Chord: chord, Action: action, Description: description, Custom: true}
	return d.SaveCustomShortcuts()
}

// Unbind removes a custom binding and persists the custom map. Built-in
// bindings cannot be removed, only shadowed.
func (d *Dispatcher) Unbind(chord string) error {
	if _, ok := d.custom[chord]; !ok {
		return errors.E(errors.Op("shortcut.Unbind"), errors.KindNotFound, "no custom binding for "+chord)
	}
	delete(d.custom, chord)
	return d.SaveCustomShortcuts()
}

// Bindings returns the effective binding table: built-ins in their fixed
// order with shadowed entries replaced, followed by purely custom chords
// sorted for stable display.
func (d *Dispatcher) Bindings() []Binding {
	out := make([]Binding, 0, len(d.builtin)+len(d.custom))
	for _, b := range defaults {
		if c, ok := d.custom[b.Chord]; ok {
			out = append(out, c)
			continue
		}
		out = append(out, b)
	}

	extras := make([]Binding, 0, len(d.custom))
	for chord, b := range d.custom {
		if _, shadows := d.builtin[chord]; !shadows {
			extras = append(extras, b)
		}
	}
	sort.Slice(extras, func(i, j int) bool { return extras[i].Chord < extras[j].Chord })
	return append(out, extras...)
}

// EffectiveBindings reads the binding table straight from a store, for
// callers that only need the merged list and have no handler table.
func EffectiveBindings(store Store) []Binding {
	d := &Dispatcher{
		builtin: make(map[string]Binding, len(defaults)),
		custom:  make(map[string]Binding),
		store:   store,
	}
	for _, b := range defaults {
		d.builtin[b.Chord] = b
	}
	d.loadCustomShortcuts()
	return d.Bindings()
}

// SaveCustomShortcuts persists the full custom map, replacing any prior value.
func (d *Dispatcher) SaveCustomShortcuts() error {
	if d.store == nil {
		return nil
	}
	data, err := json.Marshal(d.custom)
	if err != nil {
		return errors.E(errors.Op("shortcut.Save"), errors.KindShortcut, err)
	}
	d.store.SetCustomShortcutData(data)
	if err := d.store.Persist(); err != nil {
		return errors.E(errors.Op("shortcut.Save"), errors.KindIO, err)
	}
	return nil
}

// loadCustomShortcuts merges persisted custom bindings over an empty map.
// Malformed payloads and bindings naming unknown actions are dropped with
// a warning rather than surfaced.
func (d *Dispatcher) loadCustomShortcuts() {
	if d.store == nil {
		return
	}
	data := d.store.CustomShortcutData()
	if len(data) == 0 {
		return
	}
	var saved map[string]Binding
	if err := json.Unmarshal(data, &saved); err != nil {
		logger.Warn("Shortcut: discarding malformed custom bindings: %v", err)
		return
	}
	for chord, b := range saved {
		// Handler presence is only checkable on a dispatcher with a
		// handler table; read-only loads validate the action alone.
		if !b.Action.Valid() || (d.handlers != nil && d.handlers[b.Action] == nil) {
			logger.Warn("Shortcut: dropping custom binding %s -> %q (unknown action)", chord, b.Action)
			continue
		}
		b.Chord = chord
		b.Custom = true
		d.custom[chord] = b
	}
	logger.Info("Shortcut: loaded %d custom binding(s)", len(d.custom))
}
