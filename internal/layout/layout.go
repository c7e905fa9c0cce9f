// Package layout implements the dashboard's widget layout: columns of
// widgets that can be added, removed, resized, and moved between columns.
//
// The in-memory State is the single source of truth. The rendered UI is a
// projection of it; nothing is ever read back from rendered output. Every
// structural mutation is followed synchronously by a full re-serialize and
// persist, so the stored copy never drifts from the in-memory one.
package layout

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/gridwatch/gridwatch/internal/errors"
	"github.com/gridwatch/gridwatch/internal/logger"
)

// WidgetType identifies a widget kind the dashboard knows how to render.
type WidgetType string

const (
	WidgetThreatMap    WidgetType = "threatMap"
	WidgetAlerts       WidgetType = "alerts"
	WidgetMetrics      WidgetType = "metrics"
	WidgetDefenses     WidgetType = "defenses"
	WidgetNetworkChart WidgetType = "networkChart"
	WidgetQuickActions WidgetType = "quickActions"
	WidgetRawData      WidgetType = "rawData"
)

// PaletteTypes lists the widget kinds offered by the edit-mode palette.
var PaletteTypes = []WidgetType{
	WidgetThreatMap,
	WidgetAlerts,
	WidgetMetrics,
	WidgetDefenses,
	WidgetNetworkChart,
	WidgetQuickActions,
}

// IsKnown reports whether the type is a renderable widget kind.
func (t WidgetType) IsKnown() bool {
	switch t {
	case WidgetThreatMap, WidgetAlerts, WidgetMetrics, WidgetDefenses,
		WidgetNetworkChart, WidgetQuickActions, WidgetRawData:
		return true
	}
	return false
}

// Widget is one entry in a column.
type Widget struct {
	ID       string     `json:"id"`
	Type     WidgetType `json:"type"`
	Expanded bool       `json:"expanded"`
}

// State is the full layout: an ordered sequence of columns, each an
// ordered sequence of widgets. Widget IDs are unique across the layout.
type State struct {
	Columns [][]Widget `json:"columns"`
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	out := State{Columns: make([][]Widget, len(s.Columns))}
	for i, col := range s.Columns {
		out.Columns[i] = make([]Widget, len(col))
		copy(out.Columns[i], col)
	}
	return out
}

// Validate checks the cross-layout ID uniqueness invariant.
func (s State) Validate() error {
	seen := make(map[string]bool)
	for _, col := range s.Columns {
		for _, w := range col {
			if w.ID == "" {
				return errors.E(errors.Op("layout.Validate"), errors.KindLayout, "widget with empty ID")
			}
			if seen[w.ID] {
				return errors.E(errors.Op("layout.Validate"), errors.KindLayout, "duplicate widget ID "+w.ID)
			}
			seen[w.ID] = true
		}
	}
	return nil
}

// SchemaVersion is the persisted layout schema version. Payloads with a
// different version are treated as absent rather than misparsed.
const SchemaVersion = 1

// persisted is the on-disk layout envelope.
type persisted struct {
	SchemaVersion int        `json:"schema_version"`
	Columns       [][]Widget `json:"columns"`
}

// Marshal serializes a state snapshot with the current schema version.
func Marshal(s State) ([]byte, error) {
	return json.Marshal(persisted{SchemaVersion: SchemaVersion, Columns: s.Columns})
}

// Unmarshal parses a persisted layout. The second return is false when the
// payload is empty, malformed, or carries a different schema version; all
// three cases are treated as "no saved layout".
func Unmarshal(data []byte) (State, bool) {
	if len(data) == 0 {
		return State{}, false
	}
	var p persisted
	if err := json.Unmarshal(data, &p); err != nil {
		logger.Warn("Layout: discarding malformed saved layout: %v", err)
		return State{}, false
	}
	if p.SchemaVersion != SchemaVersion {
		logger.Warn("Layout: discarding saved layout with schema version %d", p.SchemaVersion)
		return State{}, false
	}
	return State{Columns: p.Columns}, true
}

// DefaultState returns the built-in three-column layout the dashboard
// starts with when nothing has been saved.
func DefaultState() State {
	return State{Columns: [][]Widget{
		{
			{ID: "widget-metrics", Type: WidgetMetrics},
			{ID: "widget-threat-map", Type: WidgetThreatMap},
		},
		{
			{ID: "widget-alerts", Type: WidgetAlerts},
			{ID: "widget-network-chart", Type: WidgetNetworkChart},
		},
		{
			{ID: "widget-defenses", Type: WidgetDefenses},
			{ID: "widget-quick-actions", Type: WidgetQuickActions},
			{ID: "widget-raw-data", Type: WidgetRawData},
		},
	}}
}

// Store is the persistence seam for layouts. The config package
// implements it on top of the dashboard's JSON config file.
type Store interface {
	// LayoutData returns the persisted layout payload, or nil when absent.
	LayoutData() []byte
	// SetLayoutData replaces the persisted payload; nil deletes it.
	SetLayoutData(data []byte)
	// Persist flushes the store to disk.
	Persist() error
}

// Builder owns the layout state and its edit-mode flag.
type Builder struct {
	state    State
	defaults State
	editMode bool
	store    Store
}

// NewBuilder creates a builder seeded with the default layout and then
// merges any persisted layout over it (LoadLayout semantics).
func NewBuilder(store Store) *Builder {
	b := &Builder{
		state:    DefaultState(),
		defaults: DefaultState(),
		store:    store,
	}
	b.LoadLayout()
	return b
}

// State returns a deep copy of the current layout.
func (b *Builder) State() State {
	return b.state.Clone()
}

// EditMode reports whether edit mode is active.
func (b *Builder) EditMode() bool {
	return b.editMode
}

// ToggleEditMode flips the edit-mode flag and returns the new value.
// Edit mode only changes which affordances the UI renders; it does not
// touch the persisted layout.
func (b *Builder) ToggleEditMode() bool {
	b.editMode = !b.editMode
	logger.Debug("Layout: edit mode = %v", b.editMode)
	return b.editMode
}

// SaveLayout serializes the current state and writes it to the store,
// overwriting any previous value.
func (b *Builder) SaveLayout() error {
	if b.store == nil {
		return nil
	}
	data, err := Marshal(b.state)
	if err != nil {
		return errors.E(errors.Op("layout.Save"), errors.KindLayout, err)
	}
	b.store.SetLayoutData(data)
	if err := b.store.Persist(); err != nil {
		return errors.E(errors.Op("layout.Save"), errors.KindIO, err)
	}
	logger.Info("Layout: saved %d column(s)", len(b.state.Columns))
	return nil
}

// LoadLayout merges the persisted layout into the current one. When no
// usable payload exists the current layout is left untouched. For each
// column index present in both the persisted state and the current layout,
// the column is replaced wholesale; persisted columns beyond the current
// column count are silently ignored.
func (b *Builder) LoadLayout() {
	if b.store == nil {
		return
	}
	saved, ok := Unmarshal(b.store.LayoutData())
	if !ok {
		return
	}
	for i, col := range saved.Columns {
		if i >= len(b.state.Columns) {
			break
		}
		restored := make([]Widget, 0, len(col))
		for _, w := range col {
			if !w.Type.IsKnown() {
				logger.Warn("Layout: restoring unknown widget type %q (id=%s) as placeholder", w.Type, w.ID)
			}
			restored = append(restored, w)
		}
		b.state.Columns[i] = restored
	}
	if err := b.state.Validate(); err != nil {
		logger.Warn("Layout: saved layout failed validation, reverting to defaults: %v", err)
		b.state = b.defaults.Clone()
	}
}

// ResetLayout deletes the persisted layout and restores the built-in
// default. Confirmation is the caller's responsibility.
func (b *Builder) ResetLayout() error {
	b.state = b.defaults.Clone()
	if b.store == nil {
		return nil
	}
	b.store.SetLayoutData(nil)
	if err := b.store.Persist(); err != nil {
		return errors.E(errors.Op("layout.Reset"), errors.KindIO, err)
	}
	logger.Info("Layout: reset to defaults")
	return nil
}

// Find locates a widget by ID, returning its column and position.
func (b *Builder) Find(id string) (col, idx int, ok bool) {
	for c, column := range b.state.Columns {
		for i, w := range column {
			if w.ID == id {
				return c, i, true
			}
		}
	}
	return 0, 0, false
}

// AddWidget appends a palette widget of the given type to a column and
// persists the result. The new widget gets a fresh unique ID.
func (b *Builder) AddWidget(col int, t WidgetType) (Widget, error) {
	if col < 0 || col >= len(b.state.Columns) {
		return Widget{}, errors.ColumnOutOfRange(col, len(b.state.Columns))
	}
	w := Widget{ID: "widget-" + uuid.NewString(), Type: t}
	b.state.Columns[col] = append(b.state.Columns[col], w)
	return w, b.SaveLayout()
}

// RemoveWidget deletes a widget and persists the result.
func (b *Builder) RemoveWidget(id string) error {
	col, idx, ok := b.Find(id)
	if !ok {
		return errors.WidgetNotFound(id)
	}
	column := b.state.Columns[col]
	b.state.Columns[col] = append(column[:idx], column[idx+1:]...)
	return b.SaveLayout()
}

// ToggleWidgetSize flips a widget's expanded flag and persists the result.
func (b *Builder) ToggleWidgetSize(id string) error {
	col, idx, ok := b.Find(id)
	if !ok {
		return errors.WidgetNotFound(id)
	}
	b.state.Columns[col][idx].Expanded = !b.state.Columns[col][idx].Expanded
	return b.SaveLayout()
}

// MoveWidget relocates a widget to the end of another column and persists
// the result. Moving a widget onto its current column is rejected; drops
// on the source column are not moves.
func (b *Builder) MoveWidget(id string, toCol int) error {
	if toCol < 0 || toCol >= len(b.state.Columns) {
		return errors.ColumnOutOfRange(toCol, len(b.state.Columns))
	}
	col, idx, ok := b.Find(id)
	if !ok {
		return errors.WidgetNotFound(id)
	}
	if col == toCol {
		return errors.E(errors.Op("layout.Move"), errors.KindInvalid, "widget already in column")
	}
	w := b.state.Columns[col][idx]
	column := b.state.Columns[col]
	b.state.Columns[col] = append(column[:idx], column[idx+1:]...)
	b.state.Columns[toCol] = append(b.state.Columns[toCol], w)
	return b.SaveLayout()
}
