package ui

import (
	"fmt"
	"io"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// ModalState is a discriminated union interface for modal-specific state.
// Each modal type implements this interface with its own state struct,
// ensuring type-safe access to modal-specific fields.
type ModalState interface {
	modalState() // marker method to restrict implementations
	Title() string
	Help() string
	Render() string
	Update(msg tea.Msg) (ModalState, tea.Cmd)
}

// Modal represents a popup dialog with type-safe state management.
// The State field is nil when no modal is visible.
type Modal struct {
	State ModalState
	error string
}

// NewModal creates a new modal
func NewModal() *Modal {
	return &Modal{}
}

// Show displays a modal with the given state
func (m *Modal) Show(state ModalState) {
	m.State = state
	m.error = ""
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.State = nil
	m.error = ""
}

// IsVisible returns whether the modal is visible
func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// SetError sets an error message
func (m *Modal) SetError(err string) {
	m.error = err
}

// GetError returns the current error message
func (m *Modal) GetError() string {
	return m.error
}

// Update handles messages by delegating to the current state
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if m.State == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.State, cmd = m.State.Update(msg)
	return m, cmd
}

// View renders the modal centered on the screen
func (m *Modal) View(screenWidth, screenHeight int) string {
	if m.State == nil {
		return ""
	}

	content := m.State.Render()

	if m.error != "" {
		content += "\n" + StatusErrorStyle.Render(m.error)
	}

	modal := ModalStyle.Render(content)

	return lipgloss.Place(
		screenWidth, screenHeight,
		lipgloss.Center, lipgloss.Center,
		modal,
	)
}

// =============================================================================
// ConfirmState - State for destructive action confirmations
// =============================================================================

// ConfirmKind identifies which operation a confirmation applies to
type ConfirmKind int

const (
	ConfirmResetLayout ConfirmKind = iota
	ConfirmRemoveWidget
	ConfirmLockdown
)

type ConfirmState struct {
	Kind          ConfirmKind
	ModalTitle    string
	Message       string
	Subject       string // Highlighted detail line, e.g. a widget name
	Options       []string
	SelectedIndex int
}

func (*ConfirmState) modalState() {}

func (s *ConfirmState) Title() string { return s.ModalTitle }

func (s *ConfirmState) Help() string {
	return "↑/↓ to select, Enter to confirm, Esc to cancel"
}

func (s *ConfirmState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	sections := []string{title}

	if s.Subject != "" {
		subject := lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true).
			MarginBottom(1).
			Render(s.Subject)
		sections = append(sections, subject)
	}

	message := lipgloss.NewStyle().
		Foreground(ColorText).
		MarginBottom(1).
		Render(s.Message)
	sections = append(sections, message)

	var optionList string
	for i, opt := range s.Options {
		style := ModalOptionStyle
		prefix := "  "
		if i == s.SelectedIndex {
			style = ModalSelectedStyle
			prefix = "> "
		}
		optionList += style.Render(prefix+opt) + "\n"
	}
	sections = append(sections, optionList)

	sections = append(sections, ModalHelpStyle.Render(s.Help()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (s *ConfirmState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "up", "k":
			if s.SelectedIndex > 0 {
				s.SelectedIndex--
			}
		case "down", "j":
			if s.SelectedIndex < len(s.Options)-1 {
				s.SelectedIndex++
			}
		}
	}
	return s, nil
}

// Accepted returns true if the destructive option is selected
func (s *ConfirmState) Accepted() bool {
	return s.SelectedIndex == 1
}

// NewConfirmResetLayoutState creates a confirmation for resetting the layout
func NewConfirmResetLayoutState() *ConfirmState {
	return &ConfirmState{
		Kind:       ConfirmResetLayout,
		ModalTitle: "Reset Layout?",
		Message:    "This restores the default widget arrangement.",
		Options:    []string{"Keep current layout", "Reset to defaults"},
	}
}

// NewConfirmRemoveWidgetState creates a confirmation for removing a widget
func NewConfirmRemoveWidgetState(widgetTitle string) *ConfirmState {
	return &ConfirmState{
		Kind:       ConfirmRemoveWidget,
		ModalTitle: "Remove Widget?",
		Subject:    widgetTitle,
		Message:    "The widget can be re-added from the palette later.",
		Options:    []string{"Keep widget", "Remove widget"},
	}
}

// NewConfirmLockdownState creates a confirmation for emergency lockdown
func NewConfirmLockdownState() *ConfirmState {
	return &ConfirmState{
		Kind:       ConfirmLockdown,
		ModalTitle: "Emergency Lockdown?",
		Message:    "All input is blocked while the lockdown banner is active.",
		Options:    []string{"Cancel", "Engage lockdown"},
	}
}

// =============================================================================
// HelpState - State for the Help modal with keyboard shortcuts (bubbles list)
// =============================================================================

// HelpShortcut is one row in the help modal
type HelpShortcut struct {
	Key  string
	Desc string
}

// HelpSection groups shortcuts under a heading
type HelpSection struct {
	Title     string
	Shortcuts []HelpShortcut
}

// helpShortcutItem wraps a HelpShortcut for use in a bubbles list.
type helpShortcutItem struct {
	shortcut HelpShortcut
}

func (i helpShortcutItem) FilterValue() string {
	return i.shortcut.Key + " " + i.shortcut.Desc
}

// helpSectionItem represents a section header in the list.
// It is not selectable and not filterable.
type helpSectionItem struct {
	title string
}

func (i helpSectionItem) FilterValue() string { return "" }

// helpDelegate renders help list items with the existing styling.
type helpDelegate struct{}

func (d helpDelegate) Height() int                             { return 1 }
func (d helpDelegate) Spacing() int                            { return 0 }
func (d helpDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d helpDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	switch i := item.(type) {
	case helpSectionItem:
		title := lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary).
			Render(i.title)
		fmt.Fprint(w, title)

	case helpShortcutItem:
		isSelected := index == m.Index()
		var key, desc string
		if isSelected {
			key = lipgloss.NewStyle().
				Foreground(ColorTextInverse).
				Background(ColorPrimary).
				Bold(true).
				Width(16).
				Render(i.shortcut.Key)
			desc = lipgloss.NewStyle().
				Foreground(ColorTextInverse).
				Background(ColorPrimary).
				Render(i.shortcut.Desc)
			fmt.Fprint(w, "> "+key+desc)
		} else {
			key = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true).
				Width(16).
				Render(i.shortcut.Key)
			desc = lipgloss.NewStyle().
				Foreground(ColorText).
				Render(i.shortcut.Desc)
			fmt.Fprint(w, "  "+key+desc)
		}
	}
}

// HelpState wraps a bubbles list.Model for the help modal.
type HelpState struct {
	list list.Model
}

func (*HelpState) modalState() {}

func (s *HelpState) Title() string { return "Keyboard Shortcuts" }

func (s *HelpState) Help() string {
	if s.list.SettingFilter() {
		return "Type to filter  Enter: apply  Esc: cancel"
	}
	return "/: filter  up/down: navigate  Esc: close"
}

func (s *HelpState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	content := s.list.View()
	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, content, help)
}

func (s *HelpState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

// Filtering reports whether the list's filter input is capturing keys,
// so the app does not treat Esc as dismiss while a filter is being typed.
func (s *HelpState) Filtering() bool {
	return s.list.SettingFilter()
}

// NewHelpState builds the help modal from grouped shortcut sections.
func NewHelpState(sections []HelpSection) *HelpState {
	var items []list.Item
	for _, section := range sections {
		items = append(items, helpSectionItem{title: section.Title})
		for _, sc := range section.Shortcuts {
			items = append(items, helpShortcutItem{shortcut: sc})
		}
	}

	l := list.New(items, helpDelegate{}, ModalWidth-6, ModalMaxVisibleRows)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)

	return &HelpState{list: l}
}

// =============================================================================
// MetricsDetailState - State for the detailed metrics modal
// =============================================================================

type MetricsDetailState struct {
	Rows   []HelpShortcut // label/value pairs reuse the two-column layout
	Uptime string
}

func (*MetricsDetailState) modalState() {}

func (s *MetricsDetailState) Title() string { return "System Metrics" }

func (s *MetricsDetailState) Help() string {
	return "Press Enter or Esc to close"
}

func (s *MetricsDetailState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	var content string
	for _, row := range s.Rows {
		label := lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Width(20).
			Render(row.Key)
		value := WidgetValueStyle.Render(row.Desc)
		content += label + value + "\n"
	}

	if s.Uptime != "" {
		content += "\n" + WidgetLabelStyle.Render(s.Uptime)
	}

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, content, help)
}

func (s *MetricsDetailState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	return s, nil
}

// NewMetricsDetailState creates the detailed metrics modal
func NewMetricsDetailState(rows []HelpShortcut, uptime string) *MetricsDetailState {
	return &MetricsDetailState{Rows: rows, Uptime: uptime}
}
