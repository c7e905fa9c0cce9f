package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut hint shown in the footer
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer represents the bottom footer bar with keybinding hints
type Footer struct {
	width        int
	bindings     []KeyBinding
	editMode     bool // Whether the layout builder is in edit mode
	modalVisible bool // Whether a modal is open
	lockdown     bool // Whether the lockdown overlay is active
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "F1", Desc: "help"},
			{Key: "F2", Desc: "scan"},
			{Key: "F3", Desc: "theme"},
			{Key: "F4", Desc: "view mode"},
			{Key: "F6", Desc: "edit layout"},
			{Key: "ctrl+s", Desc: "report"},
			{Key: "q", Desc: "quit"},
		},
	}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(editMode, modalVisible, lockdown bool) {
	f.editMode = editMode
	f.modalVisible = modalVisible
	f.lockdown = lockdown
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings allows custom keybinding hints
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// View renders the footer
func (f *Footer) View() string {
	bindings := f.bindings

	switch {
	case f.lockdown:
		bindings = []KeyBinding{
			{Key: "esc", Desc: "nothing (lockdown active)"},
		}
	case f.modalVisible:
		bindings = []KeyBinding{
			{Key: "↑/↓", Desc: "navigate"},
			{Key: "enter", Desc: "confirm"},
			{Key: "esc", Desc: "close"},
		}
	case f.editMode:
		bindings = []KeyBinding{
			{Key: "↑/↓/←/→", Desc: "select"},
			{Key: "m", Desc: "move"},
			{Key: "a", Desc: "add"},
			{Key: "x", Desc: "remove"},
			{Key: "s", Desc: "resize"},
			{Key: "r", Desc: "reset"},
			{Key: "F6/esc", Desc: "done"},
		}
	}

	var parts []string
	for _, b := range bindings {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")

	return FooterStyle.Width(f.width).Render(content)
}
