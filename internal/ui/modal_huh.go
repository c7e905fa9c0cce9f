package ui

import (
	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/gridwatch/gridwatch/internal/keys"
)

// initHuhForm initializes a huh form eagerly so it renders correctly
// immediately. Call this in every modal constructor after creating the form.
func initHuhForm(form *huh.Form) {
	form.Init()
}

// huhFormUpdate is the common Update logic for huh-based modals.
// It intercepts Enter and Escape (handled by the app-layer modal handlers)
// and delegates everything else to the huh form.
func huhFormUpdate(form *huh.Form, initialized *bool, msg tea.Msg) (*huh.Form, tea.Cmd) {
	if !*initialized {
		*initialized = true
		initCmd := form.Init()
		m, updateCmd := form.Update(msg)
		form = m.(*huh.Form)
		return form, tea.Batch(initCmd, updateCmd)
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Enter, keys.Escape:
			// The app-layer modal handlers own these keys
			return form, nil
		}
	}

	m, cmd := form.Update(msg)
	form = m.(*huh.Form)
	return form, cmd
}

// ModalTheme returns a huh theme that matches the current modal color palette.
// This is called each time a huh form is created to pick up the current theme colors.
func ModalTheme() huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		t.Focused.Base = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(ColorPrimary)
		t.Focused.Card = t.Focused.Base
		t.Focused.Title = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
		t.Focused.Description = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
		t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(ColorWarning).SetString(" *")
		t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(ColorWarning)

		t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(ColorPrimary).SetString("> ")
		t.Focused.NextIndicator = lipgloss.NewStyle().Foreground(ColorPrimary).MarginLeft(1).SetString("→")
		t.Focused.PrevIndicator = lipgloss.NewStyle().Foreground(ColorPrimary).MarginRight(1).SetString("←")
		t.Focused.Option = lipgloss.NewStyle().Foreground(ColorText)

		t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(ColorPrimary).SetString("> ")
		t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(ColorSecondary)
		t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(ColorSecondary).SetString("[x] ")
		t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(ColorText)
		t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(ColorTextMuted).SetString("[ ] ")

		t.Focused.FocusedButton = lipgloss.NewStyle().
			Padding(0, 2).
			MarginRight(1).
			Foreground(ColorTextInverse).
			Background(ColorPrimary)
		t.Focused.BlurredButton = lipgloss.NewStyle().
			Padding(0, 2).
			MarginRight(1).
			Foreground(ColorTextMuted)

		t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(ColorPrimary)
		t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(ColorTextMuted)
		t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(ColorPrimary)
		t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(ColorText)

		t.Blurred = t.Focused
		t.Blurred.Base = lipgloss.NewStyle().
			PaddingLeft(2)
		t.Blurred.Card = t.Blurred.Base
		t.Blurred.NextIndicator = lipgloss.NewStyle()
		t.Blurred.PrevIndicator = lipgloss.NewStyle()

		t.Group.Title = lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true)
		t.Group.Description = lipgloss.NewStyle().Foreground(ColorTextMuted)

		t.FieldSeparator = lipgloss.NewStyle().SetString("\n")

		t.Help = help.New().Styles

		return t
	})
}

// =============================================================================
// ThemeFormState - State for the theme picker modal (huh select)
// =============================================================================

type ThemeFormState struct {
	form        *huh.Form
	initialized bool
	selected    string
}

func (*ThemeFormState) modalState() {}

func (s *ThemeFormState) Title() string { return "Select Theme" }

func (s *ThemeFormState) Help() string {
	return "↑/↓ to select, Enter to apply, Esc to cancel"
}

func (s *ThemeFormState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *ThemeFormState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, &s.initialized, msg)
	return s, cmd
}

// Selected returns the theme chosen in the form
func (s *ThemeFormState) Selected() ThemeName {
	return ThemeName(s.selected)
}

// NewThemeFormState creates the theme picker with the current theme preselected
func NewThemeFormState(current ThemeName) *ThemeFormState {
	s := &ThemeFormState{selected: string(current)}

	options := make([]huh.Option[string], 0, len(ThemeNames()))
	for _, name := range ThemeNames() {
		options = append(options, huh.NewOption(GetTheme(name).Name, string(name)))
	}

	s.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Theme").
			Options(options...).
			Value(&s.selected),
	)).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 10)

	initHuhForm(s.form)
	s.initialized = true
	return s
}

// =============================================================================
// RemapState - State for the shortcut customization modal
// =============================================================================

// ActionOption pairs a display label with an action identifier
type ActionOption struct {
	Label string
	Value string
}

// RemapState drives shortcut remapping in two phases: pick an action with
// a huh select, then capture the replacement chord from the next keypress.
// The chord capture itself happens at the app layer, which normalizes the
// keypress and binds it directly.
type RemapState struct {
	form        *huh.Form
	initialized bool
	action      string
	Capturing   bool
}

func (*RemapState) modalState() {}

func (s *RemapState) Title() string { return "Customize Shortcut" }

func (s *RemapState) Help() string {
	if s.Capturing {
		return "Press the new key combination, Esc to cancel"
	}
	return "↑/↓ to select, Enter to continue, Esc to cancel"
}

func (s *RemapState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())

	if s.Capturing {
		prompt := lipgloss.NewStyle().
			Foreground(ColorText).
			Render("Rebinding: ") +
			lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true).
				Render(s.action)
		waiting := StatusScanningStyle.Render("waiting for keypress...")
		return lipgloss.JoinVertical(lipgloss.Left, title, prompt, waiting, help)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *RemapState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if s.Capturing {
		// The app layer consumes keypresses during capture
		return s, nil
	}
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, &s.initialized, msg)
	return s, cmd
}

// Action returns the action identifier chosen in the form
func (s *RemapState) Action() string {
	return s.action
}

// BeginCapture moves the modal into its chord capture phase
func (s *RemapState) BeginCapture() {
	s.Capturing = true
}

// NewRemapState creates the shortcut customization modal
func NewRemapState(actions []ActionOption) *RemapState {
	s := &RemapState{}

	options := make([]huh.Option[string], 0, len(actions))
	for _, a := range actions {
		options = append(options, huh.NewOption(a.Label, a.Value))
	}
	if len(actions) > 0 {
		s.action = actions[0].Value
	}

	s.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Action").
			Description("Pick the operation to rebind").
			Options(options...).
			Height(ModalMaxVisibleRows).
			Filtering(true).
			Value(&s.action),
	)).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 10)

	initHuhForm(s.form)
	s.initialized = true
	return s
}

// =============================================================================
// PaletteState - State for the add-widget palette (edit mode)
// =============================================================================

type PaletteState struct {
	form        *huh.Form
	initialized bool
	selected    string
}

func (*PaletteState) modalState() {}

func (s *PaletteState) Title() string { return "Add Widget" }

func (s *PaletteState) Help() string {
	return "↑/↓ to select, Enter to add, Esc to cancel"
}

func (s *PaletteState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *PaletteState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, &s.initialized, msg)
	return s, cmd
}

// Selected returns the chosen widget type identifier
func (s *PaletteState) Selected() string {
	return s.selected
}

// NewPaletteState creates the widget palette from the available types
func NewPaletteState(types []ActionOption) *PaletteState {
	s := &PaletteState{}

	options := make([]huh.Option[string], 0, len(types))
	for _, t := range types {
		options = append(options, huh.NewOption(t.Label, t.Value))
	}
	if len(types) > 0 {
		s.selected = types[0].Value
	}

	s.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Widget").
			Options(options...).
			Value(&s.selected),
	)).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 10)

	initHuhForm(s.form)
	s.initialized = true
	return s
}
