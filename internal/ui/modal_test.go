package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	default:
		return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
	}
}

func TestModalVisibility(t *testing.T) {
	m := NewModal()
	if m.IsVisible() {
		t.Error("new modal should be hidden")
	}

	m.Show(NewConfirmResetLayoutState())
	if !m.IsVisible() {
		t.Error("modal should be visible after Show")
	}

	m.SetError("boom")
	m.Hide()
	if m.IsVisible() || m.GetError() != "" {
		t.Error("Hide should clear state and error")
	}
}

func TestConfirmStateNavigation(t *testing.T) {
	s := NewConfirmLockdownState()
	if s.Accepted() {
		t.Error("confirm should default to the safe option")
	}

	next, _ := s.Update(keyPress("down"))
	s = next.(*ConfirmState)
	if !s.Accepted() {
		t.Error("down should select the destructive option")
	}

	// Clamp at list end
	next, _ = s.Update(keyPress("down"))
	s = next.(*ConfirmState)
	if s.SelectedIndex != 1 {
		t.Errorf("selection should clamp, got %d", s.SelectedIndex)
	}

	next, _ = s.Update(keyPress("up"))
	s = next.(*ConfirmState)
	if s.Accepted() {
		t.Error("up should return to the safe option")
	}
}

func TestConfirmRemoveWidgetShowsSubject(t *testing.T) {
	s := NewConfirmRemoveWidgetState("ALERT FEED")
	if !strings.Contains(s.Render(), "ALERT FEED") {
		t.Error("remove confirmation should name the widget")
	}
}

func TestModalViewRendersError(t *testing.T) {
	m := NewModal()
	m.Show(NewConfirmResetLayoutState())
	m.SetError("persist failed")
	out := m.View(100, 40)
	if !strings.Contains(out, "persist failed") {
		t.Error("modal view should include the error message")
	}
}

func TestHelpStateRendersSections(t *testing.T) {
	s := NewHelpState([]HelpSection{
		{Title: "General", Shortcuts: []HelpShortcut{{Key: "F1", Desc: "Show help"}}},
		{Title: "Exports", Shortcuts: []HelpShortcut{{Key: "Ctrl+E", Desc: "Export data"}}},
	})
	out := s.Render()
	for _, want := range []string{"General", "F1", "Show help", "Keyboard Shortcuts"} {
		if !strings.Contains(out, want) {
			t.Errorf("help modal missing %q", want)
		}
	}
}

func TestMetricsDetailStateRender(t *testing.T) {
	s := NewMetricsDetailState([]HelpShortcut{
		{Key: "Security level", Desc: "98%"},
		{Key: "Threats blocked", Desc: "247"},
	}, "Uptime: 15d 7h 32m")
	out := s.Render()
	for _, want := range []string{"Security level", "98%", "Uptime: 15d 7h 32m"} {
		if !strings.Contains(out, want) {
			t.Errorf("metrics modal missing %q", want)
		}
	}
}

func TestThemeFormStateSelection(t *testing.T) {
	s := NewThemeFormState(ThemeMatrix)
	if s.Selected() != ThemeMatrix {
		t.Errorf("theme form should preselect current theme, got %q", s.Selected())
	}
}

func TestRemapStatePhases(t *testing.T) {
	s := NewRemapState([]ActionOption{
		{Label: "Scan network", Value: "scanNetwork"},
		{Label: "Show help", Value: "showHelp"},
	})
	if s.Action() != "scanNetwork" {
		t.Errorf("remap should preselect the first action, got %q", s.Action())
	}
	if s.Capturing {
		t.Error("remap should start in select phase")
	}

	s.BeginCapture()
	if !s.Capturing {
		t.Error("BeginCapture should enter capture phase")
	}
	if !strings.Contains(s.Render(), "waiting for keypress") {
		t.Error("capture phase should prompt for a keypress")
	}
}

func TestPaletteStateSelection(t *testing.T) {
	s := NewPaletteState([]ActionOption{
		{Label: "THREAT MAP", Value: "threatMap"},
		{Label: "ALERT FEED", Value: "alerts"},
	})
	if s.Selected() != "threatMap" {
		t.Errorf("palette should preselect the first type, got %q", s.Selected())
	}
}
