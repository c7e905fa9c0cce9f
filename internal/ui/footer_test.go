package ui

import (
	"strings"
	"testing"
)

func TestFooterDefaultBindings(t *testing.T) {
	f := NewFooter()
	f.SetWidth(120)
	out := f.View()

	for _, want := range []string{"F1", "help", "F2", "scan", "quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("footer missing %q", want)
		}
	}
}

func TestFooterSetBindingsReplacesHints(t *testing.T) {
	f := NewFooter()
	f.SetWidth(120)
	f.SetBindings([]KeyBinding{{Key: "Ctrl+J", Desc: "help"}})
	out := f.View()

	if !strings.Contains(out, "Ctrl+J") {
		t.Error("footer should render the supplied hint")
	}
	if strings.Contains(out, "F2") {
		t.Error("supplied hints should replace the defaults")
	}
}

func TestFooterEditModeBindings(t *testing.T) {
	f := NewFooter()
	f.SetWidth(120)
	f.SetContext(true, false, false)
	out := f.View()

	if !strings.Contains(out, "move") || !strings.Contains(out, "remove") {
		t.Error("edit mode footer should show layout editing hints")
	}
	if strings.Contains(out, "report") {
		t.Error("edit mode footer should not show the default hints")
	}
}

func TestFooterModalBindings(t *testing.T) {
	f := NewFooter()
	f.SetWidth(120)
	f.SetContext(false, true, false)
	out := f.View()

	if !strings.Contains(out, "confirm") || !strings.Contains(out, "close") {
		t.Error("modal footer should show navigation hints")
	}
}

func TestFooterLockdownBindings(t *testing.T) {
	f := NewFooter()
	f.SetWidth(120)
	f.SetContext(false, false, true)
	out := f.View()

	if !strings.Contains(out, "lockdown") {
		t.Error("lockdown footer should state that input is blocked")
	}
}
