package ui

import "testing"

func TestGetThemeKnown(t *testing.T) {
	theme := GetTheme(ThemeMatrix)
	if theme.Name != "Matrix Green" {
		t.Errorf("GetTheme(matrix).Name = %q", theme.Name)
	}
}

func TestGetThemeUnknownFallsBack(t *testing.T) {
	theme := GetTheme("does-not-exist")
	if theme.Name != BuiltinThemes[DefaultTheme].Name {
		t.Errorf("unknown theme should fall back to default, got %q", theme.Name)
	}
}

func TestThemeNamesCoversAllBuiltins(t *testing.T) {
	names := ThemeNames()
	if len(names) != len(BuiltinThemes) {
		t.Fatalf("ThemeNames() has %d entries, BuiltinThemes has %d", len(names), len(BuiltinThemes))
	}
	for _, name := range names {
		if _, ok := BuiltinThemes[name]; !ok {
			t.Errorf("ThemeNames() includes %q which is not a builtin", name)
		}
	}
}

func TestNextThemeNameCycles(t *testing.T) {
	names := ThemeNames()
	seen := map[ThemeName]bool{}
	current := names[0]
	for range names {
		seen[current] = true
		current = NextThemeName(current)
	}
	if current != names[0] {
		t.Errorf("cycle did not return to start, ended at %q", current)
	}
	if len(seen) != len(names) {
		t.Errorf("cycle visited %d themes, want %d", len(seen), len(names))
	}
}

func TestNextThemeNameUnknownRestartsCycle(t *testing.T) {
	if got := NextThemeName("bogus"); got != ThemeNames()[0] {
		t.Errorf("NextThemeName(bogus) = %q, want first theme", got)
	}
}

func TestSetThemeUpdatesCurrent(t *testing.T) {
	defer SetTheme(DefaultTheme)

	SetTheme(ThemeSolarized)
	if CurrentThemeName() != ThemeSolarized {
		t.Errorf("CurrentThemeName() = %q after SetTheme", CurrentThemeName())
	}
	if CurrentTheme().Name != "Solarized" {
		t.Errorf("CurrentTheme().Name = %q", CurrentTheme().Name)
	}
}

func TestSetThemeByNameUnknownFallsBack(t *testing.T) {
	defer SetTheme(DefaultTheme)

	SetThemeByName("nope")
	if CurrentThemeName() != DefaultTheme {
		t.Errorf("unknown theme name should leave the default active, got %q", CurrentThemeName())
	}
}

func TestThemeColorFallbacks(t *testing.T) {
	theme := Theme{Primary: "#123456"}
	if theme.GetBgSelected() != "#123456" {
		t.Errorf("GetBgSelected fallback = %q", theme.GetBgSelected())
	}
	if theme.GetBorderFocus() != "#123456" {
		t.Errorf("GetBorderFocus fallback = %q", theme.GetBorderFocus())
	}
}
