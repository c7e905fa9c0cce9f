// Package ui provides theme management and rendering for the dashboard.
// Themes define the color palette used throughout the UI, allowing users
// to customize the visual appearance of gridwatch.
package ui

import "charm.land/lipgloss/v2"

// Theme defines a complete color palette for the dashboard.
// Each theme provides colors for all UI elements, ensuring visual consistency.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the main accent color (used for focus, highlights, headers)
	Primary string
	// Secondary is the secondary accent color (used for chart fills, hints)
	Secondary string

	// Background colors
	Bg         string // Main background
	BgSelected string // Selected widget background (defaults to Primary if empty)

	// Text colors
	Text        string // Primary text
	TextMuted   string // Secondary/muted text
	TextInverse string // Text on colored backgrounds

	// Semantic colors
	Critical string // Critical alerts, lockdown banner
	Warning  string // Warning alerts
	Info     string // Informational alerts, toasts
	Success  string // Healthy defenses, completed scans
	Error    string // Error messages

	// Border colors
	Border      string // Default widget borders
	BorderFocus string // Selected widget borders (defaults to Primary if empty)

	// Chart colors
	ChartNormal string // Normal traffic series
	ChartAttack string // Attack traffic series
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeTron       ThemeName = "tron"
	ThemeMatrix     ThemeName = "matrix"
	ThemeCyberpunk  ThemeName = "cyberpunk"
	ThemeMonochrome ThemeName = "monochrome"
	ThemeSolarized  ThemeName = "solarized"
	ThemeLight      ThemeName = "light"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeTron

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeTron: {
		Name:        "TRON Classic",
		Primary:     "#00F0FF",
		Secondary:   "#0AB6D1",
		Bg:          "#04080F",
		BgSelected:  "#0A2A33",
		Text:        "#D6F7FF",
		TextMuted:   "#5C8A99",
		TextInverse: "#04080F",
		Critical:    "#FF3B3B",
		Warning:     "#FFB020",
		Info:        "#00F0FF",
		Success:     "#3BFFA8",
		Error:       "#FF3B3B",
		Border:      "#0B3B47",
		BorderFocus: "#00F0FF",
		ChartNormal: "#0AB6D1",
		ChartAttack: "#FF3B3B",
	},
	ThemeMatrix: {
		Name:        "Matrix Green",
		Primary:     "#00FF41",
		Secondary:   "#00B32D",
		Bg:          "#020A02",
		BgSelected:  "#0A2A0A",
		Text:        "#C8FFC8",
		TextMuted:   "#4E8A4E",
		TextInverse: "#020A02",
		Critical:    "#FF5555",
		Warning:     "#CCFF33",
		Info:        "#00FF41",
		Success:     "#00FF41",
		Error:       "#FF5555",
		Border:      "#0E3B0E",
		BorderFocus: "#00FF41",
		ChartNormal: "#00B32D",
		ChartAttack: "#FF5555",
	},
	ThemeCyberpunk: {
		Name:        "Cyberpunk Pink",
		Primary:     "#FF2A93",
		Secondary:   "#9D4EFF",
		Bg:          "#0D0221",
		BgSelected:  "#2A0A3D",
		Text:        "#F5E6FF",
		TextMuted:   "#8E6AA8",
		TextInverse: "#0D0221",
		Critical:    "#FF3366",
		Warning:     "#FFD319",
		Info:        "#00E5FF",
		Success:     "#36F9C5",
		Error:       "#FF3366",
		Border:      "#3D1460",
		BorderFocus: "#FF2A93",
		ChartNormal: "#9D4EFF",
		ChartAttack: "#FF3366",
	},
	ThemeMonochrome: {
		Name:        "Monochrome",
		Primary:     "#E8E8E8",
		Secondary:   "#A0A0A0",
		Bg:          "#0A0A0A",
		BgSelected:  "#2E2E2E",
		Text:        "#E8E8E8",
		TextMuted:   "#6E6E6E",
		TextInverse: "#0A0A0A",
		Critical:    "#FFFFFF",
		Warning:     "#C0C0C0",
		Info:        "#A0A0A0",
		Success:     "#D0D0D0",
		Error:       "#FFFFFF",
		Border:      "#3A3A3A",
		BorderFocus: "#E8E8E8",
		ChartNormal: "#A0A0A0",
		ChartAttack: "#FFFFFF",
	},
	ThemeSolarized: {
		Name:        "Solarized",
		Primary:     "#268BD2",
		Secondary:   "#2AA198",
		Bg:          "#002B36",
		BgSelected:  "#073642",
		Text:        "#93A1A1",
		TextMuted:   "#586E75",
		TextInverse: "#002B36",
		Critical:    "#DC322F",
		Warning:     "#B58900",
		Info:        "#268BD2",
		Success:     "#859900",
		Error:       "#DC322F",
		Border:      "#073642",
		BorderFocus: "#268BD2",
		ChartNormal: "#2AA198",
		ChartAttack: "#DC322F",
	},
	ThemeLight: {
		Name:        "Light Mode",
		Primary:     "#0060A8",
		Secondary:   "#0891B2",
		Bg:          "#FFFFFF",
		BgSelected:  "#DBEAFE",
		Text:        "#1F2937",
		TextMuted:   "#6B7280",
		TextInverse: "#FFFFFF",
		Critical:    "#DC2626",
		Warning:     "#D97706",
		Info:        "#0891B2",
		Success:     "#16A34A",
		Error:       "#DC2626",
		Border:      "#D1D5DB",
		BorderFocus: "#0060A8",
		ChartNormal: "#0891B2",
		ChartAttack: "#DC2626",
	},
}

// ThemeNames returns a list of all available theme names in display order
func ThemeNames() []ThemeName {
	return []ThemeName{
		ThemeTron,
		ThemeMatrix,
		ThemeCyberpunk,
		ThemeMonochrome,
		ThemeSolarized,
		ThemeLight,
	}
}

// GetTheme returns a theme by name, defaulting to TRON Classic if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

// NextThemeName returns the theme that follows name in display order,
// wrapping around at the end. Unknown names restart the cycle.
func NextThemeName(name ThemeName) ThemeName {
	names := ThemeNames()
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

// currentTheme holds the active theme
var currentTheme = BuiltinThemes[DefaultTheme]

// currentThemeName holds the identifier of the active theme
var currentThemeName = DefaultTheme

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// CurrentThemeName returns the name of the current theme
func CurrentThemeName() ThemeName {
	return currentThemeName
}

// SetTheme sets the active theme and regenerates all styles
func SetTheme(name ThemeName) {
	currentTheme = GetTheme(name)
	if _, ok := BuiltinThemes[name]; ok {
		currentThemeName = name
	} else {
		currentThemeName = DefaultTheme
	}
	regenerateStyles()
}

// SetThemeByName sets the active theme by string name
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	// Update color variables
	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorMuted = lipgloss.Color(t.TextMuted)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorCritical = lipgloss.Color(t.Critical)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorInfo = lipgloss.Color(t.Info)
	ColorSuccess = lipgloss.Color(t.Success)
	ColorError = lipgloss.Color(t.Error)
	ColorChartNormal = lipgloss.Color(t.ChartNormal)
	ColorChartAttack = lipgloss.Color(t.ChartAttack)

	// Update header styles
	HeaderTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	// Update footer styles
	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	// Update widget panel styles
	WidgetStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	WidgetSelectedStyle = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ColorBorderFocus)

	WidgetTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(0, 1)

	WidgetValueStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	WidgetLabelStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	// Update severity styles
	SeverityCriticalStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorCritical)

	SeverityWarningStyle = lipgloss.NewStyle().
		Foreground(ColorWarning)

	SeverityInfoStyle = lipgloss.NewStyle().
		Foreground(ColorInfo)

	// Update status styles
	StatusOKStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSuccess)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	StatusScanningStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Italic(true)

	// Update toast styles
	ToastStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorInfo).
		Foreground(ColorText).
		Padding(0, 1)

	ToastFadedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Foreground(ColorTextMuted).
		Padding(0, 1)

	// Update modal styles
	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)

	ModalOptionStyle = lipgloss.NewStyle().
		Padding(0, 1)

	ModalSelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(lipgloss.Color(t.Text)).
		Bold(true).
		Padding(0, 1)

	// Update lockdown styles
	LockdownStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(ColorCritical).
		Foreground(ColorCritical).
		Bold(true).
		Padding(1, 3)

	// Update chart styles
	ChartNormalStyle = lipgloss.NewStyle().
		Foreground(ColorChartNormal)

	ChartAttackStyle = lipgloss.NewStyle().
		Foreground(ColorChartAttack)

	// Update edit mode styles
	EditBannerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTextInverse).
		Background(ColorWarning).
		Padding(0, 1)

	PlaceholderStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)
}
