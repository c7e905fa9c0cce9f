package ui

import "charm.land/lipgloss/v2"

// Color palette - TRON Classic cyan theme
var (
	ColorPrimary     = lipgloss.Color("#00F0FF") // Cyan
	ColorSecondary   = lipgloss.Color("#0AB6D1") // Teal
	ColorMuted       = lipgloss.Color("#5C8A99") // Dim cyan-gray
	ColorBorder      = lipgloss.Color("#0B3B47") // Dark teal
	ColorBorderFocus = lipgloss.Color("#00F0FF") // Cyan when selected
	ColorBg          = lipgloss.Color("#04080F") // Near-black background
	ColorText        = lipgloss.Color("#D6F7FF") // Light cyan text
	ColorTextMuted   = lipgloss.Color("#5C8A99") // Muted text
	ColorTextInverse = lipgloss.Color("#04080F") // Dark text for light backgrounds
	ColorCritical    = lipgloss.Color("#FF3B3B") // Red for critical alerts
	ColorWarning     = lipgloss.Color("#FFB020") // Amber for warnings
	ColorInfo        = lipgloss.Color("#00F0FF") // Cyan for info
	ColorSuccess     = lipgloss.Color("#3BFFA8") // Green for healthy status
	ColorError       = lipgloss.Color("#FF3B3B") // Red for errors
	ColorChartNormal = lipgloss.Color("#0AB6D1") // Normal traffic bars
	ColorChartAttack = lipgloss.Color("#FF3B3B") // Attack traffic bars
)

// Header styles
var (
	HeaderTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorText)
)

// Footer styles
var (
	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Widget panel styles
var (
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
)

// Severity styles for the alert feed
var (
	SeverityCriticalStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorCritical)

	SeverityWarningStyle = lipgloss.NewStyle().
				Foreground(ColorWarning)

	SeverityInfoStyle = lipgloss.NewStyle().
				Foreground(ColorInfo)
)

// Status styles
var (
	StatusOKStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	StatusScanningStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Italic(true)
)

// Toast styles
var (
	ToastStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorInfo).
			Foreground(ColorText).
			Padding(0, 1)

	// ToastFadedStyle is used during the fade phase before a toast expires
	ToastFadedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Foreground(ColorTextMuted).
			Padding(0, 1)
)

// Modal styles
var (
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

	// ModalSelectedStyle uses the theme's BgSelected color - kept in sync by regenerateStyles()
	ModalSelectedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(BuiltinThemes[DefaultTheme].GetBgSelected())).
				Foreground(lipgloss.Color(BuiltinThemes[DefaultTheme].Text)).
				Bold(true).
				Padding(0, 1)
)

// Lockdown overlay style
var (
	LockdownStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(ColorCritical).
			Foreground(ColorCritical).
			Bold(true).
			Padding(1, 3)
)

// Chart styles (updated by regenerateStyles)
var (
	ChartNormalStyle = lipgloss.NewStyle().
				Foreground(ColorChartNormal)

	ChartAttackStyle = lipgloss.NewStyle().
				Foreground(ColorChartAttack)
)

// Edit mode styles
var (
	EditBannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorTextInverse).
			Background(ColorWarning).
			Padding(0, 1)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Italic(true)
)
