package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// Header represents the top header bar
type Header struct {
	width     int
	uptime    string
	viewMode  string
	scanning  bool
	scanGlyph string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetUptime sets the uptime string to display
func (h *Header) SetUptime(uptime string) {
	h.uptime = uptime
}

// SetViewMode sets the active view mode label to display
func (h *Header) SetViewMode(mode string) {
	h.viewMode = mode
}

// SetScanning toggles the scan indicator
func (h *Header) SetScanning(scanning bool) {
	h.scanning = scanning
}

// SetScanFrame sets the animated glyph shown next to the scan indicator
func (h *Header) SetScanFrame(glyph string) {
	h.scanGlyph = glyph
}

// View renders the header
func (h *Header) View() string {
	titleText := " gridwatch"

	var rightText string
	if h.scanning {
		if h.scanGlyph != "" {
			rightText = h.scanGlyph + " "
		}
		rightText += "SCANNING... "
	}
	if h.viewMode != "" {
		rightText += "[" + h.viewMode + "] "
	}
	if h.uptime != "" {
		rightText += h.uptime + " "
	}

	paddingLen := h.width - len([]rune(titleText)) - len([]rune(rightText))
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := titleText + strings.Repeat(" ", paddingLen) + rightText

	return h.renderGradient(fullContent)
}

// parseHexColor parses a hex color string (e.g., "#00F0FF") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content with a theme-aware gradient background
// that fades from the primary accent into the main background color.
func (h *Header) renderGradient(content string) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)

	textColor := lipgloss.Color(theme.TextInverse)
	fadedTextColor := lipgloss.Color(theme.Text)

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		// Interpolation factor (0.0 to 1.0)
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		style := lipgloss.NewStyle().
			Background(bgColor).
			Bold(i < len(" gridwatch"))

		// Dark glyphs on the bright end of the gradient, light on the faded end
		if t < 0.35 {
			style = style.Foreground(textColor)
		} else {
			style = style.Foreground(fadedTextColor)
		}

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
