package ui

import (
	"bytes"
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/mattn/go-runewidth"

	"github.com/gridwatch/gridwatch/internal/layout"
	"github.com/gridwatch/gridwatch/internal/simdata"
	"github.com/gridwatch/gridwatch/internal/viewmode"
)

// WidgetData carries the dashboard state that widget renderers draw from.
type WidgetData struct {
	Metrics        simdata.Metrics
	Alerts         []simdata.Alert
	Regions        []simdata.Region
	TrafficLabels  []string
	TrafficNormal  []int
	TrafficAttacks []int
	RawJSON        string
	Scanning       bool
	Density        viewmode.DataDensity
}

// alertRows returns how many feed entries to show for a density level
func alertRows(d viewmode.DataDensity) int {
	switch d {
	case viewmode.DensityLow:
		return 3
	case viewmode.DensityMaximum:
		return 8
	default:
		return 5
	}
}

// widgetTitles maps widget types to their panel titles
var widgetTitles = map[layout.WidgetType]string{
	layout.WidgetThreatMap:    "THREAT MAP",
	layout.WidgetAlerts:       "ALERT FEED",
	layout.WidgetMetrics:      "SYSTEM METRICS",
	layout.WidgetDefenses:     "DEFENSE STATUS",
	layout.WidgetNetworkChart: "NETWORK TRAFFIC",
	layout.WidgetQuickActions: "QUICK ACTIONS",
	layout.WidgetRawData:      "RAW TELEMETRY",
}

// WidgetTitle returns the panel title for a widget type, or the raw type
// string for types without a known title.
func WidgetTitle(t layout.WidgetType) string {
	if title, ok := widgetTitles[t]; ok {
		return title
	}
	return strings.ToUpper(string(t))
}

// RenderWidget renders one dashboard widget at the given width. Unknown
// widget types render as a placeholder panel rather than being dropped.
func RenderWidget(w layout.Widget, data WidgetData, width int, selected bool) string {
	var body string
	switch w.Type {
	case layout.WidgetMetrics:
		body = renderMetrics(data)
	case layout.WidgetAlerts:
		body = renderAlerts(data)
	case layout.WidgetThreatMap:
		body = renderThreatMap(data)
	case layout.WidgetNetworkChart:
		body = renderNetworkChart(data, width-BorderSize)
	case layout.WidgetDefenses:
		body = renderDefenses(data)
	case layout.WidgetQuickActions:
		body = renderQuickActions()
	case layout.WidgetRawData:
		body = renderRawData(data)
	default:
		body = PlaceholderStyle.Render("unavailable widget type: " + string(w.Type))
	}

	title := WidgetTitleStyle.Render(WidgetTitle(w.Type))
	if w.Expanded {
		title += WidgetLabelStyle.Render(" [expanded]")
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, body)

	style := WidgetStyle
	if selected {
		style = WidgetSelectedStyle
	}
	return style.Width(width - BorderSize).Render(content)
}

func renderMetrics(data WidgetData) string {
	m := data.Metrics

	levelStyle := StatusOKStyle
	if m.SecurityLevel < 97 {
		levelStyle = SeverityWarningStyle
	}

	lines := []string{
		WidgetLabelStyle.Render("Security    ") + levelStyle.Render(fmt.Sprintf("%d%%", m.SecurityLevel)),
		WidgetLabelStyle.Render("Blocked     ") + WidgetValueStyle.Render(fmt.Sprintf("%d", m.ThreatsBlocked)),
		WidgetLabelStyle.Render("Operators   ") + WidgetValueStyle.Render(fmt.Sprintf("%d", m.ActiveUsers)),
	}
	if data.Density != viewmode.DensityLow {
		lines = append(lines,
			WidgetLabelStyle.Render("Critical    ")+SeverityCriticalStyle.Render(fmt.Sprintf("%d", m.CriticalAlerts)),
			WidgetLabelStyle.Render("Defenses    ")+WidgetValueStyle.Render(m.DefensesActive),
		)
	}
	return strings.Join(lines, "\n")
}

func renderAlerts(data WidgetData) string {
	if len(data.Alerts) == 0 {
		return PlaceholderStyle.Render("no alerts")
	}

	max := alertRows(data.Density)
	var lines []string
	for i, a := range data.Alerts {
		if i >= max {
			break
		}
		var sev string
		switch a.Severity {
		case simdata.SeverityCritical:
			sev = SeverityCriticalStyle.Render("CRIT")
		case simdata.SeverityWarning:
			sev = SeverityWarningStyle.Render("WARN")
		default:
			sev = SeverityInfoStyle.Render("INFO")
		}
		lines = append(lines, sev+" "+WidgetValueStyle.Render(a.Title))
		if data.Density == viewmode.DensityMaximum && a.Source != "" {
			lines = append(lines, WidgetLabelStyle.Render("     "+a.Source+" -> "+a.Target))
		}
	}
	if len(data.Alerts) > max {
		lines = append(lines, WidgetLabelStyle.Render(fmt.Sprintf("(+%d more)", len(data.Alerts)-max)))
	}
	return strings.Join(lines, "\n")
}

func renderThreatMap(data WidgetData) string {
	if len(data.Regions) == 0 {
		return PlaceholderStyle.Render("no region data")
	}

	var lines []string
	for _, r := range data.Regions {
		bar := threatBar(r.Count, 10)
		name := runewidth.FillRight(r.Name, 14)
		lines = append(lines, WidgetLabelStyle.Render(name)+bar+WidgetValueStyle.Render(fmt.Sprintf(" %d", r.Count)))
	}
	return strings.Join(lines, "\n")
}

// threatBar renders a fixed-width bar whose filled portion scales with count
func threatBar(count, width int) string {
	filled := count
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	if count >= width {
		return SeverityCriticalStyle.Render(bar)
	}
	if count >= width/2 {
		return SeverityWarningStyle.Render(bar)
	}
	return ChartNormalStyle.Render(bar)
}

// sparkGlyphs are the eighth-block characters used for traffic sparklines
var sparkGlyphs = []rune("▁▂▃▄▅▆▇█")

// sparkline renders values as a row of block glyphs scaled to the series max
func sparkline(values []int, width int) string {
	if len(values) == 0 {
		return ""
	}
	if width > 0 && len(values) > width {
		values = values[len(values)-width:]
	}
	max := 1
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	var b strings.Builder
	for _, v := range values {
		idx := v * (len(sparkGlyphs) - 1) / max
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(sparkGlyphs[idx])
	}
	return b.String()
}

func renderNetworkChart(data WidgetData, width int) string {
	if len(data.TrafficNormal) == 0 {
		return PlaceholderStyle.Render("no traffic data")
	}

	normal := ChartNormalStyle.Render(sparkline(data.TrafficNormal, width-9))
	attacks := ChartAttackStyle.Render(sparkline(data.TrafficAttacks, width-9))

	lines := []string{
		WidgetLabelStyle.Render("normal  ") + normal,
		WidgetLabelStyle.Render("attacks ") + attacks,
	}
	if data.Density == viewmode.DensityMaximum && len(data.TrafficLabels) > 0 {
		span := data.TrafficLabels[0] + " - " + data.TrafficLabels[len(data.TrafficLabels)-1]
		lines = append(lines, WidgetLabelStyle.Render(span))
	}
	return strings.Join(lines, "\n")
}

// defenseSystems are the layers reported by the defense status widget
var defenseSystems = []string{"Firewall", "Intrusion Detection", "Encryption", "Access Control"}

func renderDefenses(data WidgetData) string {
	var lines []string
	for _, name := range defenseSystems {
		status := StatusOKStyle.Render("ACTIVE")
		if data.Scanning && name == "Intrusion Detection" {
			status = StatusScanningStyle.Render("SCANNING")
		}
		lines = append(lines, WidgetLabelStyle.Render(runewidth.FillRight(name, 20))+status)
	}
	return strings.Join(lines, "\n")
}

func renderQuickActions() string {
	actions := []KeyBinding{
		{Key: "F2", Desc: "Scan network"},
		{Key: "b", Desc: "Block threats"},
		{Key: "F11", Desc: "Emergency lockdown"},
		{Key: "ctrl+s", Desc: "Save report"},
	}
	var lines []string
	for _, a := range actions {
		lines = append(lines, FooterKeyStyle.Render(runewidth.FillRight(a.Key, 7))+WidgetLabelStyle.Render(a.Desc))
	}
	return strings.Join(lines, "\n")
}

func renderRawData(data WidgetData) string {
	if data.RawJSON == "" {
		return PlaceholderStyle.Render("no telemetry")
	}
	return HighlightJSON(data.RawJSON)
}

// HighlightJSON applies syntax highlighting to a JSON payload using chroma
func HighlightJSON(payload string) string {
	lexer := lexers.Get("json")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, payload)
	if err != nil {
		return payload
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return payload
	}

	return buf.String()
}
