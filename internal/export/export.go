// Package export writes dashboard state to timestamped files in the
// working directory: data exports, configuration exports, security
// reports, and plain-text dashboard snapshots. File names carry a
// millisecond timestamp suffix so repeated exports never collide.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gridwatch/gridwatch/internal/errors"
	"github.com/gridwatch/gridwatch/internal/layout"
	"github.com/gridwatch/gridwatch/internal/logger"
	"github.com/gridwatch/gridwatch/internal/shortcut"
	"github.com/gridwatch/gridwatch/internal/simdata"
)

// DataExport is the payload of the export-data action: the current
// in-memory telemetry plus the export timestamp.
type DataExport struct {
	Metrics   simdata.Metrics `json:"metrics"`
	Alerts    []simdata.Alert `json:"alerts"`
	Timestamp string          `json:"timestamp"`
}

// ConfigExport is the payload of the configuration export: the current
// preferences and the effective shortcut table.
type ConfigExport struct {
	Theme      string             `json:"theme"`
	ViewMode   string             `json:"viewMode"`
	Layout     layout.State       `json:"layout"`
	Shortcuts  []shortcut.Binding `json:"shortcuts"`
	ExportDate string             `json:"exportDate"`
}

// Report is the security report produced by the save-report action.
type Report struct {
	Timestamp    string          `json:"timestamp"`
	Metrics      simdata.Metrics `json:"metrics"`
	RecentAlerts []simdata.Alert `json:"recentAlerts"`
	SystemStatus string          `json:"systemStatus"`
	CurrentTheme string          `json:"currentTheme"`
	ViewMode     string          `json:"viewMode"`
}

// reportAlertCount is how many feed entries a report includes.
const reportAlertCount = 5

// BuildReport assembles a report from the current dashboard state.
func BuildReport(m simdata.Metrics, alerts []simdata.Alert, theme, viewMode string, now time.Time) Report {
	recent := alerts
	if len(recent) > reportAlertCount {
		recent = recent[:reportAlertCount]
	}
	return Report{
		Timestamp:    now.Format(time.RFC3339),
		Metrics:      m,
		RecentAlerts: recent,
		SystemStatus: "OPTIMAL",
		CurrentTheme: theme,
		ViewMode:     viewMode,
	}
}

// stampedName builds a file name with a millisecond timestamp suffix.
func stampedName(prefix, ext string, now time.Time) string {
	return fmt.Sprintf("%s-%d.%s", prefix, now.UnixMilli(), ext)
}

// writeJSON marshals v with indentation and writes it under dir.
func writeJSON(dir, name string, v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", errors.E(errors.Op("export.Write"), errors.KindExport, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errors.ExportWriteFailed(path, err)
	}
	logger.Info("Export: wrote %s (%d bytes)", path, len(data))
	return path, nil
}

// WriteData writes a data export file and returns its path.
func WriteData(dir string, m simdata.Metrics, alerts []simdata.Alert, now time.Time) (string, error) {
	payload := DataExport{
		Metrics:   m,
		Alerts:    alerts,
		Timestamp: now.Format(time.RFC3339),
	}
	return writeJSON(dir, stampedName("gridwatch-export", "json", now), payload)
}

// WriteConfig writes a configuration export file and returns its path.
func WriteConfig(dir string, cfg ConfigExport, now time.Time) (string, error) {
	cfg.ExportDate = now.Format(time.RFC3339)
	return writeJSON(dir, stampedName("gridwatch-config", "json", now), cfg)
}

// WriteReport writes a security report file and returns its path along
// with the marshalled payload, so callers can also place it on the
// clipboard.
func WriteReport(dir string, r Report, now time.Time) (string, []byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", nil, errors.E(errors.Op("export.Report"), errors.KindExport, err)
	}
	path := filepath.Join(dir, stampedName("gridwatch-report", "json", now))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", nil, errors.ExportWriteFailed(path, err)
	}
	logger.Info("Export: wrote report %s", path)
	return path, data, nil
}

// WriteSnapshot writes the rendered dashboard frame as plain text. This
// is the terminal counterpart of printing the dashboard.
func WriteSnapshot(dir, frame string, now time.Time) (string, error) {
	path := filepath.Join(dir, stampedName("gridwatch-dashboard", "txt", now))
	if err := os.WriteFile(path, []byte(frame), 0644); err != nil {
		return "", errors.ExportWriteFailed(path, err)
	}
	logger.Info("Export: wrote snapshot %s", path)
	return path, nil
}
