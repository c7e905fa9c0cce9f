// Package simdata generates the dashboard's simulated security telemetry:
// headline metrics, a rotating alert feed, threat map regions, and traffic
// series for the network chart. Everything is random, local, and fake; the
// package exists so the rest of the dashboard has something to render.
package simdata

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gridwatch/gridwatch/internal/logger"
)

// Severity classifies an alert.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Alert is one entry in the alert feed.
type Alert struct {
	ID       int64
	Severity Severity
	Title    string
	Source   string
	Target   string
	Location string
	Time     time.Time
}

// Metrics are the dashboard's headline numbers.
type Metrics struct {
	CriticalAlerts int
	ThreatsBlocked int
	ActiveUsers    int
	DefensesActive string
	SecurityLevel  int
}

// Region is a cluster of threat points on the world map.
type Region struct {
	Name  string
	X, Y  int // percent coordinates on the map
	Count int
}

// MaxAlerts caps the alert feed length; older entries roll off.
const MaxAlerts = 10

// ScanDuration is how long a simulated network scan takes to complete.
const ScanDuration = 3 * time.Second

// alertTemplates are the rotating alert headlines.
var alertTemplates = []struct {
	severity Severity
	title    string
}{
	{SeverityWarning, "Unauthorized access attempt"},
	{SeverityInfo, "Firewall rules updated"},
	{SeverityCritical, "Malware detected"},
	{SeverityWarning, "Anomalous network behavior"},
}

var targets = []string{"Web Server", "Database", "Firewall", "VPN"}
var locations = []string{"China", "Russia", "USA", "Brazil", "Germany"}

// Service is the simulated data source. It is used exclusively from the
// UI update loop, so it carries no locking.
type Service struct {
	rng      *rand.Rand
	metrics  Metrics
	alerts   []Alert
	started  time.Time
	scanning bool
	nextID   int64
}

// New creates a service seeded from the clock.
func New() *Service {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed creates a service with a fixed seed, for reproducible tests.
func NewWithSeed(seed int64) *Service {
	s := &Service{
		rng: rand.New(rand.NewSource(seed)),
		metrics: Metrics{
			CriticalAlerts: 3,
			ThreatsBlocked: 247,
			ActiveUsers:    42,
			DefensesActive: "12/12",
			SecurityLevel:  98,
		},
		started: time.Now(),
		nextID:  1,
	}
	s.seedAlerts()
	return s
}

// seedAlerts fills the feed with the initial example entries.
func (s *Service) seedAlerts() {
	now := time.Now()
	seed := []Alert{
		{Severity: SeverityCritical, Title: "Intrusion attempt detected", Source: "192.168.1.100", Target: "Web Server", Location: "Russia", Time: now.Add(-2 * time.Minute)},
		{Severity: SeverityWarning, Title: "Suspicious user behavior", Source: "user: jsmith", Target: "Database", Location: "Internal", Time: now.Add(-5 * time.Minute)},
		{Severity: SeverityCritical, Title: "DDoS attack detected", Source: "Multiple IPs", Target: "Main firewall", Location: "China", Time: now.Add(-8 * time.Minute)},
		{Severity: SeverityInfo, Title: "Security update available", Source: "System", Target: "All hosts", Location: "Internal", Time: now.Add(-15 * time.Minute)},
	}
	for _, a := range seed {
		a.ID = s.nextID
		s.nextID++
		s.alerts = append(s.alerts, a)
	}
}

// Metrics returns the current headline metrics.
func (s *Service) Metrics() Metrics {
	return s.metrics
}

// Alerts returns a copy of the feed, newest first.
func (s *Service) Alerts() []Alert {
	out := make([]Alert, len(s.alerts))
	copy(out, s.alerts)
	return out
}

// RandomIP generates a random dotted-quad source address.
func (s *Service) RandomIP() string {
	return fmt.Sprintf("%d.%d.%d.%d",
		s.rng.Intn(255), s.rng.Intn(255), s.rng.Intn(255), s.rng.Intn(255))
}

// UpdateMetrics drifts the headline numbers the way a live SOC feed would.
func (s *Service) UpdateMetrics() {
	s.metrics.ThreatsBlocked += s.rng.Intn(3)
	s.metrics.ActiveUsers = 40 + s.rng.Intn(10)
	s.metrics.SecurityLevel = 95 + s.rng.Intn(5)
}

// NextAlert generates a new random alert, prepends it to the feed, and
// returns it. Critical alerts bump the critical counter.
func (s *Service) NextAlert() Alert {
	tmpl := alertTemplates[s.rng.Intn(len(alertTemplates))]
	a := Alert{
		ID:       s.nextID,
		Severity: tmpl.severity,
		Title:    tmpl.title,
		Source:   s.RandomIP(),
		Target:   targets[s.rng.Intn(len(targets))],
		Location: locations[s.rng.Intn(len(locations))],
		Time:     time.Now(),
	}
	s.nextID++
	s.push(a)
	if a.Severity == SeverityCritical {
		s.metrics.CriticalAlerts++
	}
	return a
}

// push prepends an alert and trims the feed to MaxAlerts.
func (s *Service) push(a Alert) {
	s.alerts = append([]Alert{a}, s.alerts...)
	if len(s.alerts) > MaxAlerts {
		s.alerts = s.alerts[:MaxAlerts]
	}
}

// Scanning reports whether a network scan is in flight.
func (s *Service) Scanning() bool {
	return s.scanning
}

// BeginScan arms the scan busy gate. It returns false when a scan is
// already running; the gate is the only mutual exclusion the scan needs
// since everything runs on the UI loop.
func (s *Service) BeginScan() bool {
	if s.scanning {
		return false
	}
	s.scanning = true
	logger.Info("SimData: network scan started")
	return true
}

// CompleteScan clears the busy gate and records the completion alert.
func (s *Service) CompleteScan() Alert {
	s.scanning = false
	a := Alert{
		ID:       s.nextID,
		Severity: SeverityInfo,
		Title:    "Network scan completed",
		Source:   "Automated system",
		Target:   "Entire network",
		Location: "Internal",
		Time:     time.Now(),
	}
	s.nextID++
	s.push(a)
	logger.Info("SimData: network scan completed")
	return a
}

// RaiseAlert records an externally triggered alert, such as the
// emergency lockdown banner entry. Critical alerts bump the counter.
func (s *Service) RaiseAlert(severity Severity, title, source, target, location string) Alert {
	a := Alert{
		ID:       s.nextID,
		Severity: severity,
		Title:    title,
		Source:   source,
		Target:   target,
		Location: location,
		Time:     time.Now(),
	}
	s.nextID++
	s.push(a)
	if a.Severity == SeverityCritical {
		s.metrics.CriticalAlerts++
	}
	return a
}

// BlockThreats simulates the block-threats quick action.
func (s *Service) BlockThreats() {
	s.metrics.ThreatsBlocked += 5
	if s.metrics.CriticalAlerts > 0 {
		s.metrics.CriticalAlerts--
	}
}

// Uptime renders the uptime clock. The epoch sits a fixed 15d 7h 32m
// before process start so the counter looks lived-in from the first frame.
func (s *Service) Uptime(now time.Time) string {
	epoch := s.started.Add(-(15*24*time.Hour + 7*time.Hour + 32*time.Minute))
	d := now.Sub(epoch)
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("Uptime: %dd %dh %dm", days, hours, minutes)
}

// ThreatRegions returns the fixed world-map threat clusters.
func (s *Service) ThreatRegions() []Region {
	return []Region{
		{Name: "north-america", X: 25, Y: 30, Count: 45},
		{Name: "south-america", X: 30, Y: 60, Count: 39},
		{Name: "europe", X: 50, Y: 30, Count: 67},
		{Name: "asia", X: 75, Y: 35, Count: 92},
		{Name: "africa", X: 55, Y: 50, Count: 28},
		{Name: "australia", X: 85, Y: 65, Count: 15},
	}
}

// TrafficSeries returns the network chart's sample series.
func (s *Service) TrafficSeries() (labels []string, normal, attacks []int) {
	labels = []string{"00:00", "04:00", "08:00", "12:00", "16:00", "20:00", "23:59"}
	normal = []int{45, 52, 48, 60, 55, 58, 50}
	attacks = []int{12, 19, 8, 25, 18, 22, 15}
	return labels, normal, attacks
}
