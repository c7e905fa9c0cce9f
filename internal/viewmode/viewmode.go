// Package viewmode implements the dashboard's view-mode profiles and the
// controller that switches between them.
//
// A profile bundles the cross-cutting display parameters of the dashboard:
// data density, animation speed, refresh cadence, and which panel groups are
// visible. The registry is fixed at three named profiles; switching to an
// unknown name is a silent no-op.
package viewmode

import (
	"time"

	"github.com/gridwatch/gridwatch/internal/logger"
)

// DataDensity controls how much detail data-heavy panels render.
type DataDensity string

const (
	DensityLow     DataDensity = "low"
	DensityHigh    DataDensity = "high"
	DensityMaximum DataDensity = "maximum"
)

// AnimationLevel selects the animation speed tier.
type AnimationLevel string

const (
	AnimationMinimal  AnimationLevel = "minimal"
	AnimationModerate AnimationLevel = "moderate"
	AnimationFull     AnimationLevel = "full"
)

// Duration returns the animation cycle duration for the tier.
// Tiers map to fixed durations: minimal=0.5s, moderate=1s, full=2s.
func (l AnimationLevel) Duration() time.Duration {
	switch l {
	case AnimationMinimal:
		return 500 * time.Millisecond
	case AnimationModerate:
		return time.Second
	case AnimationFull:
		return 2 * time.Second
	default:
		return time.Second
	}
}

// Visibility holds the per-profile panel group visibility flags.
type Visibility struct {
	RawData bool
	Charts  bool
	Alerts  bool
	Metrics bool
}

// Profile is an immutable view-mode definition.
type Profile struct {
	Name            string
	DisplayName     string
	Description     string
	DataDensity     DataDensity
	AnimationLevel  AnimationLevel
	RefreshInterval time.Duration
	Visibility      Visibility
}

// Registered mode names.
const (
	ModeOperator  = "operator"
	ModeExecutive = "executive"
	ModeTechnical = "technical"
)

// DefaultMode is the mode the dashboard starts in.
const DefaultMode = ModeOperator

// modeOrder is the cycle order used by the toggle-view-mode shortcut.
var modeOrder = []string{ModeOperator, ModeExecutive, ModeTechnical}

// registry is the fixed mapping of mode name to profile.
var registry = map[string]Profile{
	ModeOperator: {
		Name:            ModeOperator,
		DisplayName:     "Operator",
		Description:     "Full view for continuous monitoring",
		DataDensity:     DensityHigh,
		AnimationLevel:  AnimationMinimal,
		RefreshInterval: time.Second,
		Visibility:      Visibility{RawData: true, Charts: true, Alerts: true, Metrics: true},
	},
	ModeExecutive: {
		Name:            ModeExecutive,
		DisplayName:     "Executive",
		Description:     "Simplified view with key KPIs",
		DataDensity:     DensityLow,
		AnimationLevel:  AnimationModerate,
		RefreshInterval: 30 * time.Second,
		Visibility:      Visibility{RawData: false, Charts: true, Alerts: false, Metrics: true},
	},
	ModeTechnical: {
		Name:            ModeTechnical,
		DisplayName:     "Technical",
		Description:     "Detailed view for deep analysis",
		DataDensity:     DensityMaximum,
		AnimationLevel:  AnimationFull,
		RefreshInterval: 500 * time.Millisecond,
		Visibility:      Visibility{RawData: true, Charts: true, Alerts: true, Metrics: true},
	},
}

// Lookup returns the profile for a mode name.
func Lookup(name string) (Profile, bool) {
	p, ok := registry[name]
	return p, ok
}

// Names returns the registered mode names in cycle order.
func Names() []string {
	names := make([]string, len(modeOrder))
	copy(names, modeOrder)
	return names
}

// AutoDetectMode returns the suggested mode for the given local hour:
// operator during business hours (9 through 17), technical otherwise.
// Callers decide whether to apply the suggestion.
func AutoDetectMode(hour int) string {
	if hour >= 9 && hour <= 17 {
		return ModeOperator
	}
	return ModeTechnical
}

// AutoDetectNow returns the suggested mode for the current local time.
func AutoDetectNow() string {
	return AutoDetectMode(time.Now().Hour())
}

// Applier receives a profile's settings when a mode is applied. The
// controller never reaches into the UI directly; the application shell
// implements this interface and projects the settings onto its panels.
type Applier interface {
	// ApplyVisibility shows or hides the four panel groups.
	ApplyVisibility(v Visibility)
	// ApplyAnimation sets the animation cycle duration for all animated
	// elements of the dashboard.
	ApplyAnimation(d time.Duration)
	// ApplyRefresh replaces the data refresh cadence. Implementations
	// cancel the previous tick schedule; a tick already in flight may
	// still be delivered once.
	ApplyRefresh(d time.Duration)
	// ModeChanged is called after the settings took effect so the shell
	// can update its mode indicator and announce the change.
	ModeChanged(p Profile)
}

// Controller owns the active mode and applies profiles to the UI.
// It is session-lived: created at startup and never destroyed.
type Controller struct {
	active  string
	applier Applier
}

// NewController creates a controller starting in the given mode, falling
// back to DefaultMode when the name is unknown or empty. The starting
// profile is applied immediately when an applier is present.
func NewController(start string, applier Applier) *Controller {
	if _, ok := registry[start]; !ok {
		start = DefaultMode
	}
	c := &Controller{active: start, applier: applier}
	c.apply(registry[start])
	return c
}

// Active returns the active mode name.
func (c *Controller) Active() string {
	return c.active
}

// ActiveProfile returns the active profile.
func (c *Controller) ActiveProfile() Profile {
	return registry[c.active]
}

// SwitchMode switches to the named mode and applies its profile.
// Unknown names leave the active mode unchanged and return false.
// Switching to the already-active mode re-applies it.
func (c *Controller) SwitchMode(name string) bool {
	p, ok := registry[name]
	if !ok {
		logger.Debug("ViewMode: ignoring switch to unknown mode %q", name)
		return false
	}
	c.active = name
	c.apply(p)
	logger.Info("ViewMode: switched to %s", name)
	return true
}

// NextMode returns the mode that follows the active one in cycle order.
func (c *Controller) NextMode() string {
	for i, name := range modeOrder {
		if name == c.active {
			return modeOrder[(i+1)%len(modeOrder)]
		}
	}
	return DefaultMode
}

// apply pushes the profile's settings through the applier. The three
// setting groups are independent; their order does not matter for
// correctness.
func (c *Controller) apply(p Profile) {
	if c.applier == nil {
		return
	}
	c.applier.ApplyVisibility(p.Visibility)
	c.applier.ApplyAnimation(p.AnimationLevel.Duration())
	c.applier.ApplyRefresh(p.RefreshInterval)
	c.applier.ModeChanged(p)
}
