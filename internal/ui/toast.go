package ui

import "time"

// Toast default durations
const (
	// ToastModeDuration is how long a view-mode change toast stays visible
	ToastModeDuration = 3 * time.Second

	// ToastActionDuration is how long shortcut and layout feedback stays visible
	ToastActionDuration = 2 * time.Second

	// ToastFadeDuration is the trailing portion of a toast's lifetime
	// rendered in the faded style
	ToastFadeDuration = 1 * time.Second
)

// Toast is a transient notification rendered on top of the dashboard.
// A zero Toast is inactive.
type Toast struct {
	message string
	shownAt time.Time
	ttl     time.Duration
}

// NewToast creates an empty, inactive toast
func NewToast() *Toast {
	return &Toast{}
}

// Show replaces the current toast with a new message. A new toast always
// restarts the clock, even for an identical message.
func (t *Toast) Show(message string, ttl time.Duration, now time.Time) {
	t.message = message
	t.shownAt = now
	t.ttl = ttl
}

// Clear dismisses the toast immediately
func (t *Toast) Clear() {
	t.message = ""
}

// Active reports whether the toast should still be rendered at now
func (t *Toast) Active(now time.Time) bool {
	if t.message == "" {
		return false
	}
	return now.Sub(t.shownAt) < t.ttl
}

// Message returns the current toast text, empty when inactive
func (t *Toast) Message() string {
	return t.message
}

// View renders the toast at now, returning "" when inactive. Toasts in
// their final ToastFadeDuration render with the faded style.
func (t *Toast) View(now time.Time) string {
	if !t.Active(now) {
		return ""
	}
	elapsed := now.Sub(t.shownAt)
	if t.ttl-elapsed <= ToastFadeDuration {
		return ToastFadedStyle.Render(t.message)
	}
	return ToastStyle.Render(t.message)
}
