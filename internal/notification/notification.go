// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/gridwatch/gridwatch/internal/logger"
)

// Send sends a desktop notification with the given title and message.
// On macOS, it uses terminal-notifier or AppleScript.
// On Linux, it uses D-Bus or notify-send.
// On Windows, it uses the Windows Runtime COM API.
func Send(title, message string) error {
	logger.Log("Notification: Sending notification - title=%q, message=%q", title, message)
	// Use empty string for icon - beeep handles platform defaults
	err := beeep.Notify(title, message, "")
	if err != nil {
		logger.Log("Notification: Failed to send notification: %v", err)
	}
	return err
}

// CriticalAlert sends a notification for a critical security alert.
func CriticalAlert(title string) error {
	return Send("gridwatch", "CRITICAL: "+title)
}

// LockdownEngaged sends a notification that emergency lockdown was triggered.
func LockdownEngaged() error {
	return Send("gridwatch", "Emergency lockdown engaged")
}
