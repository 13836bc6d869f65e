// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/docdraft/docdraft/internal/logger"
)

// AppName is the title of every notification.
const AppName = "docdraft"

type notifier func(title, message string, icon any) error

var notify notifier = beeep.Notify

// SetNotifier replaces the function used to deliver notifications. Tests use
// it to avoid popping real notifications.
func SetNotifier(n func(title, message string, icon any) error) {
	notify = n
}

// ResetNotifier restores beeep as the notification backend.
func ResetNotifier() {
	notify = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	log := logger.WithComponent("notification")
	log.Debug("sending notification", "title", title)
	// An empty icon lets beeep use the platform default.
	err := notify(title, message, "")
	if err != nil {
		log.Warn("failed to send notification", "error", err)
	}
	return err
}

// DocumentReady announces that a draft for the named session is ready.
func DocumentReady(sessionTitle string) error {
	return Send(AppName, sessionTitle+" is ready")
}
