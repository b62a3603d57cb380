package notification

import (
	"errors"
	"os"
	"runtime"

	"github.com/gen2brain/beeep"
)

// ErrNoDisplay is returned on Linux when neither X11 nor Wayland is available.
var ErrNoDisplay = errors.New("no graphical session for desktop notifications")

// DesktopNotifier shows native desktop notifications.
type DesktopNotifier struct {
	icon string

	// notify is beeep.Notify; replaced in tests.
	notify func(title, message string, icon any) error
	getenv func(string) string
}

// NewDesktopNotifier creates a notifier that shows desktop notifications
// under the given application name.
func NewDesktopNotifier(appName, icon string) *DesktopNotifier {
	if appName != "" {
		beeep.AppName = appName
	}
	return &DesktopNotifier{
		icon:   icon,
		notify: beeep.Notify,
		getenv: os.Getenv,
	}
}

// Send shows the notification. It never blocks waiting for the user.
func (n *DesktopNotifier) Send(notification Notification) error {
	if runtime.GOOS == "linux" && n.getenv("DISPLAY") == "" && n.getenv("WAYLAND_DISPLAY") == "" {
		return ErrNoDisplay
	}
	return n.notify(notification.Title, notification.Message, n.icon)
}
