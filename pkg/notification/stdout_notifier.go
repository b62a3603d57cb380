package notification

import (
	"fmt"
	"io"
	"os"
)

// StdoutNotifier prints notifications instead of showing them, for
// machines without a notification daemon.
type StdoutNotifier struct {
	w io.Writer
}

// NewStdoutNotifier creates a new stdout notifier
func NewStdoutNotifier() *StdoutNotifier {
	return &StdoutNotifier{w: os.Stdout}
}

// NewWriterNotifier creates a notifier that prints to w.
func NewWriterNotifier(w io.Writer) *StdoutNotifier {
	return &StdoutNotifier{w: w}
}

// Send prints the notification
func (n *StdoutNotifier) Send(notification Notification) error {
	_, err := fmt.Fprintf(n.w, "[%s] %s: %s\n",
		notification.Time.Format("15:04:05"),
		notification.Title,
		notification.Message)
	return err
}
