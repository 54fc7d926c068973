// Package notification abstracts the transient success/failure toasts
// of the registration surfaces. The core only decides that a
// notification is warranted, never how it renders.
package notification

import "go.uber.org/zap"

type Notifier interface {
	Success(title, message string)
	Error(title, message string)
}

// LogNotifier renders notifications to the log, for headless drivers
// like the registration kiosk.
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{
		log: log,
	}
}

func (n *LogNotifier) Success(title, message string) {
	n.log.Info(title, zap.String("detail", message))
}

func (n *LogNotifier) Error(title, message string) {
	n.log.Warn(title, zap.String("detail", message))
}
