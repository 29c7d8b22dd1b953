// Package notify holds the notification sinks: delivery side effects for
// "reminder due" events.
package notify

import (
	"fmt"

	"github.com/verdantly/wellspring/internal/ports"
)

// LogNotifier writes reminder events to the logger. Always wired, so a run
// without subscribers still leaves a trace.
type LogNotifier struct {
	log ports.Logger
}

func NewLogNotifier(log ports.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) ReminderDue(activity string) {
	n.log.Debug(fmt.Sprintf("reminder due: %s", activity))
}

// Multi fans one event out to several sinks.
type Multi []ports.Notifier

func (m Multi) ReminderDue(activity string) {
	for _, n := range m {
		n.ReminderDue(activity)
	}
}
