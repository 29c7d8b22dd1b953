package ports

// Notifier is the sink for "reminder due" events. Implementations own the
// delivery side effects (log line, SSE push); the scheduler only computes
// due times and dispatches.
type Notifier interface {
	ReminderDue(activity string)
}
