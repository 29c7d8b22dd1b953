package ports

import "context"

// MetricsExporter exports activity metrics to an external observability
// system.
type MetricsExporter interface {
	// SessionRecorded reports one completed session.
	SessionRecorded(ctx context.Context, style string, durationMinutes int)
	// ReminderFired reports one dispatched reminder notification.
	ReminderFired(ctx context.Context)
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}
