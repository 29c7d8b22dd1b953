package otel

import "context"

// NoOpExporter is a metrics exporter that does nothing.
type NoOpExporter struct{}

// NewNoOpExporter creates a new no-op exporter for graceful degradation.
func NewNoOpExporter() *NoOpExporter {
	return &NoOpExporter{}
}

func (e *NoOpExporter) SessionRecorded(ctx context.Context, style string, durationMinutes int) {}

func (e *NoOpExporter) ReminderFired(ctx context.Context) {}

func (e *NoOpExporter) Close(ctx context.Context) error {
	return nil
}
