package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	serviceName    = "wellspring"
	serviceVersion = "1.0.0"
)

// Exporter exports activity metrics to an OTEL Collector.
type Exporter struct {
	provider       *sdkmetric.MeterProvider
	meter          metric.Meter
	sessionsTotal  metric.Int64Counter
	durationHist   metric.Int64Histogram
	remindersTotal metric.Int64Counter
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	sessionsTotal, err := meter.Int64Counter(
		"wellspring_sessions_total",
		metric.WithDescription("Completed wellness sessions recorded"),
		metric.WithUnit("{session}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sessions counter: %w", err)
	}

	durationHist, err := meter.Int64Histogram(
		"wellspring_session_duration_minutes",
		metric.WithDescription("Duration of recorded sessions"),
		metric.WithUnit("min"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration histogram: %w", err)
	}

	remindersTotal, err := meter.Int64Counter(
		"wellspring_reminders_fired_total",
		metric.WithDescription("Reminder notifications dispatched"),
		metric.WithUnit("{reminder}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating reminders counter: %w", err)
	}

	return &Exporter{
		provider:       provider,
		meter:          meter,
		sessionsTotal:  sessionsTotal,
		durationHist:   durationHist,
		remindersTotal: remindersTotal,
	}, nil
}

func (e *Exporter) SessionRecorded(ctx context.Context, style string, durationMinutes int) {
	attrs := metric.WithAttributes(attribute.String("style", style))
	e.sessionsTotal.Add(ctx, 1, attrs)
	e.durationHist.Record(ctx, int64(durationMinutes), attrs)
}

func (e *Exporter) ReminderFired(ctx context.Context) {
	e.remindersTotal.Add(ctx, 1)
}

// Close flushes pending metrics and shuts the provider down.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
