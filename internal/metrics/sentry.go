package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// SentryMetrics records compile metrics as Sentry spans. Without a configured
// client the spans are dropped by the SDK.
type SentryMetrics struct {
	enabled bool
}

// NewSentryMetrics creates a metrics client.
func NewSentryMetrics(enabled bool) *SentryMetrics {
	return &SentryMetrics{enabled: enabled}
}

// Init configures the Sentry client from a DSN. An empty DSN disables
// metrics and is not an error.
func Init(dsn, environment string) (*SentryMetrics, error) {
	if dsn == "" {
		return NewSentryMetrics(false), nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      environment,
		TracesSampleRate: 1.0,
	})
	if err != nil {
		return NewSentryMetrics(false), fmt.Errorf("sentry init: %w", err)
	}

	return NewSentryMetrics(true), nil
}

func (m *SentryMetrics) Flush(timeout time.Duration) {
	if m == nil || !m.enabled {
		return
	}
	sentry.Flush(timeout)
}

func (m *SentryMetrics) Enabled() bool {
	return m != nil && m.enabled
}

// RecordCompile records one compile of a project.
func (m *SentryMetrics) RecordCompile(ctx context.Context, project string, items, objects int, duration time.Duration, success bool) {
	if !m.Enabled() {
		return
	}

	span := sentry.StartSpan(ctx, "rpp2object.compile")
	defer span.Finish()

	span.SetTag("success", fmt.Sprintf("%t", success))

	span.SetData("project", project)
	span.SetData("items", items)
	span.SetData("objects", objects)
	span.SetData("duration_ms", duration.Milliseconds())

	if success {
		span.Status = sentry.SpanStatusOK
	} else {
		span.Status = sentry.SpanStatusInternalError
	}

	span.Description = fmt.Sprintf("Compile: %s", project)
}

// RecordBatch records a batch run.
func (m *SentryMetrics) RecordBatch(ctx context.Context, jobs, workers int, duration time.Duration, err error) {
	if !m.Enabled() {
		return
	}

	span := sentry.StartSpan(ctx, "rpp2object.batch")
	defer span.Finish()

	span.SetData("jobs", jobs)
	span.SetData("workers", workers)
	span.SetData("duration_ms", duration.Milliseconds())

	if err != nil {
		span.Status = sentry.SpanStatusInternalError
		sentry.CaptureException(err)
		return
	}
	span.Status = sentry.SpanStatusOK
}
