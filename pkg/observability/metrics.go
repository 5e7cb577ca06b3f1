package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ScreeningMetrics are the domain counters exported on /metrics next to the
// HTTP middleware metrics: session outcomes and crisis flags, the numbers
// care coordination actually watches.
//
// A nil *ScreeningMetrics is valid and records nothing.
type ScreeningMetrics struct {
	sessionsCompleted metric.Int64Counter
	sessionsSkipped   metric.Int64Counter
	crisisFlags       metric.Int64Counter
}

// NewScreeningMetrics registers the counters with the global meter. The otel
// global delegates, so it is safe to call before InitTelemetry.
func NewScreeningMetrics() (*ScreeningMetrics, error) {
	meter := otel.Meter("compass/screening")

	completed, err := meter.Int64Counter("screening_sessions_completed_total",
		metric.WithDescription("Screening sessions completed, by session context"))
	if err != nil {
		return nil, err
	}
	skipped, err := meter.Int64Counter("screening_sessions_skipped_total",
		metric.WithDescription("Screening sessions skipped or abandoned"))
	if err != nil {
		return nil, err
	}
	crisis, err := meter.Int64Counter("screening_crisis_flags_total",
		metric.WithDescription("Crisis flags raised, by detection source"))
	if err != nil {
		return nil, err
	}

	return &ScreeningMetrics{
		sessionsCompleted: completed,
		sessionsSkipped:   skipped,
		crisisFlags:       crisis,
	}, nil
}

func (m *ScreeningMetrics) SessionCompleted(ctx context.Context, contextKind string) {
	if m == nil {
		return
	}
	m.sessionsCompleted.Add(ctx, 1, metric.WithAttributes(attribute.String("context_kind", contextKind)))
}

func (m *ScreeningMetrics) SessionSkipped(ctx context.Context, forced bool) {
	if m == nil {
		return
	}
	m.sessionsSkipped.Add(ctx, 1, metric.WithAttributes(attribute.Bool("forced", forced)))
}

// CrisisFlagRaised counts by source: "scoring" for flags set at completion,
// "reconciliation" for flags the background worker recovered.
func (m *ScreeningMetrics) CrisisFlagRaised(ctx context.Context, source string) {
	if m == nil {
		return
	}
	m.crisisFlags.Add(ctx, 1, metric.WithAttributes(attribute.String("source", source)))
}
