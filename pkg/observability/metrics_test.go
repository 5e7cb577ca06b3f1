package observability

import (
	"context"
	"testing"
)

func TestScreeningMetricsNilIsInert(t *testing.T) {
	ctx := context.Background()
	var m *ScreeningMetrics

	m.SessionCompleted(ctx, "standalone")
	m.SessionSkipped(ctx, true)
	m.CrisisFlagRaised(ctx, "scoring")
}

func TestNewScreeningMetrics(t *testing.T) {
	ctx := context.Background()

	m, err := NewScreeningMetrics()
	if err != nil {
		t.Fatalf("NewScreeningMetrics: %v", err)
	}

	// The global meter is whatever is installed (a no-op in tests);
	// recording must work either way.
	m.SessionCompleted(ctx, "patient_order")
	m.SessionSkipped(ctx, false)
	m.CrisisFlagRaised(ctx, "reconciliation")
}
