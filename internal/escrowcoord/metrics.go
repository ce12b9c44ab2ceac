package escrowcoord

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "github.com/gabapcia/escrowctl/internal/escrowcoord"

type metrics struct {
	created   metric.Int64Counter
	submitted metric.Int64Counter
	confirmed metric.Int64Counter
	stalled   metric.Int64Counter
	loadFails metric.Int64Counter
}

// newMetrics registers the coordinator counters on the global meter provider.
// Registration errors fall back to no-op instruments.
func newMetrics() *metrics {
	meter := otel.Meter(meterName)

	counter := func(name, description string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(description))
		if err != nil {
			return noop.Int64Counter{}
		}

		return c
	}

	return &metrics{
		created:   counter("escrow.created", "Escrows created and mined"),
		submitted: counter("escrow.approval.submitted", "Approval transactions accepted by the node"),
		confirmed: counter("escrow.approval.confirmed", "Approvals confirmed by an Approved event"),
		stalled:   counter("escrow.approval.stalled", "Approvals whose confirmation did not arrive in time"),
		loadFails: counter("escrow.load.failed", "Failed escrow loads"),
	}
}
