package dashsim

import "context"

// Forwarder receives every telemetry snapshot that differs from the previous one.
type Forwarder interface {
	Forward(newTelemetry *Telemetry, prevTelemetry *Telemetry) error
}

// Retryable is a component the retrier can open, run and reopen after failure.
type Retryable interface {
	Open() error
	Close() error
	Start(ctx context.Context) error
	Name() string
}

// Source is anything that yields one snapshot per polling cycle.
type Source interface {
	Poll() Telemetry
}
