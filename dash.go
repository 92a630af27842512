package dashsim

import (
	"context"
	log "github.com/sirupsen/logrus"
	"time"
)

// Dash polls a telemetry source on a fixed period and forwards changed
// snapshots to every registered forwarder.
type Dash struct {
	Telemetry Telemetry

	source     Source
	forwarders []Forwarder
	polled     bool
}

func NewDash(source Source) *Dash {
	return &Dash{
		source: source,
	}
}

func (d *Dash) AddForwarder(fwd Forwarder) {
	d.forwarders = append(d.forwarders, fwd)
}

// Start polls every interval until ctx is done.
func (d *Dash) Start(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			d.Step()
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Step runs a single polling cycle.
func (d *Dash) Step() {
	prevTelemetry := d.Telemetry
	if d.CheckTelemetry(d.source.Poll()) {
		d.TelemetryUpdate(&prevTelemetry)
	}
}

// CheckTelemetry stores newTelemetry and reports whether it changed. The
// first snapshot always counts as a change.
func (d *Dash) CheckTelemetry(newTelemetry Telemetry) (changed bool) {
	if d.polled && d.Telemetry == newTelemetry {
		return false
	}
	d.polled = true
	d.Telemetry = newTelemetry
	return true
}

func (d *Dash) TelemetryUpdate(prevTelemetry *Telemetry) {
	for _, fwd := range d.forwarders {
		if err := fwd.Forward(&d.Telemetry, prevTelemetry); err != nil {
			log.WithField("err", err).Error("unable to forward telemetry")
		}
	}
}
