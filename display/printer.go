package display

import (
	"fmt"
	"github.com/jd3nn1s/dashsim"
	"github.com/pkg/errors"
	"io"
)

// Printer writes one line per telemetry update.
type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Forward(newTelemetry *dashsim.Telemetry, prevTelemetry *dashsim.Telemetry) error {
	if _, err := fmt.Fprintln(p.w, newTelemetry.String()); err != nil {
		return errors.Wrap(err, "unable to print telemetry")
	}
	return nil
}
