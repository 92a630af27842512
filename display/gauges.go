package display

import (
	"context"
	"github.com/jd3nn1s/dashsim"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
)

// Gauges is a live terminal dashboard. Forward hands snapshots to the render
// loop in Start and drops them while a frame is still pending.
type Gauges struct {
	Config *dashsim.DisplayConfig

	area    *pterm.AreaPrinter
	fwdChan chan *dashsim.Telemetry
}

func NewGauges(config *dashsim.DisplayConfig) *Gauges {
	return &Gauges{
		Config:  config,
		fwdChan: make(chan *dashsim.Telemetry, 1),
	}
}

func (g *Gauges) Name() string {
	return "gauges"
}

func (g *Gauges) Open() error {
	area, err := pterm.DefaultArea.Start(Placeholder(g.Config.Title))
	if err != nil {
		return errors.Wrap(err, "unable to start gauge area")
	}
	g.area = area
	return nil
}

func (g *Gauges) Close() error {
	if g.area == nil {
		return nil
	}
	area := g.area
	g.area = nil
	return area.Stop()
}

func (g *Gauges) Forward(newTelemetry *dashsim.Telemetry, prevTelemetry *dashsim.Telemetry) error {
	// copy telemetry as we're rendering it on another go-routine
	telemCopy := *newTelemetry
	select {
	case g.fwdChan <- &telemCopy:
	default:
		// previous frame not drawn yet, skip
	}
	return nil
}

func (g *Gauges) Start(ctx context.Context) error {
	if g.area == nil {
		return errors.New("gauge area is not open")
	}
	for {
		select {
		case t := <-g.fwdChan:
			g.area.Update(Render(g.Config.Title, t))
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
