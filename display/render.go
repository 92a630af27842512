package display

import (
	"fmt"
	"github.com/jd3nn1s/dashsim"
	"github.com/pterm/pterm"
	"strings"
)

const barWidth = 30

type gauge struct {
	min, max float64
	warn     float64
	critical float64
}

var (
	speedGauge   = gauge{min: 0, max: 140, warn: 100, critical: 130}
	rpmGauge     = gauge{min: 0, max: 6000, warn: 4500, critical: 5500}
	currentGauge = gauge{min: 0, max: 10, warn: 7, critical: 9}
	tempGauge    = gauge{min: 20, max: 110, warn: 90, critical: 100}

	labelStyle = pterm.NewStyle(pterm.FgLightWhite, pterm.Bold)
)

// Placeholder is shown until the first sample arrives.
func Placeholder(title string) string {
	return frame(title, []string{
		labelStyle.Sprint("SPD: --- km/h"),
		labelStyle.Sprint("RPM: -----"),
		labelStyle.Sprint("CURR: --.- A"),
		labelStyle.Sprint("ENG TEMP: --.- °C"),
	})
}

// Render draws the four channels as labels with bar gauges.
func Render(title string, t *dashsim.Telemetry) string {
	return frame(title, []string{
		labelStyle.Sprintf("SPD: %d km/h", t.Speed),
		speedGauge.bar(float64(t.Speed)),
		labelStyle.Sprintf("RPM: %d", t.RPM),
		rpmGauge.bar(float64(t.RPM)),
		labelStyle.Sprintf("CURR: %.1f A", t.Current),
		currentGauge.bar(t.Current),
		labelStyle.Sprintf("ENG TEMP: %.1f °C", t.EngineTemp),
		tempGauge.bar(t.EngineTemp),
		pterm.FgGray.Sprintf("mode: %s", t.DrivingState),
	})
}

func frame(title string, lines []string) string {
	return pterm.DefaultBox.WithTitle(title).WithTitleTopCenter().Sprint(strings.Join(lines, "\n"))
}

func (g gauge) fill(v float64) int {
	frac := (v - g.min) / (g.max - g.min)
	if frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}
	return int(frac*barWidth + 0.5)
}

func (g gauge) color(v float64) pterm.Color {
	switch {
	case v >= g.critical:
		return pterm.FgRed
	case v >= g.warn:
		return pterm.FgYellow
	}
	return pterm.FgGreen
}

func (g gauge) bar(v float64) string {
	n := g.fill(v)
	return g.color(v).Sprint(fmt.Sprintf("[%s%s]",
		strings.Repeat("█", n),
		strings.Repeat("·", barWidth-n)))
}
