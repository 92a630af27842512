package display

import (
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
)

// confirmStart is swapped out by tests.
var confirmStart = func() (bool, error) {
	return pterm.DefaultInteractiveConfirm.
		WithDefaultValue(true).
		Show("Start")
}

// StartScreen shows the welcome banner and waits for the driver to start.
// It returns false when the driver declines.
func StartScreen(title string) (bool, error) {
	pterm.DefaultHeader.WithFullWidth().
		WithBackgroundStyle(pterm.NewStyle(pterm.BgBlack)).
		WithTextStyle(pterm.NewStyle(pterm.FgLightWhite, pterm.Bold)).
		Println("Welcome to " + title + "'s Dashboard")
	pterm.Println()

	ok, err := confirmStart()
	if err != nil {
		return false, errors.Wrap(err, "unable to read start confirmation")
	}
	return ok, nil
}
