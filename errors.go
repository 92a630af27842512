package dashsim

import "github.com/pkg/errors"

var (
	ErrInvalidPollInterval      = errors.New("poll interval must be positive")
	ErrInvalidRerollProbability = errors.New("reroll probability must be between 0.0 and 1.0")
)
