package dashsim

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"
)

const defaultPollInterval = 100 * time.Millisecond

type DisplayConfig struct {
	Title     string
	ShowStart bool
}

type Config struct {
	// Seed of zero seeds from the wall clock.
	Seed              uint64
	PollInterval      time.Duration
	RerollProbability float64
	Jitter            bool

	Display DisplayConfig
}

func DefaultConfig() Config {
	return Config{
		PollInterval:      defaultPollInterval,
		RerollProbability: defaultRerollProbability,
		Jitter:            true,
		Display: DisplayConfig{
			Title:     "ReVOLT EV",
			ShowStart: true,
		},
	}
}

func (c *Config) Validate() error {
	if c.PollInterval <= 0 {
		return ErrInvalidPollInterval
	}
	if c.RerollProbability < 0 || c.RerollProbability > 1 {
		return ErrInvalidRerollProbability
	}
	return nil
}

// LoadConfig reads a TOML file. Relative names are resolved next to the binary.
func LoadConfig(fileName string) (*Config, error) {
	if !filepath.IsAbs(fileName) {
		dir, err := filepath.Abs(filepath.Dir(os.Args[0]))
		if err != nil {
			return nil, errors.Wrapf(err, "unable to determine binary location")
		}
		fileName = filepath.Join(dir, fileName)
	}
	file, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open file %s", fileName)
	}
	defer file.Close()
	return LoadConfigFromReader(file)
}

// LoadConfigFromReader decodes over DefaultConfig, so omitted keys keep their defaults.
func LoadConfigFromReader(configReader io.Reader) (*Config, error) {
	configData, err := ioutil.ReadAll(configReader)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read config reader")
	}
	config := DefaultConfig()
	if _, err := toml.Decode(string(configData), &config); err != nil {
		return nil, errors.Wrapf(err, "unable to load dashboard configuration")
	}
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid dashboard configuration")
	}
	return &config, nil
}
