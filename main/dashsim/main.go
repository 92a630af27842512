package main

import (
	"context"
	"flag"
	"github.com/jd3nn1s/dashsim"
	"github.com/jd3nn1s/dashsim/display"
	"github.com/oklog/run"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
	"syscall"
)

var configFile = flag.String("config", "", "TOML configuration file")
var printTelemetry = flag.Bool("print-telemetry", false, "print telemetry to stdout instead of drawing gauges")
var skipStart = flag.Bool("skip-start", false, "skip the start screen")
var seed = flag.Uint64("seed", 0, "random seed, 0 seeds from the clock")
var debug = flag.Bool("debug", false, "debug logging")

func loadConfig() (*dashsim.Config, error) {
	if *configFile == "" {
		config := dashsim.DefaultConfig()
		return &config, nil
	}
	return dashsim.LoadConfig(*configFile)
}

func main() {
	log.SetLevel(log.InfoLevel)
	flag.Parse()
	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	config, err := loadConfig()
	if err != nil {
		log.Fatal("unable to load configuration: ", err)
	}
	if *seed != 0 {
		config.Seed = *seed
	}

	if config.Display.ShowStart && !*skipStart && !*printTelemetry {
		ok, err := display.StartScreen(config.Display.Title)
		if err != nil {
			log.Fatal(err)
		}
		if !ok {
			return
		}
	}

	sim := dashsim.NewSimulator(dashsim.WithConfig(config))
	dsh := dashsim.NewDash(sim)

	ctx, cancel := context.WithCancel(context.Background())
	var g run.Group

	g.Add(func() error {
		return dsh.Start(ctx, config.PollInterval)
	}, func(error) {
		cancel()
	})

	if *printTelemetry {
		dsh.AddForwarder(display.NewPrinter(os.Stdout))
	} else {
		gauges := display.NewGauges(&config.Display)
		dsh.AddForwarder(gauges)
		g.Add(func() error {
			return dashsim.Retry(ctx, gauges)
		}, func(error) {
			cancel()
		})
	}

	g.Add(run.SignalHandler(ctx, os.Interrupt, syscall.SIGTERM))

	err = g.Run()
	var sigErr run.SignalError
	if err != nil && !errors.As(err, &sigErr) && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	log.Debug("dashboard stopped")
}
