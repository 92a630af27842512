package dashsim

import (
	"fmt"
	"math"
	"time"
)

// Telemetry is the snapshot handed to displays once per polling cycle.
type Telemetry struct {
	Speed      int
	RPM        int
	Current    float64
	EngineTemp float64

	Accelerating bool
	DrivingState DrivingState
}

func (t Telemetry) String() string {
	return fmt.Sprintf("SPD: %d km/h RPM: %d CURR: %.1f A ENG TEMP: %.1f °C",
		t.Speed, t.RPM, t.Current, t.EngineTemp)
}

// State is the full simulator record including targets.
type State struct {
	Speed      float64
	RPM        float64
	Current    float64
	EngineTemp float64

	TargetSpeed   float64
	TargetRPM     float64
	TargetCurrent float64

	Accelerating bool
	DrivingState DrivingState
	LastUpdate   time.Time
}

func (s *State) telemetry() Telemetry {
	return Telemetry{
		Speed:        roundInt(s.Speed),
		RPM:          roundInt(s.RPM),
		Current:      s.Current,
		EngineTemp:   s.EngineTemp,
		Accelerating: s.Accelerating,
		DrivingState: s.DrivingState,
	}
}

// rounds half to even
func roundInt(v float64) int {
	return int(math.RoundToEven(v))
}
