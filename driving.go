package dashsim

import (
	"math"
	"math/rand/v2"
)

type DrivingState int

const (
	DrivingAccelerate DrivingState = iota
	DrivingMaintain
	DrivingDecelerate
	DrivingIdle
)

func (d DrivingState) String() string {
	switch d {
	case DrivingAccelerate:
		return "accelerate"
	case DrivingMaintain:
		return "maintain"
	case DrivingDecelerate:
		return "decelerate"
	case DrivingIdle:
		return "idle"
	}
	return "unknown"
}

// drivingWeights is indexed by DrivingState.
var drivingWeights = [...]float64{
	DrivingAccelerate: 0.30,
	DrivingMaintain:   0.40,
	DrivingDecelerate: 0.20,
	DrivingIdle:       0.10,
}

const (
	maxSpeed   = 140
	maxRPM     = 6000
	maxCurrent = 10

	idleRPMMin = 800
	idleRPMMax = 1000

	// moving target rpm is 1200 + 20 per km/h of target speed
	movingRPMFloor    = 1200
	movingRPMPerSpeed = 20
)

func pickDrivingState(r *rand.Rand) DrivingState {
	x := r.Float64()
	for i, w := range drivingWeights {
		if x < w {
			return DrivingState(i)
		}
		x -= w
	}
	return DrivingIdle
}

func uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// applyDrivingState derives new targets from the current values.
func applyDrivingState(st *State, d DrivingState, r *rand.Rand) {
	switch d {
	case DrivingAccelerate:
		st.Accelerating = true
		st.TargetSpeed = math.Min(maxSpeed, st.Speed+uniform(r, 10, 30))
		st.TargetRPM = math.Min(maxRPM, st.RPM+uniform(r, 500, 1500))
		st.TargetCurrent = math.Min(maxCurrent, st.Current+uniform(r, 1, 3))
	case DrivingMaintain:
		st.Accelerating = true
		st.TargetSpeed = clamp(st.Speed+uniform(r, -5, 5), 0, maxSpeed)
		st.TargetRPM = clamp(st.RPM+uniform(r, -200, 200), 0, maxRPM)
		st.TargetCurrent = clamp(st.Current+uniform(r, -0.5, 0.5), 0, maxCurrent)
	case DrivingDecelerate:
		st.Accelerating = false
		st.TargetSpeed = math.Max(0, st.Speed-uniform(r, 10, 25))
		st.TargetRPM = math.Max(0, st.RPM-uniform(r, 500, 1200))
		st.TargetCurrent = math.Max(0, st.Current-uniform(r, 1, 2.5))
	default:
		st.Accelerating = false
		st.TargetSpeed = 0
		st.TargetRPM = uniform(r, idleRPMMin, idleRPMMax)
		st.TargetCurrent = uniform(r, 0.1, 0.5)
	}
	st.DrivingState = d

	// a small non-zero target speed still jumps the target rpm to the moving floor
	if st.TargetSpeed > 0 && st.TargetRPM < movingRPMFloor {
		st.TargetRPM = movingRPMFloor + st.TargetSpeed*movingRPMPerSpeed
	} else if st.TargetSpeed == 0 && st.TargetRPM > idleRPMMax {
		st.TargetRPM = uniform(r, idleRPMMin, idleRPMMax)
	}
}
