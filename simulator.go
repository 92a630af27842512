package dashsim

import (
	log "github.com/sirupsen/logrus"
	"math"
	"math/rand/v2"
	"sync"
	"time"
)

const (
	// dead-bands below which a channel is at its target
	speedDeadBand   = 0.5
	rpmDeadBand     = 20
	currentDeadBand = 0.1

	// units per second
	speedRate   = 15
	rpmRate     = 400
	currentRate = 2

	speedJitter   = 0.5
	rpmJitter     = 30
	currentJitter = 0.2
	tempJitter    = 0.1

	stoppedSpeed = 0.5
	movingSpeed  = 1.0
	idleCeiling  = 1100

	minEngineTemp     = 20
	maxEngineTemp     = 110
	coolingEngineTemp = 40

	defaultRerollProbability = 0.20
)

// Simulator generates speed, rpm, current and engine temperature that drift
// toward randomly chosen targets.
type Simulator struct {
	mu    sync.Mutex
	state State

	rng               *rand.Rand
	clock             Clock
	jitter            bool
	rerollProbability float64
}

type Option func(*Simulator)

func WithRand(r *rand.Rand) Option {
	return func(s *Simulator) {
		s.rng = r
	}
}

// WithSeed seeds a PCG source. Zero leaves the default time-seeded source.
func WithSeed(seed uint64) Option {
	return func(s *Simulator) {
		if seed != 0 {
			s.rng = rand.New(rand.NewPCG(seed, seed))
		}
	}
}

func WithClock(c Clock) Option {
	return func(s *Simulator) {
		s.clock = c
	}
}

func WithJitter(enabled bool) Option {
	return func(s *Simulator) {
		s.jitter = enabled
	}
}

func WithRerollProbability(p float64) Option {
	return func(s *Simulator) {
		s.rerollProbability = p
	}
}

// WithConfig applies the simulator settings from a loaded Config.
func WithConfig(cfg *Config) Option {
	return func(s *Simulator) {
		WithSeed(cfg.Seed)(s)
		s.jitter = cfg.Jitter
		s.rerollProbability = cfg.RerollProbability
	}
}

func NewSimulator(opts ...Option) *Simulator {
	s := &Simulator{
		clock:             systemClock{},
		jitter:            true,
		rerollProbability: defaultRerollProbability,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		now := uint64(time.Now().UnixNano())
		s.rng = rand.New(rand.NewPCG(now, now>>1))
	}

	s.state = State{
		EngineTemp: minEngineTemp,
		LastUpdate: s.clock.Now(),
	}
	s.rerollTargets()
	return s
}

// RerollTargets picks a new driving state and derives fresh targets from it.
func (s *Simulator) RerollTargets() DrivingState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rerollTargets()
}

func (s *Simulator) rerollTargets() DrivingState {
	d := pickDrivingState(s.rng)
	applyDrivingState(&s.state, d, s.rng)
	log.WithField("state", d).
		WithField("targetSpeed", s.state.TargetSpeed).
		WithField("targetRPM", s.state.TargetRPM).
		WithField("targetCurrent", s.state.TargetCurrent).
		Debug("new driving targets")
	return d
}

// Tick advances the simulation to the clock's current time.
func (s *Simulator) Tick() {
	s.Advance(s.clock.Now())
}

// Advance moves every channel toward its target for the time elapsed since
// the previous call. A clock running backwards counts as zero elapsed time.
func (s *Simulator) Advance(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.advance(now)
}

func (s *Simulator) advance(now time.Time) {
	st := &s.state
	elapsed := math.Max(0, now.Sub(st.LastUpdate).Seconds())
	st.LastUpdate = now

	st.Speed = s.approach(st.Speed, st.TargetSpeed, speedDeadBand, speedRate*elapsed, speedJitter)
	st.RPM = s.approach(st.RPM, st.TargetRPM, rpmDeadBand, rpmRate*elapsed, rpmJitter)
	st.Current = s.approach(st.Current, st.TargetCurrent, currentDeadBand, currentRate*elapsed, currentJitter)

	if st.Speed < stoppedSpeed {
		if st.RPM > idleCeiling {
			st.RPM = uniform(s.rng, idleRPMMin, idleRPMMax)
		}
	} else if st.RPM > idleCeiling && st.Speed < movingSpeed {
		st.Speed = math.Max(movingSpeed, st.RPM/1000)
	}

	var tempChange float64
	switch {
	case st.RPM > 3000:
		tempChange = 2 * elapsed
	case st.RPM > 1500:
		tempChange = 0.5 * elapsed
	case st.RPM < 1000 && st.EngineTemp > coolingEngineTemp:
		tempChange = -0.3 * elapsed
	}
	tempChange += s.noise(tempJitter)
	st.EngineTemp = clamp(st.EngineTemp+tempChange, minEngineTemp, maxEngineTemp)

	if s.rng.Float64() < s.rerollProbability {
		s.rerollTargets()
	}
}

// approach steps v toward target by at most step and never past it.
func (s *Simulator) approach(v, target, deadBand, step, jitter float64) float64 {
	gap := target - v
	if math.Abs(gap) <= deadBand {
		return v
	}
	v += math.Copysign(math.Min(step, math.Abs(gap)), gap)
	v += s.noise(jitter)
	return math.Max(0, v)
}

func (s *Simulator) noise(amplitude float64) float64 {
	if !s.jitter {
		return 0
	}
	return uniform(s.rng, -amplitude, amplitude)
}

// Poll ticks once and returns the resulting snapshot. Call it once per
// display refresh.
func (s *Simulator) Poll() Telemetry {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.advance(s.clock.Now())
	return s.state.telemetry()
}

// ReadSpeed ticks and returns the rounded speed, for hosts that read the
// channels one at a time with speed first.
func (s *Simulator) ReadSpeed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.advance(s.clock.Now())
	return roundInt(s.state.Speed)
}

func (s *Simulator) Speed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return roundInt(s.state.Speed)
}

func (s *Simulator) RPM() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return roundInt(s.state.RPM)
}

// Current is in amps.
func (s *Simulator) Current() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Current
}

// EngineTemp is in degrees Celsius.
func (s *Simulator) EngineTemp() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.EngineTemp
}

func (s *Simulator) Snapshot() Telemetry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.telemetry()
}

func (s *Simulator) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
