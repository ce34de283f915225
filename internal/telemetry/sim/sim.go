// internal/telemetry/sim/sim.go
package sim

import (
	"errors"
	"math/rand"

	"github.com/iotasat/adcs-supervisor/internal/telemetry"
)

// ErrSensorGlitch is the simulated transient sensor-check failure.
var ErrSensorGlitch = errors.New("sim: transient sensor glitch")

// Config shapes the simulated environment.
type Config struct {
	Seed                  int64
	SafePowerThresholdPct float64 // battery level below this reads as power-not-ok
	EclipseFraction       float64 // fraction of draws spent in shadow
	SensorFailureProb     float64 // chance a single sensor check fails
}

// Provider draws noisy telemetry from a seeded source, so a given seed
// replays the same mission. Single-owner, not safe for concurrent use.
type Provider struct {
	rng *rand.Rand
	cfg Config
}

func New(cfg Config) *Provider {
	return &Provider{
		rng: rand.New(rand.NewSource(cfg.Seed)),
		cfg: cfg,
	}
}

// AngularRate simulates a rate gyro reading in deg/s.
func (p *Provider) AngularRate() (float64, error) {
	return p.rng.Float64() * 10, nil
}

// SunError simulates a sun sensor angular error in degrees.
func (p *Provider) SunError() (float64, error) {
	return p.rng.Float64() * 30, nil
}

// PointingError simulates an attitude error in degrees.
func (p *Provider) PointingError() (float64, error) {
	return p.rng.Float64() * 5, nil
}

// PowerStatus simulates battery level and eclipse state.
func (p *Provider) PowerStatus() (telemetry.PowerStatus, error) {
	level := 10 + p.rng.Float64()*90
	return telemetry.PowerStatus{
		OK:      level > p.cfg.SafePowerThresholdPct,
		Eclipse: p.rng.Float64() < p.cfg.EclipseFraction,
	}, nil
}

// SensorCheck fails transiently with the configured probability.
func (p *Provider) SensorCheck() error {
	if p.rng.Float64() < p.cfg.SensorFailureProb {
		return ErrSensorGlitch
	}
	return nil
}
