// internal/config/validate.go
package config

import "fmt"

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	c := cfg.ADCS.Control
	if c.AngularRateThresholdDegS <= 0 {
		return fmt.Errorf("config: angular_rate_threshold_deg_s must be > 0, got %v", c.AngularRateThresholdDegS)
	}
	if c.SunAlignmentThresholdDeg <= 0 {
		return fmt.Errorf("config: sun_alignment_threshold_deg must be > 0, got %v", c.SunAlignmentThresholdDeg)
	}
	if c.SafePowerThresholdPct <= 0 || c.SafePowerThresholdPct >= 100 {
		return fmt.Errorf("config: safe_power_threshold_pct must be in (0,100), got %v", c.SafePowerThresholdPct)
	}
	if c.PointingDeadbandDeg < 0 {
		return fmt.Errorf("config: pointing_deadband_deg must be >= 0, got %v", c.PointingDeadbandDeg)
	}

	f := cfg.ADCS.Fault
	if f.HighRatePersistenceCount < 1 {
		return fmt.Errorf("config: high_rate_persistence_count must be >= 1")
	}
	if f.SensorFailPersistenceCount < 1 {
		return fmt.Errorf("config: sensor_fail_persistence_count must be >= 1")
	}
	if f.SensorRetryCount < 1 {
		return fmt.Errorf("config: sensor_retry_count must be >= 1")
	}
	if f.SensorRetryDelayMs < 0 {
		return fmt.Errorf("config: sensor_retry_delay_ms must be >= 0")
	}

	if cfg.ADCS.Loop.IntervalMs <= 0 {
		return fmt.Errorf("config: loop interval_ms must be > 0")
	}

	a := cfg.ADCS.Actuators
	if a.MagnetorquerMaxNm <= 0 || a.ReactionWheelMaxNm <= 0 {
		return fmt.Errorf("config: actuator authority limits must be > 0")
	}
	if a.KpSun <= 0 || a.KpPointing <= 0 {
		return fmt.Errorf("config: control gains must be > 0")
	}

	t := cfg.ADCS.Telemetry
	switch t.Source {
	case SourceSim:
		if t.Sim.EclipseFraction < 0 || t.Sim.EclipseFraction > 1 {
			return fmt.Errorf("config: sim eclipse_fraction must be in [0,1]")
		}
		if t.Sim.SensorFailureProb < 0 || t.Sim.SensorFailureProb > 1 {
			return fmt.Errorf("config: sim sensor_failure_prob must be in [0,1]")
		}
	case SourceBench:
		if t.Bench.Endpoint == "" {
			return fmt.Errorf("config: bench telemetry requires an endpoint")
		}
		if t.Bench.TimeoutMs <= 0 {
			return fmt.Errorf("config: bench timeout_ms must be > 0")
		}
	default:
		return fmt.Errorf("config: unknown telemetry source %q", t.Source)
	}

	if cfg.ADCS.Persistence.StateFile == "" {
		return fmt.Errorf("config: state_file required")
	}

	return nil
}
