// internal/config/validate_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func defaulted() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

func TestDefaultsAreValid(t *testing.T) {
	cfg := defaulted()
	require.NoError(t, Validate(cfg))

	require.Equal(t, 5.0, cfg.ADCS.Control.AngularRateThresholdDegS)
	require.Equal(t, 5.0, cfg.ADCS.Control.SunAlignmentThresholdDeg)
	require.Equal(t, uint(3), cfg.ADCS.Fault.HighRatePersistenceCount)
	require.Equal(t, 1000, cfg.ADCS.Loop.IntervalMs)
	require.Equal(t, SourceSim, cfg.ADCS.Telemetry.Source)
	require.Equal(t, "adcs_state.json", cfg.ADCS.Persistence.StateFile)
}

func TestValidateRejectsUnknownSource(t *testing.T) {
	cfg := defaulted()
	cfg.ADCS.Telemetry.Source = "ouija"
	require.Error(t, Validate(cfg))
}

func TestValidateBenchRequiresEndpoint(t *testing.T) {
	cfg := defaulted()
	cfg.ADCS.Telemetry.Source = SourceBench
	require.Error(t, Validate(cfg))

	cfg.ADCS.Telemetry.Bench.Endpoint = "10.0.0.5:502"
	cfg.ADCS.Telemetry.Bench.TimeoutMs = 1000
	require.NoError(t, Validate(cfg))
}

func TestValidateRejectsNegativeInterval(t *testing.T) {
	cfg := defaulted()
	cfg.ADCS.Loop.IntervalMs = -5
	require.Error(t, Validate(cfg))
}

func TestValidateRejectsZeroGains(t *testing.T) {
	cfg := defaulted()
	cfg.ADCS.Actuators.KpSun = -0.05
	require.Error(t, Validate(cfg))
}

func TestLoadAppliesFileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adcsd.yaml")
	doc := `
adcs:
  control:
    angular_rate_threshold_deg_s: 6.5
  loop:
    interval_ms: 250
  telemetry:
    source: sim
    sim:
      seed: 99
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	ApplyDefaults(cfg)
	require.NoError(t, Validate(cfg))

	require.Equal(t, 6.5, cfg.ADCS.Control.AngularRateThresholdDegS)
	require.Equal(t, 250, cfg.ADCS.Loop.IntervalMs)
	require.Equal(t, int64(99), cfg.ADCS.Telemetry.Sim.Seed)
	// untouched fields get defaults
	require.Equal(t, 0.1, cfg.ADCS.Actuators.MagnetorquerMaxNm)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adcsd.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t- nope"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
