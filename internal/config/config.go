// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ADCS ADCSConfig `yaml:"adcs"`
}

type ADCSConfig struct {
	Control     ControlConfig     `yaml:"control"`
	Fault       FaultConfig       `yaml:"fault"`
	Loop        LoopConfig        `yaml:"loop"`
	Actuators   ActuatorConfig    `yaml:"actuators"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`
	Persistence PersistenceConfig `yaml:"persistence"`
	Log         LogConfig         `yaml:"log"`
	Monitoring  MonitoringConfig  `yaml:"monitoring"`
}

// ---- CONTROL THRESHOLDS ----

type ControlConfig struct {
	AngularRateThresholdDegS float64 `yaml:"angular_rate_threshold_deg_s"`
	SunAlignmentThresholdDeg float64 `yaml:"sun_alignment_threshold_deg"`
	SafePowerThresholdPct    float64 `yaml:"safe_power_threshold_pct"`
	PointingDeadbandDeg      float64 `yaml:"pointing_deadband_deg"`
}

// ---- FAULT DEBOUNCE ----

type FaultConfig struct {
	HighRatePersistenceCount   uint `yaml:"high_rate_persistence_count"`
	SensorFailPersistenceCount uint `yaml:"sensor_fail_persistence_count"`
	SensorRetryCount           int  `yaml:"sensor_retry_count"`
	SensorRetryDelayMs         int  `yaml:"sensor_retry_delay_ms"`
}

// ---- CONTROL LOOP ----

type LoopConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}

// ---- ACTUATION AUTHORITY ----

type ActuatorConfig struct {
	MagnetorquerMaxNm  float64 `yaml:"magnetorquer_max_nm"`
	ReactionWheelMaxNm float64 `yaml:"reaction_wheel_max_nm"`
	KpSun              float64 `yaml:"kp_sun"`
	KpPointing         float64 `yaml:"kp_pointing"`
}

// ---- TELEMETRY SOURCE ----

const (
	SourceSim   = "sim"
	SourceBench = "bench"
)

type TelemetryConfig struct {
	Source string      `yaml:"source"` // sim | bench
	Sim    SimConfig   `yaml:"sim"`
	Bench  BenchConfig `yaml:"bench"`
}

type SimConfig struct {
	Seed              int64   `yaml:"seed"`
	EclipseFraction   float64 `yaml:"eclipse_fraction"`
	SensorFailureProb float64 `yaml:"sensor_failure_prob"`
}

type BenchConfig struct {
	Endpoint  string `yaml:"endpoint"`
	UnitID    uint8  `yaml:"unit_id"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// ---- PERSISTENCE ----

type PersistenceConfig struct {
	StateFile string `yaml:"state_file"`
}

// ---- LOGGING ----

type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// ---- MONITORING ----

type MonitoringConfig struct {
	ListenAddr string `yaml:"listen_addr"` // empty disables the metrics listener
}

// Load reads and decodes a config file. Defaults and validation are the
// caller's next steps.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return &cfg, nil
}
