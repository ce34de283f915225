// internal/config/defaults.go
package config

// Reference constants for the flight configuration surface.
const (
	DefaultAngularRateThresholdDegS = 5.0
	DefaultSunAlignmentThresholdDeg = 5.0
	DefaultSafePowerThresholdPct    = 20.0
	DefaultPointingDeadbandDeg      = 0.5

	DefaultHighRatePersistenceCount   = 3
	DefaultSensorFailPersistenceCount = 3
	DefaultSensorRetryCount           = 3
	DefaultSensorRetryDelayMs         = 500

	DefaultLoopIntervalMs = 1000

	DefaultMagnetorquerMaxNm  = 0.1
	DefaultReactionWheelMaxNm = 0.2
	DefaultKpSun              = 0.05
	DefaultKpPointing         = 0.1

	DefaultEclipseFraction   = 0.4
	DefaultSensorFailureProb = 0.1

	DefaultStateFile = "adcs_state.json"
	DefaultLogLevel  = "info"
)

// ApplyDefaults fills unset options with flight defaults.
// It is allowed to mutate configuration.
// It MUST be called before Validate().
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	c := &cfg.ADCS.Control
	if c.AngularRateThresholdDegS == 0 {
		c.AngularRateThresholdDegS = DefaultAngularRateThresholdDegS
	}
	if c.SunAlignmentThresholdDeg == 0 {
		c.SunAlignmentThresholdDeg = DefaultSunAlignmentThresholdDeg
	}
	if c.SafePowerThresholdPct == 0 {
		c.SafePowerThresholdPct = DefaultSafePowerThresholdPct
	}
	if c.PointingDeadbandDeg == 0 {
		c.PointingDeadbandDeg = DefaultPointingDeadbandDeg
	}

	f := &cfg.ADCS.Fault
	if f.HighRatePersistenceCount == 0 {
		f.HighRatePersistenceCount = DefaultHighRatePersistenceCount
	}
	if f.SensorFailPersistenceCount == 0 {
		f.SensorFailPersistenceCount = DefaultSensorFailPersistenceCount
	}
	if f.SensorRetryCount == 0 {
		f.SensorRetryCount = DefaultSensorRetryCount
	}
	if f.SensorRetryDelayMs == 0 {
		f.SensorRetryDelayMs = DefaultSensorRetryDelayMs
	}

	if cfg.ADCS.Loop.IntervalMs == 0 {
		cfg.ADCS.Loop.IntervalMs = DefaultLoopIntervalMs
	}

	a := &cfg.ADCS.Actuators
	if a.MagnetorquerMaxNm == 0 {
		a.MagnetorquerMaxNm = DefaultMagnetorquerMaxNm
	}
	if a.ReactionWheelMaxNm == 0 {
		a.ReactionWheelMaxNm = DefaultReactionWheelMaxNm
	}
	if a.KpSun == 0 {
		a.KpSun = DefaultKpSun
	}
	if a.KpPointing == 0 {
		a.KpPointing = DefaultKpPointing
	}

	t := &cfg.ADCS.Telemetry
	if t.Source == "" {
		t.Source = SourceSim
	}
	if t.Sim.EclipseFraction == 0 {
		t.Sim.EclipseFraction = DefaultEclipseFraction
	}
	if t.Sim.SensorFailureProb == 0 {
		t.Sim.SensorFailureProb = DefaultSensorFailureProb
	}

	if cfg.ADCS.Persistence.StateFile == "" {
		cfg.ADCS.Persistence.StateFile = DefaultStateFile
	}
	if cfg.ADCS.Log.Level == "" {
		cfg.ADCS.Log.Level = DefaultLogLevel
	}
}
