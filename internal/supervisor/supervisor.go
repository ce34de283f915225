// internal/supervisor/supervisor.go
package supervisor

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/iotasat/adcs-supervisor/internal/actuator"
	"github.com/iotasat/adcs-supervisor/internal/engine"
	"github.com/iotasat/adcs-supervisor/internal/fault"
	"github.com/iotasat/adcs-supervisor/internal/metrics"
	"github.com/iotasat/adcs-supervisor/internal/mode"
	"github.com/iotasat/adcs-supervisor/internal/status"
	"github.com/iotasat/adcs-supervisor/internal/telemetry"
)

// Store is the persistence contract the supervisor consumes.
// Load never fails; it falls back to the safe default mode.
type Store interface {
	Load() mode.Mode
	Save(mode.Mode) error
}

// StatusWriter publishes the supervisor status block. Optional seam for
// bench runs; delivery failures never affect the control decision.
type StatusWriter interface {
	WriteStatus(status.Snapshot) error
}

// Config is the immutable runtime config of one supervisor.
type Config struct {
	Thresholds engine.Thresholds
	Limits     actuator.Limits

	HighRatePersistence   uint
	SensorFailPersistence uint
	SensorRetryCount      int
	SensorRetryDelay      time.Duration

	Interval time.Duration
}

// Supervisor drives the control loop: one cycle at a time, no overlap.
// It is the single owner of the current mode and the fault counters.
type Supervisor struct {
	cfg      Config
	provider telemetry.Provider
	sink     actuator.Sink
	store    Store
	deb      *fault.Debouncer
	met      *metrics.Metrics
	statusW  StatusWriter // nil when no bench writeback

	current       mode.Mode
	cyclesInFault uint
}

// New builds a supervisor and recovers the last persisted mode.
// Fault counters always start from zero: a restart is a fresh health
// baseline, only the mode survives.
func New(cfg Config, provider telemetry.Provider, sink actuator.Sink, store Store, met *metrics.Metrics, statusW StatusWriter) *Supervisor {
	s := &Supervisor{
		cfg:      cfg,
		provider: provider,
		sink:     sink,
		store:    store,
		deb:      fault.New(cfg.HighRatePersistence, cfg.SensorFailPersistence),
		met:      met,
		statusW:  statusW,
		current:  store.Load(),
	}
	log.Infof("system starting in mode %s", s.current)
	s.met.CurrentMode.Set(float64(s.current))
	return s
}

// Current reports the mode the supervisor is in.
func (s *Supervisor) Current() mode.Mode { return s.current }

// Step executes exactly one control cycle, in order: read telemetry,
// dispatch actuation, persist mode, debounce faults, decide, apply.
// The mode is persisted before the decision so a restart resumes the
// action already underway. No error aborts the cycle.
func (s *Supervisor) Step() {
	s.met.Cycles.Inc()

	sample, readOK := s.readSample()

	rep := actuator.Dispatch(s.current, sample, s.cfg.Limits)
	log.Infof("[%s] %s (torque %.3f Nm, rate %.2f deg/s, sun %.2f deg, point %.2f deg, power_ok=%t eclipse=%t)",
		s.current, rep.Note, rep.TorqueNm,
		sample.AngularRateDegS, sample.SunErrorDeg, sample.PointingErrorDeg,
		sample.PowerOK, sample.InEclipse)
	if err := s.sink.Apply(s.current, rep); err != nil {
		log.Errorf("actuator delivery failed: %v", err)
	}

	if err := s.store.Save(s.current); err != nil {
		log.Errorf("state save failed: %v", err)
		s.met.PersistErrors.Inc()
	}

	sample.SensorOK = readOK && s.checkSensors()

	highRateBad := sample.AngularRateDegS > s.cfg.Thresholds.AngularRateDegS
	flags := s.deb.Update(highRateBad, !sample.SensorOK)
	if highRateBad {
		log.Warnf("high angular rate %.2f deg/s, streak %d/%d",
			sample.AngularRateDegS, s.deb.HighRateStreak(), s.cfg.HighRatePersistence)
	}
	if !sample.SensorOK {
		log.Warnf("sensor check failed this cycle, streak %d/%d",
			s.deb.SensorFailStreak(), s.cfg.SensorFailPersistence)
	}

	next := engine.Decide(s.current, sample, flags, s.cfg.Thresholds)
	if next != s.current {
		log.Infof("transitioning from %s to %s", s.current, next)
		s.met.Transitions.WithLabelValues(s.current.String(), next.String()).Inc()
		s.current = next
	}

	if s.current == mode.SafeMode {
		s.cyclesInFault++
	} else {
		s.cyclesInFault = 0
	}

	s.publish(sample)
}

// readSample assembles one telemetry sample. A failed field read is
// logged and downgrades the cycle to sensor-bad; it never aborts.
func (s *Supervisor) readSample() (telemetry.Sample, bool) {
	ok := true
	sample := telemetry.Sample{}

	rate, err := s.provider.AngularRate()
	if err != nil {
		log.Errorf("telemetry: angular rate read failed: %v", err)
		ok = false
	}
	sample.AngularRateDegS = rate

	sunErr, err := s.provider.SunError()
	if err != nil {
		log.Errorf("telemetry: sun error read failed: %v", err)
		ok = false
	}
	sample.SunErrorDeg = sunErr

	pointErr, err := s.provider.PointingError()
	if err != nil {
		log.Errorf("telemetry: pointing error read failed: %v", err)
		ok = false
	}
	sample.PointingErrorDeg = pointErr

	power, err := s.provider.PowerStatus()
	if err != nil {
		log.Errorf("telemetry: power status read failed: %v", err)
		ok = false
		// Unreadable power is treated as power-not-ok; the eclipse bit
		// stays false so safe-mode entry still requires the debounced
		// sensor path rather than a single read glitch.
	}
	sample.PowerOK = power.OK
	sample.InEclipse = power.Eclipse

	return sample, ok
}

// checkSensors runs the bounded-retry sensor check. Retries recover
// transient glitches locally; only a cycle where every attempt fails is
// reported bad to the debouncer.
func (s *Supervisor) checkSensors() bool {
	for attempt := 1; attempt <= s.cfg.SensorRetryCount; attempt++ {
		err := s.provider.SensorCheck()
		if err == nil {
			return true
		}
		log.Debugf("sensor check attempt %d/%d failed: %v", attempt, s.cfg.SensorRetryCount, err)
		s.met.SensorRetries.Inc()
		if attempt < s.cfg.SensorRetryCount && s.cfg.SensorRetryDelay > 0 {
			time.Sleep(s.cfg.SensorRetryDelay)
		}
	}
	return false
}

// publish refreshes gauges and, when wired, the bench status block.
func (s *Supervisor) publish(sample telemetry.Sample) {
	s.met.CurrentMode.Set(float64(s.current))
	s.met.AngularRate.Set(sample.AngularRateDegS)
	s.met.SunError.Set(sample.SunErrorDeg)
	s.met.PointingError.Set(sample.PointingErrorDeg)
	s.met.HighRateStreak.Set(float64(s.deb.HighRateStreak()))
	s.met.SensorFailStreak.Set(float64(s.deb.SensorFailStreak()))

	if s.statusW == nil {
		return
	}
	snap := status.Snapshot{
		Health:           status.HealthOK,
		Mode:             s.current,
		HighRateStreak:   s.deb.HighRateStreak(),
		SensorFailStreak: s.deb.SensorFailStreak(),
		CyclesInFault:    s.cyclesInFault,
	}
	if s.current == mode.SafeMode {
		snap.Health = status.HealthFault
	}
	if err := s.statusW.WriteStatus(snap); err != nil {
		log.Errorf("status writeback failed: %v", err)
	}
}
