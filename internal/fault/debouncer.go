// internal/fault/debouncer.go
package fault

// Flags is the debounced fault verdict for one cycle.
type Flags struct {
	PersistentHighRate   bool
	PersistentSensorFail bool
}

// Debouncer tracks consecutive-cycle streaks for the two fault classes
// and latches a flag only once a streak reaches its persistence count.
// A single noisy reading must not force a mode change; only sustained
// anomalies are acted on.
//
// Streaks are process-lifetime state: a restart starts from zero, since
// a restart implies a fresh health baseline. Owned by exactly one
// supervisor; not safe for concurrent use.
type Debouncer struct {
	highRatePersistence   uint
	sensorFailPersistence uint

	highRateStreak   uint
	sensorFailStreak uint
}

func New(highRatePersistence, sensorFailPersistence uint) *Debouncer {
	return &Debouncer{
		highRatePersistence:   highRatePersistence,
		sensorFailPersistence: sensorFailPersistence,
	}
}

// Update feeds one cycle's raw verdicts. Each streak increments on a bad
// reading and resets to zero on a good one; the returned flags reflect
// the counts after this cycle is applied.
func (d *Debouncer) Update(highRateBad, sensorBad bool) Flags {
	if highRateBad {
		d.highRateStreak++
	} else {
		d.highRateStreak = 0
	}

	if sensorBad {
		d.sensorFailStreak++
	} else {
		d.sensorFailStreak = 0
	}

	return Flags{
		PersistentHighRate:   d.highRateStreak >= d.highRatePersistence,
		PersistentSensorFail: d.sensorFailStreak >= d.sensorFailPersistence,
	}
}

// HighRateStreak reports the current consecutive high-rate count.
func (d *Debouncer) HighRateStreak() uint { return d.highRateStreak }

// SensorFailStreak reports the current consecutive sensor-fail count.
func (d *Debouncer) SensorFailStreak() uint { return d.sensorFailStreak }
