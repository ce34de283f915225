// internal/telemetry/types.go
package telemetry

// Sample is one cycle's worth of readings.
// Immutable once produced; the same sample must feed both actuation
// dispatch and the transition engine within a cycle.
type Sample struct {
	AngularRateDegS  float64 // >= 0
	SunErrorDeg      float64 // [0, 180]
	PointingErrorDeg float64 // >= 0
	PowerOK          bool    // battery above safe threshold
	InEclipse        bool
	SensorOK         bool // sensor check result after retries
}

// PowerStatus is the raw power subsystem reading.
type PowerStatus struct {
	OK      bool
	Eclipse bool
}

// Provider abstracts the sensor suite. The supervisor depends on this
// seam only, so real hardware, a HIL bench or a simulation can be
// swapped in at construction.
type Provider interface {
	AngularRate() (float64, error)   // deg/s
	SunError() (float64, error)      // deg off sun vector
	PointingError() (float64, error) // deg off target attitude
	PowerStatus() (PowerStatus, error)

	// SensorCheck reports sensor suite health. A non-nil error is one
	// failed check attempt; the caller owns retries and debouncing.
	SensorCheck() error
}
