// internal/engine/engine.go
package engine

import (
	"github.com/iotasat/adcs-supervisor/internal/fault"
	"github.com/iotasat/adcs-supervisor/internal/mode"
	"github.com/iotasat/adcs-supervisor/internal/telemetry"
)

// Thresholds are the decision boundaries for one evaluation.
type Thresholds struct {
	AngularRateDegS float64 // above this, detumbling is forced
	SunAlignmentDeg float64 // below this, pointing is allowed
}

// Decide computes the next mode from the current mode, one telemetry
// sample and the debounced fault flags. Pure function: all state lives
// in the debouncer and arrives via flags.
//
// Rules are evaluated in strict priority order; the first match wins.
// High angular rate appears twice on purpose: the debounced rule
// confirms borderline persistent rates while the instantaneous rule
// reacts to a single violent reading (post-deployment tip-off) without
// waiting for confirmation. Every evaluation yields a concrete target
// mode; staying put is the engine choosing the current mode again.
func Decide(current mode.Mode, s telemetry.Sample, f fault.Flags, t Thresholds) mode.Mode {
	switch {
	case f.PersistentSensorFail:
		return mode.SafeMode
	case !s.PowerOK && s.InEclipse:
		return mode.SafeMode
	case f.PersistentHighRate:
		return mode.Detumbling
	case s.AngularRateDegS > t.AngularRateDegS:
		return mode.Detumbling
	case current == mode.SunAcquisition && s.SunErrorDeg < t.SunAlignmentDeg:
		return mode.NominalPointing
	case s.SunErrorDeg < t.SunAlignmentDeg:
		return mode.NominalPointing
	}
	return mode.SunAcquisition
}
