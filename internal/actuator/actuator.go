// internal/actuator/actuator.go
package actuator

import (
	"github.com/iotasat/adcs-supervisor/internal/mode"
	"github.com/iotasat/adcs-supervisor/internal/telemetry"
)

// Limits are the actuation gains and authority bounds.
type Limits struct {
	MagnetorquerMaxNm  float64
	ReactionWheelMaxNm float64
	KpSun              float64
	KpPointing         float64

	AngularRateDegS     float64 // detumbling bang-bang threshold
	SunAlignmentDeg     float64 // sun acquisition dead zone
	PointingDeadbandDeg float64
}

// Report is what one dispatch commanded, for delivery and logging.
type Report struct {
	TorqueNm float64
	Note     string
}

// Sink delivers a commanded torque to the actuator chain.
// Delivery only: a sink never influences the next-mode decision.
type Sink interface {
	Apply(m mode.Mode, r Report) error
}

// Dispatch computes the control action for the current mode against one
// telemetry sample. No state, no side effects, exhaustive over modes.
func Dispatch(m mode.Mode, s telemetry.Sample, lim Limits) Report {
	switch m {
	case mode.Detumbling:
		if s.AngularRateDegS > lim.AngularRateDegS {
			// Bang-bang: full magnetorquer authority against the spin.
			torque := -lim.MagnetorquerMaxNm
			if s.AngularRateDegS < 0 {
				torque = lim.MagnetorquerMaxNm
			}
			return Report{TorqueNm: torque, Note: "detumbling with magnetorquers"}
		}
		return Report{Note: "angular rate within safe limits, ready to transition"}

	case mode.SunAcquisition:
		if s.SunErrorDeg > lim.SunAlignmentDeg {
			return Report{
				TorqueNm: -lim.KpSun * s.SunErrorDeg,
				Note:     "adjusting attitude toward sun vector",
			}
		}
		return Report{Note: "sun alignment achieved"}

	case mode.NominalPointing:
		if s.PointingErrorDeg > lim.PointingDeadbandDeg {
			torque := -lim.KpPointing * s.PointingErrorDeg
			if torque < -lim.ReactionWheelMaxNm {
				torque = -lim.ReactionWheelMaxNm
			}
			return Report{TorqueNm: torque, Note: "correcting attitude with reaction wheels"}
		}
		return Report{Note: "attitude stable and within tolerance"}
	}

	// SafeMode and anything unexpected: never actuate.
	return Report{Note: "safe mode, minimal operations"}
}
