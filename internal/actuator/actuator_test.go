// internal/actuator/actuator_test.go
package actuator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotasat/adcs-supervisor/internal/mode"
	"github.com/iotasat/adcs-supervisor/internal/telemetry"
)

var testLimits = Limits{
	MagnetorquerMaxNm:   0.1,
	ReactionWheelMaxNm:  0.2,
	KpSun:               0.05,
	KpPointing:          0.1,
	AngularRateDegS:     5.0,
	SunAlignmentDeg:     5.0,
	PointingDeadbandDeg: 0.5,
}

func TestDetumblingBangBang(t *testing.T) {
	s := telemetry.Sample{AngularRateDegS: 8.0}
	r := Dispatch(mode.Detumbling, s, testLimits)
	require.Equal(t, -0.1, r.TorqueNm)
}

func TestDetumblingBelowThresholdNoTorque(t *testing.T) {
	s := telemetry.Sample{AngularRateDegS: 2.0}
	r := Dispatch(mode.Detumbling, s, testLimits)
	require.Zero(t, r.TorqueNm)
	require.Contains(t, r.Note, "ready to transition")
}

func TestSunAcquisitionProportional(t *testing.T) {
	s := telemetry.Sample{SunErrorDeg: 20.0}
	r := Dispatch(mode.SunAcquisition, s, testLimits)
	require.InDelta(t, -1.0, r.TorqueNm, 1e-9)
}

func TestSunAcquisitionAlignedNoTorque(t *testing.T) {
	s := telemetry.Sample{SunErrorDeg: 3.0}
	r := Dispatch(mode.SunAcquisition, s, testLimits)
	require.Zero(t, r.TorqueNm)
}

func TestNominalPointingProportional(t *testing.T) {
	s := telemetry.Sample{PointingErrorDeg: 1.5}
	r := Dispatch(mode.NominalPointing, s, testLimits)
	require.InDelta(t, -0.15, r.TorqueNm, 1e-9)
}

func TestNominalPointingClampedToWheelAuthority(t *testing.T) {
	s := telemetry.Sample{PointingErrorDeg: 4.0}
	r := Dispatch(mode.NominalPointing, s, testLimits)
	require.Equal(t, -0.2, r.TorqueNm)
}

func TestNominalPointingDeadband(t *testing.T) {
	s := telemetry.Sample{PointingErrorDeg: 0.4}
	r := Dispatch(mode.NominalPointing, s, testLimits)
	require.Zero(t, r.TorqueNm)
}

func TestSafeModeNeverActuates(t *testing.T) {
	s := telemetry.Sample{
		AngularRateDegS:  9.0,
		SunErrorDeg:      30.0,
		PointingErrorDeg: 5.0,
	}
	r := Dispatch(mode.SafeMode, s, testLimits)
	require.Zero(t, r.TorqueNm)
	require.Contains(t, r.Note, "safe mode")
}
