// internal/engine/engine_test.go
package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotasat/adcs-supervisor/internal/fault"
	"github.com/iotasat/adcs-supervisor/internal/mode"
	"github.com/iotasat/adcs-supervisor/internal/telemetry"
)

var testThresholds = Thresholds{
	AngularRateDegS: 5.0,
	SunAlignmentDeg: 5.0,
}

// nominal is a sample that triggers no rule before the sun checks.
func nominal() telemetry.Sample {
	return telemetry.Sample{
		AngularRateDegS:  1.0,
		SunErrorDeg:      20.0,
		PointingErrorDeg: 0.2,
		PowerOK:          true,
		InEclipse:        false,
		SensorOK:         true,
	}
}

func TestPersistentSensorFailForcesSafeMode(t *testing.T) {
	s := nominal()
	f := fault.Flags{PersistentSensorFail: true}

	for _, current := range mode.All() {
		require.Equal(t, mode.SafeMode, Decide(current, s, f, testThresholds))
	}
}

func TestSensorFailOutranksHighRate(t *testing.T) {
	// Rules 1 and 4 satisfied together must yield the rule-1 result.
	s := nominal()
	s.AngularRateDegS = 9.0
	f := fault.Flags{PersistentSensorFail: true, PersistentHighRate: true}

	require.Equal(t, mode.SafeMode, Decide(mode.NominalPointing, s, f, testThresholds))
}

func TestPowerCriticalInEclipseForcesSafeMode(t *testing.T) {
	s := nominal()
	s.PowerOK = false
	s.InEclipse = true
	s.PointingErrorDeg = 42.0

	require.Equal(t, mode.SafeMode, Decide(mode.NominalPointing, s, fault.Flags{}, testThresholds))
}

func TestLowPowerInSunlightIsNotCritical(t *testing.T) {
	s := nominal()
	s.PowerOK = false
	s.InEclipse = false
	s.SunErrorDeg = 3.0

	require.Equal(t, mode.NominalPointing, Decide(mode.NominalPointing, s, fault.Flags{}, testThresholds))
}

func TestPersistentHighRateForcesDetumbling(t *testing.T) {
	s := nominal()
	s.AngularRateDegS = 4.9 // below the instantaneous threshold
	f := fault.Flags{PersistentHighRate: true}

	require.Equal(t, mode.Detumbling, Decide(mode.NominalPointing, s, f, testThresholds))
}

func TestInstantaneousHighRateForcesDetumbling(t *testing.T) {
	// A single violent reading acts before the streak confirms.
	s := nominal()
	s.AngularRateDegS = 7.0

	require.Equal(t, mode.Detumbling, Decide(mode.NominalPointing, s, fault.Flags{}, testThresholds))
}

func TestSunAcquisitionCompletes(t *testing.T) {
	s := nominal()
	s.SunErrorDeg = 3.0

	require.Equal(t, mode.NominalPointing, Decide(mode.SunAcquisition, s, fault.Flags{}, testThresholds))
}

func TestAlignedFromAnyModeGoesNominal(t *testing.T) {
	s := nominal()
	s.SunErrorDeg = 2.0

	require.Equal(t, mode.NominalPointing, Decide(mode.Detumbling, s, fault.Flags{}, testThresholds))
	require.Equal(t, mode.NominalPointing, Decide(mode.SafeMode, s, fault.Flags{}, testThresholds))
}

func TestMisalignedFallsThroughToSunAcquisition(t *testing.T) {
	s := nominal()
	s.SunErrorDeg = 25.0

	require.Equal(t, mode.SunAcquisition, Decide(mode.NominalPointing, s, fault.Flags{}, testThresholds))
}

func TestDecideIsPure(t *testing.T) {
	s := nominal()
	s.AngularRateDegS = 7.0
	f := fault.Flags{PersistentHighRate: true}

	first := Decide(mode.SunAcquisition, s, f, testThresholds)
	second := Decide(mode.SunAcquisition, s, f, testThresholds)
	require.Equal(t, first, second)
}

func TestDecideAlwaysReturnsDefinedMode(t *testing.T) {
	samples := []telemetry.Sample{
		nominal(),
		{AngularRateDegS: 10, SunErrorDeg: 180, PowerOK: false, InEclipse: true},
		{SunErrorDeg: 0.1, PowerOK: true, SensorOK: true},
		{},
	}
	flags := []fault.Flags{
		{},
		{PersistentHighRate: true},
		{PersistentSensorFail: true},
		{PersistentHighRate: true, PersistentSensorFail: true},
	}

	for _, current := range mode.All() {
		for _, s := range samples {
			for _, f := range flags {
				got := Decide(current, s, f, testThresholds)
				require.Contains(t, mode.All(), got)
			}
		}
	}
}
