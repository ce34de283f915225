// internal/fault/debouncer_test.go
package fault

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSensorFailLatchesAtPersistenceCount(t *testing.T) {
	d := New(3, 3)

	f := d.Update(false, true)
	require.False(t, f.PersistentSensorFail)
	f = d.Update(false, true)
	require.False(t, f.PersistentSensorFail)
	f = d.Update(false, true)
	require.True(t, f.PersistentSensorFail)
}

func TestAlmostPersistentNeverLatches(t *testing.T) {
	d := New(3, 3)

	// N-1 bad readings followed by one good must never latch.
	f := d.Update(true, true)
	require.False(t, f.PersistentHighRate)
	require.False(t, f.PersistentSensorFail)
	f = d.Update(true, true)
	require.False(t, f.PersistentHighRate)
	require.False(t, f.PersistentSensorFail)
	f = d.Update(false, false)
	require.False(t, f.PersistentHighRate)
	require.False(t, f.PersistentSensorFail)
}

func TestGoodReadingResetsToZero(t *testing.T) {
	d := New(3, 3)

	for i := 0; i < 5; i++ {
		d.Update(true, true)
	}
	require.Equal(t, uint(5), d.HighRateStreak())

	// One good cycle resets, not decrements.
	d.Update(false, false)
	require.Equal(t, uint(0), d.HighRateStreak())
	require.Equal(t, uint(0), d.SensorFailStreak())

	// A fresh streak needs the full persistence count again.
	f := d.Update(true, true)
	require.False(t, f.PersistentHighRate)
	require.False(t, f.PersistentSensorFail)
}

func TestStreaksAreIndependent(t *testing.T) {
	d := New(3, 3)

	d.Update(true, false)
	d.Update(true, true)
	f := d.Update(true, false)

	require.True(t, f.PersistentHighRate)
	require.False(t, f.PersistentSensorFail)
	require.Equal(t, uint(0), d.SensorFailStreak())
}

func TestFlagStaysLatchedWhileBad(t *testing.T) {
	d := New(2, 2)

	d.Update(true, false)
	f := d.Update(true, false)
	require.True(t, f.PersistentHighRate)

	// Streak keeps counting past the threshold.
	f = d.Update(true, false)
	require.True(t, f.PersistentHighRate)
	require.Equal(t, uint(3), d.HighRateStreak())
}
