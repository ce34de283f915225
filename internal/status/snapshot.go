// internal/status/snapshot.go
package status

import "github.com/iotasat/adcs-supervisor/internal/mode"

// Snapshot is exactly what the supervisor is allowed to publish.
// It contains no logic and no memory of the past beyond current state.
type Snapshot struct {
	Health           uint16
	Mode             mode.Mode
	HighRateStreak   uint
	SensorFailStreak uint
	CyclesInFault    uint
}
