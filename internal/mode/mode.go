// internal/mode/mode.go
package mode

import "fmt"

// Mode is the ADCS control mode. Exactly one mode is current at any time
// and it is the only state that survives a restart.
type Mode uint8

const (
	Detumbling Mode = iota
	SunAcquisition
	NominalPointing
	SafeMode
)

// Default is the recovery mode when no valid persisted mode exists.
// Detumbling forces rate reduction before any pointing attempt.
const Default = Detumbling

func (m Mode) String() string {
	switch m {
	case Detumbling:
		return "DETUMBLING"
	case SunAcquisition:
		return "SUN_ACQUISITION"
	case NominalPointing:
		return "NOMINAL_POINTING"
	case SafeMode:
		return "SAFE_MODE"
	}
	return "UNKNOWN"
}

// Parse maps a persisted mode name back to a Mode.
func Parse(s string) (Mode, error) {
	switch s {
	case "DETUMBLING":
		return Detumbling, nil
	case "SUN_ACQUISITION":
		return SunAcquisition, nil
	case "NOMINAL_POINTING":
		return NominalPointing, nil
	case "SAFE_MODE":
		return SafeMode, nil
	}
	return Default, fmt.Errorf("mode: unknown mode %q", s)
}

// All lists every mode, in enum order.
func All() []Mode {
	return []Mode{Detumbling, SunAcquisition, NominalPointing, SafeMode}
}
