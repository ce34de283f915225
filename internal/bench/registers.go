// internal/bench/registers.go
package bench

// EGSE bench register map.
// These values define the bench protocol and MUST NOT be configurable.

// ---- TELEMETRY (input registers, read-only) ----

// RegAngularRate holds angular rate in centidegrees per second.
const RegAngularRate = 0

// RegSunError holds sun-pointing error in centidegrees.
const RegSunError = 1

// RegPointingError holds attitude error in centidegrees.
const RegPointingError = 2

// RegPowerFlags holds packed power bits (see flag masks below).
const RegPowerFlags = 3

// RegSensorStatus holds the sensor suite self-test result.
// Zero means healthy; non-zero is a bench-defined fault code.
const RegSensorStatus = 4

// TelemetryQuantity is the size of one telemetry read.
const TelemetryQuantity = 5

// ---- POWER FLAG MASKS ----

const (
	PowerFlagOK      = 1 << 0 // battery above safe threshold
	PowerFlagEclipse = 1 << 1 // spacecraft in shadow
)

// ---- COMMANDS (holding registers, written by the supervisor) ----

// RegTorqueCommand holds the commanded torque in milli-Nm,
// int16 two's complement.
const RegTorqueCommand = 0

// RegModeReport holds the current control mode as its enum value.
const RegModeReport = 1

// RegStatusBase is the first register of the supervisor status block.
const RegStatusBase = 8

// ---- SCALING ----

// AngleScale converts centidegree registers to degrees.
const AngleScale = 100.0

// TorqueScale converts Nm to milli-Nm register units.
const TorqueScale = 1000.0
