// internal/status/constants.go
package status

// Supervisor status block layout.
// These values define the bench protocol and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// BlockSlots is the fixed number of registers in the status block.
const BlockSlots = 8

// ---- SLOT INDICES ----

// SlotHealthCode holds the supervisor health state.
const SlotHealthCode = 0

// SlotMode holds the current control mode as its enum value.
const SlotMode = 1

// SlotHighRateStreak holds the consecutive high-rate cycle count.
const SlotHighRateStreak = 2

// SlotSensorFailStreak holds the consecutive sensor-fail cycle count.
const SlotSensorFailStreak = 3

// SlotCyclesInFault holds the number of cycles spent in SAFE_MODE.
const SlotCyclesInFault = 4

// ---- RESERVED RANGE ----

// Slots 5-7 are reserved for future use.
const SlotReservedStart = 5
const SlotReservedEnd = 7

// ---- HEALTH CODES ----

// HealthUnknown represents an unknown or boot state.
const HealthUnknown uint16 = 0

// HealthOK represents a nominal supervisor.
const HealthOK uint16 = 1

// HealthFault represents a supervisor holding a latched fault.
const HealthFault uint16 = 2
