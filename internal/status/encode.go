// internal/status/encode.go
package status

// Encode converts a Snapshot into a full status block.
// Layout is protocol-locked. No IO. No side effects.
func Encode(s Snapshot) []uint16 {
	regs := make([]uint16, BlockSlots)

	regs[SlotHealthCode] = s.Health
	regs[SlotMode] = uint16(s.Mode)
	regs[SlotHighRateStreak] = clamp16(s.HighRateStreak)
	regs[SlotSensorFailStreak] = clamp16(s.SensorFailStreak)
	regs[SlotCyclesInFault] = clamp16(s.CyclesInFault)

	return regs
}

// clamp16 saturates a counter so the register never wraps.
func clamp16(v uint) uint16 {
	if v > 65535 {
		return 65535
	}
	return uint16(v)
}
