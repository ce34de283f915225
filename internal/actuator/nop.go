// internal/actuator/nop.go
package actuator

import "github.com/iotasat/adcs-supervisor/internal/mode"

// NopSink discards commands. Used in simulation runs where there is no
// actuator chain; the supervisor still logs every report.
type NopSink struct{}

func (NopSink) Apply(mode.Mode, Report) error { return nil }
