// internal/supervisor/runner.go
package supervisor

import (
	"context"
	"time"
)

// Run drives the control loop at the fixed cycle interval until ctx is
// cancelled. The stop signal is honored between cycles only, so
// actuation and persistence of a cycle are never left half-done.
func (s *Supervisor) Run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		s.Step()

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
