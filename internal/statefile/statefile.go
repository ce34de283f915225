// internal/statefile/statefile.go
package statefile

import (
	"encoding/json"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/iotasat/adcs-supervisor/internal/mode"
)

// record is the on-disk layout of the non-volatile mode store.
type record struct {
	State string `json:"state"`
}

// Store persists the current mode so a restart resumes the action
// already underway instead of a hazardous default.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Save overwrites the persisted mode. Called once per cycle; a failure
// leaves the last successfully written mode on disk.
func (s *Store) Save(m mode.Mode) error {
	data, err := json.Marshal(record{State: m.String()})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// Load returns the last persisted mode. Missing, unreadable or
// unparsable content is non-fatal: the condition is logged and the safe
// default mode is returned.
func (s *Store) Load() mode.Mode {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Infof("no saved state at %s, defaulting to %s", s.path, mode.Default)
		} else {
			log.Warnf("state load failed: %v, defaulting to %s", err, mode.Default)
		}
		return mode.Default
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		log.Warnf("state file corrupt: %v, defaulting to %s", err, mode.Default)
		return mode.Default
	}

	m, err := mode.Parse(rec.State)
	if err != nil {
		log.Warnf("state file invalid: %v, defaulting to %s", err, mode.Default)
		return mode.Default
	}
	return m
}
