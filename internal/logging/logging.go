// internal/logging/logging.go
package logging

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// eventFormatter renders one event per line as "[timestamp] message",
// the append-only format consumed by offline fault analysis.
type eventFormatter struct{}

func (eventFormatter) Format(e *log.Entry) ([]byte, error) {
	return []byte(fmt.Sprintf("[%s] %s\n", e.Time.Format("2006-01-02 15:04:05"), e.Message)), nil
}

// Setup configures the process logger: events mirrored to the console
// and appended to file (when set), at the given level.
// Returns a closer for the log file.
func Setup(file, level string) (func() error, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	log.SetLevel(lvl)
	log.SetFormatter(eventFormatter{})

	if file == "" {
		return func() error { return nil }, nil
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: open %s: %w", file, err)
	}
	log.SetOutput(io.MultiWriter(os.Stdout, f))
	return f.Close, nil
}
