package logger

import (
	"fmt"
	"os"
	"path/filepath"
)

// logDir resolves the directory log files belong in. On a beamline this is
// the beamline's serial log area; in development it is ./tmp/logs relative
// to the working directory.
func logDir(beamline string) string {
	if beamline != "" {
		return filepath.Join("/dls_sw", beamline, "logs", "serial")
	}
	return filepath.Join("tmp", "logs")
}

// LogPath returns the log directory for the given beamline, creating it if
// it does not exist yet.
func LogPath(beamline string) (string, error) {
	dir := logDir(beamline)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}
	return dir, nil
}
