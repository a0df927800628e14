package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/gallery/config"
)

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir           string
	telemetryFile *os.File

	// Track if headers have been written
	telemetryHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output
// directory. Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	telemetryPath := filepath.Join(dir, "telemetry.csv")
	f, err := os.Create(telemetryPath)
	if err != nil {
		return nil, fmt.Errorf("creating telemetry.csv: %w", err)
	}
	om.telemetryFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML next to the CSV logs.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	configPath := filepath.Join(om.dir, "config.yaml")
	return cfg.WriteYAML(configPath)
}

// WriteTelemetry writes a window stats record to telemetry.csv.
func (om *OutputManager) WriteTelemetry(stats WindowStats) error {
	if om == nil {
		return nil
	}

	records := []WindowStats{stats}

	if !om.telemetryHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.telemetryFile); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
		om.telemetryHeaderWritten = true
	} else {
		// Subsequent writes skip headers
		if err := gocsv.MarshalWithoutHeaders(records, om.telemetryFile); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
	}

	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil || om.telemetryFile == nil {
		return nil
	}
	return om.telemetryFile.Close()
}
