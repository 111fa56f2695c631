package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/logistic/config"
	"github.com/pthm-cable/logistic/population"
)

// TrajectoryRecord is one row of trajectory.csv.
type TrajectoryRecord struct {
	Run        string  `csv:"run"`
	Time       int     `csv:"time"`
	Population float64 `csv:"population"`
}

// OutputManager handles structured experiment output with CSV logging.
type OutputManager struct {
	dir            string
	trajectoryFile *os.File
	summaryFile    *os.File
	bookmarkFile   *os.File

	// Track if headers have been written
	trajectoryHeaderWritten bool
	summaryHeaderWritten    bool
	bookmarkHeaderWritten   bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	files := []struct {
		name string
		dst  **os.File
	}{
		{"trajectory.csv", &om.trajectoryFile},
		{"summary.csv", &om.summaryFile},
		{"bookmarks.csv", &om.bookmarkFile},
	}
	for _, f := range files {
		fh, err := os.Create(filepath.Join(dir, f.name))
		if err != nil {
			om.Close()
			return nil, fmt.Errorf("creating %s: %w", f.name, err)
		}
		*f.dst = fh
	}

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteTrajectory appends every point of tr to trajectory.csv under the given run label.
func (om *OutputManager) WriteTrajectory(run string, tr population.Trajectory) error {
	if om == nil {
		return nil
	}

	records := make([]TrajectoryRecord, 0, tr.Len())
	for _, p := range tr.Points() {
		records = append(records, TrajectoryRecord{Run: run, Time: p.Time, Population: p.Population})
	}

	if err := writeRecords(om.trajectoryFile, records, &om.trajectoryHeaderWritten); err != nil {
		return fmt.Errorf("writing trajectory: %w", err)
	}
	return nil
}

// WriteSummary writes a summary record to summary.csv.
func (om *OutputManager) WriteSummary(s Summary) error {
	if om == nil {
		return nil
	}
	if err := writeRecords(om.summaryFile, []Summary{s}, &om.summaryHeaderWritten); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}

// WriteBookmark writes a bookmark record to bookmarks.csv.
func (om *OutputManager) WriteBookmark(b Bookmark) error {
	if om == nil {
		return nil
	}
	if err := writeRecords(om.bookmarkFile, []Bookmark{b}, &om.bookmarkHeaderWritten); err != nil {
		return fmt.Errorf("writing bookmark: %w", err)
	}
	return nil
}

// writeRecords marshals records, including the header only on the first write.
func writeRecords(f *os.File, records any, headerWritten *bool) error {
	if !*headerWritten {
		if err := gocsv.Marshal(records, f); err != nil {
			return err
		}
		*headerWritten = true
		return nil
	}
	return gocsv.MarshalWithoutHeaders(records, f)
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
	if om == nil {
		return nil
	}

	var firstErr error
	for _, f := range []*os.File{om.trajectoryFile, om.summaryFile, om.bookmarkFile} {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
