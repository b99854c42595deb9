package jobcodes

import (
	"errors"
	"log/slog"
	"os"

	"jobcode-stats/domain/jobcode"
)

// Source is one segment export on disk.
type Source struct {
	Segment jobcode.Segment
	Path    string
}

// LoadReport describes what was read from one export.
type LoadReport struct {
	Segment      jobcode.Segment `json:"segment"`
	Path         string          `json:"path"`
	Found        bool            `json:"found"`
	Rows         int             `json:"rows"`
	Blocks       int             `json:"blocks"`
	Records      int             `json:"records"`
	WarningCount int             `json:"warningCount"`
	Warnings     []ParseWarning  `json:"warnings,omitempty"`
	Error        string          `json:"error,omitempty"`
}

// maxReportedWarnings caps the warnings kept verbatim in a report.
const maxReportedWarnings = 50

// Loader turns segment exports into records for a fixed set of periods.
type Loader struct {
	Periods   []string
	MinVolume int
}

// Parse runs a matrix through the classifier and the materializer.
func (l Loader) Parse(seg jobcode.Segment, matrix [][]string) ([]jobcode.Record, LoadReport) {
	rep := LoadReport{Segment: seg, Found: true, Rows: len(matrix)}
	if len(matrix) == 0 {
		return nil, rep
	}
	header := matrix[0]
	blocks := Classify(matrix)
	rep.Blocks = len(blocks)

	var records []jobcode.Record
	for _, b := range blocks {
		if len(b.Unknown) > 0 {
			slog.Debug("loader.unknown_labels", "segment", seg, "job_code", b.JobCode, "labels", b.Unknown)
		}
		recs, warns := Materialize(b, header, l.Periods, seg, l.MinVolume)
		records = append(records, recs...)
		rep.WarningCount += len(warns)
		for _, w := range warns {
			if len(rep.Warnings) >= maxReportedWarnings {
				break
			}
			rep.Warnings = append(rep.Warnings, w)
		}
	}
	rep.Records = len(records)
	return records, rep
}

// LoadFile reads and parses one export. A missing or unreadable file leaves the
// segment empty; the failure is logged and kept in the report, never returned.
func (l Loader) LoadFile(src Source) ([]jobcode.Record, LoadReport) {
	matrix, err := ReadMatrix(src.Path)
	if err != nil {
		rep := LoadReport{Segment: src.Segment, Path: src.Path, Error: err.Error()}
		if errors.Is(err, os.ErrNotExist) {
			slog.Warn("loader.missing_file", "segment", src.Segment, "path", src.Path)
			rep.Error = "file not found"
		} else {
			rep.Found = true
			slog.Error("loader.read_failed", "segment", src.Segment, "path", src.Path, "err", err)
		}
		return nil, rep
	}
	records, rep := l.Parse(src.Segment, matrix)
	rep.Path = src.Path
	slog.Info("loader.file", "segment", src.Segment, "path", src.Path, "rows", rep.Rows, "blocks", rep.Blocks, "records", rep.Records, "warnings", rep.WarningCount)
	return records, rep
}
