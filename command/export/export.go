package export

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"jobcode-stats/connectors/config"
	ccsv "jobcode-stats/connectors/csv"
	"jobcode-stats/domain/jobcode"
	"jobcode-stats/reporting"
)

// Run parses the segment exports and writes the flattened records of one
// segment as a tidy CSV, one row per job code and period.
//
// Usage:
//
//	jobcode-stats export [-segment Total] [-period 202506] [-out records.csv]
//
// Without -out the CSV goes to stdout.
func Run(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	segment := fs.String("segment", string(jobcode.Total), "segment to export: Total, D2C or B2B")
	period := fs.String("period", "", "only this period (all configured periods when empty)")
	out := fs.String("out", "", "output file (stdout when empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	seg, err := ParseSegment(*segment)
	if err != nil {
		slog.Error("export.validation.error", "reason", "unknown segment", "segment", *segment)
		return err
	}

	cfg, err := config.Load(config.Path())
	if err != nil {
		return err
	}
	store := reporting.Load(config.Loader(cfg), config.Sources(cfg))
	svc := reporting.NewService(store, cfg.Reporting.TopLimit)

	if *out == "" {
		_, err := Write(svc, seg, *period, os.Stdout)
		return err
	}
	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer f.Close()
	n, err := Write(svc, seg, *period, f)
	if err != nil {
		return err
	}
	slog.Info("export.done", "segment", seg, "period", *period, "path", *out, "records", n)
	return nil
}

// ParseSegment validates the -segment flag.
func ParseSegment(s string) (jobcode.Segment, error) {
	seg, ok := jobcode.ParseSegment(s)
	if !ok {
		return "", fmt.Errorf("export: unknown segment %q", s)
	}
	return seg, nil
}

// Write encodes the records of seg, limited to period when given, and returns
// how many rows were written.
func Write(svc *reporting.Service, seg jobcode.Segment, period string, w io.Writer) (int, error) {
	records := svc.List(reporting.Filter{Segment: seg, Period: period})
	if err := ccsv.Encode(w, records); err != nil {
		return 0, err
	}
	return len(records), nil
}
