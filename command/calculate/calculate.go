package calculate

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"jobcode-stats/connectors/config"
	ccsv "jobcode-stats/connectors/csv"
	"jobcode-stats/domain/jobcode"
	"jobcode-stats/reporting"
)

// Run loads the three segment exports and writes the derived tables:
//
//	<out>/job_code_comparisons.csv       segments joined per job code, by profitability gap
//	<out>/cost_breakdown_<segment>.csv   per job code cost structure of each segment
//
// Usage:
//
//	jobcode-stats calculate [-out ./data] [-period 202506]
func Run(args []string) error {
	cfg, err := config.Load(config.Path())
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("calculate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	out := fs.String("out", "data", "output directory")
	period := fs.String("period", "", "period token, defaults to the latest configured period")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return fmt.Errorf("calculate: unexpected arguments %v", fs.Args())
	}

	store := reporting.Load(config.Loader(cfg), config.Sources(cfg))
	for _, rep := range store.Reports() {
		if rep.Error != "" {
			slog.Warn("calculate.source_unavailable", "segment", rep.Segment, "path", rep.Path, "error", rep.Error)
		}
	}
	return Write(reporting.NewService(store, cfg.Reporting.TopLimit), *out, *period)
}

// Write produces the derived CSVs of svc into dir.
func Write(svc *reporting.Service, dir, period string) error {
	if period == "" {
		period = svc.Store().LatestPeriod()
	}
	comparisons := reporting.Comparisons(svc.Store(), period)
	path := filepath.Join(dir, "job_code_comparisons.csv")
	if err := ccsv.WriteComparisons(path, comparisons); err != nil {
		return eris.Wrap(err, "calculate: comparisons")
	}
	slog.Info("calculate.written", "path", path, "rows", len(comparisons))

	for _, seg := range jobcode.Segments {
		rows := svc.CostBreakdowns(seg, period)
		path := filepath.Join(dir, "cost_breakdown_"+strings.ToLower(string(seg))+".csv")
		if err := ccsv.WriteCostBreakdowns(path, rows); err != nil {
			return eris.Wrapf(err, "calculate: cost breakdown %s", seg)
		}
		slog.Info("calculate.written", "path", path, "rows", len(rows))
	}
	slog.Info("calculate.done", "period", period, "dir", dir)
	return nil
}
