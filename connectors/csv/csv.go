package csv

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"

	"jobcode-stats/domain/jobcode"
)

// Encode writes rows as CSV with a header taken from the csv struct tags of T.
// An empty slice still produces the header line.
func Encode[T any](w io.Writer, rows []T) error {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)
	var err error
	if len(rows) == 0 {
		var zero T
		err = enc.EncodeHeader(zero)
	} else {
		err = enc.Encode(rows)
	}
	if err != nil {
		return eris.Wrap(err, "encode csv")
	}
	cw.Flush()
	return cw.Error()
}

// writeFile creates path (and its directory) and encodes rows into it.
func writeFile[T any](path string, rows []T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return eris.Wrapf(err, "create directory for %s", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "create %s", path)
	}
	defer f.Close()
	if err := Encode(f, rows); err != nil {
		return eris.Wrapf(err, "write %s", path)
	}
	return nil
}

// WriteRecords writes job code records, one row per segment and period.
func WriteRecords(path string, records []jobcode.Record) error {
	return writeFile(path, records)
}

// WriteCostBreakdowns writes per job code cost structures.
func WriteCostBreakdowns(path string, rows []jobcode.CostBreakdown) error {
	return writeFile(path, rows)
}

// ComparisonRow flattens a Comparison; segments absent for a job code leave
// their columns at zero.
type ComparisonRow struct {
	JobCode               string  `csv:"job_code"`
	JobDescription        string  `csv:"job_description"`
	Period                string  `csv:"period"`
	TotalCallVolume       int     `csv:"total_call_volume"`
	TotalProfitPerCall    float64 `csv:"total_profit_per_call"`
	TotalRevenuePerCall   float64 `csv:"total_revenue_per_call"`
	D2CCallVolume         int     `csv:"d2c_call_volume"`
	D2CProfitPerCall      float64 `csv:"d2c_profit_per_call"`
	D2CRevenuePerCall     float64 `csv:"d2c_revenue_per_call"`
	B2BCallVolume         int     `csv:"b2b_call_volume"`
	B2BProfitPerCall      float64 `csv:"b2b_profit_per_call"`
	B2BRevenuePerCall     float64 `csv:"b2b_revenue_per_call"`
	BestPerformingSegment string  `csv:"best_performing_segment"`
	ProfitabilityGap      float64 `csv:"profitability_gap"`
	RevenueGap            float64 `csv:"revenue_gap"`
}

// NewComparisonRow flattens c.
func NewComparisonRow(c jobcode.Comparison) ComparisonRow {
	row := ComparisonRow{
		JobCode:               c.JobCode,
		JobDescription:        c.JobDescription,
		Period:                c.Period,
		BestPerformingSegment: string(c.BestPerformingSegment),
		ProfitabilityGap:      c.ProfitabilityGap,
		RevenueGap:            c.RevenueGap,
	}
	if r := c.Total; r != nil {
		row.TotalCallVolume, row.TotalProfitPerCall, row.TotalRevenuePerCall = r.CallVolume, r.PPTProfitPerCall, r.TotalRevenuePerCall
	}
	if r := c.D2C; r != nil {
		row.D2CCallVolume, row.D2CProfitPerCall, row.D2CRevenuePerCall = r.CallVolume, r.PPTProfitPerCall, r.TotalRevenuePerCall
	}
	if r := c.B2B; r != nil {
		row.B2BCallVolume, row.B2BProfitPerCall, row.B2BRevenuePerCall = r.CallVolume, r.PPTProfitPerCall, r.TotalRevenuePerCall
	}
	return row
}

// WriteComparisons writes the segment comparison of every job code.
func WriteComparisons(path string, comparisons []jobcode.Comparison) error {
	rows := make([]ComparisonRow, 0, len(comparisons))
	for _, c := range comparisons {
		rows = append(rows, NewComparisonRow(c))
	}
	return writeFile(path, rows)
}
