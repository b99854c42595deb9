package jobcodes

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"jobcode-stats/domain/jobcode"
)

func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		r := row
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+1), &r); err != nil {
			t.Fatalf("set row %d: %v", i+1, err)
		}
	}
	path := filepath.Join(t.TempDir(), "job-codes-total.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func TestReadMatrixWorkbook(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"", "202505", "202506"},
		{"90001-A - Thermostat Repair", "10", "15"},
		{"PPT PROFIT PER CALL", "$50.00", "$60.00"},
		{"TOTAL REVENUE PER CALL", "$200.00", "$220.00"},
	})

	matrix, err := ReadMatrix(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(matrix) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(matrix))
	}
	if matrix[0][2] != "202506" || matrix[1][0] != "90001-A - Thermostat Repair" || matrix[2][2] != "$60.00" {
		t.Errorf("unexpected matrix: %q", matrix)
	}

	l := Loader{Periods: []string{"202505", "202506"}, MinVolume: 1}
	recs, rep := l.LoadFile(Source{Segment: jobcode.Total, Path: path})
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d (%+v)", len(recs), rep)
	}
	r := recs[1]
	if r.JobCode != "90001-A" || r.Period != "202506" || r.CallVolume != 15 || r.PPTProfitPerCall != 60 || r.TotalRevenuePerCall != 220 {
		t.Errorf("unexpected record: %+v", r)
	}
	if !rep.Found || rep.Blocks != 1 || rep.Records != 2 || rep.Error != "" {
		t.Errorf("unexpected report: %+v", rep)
	}
}

func TestReadMatrixMissingWorkbook(t *testing.T) {
	l := Loader{Periods: []string{"202506"}}
	_, rep := l.LoadFile(Source{Segment: jobcode.D2C, Path: filepath.Join(t.TempDir(), "none.xlsx")})
	if rep.Found || rep.Error != "file not found" {
		t.Errorf("missing workbook should be reported as not found: %+v", rep)
	}
}
