package csv

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jszwec/csvutil"

	"jobcode-stats/domain/jobcode"
)

func TestEncodeEmptyWritesHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, []ComparisonRow{}); err != nil {
		t.Fatal(err)
	}
	line := strings.TrimSpace(buf.String())
	if !strings.HasPrefix(line, "job_code,job_description,period,") || strings.Contains(line, "\n") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestWriteRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "records.csv")
	in := []jobcode.Record{
		{JobCode: "90001", JobDescription: "Thermostat Diagnostic", Segment: jobcode.Total, Period: "202506", CallVolume: 12, PPTProfitPerCall: 42.5},
		{JobCode: "90002", JobDescription: "Compressor, Replace", Segment: jobcode.D2C, Period: "202506", CallVolume: 3, PPTProfitPerCall: -8},
	}
	if err := WriteRecords(path, in); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var out []jobcode.Record
	if err := csvutil.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 || out[1].JobDescription != "Compressor, Replace" || out[0].PPTProfitPerCall != 42.5 || out[1].Segment != jobcode.D2C {
		t.Errorf("decoded %+v", out)
	}
}

func TestComparisonRowLeavesMissingSegmentsZero(t *testing.T) {
	total := jobcode.Record{CallVolume: 10, PPTProfitPerCall: 20, TotalRevenuePerCall: 100}
	b2b := jobcode.Record{CallVolume: 4, PPTProfitPerCall: 35, TotalRevenuePerCall: 150}
	row := NewComparisonRow(jobcode.Comparison{
		JobCode:               "90001",
		Total:                 &total,
		B2B:                   &b2b,
		BestPerformingSegment: jobcode.B2B,
		ProfitabilityGap:      15,
	})
	if row.TotalCallVolume != 10 || row.B2BProfitPerCall != 35 || row.D2CCallVolume != 0 || row.BestPerformingSegment != "B2B" {
		t.Errorf("unexpected row %+v", row)
	}
}
