package jobcodes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jobcode-stats/domain/jobcode"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"$1,234.50", 1234.50},
		{"12.5%", 0.125},
		{"", 0},
		{"0.00%", 0},
		{"0%", 0},
		{"1,000", 1000},
		{"  42 ", 42},
		{"-$15.25", -15.25},
		{"n/a", 0},
		{"100%", 1},
	}
	for _, tt := range tests {
		if got := ParseValue(tt.in); got != tt.want {
			t.Errorf("ParseValue(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseValueReportsFailure(t *testing.T) {
	if _, err := parseValue("n/a"); err == nil {
		t.Fatal("expected an error for an unparseable cell")
	}
	if _, err := parseValue(""); err != nil {
		t.Fatalf("empty cell should not be an error: %v", err)
	}
}

func TestClassifyBlocks(t *testing.T) {
	matrix := [][]string{
		{"", "202505", "202506"},
		{"TOTAL REVENUE", "1", "2"}, // before any header: ignored
		{"90001 - Thermostat Repair", "10", "15"},
		{"PPT PROFIT PER CALL", "50.00", "60.00"},
		{"SOMETHING ELSE", "1", "1"},
		{"90002- Compressor Replace - Residential", "3", "4"},
		{"TOTAL REVENUE PER CALL", "200.00", "220.00"},
		{"ed rate", "1%", "2%"},
		{"90001-A - Thermostat Repair, Attic", "2", "3"},
		{"90001-02 - Coil Clean", "1", "1"},
		{"90003-Trip Charge", "1", "1"},
	}
	blocks := Classify(matrix)
	if len(blocks) != 5 {
		t.Fatalf("expected 5 blocks, got %d", len(blocks))
	}

	first := blocks[0]
	if first.JobCode != "90001" || first.Description != "Thermostat Repair" {
		t.Errorf("unexpected first header: %q %q", first.JobCode, first.Description)
	}
	if _, ok := first.Series[jobcode.FieldPPTProfitPerCall]; !ok {
		t.Error("first block should hold the PPT profit row")
	}
	if _, ok := first.Series[jobcode.FieldTotalRevenuePerCall]; ok {
		t.Error("first block must not hold rows of the next block")
	}
	if len(first.Unknown) != 1 || first.Unknown[0] != "SOMETHING ELSE" {
		t.Errorf("unexpected unknown labels: %v", first.Unknown)
	}

	second := blocks[1]
	if second.JobCode != "90002- Compressor Replace" || second.Description != "Residential" {
		t.Errorf("unexpected second header: %q %q", second.JobCode, second.Description)
	}
	if len(second.Series) != 3 {
		t.Errorf("second block should hold volume, revenue and ED rate, got %d series", len(second.Series))
	}
	if _, ok := second.Series[jobcode.FieldTotalRevenue]; ok {
		t.Error("rows before the first header must be dropped")
	}
}

func TestClassifyKeepsHyphenatedCodes(t *testing.T) {
	blocks := Classify([][]string{
		{"", "202506"},
		{"90001-A - Thermostat Repair, Attic", "3"},
		{"90001-02 - Coil Clean", "1"},
		{"90003-Trip Charge", "1"},
	})
	want := [][2]string{
		{"90001-A", "Thermostat Repair, Attic"},
		{"90001-02", "Coil Clean"},
		{"90003", "Trip Charge"},
	}
	if len(blocks) != len(want) {
		t.Fatalf("expected %d blocks, got %d", len(want), len(blocks))
	}
	for i, w := range want {
		if blocks[i].JobCode != w[0] || blocks[i].Description != w[1] {
			t.Errorf("block %d = %q %q, want %q %q", i, blocks[i].JobCode, blocks[i].Description, w[0], w[1])
		}
	}
}

func TestClassifyWithoutHeaders(t *testing.T) {
	matrix := [][]string{
		{"", "202506"},
		{"PPT PROFIT PER CALL", "1"},
	}
	if blocks := Classify(matrix); len(blocks) != 0 {
		t.Fatalf("expected no blocks, got %d", len(blocks))
	}
}

func TestMaterializeSkipsMissingVolume(t *testing.T) {
	header := []string{"", "202504", "202505", "202506"}
	b := Block{
		JobCode:     "90001",
		Description: "Thermostat Repair",
		Series: map[jobcode.Field][]string{
			jobcode.FieldCallVolume:       {"90001 - Thermostat Repair", "5", "0"},
			jobcode.FieldPPTProfitPerCall: {"PPT PROFIT PER CALL", "$10.00", "$20.00", "$30.00"},
		},
	}

	recs, warns := Materialize(b, header, []string{"202505", "202506"}, jobcode.Total, 1)
	if len(recs) != 0 {
		t.Fatalf("zero and missing volume should produce no records, got %d", len(recs))
	}
	if len(warns) != 0 {
		t.Fatalf("unexpected warnings: %v", warns)
	}

	recs, _ = Materialize(b, header, []string{"202504", "202505"}, jobcode.Total, 1)
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].Period != "202504" || recs[0].CallVolume != 5 || recs[0].PPTProfitPerCall != 10 {
		t.Errorf("unexpected record: %+v", recs[0])
	}
	if recs[0].TotalRevenuePerCall != 0 {
		t.Errorf("missing series should default to 0, got %v", recs[0].TotalRevenuePerCall)
	}
}

func TestMaterializeMinVolumeAndWarnings(t *testing.T) {
	header := []string{"", "202506"}
	b := Block{
		JobCode: "1",
		Series: map[jobcode.Field][]string{
			jobcode.FieldCallVolume:          {"1 - X", "3"},
			jobcode.FieldTotalRevenuePerCall: {"TOTAL REVENUE PER CALL", "abc"},
		},
	}
	if recs, _ := Materialize(b, header, []string{"202506"}, jobcode.D2C, 5); len(recs) != 0 {
		t.Fatalf("volume below the floor should be skipped, got %d records", len(recs))
	}
	recs, warns := Materialize(b, header, []string{"202506"}, jobcode.D2C, 1)
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if len(warns) != 1 || warns[0].Field != jobcode.FieldTotalRevenuePerCall || warns[0].Raw != "abc" {
		t.Errorf("unexpected warnings: %+v", warns)
	}
	if recs[0].TotalRevenuePerCall != 0 {
		t.Errorf("unparseable cell should be 0, got %v", recs[0].TotalRevenuePerCall)
	}
}

func TestMaterializeWarningsFollowFieldOrder(t *testing.T) {
	header := []string{"", "202506"}
	b := Block{
		JobCode: "90001",
		Series: map[jobcode.Field][]string{
			jobcode.FieldCallVolume:          {"90001 - X", "3"},
			jobcode.FieldTravelTimePerCall:   {"TRAVEL TIME PER CALL", "x"},
			jobcode.FieldEDRate:              {"ED RATE", "y"},
			jobcode.FieldTotalRevenuePerCall: {"TOTAL REVENUE PER CALL", "z"},
		},
	}
	want := []jobcode.Field{jobcode.FieldTotalRevenuePerCall, jobcode.FieldEDRate, jobcode.FieldTravelTimePerCall}
	for run := 0; run < 5; run++ {
		_, warns := Materialize(b, header, []string{"202506"}, jobcode.Total, 1)
		if len(warns) != len(want) {
			t.Fatalf("expected %d warnings, got %+v", len(want), warns)
		}
		for i, f := range want {
			if warns[i].Field != f {
				t.Fatalf("run %d: warning %d is %q, want %q", run, i, warns[i].Field, f)
			}
		}
	}
}

func TestLoaderEndToEnd(t *testing.T) {
	content := strings.Join([]string{
		`,202505,202506`,
		`90001 - Thermostat Repair,10,15`,
		`PPT PROFIT PER CALL,50.00,60.00`,
		`TOTAL REVENUE PER CALL,200.00,220.00`,
	}, "\n")
	path := filepath.Join(t.TempDir(), "total.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	l := Loader{Periods: []string{"202506"}, MinVolume: 1}
	recs, rep := l.LoadFile(Source{Segment: jobcode.Total, Path: path})
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	r := recs[0]
	if r.JobCode != "90001" || r.JobDescription != "Thermostat Repair" || r.CallVolume != 15 ||
		r.PPTProfitPerCall != 60 || r.TotalRevenuePerCall != 220 || r.Segment != jobcode.Total {
		t.Errorf("unexpected record: %+v", r)
	}
	if !rep.Found || rep.Blocks != 1 || rep.Records != 1 || rep.Rows != 4 {
		t.Errorf("unexpected report: %+v", rep)
	}
}

func TestLoaderMissingFile(t *testing.T) {
	l := Loader{Periods: []string{"202506"}}
	recs, rep := l.LoadFile(Source{Segment: jobcode.B2B, Path: filepath.Join(t.TempDir(), "nope.csv")})
	if len(recs) != 0 {
		t.Fatalf("expected no records, got %d", len(recs))
	}
	if rep.Found || rep.Error == "" {
		t.Errorf("missing file should be reported: %+v", rep)
	}
}
