package calculate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jobcode-stats/domain/jobcode"
	"jobcode-stats/reporting"
)

func TestWrite(t *testing.T) {
	data := map[jobcode.Segment][]jobcode.Record{
		jobcode.Total: {{JobCode: "90001", JobDescription: "Thermostat Diagnostic", Segment: jobcode.Total, Period: "202506", CallVolume: 10, PPTProfitPerCall: 20, TotalRevenuePerCall: 100, PayrollCostPerCall: 30}},
		jobcode.B2B:   {{JobCode: "90001", JobDescription: "Thermostat Diagnostic", Segment: jobcode.B2B, Period: "202506", CallVolume: 4, PPTProfitPerCall: 35, TotalRevenuePerCall: 150, PayrollCostPerCall: 40}},
	}
	svc := reporting.NewService(reporting.NewStore([]string{"202505", "202506"}, data), 10)
	dir := t.TempDir()
	if err := Write(svc, dir, ""); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(filepath.Join(dir, "job_code_comparisons.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[1], "90001,Thermostat Diagnostic,202506,") || !strings.Contains(lines[1], ",B2B,15,50") {
		t.Errorf("comparisons:\n%s", b)
	}

	for _, name := range []string{"cost_breakdown_total.csv", "cost_breakdown_d2c.csv", "cost_breakdown_b2b.csv"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}
