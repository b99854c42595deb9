package config

import (
	"os"
	"path/filepath"
	"testing"

	"jobcode-stats/domain/jobcode"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Server.Addr != ":8080" || c.Reporting.TopLimit != 10 || len(c.Reporting.Periods) != 2 {
		t.Errorf("unexpected defaults: %+v", c)
	}
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	yml := `
server:
  addr: ":9000"
data:
  dir: /srv/exports
  files:
    total: total.xlsx
reporting:
  periods: ["202601"]
  min_call_volume: 3
`
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("JOBCODES_PERIODS", "202602, 202603")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Server.Addr != ":9000" {
		t.Errorf("addr = %q", c.Server.Addr)
	}
	if c.Reporting.MinCallVolume != 3 {
		t.Errorf("min_call_volume = %d", c.Reporting.MinCallVolume)
	}
	if len(c.Reporting.Periods) != 2 || c.Reporting.Periods[1] != "202603" {
		t.Errorf("periods = %v", c.Reporting.Periods)
	}

	srcs := Sources(c)
	if len(srcs) != 3 {
		t.Fatalf("expected 3 sources, got %d", len(srcs))
	}
	if srcs[0].Segment != jobcode.Total || srcs[0].Path != filepath.Join("/srv/exports", "total.xlsx") {
		t.Errorf("unexpected total source: %+v", srcs[0])
	}
	if srcs[1].Path != filepath.Join("/srv/exports", "job-codes-d2c.csv") {
		t.Errorf("unset file should keep its default, got %q", srcs[1].Path)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("server: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}
