package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"jobcode-stats/connectors/jobcodes"
	domain "jobcode-stats/domain/config"
	"jobcode-stats/domain/jobcode"
)

// DefaultPath is used when CONFIG_PATH is not set.
const DefaultPath = "./config.yml"

// Default returns the configuration used when no file is present.
func Default() *domain.Config {
	var c domain.Config
	c.Server.Addr = ":8080"
	c.Server.UIDir = "./ui/dist"
	c.Server.AllowedOrigins = "*"
	c.Data.Dir = "./assets"
	c.Data.Files = domain.Files{
		Total: "job-codes-total.csv",
		D2C:   "job-codes-d2c.csv",
		B2B:   "job-codes-b2b.csv",
	}
	c.Reporting.Periods = []string{"202505", "202506"}
	c.Reporting.MinCallVolume = 1
	c.Reporting.TopLimit = 10
	return &c
}

// Path returns CONFIG_PATH or DefaultPath.
func Path() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return DefaultPath
}

// Load parses the YAML configuration file at path on top of the defaults. A
// missing file is not an error. Env vars override file values.
func Load(path string) (*domain.Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		slog.Info(fmt.Sprintf("No config at %s, using defaults", path))
	case err != nil:
		return nil, eris.Wrapf(err, "read config %s", path)
	default:
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, eris.Wrapf(err, "parse config %s", path)
		}
		slog.Info(fmt.Sprintf("Loaded config: %s", path))
	}

	envOverride(&c.Server.Addr, "JOBCODES_ADDR")
	envOverride(&c.Data.Dir, "JOBCODES_DATA_DIR")
	if v := os.Getenv("JOBCODES_PERIODS"); v != "" {
		c.Reporting.Periods = splitList(v)
	}
	if v := os.Getenv("JOBCODES_MIN_CALL_VOLUME"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, eris.Wrapf(err, "JOBCODES_MIN_CALL_VOLUME=%q", v)
		}
		c.Reporting.MinCallVolume = n
	}

	if len(c.Reporting.Periods) == 0 {
		return nil, eris.New("config: reporting.periods must list at least one period")
	}
	if c.Reporting.TopLimit <= 0 {
		c.Reporting.TopLimit = 10
	}
	return c, nil
}

// Sources resolves the export of every segment under the data directory.
func Sources(c *domain.Config) []jobcodes.Source {
	out := make([]jobcodes.Source, 0, len(jobcode.Segments))
	for _, seg := range jobcode.Segments {
		name := c.Data.Files.File(seg)
		if name == "" {
			continue
		}
		if !filepath.IsAbs(name) {
			name = filepath.Join(c.Data.Dir, name)
		}
		out = append(out, jobcodes.Source{Segment: seg, Path: name})
	}
	return out
}

// Loader builds the export loader for the configured periods.
func Loader(c *domain.Config) jobcodes.Loader {
	return jobcodes.Loader{Periods: c.Reporting.Periods, MinVolume: c.Reporting.MinCallVolume}
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
