package config

import "jobcode-stats/domain/jobcode"

// Config represents the structure of config.yml used by the tool.
type Config struct {
	Server struct {
		Addr  string `yaml:"addr"`
		UIDir string `yaml:"ui_dir"`
		// Comma separated list, "*" allows any origin.
		AllowedOrigins string `yaml:"allowed_origins"`
	} `yaml:"server"`
	Data struct {
		Dir   string `yaml:"dir"`
		Files Files  `yaml:"files"`
	} `yaml:"data"`
	Reporting Reporting `yaml:"reporting"`
}

// Files names the export of each segment, relative to Data.Dir.
type Files struct {
	Total string `yaml:"total"`
	D2C   string `yaml:"d2c"`
	B2B   string `yaml:"b2b"`
}

// Reporting holds the periods of interest and aggregate knobs.
type Reporting struct {
	Periods       []string `yaml:"periods"`
	MinCallVolume int      `yaml:"min_call_volume"`
	TopLimit      int      `yaml:"top_limit"`
}

// File returns the configured export name of seg.
func (f Files) File(seg jobcode.Segment) string {
	switch seg {
	case jobcode.Total:
		return f.Total
	case jobcode.D2C:
		return f.D2C
	case jobcode.B2B:
		return f.B2B
	}
	return ""
}
