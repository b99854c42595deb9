package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	cmdcalculate "jobcode-stats/command/calculate"
	cmdexport "jobcode-stats/command/export"
	cmdweb "jobcode-stats/command/web"
)

// Job code profitability reporting over three monthly segment exports
// (Total, D2C, B2B).
// Usage:
//   jobcode-stats web [-addr :8080] [-ui ./ui/dist]
//   jobcode-stats calculate [-out ./data] [-period 202506]
//   jobcode-stats export [-segment Total] [-period 202506] [-out records.csv]
// Notes:
// - CONFIG_PATH points to a YAML config (default ./config.yml); without one the
//   exports are read from ./assets with the default file names.
// - .env.local and .env are loaded when present. LOG_LEVEL=debug|info|warn|error.

func main() {
	args := os.Args
	// Existing environment wins over .env files.
	_ = godotenv.Load(".env.local", ".env")

	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel(os.Getenv("LOG_LEVEL"))})
	slog.SetDefault(slog.New(h))

	if len(args) > 1 {
		sub := args[1]
		rest := append([]string{}, args[2:]...)
		var run func([]string) error
		switch sub {
		case "web":
			run = cmdweb.Run
		case "calculate":
			run = cmdcalculate.Run
		case "export":
			run = cmdexport.Run
		}
		if run != nil {
			if err := run(rest); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		}
	}
	fmt.Fprintln(os.Stderr, "usage: jobcode-stats web [-addr :8080] [-ui ./ui/dist] | calculate [-out ./data] [-period <yyyymm>] | export [-segment Total|D2C|B2B] [-period <yyyymm>] [-out <file>]\nENV: set CONFIG_PATH to point to a YAML config file (default ./config.yml)")
	os.Exit(2)
}

func logLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
