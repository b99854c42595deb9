package web

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"jobcode-stats/connectors/config"
	"jobcode-stats/reporting"
)

// Run starts the Echo web server exposing the job code reporting API and an optional SPA dashboard.
//
// Usage:
//
//	jobcode-stats web [-addr :8080] [-ui ./ui/dist]
//
// Endpoints (all GET, under /api/job-codes):
//
//	/                      records of one segment (segment, jobCode, search, period)
//	/summary               JobCodeSummary (segment, period)
//	/comparisons           segments joined per job code
//	/top/:metric           top records by profit|revenue|volume (segment, limit)
//	/categories/analysis   job codes bucketed by description category
//	/cost-breakdown        per job code cost structure (segment)
//	/cost-summary          segment cost structure (segment)
//	/periods, /status, /export
//	/:jobCode, /:jobCode/analytics, /:jobCode/trends
//
// When -ui points to a built Vite app (index.html exists), static files are served at / and
// unknown routes fall back to index.html for SPA routing.
func Run(args []string) error {
	cfg, err := config.Load(config.Path())
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	addr := fs.String("addr", cfg.Server.Addr, "http listen address (host:port)")
	uiDir := fs.String("ui", cfg.Server.UIDir, "directory containing built UI (Vite dist)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store := reporting.Load(config.Loader(cfg), config.Sources(cfg))
	svc := reporting.NewService(store, cfg.Reporting.TopLimit)

	e := NewServer(svc, Options{UIDir: *uiDir, AllowedOrigins: cfg.Server.AllowedOrigins})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(*addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("web.server_error", "err", err)
			stop()
		}
	}()
	slog.Info("web.listening", "addr", *addr, "periods", store.Periods())

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// Options tunes NewServer.
type Options struct {
	UIDir          string
	AllowedOrigins string
}

// NewServer wires the API routes around svc.
func NewServer(svc *reporting.Service, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			slog.Debug("http.request", "method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency)
			return nil
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: splitOrigins(opts.AllowedOrigins),
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
	}))
	e.HTTPErrorHandler = jsonErrorHandler(e)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	h := &handlers{svc: svc}
	api := e.Group("/api/job-codes")
	api.GET("", h.list)
	api.GET("/", h.list)
	api.GET("/summary", h.summary)
	api.GET("/comparisons", h.comparisons)
	api.GET("/top/:metric", h.top)
	api.GET("/categories/analysis", h.categories)
	api.GET("/cost-breakdown", h.costBreakdown)
	api.GET("/cost-summary", h.costSummary)
	api.GET("/periods", h.periods)
	api.GET("/status", h.status)
	api.GET("/export", h.export)
	api.GET("/:jobCode", h.jobCode)
	api.GET("/:jobCode/analytics", h.analytics)
	api.GET("/:jobCode/trends", h.trends)

	serveUI(e, opts.UIDir)
	return e
}

// jsonErrorHandler renders every error as {"error": "..."}. Errors that are not
// echo.HTTPError are unexpected and become a generic 500.
func jsonErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		msg := "Internal server error"
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				msg = m
			} else {
				msg = http.StatusText(code)
			}
		} else {
			slog.Error("http.unexpected_error", "method", c.Request().Method, "path", c.Request().URL.Path, "err", err)
		}
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, map[string]string{"error": msg})
		}
		if err != nil {
			e.Logger.Error(err)
		}
	}
}

// serveUI serves a built SPA from dir, falling back to index.html for non-API 404s.
func serveUI(e *echo.Echo, dir string) {
	if dir == "" {
		return
	}
	indexPath := filepath.Join(dir, "index.html")
	fi, err := os.Stat(indexPath)
	if err != nil || fi.IsDir() {
		return
	}
	e.Static("/", dir)
	e.GET("/", func(c echo.Context) error { return c.File(indexPath) })

	apiErrors := e.HTTPErrorHandler
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if he, ok := err.(*echo.HTTPError); ok && he.Code == http.StatusNotFound {
			if !strings.HasPrefix(c.Request().URL.Path, "/api") {
				_ = c.File(indexPath)
				return
			}
		}
		apiErrors(err, c)
	}
}

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
