package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	csvout "jobcode-stats/connectors/csv"
	"jobcode-stats/domain/jobcode"
	"jobcode-stats/reporting"
)

type handlers struct {
	svc *reporting.Service
}

// segmentParam reads ?segment=. Empty means the caller's default, usually Total.
func segmentParam(c echo.Context) (jobcode.Segment, error) {
	raw := c.QueryParam("segment")
	if raw == "" {
		return "", nil
	}
	seg, ok := jobcode.ParseSegment(raw)
	if !ok {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid segment %q. Must be one of: Total, D2C, B2B", raw))
	}
	return seg, nil
}

func notFound(err error, code string) error {
	if errors.Is(err, reporting.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Job code %s not found", code))
	}
	return err
}

func (h *handlers) list(c echo.Context) error {
	seg, err := segmentParam(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.svc.List(reporting.Filter{
		Segment: seg,
		JobCode: c.QueryParam("jobCode"),
		Search:  c.QueryParam("search"),
		Period:  c.QueryParam("period"),
	}))
}

func (h *handlers) summary(c echo.Context) error {
	seg, err := segmentParam(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.svc.Summary(seg, c.QueryParam("period")))
}

func (h *handlers) comparisons(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Comparisons())
}

func (h *handlers) top(c echo.Context) error {
	metric := c.Param("metric")
	seg, err := segmentParam(c)
	if err != nil {
		return err
	}
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil || limit <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
	}
	recs, err := h.svc.TopByMetric(metric, seg, limit)
	if errors.Is(err, reporting.ErrInvalidMetric) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid metric. Must be one of: profit, revenue, volume")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recs)
}

func (h *handlers) categories(c echo.Context) error {
	seg, err := segmentParam(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.svc.Categories(seg, c.QueryParam("period")))
}

func (h *handlers) costBreakdown(c echo.Context) error {
	seg, err := segmentParam(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.svc.CostBreakdowns(seg, c.QueryParam("period")))
}

func (h *handlers) costSummary(c echo.Context) error {
	seg, err := segmentParam(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.svc.CostSummary(seg, c.QueryParam("period")))
}

func (h *handlers) periods(c echo.Context) error {
	store := h.svc.Store()
	return c.JSON(http.StatusOK, map[string]any{
		"periods": store.Periods(),
		"latest":  store.LatestPeriod(),
	})
}

func (h *handlers) status(c echo.Context) error {
	store := h.svc.Store()
	counts := map[jobcode.Segment]int{}
	for _, seg := range jobcode.Segments {
		counts[seg] = len(store.BySegment(seg))
	}
	return c.JSON(http.StatusOK, map[string]any{
		"periods": store.Periods(),
		"records": counts,
		"files":   store.Reports(),
	})
}

func (h *handlers) export(c echo.Context) error {
	seg, err := segmentParam(c)
	if err != nil {
		return err
	}
	recs := h.svc.List(reporting.Filter{Segment: seg, Period: c.QueryParam("period")})
	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="job-codes.csv"`)
	c.Response().WriteHeader(http.StatusOK)
	return csvout.Encode(c.Response(), recs)
}

func (h *handlers) jobCode(c echo.Context) error {
	code := c.Param("jobCode")
	seg, err := segmentParam(c)
	if err != nil {
		return err
	}
	recs, err := h.svc.JobCode(code, seg, c.QueryParam("period"))
	if err != nil {
		return notFound(err, code)
	}
	return c.JSON(http.StatusOK, recs)
}

func (h *handlers) analytics(c echo.Context) error {
	code := c.Param("jobCode")
	a, err := h.svc.Analytics(code, c.QueryParam("period"))
	if err != nil {
		return notFound(err, code)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *handlers) trends(c echo.Context) error {
	code := c.Param("jobCode")
	seg, err := segmentParam(c)
	if err != nil {
		return err
	}
	points, err := h.svc.Trends(code, seg)
	if err != nil {
		return notFound(err, code)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"jobCode": code,
		"trends":  points,
	})
}
