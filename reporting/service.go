package reporting

import (
	"errors"
	"sort"
	"strings"

	"github.com/samber/lo"

	"jobcode-stats/domain/jobcode"
)

var (
	ErrNotFound      = errors.New("job code not found")
	ErrInvalidMetric = errors.New("invalid metric")
)

// Service answers reporting queries over a Store. Every call recomputes from
// the stored records; nothing is cached.
type Service struct {
	store    *Store
	topLimit int
}

func NewService(store *Store, topLimit int) *Service {
	if topLimit <= 0 {
		topLimit = 10
	}
	return &Service{store: store, topLimit: topLimit}
}

// Store exposes the underlying records.
func (s *Service) Store() *Store {
	return s.store
}

// Filter narrows List. Zero values mean no filter, except Segment which
// defaults to Total.
type Filter struct {
	Segment jobcode.Segment
	JobCode string
	Search  string
	Period  string
}

func (s *Service) period(p string) string {
	if p == "" {
		return s.store.LatestPeriod()
	}
	return p
}

func segmentOrTotal(seg jobcode.Segment) jobcode.Segment {
	if seg == "" {
		return jobcode.Total
	}
	return seg
}

// List returns the records of one segment matching f, by call volume descending.
func (s *Service) List(f Filter) []jobcode.Record {
	q := strings.ToLower(strings.TrimSpace(f.Search))
	out := lo.Filter(s.store.BySegment(segmentOrTotal(f.Segment)), func(r jobcode.Record, _ int) bool {
		if f.Period != "" && r.Period != f.Period {
			return false
		}
		if f.JobCode != "" && !strings.EqualFold(r.JobCode, f.JobCode) {
			return false
		}
		return q == "" || matches(r, q)
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].CallVolume > out[j].CallVolume })
	return out
}

// Summary aggregates exactly one segment, Total unless given, at the latest period unless given.
func (s *Service) Summary(seg jobcode.Segment, period string) jobcode.Summary {
	seg, period = segmentOrTotal(seg), s.period(period)
	return Summarize(seg, period, s.store.Records(seg, period), s.topLimit)
}

// TopByMetric sorts the latest records of seg by metric. Completeness is not required here.
func (s *Service) TopByMetric(metric string, seg jobcode.Segment, limit int) ([]jobcode.Record, error) {
	value, ok := MetricValue(metric)
	if !ok {
		return nil, ErrInvalidMetric
	}
	if limit <= 0 {
		limit = s.topLimit
	}
	seg = segmentOrTotal(seg)
	return topBy(s.store.Records(seg, s.store.LatestPeriod()), value, limit), nil
}

// Comparisons joins the three segments at the latest period.
func (s *Service) Comparisons() []jobcode.Comparison {
	return Comparisons(s.store, s.store.LatestPeriod())
}

// Analytics is the cross-segment view of code at period.
func (s *Service) Analytics(code, period string) (jobcode.Analytics, error) {
	period = s.period(period)
	c, ok := lo.Find(s.store.Joined(period), func(c jobcode.Comparison) bool { return c.JobCode == code })
	if !ok {
		return jobcode.Analytics{}, ErrNotFound
	}
	a := jobcode.Analytics{Comparison: Compare(c), Breakdowns: map[jobcode.Segment]jobcode.CostBreakdown{}}
	for _, seg := range jobcode.Segments {
		if r := c.For(seg); r != nil {
			a.Breakdowns[seg] = r.Breakdown()
		}
	}
	if c.Total != nil && c.Total.CallVolume > 0 {
		total := float64(c.Total.CallVolume)
		if c.D2C != nil {
			a.D2CShare = float64(c.D2C.CallVolume) / total
		}
		if c.B2B != nil {
			a.B2BShare = float64(c.B2B.CallVolume) / total
		}
	}
	return a, nil
}

// Trends lists code per period, limited to seg when given.
func (s *Service) Trends(code string, seg jobcode.Segment) ([]jobcode.TrendPoint, error) {
	var points []jobcode.TrendPoint
	for _, period := range s.store.Periods() {
		p := jobcode.TrendPoint{Period: period}
		found := false
		for _, sg := range jobcode.Segments {
			if seg != "" && sg != seg {
				continue
			}
			r, ok := s.store.Find(sg, code, period)
			if !ok {
				continue
			}
			found = true
			rec := r
			switch sg {
			case jobcode.Total:
				p.Total = &rec
			case jobcode.D2C:
				p.D2C = &rec
			case jobcode.B2B:
				p.B2B = &rec
			}
		}
		if found {
			points = append(points, p)
		}
	}
	if len(points) == 0 {
		return nil, ErrNotFound
	}
	return points, nil
}

// JobCode returns the records of code in seg, all periods unless one is given.
func (s *Service) JobCode(code string, seg jobcode.Segment, period string) ([]jobcode.Record, error) {
	recs := s.List(Filter{Segment: seg, JobCode: code, Period: period})
	if len(recs) == 0 {
		return nil, ErrNotFound
	}
	return recs, nil
}

// Categories buckets the complete records of seg at period by description.
func (s *Service) Categories(seg jobcode.Segment, period string) []jobcode.CategoryStats {
	seg, period = segmentOrTotal(seg), s.period(period)
	return CategoryAnalysis(s.store.Records(seg, period))
}

// CostBreakdowns derives breakdowns of seg at period.
func (s *Service) CostBreakdowns(seg jobcode.Segment, period string) []jobcode.CostBreakdown {
	seg, period = segmentOrTotal(seg), s.period(period)
	return CostBreakdowns(s.store.Records(seg, period))
}

// CostSummary summarizes the cost structure of seg at period.
func (s *Service) CostSummary(seg jobcode.Segment, period string) jobcode.CostSummary {
	seg, period = segmentOrTotal(seg), s.period(period)
	return SummarizeCosts(seg, period, s.store.Records(seg, period))
}
