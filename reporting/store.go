package reporting

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"jobcode-stats/connectors/jobcodes"
	"jobcode-stats/domain/jobcode"
)

// Store holds the records of the three segments. It is filled once when built
// and never mutated afterwards, so concurrent readers need no locking.
type Store struct {
	data    map[jobcode.Segment][]jobcode.Record
	periods []string
	reports []jobcodes.LoadReport
}

// Load reads every source synchronously. Missing or broken exports leave their
// segment empty.
func Load(loader jobcodes.Loader, sources []jobcodes.Source) *Store {
	data := map[jobcode.Segment][]jobcode.Record{}
	var reports []jobcodes.LoadReport
	for _, src := range sources {
		recs, rep := loader.LoadFile(src)
		data[src.Segment] = append(data[src.Segment], recs...)
		reports = append(reports, rep)
	}
	s := NewStore(loader.Periods, data)
	s.reports = reports
	return s
}

// NewStore wraps already materialized records.
func NewStore(periods []string, data map[jobcode.Segment][]jobcode.Record) *Store {
	s := &Store{
		data:    map[jobcode.Segment][]jobcode.Record{},
		periods: append([]string(nil), periods...),
	}
	for _, seg := range jobcode.Segments {
		s.data[seg] = append([]jobcode.Record(nil), data[seg]...)
	}
	sort.Strings(s.periods)
	return s
}

// AllJobCodes returns the records of all segments concatenated. The segments
// overlap, so callers must filter by segment before aggregating.
func (s *Store) AllJobCodes() []jobcode.Record {
	var out []jobcode.Record
	for _, seg := range jobcode.Segments {
		out = append(out, s.data[seg]...)
	}
	return out
}

// BySegment returns the records of one segment.
func (s *Store) BySegment(seg jobcode.Segment) []jobcode.Record {
	return s.data[seg]
}

// Search matches query case-insensitively against code and description, across all segments.
func (s *Store) Search(query string) []jobcode.Record {
	q := strings.ToLower(strings.TrimSpace(query))
	return lo.Filter(s.AllJobCodes(), func(r jobcode.Record, _ int) bool {
		return matches(r, q)
	})
}

// Periods returns the periods of interest in ascending order.
func (s *Store) Periods() []string {
	return s.periods
}

// LatestPeriod is the greatest configured period token.
func (s *Store) LatestPeriod() string {
	if len(s.periods) == 0 {
		return ""
	}
	return s.periods[len(s.periods)-1]
}

// Reports returns what was read from each export.
func (s *Store) Reports() []jobcodes.LoadReport {
	return s.reports
}

// Records returns the records of seg at period.
func (s *Store) Records(seg jobcode.Segment, period string) []jobcode.Record {
	return lo.Filter(s.data[seg], func(r jobcode.Record, _ int) bool {
		return r.Period == period
	})
}

// Find returns the record of code in seg at period.
func (s *Store) Find(seg jobcode.Segment, code, period string) (jobcode.Record, bool) {
	return lo.Find(s.data[seg], func(r jobcode.Record) bool {
		return r.JobCode == code && r.Period == period
	})
}

// Joined groups the records at period by job code, one entry per code with the
// record of every segment that has it. Codes keep first-seen order, Total first.
func (s *Store) Joined(period string) []jobcode.Comparison {
	var out []jobcode.Comparison
	index := map[string]int{}
	for _, seg := range jobcode.Segments {
		for _, r := range s.Records(seg, period) {
			i, ok := index[r.JobCode]
			if !ok {
				i = len(out)
				index[r.JobCode] = i
				out = append(out, jobcode.Comparison{JobCode: r.JobCode, JobDescription: r.JobDescription, Period: period})
			}
			rec := r
			switch seg {
			case jobcode.Total:
				out[i].Total = &rec
			case jobcode.D2C:
				out[i].D2C = &rec
			case jobcode.B2B:
				out[i].B2B = &rec
			}
		}
	}
	return out
}

func matches(r jobcode.Record, q string) bool {
	return strings.Contains(strings.ToLower(r.JobCode), q) ||
		strings.Contains(strings.ToLower(r.JobDescription), q)
}
