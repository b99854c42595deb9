package reporting

import (
	"sort"

	"github.com/samber/lo"

	"jobcode-stats/domain/jobcode"
)

// Complete keeps the records carrying real financial detail.
func Complete(records []jobcode.Record) []jobcode.Record {
	return lo.Filter(records, func(r jobcode.Record, _ int) bool { return r.IsComplete() })
}

// Summarize aggregates one segment's records for one period. Averages are plain
// means over complete records, not volume weighted.
func Summarize(seg jobcode.Segment, period string, records []jobcode.Record, topN int) jobcode.Summary {
	complete := Complete(records)
	sum := jobcode.Summary{
		Segment:      seg,
		Period:       period,
		JobCodeCount: len(complete),
		TopJobCodes:  []jobcode.Record{},
	}
	if len(complete) == 0 {
		return sum
	}

	var profitPerCall, revenuePerCall float64
	for _, r := range complete {
		sum.TotalCallVolume += r.CallVolume
		sum.TotalRevenue += r.Revenue()
		sum.TotalProfit += r.Profit()
		profitPerCall += r.PPTProfitPerCall
		revenuePerCall += r.TotalRevenuePerCall
	}
	n := float64(len(complete))
	sum.AverageProfitPerCall = profitPerCall / n
	sum.AverageRevenuePerCall = revenuePerCall / n
	sum.TopJobCodes = topBy(complete, func(r jobcode.Record) float64 { return r.PPTProfitPerCall }, topN)
	sum.Profitability = Profitability(complete)
	return sum
}

// Profitability computes the call-volume weighted profitable rate. A record's
// own rate is its profitable percentage when present, otherwise 1 or 0 from the
// sign of its PPT profit.
func Profitability(records []jobcode.Record) jobcode.ProfitabilityBreakdown {
	var pb jobcode.ProfitabilityBreakdown
	var weighted float64
	for _, r := range Complete(records) {
		if r.ProfitablePercentage <= 0 && r.PPTProfitPerCall == 0 {
			continue
		}
		rate := 0.0
		switch {
		case r.ProfitablePercentage > 0:
			rate = r.ProfitablePercentage
		case r.PPTProfitPerCall > 0:
			rate = 1
		}
		weighted += rate * float64(r.CallVolume)
		pb.WeightedVolume += r.CallVolume
		pb.RecordsConsidered++

		profitable := r.PPTProfitPerCall > 0
		if r.ProfitablePercentage > 0 {
			profitable = r.ProfitablePercentage > 0.5
		}
		if profitable {
			pb.ProfitableCount++
		} else {
			pb.UnprofitableCount++
		}
	}
	if pb.WeightedVolume > 0 {
		pb.ProfitableRate = weighted / float64(pb.WeightedVolume)
	}
	return pb
}

// Metric names accepted by TopByMetric.
const (
	MetricProfit  = "profit"
	MetricRevenue = "revenue"
	MetricVolume  = "volume"
)

// MetricValue resolves a metric name to its record accessor.
func MetricValue(metric string) (func(jobcode.Record) float64, bool) {
	switch metric {
	case MetricProfit:
		return func(r jobcode.Record) float64 { return r.PPTProfitPerCall }, true
	case MetricRevenue:
		return func(r jobcode.Record) float64 { return r.TotalRevenuePerCall }, true
	case MetricVolume:
		return func(r jobcode.Record) float64 { return float64(r.CallVolume) }, true
	}
	return nil, false
}

// topBy returns up to n records sorted by value descending. Ties keep input order.
func topBy(records []jobcode.Record, value func(jobcode.Record) float64, n int) []jobcode.Record {
	sorted := make([]jobcode.Record, 0, len(records))
	sorted = append(sorted, records...)
	sort.SliceStable(sorted, func(i, j int) bool { return value(sorted[i]) > value(sorted[j]) })
	if n > 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// CategoryAnalysis buckets complete records into the fixed description categories.
func CategoryAnalysis(records []jobcode.Record) []jobcode.CategoryStats {
	groups := lo.GroupBy(Complete(records), func(r jobcode.Record) string {
		return jobcode.Categorize(r.JobDescription)
	})
	out := make([]jobcode.CategoryStats, 0, len(jobcode.Categories))
	for _, name := range jobcode.Categories {
		recs := groups[name]
		cs := jobcode.CategoryStats{Category: name, JobCodeCount: len(recs), TopJobCodes: []jobcode.Record{}}
		if len(recs) == 0 {
			out = append(out, cs)
			continue
		}
		var profitPerCall float64
		for _, r := range recs {
			cs.TotalCallVolume += r.CallVolume
			cs.TotalRevenue += r.Revenue()
			cs.TotalProfit += r.Profit()
			profitPerCall += r.PPTProfitPerCall
		}
		cs.AverageProfitPerCall = profitPerCall / float64(len(recs))
		cs.TopJobCodes = topBy(recs, func(r jobcode.Record) float64 { return r.PPTProfitPerCall }, 3)
		out = append(out, cs)
	}
	return out
}
