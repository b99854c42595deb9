package reporting

import (
	"math"
	"sort"

	"github.com/samber/lo"

	"jobcode-stats/domain/jobcode"
)

// Compare ranks the segments of one joined job code. The best segment has the
// highest PPT profit per call; on equal values the earlier segment in
// Total, D2C, B2B order wins.
func Compare(c jobcode.Comparison) jobcode.Comparison {
	best := math.Inf(-1)
	c.BestPerformingSegment = ""
	var profits, revenues []float64
	for _, seg := range jobcode.Segments {
		r := c.For(seg)
		if r == nil {
			continue
		}
		if r.PPTProfitPerCall > best {
			best = r.PPTProfitPerCall
			c.BestPerformingSegment = seg
		}
		profits = append(profits, r.PPTProfitPerCall)
		revenues = append(revenues, r.TotalRevenuePerCall)
	}
	c.ProfitabilityGap = spread(profits)
	c.RevenueGap = spread(revenues)
	return c
}

// spread is max minus min over the positive values, 0 with fewer than two.
func spread(values []float64) float64 {
	positive := lo.Filter(values, func(v float64, _ int) bool { return v > 0 })
	if len(positive) < 2 {
		return 0
	}
	return lo.Max(positive) - lo.Min(positive)
}

// Comparisons joins the segments at period and sorts by profitability gap, largest first.
func Comparisons(s *Store, period string) []jobcode.Comparison {
	out := lo.Map(s.Joined(period), func(c jobcode.Comparison, _ int) jobcode.Comparison { return Compare(c) })
	sort.SliceStable(out, func(i, j int) bool { return out[i].ProfitabilityGap > out[j].ProfitabilityGap })
	return out
}
