package reporting

import (
	"github.com/samber/lo"

	"jobcode-stats/domain/jobcode"
)

// hasCostDetail keeps complete records that report labor or parts cost.
func hasCostDetail(r jobcode.Record) bool {
	return r.IsComplete() && (r.PayrollCostPerCall > 0 || r.PartsCostPerCall > 0)
}

// CostBreakdowns derives the breakdown of every record with cost detail.
func CostBreakdowns(records []jobcode.Record) []jobcode.CostBreakdown {
	qualifying := lo.Filter(records, func(r jobcode.Record, _ int) bool { return hasCostDetail(r) })
	return lo.Map(qualifying, func(r jobcode.Record, _ int) jobcode.CostBreakdown { return r.Breakdown() })
}

// SummarizeCosts computes volume-weighted margins and the cost structure split
// of one segment's records.
func SummarizeCosts(seg jobcode.Segment, period string, records []jobcode.Record) jobcode.CostSummary {
	cs := jobcode.CostSummary{Segment: seg, Period: period}
	var laborMargin, partsMargin float64
	for _, b := range CostBreakdowns(records) {
		vol := float64(b.CallVolume)
		cs.JobCodeCount++
		cs.TotalCallVolume += b.CallVolume
		laborMargin += b.LaborMargin * vol
		partsMargin += b.PartsMargin * vol
		cs.TotalLaborCost += b.LaborCost * vol
		cs.TotalPartsCost += b.PartsCost * vol
		cs.TotalOperationalCost += b.OperationalCost * vol
		if b.IsLaborProfitable {
			cs.LaborProfitableCount++
		}
		if b.IsPartsProfitable {
			cs.PartsProfitableCount++
		}
		if b.IsProfitable {
			cs.ProfitableCount++
		}
	}
	if cs.TotalCallVolume > 0 {
		cs.AverageLaborMargin = laborMargin / float64(cs.TotalCallVolume)
		cs.AveragePartsMargin = partsMargin / float64(cs.TotalCallVolume)
	}
	if total := cs.TotalLaborCost + cs.TotalPartsCost + cs.TotalOperationalCost; total > 0 {
		cs.LaborCostPercentage = cs.TotalLaborCost / total * 100
		cs.PartsCostPercentage = cs.TotalPartsCost / total * 100
		cs.OperationalCostPercent = cs.TotalOperationalCost / total * 100
	}
	return cs
}
