package jobcode

// Summary aggregates the complete records of one segment and period.
type Summary struct {
	Segment               Segment                `json:"segment"`
	Period                string                 `json:"period"`
	JobCodeCount          int                    `json:"jobCodeCount"`
	TotalCallVolume       int                    `json:"totalCallVolume"`
	TotalRevenue          float64                `json:"totalRevenue"`
	TotalProfit           float64                `json:"totalProfit"`
	AverageProfitPerCall  float64                `json:"averageProfitPerCall"`
	AverageRevenuePerCall float64                `json:"averageRevenuePerCall"`
	TopJobCodes           []Record               `json:"topJobCodes"`
	Profitability         ProfitabilityBreakdown `json:"profitabilityBreakdown"`
}

// ProfitabilityBreakdown carries the call-volume weighted profitable rate.
type ProfitabilityBreakdown struct {
	ProfitableRate    float64 `json:"profitableRate"`
	ProfitableCount   int     `json:"profitableCount"`
	UnprofitableCount int     `json:"unprofitableCount"`
	RecordsConsidered int     `json:"recordsConsidered"`
	WeightedVolume    int     `json:"weightedVolume"`
}

// CostSummary is the aggregate cost structure of one segment.
type CostSummary struct {
	Segment                Segment `json:"segment"`
	Period                 string  `json:"period"`
	JobCodeCount           int     `json:"jobCodeCount"`
	TotalCallVolume        int     `json:"totalCallVolume"`
	AverageLaborMargin     float64 `json:"averageLaborMargin"`
	AveragePartsMargin     float64 `json:"averagePartsMargin"`
	LaborProfitableCount   int     `json:"laborProfitableCount"`
	PartsProfitableCount   int     `json:"partsProfitableCount"`
	ProfitableCount        int     `json:"profitableCount"`
	TotalLaborCost         float64 `json:"totalLaborCost"`
	TotalPartsCost         float64 `json:"totalPartsCost"`
	TotalOperationalCost   float64 `json:"totalOperationalCost"`
	LaborCostPercentage    float64 `json:"laborCostPercentage"`
	PartsCostPercentage    float64 `json:"partsCostPercentage"`
	OperationalCostPercent float64 `json:"operationalCostPercentage"`
}

// Comparison joins the three segments for one job code at one period.
type Comparison struct {
	JobCode               string  `json:"jobCode" csv:"job_code"`
	JobDescription        string  `json:"jobDescription" csv:"job_description"`
	Period                string  `json:"period" csv:"period"`
	Total                 *Record `json:"total" csv:"-"`
	D2C                   *Record `json:"d2c" csv:"-"`
	B2B                   *Record `json:"b2b" csv:"-"`
	BestPerformingSegment Segment `json:"bestPerformingSegment" csv:"best_performing_segment"`
	ProfitabilityGap      float64 `json:"profitabilityGap" csv:"profitability_gap"`
	RevenueGap            float64 `json:"revenueGap" csv:"revenue_gap"`
}

// For returns the record of seg, nil when absent.
func (c Comparison) For(seg Segment) *Record {
	switch seg {
	case Total:
		return c.Total
	case D2C:
		return c.D2C
	case B2B:
		return c.B2B
	}
	return nil
}

// Analytics is the cross-segment view of a single job code.
type Analytics struct {
	Comparison
	Breakdowns map[Segment]CostBreakdown `json:"costBreakdowns"`
	D2CShare   float64                   `json:"d2cShare"`
	B2BShare   float64                   `json:"b2bShare"`
}

// TrendPoint holds the records of one job code at one period.
type TrendPoint struct {
	Period string  `json:"period"`
	Total  *Record `json:"total,omitempty"`
	D2C    *Record `json:"d2c,omitempty"`
	B2B    *Record `json:"b2b,omitempty"`
}

// CategoryStats aggregates the job codes of one description category.
type CategoryStats struct {
	Category             string   `json:"category"`
	JobCodeCount         int      `json:"jobCodeCount"`
	TotalCallVolume      int      `json:"totalCallVolume"`
	TotalRevenue         float64  `json:"totalRevenue"`
	TotalProfit          float64  `json:"totalProfit"`
	AverageProfitPerCall float64  `json:"averageProfitPerCall"`
	TopJobCodes          []Record `json:"topJobCodes"`
}
