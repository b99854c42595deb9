package jobcode

// CostBreakdown is a read-only view derived from a Record on demand.
type CostBreakdown struct {
	JobCode        string  `json:"jobCode" csv:"job_code"`
	JobDescription string  `json:"jobDescription" csv:"job_description"`
	Segment        Segment `json:"segment" csv:"segment"`
	Period         string  `json:"period" csv:"period"`
	CallVolume     int     `json:"callVolume" csv:"call_volume"`

	RevenuePerCall    float64 `json:"revenuePerCall" csv:"revenue_per_call"`
	ProfitPerCall     float64 `json:"profitPerCall" csv:"profit_per_call"`
	LaborCost         float64 `json:"laborCost" csv:"labor_cost"`
	PartsCost         float64 `json:"partsCost" csv:"parts_cost"`
	OperationalCost   float64 `json:"operationalCost" csv:"operational_cost"`
	TotalCost         float64 `json:"totalCost" csv:"total_cost"`
	LaborRevenue      float64 `json:"laborRevenue" csv:"labor_revenue"`
	PartsRevenue      float64 `json:"partsRevenue" csv:"parts_revenue"`
	LaborProfit       float64 `json:"laborProfit" csv:"labor_profit"`
	PartsProfit       float64 `json:"partsProfit" csv:"parts_profit"`
	LaborMargin       float64 `json:"laborMargin" csv:"labor_margin"`
	PartsMargin       float64 `json:"partsMargin" csv:"parts_margin"`
	OverallMargin     float64 `json:"overallMargin" csv:"overall_margin"`
	IsProfitable      bool    `json:"isProfitable" csv:"is_profitable"`
	IsLaborProfitable bool    `json:"isLaborProfitable" csv:"is_labor_profitable"`
	IsPartsProfitable bool    `json:"isPartsProfitable" csv:"is_parts_profitable"`
}

// Breakdown derives the per-call cost structure of r. Labor is payroll plus
// benefit, parts is marked plus unmarked parts, operational is truck plus
// shipment. Component revenue comes from the labor/parts revenue rows; when
// neither is present the total revenue is split in proportion to cost.
func (r Record) Breakdown() CostBreakdown {
	labor := r.PayrollCostPerCall + r.BenefitCostPerCall
	parts := r.PartsCostPerCall + r.UnmarkedPartsCostPerCall
	ops := r.TruckCostPerCall + r.ShipmentCostPerCall
	total := labor + parts + ops

	laborRev, partsRev := r.LaborRevenuePerCall, r.PartsRevenuePerCall
	if laborRev == 0 && partsRev == 0 && labor+parts > 0 {
		laborRev = r.TotalRevenuePerCall * labor / (labor + parts)
		partsRev = r.TotalRevenuePerCall - laborRev
	}

	b := CostBreakdown{
		JobCode:         r.JobCode,
		JobDescription:  r.JobDescription,
		Segment:         r.Segment,
		Period:          r.Period,
		CallVolume:      r.CallVolume,
		RevenuePerCall:  r.TotalRevenuePerCall,
		ProfitPerCall:   r.PPTProfitPerCall,
		LaborCost:       labor,
		PartsCost:       parts,
		OperationalCost: ops,
		TotalCost:       total,
		LaborRevenue:    laborRev,
		PartsRevenue:    partsRev,
		LaborProfit:     laborRev - labor,
		PartsProfit:     partsRev - parts,
		LaborMargin:     margin(laborRev-labor, laborRev),
		PartsMargin:     margin(partsRev-parts, partsRev),
		OverallMargin:   margin(r.PPTProfitPerCall, r.TotalRevenuePerCall),
		IsProfitable:    r.PPTProfitPerCall > 0,
	}
	b.IsLaborProfitable = laborRev > 0 && b.LaborProfit > 0
	b.IsPartsProfitable = partsRev > 0 && b.PartsProfit > 0
	return b
}

// margin returns profit as a percentage of revenue, 0 without revenue.
func margin(profit, revenue float64) float64 {
	if revenue == 0 {
		return 0
	}
	return profit / revenue * 100
}
