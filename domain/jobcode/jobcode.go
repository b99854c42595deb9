package jobcode

import "strings"

// Segment is one of the three overlapping population cuts of a job-code export.
// D2C and B2B are subsets of Total, never a partition of it.
type Segment string

const (
	Total Segment = "Total"
	D2C   Segment = "D2C"
	B2B   Segment = "B2B"
)

// Segments lists the segments in comparison order.
var Segments = []Segment{Total, D2C, B2B}

// ParseSegment resolves a segment name case-insensitively.
func ParseSegment(s string) (Segment, bool) {
	for _, seg := range Segments {
		if strings.EqualFold(strings.TrimSpace(s), string(seg)) {
			return seg, true
		}
	}
	return "", false
}

// Record is one fully parsed (job code, segment, period) row.
type Record struct {
	JobCode        string  `json:"jobCode" csv:"job_code"`
	JobDescription string  `json:"jobDescription" csv:"job_description"`
	Segment        Segment `json:"segment" csv:"segment"`
	Period         string  `json:"period" csv:"period"`
	CallVolume     int     `json:"callVolume" csv:"call_volume"`

	PPTProfitPerCall         float64 `json:"pptProfitPerCall" csv:"ppt_profit_per_call"`
	TotalRevenuePerCall      float64 `json:"totalRevenuePerCall" csv:"total_revenue_per_call"`
	TotalCostPerCall         float64 `json:"totalCostPerCall" csv:"total_cost_per_call"`
	LaborRevenuePerCall      float64 `json:"laborRevenuePerCall" csv:"labor_revenue_per_call"`
	PartsRevenuePerCall      float64 `json:"partsRevenuePerCall" csv:"parts_revenue_per_call"`
	PayrollCostPerCall       float64 `json:"payrollCostPerCall" csv:"payroll_cost_per_call"`
	BenefitCostPerCall       float64 `json:"benefitCostPerCall" csv:"benefit_cost_per_call"`
	PartsCostPerCall         float64 `json:"partsCostPerCall" csv:"parts_cost_per_call"`
	UnmarkedPartsCostPerCall float64 `json:"unmarkedPartsCostPerCall" csv:"unmarked_parts_cost_per_call"`
	TruckCostPerCall         float64 `json:"truckCostPerCall" csv:"truck_cost_per_call"`
	ShipmentCostPerCall      float64 `json:"shipmentCostPerCall" csv:"shipment_cost_per_call"`

	PPTProfit         float64 `json:"pptProfit" csv:"ppt_profit"`
	TotalRevenue      float64 `json:"totalRevenue" csv:"total_revenue"`
	TotalCost         float64 `json:"totalCost" csv:"total_cost"`
	PayrollCost       float64 `json:"payrollCost" csv:"payroll_cost"`
	BenefitCost       float64 `json:"benefitCost" csv:"benefit_cost"`
	PartsCost         float64 `json:"partsCost" csv:"parts_cost"`
	UnmarkedPartsCost float64 `json:"unmarkedPartsCost" csv:"unmarked_parts_cost"`
	TruckCost         float64 `json:"truckCost" csv:"truck_cost"`
	ShipmentCost      float64 `json:"shipmentCost" csv:"shipment_cost"`

	// Percentages are 0-1 fractions.
	ProfitablePercentage   float64 `json:"profitablePercentage" csv:"profitable_percentage"`
	UnprofitablePercentage float64 `json:"unprofitablePercentage" csv:"unprofitable_percentage"`
	ProfitableSOS          float64 `json:"profitableSOS" csv:"profitable_sos"`
	UnprofitableSOS        float64 `json:"unprofitableSOS" csv:"unprofitable_sos"`

	EDCount           float64 `json:"edCount" csv:"ed_count"`
	EDRate            float64 `json:"edRate" csv:"ed_rate"`
	RecallCount       float64 `json:"recallCount" csv:"recall_count"`
	RecallRate        float64 `json:"recallRate" csv:"recall_rate"`
	RepairTimePerCall float64 `json:"repairTimePerCall" csv:"repair_time_per_call"`
	TravelTimePerCall float64 `json:"travelTimePerCall" csv:"travel_time_per_call"`
}

// IsComplete reports whether the record carries real financial detail. Job codes
// listed only for population purposes fail this check and are left out of aggregates.
func (r Record) IsComplete() bool {
	return r.CallVolume > 0 &&
		r.TotalRevenuePerCall > 0 &&
		(r.PPTProfitPerCall != 0 || r.ProfitablePercentage > 0)
}

// Revenue returns the period revenue, falling back to per-call revenue times volume.
func (r Record) Revenue() float64 {
	if r.TotalRevenue != 0 {
		return r.TotalRevenue
	}
	return r.TotalRevenuePerCall * float64(r.CallVolume)
}

// Profit returns the period PPT profit, falling back to per-call profit times volume.
func (r Record) Profit() float64 {
	if r.PPTProfit != 0 {
		return r.PPTProfit
	}
	return r.PPTProfitPerCall * float64(r.CallVolume)
}
