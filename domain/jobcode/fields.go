package jobcode

import (
	"math"
	"strings"
)

// Field identifies a numeric Record field fed by a labelled metric row.
type Field string

const (
	FieldCallVolume               Field = "callVolume"
	FieldPPTProfitPerCall         Field = "pptProfitPerCall"
	FieldTotalRevenuePerCall      Field = "totalRevenuePerCall"
	FieldTotalCostPerCall         Field = "totalCostPerCall"
	FieldLaborRevenuePerCall      Field = "laborRevenuePerCall"
	FieldPartsRevenuePerCall      Field = "partsRevenuePerCall"
	FieldPayrollCostPerCall       Field = "payrollCostPerCall"
	FieldBenefitCostPerCall       Field = "benefitCostPerCall"
	FieldPartsCostPerCall         Field = "partsCostPerCall"
	FieldUnmarkedPartsCostPerCall Field = "unmarkedPartsCostPerCall"
	FieldTruckCostPerCall         Field = "truckCostPerCall"
	FieldShipmentCostPerCall      Field = "shipmentCostPerCall"
	FieldPPTProfit                Field = "pptProfit"
	FieldTotalRevenue             Field = "totalRevenue"
	FieldTotalCost                Field = "totalCost"
	FieldPayrollCost              Field = "payrollCost"
	FieldBenefitCost              Field = "benefitCost"
	FieldPartsCost                Field = "partsCost"
	FieldUnmarkedPartsCost        Field = "unmarkedPartsCost"
	FieldTruckCost                Field = "truckCost"
	FieldShipmentCost             Field = "shipmentCost"
	FieldProfitablePercentage     Field = "profitablePercentage"
	FieldUnprofitablePercentage   Field = "unprofitablePercentage"
	FieldProfitableSOS            Field = "profitableSOS"
	FieldUnprofitableSOS          Field = "unprofitableSOS"
	FieldEDCount                  Field = "edCount"
	FieldEDRate                   Field = "edRate"
	FieldRecallCount              Field = "recallCount"
	FieldRecallRate               Field = "recallRate"
	FieldRepairTimePerCall        Field = "repairTimePerCall"
	FieldTravelTimePerCall        Field = "travelTimePerCall"
)

// labels maps the upper-cased row label of an export to the field it feeds.
var labels = map[string]Field{
	"CALL VOLUME":                  FieldCallVolume,
	"PPT PROFIT PER CALL":          FieldPPTProfitPerCall,
	"TOTAL REVENUE PER CALL":       FieldTotalRevenuePerCall,
	"TOTAL COST PER CALL":          FieldTotalCostPerCall,
	"TOTAL COST (PER CALL)":        FieldTotalCostPerCall,
	"LABOR REVENUE PER CALL":       FieldLaborRevenuePerCall,
	"PARTS REVENUE PER CALL":       FieldPartsRevenuePerCall,
	"PAYROLL COST PER CALL":        FieldPayrollCostPerCall,
	"BENEFIT COST PER CALL":        FieldBenefitCostPerCall,
	"PARTS COST PER CALL":          FieldPartsCostPerCall,
	"UNMARKED PARTS COST PER CALL": FieldUnmarkedPartsCostPerCall,
	"TRUCK COST PER CALL":          FieldTruckCostPerCall,
	"SHIPMENT COST PER CALL":       FieldShipmentCostPerCall,
	"PPT PROFIT":                   FieldPPTProfit,
	"TOTAL REVENUE":                FieldTotalRevenue,
	"TOTAL COST":                   FieldTotalCost,
	"PAYROLL COST":                 FieldPayrollCost,
	"BENEFIT COST":                 FieldBenefitCost,
	"PARTS COST":                   FieldPartsCost,
	"UNMARKED PARTS COST":          FieldUnmarkedPartsCost,
	"TRUCK COST":                   FieldTruckCost,
	"SHIPMENT COST":                FieldShipmentCost,
	"PROFITABLE %":                 FieldProfitablePercentage,
	"UNPROFITABLE %":               FieldUnprofitablePercentage,
	"PROFITABLE SOS":               FieldProfitableSOS,
	"UNPROFITABLE SOS":             FieldUnprofitableSOS,
	"ED COUNT":                     FieldEDCount,
	"ED RATE":                      FieldEDRate,
	"RECALL COUNT":                 FieldRecallCount,
	"RECALL RATE":                  FieldRecallRate,
	"REPAIR TIME PER CALL":         FieldRepairTimePerCall,
	"TRAVEL TIME PER CALL":         FieldTravelTimePerCall,
}

// LookupLabel returns the field fed by a metric row label.
func LookupLabel(label string) (Field, bool) {
	f, ok := labels[strings.ToUpper(strings.TrimSpace(label))]
	return f, ok
}

// metricFields lists the fields a metric row can populate, in Record order.
var metricFields = []Field{
	FieldPPTProfitPerCall,
	FieldTotalRevenuePerCall,
	FieldTotalCostPerCall,
	FieldLaborRevenuePerCall,
	FieldPartsRevenuePerCall,
	FieldPayrollCostPerCall,
	FieldBenefitCostPerCall,
	FieldPartsCostPerCall,
	FieldUnmarkedPartsCostPerCall,
	FieldTruckCostPerCall,
	FieldShipmentCostPerCall,
	FieldPPTProfit,
	FieldTotalRevenue,
	FieldTotalCost,
	FieldPayrollCost,
	FieldBenefitCost,
	FieldPartsCost,
	FieldUnmarkedPartsCost,
	FieldTruckCost,
	FieldShipmentCost,
	FieldProfitablePercentage,
	FieldUnprofitablePercentage,
	FieldProfitableSOS,
	FieldUnprofitableSOS,
	FieldEDCount,
	FieldEDRate,
	FieldRecallCount,
	FieldRecallRate,
	FieldRepairTimePerCall,
	FieldTravelTimePerCall,
}

// Fields returns every field that a metric row can populate, call volume
// excluded, always in the same order.
func Fields() []Field {
	return append([]Field(nil), metricFields...)
}

// Set assigns v to field f. Unknown fields are ignored.
func (r *Record) Set(f Field, v float64) {
	switch f {
	case FieldCallVolume:
		r.CallVolume = int(math.Round(v))
	case FieldPPTProfitPerCall:
		r.PPTProfitPerCall = v
	case FieldTotalRevenuePerCall:
		r.TotalRevenuePerCall = v
	case FieldTotalCostPerCall:
		r.TotalCostPerCall = v
	case FieldLaborRevenuePerCall:
		r.LaborRevenuePerCall = v
	case FieldPartsRevenuePerCall:
		r.PartsRevenuePerCall = v
	case FieldPayrollCostPerCall:
		r.PayrollCostPerCall = v
	case FieldBenefitCostPerCall:
		r.BenefitCostPerCall = v
	case FieldPartsCostPerCall:
		r.PartsCostPerCall = v
	case FieldUnmarkedPartsCostPerCall:
		r.UnmarkedPartsCostPerCall = v
	case FieldTruckCostPerCall:
		r.TruckCostPerCall = v
	case FieldShipmentCostPerCall:
		r.ShipmentCostPerCall = v
	case FieldPPTProfit:
		r.PPTProfit = v
	case FieldTotalRevenue:
		r.TotalRevenue = v
	case FieldTotalCost:
		r.TotalCost = v
	case FieldPayrollCost:
		r.PayrollCost = v
	case FieldBenefitCost:
		r.BenefitCost = v
	case FieldPartsCost:
		r.PartsCost = v
	case FieldUnmarkedPartsCost:
		r.UnmarkedPartsCost = v
	case FieldTruckCost:
		r.TruckCost = v
	case FieldShipmentCost:
		r.ShipmentCost = v
	case FieldProfitablePercentage:
		r.ProfitablePercentage = v
	case FieldUnprofitablePercentage:
		r.UnprofitablePercentage = v
	case FieldProfitableSOS:
		r.ProfitableSOS = v
	case FieldUnprofitableSOS:
		r.UnprofitableSOS = v
	case FieldEDCount:
		r.EDCount = v
	case FieldEDRate:
		r.EDRate = v
	case FieldRecallCount:
		r.RecallCount = v
	case FieldRecallRate:
		r.RecallRate = v
	case FieldRepairTimePerCall:
		r.RepairTimePerCall = v
	case FieldTravelTimePerCall:
		r.TravelTimePerCall = v
	}
}
