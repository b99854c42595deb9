package jobcode

import "strings"

// Category names, in matching order. Other catches everything else.
const (
	CategoryDiagnostics      = "Diagnostics"
	CategoryPartsReplacement = "Parts Replacement"
	CategoryMaintenance      = "Maintenance"
	CategoryServiceCharges   = "Service Charges"
	CategoryOther            = "Other"
)

var categoryRules = []struct {
	name     string
	keywords []string
}{
	{CategoryDiagnostics, []string{"diagnos", "inspect", "check", "troubleshoot"}},
	{CategoryPartsReplacement, []string{"replace", "part", "install", "compressor", "motor", "board"}},
	{CategoryMaintenance, []string{"maint", "clean", "tune", "service plan", "filter"}},
	{CategoryServiceCharges, []string{"charge", "fee", "trip", "labor only"}},
}

// Categories lists every category name in report order.
var Categories = []string{
	CategoryDiagnostics,
	CategoryPartsReplacement,
	CategoryMaintenance,
	CategoryServiceCharges,
	CategoryOther,
}

// Categorize infers a category from a job description. First match wins.
func Categorize(description string) string {
	d := strings.ToLower(description)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(d, kw) {
				return rule.name
			}
		}
	}
	return CategoryOther
}
