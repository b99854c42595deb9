package jobcodes

import (
	"strings"

	"jobcode-stats/domain/jobcode"
)

// ParseWarning records a cell that did not parse and was taken as zero.
type ParseWarning struct {
	Segment jobcode.Segment `json:"segment"`
	JobCode string          `json:"jobCode"`
	Field   jobcode.Field   `json:"field"`
	Period  string          `json:"period"`
	Raw     string          `json:"raw"`
}

// Materialize builds one record per period of interest for which the block has
// a positive call volume. A missing or non-positive volume means the job code
// was not performed in that period, so no record is produced. minVolume raises
// the floor above 1 when set.
func Materialize(b Block, header []string, periods []string, seg jobcode.Segment, minVolume int) ([]jobcode.Record, []ParseWarning) {
	var records []jobcode.Record
	var warnings []ParseWarning
	for _, period := range periods {
		idx := columnIndex(header, period)
		if idx < 0 {
			continue
		}
		raw := cell(b.Volume(), idx)
		if raw == "" {
			continue
		}
		volume, err := parseValue(raw)
		if err != nil {
			warnings = append(warnings, ParseWarning{Segment: seg, JobCode: b.JobCode, Field: jobcode.FieldCallVolume, Period: period, Raw: raw})
			continue
		}
		rec := jobcode.Record{
			JobCode:        b.JobCode,
			JobDescription: b.Description,
			Segment:        seg,
			Period:         period,
		}
		rec.Set(jobcode.FieldCallVolume, volume)
		if rec.CallVolume <= 0 || rec.CallVolume < minVolume {
			continue
		}
		for _, field := range jobcode.Fields() {
			raw := cell(b.Series[field], idx)
			v, err := parseValue(raw)
			if err != nil {
				warnings = append(warnings, ParseWarning{Segment: seg, JobCode: b.JobCode, Field: field, Period: period, Raw: raw})
			}
			rec.Set(field, v)
		}
		records = append(records, rec)
	}
	return records, warnings
}

// columnIndex locates a period token in the header row. Column 0 holds labels
// and never matches.
func columnIndex(header []string, period string) int {
	for i := 1; i < len(header); i++ {
		if strings.TrimSpace(header[i]) == period {
			return i
		}
	}
	return -1
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
