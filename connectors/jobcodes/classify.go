package jobcodes

import (
	"regexp"
	"strings"

	"jobcode-stats/domain/jobcode"
)

// entityHeader matches the first cell of a job code row, e.g. "90001 - Thermostat Repair".
var entityHeader = regexp.MustCompile(`^\d+\s*-`)

// Block is one job code of an export: its header row and the metric rows below it.
// Series rows are kept whole so that a header column index addresses them directly.
type Block struct {
	JobCode     string
	Description string
	Series      map[jobcode.Field][]string
	Unknown     []string
}

// Volume returns the call volume series of the block.
func (b Block) Volume() []string {
	return b.Series[jobcode.FieldCallVolume]
}

// Classify walks the matrix from row 1 and groups rows into job code blocks.
// Rows before the first header and rows with an unknown label are ignored.
func Classify(matrix [][]string) []Block {
	var blocks []Block
	var cur *Block
	for i := 1; i < len(matrix); i++ {
		row := matrix[i]
		if len(row) == 0 {
			continue
		}
		first := strings.TrimSpace(row[0])
		if first == "" {
			continue
		}

		if entityHeader.MatchString(first) {
			if cur != nil {
				blocks = append(blocks, *cur)
			}
			code, desc := splitHeader(first)
			cur = &Block{
				JobCode:     code,
				Description: desc,
				Series:      map[jobcode.Field][]string{jobcode.FieldCallVolume: row},
			}
			continue
		}
		if cur == nil {
			continue
		}

		field, ok := jobcode.LookupLabel(first)
		if !ok {
			cur.Unknown = append(cur.Unknown, first)
			continue
		}
		cur.Series[field] = row
	}
	if cur != nil {
		blocks = append(blocks, *cur)
	}
	return blocks
}

// splitHeader cuts a header cell at the first " - ". The code may itself hold
// hyphens ("90001-A - Thermostat Repair"). Cells without " - " are cut at the
// first hyphen.
func splitHeader(cell string) (code, desc string) {
	code, desc, ok := strings.Cut(cell, " - ")
	if !ok {
		code, desc, _ = strings.Cut(cell, "-")
	}
	return strings.TrimSpace(code), strings.TrimSpace(desc)
}
