package extract

import (
	"regexp"
	"strings"
)

const patternConfidence = 0.85

// typedPatterns holds the ordered pattern list for one field type. Patterns
// are tried in order and the first match wins; later patterns for the same
// type are not attempted against that line.
type typedPatterns struct {
	fieldType FieldType
	patterns  []*regexp.Regexp
}

// fieldPatterns is the fixed, priority-ordered rule set. All patterns are
// case-insensitive and run against the original line so the captured group
// keeps its original casing.
var fieldPatterns = []typedPatterns{
	{FieldInvoiceNumber, compileAll(
		`invoice\s+(?:number|no\.?)\s*[:#]?\s*([A-Za-z0-9-]+)`,
		`invoice\s*#\s*:?\s*([A-Za-z0-9-]+)`,
		`inv(?:oice)?\s*[:#]\s*([A-Za-z0-9-]+)`,
	)},
	{FieldDate, compileAll(
		`date\s*:?\s*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`,
		`(\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{2,4})`,
	)},
	{FieldDueDate, compileAll(
		`due\s+date\s*:?\s*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`,
		`due\s*:?\s*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`,
	)},
	{FieldTotal, compileAll(
		`total\s*:?\s*\$?\s*([\d,]+\.?\d*)`,
		`amount\s+due\s*:?\s*\$?\s*([\d,]+\.?\d*)`,
	)},
	{FieldSubtotal, compileAll(
		`subtotal\s*:?\s*\$?\s*([\d,]+\.?\d*)`,
		`sub-total\s*:?\s*\$?\s*([\d,]+\.?\d*)`,
	)},
	{FieldTax, compileAll(
		`tax\s*\(?vat\)?\s*:?\s*\$?\s*([\d,]+\.?\d*)`,
		`vat\s*:?\s*\$?\s*([\d,]+\.?\d*)`,
	)},
	{FieldClientName, compileAll(
		`bill\s+to\s*:?\s*(.+)`,
		`client\s*:?\s*(.+)`,
		`customer\s*:?\s*(.+)`,
	)},
	{FieldCompanyName, compileAll(
		`from\s*:?\s*(.+)`,
		`company\s*:?\s*(.+)`,
	)},
	{FieldEmail, compileAll(
		`([A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,})`,
	)},
	{FieldPhone, compileAll(
		`phone\s*:?\s*(\+?[\d\s()-]+)`,
		`tel\s*:?\s*(\+?[\d\s()-]+)`,
	)},
}

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(`(?i)` + e)
	}
	return out
}

// monetaryTypes are the field types whose extracted values are numeric;
// thousands separators are stripped so downstream dedup sees one spelling.
var monetaryTypes = map[FieldType]bool{
	FieldTotal:    true,
	FieldSubtotal: true,
	FieldTax:      true,
}

// ClassifyLines runs every typed pattern list over every semantic line.
// A line may produce candidates for multiple distinct field types, but at
// most one candidate per (line, field type) pair. Extracted value is the
// first capturing group when present, otherwise the whole match, trimmed.
// No dedup happens here; fusion owns dedup.
func ClassifyLines(lines []Line) []Candidate {
	var out []Candidate
	for _, line := range lines {
		for _, tp := range fieldPatterns {
			for _, re := range tp.patterns {
				m := re.FindStringSubmatch(line.Value)
				if m == nil {
					continue
				}
				value := m[0]
				if len(m) > 1 {
					value = m[1]
				}
				value = strings.TrimSpace(value)
				if monetaryTypes[tp.fieldType] {
					value = strings.ReplaceAll(value, ",", "")
				}
				out = append(out, Candidate{
					Value:        value,
					Page:         line.Page,
					Position:     line.Position,
					Confidence:   patternConfidence,
					Source:       SourcePattern,
					FieldType:    tp.fieldType,
					OriginalLine: line.Value,
				})
				break
			}
		}
	}
	return out
}
