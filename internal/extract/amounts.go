package extract

import (
	"regexp"
	"strconv"
	"strings"
)

const amountConfidence = 0.95

// Two independent detectors, both required to keep arbitrary numbers in
// running text out of the candidate set: one anchored on amount keywords,
// one on an explicit currency mark.
var (
	keywordAmountRe  = regexp.MustCompile(`(?i)(total|subtotal|amount|tax|vat|due|balance|price|fee)\s*:?\s*\$?\s*([\d,]+\.?\d{0,2})`)
	currencyAmountRe = regexp.MustCompile(`(?i)\$\s*([\d,]+\.?\d{0,2})|(?:USD|KES|EUR|GBP)\s*([\d,]+\.?\d{0,2})`)
)

// IsolateAmounts extracts monetary-only candidates from semantic lines.
// A capture is accepted only if it parses to a strictly positive decimal and
// its normalized spelling (commas stripped) has not already been accepted
// anywhere in the document during this pass, regardless of which detector
// found it. Malformed captures are dropped silently; this is a best-effort
// filter, not validation. The seen set is request-scoped.
func IsolateAmounts(lines []Line) []Candidate {
	seen := make(map[string]struct{})
	var out []Candidate
	for _, line := range lines {
		for _, m := range keywordAmountRe.FindAllStringSubmatch(line.Value, -1) {
			if c, ok := acceptAmount(m[2], line, seen); ok {
				out = append(out, c)
			}
		}
		for _, m := range currencyAmountRe.FindAllStringSubmatch(line.Value, -1) {
			raw := m[1]
			if raw == "" {
				raw = m[2]
			}
			if c, ok := acceptAmount(raw, line, seen); ok {
				out = append(out, c)
			}
		}
	}
	return out
}

func acceptAmount(raw string, line Line, seen map[string]struct{}) (Candidate, bool) {
	amount := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if amount == "" {
		return Candidate{}, false
	}
	if _, dup := seen[amount]; dup {
		return Candidate{}, false
	}
	v, err := strconv.ParseFloat(amount, 64)
	if err != nil || v <= 0 {
		return Candidate{}, false
	}
	seen[amount] = struct{}{}
	return Candidate{
		Value:        amount,
		Page:         line.Page,
		Position:     line.Position,
		Confidence:   amountConfidence,
		Source:       SourceAmount,
		FieldType:    FieldTotal,
		OriginalLine: line.Value,
	}, true
}
