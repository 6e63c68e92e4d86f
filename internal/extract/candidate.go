package extract

import (
	"encoding/json"
	"fmt"
)

// Source identifies the detection layer that produced a candidate. The set is
// closed; Rank drives the fusion sort order.
type Source uint8

const (
	SourcePattern Source = iota
	SourceTable
	SourceAmount
	SourceLayout
)

func (s Source) String() string {
	switch s {
	case SourcePattern:
		return "pattern"
	case SourceTable:
		return "table"
	case SourceAmount:
		return "amount"
	case SourceLayout:
		return "layout"
	}
	return fmt.Sprintf("source(%d)", uint8(s))
}

// Rank is the fusion precedence: pattern < table < amount < layout.
func (s Source) Rank() int { return int(s) }

func (s Source) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Source) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	switch name {
	case "pattern":
		*s = SourcePattern
	case "table":
		*s = SourceTable
	case "amount":
		*s = SourceAmount
	case "layout":
		*s = SourceLayout
	default:
		return fmt.Errorf("unknown candidate source %q", name)
	}
	return nil
}

// FieldType is the closed set of typed fields the pattern classifier emits.
type FieldType string

const (
	FieldInvoiceNumber FieldType = "invoice_number"
	FieldDate          FieldType = "date"
	FieldDueDate       FieldType = "due_date"
	FieldTotal         FieldType = "total"
	FieldSubtotal      FieldType = "subtotal"
	FieldTax           FieldType = "tax"
	FieldClientName    FieldType = "client_name"
	FieldCompanyName   FieldType = "company_name"
	FieldEmail         FieldType = "email"
	FieldPhone         FieldType = "phone"
)

// Position is a page-relative bounding box, origin top-left.
type Position struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Line is one semantic line assembled from vertically proximate tokens.
// Immutable once produced; consumed by the pattern, amount, fusion and
// projection stages.
type Line struct {
	Value    string
	Page     int
	Position Position
}

// lineConfidence is the fixed layout-derived confidence for semantic lines.
const lineConfidence = 0.90

// Candidate is a field value extracted by one detection layer, tagged with
// its origin. Source is the discriminant: table candidates carry TableData /
// TableIndex / RowIndex, pattern and amount candidates carry FieldType and
// OriginalLine, layout candidates carry neither.
type Candidate struct {
	Value        string            `json:"value"`
	Page         int               `json:"page"`
	Position     Position          `json:"position"`
	Confidence   float64           `json:"confidence"`
	Source       Source            `json:"source"`
	FieldType    FieldType         `json:"field_type,omitempty"`
	OriginalLine string            `json:"original_line,omitempty"`
	TableData    map[string]string `json:"table_data,omitempty"`
	TableIndex   int               `json:"table_index,omitempty"`
	RowIndex     int               `json:"row_index,omitempty"`
}

// Candidate converts a semantic line into its layout-layer candidate form.
func (l Line) Candidate() Candidate {
	return Candidate{
		Value:      l.Value,
		Page:       l.Page,
		Position:   l.Position,
		Confidence: lineConfidence,
		Source:     SourceLayout,
	}
}
