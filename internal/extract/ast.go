package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// maxRawLines caps the archived layout lines in the AST.
const maxRawLines = 50

// Meta holds document-level identity fields.
type Meta struct {
	Title            string            `json:"title"`
	ReferenceNumbers map[string]string `json:"reference_numbers"`
}

// Parties holds the two sides of the document.
type Parties struct {
	Issuer    string `json:"issuer"`
	Recipient string `json:"recipient"`
}

// LineItem is one row of the document's itemized content.
type LineItem struct {
	Label     string   `json:"label"`
	Quantity  int      `json:"quantity"`
	UnitPrice *float64 `json:"unit_price"`
	Status    string   `json:"status"`
}

// Dates holds the document's recognized calendar fields.
type Dates struct {
	Due    string `json:"due"`
	Signed string `json:"signed"`
}

// DocumentAST is the canonical, organization-agnostic projection of the
// extracted data. A separate mapping layer queries it via fixed key paths
// (e.g. meta.reference_numbers.task_order). Built fresh per request and
// never mutated after construction.
type DocumentAST struct {
	Meta     Meta       `json:"meta"`
	Parties  Parties    `json:"parties"`
	Items    []LineItem `json:"items"`
	Dates    Dates      `json:"dates"`
	RawLines []string   `json:"raw_lines"`
}

var (
	hashTokenRe = regexp.MustCompile(`#\s*([A-Za-z0-9-]+)`)
	refTokenRe  = regexp.MustCompile(`[A-Za-z0-9-]+`)
)

// ProjectDocument builds the AST from the raw layer outputs. It deliberately
// consumes the per-layer candidates rather than the fused list, so values
// fusion deduplicates away are still available here. Pattern-derived fields
// are first-seen-wins: a field already set is never overwritten.
func ProjectDocument(layout []Line, pattern, table []Candidate) *DocumentAST {
	ast := &DocumentAST{
		Meta:     Meta{ReferenceNumbers: map[string]string{}},
		Items:    []LineItem{},
		RawLines: []string{},
	}

	for _, c := range pattern {
		val := strings.TrimSpace(c.Value)
		if val == "" {
			continue
		}
		switch c.FieldType {
		case FieldInvoiceNumber:
			setRef(ast.Meta.ReferenceNumbers, "invoice_number", val)
		case FieldDate:
			if ast.Dates.Signed == "" {
				ast.Dates.Signed = val
			}
		case FieldDueDate:
			if ast.Dates.Due == "" {
				ast.Dates.Due = val
			}
		case FieldClientName:
			if ast.Parties.Recipient == "" {
				ast.Parties.Recipient = val
			}
		case FieldCompanyName:
			if ast.Parties.Issuer == "" {
				ast.Parties.Issuer = val
			}
		case FieldTotal, FieldSubtotal, FieldTax:
			setRef(ast.Meta.ReferenceNumbers, string(c.FieldType), val)
		}
	}

	// Line-shaped heuristics not covered by the general patterns: task
	// orders, contract numbers, and "FOR:" party lines.
	for _, l := range layout {
		line := strings.TrimSpace(l.Value)
		if len(ast.RawLines) < maxRawLines {
			ast.RawLines = append(ast.RawLines, line)
		}
		lower := strings.ToLower(line)
		if strings.Contains(lower, "task order") || strings.Contains(lower, "t.o") {
			if tok := referenceToken(line); tok != "" {
				ast.Meta.ReferenceNumbers["task_order"] = tok
			}
		}
		if strings.Contains(lower, "contract") && strings.Contains(lower, "number") {
			if _, rest, found := strings.Cut(line, ":"); found {
				ast.Meta.ReferenceNumbers["contract"] = strings.TrimSpace(rest)
			}
		}
		if strings.HasPrefix(strings.ToUpper(line), "FOR:") && len(line) > 5 {
			name := strings.TrimSpace(line[4:])
			if ast.Parties.Issuer == "" {
				ast.Parties.Issuer = name
			} else {
				ast.Parties.Recipient = name
			}
		}
	}

	// Title: first meaningful layout line.
	for _, l := range layout {
		line := strings.TrimSpace(l.Value)
		if len(line) <= 2 {
			continue
		}
		lower := strings.ToLower(line)
		if strings.HasPrefix(lower, "deliverable") || strings.HasPrefix(lower, "#") || strings.HasPrefix(lower, "date") {
			continue
		}
		ast.Meta.Title = line
		break
	}

	for _, c := range table {
		if item, ok := projectItem(c); ok {
			ast.Items = append(ast.Items, item)
		}
	}

	return ast
}

func setRef(refs map[string]string, key, val string) {
	if _, ok := refs[key]; !ok {
		refs[key] = val
	}
}

// referenceToken pulls an alphanumeric token (letters/digits/hyphens) out of
// a reference line: the token after '#' when one is present, otherwise the
// first token after the first colon.
func referenceToken(line string) string {
	if m := hashTokenRe.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	if _, rest, found := strings.Cut(line, ":"); found {
		return refTokenRe.FindString(rest)
	}
	return ""
}

// projectItem maps one table candidate to a line item. Column matching is by
// header substring, case-insensitive; headers are visited in sorted order so
// the projection is deterministic when one row matches a column class twice.
// A row is kept only if it ends up with a non-empty label or status.
func projectItem(c Candidate) (LineItem, bool) {
	item := LineItem{
		Label:    firstNonEmpty(c.TableData["Description"], c.TableData["description"], c.TableData["Deliverable"], c.Value),
		Quantity: 1,
		Status:   firstNonEmpty(c.TableData["Status"], c.TableData["status"]),
	}

	headers := make([]string, 0, len(c.TableData))
	for h := range c.TableData {
		headers = append(headers, h)
	}
	sort.Strings(headers)

	for _, h := range headers {
		v := c.TableData[h]
		switch lower := strings.ToLower(h); {
		case strings.Contains(lower, "desc"):
			if v != "" {
				item.Label = v
			}
		case strings.Contains(lower, "qty"), strings.Contains(lower, "quantity"):
			if q, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				item.Quantity = int(q)
			}
		case strings.Contains(lower, "price"), strings.Contains(lower, "amount"):
			raw := strings.ReplaceAll(strings.TrimSpace(v), ",", "")
			if p, err := strconv.ParseFloat(raw, 64); err == nil {
				item.UnitPrice = &p
			}
		case strings.Contains(lower, "status"):
			if v != "" {
				item.Status = v
			}
		}
	}

	if item.Label == "" && item.Status == "" {
		return LineItem{}, false
	}
	return item, true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
