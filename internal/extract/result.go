package extract

// Stats summarizes one pipeline pass. Pattern/table/amount counts are the
// raw layer sizes before fusion; LayoutIncluded counts the layout lines that
// survived the fusion filter.
type Stats struct {
	TotalFields    int `json:"total_fields"`
	PatternFields  int `json:"pattern_fields"`
	TableFields    int `json:"table_fields"`
	AmountFields   int `json:"amount_fields"`
	LayoutIncluded int `json:"layout_included"`
}

// Result is the per-request envelope returned to the caller. On failure only
// Error and Trace are populated; no partial results are carried.
type Result struct {
	Success     bool         `json:"success"`
	Fields      []Candidate  `json:"fields,omitempty"`
	DocumentAST *DocumentAST `json:"document_ast,omitempty"`
	Stats       *Stats       `json:"stats,omitempty"`
	Error       string       `json:"error,omitempty"`
	Trace       string       `json:"traceback,omitempty"`
}
