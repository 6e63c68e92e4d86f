package extract

import (
	"sort"
	"strings"
)

// LayoutFilter holds the heuristics that decide whether a raw layout line is
// worth including in the fused field list. Exposed as explicit parameters so
// the predicate can be tested in isolation.
type LayoutFilter struct {
	MinLength      int
	HeaderPrefixes []string
	// HeaderMaxLength: a line starting with a header prefix is only skipped
	// while it is shorter than this; long lines that merely begin with
	// "Date" etc. are kept.
	HeaderMaxLength int
}

// DefaultLayoutFilter matches the tuned production heuristics.
func DefaultLayoutFilter() LayoutFilter {
	return LayoutFilter{
		MinLength:       4,
		HeaderPrefixes:  []string{"deliverable", "#", "date", "description", "due", "status", "index"},
		HeaderMaxLength: 25,
	}
}

// Skip reports whether a layout line should be excluded from fusion.
// seen holds the lowercased dedup keys accepted so far.
func (f LayoutFilter) Skip(value string, seen map[string]struct{}) bool {
	value = strings.TrimSpace(value)
	if value == "" || len(value) < f.MinLength {
		return true
	}
	lower := strings.ToLower(value)
	if _, dup := seen[lower]; dup {
		return true
	}
	for _, p := range f.HeaderPrefixes {
		if strings.HasPrefix(lower, p) && len(value) < f.HeaderMaxLength {
			return true
		}
	}
	return purelyNumeric(value)
}

// purelyNumeric reports whether nothing but digits remains once digits'
// usual punctuation (dots, commas, spaces) is removed.
func purelyNumeric(value string) bool {
	stripped := strings.Map(func(r rune) rune {
		switch r {
		case '.', ',', ' ':
			return -1
		}
		return r
	}, value)
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// minTableValueLength filters noise rows: table candidates with normalized
// values this short carry no useful signal.
const minTableValueLength = 3

// Fuse merges the four candidate streams into one ordered, deduplicated
// sequence. Precedence of insertion: pattern, table (values longer than
// three characters only), amount, then layout lines surviving the filter.
// The dedup key is the lowercased trimmed value; the first occurrence wins
// across the whole concatenation regardless of source. The final sort is
// stable on (source rank, descending confidence), so insertion order breaks
// ties.
func Fuse(pattern, table, amount []Candidate, layout []Line, filter LayoutFilter) []Candidate {
	seen := make(map[string]struct{})
	fused := make([]Candidate, 0, len(pattern)+len(table)+len(amount))

	accept := func(c Candidate) {
		key := strings.ToLower(strings.TrimSpace(c.Value))
		if key == "" {
			return
		}
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		fused = append(fused, c)
	}

	for _, c := range pattern {
		accept(c)
	}
	for _, c := range table {
		if len(strings.TrimSpace(c.Value)) > minTableValueLength {
			accept(c)
		}
	}
	for _, c := range amount {
		accept(c)
	}
	for _, l := range layout {
		if filter.Skip(l.Value, seen) {
			continue
		}
		accept(l.Candidate())
	}

	sort.SliceStable(fused, func(i, j int) bool {
		if fused[i].Source.Rank() != fused[j].Source.Rank() {
			return fused[i].Source.Rank() < fused[j].Source.Rank()
		}
		return fused[i].Confidence > fused[j].Confidence
	})
	return fused
}
