package extract

import (
	"sort"
	"testing"
)

func patternCand(value string) Candidate {
	return Candidate{Value: value, Page: 1, Confidence: 0.85, Source: SourcePattern, FieldType: FieldInvoiceNumber}
}

func tableCand(value string) Candidate {
	return Candidate{Value: value, Page: 1, Confidence: 0.95, Source: SourceTable, RowIndex: 1}
}

func amountCand(value string) Candidate {
	return Candidate{Value: value, Page: 1, Confidence: 0.95, Source: SourceAmount, FieldType: FieldTotal}
}

func TestFuse_OrderedBySourceRankThenConfidence(t *testing.T) {
	fused := Fuse(
		[]Candidate{patternCand("INV-9")},
		[]Candidate{tableCand("Widget | 2 | 10.00")},
		[]Candidate{amountCand("108.25")},
		[]Line{line("Net thirty days apply", 1)},
		DefaultLayoutFilter(),
	)
	wantSources := []Source{SourcePattern, SourceTable, SourceAmount, SourceLayout}
	if len(fused) != len(wantSources) {
		t.Fatalf("fused length = %d, want %d: %+v", len(fused), len(wantSources), fused)
	}
	for i, s := range wantSources {
		if fused[i].Source != s {
			t.Errorf("fused[%d].Source = %v, want %v", i, fused[i].Source, s)
		}
	}
	if !sort.SliceIsSorted(fused, func(i, j int) bool {
		if fused[i].Source.Rank() != fused[j].Source.Rank() {
			return fused[i].Source.Rank() < fused[j].Source.Rank()
		}
		return fused[i].Confidence > fused[j].Confidence
	}) {
		t.Error("fused sequence violates (rank, confidence desc) ordering")
	}
}

func TestFuse_DedupIsCaseInsensitiveFirstWins(t *testing.T) {
	fused := Fuse(
		[]Candidate{patternCand("Acme Corp")},
		[]Candidate{tableCand("ACME CORP")},
		nil,
		[]Line{line("acme corp", 1)},
		DefaultLayoutFilter(),
	)
	if len(fused) != 1 {
		t.Fatalf("expected 1 fused candidate, got %d: %+v", len(fused), fused)
	}
	if fused[0].Source != SourcePattern {
		t.Errorf("highest-precedence duplicate should survive, got source %v", fused[0].Source)
	}
	if fused[0].Value != "Acme Corp" {
		t.Errorf("value = %q, want original casing preserved", fused[0].Value)
	}
}

func TestFuse_ShortTableValuesDropped(t *testing.T) {
	fused := Fuse(nil, []Candidate{tableCand("ok"), tableCand("n/a"), tableCand("kept")}, nil, nil, DefaultLayoutFilter())
	if len(fused) != 1 || fused[0].Value != "kept" {
		t.Errorf("expected only values longer than 3 chars, got %+v", fused)
	}
}

func TestFuse_NumericLayoutLineExcluded(t *testing.T) {
	fused := Fuse(nil, nil, nil, []Line{
		line("12345", 1),
		line("1,234.56", 1),
		line("Payment reference 12345", 1),
	}, DefaultLayoutFilter())
	if len(fused) != 1 {
		t.Fatalf("expected 1 fused candidate, got %+v", fused)
	}
	if fused[0].Value != "Payment reference 12345" {
		t.Errorf("value = %q", fused[0].Value)
	}
	if fused[0].Source != SourceLayout || fused[0].FieldType != "" {
		t.Errorf("layout candidate mistyped: %+v", fused[0])
	}
}

func TestLayoutFilter_Skip(t *testing.T) {
	f := DefaultLayoutFilter()
	seen := map[string]struct{}{"already here": {}}
	tests := []struct {
		name  string
		value string
		skip  bool
	}{
		{"empty", "   ", true},
		{"too short", "abc", true},
		{"duplicate", "Already Here", true},
		{"short header", "Date", true},
		{"header prefix under cap", "Description of work", true},
		{"header prefix over cap", "Due diligence findings attached here", false},
		{"numeric", "1 234,00", true},
		{"normal prose", "Thank you for your business", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.Skip(tc.value, seen); got != tc.skip {
				t.Errorf("Skip(%q) = %v, want %v", tc.value, got, tc.skip)
			}
		})
	}
}
