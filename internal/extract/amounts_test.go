package extract

import "testing"

func TestIsolateAmounts_BothDetectorsYieldOneCandidate(t *testing.T) {
	// "Total: $1,250.00" triggers the keyword detector and the currency
	// detector; the normalized value must come out exactly once.
	cands := IsolateAmounts([]Line{line("Total: $1,250.00", 1)})
	if len(cands) != 1 {
		t.Fatalf("expected 1 candidate, got %d: %+v", len(cands), cands)
	}
	c := cands[0]
	if got, want := c.Value, "1250.00"; got != want {
		t.Errorf("value = %q, want %q", got, want)
	}
	if c.Source != SourceAmount {
		t.Errorf("source = %v, want amount", c.Source)
	}
	if c.FieldType != FieldTotal {
		t.Errorf("field_type = %v, want total", c.FieldType)
	}
	if c.Confidence != 0.95 {
		t.Errorf("confidence = %v, want 0.95", c.Confidence)
	}
}

func TestIsolateAmounts_DedupAcrossLines(t *testing.T) {
	lines := []Line{
		line("Subtotal: 99.50", 1),
		line("Amount due USD 99.50", 2),
	}
	cands := IsolateAmounts(lines)
	if len(cands) != 1 {
		t.Fatalf("expected 1 candidate after dedup, got %d: %+v", len(cands), cands)
	}
	if cands[0].Page != 1 {
		t.Errorf("first occurrence wins; page = %d, want 1", cands[0].Page)
	}
}

func TestIsolateAmounts_DistinctValuesAllKept(t *testing.T) {
	lines := []Line{
		line("Subtotal: $100.00", 1),
		line("Tax: $8.25", 1),
		line("Total: $108.25", 1),
	}
	cands := IsolateAmounts(lines)
	if len(cands) != 3 {
		t.Fatalf("expected 3 candidates, got %d: %+v", len(cands), cands)
	}
	want := []string{"100.00", "8.25", "108.25"}
	for i, w := range want {
		if cands[i].Value != w {
			t.Errorf("cands[%d].Value = %q, want %q", i, cands[i].Value, w)
		}
	}
}

func TestIsolateAmounts_RejectsNonPositiveAndMalformed(t *testing.T) {
	lines := []Line{
		line("Total: $0", 1),
		line("Balance: 0.00", 1),
		line("Fee: $,", 1),
	}
	if cands := IsolateAmounts(lines); len(cands) != 0 {
		t.Errorf("expected no candidates, got %+v", cands)
	}
}

func TestIsolateAmounts_PlainNumbersIgnored(t *testing.T) {
	// Numbers without a keyword or currency anchor never become candidates.
	lines := []Line{
		line("Shipped 12 units on dock 7", 1),
		line("Reference 2024-0099", 1),
	}
	if cands := IsolateAmounts(lines); len(cands) != 0 {
		t.Errorf("expected no candidates, got %+v", cands)
	}
}

func TestIsolateAmounts_CurrencyCodeDetector(t *testing.T) {
	cands := IsolateAmounts([]Line{line("Payable KES 4,500.00 on receipt", 1)})
	if len(cands) != 1 {
		t.Fatalf("expected 1 candidate, got %+v", cands)
	}
	if got, want := cands[0].Value, "4500.00"; got != want {
		t.Errorf("value = %q, want %q", got, want)
	}
}

func TestIsolateAmounts_SeenSetIsRequestScoped(t *testing.T) {
	in := []Line{line("Total: $55.00", 1)}
	first := IsolateAmounts(in)
	second := IsolateAmounts(in)
	if len(first) != 1 || len(second) != 1 {
		t.Errorf("dedup state leaked across calls: first=%d second=%d", len(first), len(second))
	}
}
