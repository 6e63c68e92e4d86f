package extract

import "testing"

func line(value string, page int) Line {
	return Line{Value: value, Page: page, Position: Position{X: 1, Y: 2, Width: 3, Height: 4}}
}

func candidatesOfType(cands []Candidate, ft FieldType) []Candidate {
	var out []Candidate
	for _, c := range cands {
		if c.FieldType == ft {
			out = append(out, c)
		}
	}
	return out
}

func TestClassifyLines_InvoiceNumber(t *testing.T) {
	cands := ClassifyLines([]Line{line("Invoice Number: INV-2024-001", 1)})
	inv := candidatesOfType(cands, FieldInvoiceNumber)
	if len(inv) != 1 {
		t.Fatalf("expected 1 invoice_number candidate, got %d: %+v", len(inv), cands)
	}
	c := inv[0]
	if got, want := c.Value, "INV-2024-001"; got != want {
		t.Errorf("value = %q, want %q", got, want)
	}
	if c.Source != SourcePattern {
		t.Errorf("source = %v, want pattern", c.Source)
	}
	if c.Confidence != 0.85 {
		t.Errorf("confidence = %v, want 0.85", c.Confidence)
	}
	if got, want := c.OriginalLine, "Invoice Number: INV-2024-001"; got != want {
		t.Errorf("original_line = %q, want %q", got, want)
	}
}

func TestClassifyLines_InvoiceNumberVariants(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"Invoice #: A-77", "A-77"},
		{"INVOICE NO. 4411", "4411"},
		{"Inv#X99", "X99"},
	}
	for _, tc := range tests {
		t.Run(tc.line, func(t *testing.T) {
			inv := candidatesOfType(ClassifyLines([]Line{line(tc.line, 1)}), FieldInvoiceNumber)
			if len(inv) != 1 {
				t.Fatalf("got %d invoice_number candidates, want 1", len(inv))
			}
			if inv[0].Value != tc.want {
				t.Errorf("value = %q, want %q", inv[0].Value, tc.want)
			}
		})
	}
}

func TestClassifyLines_MonetaryValuesLoseThousandsSeparators(t *testing.T) {
	cands := ClassifyLines([]Line{line("Total: $1,250.00", 1)})
	totals := candidatesOfType(cands, FieldTotal)
	if len(totals) != 1 {
		t.Fatalf("expected 1 total candidate, got %d", len(totals))
	}
	if got, want := totals[0].Value, "1250.00"; got != want {
		t.Errorf("total value = %q, want %q", got, want)
	}
}

func TestClassifyLines_AtMostOneCandidatePerType(t *testing.T) {
	// Matches both the "bill to" and "client" patterns for client_name; only
	// the first pattern in priority order may fire.
	cands := ClassifyLines([]Line{line("Bill To: Acme Client Corp", 1)})
	clients := candidatesOfType(cands, FieldClientName)
	if len(clients) != 1 {
		t.Fatalf("expected 1 client_name candidate, got %d: %+v", len(clients), clients)
	}
	if got, want := clients[0].Value, "Acme Client Corp"; got != want {
		t.Errorf("value = %q, want %q", got, want)
	}
}

func TestClassifyLines_MultipleTypesFromOneLine(t *testing.T) {
	cands := ClassifyLines([]Line{line("Phone: 555-123-4567 or billing@acme.io", 1)})
	if got := candidatesOfType(cands, FieldPhone); len(got) != 1 {
		t.Errorf("expected a phone candidate, got %+v", cands)
	}
	emails := candidatesOfType(cands, FieldEmail)
	if len(emails) != 1 {
		t.Fatalf("expected an email candidate, got %+v", cands)
	}
	if emails[0].Value != "billing@acme.io" {
		t.Errorf("email value = %q, want billing@acme.io", emails[0].Value)
	}
}

func TestClassifyLines_DueDateAlsoMatchesDate(t *testing.T) {
	// A due-date line legitimately carries both typed candidates; they are
	// distinct field types.
	cands := ClassifyLines([]Line{line("Due Date: 01/15/2024", 1)})
	if got := candidatesOfType(cands, FieldDueDate); len(got) != 1 || got[0].Value != "01/15/2024" {
		t.Errorf("due_date candidates = %+v", got)
	}
	if got := candidatesOfType(cands, FieldDate); len(got) != 1 || got[0].Value != "01/15/2024" {
		t.Errorf("date candidates = %+v", got)
	}
}

func TestClassifyLines_TextualDate(t *testing.T) {
	cands := ClassifyLines([]Line{line("Signed on 3 March 2024 in Nairobi", 1)})
	dates := candidatesOfType(cands, FieldDate)
	if len(dates) != 1 {
		t.Fatalf("expected 1 date candidate, got %+v", cands)
	}
	if got, want := dates[0].Value, "3 March 2024"; got != want {
		t.Errorf("value = %q, want %q", got, want)
	}
}

func TestClassifyLines_NoMatchNoCandidates(t *testing.T) {
	if cands := ClassifyLines([]Line{line("just some prose with nothing typed", 1)}); len(cands) != 0 {
		t.Errorf("expected no candidates, got %+v", cands)
	}
}
