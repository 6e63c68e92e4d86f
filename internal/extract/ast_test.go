package extract

import (
	"fmt"
	"testing"
)

func TestProjectDocument_TableRowBecomesItem(t *testing.T) {
	table := []Candidate{{
		Value:      "Widget | 2 | 10.00",
		Source:     SourceTable,
		Confidence: 0.95,
		TableData: map[string]string{
			"Description": "Widget",
			"Quantity":    "2",
			"Unit Price":  "10.00",
		},
	}}
	ast := ProjectDocument(nil, nil, table)
	if len(ast.Items) != 1 {
		t.Fatalf("expected 1 item, got %+v", ast.Items)
	}
	item := ast.Items[0]
	if item.Label != "Widget" {
		t.Errorf("label = %q, want Widget", item.Label)
	}
	if item.Quantity != 2 {
		t.Errorf("quantity = %d, want 2", item.Quantity)
	}
	if item.UnitPrice == nil || *item.UnitPrice != 10.00 {
		t.Errorf("unit_price = %v, want 10.00", item.UnitPrice)
	}
}

func TestProjectDocument_ItemDefaults(t *testing.T) {
	table := []Candidate{{
		Value:     "Consulting retainer",
		Source:    SourceTable,
		TableData: map[string]string{"col_0": "Consulting retainer"},
	}}
	ast := ProjectDocument(nil, nil, table)
	if len(ast.Items) != 1 {
		t.Fatalf("expected 1 item, got %+v", ast.Items)
	}
	item := ast.Items[0]
	if item.Label != "Consulting retainer" {
		t.Errorf("label falls back to row value, got %q", item.Label)
	}
	if item.Quantity != 1 {
		t.Errorf("quantity default = %d, want 1", item.Quantity)
	}
	if item.UnitPrice != nil {
		t.Errorf("unit_price should stay nil, got %v", *item.UnitPrice)
	}
}

func TestProjectDocument_RowWithoutLabelOrStatusDropped(t *testing.T) {
	table := []Candidate{{
		Source:    SourceTable,
		TableData: map[string]string{"Quantity": "42"},
	}}
	ast := ProjectDocument(nil, nil, table)
	if len(ast.Items) != 0 {
		t.Errorf("expected no items, got %+v", ast.Items)
	}
}

func TestProjectDocument_PatternFieldsFirstSeenWins(t *testing.T) {
	pattern := []Candidate{
		{FieldType: FieldInvoiceNumber, Value: "INV-1", Source: SourcePattern},
		{FieldType: FieldInvoiceNumber, Value: "INV-2", Source: SourcePattern},
		{FieldType: FieldClientName, Value: "First Client", Source: SourcePattern},
		{FieldType: FieldClientName, Value: "Second Client", Source: SourcePattern},
		{FieldType: FieldDueDate, Value: "01/15/2024", Source: SourcePattern},
		{FieldType: FieldTotal, Value: "1250.00", Source: SourcePattern},
	}
	ast := ProjectDocument(nil, pattern, nil)
	if got := ast.Meta.ReferenceNumbers["invoice_number"]; got != "INV-1" {
		t.Errorf("invoice_number = %q, want INV-1", got)
	}
	if ast.Parties.Recipient != "First Client" {
		t.Errorf("recipient = %q, want First Client", ast.Parties.Recipient)
	}
	if ast.Dates.Due != "01/15/2024" {
		t.Errorf("dates.due = %q", ast.Dates.Due)
	}
	if got := ast.Meta.ReferenceNumbers["total"]; got != "1250.00" {
		t.Errorf("total ref = %q, want 1250.00", got)
	}
}

func TestProjectDocument_TaskOrderToken(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"Task Order # TS1-ND-0013", "TS1-ND-0013"},
		{"Task Order Number: TS1-ND-0013 dated today", "TS1-ND-0013"},
		{"T.O #55-A", "55-A"},
	}
	for _, tc := range tests {
		t.Run(tc.line, func(t *testing.T) {
			ast := ProjectDocument([]Line{line(tc.line, 1)}, nil, nil)
			if got := ast.Meta.ReferenceNumbers["task_order"]; got != tc.want {
				t.Errorf("task_order = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestProjectDocument_ContractNumber(t *testing.T) {
	ast := ProjectDocument([]Line{line("Contract Number: YT-0013/25", 1)}, nil, nil)
	if got := ast.Meta.ReferenceNumbers["contract"]; got != "YT-0013/25" {
		t.Errorf("contract = %q, want YT-0013/25", got)
	}
}

func TestProjectDocument_ForLinesFillIssuerThenRecipient(t *testing.T) {
	layout := []Line{
		line("FOR: Northwind Services LLC", 1),
		line("FOR: County Water Authority", 1),
	}
	ast := ProjectDocument(layout, nil, nil)
	if ast.Parties.Issuer != "Northwind Services LLC" {
		t.Errorf("issuer = %q", ast.Parties.Issuer)
	}
	if ast.Parties.Recipient != "County Water Authority" {
		t.Errorf("recipient = %q", ast.Parties.Recipient)
	}
}

func TestProjectDocument_TitleSkipsHeaderishLines(t *testing.T) {
	layout := []Line{
		line("# ", 1),
		line("Date", 1),
		line("Deliverables Summary", 1),
		line("Statement of Work", 1),
	}
	ast := ProjectDocument(layout, nil, nil)
	if ast.Meta.Title != "Statement of Work" {
		t.Errorf("title = %q, want Statement of Work", ast.Meta.Title)
	}
}

func TestProjectDocument_RawLinesCapped(t *testing.T) {
	layout := make([]Line, 60)
	for i := range layout {
		layout[i] = line(fmt.Sprintf("line %02d", i), 1)
	}
	ast := ProjectDocument(layout, nil, nil)
	if len(ast.RawLines) != 50 {
		t.Fatalf("raw_lines length = %d, want 50", len(ast.RawLines))
	}
	if ast.RawLines[0] != "line 00" || ast.RawLines[49] != "line 49" {
		t.Errorf("raw_lines keeps document order, got first %q last %q", ast.RawLines[0], ast.RawLines[49])
	}
}

func TestProjectDocument_EmptyInputs(t *testing.T) {
	ast := ProjectDocument(nil, nil, nil)
	if ast.Items == nil || ast.RawLines == nil || ast.Meta.ReferenceNumbers == nil {
		t.Error("collections must be empty, not nil")
	}
	if len(ast.Items) != 0 || len(ast.RawLines) != 0 {
		t.Errorf("expected empty projection, got %+v", ast)
	}
}
