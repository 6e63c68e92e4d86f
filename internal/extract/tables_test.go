package extract

import (
	"testing"

	"github.com/fieldline/docparse/internal/decoder"
)

func TestNormalizeTables_BasicGrid(t *testing.T) {
	pages := []decoder.PageTables{{
		Page: 1,
		Grids: []decoder.Grid{{
			{"Description", "Qty", "Price"},
			{"Widget", "2", "10.00"},
			{"", "", ""},
		}},
	}}

	cands := NormalizeTables(pages)
	if len(cands) != 1 {
		t.Fatalf("expected 1 candidate, got %d: %+v", len(cands), cands)
	}
	c := cands[0]
	if got, want := c.Value, "Widget | 2 | 10.00"; got != want {
		t.Errorf("value = %q, want %q", got, want)
	}
	if c.Source != SourceTable {
		t.Errorf("source = %v, want table", c.Source)
	}
	if c.Confidence != 0.95 {
		t.Errorf("confidence = %v, want 0.95", c.Confidence)
	}
	if c.RowIndex != 1 || c.TableIndex != 0 {
		t.Errorf("indices = (%d, %d), want (0 table, 1 row)", c.TableIndex, c.RowIndex)
	}
	if got := c.TableData["Description"]; got != "Widget" {
		t.Errorf("table_data[Description] = %q, want Widget", got)
	}
	if got := c.TableData["Qty"]; got != "2" {
		t.Errorf("table_data[Qty] = %q, want 2", got)
	}
}

func TestNormalizeTables_HeaderRowNeverEmitted(t *testing.T) {
	pages := []decoder.PageTables{{
		Page: 1,
		Grids: []decoder.Grid{{
			{"OnlyHeader", "Row"},
		}},
	}}
	if cands := NormalizeTables(pages); len(cands) != 0 {
		t.Fatalf("header-only table produced %d candidates, want 0", len(cands))
	}
}

func TestNormalizeTables_SynthesizedColumnNames(t *testing.T) {
	pages := []decoder.PageTables{{
		Page: 2,
		Grids: []decoder.Grid{{
			{"Name", ""},
			{"Alpha", "Beta", "Gamma"}, // more cells than headers
		}},
	}}
	cands := NormalizeTables(pages)
	if len(cands) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(cands))
	}
	td := cands[0].TableData
	if td["Name"] != "Alpha" {
		t.Errorf("table_data[Name] = %q, want Alpha", td["Name"])
	}
	if td["col_1"] != "Beta" {
		t.Errorf("blank header: table_data[col_1] = %q, want Beta", td["col_1"])
	}
	if td["col_2"] != "Gamma" {
		t.Errorf("missing header: table_data[col_2] = %q, want Gamma", td["col_2"])
	}
}

func TestNormalizeTables_NilAndEmptyRowsSkipped(t *testing.T) {
	pages := []decoder.PageTables{{
		Page: 1,
		Grids: []decoder.Grid{{
			{"H"},
			nil,
			{" "},
			{"data"},
		}},
	}}
	cands := NormalizeTables(pages)
	if len(cands) != 1 {
		t.Fatalf("expected 1 candidate, got %d: %+v", len(cands), cands)
	}
	if cands[0].Value != "data" {
		t.Errorf("value = %q, want data", cands[0].Value)
	}
	if cands[0].RowIndex != 3 {
		t.Errorf("row index = %d, want 3", cands[0].RowIndex)
	}
}

func TestNormalizeTables_EmptyGridAndNoTables(t *testing.T) {
	pages := []decoder.PageTables{
		{Page: 1, Grids: []decoder.Grid{{}}},
		{Page: 2},
	}
	if cands := NormalizeTables(pages); len(cands) != 0 {
		t.Fatalf("expected no candidates, got %d", len(cands))
	}
}
