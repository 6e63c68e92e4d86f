package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/fieldline/docparse/internal/decoder"
	"github.com/fieldline/docparse/internal/extract"
)

// fakeDecoder returns canned pages and tables, or fails on demand.
type fakeDecoder struct {
	pages     []decoder.Page
	tables    []decoder.PageTables
	wordsErr  error
	tablesErr error
}

func (f *fakeDecoder) DecodeWords(_ context.Context, _ []byte) ([]decoder.Page, error) {
	return f.pages, f.wordsErr
}

func (f *fakeDecoder) DecodeTables(_ context.Context, _ []byte) ([]decoder.PageTables, error) {
	return f.tables, f.tablesErr
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func tk(text string, x0, top float64) decoder.Token {
	return decoder.Token{Text: text, X0: x0, X1: x0 + 40, Top: top, Bottom: top + 10}
}

func invoicePages() []decoder.Page {
	return []decoder.Page{{
		Number: 1,
		Tokens: []decoder.Token{
			tk("Northwind", 10, 20), tk("Invoice", 55, 20),
			tk("Invoice", 10, 40), tk("Number:", 55, 40), tk("INV-2024-001", 100, 40),
			tk("Total:", 10, 60), tk("$1,250.00", 55, 60),
		},
	}}
}

func invoiceTables() []decoder.PageTables {
	return []decoder.PageTables{{
		Page: 1,
		Grids: []decoder.Grid{{
			{"Description", "Quantity", "Unit Price"},
			{"Widget", "2", "10.00"},
		}},
	}}
}

func TestParse_FullDocument(t *testing.T) {
	p := NewPipeline(discardLogger(), Config{}, &fakeDecoder{pages: invoicePages(), tables: invoiceTables()})
	res := p.Parse(context.Background(), []byte("irrelevant"))

	if !res.Success {
		t.Fatalf("success = false, error %q", res.Error)
	}
	if res.Stats == nil {
		t.Fatal("stats missing")
	}
	if res.Stats.PatternFields == 0 || res.Stats.TableFields != 1 || res.Stats.AmountFields != 1 {
		t.Errorf("unexpected stats: %+v", res.Stats)
	}
	if res.Stats.TotalFields != len(res.Fields) {
		t.Errorf("total_fields = %d, fields = %d", res.Stats.TotalFields, len(res.Fields))
	}

	var invoiceNo, total string
	for _, f := range res.Fields {
		switch f.FieldType {
		case extract.FieldInvoiceNumber:
			invoiceNo = f.Value
		case extract.FieldTotal:
			if total == "" {
				total = f.Value
			}
		}
	}
	if invoiceNo != "INV-2024-001" {
		t.Errorf("invoice number = %q, want INV-2024-001", invoiceNo)
	}
	if total != "1250.00" {
		t.Errorf("total = %q, want 1250.00", total)
	}

	if res.DocumentAST == nil {
		t.Fatal("document AST missing")
	}
	if got := res.DocumentAST.Meta.ReferenceNumbers["invoice_number"]; got != "INV-2024-001" {
		t.Errorf("ast invoice_number = %q", got)
	}
	if len(res.DocumentAST.Items) != 1 || res.DocumentAST.Items[0].Label != "Widget" {
		t.Errorf("ast items = %+v", res.DocumentAST.Items)
	}
}

func TestParse_EmptyDocumentSucceeds(t *testing.T) {
	p := NewPipeline(discardLogger(), Config{}, &fakeDecoder{})
	res := p.Parse(context.Background(), nil)

	if !res.Success {
		t.Fatalf("empty document must succeed, error %q", res.Error)
	}
	if len(res.Fields) != 0 {
		t.Errorf("fields = %+v, want none", res.Fields)
	}
	if res.Stats == nil || *res.Stats != (extract.Stats{}) {
		t.Errorf("stats = %+v, want all zero", res.Stats)
	}
	if res.DocumentAST == nil {
		t.Error("AST must be present even for empty documents")
	}
	if res.Error != "" || res.Trace != "" {
		t.Errorf("error fields populated on success: %q / %q", res.Error, res.Trace)
	}
}

func TestParse_DecodeFailure(t *testing.T) {
	p := NewPipeline(discardLogger(), Config{}, &fakeDecoder{wordsErr: errors.New("truncated stream")})
	res := p.Parse(context.Background(), []byte("x"))

	if res.Success {
		t.Fatal("decode failure must not succeed")
	}
	if res.Error != "truncated stream" {
		t.Errorf("error = %q", res.Error)
	}
	if res.Trace == "" {
		t.Error("trace missing on failure")
	}
	if res.Fields != nil || res.Stats != nil || res.DocumentAST != nil {
		t.Errorf("partial results carried on failure: %+v", res)
	}
}

// panickingDecoder blows up inside the decode goroutines, the way a PDF
// reader does on a corrupt document.
type panickingDecoder struct {
	fakeDecoder
	inWords  bool
	inTables bool
}

func (d *panickingDecoder) DecodeWords(ctx context.Context, data []byte) ([]decoder.Page, error) {
	if d.inWords {
		panic("corrupt xref table")
	}
	return d.fakeDecoder.DecodeWords(ctx, data)
}

func (d *panickingDecoder) DecodeTables(ctx context.Context, data []byte) ([]decoder.PageTables, error) {
	if d.inTables {
		panic("corrupt xref table")
	}
	return d.fakeDecoder.DecodeTables(ctx, data)
}

func TestParse_DecodePanicBecomesFailureResult(t *testing.T) {
	tests := []struct {
		name string
		dec  *panickingDecoder
	}{
		{"words panics", &panickingDecoder{inWords: true}},
		{"tables panics", &panickingDecoder{inTables: true}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPipeline(discardLogger(), Config{}, tc.dec)
			res := p.Parse(context.Background(), []byte("%PDF-garbage"))

			if res.Success {
				t.Fatal("panicking decode must not succeed")
			}
			if res.Error != "corrupt xref table" {
				t.Errorf("error = %q, want the panic value", res.Error)
			}
			if res.Trace == "" {
				t.Error("trace missing; failure should carry the panic stack")
			}
			if res.Fields != nil || res.Stats != nil || res.DocumentAST != nil {
				t.Errorf("partial results carried on panic: %+v", res)
			}
		})
	}
}

func TestParse_Idempotent(t *testing.T) {
	p := NewPipeline(discardLogger(), Config{}, &fakeDecoder{pages: invoicePages(), tables: invoiceTables()})

	first, err := json.Marshal(p.Parse(context.Background(), []byte("doc")))
	if err != nil {
		t.Fatal(err)
	}
	second, err := json.Marshal(p.Parse(context.Background(), []byte("doc")))
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Errorf("two passes over the same input differ:\n%s\n%s", first, second)
	}
}
