package decoder

import (
	"context"
	"errors"
	"testing"

	"github.com/fieldline/docparse/internal/common"
)

const validEnvelope = `{
  "pages": [
    {
      "page": 1,
      "words": [
        {"text": "Invoice", "x0": 10, "x1": 50, "top": 20, "bottom": 30},
        {"text": "Total", "x0": 10, "x1": 40, "top": 40, "bottom": 50}
      ],
      "tables": [
        [
          ["Description", "Qty"],
          ["Widget", null],
          null
        ]
      ]
    }
  ]
}`

func TestJSONDecoder_DecodeWords(t *testing.T) {
	pages, err := JSONDecoder{}.DecodeWords(context.Background(), []byte(validEnvelope))
	if err != nil {
		t.Fatal(err)
	}
	if len(pages) != 1 || pages[0].Number != 1 {
		t.Fatalf("pages = %+v", pages)
	}
	toks := pages[0].Tokens
	if len(toks) != 2 {
		t.Fatalf("tokens = %+v", toks)
	}
	if toks[0].Text != "Invoice" || toks[0].X0 != 10 || toks[0].Top != 20 {
		t.Errorf("first token = %+v", toks[0])
	}
}

func TestJSONDecoder_DecodeTables(t *testing.T) {
	pts, err := JSONDecoder{}.DecodeTables(context.Background(), []byte(validEnvelope))
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != 1 || len(pts[0].Grids) != 1 {
		t.Fatalf("page tables = %+v", pts)
	}
	grid := pts[0].Grids[0]
	if len(grid) != 3 {
		t.Fatalf("grid = %+v", grid)
	}
	if grid[0][0] != "Description" || grid[0][1] != "Qty" {
		t.Errorf("header row = %+v", grid[0])
	}
	// null cell maps to empty string, null row stays nil.
	if grid[1][1] != "" {
		t.Errorf("null cell = %q, want empty", grid[1][1])
	}
	if grid[2] != nil {
		t.Errorf("null row = %+v, want nil", grid[2])
	}
}

func TestJSONDecoder_RejectsMalformedJSON(t *testing.T) {
	_, err := JSONDecoder{}.DecodeWords(context.Background(), []byte(`{"pages": [`))
	if !errors.Is(err, common.ErrDecode) {
		t.Errorf("err = %v, want ErrDecode", err)
	}
}

func TestJSONDecoder_RejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing pages", `{}`},
		{"page below one", `{"pages": [{"page": 0}]}`},
		{"word missing coordinates", `{"pages": [{"page": 1, "words": [{"text": "x"}]}]}`},
		{"non-string cell", `{"pages": [{"page": 1, "tables": [[[42]]]}]}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := JSONDecoder{}.DecodeWords(context.Background(), []byte(tc.body))
			if !errors.Is(err, common.ErrDecode) {
				t.Errorf("err = %v, want ErrDecode", err)
			}
		})
	}
}

func TestJSONDecoder_EmptyPageList(t *testing.T) {
	pages, err := JSONDecoder{}.DecodeWords(context.Background(), []byte(`{"pages": []}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(pages) != 0 {
		t.Errorf("pages = %+v, want none", pages)
	}
}
