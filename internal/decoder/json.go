package decoder

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/fieldline/docparse/internal/common"
)

// envelopeSchema constrains the JSON emitted by external layout-analysis
// helpers before any of it reaches the pipeline. Table rows may be null; the
// helper reports absent rows that way.
const envelopeSchema = `{
  "type": "object",
  "required": ["pages"],
  "properties": {
    "pages": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["page"],
        "properties": {
          "page": {"type": "integer", "minimum": 1},
          "words": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["text", "x0", "x1", "top", "bottom"],
              "properties": {
                "text": {"type": "string"},
                "x0": {"type": "number"},
                "x1": {"type": "number"},
                "top": {"type": "number"},
                "bottom": {"type": "number"}
              }
            }
          },
          "tables": {
            "type": "array",
            "items": {
              "type": "array",
              "items": {
                "type": ["array", "null"],
                "items": {"type": ["string", "null"]}
              }
            }
          }
        }
      }
    }
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
)

func envelopeValidator() *jsonschema.Schema {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("envelope.json", strings.NewReader(envelopeSchema)); err != nil {
			panic(err)
		}
		compiledSchema = compiler.MustCompile("envelope.json")
	})
	return compiledSchema
}

type envelope struct {
	Pages []envelopePage `json:"pages"`
}

type envelopePage struct {
	Page   int           `json:"page"`
	Words  []wordRecord  `json:"words"`
	Tables [][][]*string `json:"tables"`
}

type wordRecord struct {
	Text   string  `json:"text"`
	X0     float64 `json:"x0"`
	X1     float64 `json:"x1"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// JSONDecoder decodes the JSON envelope produced by an external layout
// helper carrying both positioned words and raw table grids.
type JSONDecoder struct{}

func (JSONDecoder) DecodeWords(_ context.Context, data []byte) ([]Page, error) {
	env, err := parseEnvelope(data)
	if err != nil {
		return nil, err
	}
	pages := make([]Page, 0, len(env.Pages))
	for _, p := range env.Pages {
		page := Page{Number: p.Page, Tokens: make([]Token, 0, len(p.Words))}
		for _, w := range p.Words {
			page.Tokens = append(page.Tokens, Token{
				Text:   w.Text,
				X0:     w.X0,
				X1:     w.X1,
				Top:    w.Top,
				Bottom: w.Bottom,
			})
		}
		pages = append(pages, page)
	}
	return pages, nil
}

func (JSONDecoder) DecodeTables(_ context.Context, data []byte) ([]PageTables, error) {
	env, err := parseEnvelope(data)
	if err != nil {
		return nil, err
	}
	out := make([]PageTables, 0, len(env.Pages))
	for _, p := range env.Pages {
		pt := PageTables{Page: p.Page}
		for _, raw := range p.Tables {
			grid := make(Grid, 0, len(raw))
			for _, row := range raw {
				if row == nil {
					grid = append(grid, nil)
					continue
				}
				cells := make([]string, len(row))
				for i, cell := range row {
					if cell != nil {
						cells[i] = *cell
					}
				}
				grid = append(grid, cells)
			}
			pt.Grids = append(pt.Grids, grid)
		}
		out = append(out, pt)
	}
	return out, nil
}

func parseEnvelope(data []byte) (*envelope, error) {
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, common.DecodeError(err, "parse envelope")
	}
	if err := envelopeValidator().Validate(generic); err != nil {
		return nil, common.DecodeError(err, "validate envelope")
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, common.DecodeError(err, "map envelope")
	}
	return &env, nil
}
