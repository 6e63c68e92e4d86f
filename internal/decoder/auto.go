package decoder

import (
	"context"
	"fmt"

	"github.com/fieldline/docparse/constants"
	"github.com/fieldline/docparse/internal/common"
)

// Auto routes each payload to the right concrete decoder by sniffing the
// bytes: native PDF content goes to PDF, external layout-helper envelopes
// go to JSON.
type Auto struct {
	PDF  Decoder
	JSON Decoder
}

// NewAuto wires the default decoder set.
func NewAuto() *Auto {
	return &Auto{PDF: NewPDFDecoder(), JSON: JSONDecoder{}}
}

func (a *Auto) pick(data []byte) (Decoder, error) {
	switch constants.DetectFormat(data) {
	case constants.PDF:
		return a.PDF, nil
	case constants.JSON:
		return a.JSON, nil
	}
	return nil, common.DecodeError(fmt.Errorf("unrecognized payload"), "detect format")
}

func (a *Auto) DecodeWords(ctx context.Context, data []byte) ([]Page, error) {
	d, err := a.pick(data)
	if err != nil {
		return nil, err
	}
	return d.DecodeWords(ctx, data)
}

func (a *Auto) DecodeTables(ctx context.Context, data []byte) ([]PageTables, error) {
	d, err := a.pick(data)
	if err != nil {
		return nil, err
	}
	return d.DecodeTables(ctx, data)
}
