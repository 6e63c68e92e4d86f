package decoder

import (
	"bytes"
	"context"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/fieldline/docparse/internal/common"
)

// PDFDecoder decodes words directly from PDF content streams. It performs no
// structural table detection; DecodeTables always reports zero grids, so
// PDF-sourced requests rely on the pattern, amount and layout layers.
type PDFDecoder struct {
	// RowTolerance groups fragments whose baselines differ by at most this
	// many points into one visual row.
	RowTolerance float64
	// WordGapFactor, multiplied by font size, is the maximum horizontal gap
	// still bridged inside a single token.
	WordGapFactor float64
}

// NewPDFDecoder returns a PDFDecoder with the default fragment-merging
// tolerances.
func NewPDFDecoder() *PDFDecoder {
	return &PDFDecoder{
		RowTolerance:  3.0,
		WordGapFactor: 0.3,
	}
}

func (d *PDFDecoder) DecodeWords(ctx context.Context, data []byte) ([]Page, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, common.DecodeError(err, "open pdf")
	}

	pages := make([]Page, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, Page{Number: i})
			continue
		}
		pages = append(pages, Page{Number: i, Tokens: d.pageTokens(p)})
	}
	return pages, nil
}

func (d *PDFDecoder) DecodeTables(context.Context, []byte) ([]PageTables, error) {
	return nil, nil
}

// pageTokens flattens a page's text fragments into positioned tokens:
// fragments are sorted into visual rows (PDF Y axis points up), merged into
// words by horizontal gap, and re-expressed with a top-left origin.
func (d *PDFDecoder) pageTokens(p pdf.Page) []Token {
	content := p.Content()
	frags := make([]pdf.Text, 0, len(content.Text))
	pageHeight := 0.0
	for _, t := range content.Text {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		frags = append(frags, t)
		if top := t.Y + t.FontSize; top > pageHeight {
			pageHeight = top
		}
	}
	if len(frags) == 0 {
		return nil
	}
	if h := mediaBoxHeight(p); h > pageHeight {
		pageHeight = h
	}

	sort.SliceStable(frags, func(i, j int) bool {
		if frags[i].Y != frags[j].Y {
			return frags[i].Y > frags[j].Y // higher Y renders first
		}
		return frags[i].X < frags[j].X
	})

	var tokens []Token
	var word []pdf.Text
	rowY := frags[0].Y

	flush := func() {
		if len(word) == 0 {
			return
		}
		tokens = append(tokens, d.buildToken(word, pageHeight))
		word = word[:0]
	}

	for _, f := range frags {
		if len(word) > 0 {
			prev := word[len(word)-1]
			sameRow := abs(f.Y-rowY) <= d.RowTolerance
			gap := f.X - (prev.X + prev.W)
			maxGap := d.WordGapFactor * prev.FontSize
			if maxGap < 1.0 {
				maxGap = 1.0
			}
			if !sameRow || gap > maxGap {
				flush()
			}
		}
		if len(word) == 0 {
			rowY = f.Y
		}
		word = append(word, f)
	}
	flush()
	return tokens
}

func (d *PDFDecoder) buildToken(word []pdf.Text, pageHeight float64) Token {
	var b strings.Builder
	x0, x1 := word[0].X, word[0].X+word[0].W
	baseline, size := word[0].Y, word[0].FontSize
	for _, f := range word {
		b.WriteString(f.S)
		if f.X < x0 {
			x0 = f.X
		}
		if right := f.X + f.W; right > x1 {
			x1 = right
		}
		if f.Y < baseline {
			baseline = f.Y
		}
		if f.FontSize > size {
			size = f.FontSize
		}
	}
	return Token{
		Text:   b.String(),
		X0:     x0,
		X1:     x1,
		Top:    pageHeight - (baseline + size),
		Bottom: pageHeight - baseline,
	}
}

// mediaBoxHeight reads the page's MediaBox height, walking up the page tree
// for the inherited value. Returns 0 when absent.
func mediaBoxHeight(p pdf.Page) float64 {
	v := p.V
	for !v.IsNull() {
		if box := v.Key("MediaBox"); !box.IsNull() && box.Len() == 4 {
			return box.Index(3).Float64() - box.Index(1).Float64()
		}
		v = v.Key("Parent")
	}
	return 0
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
