package extract

import (
	"strings"

	"github.com/fieldline/docparse/internal/decoder"
)

// DefaultLineProximity is the vertical distance, in layout units, within
// which tokens are considered part of the same line. It is a fixed
// approximation, not derived from font metrics; documents with irregular
// line spacing may under- or over-segment.
const DefaultLineProximity = 5.0

// LineAssembler groups positioned tokens into semantic lines.
type LineAssembler struct {
	// Proximity overrides DefaultLineProximity when > 0.
	Proximity float64
}

// Assemble scans tokens page by page in the decoder's reading order. A new
// line group starts whenever a token's top coordinate differs from the
// current group's anchor top by more than the proximity threshold. Groups
// whose joined text trims to empty are dropped. Output preserves page order,
// then within-page scan order.
func (a LineAssembler) Assemble(pages []decoder.Page) []Line {
	threshold := a.Proximity
	if threshold <= 0 {
		threshold = DefaultLineProximity
	}

	var lines []Line
	for _, page := range pages {
		var group []decoder.Token
		var anchorTop float64

		flush := func() {
			if len(group) == 0 {
				return
			}
			if l, ok := buildLine(group, page.Number); ok {
				lines = append(lines, l)
			}
			group = group[:0]
		}

		for _, tok := range page.Tokens {
			if len(group) == 0 || abs(tok.Top-anchorTop) > threshold {
				flush()
				anchorTop = tok.Top
			}
			group = append(group, tok)
		}
		flush()
	}
	return lines
}

// buildLine joins member texts with single spaces and computes the minimal
// enclosing rectangle of the group.
func buildLine(group []decoder.Token, page int) (Line, bool) {
	parts := make([]string, 0, len(group))
	for _, t := range group {
		parts = append(parts, t.Text)
	}
	value := strings.TrimSpace(strings.Join(parts, " "))
	if value == "" {
		return Line{}, false
	}

	x0, x1 := group[0].X0, group[0].X1
	top, bottom := group[0].Top, group[0].Bottom
	for _, t := range group[1:] {
		if t.X0 < x0 {
			x0 = t.X0
		}
		if t.X1 > x1 {
			x1 = t.X1
		}
		if t.Top < top {
			top = t.Top
		}
		if t.Bottom > bottom {
			bottom = t.Bottom
		}
	}

	return Line{
		Value: value,
		Page:  page,
		Position: Position{
			X:      x0,
			Y:      top,
			Width:  x1 - x0,
			Height: bottom - top,
		},
	}, true
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
