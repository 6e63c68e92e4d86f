package extract

import (
	"fmt"
	"strings"

	"github.com/fieldline/docparse/internal/decoder"
)

const tableConfidence = 0.95

// NormalizeTables turns raw detected grids into row-level field candidates.
// Row 0 of every grid is treated as the header row and never emitted. Each
// data row yields one candidate carrying the pipe-joined non-empty cell texts
// and a header→value map; when the header cell at a column is blank, or the
// row has more cells than the header, the column name is synthesized as
// col_<i>. Nil rows and rows whose cells are all empty are skipped.
//
// Column alignment is positional, not name-matched: grids whose column count
// varies row to row may misalign headers. Accepted approximation.
func NormalizeTables(pages []decoder.PageTables) []Candidate {
	var out []Candidate
	for _, pt := range pages {
		for tableIdx, grid := range pt.Grids {
			if len(grid) == 0 {
				continue
			}
			headers := grid[0]
			for rowIdx, row := range grid[1:] {
				if row == nil {
					continue
				}
				c, ok := normalizeRow(row, headers)
				if !ok {
					continue
				}
				c.Page = pt.Page
				c.TableIndex = tableIdx
				c.RowIndex = rowIdx + 1
				out = append(out, c)
			}
		}
	}
	return out
}

func normalizeRow(row, headers []string) (Candidate, bool) {
	parts := make([]string, 0, len(row))
	data := make(map[string]string, len(row))
	for colIdx, cell := range row {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		parts = append(parts, cell)
		header := ""
		if colIdx < len(headers) {
			header = strings.TrimSpace(headers[colIdx])
		}
		if header == "" {
			header = fmt.Sprintf("col_%d", colIdx)
		}
		data[header] = cell
	}
	if len(parts) == 0 {
		return Candidate{}, false
	}
	return Candidate{
		Value:      strings.Join(parts, " | "),
		Confidence: tableConfidence,
		Source:     SourceTable,
		TableData:  data,
	}, true
}
