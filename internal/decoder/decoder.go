package decoder

import "context"

// Token is a single decoded text fragment with its page-relative bounding box.
// Coordinates are in layout units with the origin at the top-left of the page,
// so Top increases downward.
type Token struct {
	Text   string
	X0     float64
	X1     float64
	Top    float64
	Bottom float64
}

// Page holds the positioned tokens of one page in reading order.
// Number is 1-based.
type Page struct {
	Number int
	Tokens []Token
}

// Grid is a raw detected table: row-major cells, possibly empty. Rows may be
// nil when the underlying detector reports an absent row.
type Grid [][]string

// PageTables holds the raw table grids detected on one page.
type PageTables struct {
	Page  int
	Grids []Grid
}

// Decoder turns document bytes into positioned tokens and raw table grids.
// Implementations must be safe for concurrent use; DecodeWords and
// DecodeTables may be called in parallel for the same payload.
type Decoder interface {
	DecodeWords(ctx context.Context, data []byte) ([]Page, error)
	DecodeTables(ctx context.Context, data []byte) ([]PageTables, error)
}
