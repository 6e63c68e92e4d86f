package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"

	"golang.org/x/sync/errgroup"

	"github.com/fieldline/docparse/internal/decoder"
	"github.com/fieldline/docparse/internal/extract"
)

// Config holds extraction tunables for one pipeline instance.
type Config struct {
	LineProximity float64 // 0 keeps the assembler default
}

// Pipeline runs the full extraction-and-fusion pass over one document.
// A Pipeline is stateless between requests; every dedup set lives inside a
// single Parse call.
type Pipeline struct {
	Logger *slog.Logger
	Cfg    Config
	Dec    decoder.Decoder
}

func NewPipeline(logger *slog.Logger, cfg Config, dec decoder.Decoder) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{Logger: logger, Cfg: cfg, Dec: dec}
}

// stagePanic is a panic captured inside a stage goroutine, carried as an
// error so the boundary in Parse can report it.
type stagePanic struct {
	value any
	stack []byte
}

func (p *stagePanic) Error() string { return fmt.Sprint(p.value) }

// guard wraps a stage body so a panic comes back as an error. errgroup does
// not forward panics raised inside Go closures to Wait, so each goroutine
// needs its own recover.
func guard(fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = &stagePanic{value: r, stack: debug.Stack()}
			}
		}()
		return fn()
	}
}

// failure converts a stage error into the failure envelope. Captured panics
// carry their own stack; plain errors get a stage-tagged trace.
func (p *Pipeline) failure(stage string, err error) *extract.Result {
	p.Logger.Error("pipeline."+stage+".failed", "error", err)
	trace := fmt.Sprintf("%s: %+v", stage, err)
	var sp *stagePanic
	if errors.As(err, &sp) {
		trace = string(sp.stack)
	}
	return &extract.Result{
		Success: false,
		Error:   err.Error(),
		Trace:   trace,
	}
}

// Parse decodes the document and runs all extraction layers, fusion and
// projection. It never returns an error: any failure, including a panic in
// a stage, is converted at this boundary into a success=false result with
// the error message and a diagnostic trace. No partial results are returned
// on failure.
func (p *Pipeline) Parse(ctx context.Context, data []byte) (res *extract.Result) {
	defer func() {
		if r := recover(); r != nil {
			p.Logger.Error("pipeline.panic", "panic", r)
			res = &extract.Result{
				Success: false,
				Error:   fmt.Sprint(r),
				Trace:   string(debug.Stack()),
			}
		}
	}()

	// The two decode calls are the only external I/O; run them together.
	var (
		pages  []decoder.Page
		tables []decoder.PageTables
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(guard(func() error {
		var err error
		pages, err = p.Dec.DecodeWords(gctx, data)
		return err
	}))
	g.Go(guard(func() error {
		var err error
		tables, err = p.Dec.DecodeTables(gctx, data)
		return err
	}))
	if err := g.Wait(); err != nil {
		return p.failure("decode", err)
	}

	lines := extract.LineAssembler{Proximity: p.Cfg.LineProximity}.Assemble(pages)

	// The three candidate layers share the line set and nothing else, so
	// they run concurrently. None of them can fail; irregular input
	// degrades to omission inside each layer.
	var (
		patternCands []extract.Candidate
		tableCands   []extract.Candidate
		amountCands  []extract.Candidate
	)
	sg, _ := errgroup.WithContext(ctx)
	sg.Go(guard(func() error {
		patternCands = extract.ClassifyLines(lines)
		return nil
	}))
	sg.Go(guard(func() error {
		tableCands = extract.NormalizeTables(tables)
		return nil
	}))
	sg.Go(guard(func() error {
		amountCands = extract.IsolateAmounts(lines)
		return nil
	}))
	if err := sg.Wait(); err != nil {
		return p.failure("extract", err)
	}

	// Fusion and projection both read only the layer outputs.
	var (
		fields []extract.Candidate
		ast    *extract.DocumentAST
	)
	fg, _ := errgroup.WithContext(ctx)
	fg.Go(guard(func() error {
		fields = extract.Fuse(patternCands, tableCands, amountCands, lines, extract.DefaultLayoutFilter())
		return nil
	}))
	fg.Go(guard(func() error {
		ast = extract.ProjectDocument(lines, patternCands, tableCands)
		return nil
	}))
	if err := fg.Wait(); err != nil {
		return p.failure("fuse", err)
	}

	layoutIncluded := 0
	for _, f := range fields {
		if f.Source == extract.SourceLayout {
			layoutIncluded++
		}
	}

	stats := &extract.Stats{
		TotalFields:    len(fields),
		PatternFields:  len(patternCands),
		TableFields:    len(tableCands),
		AmountFields:   len(amountCands),
		LayoutIncluded: layoutIncluded,
	}

	p.Logger.Info("pipeline.parse.ok",
		"pages", len(pages),
		"lines", len(lines),
		"total_fields", stats.TotalFields,
		"pattern_fields", stats.PatternFields,
		"table_fields", stats.TableFields,
		"amount_fields", stats.AmountFields,
		"layout_included", stats.LayoutIncluded,
	)

	return &extract.Result{
		Success:     true,
		Fields:      fields,
		DocumentAST: ast,
		Stats:       stats,
	}
}
