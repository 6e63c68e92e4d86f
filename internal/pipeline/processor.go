package pipeline

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/fieldline/docparse/internal/extract"
	"github.com/fieldline/docparse/internal/repository"
)

// Processor runs the pipeline over a payload and archives the outcome.
// Archiving is best-effort: a failed save is logged, never surfaced, and
// never fails the parse itself.
type Processor struct {
	Logger *slog.Logger
	Pipe   *Pipeline
	Runs   repository.ParseRunRepository
}

func NewProcessor(logger *slog.Logger, pipe *Pipeline, runs repository.ParseRunRepository) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Pipe: pipe, Runs: runs}
}

// ProcessBytes parses one in-memory document and archives the run.
func (p *Processor) ProcessBytes(ctx context.Context, filename string, data []byte) (uuid.UUID, *extract.Result) {
	res := p.Pipe.Parse(ctx, data)

	run := &repository.ParseRun{
		ID:       uuid.New(),
		Filename: filename,
		Success:  res.Success,
		Error:    res.Error,
	}
	if res.Stats != nil {
		run.TotalFields = res.Stats.TotalFields
		run.PatternFields = res.Stats.PatternFields
		run.TableFields = res.Stats.TableFields
		run.AmountFields = res.Stats.AmountFields
		run.LayoutIncluded = res.Stats.LayoutIncluded
	}
	if body, err := json.Marshal(res); err == nil {
		run.ResultJSON = body
	} else {
		p.Logger.Warn("processor.result.marshal_failed", "run_id", run.ID, "error", err)
	}

	if p.Runs != nil {
		if err := p.Runs.Save(ctx, run); err != nil {
			p.Logger.Warn("processor.archive.failed", "run_id", run.ID, "filename", filename, "error", err)
		}
	}

	if res.Success {
		p.Logger.Info("processor.parse.ok", "run_id", run.ID, "filename", filename, "total_fields", run.TotalFields)
	} else {
		p.Logger.Error("processor.parse.failed", "run_id", run.ID, "filename", filename, "error", res.Error)
	}
	return run.ID, res
}

// ProcessFile reads a document from disk and parses it.
func (p *Processor) ProcessFile(ctx context.Context, path string) (uuid.UUID, *extract.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		p.Logger.Error("processor.read.failed", "path", path, "error", err)
		return uuid.Nil, nil, err
	}
	id, res := p.ProcessBytes(ctx, filepath.Base(path), data)
	return id, res, nil
}
