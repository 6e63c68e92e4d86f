package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fieldline/docparse/internal/common"
)

// ParseRun is one archived pipeline invocation.
type ParseRun struct {
	ID             uuid.UUID
	Filename       string
	Success        bool
	TotalFields    int
	PatternFields  int
	TableFields    int
	AmountFields   int
	LayoutIncluded int
	ResultJSON     []byte
	Error          string
	CreatedAt      time.Time
}

type ParseRunRepository interface {
	Save(ctx context.Context, run *ParseRun) error
	GetByID(ctx context.Context, id uuid.UUID) (*ParseRun, error)
	List(ctx context.Context, limit int) ([]*ParseRun, error)
}

type parseRunRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewParseRunRepository(db *sql.DB, logger *slog.Logger) (ParseRunRepository, error) {
	if logger == nil {
		logger = slog.Default()
	}
	r := &parseRunRepository{db: db, logger: logger}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

// ensureSchema uses the portable SQL subset both drivers accept; created_at
// is stored as RFC 3339 text and success as 0/1 for the same reason.
func (r *parseRunRepository) ensureSchema(ctx context.Context) error {
	const ddl = `CREATE TABLE IF NOT EXISTS parse_run (
		id TEXT PRIMARY KEY,
		filename TEXT NOT NULL,
		success INTEGER NOT NULL,
		total_fields INTEGER NOT NULL,
		pattern_fields INTEGER NOT NULL,
		table_fields INTEGER NOT NULL,
		amount_fields INTEGER NOT NULL,
		layout_included INTEGER NOT NULL,
		result_json TEXT NOT NULL,
		error TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`
	if _, err := r.db.ExecContext(ctx, ddl); err != nil {
		r.logger.Error("failed to ensure parse_run schema", "error", err)
		return common.WrapError(err, "ensure schema")
	}
	return nil
}

func (r *parseRunRepository) Save(ctx context.Context, run *ParseRun) error {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	success := 0
	if run.Success {
		success = 1
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO parse_run
		 (id, filename, success, total_fields, pattern_fields, table_fields,
		  amount_fields, layout_included, result_json, error, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		run.ID.String(), run.Filename, success,
		run.TotalFields, run.PatternFields, run.TableFields,
		run.AmountFields, run.LayoutIncluded,
		string(run.ResultJSON), run.Error,
		run.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		r.logger.Error("failed to save parse run", "run_id", run.ID, "error", err)
		return common.WrapError(err, "save parse run")
	}
	r.logger.Debug("parse run saved", "run_id", run.ID, "filename", run.Filename)
	return nil
}

func (r *parseRunRepository) GetByID(ctx context.Context, id uuid.UUID) (*ParseRun, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, filename, success, total_fields, pattern_fields, table_fields,
		        amount_fields, layout_included, result_json, error, created_at
		 FROM parse_run WHERE id = $1`, id.String())
	run, err := scanParseRun(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to load parse run", "run_id", id, "error", err)
		return nil, common.WrapError(err, "load parse run")
	}
	return run, nil
}

func (r *parseRunRepository) List(ctx context.Context, limit int) ([]*ParseRun, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, filename, success, total_fields, pattern_fields, table_fields,
		        amount_fields, layout_included, result_json, error, created_at
		 FROM parse_run ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		r.logger.Error("failed to list parse runs", "error", err)
		return nil, common.WrapError(err, "list parse runs")
	}
	defer rows.Close()

	var out []*ParseRun
	for rows.Next() {
		run, err := scanParseRun(rows.Scan)
		if err != nil {
			return nil, common.WrapError(err, "scan parse run")
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

func scanParseRun(scan func(...any) error) (*ParseRun, error) {
	var (
		run       ParseRun
		id        string
		success   int
		result    string
		createdAt string
	)
	if err := scan(&id, &run.Filename, &success,
		&run.TotalFields, &run.PatternFields, &run.TableFields,
		&run.AmountFields, &run.LayoutIncluded,
		&result, &run.Error, &createdAt); err != nil {
		return nil, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parse run id %q: %w", id, err)
	}
	run.ID = parsed
	run.Success = success != 0
	run.ResultJSON = []byte(result)
	if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		run.CreatedAt = ts
	}
	return &run, nil
}
