package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/fieldline/docparse/internal/extract"
	"github.com/fieldline/docparse/internal/repository"
)

// Service is a tiny façade over the parse-run archive that produces XLSX
// bytes for exports.
type Service struct {
	runs   repository.ParseRunRepository
	logger *slog.Logger
}

func NewService(runs repository.ParseRunRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{runs: runs, logger: logger}
}

// ExportRunXLSX returns an XLSX workbook for one archived parse run: a
// "Fields" sheet with the fused candidates and a "Line Items" sheet with the
// projected AST items.
func (s *Service) ExportRunXLSX(ctx context.Context, runID uuid.UUID) ([]byte, error) {
	start := time.Now()

	run, err := s.runs.GetByID(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("load parse run: %w", err)
	}
	var result extract.Result
	if err := json.Unmarshal(run.ResultJSON, &result); err != nil {
		return nil, fmt.Errorf("decode archived result: %w", err)
	}

	f := excelize.NewFile()
	const fieldsSheet = "Fields"
	const itemsSheet = "Line Items"

	// The default sheet becomes the fields sheet.
	if err := f.SetSheetName("Sheet1", fieldsSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(itemsSheet); err != nil {
		return nil, err
	}

	fieldHeaders := []string{"Source", "Field Type", "Value", "Page", "Confidence", "Original Line"}
	for i, h := range fieldHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(fieldsSheet, cell, h)
	}
	for row, c := range result.Fields {
		values := []any{c.Source.String(), string(c.FieldType), c.Value, c.Page, c.Confidence, c.OriginalLine}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(fieldsSheet, cell, v)
		}
	}

	itemHeaders := []string{"Label", "Quantity", "Unit Price", "Status"}
	for i, h := range itemHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(itemsSheet, cell, h)
	}
	if result.DocumentAST != nil {
		for row, item := range result.DocumentAST.Items {
			price := any("")
			if item.UnitPrice != nil {
				price = *item.UnitPrice
			}
			values := []any{item.Label, item.Quantity, price, item.Status}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
				_ = f.SetCellValue(itemsSheet, cell, v)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"run_id", runID,
		"fields", len(result.Fields),
		"bytes", buf.Len(),
		"duration", time.Since(start),
	)
	return buf.Bytes(), nil
}
