package server

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/fieldline/docparse/gen/proto/docparse/v1"
	"github.com/fieldline/docparse/internal/common"
	"github.com/fieldline/docparse/internal/export"
	"github.com/fieldline/docparse/internal/extract"
	"github.com/fieldline/docparse/internal/pipeline"
	"github.com/fieldline/docparse/internal/repository"
)

type ParseService struct {
	v1.UnimplementedParseServiceServer
	processor *pipeline.Processor
	runs      repository.ParseRunRepository
	exporter  *export.Service
	logger    *slog.Logger
}

func NewParseService(proc *pipeline.Processor, runs repository.ParseRunRepository, exporter *export.Service, logger *slog.Logger) *ParseService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ParseService{processor: proc, runs: runs, exporter: exporter, logger: logger}
}

// ParseDocument implements v1.ParseServiceServer
func (s *ParseService) ParseDocument(ctx context.Context, req *v1.ParseDocumentRequest) (*v1.ParseDocumentResponse, error) {
	content := req.GetContent()
	if len(content) == 0 {
		s.logger.Error("parse request missing content")
		return nil, status.Error(codes.InvalidArgument, "content is required")
	}
	filename := req.GetFilename()
	if filename == "" {
		filename = "upload"
	}

	ctx = common.WithRequestID(ctx, uuid.NewString())
	s.logger.Info("starting document parse", "filename", filename, "bytes", len(content), "request_id", common.RequestIDFromContext(ctx))

	runID, res := s.processor.ProcessBytes(ctx, filename, content)

	resp := &v1.ParseDocumentResponse{
		Success:   res.Success,
		Error:     res.Error,
		Traceback: res.Trace,
		RunId:     runID.String(),
	}
	if res.Success {
		resp.Fields = make([]*v1.Field, 0, len(res.Fields))
		for _, c := range res.Fields {
			resp.Fields = append(resp.Fields, candidateToProto(c))
		}
		resp.DocumentAst = astToProto(res.DocumentAST)
		resp.Stats = statsToProto(res.Stats)
	}
	return resp, nil
}

// GetParseRun implements v1.ParseServiceServer
func (s *ParseService) GetParseRun(ctx context.Context, req *v1.GetParseRunRequest) (*v1.GetParseRunResponse, error) {
	id, err := uuid.Parse(req.GetRunId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "run_id must be a UUID")
	}
	run, err := s.runs.GetByID(ctx, id)
	if errors.Is(err, common.ErrNotFound) {
		return nil, status.Error(codes.NotFound, "parse run not found")
	}
	if err != nil {
		s.logger.Warn("get parse run failed", "run_id", id, "error", err)
		return nil, status.Error(codes.Internal, "get parse run failed")
	}
	return &v1.GetParseRunResponse{
		Run:        runToProto(run),
		ResultJson: run.ResultJSON,
	}, nil
}

// ListParseRuns implements v1.ParseServiceServer
func (s *ParseService) ListParseRuns(ctx context.Context, req *v1.ListParseRunsRequest) (*v1.ListParseRunsResponse, error) {
	runs, err := s.runs.List(ctx, int(req.GetLimit()))
	if err != nil {
		s.logger.Warn("list parse runs failed", "error", err)
		return nil, status.Error(codes.Internal, "list parse runs failed")
	}
	out := make([]*v1.ParseRunSummary, 0, len(runs))
	for _, r := range runs {
		out = append(out, runToProto(r))
	}
	return &v1.ListParseRunsResponse{Runs: out}, nil
}

// ExportParseRun implements v1.ParseServiceServer
func (s *ParseService) ExportParseRun(ctx context.Context, req *v1.ExportParseRunRequest) (*v1.ExportParseRunResponse, error) {
	id, err := uuid.Parse(req.GetRunId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "run_id must be a UUID")
	}
	data, err := s.exporter.ExportRunXLSX(ctx, id)
	if errors.Is(err, common.ErrNotFound) {
		return nil, status.Error(codes.NotFound, "parse run not found")
	}
	if err != nil {
		s.logger.Warn("export parse run failed", "run_id", id, "error", err)
		return nil, status.Error(codes.Internal, "export parse run failed")
	}
	return &v1.ExportParseRunResponse{Data: data}, nil
}

func candidateToProto(c extract.Candidate) *v1.Field {
	return &v1.Field{
		Value: c.Value,
		Page:  uint32(c.Page),
		Position: &v1.Position{
			X:      c.Position.X,
			Y:      c.Position.Y,
			Width:  c.Position.Width,
			Height: c.Position.Height,
		},
		Confidence:   c.Confidence,
		Source:       c.Source.String(),
		FieldType:    string(c.FieldType),
		OriginalLine: c.OriginalLine,
		TableData:    c.TableData,
		TableIndex:   uint32(c.TableIndex),
		RowIndex:     uint32(c.RowIndex),
	}
}

func astToProto(ast *extract.DocumentAST) *v1.DocumentAst {
	if ast == nil {
		return nil
	}
	out := &v1.DocumentAst{
		Title:            ast.Meta.Title,
		ReferenceNumbers: ast.Meta.ReferenceNumbers,
		Issuer:           ast.Parties.Issuer,
		Recipient:        ast.Parties.Recipient,
		DueDate:          ast.Dates.Due,
		SignedDate:       ast.Dates.Signed,
		RawLines:         ast.RawLines,
	}
	out.Items = make([]*v1.LineItem, 0, len(ast.Items))
	for _, item := range ast.Items {
		li := &v1.LineItem{
			Label:    item.Label,
			Quantity: int32(item.Quantity),
			Status:   item.Status,
		}
		if item.UnitPrice != nil {
			li.UnitPrice = *item.UnitPrice
			li.HasUnitPrice = true
		}
		out.Items = append(out.Items, li)
	}
	return out
}

func statsToProto(st *extract.Stats) *v1.Stats {
	if st == nil {
		return nil
	}
	return &v1.Stats{
		TotalFields:    uint32(st.TotalFields),
		PatternFields:  uint32(st.PatternFields),
		TableFields:    uint32(st.TableFields),
		AmountFields:   uint32(st.AmountFields),
		LayoutIncluded: uint32(st.LayoutIncluded),
	}
}

func runToProto(r *repository.ParseRun) *v1.ParseRunSummary {
	return &v1.ParseRunSummary{
		RunId:       r.ID.String(),
		Filename:    r.Filename,
		Success:     r.Success,
		TotalFields: uint32(r.TotalFields),
		Error:       r.Error,
		CreatedAt:   r.CreatedAt.UTC().Format(time.RFC3339),
	}
}
