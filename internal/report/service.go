package report

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"gemcast-api/internal/artifact"
	"gemcast-api/internal/search"
	"gemcast-api/internal/util"
)

const msgGenerateFailed = "보고서 생성 중 오류가 발생했습니다."

var ErrUnsupportedFormat = errors.New("unsupported report format")

type ReportService struct {
	Search    SearchPort
	Writer    Writer
	Renderers map[string]Renderer
	Ledger    LedgerPort

	StaticDir    string
	OutputDir    string
	DefaultModel string

	Now func() time.Time
}

func NewReportService(searchPort SearchPort, writer Writer, ledger LedgerPort, staticDir, outputDir, defaultModel string, renderers ...Renderer) *ReportService {
	rs := &ReportService{
		Search:       searchPort,
		Writer:       writer,
		Renderers:    make(map[string]Renderer, len(renderers)),
		Ledger:       ledger,
		StaticDir:    staticDir,
		OutputDir:    outputDir,
		DefaultModel: defaultModel,
	}
	for _, r := range renderers {
		rs.Renderers[r.Format()] = r
	}
	return rs
}

// Generate writes a report for query in the requested format (pdf when
// empty) and returns its public URL.
func (rs *ReportService) Generate(ctx context.Context, query, model, format string) (*Report, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, util.ErrMissingQuery
	}
	if strings.TrimSpace(model) == "" {
		model = rs.DefaultModel
	}
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatPDF
	}
	renderer, ok := rs.Renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	res, err := rs.Search.Consume(ctx, search.NewKey(query, model))
	if err != nil {
		return nil, util.NewStageError("search", msgGenerateFailed, err)
	}

	text, err := rs.Writer.WriteReport(ctx, query, res.Text)
	if err != nil {
		return nil, util.NewStageError("write", msgGenerateFailed, err)
	}

	doc := Parse(query, text)
	doc.Sources = res.Sources

	now := time.Now
	if rs.Now != nil {
		now = rs.Now
	}
	path := filepath.Join(rs.OutputDir, "report_"+util.Timestamp(now())+"."+format)
	if err := renderer.Render(doc, path); err != nil {
		return nil, util.NewStageError("render", msgGenerateFailed, err)
	}

	url, err := util.StaticURL(rs.StaticDir, path)
	if err != nil {
		return nil, util.NewStageError("render", msgGenerateFailed, err)
	}

	if rs.Ledger != nil {
		if err := rs.Ledger.Record(ctx, artifact.Artifact{
			Kind:        artifact.KindReport,
			Query:       query,
			Model:       model,
			Path:        path,
			URL:         url,
			Format:      format,
			SourceCount: len(res.Sources),
		}); err != nil {
			log.Printf("report: ledger record failed: %v", err)
		}
	}

	return &Report{URL: url, Format: format, Path: path}, nil
}
