package report

import (
	"context"

	"gemcast-api/internal/artifact"
	"gemcast-api/internal/search"
)

type SearchPort interface {
	Consume(ctx context.Context, key search.Key) (*search.Result, error)
}

type Writer interface {
	WriteReport(ctx context.Context, query, searchText string) (string, error)
}

type Renderer interface {
	Format() string
	Render(doc Document, path string) error
}

type LedgerPort interface {
	Record(ctx context.Context, a artifact.Artifact) error
}

type ReportServicePort interface {
	Generate(ctx context.Context, query, model, format string) (*Report, error)
}
