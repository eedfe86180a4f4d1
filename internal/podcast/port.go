package podcast

import (
	"context"

	"gemcast-api/internal/artifact"
	"gemcast-api/internal/search"
)

type SearchPort interface {
	Consume(ctx context.Context, key search.Key) (*search.Result, error)
}

type ScriptWriter interface {
	WriteScript(ctx context.Context, query, searchText string) (string, error)
}

type LedgerPort interface {
	Record(ctx context.Context, a artifact.Artifact) error
}

// MixFunc overlays musicPath under narrationPath and returns the written path.
type MixFunc func(narrationPath, musicPath, outputPath string, reductionDB float64) (string, error)

type PodcastServicePort interface {
	Generate(ctx context.Context, query, model string) (*Podcast, error)
}
