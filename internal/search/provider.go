package search

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

type Provider interface {
	Search(ctx context.Context, query, model string) (*Result, error)
}

// swapped in tests
var genaiGenerateContentHook = func(c *genai.Client, ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return c.Models.GenerateContent(ctx, model, contents, cfg)
}

// GeminiProvider runs generation grounded with Google Search.
type GeminiProvider struct {
	Client *genai.Client
}

func (p *GeminiProvider) Search(ctx context.Context, query, model string) (*Result, error) {
	cfg := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	}

	resp, err := genaiGenerateContentHook(p.Client, ctx, model, genai.Text(query), cfg)
	if err != nil {
		return nil, fmt.Errorf("grounded search error: %w", err)
	}

	return &Result{
		Text:    ResponseText(resp),
		Sources: ExtractSources(resp),
		Model:   model,
	}, nil
}

// ResponseText joins the text parts of the first candidate that has any.
func ResponseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		var sb strings.Builder
		for _, part := range cand.Content.Parts {
			if part != nil && !part.Thought {
				sb.WriteString(part.Text)
			}
		}
		if sb.Len() > 0 {
			return sb.String()
		}
	}
	return ""
}

// ExtractSources lists the web grounding chunks of the first candidate in
// provider order. Duplicates are kept.
func ExtractSources(resp *genai.GenerateContentResponse) []Source {
	sources := []Source{}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return sources
	}
	meta := resp.Candidates[0].GroundingMetadata
	if meta == nil {
		return sources
	}
	for _, chunk := range meta.GroundingChunks {
		if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" {
			continue
		}
		title := chunk.Web.Title
		if title == "" {
			title = untitledSource
		}
		sources = append(sources, Source{URL: chunk.Web.URI, Title: title})
	}
	return sources
}
