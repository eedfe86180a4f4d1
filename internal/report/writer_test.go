package report

import (
	"context"
	"errors"
	"strings"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiWriter_WriteReport_UsesModelAndPrompt(t *testing.T) {
	var gotModel, gotPrompt string

	old := genaiGenerateContentHook
	genaiGenerateContentHook = func(_ *genai.Client, _ context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		gotModel = model
		gotPrompt = contents[0].Parts[0].Text
		return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: "## 서론\n본문"}}},
		}}}, nil
	}
	t.Cleanup(func() { genaiGenerateContentHook = old })

	w := &GeminiWriter{Model: "gemini-2.0-flash"}
	text, err := w.WriteReport(context.Background(), "태양광", "검색 결과 본문")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if text != "## 서론\n본문" {
		t.Fatalf("text=%q", text)
	}
	if gotModel != "gemini-2.0-flash" {
		t.Fatalf("model=%q", gotModel)
	}
	if !strings.Contains(gotPrompt, "'태양광'") || !strings.Contains(gotPrompt, "검색 결과 본문") {
		t.Fatalf("prompt=%q", gotPrompt)
	}
}

func TestGeminiWriter_WriteReport_EmptyFallsBack(t *testing.T) {
	old := genaiGenerateContentHook
	genaiGenerateContentHook = func(*genai.Client, context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		return &genai.GenerateContentResponse{}, nil
	}
	t.Cleanup(func() { genaiGenerateContentHook = old })

	text, err := (&GeminiWriter{}).WriteReport(context.Background(), "q", "s")
	if err != nil || text != fallbackReport {
		t.Fatalf("got %q %v", text, err)
	}
}

func TestGeminiWriter_WriteReport_Error(t *testing.T) {
	old := genaiGenerateContentHook
	genaiGenerateContentHook = func(*genai.Client, context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		return nil, errors.New("quota exceeded")
	}
	t.Cleanup(func() { genaiGenerateContentHook = old })

	_, err := (&GeminiWriter{}).WriteReport(context.Background(), "q", "s")
	if err == nil || !strings.Contains(err.Error(), "report generation error") {
		t.Fatalf("got %v", err)
	}
}
