package report

import (
	"context"
	"fmt"
	"strings"

	"gemcast-api/internal/search"

	"google.golang.org/genai"
)

const fallbackReport = "보고서 생성에 실패하였습니다."

// swapped in tests
var genaiGenerateContentHook = func(c *genai.Client, ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return c.Models.GenerateContent(ctx, model, contents, cfg)
}

// GeminiWriter drafts report text from grounded search output.
type GeminiWriter struct {
	Client *genai.Client
	Model  string
}

func (w *GeminiWriter) WriteReport(ctx context.Context, query, searchText string) (string, error) {
	resp, err := genaiGenerateContentHook(w.Client, ctx, w.Model, genai.Text(reportPrompt(query, searchText)), &genai.GenerateContentConfig{})
	if err != nil {
		return "", fmt.Errorf("report generation error: %w", err)
	}

	text := strings.TrimSpace(search.ResponseText(resp))
	if text == "" {
		return fallbackReport, nil
	}
	return text, nil
}

func reportPrompt(query, searchText string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "'%s'을(를) 주제로, 아래 검색 결과를 근거 삼아 분석 보고서를 작성해 주세요.\n\n", query)
	sb.WriteString("검색 결과:\n")
	sb.WriteString(searchText)
	sb.WriteString("\n\n")
	sb.WriteString("서론, 본론(분석), 결론 및 핵심 요약 순서로 구성하고 각 절 제목은 \"## \"로 시작해 주세요. ")
	sb.WriteString("강조할 표현은 **굵게** 표시하고, 읽는 사람이 쉽게 따라올 수 있도록 구체적으로 써 주세요.")
	return sb.String()
}
