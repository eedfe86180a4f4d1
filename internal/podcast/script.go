package podcast

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

const (
	DefaultScriptMinutes = 3
	scriptTemperature    = 0.2
	scriptMaxTokens      = 2000
)

const scriptSystemPrompt = `You write Korean podcast scripts for two hosts.

- 지식: the expert host who explains the topic step by step
- 호기심: the curious host who asks the questions a listener would ask

Output rules:
1. Every line starts with "지식: " or "호기심: " exactly, colon followed by one space.
2. Speakers alternate on every line.
3. One line per turn, no line breaks inside a turn, no blank lines.
4. Spoken dialogue only: no stage directions, brackets, or narration.
5. Everything is written in Korean.

Example:
지식: 안녕하세요, 오늘은 재생 에너지에 대해 이야기해 보겠습니다.
호기심: 요즘 뉴스에서 자주 들리던데, 정확히 무엇을 말하는 건가요?`

// OpenAIScriptWriter drafts the dialogue with a chat completion model.
type OpenAIScriptWriter struct {
	Client  *openai.Client
	Model   string
	Minutes int
}

func NewOpenAIScriptWriter(client *openai.Client, model string) *OpenAIScriptWriter {
	return &OpenAIScriptWriter{Client: client, Model: model, Minutes: DefaultScriptMinutes}
}

func (w *OpenAIScriptWriter) WriteScript(ctx context.Context, query, searchText string) (string, error) {
	resp, err := w.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: w.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: scriptSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: scriptUserPrompt(query, searchText, w.Minutes)},
		},
		Temperature: scriptTemperature,
		MaxTokens:   scriptMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("script completion error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("script completion returned no choices")
	}

	script := strings.TrimSpace(resp.Choices[0].Message.Content)
	if script == "" {
		return "", errors.New("script completion returned empty content")
	}
	return script, nil
}

func scriptUserPrompt(query, searchText string, minutes int) string {
	if minutes <= 1 {
		minutes = DefaultScriptMinutes
	}
	body := minutes - 1

	var sb strings.Builder
	fmt.Fprintf(&sb, "아래 검색 결과를 참고해 약 %d분 분량의 팟캐스트 대본을 써 주세요.\n\n", minutes)
	fmt.Fprintf(&sb, "주제: '%s'\n\n", query)
	sb.WriteString("구성:\n")
	sb.WriteString("1. 오프닝 (약 30초, 대사 3-4개): 인사, 주제 소개\n")
	fmt.Fprintf(&sb, "2. 본론 (약 %d분, 대사 %d개 내외): 핵심 내용 설명, 청취자 입장의 질문, 쉬운 예시\n", body, body*8)
	sb.WriteString("3. 클로징 (약 30초, 대사 3-4개): 요약, 마무리 인사\n\n")
	sb.WriteString("모든 대사는 \"지식: \" 또는 \"호기심: \"으로 시작하고 두 화자가 번갈아 말합니다.\n\n")
	sb.WriteString("검색 결과:\n")
	sb.WriteString(searchText)
	return sb.String()
}
