package tts

import (
	"context"
	"fmt"
	"io"

	"github.com/sashabaranov/go-openai"
)

type OpenAI struct {
	Client *openai.Client
	Model  openai.SpeechModel
}

func NewOpenAI(client *openai.Client) *OpenAI {
	return &OpenAI{Client: client, Model: openai.TTSModel1}
}

func (o *OpenAI) SampleRate() int { return defaultSampleRate }

func (o *OpenAI) Synthesize(ctx context.Context, req Request) ([]byte, error) {
	resp, err := o.Client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          o.Model,
		Input:          req.Text,
		Voice:          openai.SpeechVoice(req.Voice),
		ResponseFormat: openai.SpeechResponseFormat("pcm"),
		Speed:          req.Speed,
	})
	if err != nil {
		return nil, fmt.Errorf("openai speech error: %w", err)
	}
	defer resp.Close()

	pcm, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("openai speech read error: %w", err)
	}
	if len(pcm) == 0 {
		return nil, fmt.Errorf("openai speech returned no audio")
	}
	return pcm, nil
}
