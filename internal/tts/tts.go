// Package tts adapts speech providers to one contract: text in, raw 16-bit
// little-endian mono PCM out. Raw PCM concatenates cleanly, which the
// podcast narration relies on.
package tts

import (
	"context"
	"fmt"
)

type Request struct {
	Text  string
	Voice string
	Speed float64
}

type Synthesizer interface {
	Synthesize(ctx context.Context, req Request) ([]byte, error)
	SampleRate() int
}

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderCloud  = "cloud"

	defaultSampleRate = 24000
	bitsPerSample     = 16
	channels          = 1
)

// DefaultVoices returns the two host voices for a provider.
func DefaultVoices(provider string) (string, string, error) {
	switch provider {
	case ProviderOpenAI, "":
		return "onyx", "nova", nil
	case ProviderGemini:
		return "Charon", "Kore", nil
	case ProviderCloud:
		return "ko-KR-Standard-C", "ko-KR-Standard-A", nil
	default:
		return "", "", fmt.Errorf("unknown tts provider %q", provider)
	}
}
