package tts

import (
	"context"
	"fmt"
	"strings"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
)

// swapped in tests
var cloudSynthesizeHook = func(c *texttospeech.Client, ctx context.Context, req *texttospeechpb.SynthesizeSpeechRequest) (*texttospeechpb.SynthesizeSpeechResponse, error) {
	return c.SynthesizeSpeech(ctx, req)
}

// Cloud uses Google Cloud Text-to-Speech with LINEAR16 output. The WAV header
// the API prepends is stripped so chunks stay raw PCM.
type Cloud struct {
	Client *texttospeech.Client
}

func (c *Cloud) SampleRate() int { return defaultSampleRate }

func (c *Cloud) Synthesize(ctx context.Context, req Request) ([]byte, error) {
	resp, err := cloudSynthesizeHook(c.Client, ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: req.Text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: languageFromVoice(req.Voice),
			Name:         req.Voice,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding:   texttospeechpb.AudioEncoding_LINEAR16,
			SpeakingRate:    req.Speed,
			SampleRateHertz: defaultSampleRate,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("cloud tts error: %w", err)
	}

	pcm, rate, err := StripWAV(resp.GetAudioContent())
	if err != nil {
		return nil, fmt.Errorf("cloud tts audio error: %w", err)
	}
	if rate != 0 && rate != defaultSampleRate {
		return nil, fmt.Errorf("cloud tts returned %d Hz audio, want %d", rate, defaultSampleRate)
	}
	if len(pcm) == 0 {
		return nil, fmt.Errorf("cloud tts returned no audio")
	}
	return pcm, nil
}

// languageFromVoice takes "ko-KR" out of "ko-KR-Standard-A".
func languageFromVoice(voice string) string {
	parts := strings.SplitN(voice, "-", 3)
	if len(parts) < 2 {
		return "ko-KR"
	}
	return parts[0] + "-" + parts[1]
}
