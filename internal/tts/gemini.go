package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
)

const (
	geminiTTSModel = "gemini-2.5-flash-tts"
	cloudScope     = "https://www.googleapis.com/auth/cloud-platform"
)

// swapped in tests
var (
	defaultHTTPClientHook = func(ctx context.Context) (*http.Client, error) {
		return google.DefaultClient(ctx, cloudScope)
	}
	httpDoHook = func(c *http.Client, req *http.Request) (*http.Response, error) {
		return c.Do(req)
	}
)

// Gemini calls the Vertex AI Gemini TTS model with Application Default
// Credentials. The model has no speed knob, so Request.Speed is folded into
// the spoken-style instruction.
type Gemini struct {
	ProjectID string
	Location  string
	Model     string
}

type geminiTTSRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig geminiGenConfig `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiGenConfig struct {
	ResponseModalities []string           `json:"responseModalities"`
	SpeechConfig       geminiSpeechConfig `json:"speechConfig"`
}

type geminiSpeechConfig struct {
	VoiceConfig struct {
		PrebuiltVoiceConfig struct {
			VoiceName string `json:"voiceName"`
		} `json:"prebuiltVoiceConfig"`
	} `json:"voiceConfig"`
}

type geminiTTSResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (g *Gemini) SampleRate() int { return defaultSampleRate }

func (g *Gemini) Synthesize(ctx context.Context, req Request) ([]byte, error) {
	project := g.ProjectID
	if project == "" {
		project = os.Getenv("GOOGLE_CLOUD_PROJECT")
	}
	if project == "" {
		return nil, fmt.Errorf("missing project id")
	}
	location := g.Location
	if location == "" {
		location = "global"
	}
	model := g.Model
	if model == "" {
		model = geminiTTSModel
	}

	client, err := defaultHTTPClientHook(ctx)
	if err != nil {
		return nil, fmt.Errorf("adc auth error: %w", err)
	}

	var body geminiTTSRequest
	body.Contents = []geminiContent{{Role: "user", Parts: []geminiPart{{Text: styledText(req)}}}}
	body.GenerationConfig.ResponseModalities = []string{"AUDIO"}
	body.GenerationConfig.SpeechConfig.VoiceConfig.PrebuiltVoiceConfig.VoiceName = req.Voice

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tts request: %w", err)
	}

	url := fmt.Sprintf("https://%s/v1/projects/%s/locations/%s/publishers/google/models/%s:generateContent",
		vertexHost(location), project, location, model)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build tts request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpDoHook(client, httpReq)
	if err != nil {
		return nil, fmt.Errorf("vertex tts request error: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("vertex tts read error: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("vertex tts failed: status %d: %s", resp.StatusCode, string(raw))
	}

	var out geminiTTSResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("vertex tts decode error: %w", err)
	}

	for _, cand := range out.Candidates {
		for _, part := range cand.Content.Parts {
			if part.InlineData == nil || part.InlineData.Data == "" {
				continue
			}
			pcm, err := decodeBase64Loose(part.InlineData.Data)
			if err != nil {
				return nil, fmt.Errorf("vertex tts audio decode error: %w", err)
			}
			if rate := parseRateFromMime(part.InlineData.MimeType); rate != 0 && rate != defaultSampleRate {
				return nil, fmt.Errorf("vertex tts returned %d Hz audio, want %d", rate, defaultSampleRate)
			}
			return pcm, nil
		}
	}
	return nil, fmt.Errorf("vertex tts returned no audio")
}

func vertexHost(location string) string {
	if location == "global" {
		return "aiplatform.googleapis.com"
	}
	return location + "-aiplatform.googleapis.com"
}

func styledText(req Request) string {
	switch {
	case req.Speed > 1:
		return "Read this aloud at a slightly brisk, natural pace: " + req.Text
	case req.Speed > 0 && req.Speed < 1:
		return "Read this aloud at a slightly slow, natural pace: " + req.Text
	default:
		return strings.TrimSpace(req.Text)
	}
}
