package tts

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestGemini_ProjectMissing(t *testing.T) {
	g := &Gemini{}
	t.Setenv("GOOGLE_CLOUD_PROJECT", "")
	_, err := g.Synthesize(context.Background(), Request{Text: "hi", Voice: "Kore"})
	if err == nil || !strings.Contains(err.Error(), "missing project id") {
		t.Fatalf("expected missing project id, got %v", err)
	}
}

func TestGemini_HTTPClientError(t *testing.T) {
	g := &Gemini{ProjectID: "p", Location: "global"}

	old := defaultHTTPClientHook
	defaultHTTPClientHook = func(context.Context) (*http.Client, error) {
		return nil, errors.New("adc fail")
	}
	t.Cleanup(func() { defaultHTTPClientHook = old })

	_, err := g.Synthesize(context.Background(), Request{Text: "hi"})
	if err == nil || !strings.Contains(err.Error(), "adc auth error") {
		t.Fatalf("expected adc auth error, got %v", err)
	}
}

func TestGemini_DoError(t *testing.T) {
	g := &Gemini{ProjectID: "p", Location: "global"}

	oldC, oldDo := defaultHTTPClientHook, httpDoHook
	defaultHTTPClientHook = func(context.Context) (*http.Client, error) { return &http.Client{}, nil }
	httpDoHook = func(*http.Client, *http.Request) (*http.Response, error) {
		return nil, errors.New("net down")
	}
	t.Cleanup(func() { defaultHTTPClientHook = oldC; httpDoHook = oldDo })

	_, err := g.Synthesize(context.Background(), Request{Text: "hi"})
	if err == nil || !strings.Contains(err.Error(), "vertex tts request error") {
		t.Fatalf("expected request error, got %v", err)
	}
}

func TestGemini_StatusError(t *testing.T) {
	g := &Gemini{ProjectID: "p", Location: "global"}

	oldC, oldDo := defaultHTTPClientHook, httpDoHook
	defaultHTTPClientHook = func(context.Context) (*http.Client, error) { return &http.Client{}, nil }
	httpDoHook = func(*http.Client, *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: 500, Body: io.NopCloser(strings.NewReader(`{"error":"boom"}`))}, nil
	}
	t.Cleanup(func() { defaultHTTPClientHook = oldC; httpDoHook = oldDo })

	_, err := g.Synthesize(context.Background(), Request{Text: "hi"})
	if err == nil || !strings.Contains(err.Error(), "vertex tts failed") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestGemini_Success_NonGlobalHost_ReturnsPCM(t *testing.T) {
	g := &Gemini{ProjectID: "proj", Location: "us-central1"}

	pcm := []byte{0x01, 0x02, 0x03, 0x04}
	b64 := base64.StdEncoding.EncodeToString(pcm)

	var capturedURL, capturedBody string

	oldC, oldDo := defaultHTTPClientHook, httpDoHook
	defaultHTTPClientHook = func(context.Context) (*http.Client, error) { return &http.Client{}, nil }
	httpDoHook = func(_ *http.Client, req *http.Request) (*http.Response, error) {
		capturedURL = req.URL.String()
		b, _ := io.ReadAll(req.Body)
		capturedBody = string(b)
		body := `{"candidates":[{"content":{"parts":[{"inlineData":{"mimeType":"audio/L16;codec=pcm;rate=24000","data":"` + b64 + `"}}]}}]}`
		return &http.Response{StatusCode: 200, Body: io.NopCloser(strings.NewReader(body))}, nil
	}
	t.Cleanup(func() { defaultHTTPClientHook = oldC; httpDoHook = oldDo })

	audio, err := g.Synthesize(context.Background(), Request{Text: "hello", Voice: "Kore", Speed: 1.05})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(capturedURL, "us-central1-aiplatform.googleapis.com") {
		t.Fatalf("expected regional host, got %s", capturedURL)
	}
	if !strings.Contains(capturedBody, `"voiceName":"Kore"`) || !strings.Contains(capturedBody, `"AUDIO"`) {
		t.Fatalf("unexpected request body: %s", capturedBody)
	}
	if string(audio) != string(pcm) {
		t.Fatalf("expected raw pcm, got %v", audio)
	}
}

func TestGemini_UnexpectedRate(t *testing.T) {
	g := &Gemini{ProjectID: "proj"}

	oldC, oldDo := defaultHTTPClientHook, httpDoHook
	defaultHTTPClientHook = func(context.Context) (*http.Client, error) { return &http.Client{}, nil }
	httpDoHook = func(*http.Client, *http.Request) (*http.Response, error) {
		body := `{"candidates":[{"content":{"parts":[{"inlineData":{"mimeType":"audio/L16;rate=48000","data":"AAAA"}}]}}]}`
		return &http.Response{StatusCode: 200, Body: io.NopCloser(strings.NewReader(body))}, nil
	}
	t.Cleanup(func() { defaultHTTPClientHook = oldC; httpDoHook = oldDo })

	if _, err := g.Synthesize(context.Background(), Request{Text: "x"}); err == nil {
		t.Fatal("expected sample-rate mismatch error")
	}
}
