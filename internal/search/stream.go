package search

import (
	"context"
	"encoding/json"
	"iter"
	"log"
	"strings"
	"time"
	"unicode/utf8"
)

const sourcesEvent = "sources"

// Frame is one text/event-stream message.
type Frame struct {
	Event string
	Data  string
}

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// normalizeNewlines rewrites CRLF and lone CR as LF. Event streams treat all
// three as line terminators, so a CR can never reach the client as data.
func normalizeNewlines(s string) string {
	return lineBreaks.Replace(s)
}

// Encode renders the frame. Every line of Data gets its own "data: " prefix
// so multi-line chunks stay valid; a client joining data lines with "\n"
// recovers Data with its line endings as LF.
func (f Frame) Encode() string {
	var sb strings.Builder
	if f.Event != "" {
		sb.WriteString("event: ")
		sb.WriteString(f.Event)
		sb.WriteByte('\n')
	}
	for _, line := range strings.Split(normalizeNewlines(f.Data), "\n") {
		sb.WriteString("data: ")
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	return sb.String()
}

// ChunkText splits text into pieces of at most size characters (runes).
// Empty text yields no chunks.
func ChunkText(text string, size int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}
	chunks := make([]string, 0, utf8.RuneCountInString(text)/size+1)
	for len(text) > 0 {
		end, n := 0, 0
		for end < len(text) && n < size {
			_, w := utf8.DecodeRuneInString(text[end:])
			end += w
			n++
		}
		chunks = append(chunks, text[:end])
		text = text[end:]
	}
	return chunks
}

// Pacer decides how long to pause between text frames.
type Pacer interface {
	Wait(ctx context.Context) error
}

type NoDelay struct{}

func (NoDelay) Wait(ctx context.Context) error { return ctx.Err() }

// FixedDelay sleeps for a constant duration, returning early if ctx ends.
type FixedDelay time.Duration

func (d FixedDelay) Wait(ctx context.Context) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(time.Duration(d))
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

type Streamer struct {
	Search    func(ctx context.Context, key Key) (*Result, error)
	ChunkSize int
	Pacer     Pacer
}

// Frames yields the stream for one request: text chunks, a sources event and
// an empty terminal frame. A missing query yields one empty frame without a
// provider call; a provider failure yields one error frame.
func (s *Streamer) Frames(ctx context.Context, key Key) iter.Seq[Frame] {
	return func(yield func(Frame) bool) {
		if strings.TrimSpace(key.Query) == "" {
			yield(Frame{})
			return
		}

		res, err := s.Search(ctx, key)
		if err != nil {
			log.Printf("stream_search: %v", err)
			yield(Frame{Data: "error: search streaming failed: " + err.Error()})
			return
		}

		pacer := s.Pacer
		if pacer == nil {
			pacer = NoDelay{}
		}

		for i, chunk := range ChunkText(normalizeNewlines(res.Text), s.ChunkSize) {
			if i > 0 {
				if err := pacer.Wait(ctx); err != nil {
					return
				}
			}
			if !yield(Frame{Data: chunk}) {
				return
			}
		}

		sources := res.Sources
		if sources == nil {
			sources = []Source{}
		}
		payload, err := json.Marshal(sourcesPayload{Sources: sources})
		if err != nil {
			payload = []byte(`{"sources":[]}`)
		}
		if !yield(Frame{Event: sourcesEvent, Data: string(payload)}) {
			return
		}
		yield(Frame{})
	}
}

type sourcesPayload struct {
	Sources []Source `json:"sources"`
}
