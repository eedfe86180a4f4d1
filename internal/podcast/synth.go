package podcast

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"gemcast-api/internal/tts"
)

const DefaultSubPartLimit = 1000

var (
	ErrNoSegments         = errors.New("script produced no dialogue segments")
	ErrNothingSynthesized = errors.New("no segment could be synthesized")
)

// SplitText packs whitespace-separated words into parts of at most limit
// characters. Text within the limit is returned as is. A single word longer
// than limit becomes its own part; words are never split.
func SplitText(text string, limit int) []string {
	if limit <= 0 {
		limit = DefaultSubPartLimit
	}
	if utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	var (
		parts []string
		cur   strings.Builder
		n     int
	)
	for _, word := range strings.Fields(text) {
		wn := utf8.RuneCountInString(word)
		if n > 0 && n+1+wn > limit {
			parts = append(parts, cur.String())
			cur.Reset()
			n = 0
		}
		if n > 0 {
			cur.WriteByte(' ')
			n++
		}
		cur.WriteString(word)
		n += wn
	}
	if n > 0 {
		parts = append(parts, cur.String())
	}
	return parts
}

// Narrator voices dialogue segments with one synthesizer.
type Narrator struct {
	Synth tts.Synthesizer
	Speed float64
	Limit int
}

// Synthesize voices each segment part by part. A failed part ends its
// segment: parts already voiced are kept, the rest are skipped. Other
// segments continue.
func (n *Narrator) Synthesize(ctx context.Context, segments []DialogueSegment) []SegmentResult {
	results := make([]SegmentResult, 0, len(segments))
	for i, seg := range segments {
		res := SegmentResult{Index: i, Voice: seg.Voice}

		var audio bytes.Buffer
		for _, part := range SplitText(seg.Text, n.Limit) {
			if err := ctx.Err(); err != nil {
				res.Err = err
				break
			}
			pcm, err := n.Synth.Synthesize(ctx, tts.Request{Text: part, Voice: seg.Voice, Speed: n.Speed})
			if err != nil {
				res.Err = fmt.Errorf("segment %d: %w", i+1, err)
				break
			}
			audio.Write(pcm)
		}

		if res.Err != nil {
			log.Printf("podcast: segment %d (%s) incomplete: %v", i+1, seg.Voice, res.Err)
		}
		if audio.Len() > 0 {
			res.Audio = audio.Bytes()
		}
		results = append(results, res)
	}
	return results
}

// Assemble concatenates every voiced part in segment order.
func Assemble(results []SegmentResult) ([]byte, error) {
	var out bytes.Buffer
	for _, r := range results {
		out.Write(r.Audio)
	}
	if out.Len() == 0 {
		return nil, ErrNothingSynthesized
	}
	return out.Bytes(), nil
}
