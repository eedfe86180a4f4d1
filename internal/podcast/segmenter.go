package podcast

import (
	"strings"
)

// ParseLine classifies one script line against cast. Surrounding whitespace
// is ignored and the label is stripped from labeled lines.
func ParseLine(line string, cast Cast) Line {
	s := strings.TrimSpace(line)
	if s == "" {
		return Line{Kind: Blank}
	}
	for _, sp := range cast {
		if rest, ok := strings.CutPrefix(s, sp.Label); ok {
			return Line{Kind: Labeled, Speaker: sp, Text: strings.TrimSpace(rest)}
		}
	}
	return Line{Kind: Unlabeled, Text: s}
}

// Segment turns a labeled dialogue script into ordered segments. Every labeled
// line opens a new segment, even when the speaker repeats. Unlabeled lines
// continue the open segment and are dropped before the first label. Segments
// whose text ends up empty are not emitted.
func Segment(script string, cast Cast) []DialogueSegment {
	var (
		segments []DialogueSegment
		current  *Speaker
		parts    []string
	)

	flush := func() {
		if current == nil {
			return
		}
		if text := strings.Join(parts, " "); text != "" {
			segments = append(segments, DialogueSegment{Voice: current.Voice, Text: text})
		}
	}

	for _, raw := range strings.Split(script, "\n") {
		line := ParseLine(raw, cast)
		switch line.Kind {
		case Labeled:
			flush()
			sp := line.Speaker
			current = &sp
			parts = parts[:0]
			if line.Text != "" {
				parts = append(parts, line.Text)
			}
		case Unlabeled:
			if current != nil {
				parts = append(parts, line.Text)
			}
		}
	}
	flush()

	return segments
}
