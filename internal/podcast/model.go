package podcast

import "gemcast-api/internal/search"

type LineKind int

const (
	Blank LineKind = iota
	Labeled
	Unlabeled
)

// Speaker binds a script label such as "지식:" to a synthesis voice.
type Speaker struct {
	Label string
	Voice string
}

// Cast lists the recognized labels in match order.
type Cast []Speaker

const (
	LabelKnowledge = "지식:"
	LabelCuriosity = "호기심:"
)

// DefaultCast maps the knowledgeable host to voiceA and the curious host to
// voiceB.
func DefaultCast(voiceA, voiceB string) Cast {
	return Cast{
		{Label: LabelKnowledge, Voice: voiceA},
		{Label: LabelCuriosity, Voice: voiceB},
	}
}

// Line is one classified script line. Speaker is set only for Labeled lines.
type Line struct {
	Kind    LineKind
	Speaker Speaker
	Text    string
}

type DialogueSegment struct {
	Voice string
	Text  string
}

// SegmentResult is the synthesis outcome for one segment. Audio holds the
// parts voiced before Err, if any.
type SegmentResult struct {
	Index int
	Voice string
	Audio []byte
	Err   error
}

type GenerateInput struct {
	Query string `form:"query" json:"query"`
	Model string `form:"model" json:"model"`
}

type Podcast struct {
	URL           string          `json:"podcast_url"`
	Sources       []search.Source `json:"sources"`
	ScriptPath    string          `json:"-"`
	NarrationPath string          `json:"-"`
	AudioPath     string          `json:"-"`
}
