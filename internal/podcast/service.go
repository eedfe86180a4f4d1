package podcast

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gemcast-api/internal/artifact"
	"gemcast-api/internal/search"
	"gemcast-api/internal/tts"
	"gemcast-api/internal/util"
)

const (
	msgGenerateFailed = "팟캐스트 생성 중 오류가 발생했습니다."
	msgAudioFailed    = "오디오 생성 실패"
	msgMixFailed      = "팟캐스트 생성 실패 (배경음악 추가 오류)"
)

type PodcastService struct {
	Search   SearchPort
	Writer   ScriptWriter
	Narrator *Narrator
	Cast     Cast
	Mix      MixFunc
	Ledger   LedgerPort

	StaticDir    string
	OutputDir    string
	MusicPath    string
	ReductionDB  float64
	DefaultModel string

	Now func() time.Time
}

// Generate runs search, script, narration and mixing for query and returns
// the public URL of the mixed episode. Failures come back as
// *util.StageError naming the step.
func (ps *PodcastService) Generate(ctx context.Context, query, model string) (*Podcast, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, util.ErrMissingQuery
	}
	if strings.TrimSpace(model) == "" {
		model = ps.DefaultModel
	}

	res, err := ps.Search.Consume(ctx, search.NewKey(query, model))
	if err != nil {
		return nil, util.NewStageError("search", msgGenerateFailed, err)
	}

	script, err := ps.Writer.WriteScript(ctx, query, res.Text)
	if err != nil {
		return nil, util.NewStageError("script", msgGenerateFailed, err)
	}

	segments := Segment(script, ps.Cast)
	if len(segments) == 0 {
		return nil, util.NewStageError("audio", msgAudioFailed, ErrNoSegments)
	}
	log.Printf("podcast: %d segments for query=%q", len(segments), query)

	pcm, err := Assemble(ps.Narrator.Synthesize(ctx, segments))
	if err != nil {
		return nil, util.NewStageError("audio", msgAudioFailed, err)
	}

	now := time.Now
	if ps.Now != nil {
		now = ps.Now
	}
	ts := util.Timestamp(now())

	scriptPath := filepath.Join(ps.OutputDir, "podcast_"+ts+".txt")
	if err := util.WriteFile(scriptPath, func(f *os.File) error {
		_, err := fmt.Fprintf(f, "주제: %s\n\n%s", query, script)
		return err
	}); err != nil {
		return nil, util.NewStageError("save", msgGenerateFailed, err)
	}

	narrationPath := filepath.Join(ps.OutputDir, "podcast_"+ts+".wav")
	wav := tts.PCMToWAV(pcm, ps.Narrator.Synth.SampleRate(), 1, 16)
	if err := util.WriteFile(narrationPath, func(f *os.File) error {
		_, err := f.Write(wav)
		return err
	}); err != nil {
		return nil, util.NewStageError("save", msgGenerateFailed, err)
	}

	if _, err := os.Stat(ps.MusicPath); err != nil {
		return nil, util.NewStageError("mix", msgMixFailed, fmt.Errorf("background music: %w", err))
	}
	mixed, err := ps.Mix(narrationPath, ps.MusicPath, filepath.Join(ps.OutputDir, "podcast_with_bgm_"+ts+".wav"), ps.ReductionDB)
	if err != nil {
		return nil, util.NewStageError("mix", msgMixFailed, err)
	}

	url, err := util.StaticURL(ps.StaticDir, mixed)
	if err != nil {
		return nil, util.NewStageError("save", msgGenerateFailed, err)
	}

	sources := res.Sources
	if sources == nil {
		sources = []search.Source{}
	}

	if ps.Ledger != nil {
		if err := ps.Ledger.Record(ctx, artifact.Artifact{
			Kind:        artifact.KindPodcast,
			Query:       query,
			Model:       model,
			Path:        mixed,
			URL:         url,
			Format:      "wav",
			SourceCount: len(sources),
		}); err != nil {
			log.Printf("podcast: ledger record failed: %v", err)
		}
	}

	return &Podcast{
		URL:           url,
		Sources:       sources,
		ScriptPath:    scriptPath,
		NarrationPath: narrationPath,
		AudioPath:     mixed,
	}, nil
}
