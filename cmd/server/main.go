package main

import (
	"context"
	"log"
	"os"
	"time"

	"gemcast-api/config"
	"gemcast-api/internal/artifact"
	"gemcast-api/internal/audio"
	"gemcast-api/internal/middlewares"
	"gemcast-api/internal/podcast"
	"gemcast-api/internal/report"
	"gemcast-api/internal/search"
	"gemcast-api/internal/tts"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"github.com/getsentry/sentry-go"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"
	"google.golang.org/genai"
	"gorm.io/gorm"
)

func main() {
	cfg := config.LoadConfig()
	ctx := context.Background()

	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.Environment,
		})
		if err != nil {
			log.Printf("sentry init failed: %v", err)
		} else {
			log.Printf("sentry initialized")
			defer sentry.Flush(2 * time.Second)
		}
	}

	for _, dir := range []string{cfg.PodcastDir, cfg.ReportDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal("Failed to create output directory:", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(cfg.LedgerPath), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to open artifact ledger:", err)
	}
	if err := db.AutoMigrate(&artifact.Artifact{}); err != nil {
		log.Fatal("Failed to migrate artifact ledger:", err)
	}

	genaiClient, err := newGenAIClient(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to create genai client:", err)
	}
	openaiClient := openai.NewClient(cfg.OpenAIKey)

	synth, err := newSynthesizer(ctx, cfg, openaiClient)
	if err != nil {
		log.Fatal("Failed to create tts backend:", err)
	}
	voiceA, voiceB, err := tts.DefaultVoices(cfg.TTSProvider)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.TTSVoiceA != "" {
		voiceA = cfg.TTSVoiceA
	}
	if cfg.TTSVoiceB != "" {
		voiceB = cfg.TTSVoiceB
	}

	r := gin.Default()
	r.Use(middlewares.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middlewares.RequestIDHeader},
		ExposeHeaders:    []string{middlewares.RequestIDHeader},
		AllowCredentials: true,
	}))
	r.Static("/static", cfg.StaticDir)

	artifactService := &artifact.ArtifactService{DB: db}
	artifact.RegisterRoutes(r, artifactService)

	searchService := search.NewSearchService(search.NewCache(), &search.GeminiProvider{Client: genaiClient})
	streamer := &search.Streamer{
		Search:    searchService.Search,
		ChunkSize: cfg.StreamChunkSize,
		Pacer:     search.FixedDelay(time.Duration(cfg.StreamDelayMS) * time.Millisecond),
	}
	search.RegisterRoutes(r, streamer, cfg.SearchModel)

	podcastService := &podcast.PodcastService{
		Search:       searchService,
		Writer:       podcast.NewOpenAIScriptWriter(openaiClient, cfg.ScriptModel),
		Narrator:     &podcast.Narrator{Synth: synth, Speed: cfg.TTSSpeed, Limit: podcast.DefaultSubPartLimit},
		Cast:         podcast.DefaultCast(voiceA, voiceB),
		Mix:          audio.MixBackground,
		Ledger:       artifactService,
		StaticDir:    cfg.StaticDir,
		OutputDir:    cfg.PodcastDir,
		MusicPath:    cfg.BackgroundMusic,
		ReductionDB:  cfg.MusicReduction,
		DefaultModel: cfg.SearchModel,
	}
	podcast.RegisterRoutes(r, podcastService)

	reportService := report.NewReportService(
		searchService,
		&report.GeminiWriter{Client: genaiClient, Model: cfg.ReportModel},
		artifactService,
		cfg.StaticDir,
		cfg.ReportDir,
		cfg.SearchModel,
		report.PDFRenderer{FontPath: cfg.FontPath},
		report.XLSXRenderer{},
	)
	report.RegisterRoutes(r, reportService)

	log.Printf("Starting server on 0.0.0.0:%s (tts=%s) ...", cfg.Port, cfg.TTSProvider)
	log.Fatal(r.Run("0.0.0.0:" + cfg.Port))
}

// newGenAIClient uses the Gemini API when a key is configured and Vertex AI
// with Application Default Credentials otherwise.
func newGenAIClient(ctx context.Context, cfg config.Config) (*genai.Client, error) {
	if cfg.GeminiKey != "" {
		return genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.GeminiKey,
			Backend: genai.BackendGeminiAPI,
		})
	}
	return genai.NewClient(ctx, &genai.ClientConfig{
		Backend:  genai.BackendVertexAI,
		Project:  cfg.GoogleProject,
		Location: cfg.GoogleLocation,
	})
}

func newSynthesizer(ctx context.Context, cfg config.Config, openaiClient *openai.Client) (tts.Synthesizer, error) {
	switch cfg.TTSProvider {
	case tts.ProviderGemini:
		return &tts.Gemini{ProjectID: cfg.GoogleProject, Location: cfg.GoogleLocation}, nil
	case tts.ProviderCloud:
		var opts []option.ClientOption
		if cfg.GoogleProject != "" {
			opts = append(opts, option.WithQuotaProject(cfg.GoogleProject))
		}
		client, err := texttospeech.NewClient(ctx, opts...)
		if err != nil {
			return nil, err
		}
		return &tts.Cloud{Client: client}, nil
	default:
		return tts.NewOpenAI(openaiClient), nil
	}
}
