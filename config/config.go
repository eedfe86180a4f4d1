package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	GeminiKey      string
	GoogleProject  string
	GoogleLocation string
	OpenAIKey      string

	StaticDir       string
	PodcastDir      string
	ReportDir       string
	BackgroundMusic string
	FontPath        string
	LedgerPath      string

	SearchModel string
	ReportModel string
	ScriptModel string

	TTSProvider string
	TTSVoiceA   string
	TTSVoiceB   string
	TTSSpeed    float64

	StreamChunkSize int
	StreamDelayMS   int
	MusicReduction  float64

	CORSOrigins []string

	SentryDSN   string
	Environment string
}

// LoadConfig reads settings from the environment. A .env file in the working
// directory is loaded first when present; variables already set win.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: .env not loaded: %v", err)
	}

	static := getenv("STATIC_DIR", "static")

	return Config{
		Port: getenv("PORT", "8080"),

		GeminiKey:      os.Getenv("GEMINI_API_KEY"),
		GoogleProject:  os.Getenv("GOOGLE_CLOUD_PROJECT"),
		GoogleLocation: getenv("GOOGLE_CLOUD_LOCATION", "global"),
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),

		StaticDir:       static,
		PodcastDir:      getenv("PODCAST_DIR", static+"/generated_podcasts"),
		ReportDir:       getenv("REPORT_DIR", static+"/generated_reports"),
		BackgroundMusic: getenv("BACKGROUND_MUSIC", static+"/background.mp3"),
		FontPath:        getenv("FONT_PATH", static+"/fonts/NanumGothic.ttf"),
		LedgerPath:      getenv("LEDGER_PATH", static+"/ledger.db"),

		SearchModel: getenv("SEARCH_MODEL", "gemini-2.0-flash"),
		ReportModel: getenv("REPORT_MODEL", "gemini-2.0-flash"),
		ScriptModel: getenv("SCRIPT_MODEL", "gpt-4o-mini"),

		TTSProvider: strings.ToLower(getenv("TTS_PROVIDER", "openai")),
		TTSVoiceA:   os.Getenv("TTS_VOICE_A"),
		TTSVoiceB:   os.Getenv("TTS_VOICE_B"),
		TTSSpeed:    getfloat("TTS_SPEED", 1.05),

		StreamChunkSize: getint("STREAM_CHUNK_SIZE", 100),
		StreamDelayMS:   getint("STREAM_DELAY_MS", 200),
		MusicReduction:  getfloat("MUSIC_REDUCTION_DB", -20),

		CORSOrigins: splitList(getenv("CORS_ORIGINS", "http://localhost:3000")),

		SentryDSN:   os.Getenv("SENTRY_DSN"),
		Environment: getenv("APP_ENV", "development"),
	}
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	v, err := strconv.Atoi(getenv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getfloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(getenv(key, ""), 64)
	if err != nil {
		return fallback
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
