package config

import (
	"log/slog"
	"os"
	"strings"
)

const (
	DefaultInputText  = "Default text for analysis"
	DefaultOutputPath = "/outputs/result.json"
	DefaultModelDir   = "./models"
)

// Backend names accepted in SENTIMENT_BACKEND.
const (
	BackendTransformer = "transformer"
	BackendVader       = "vader"
	BackendOpenAI      = "openai"
)

// Config holds every knob the job reads. All of it comes from the
// environment exactly once, at startup.
type Config struct {
	InputText  string
	Backend    string
	ModelDir   string
	OutputPath string
	OpenAIKey  string
	LogLevel   slog.Level
}

// FromEnv builds the job configuration from the process environment.
// Every value has a default; this cannot fail.
func FromEnv() Config {
	// An explicitly-empty INPUT_TEXT is still an input; the default
	// only applies when the variable is absent.
	inputText, ok := os.LookupEnv("INPUT_TEXT")
	if !ok {
		inputText = DefaultInputText
	}

	cfg := Config{
		InputText:  inputText,
		Backend:    strings.ToLower(getOr("SENTIMENT_BACKEND", BackendTransformer)),
		ModelDir:   getOr("MODEL_DIR", DefaultModelDir),
		OutputPath: getOr("OUTPUT_PATH", DefaultOutputPath),
		OpenAIKey:  os.Getenv("OPENAI_API_KEY"),
		LogLevel:   parseLevel(os.Getenv("LOG_LEVEL")),
	}

	switch cfg.Backend {
	case BackendTransformer, BackendVader, BackendOpenAI:
	default:
		slog.Warn("[Config] Unknown sentiment backend, using transformer",
			slog.String("backend", cfg.Backend))
		cfg.Backend = BackendTransformer
	}

	return cfg
}

func getOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLevel(raw string) slog.Level {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
