package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// DataDir holds the notes/, questions/ and stats/ subdirectories.
	DataDir string
	// WatchData enables logging of out-of-band edits to the data files.
	WatchData bool

	// Question generation and answer scoring
	LLMURL     string // OpenAI-compatible endpoint, e.g. "https://openrouter.ai/api"
	LLMModel   string // model name, e.g. "deepseek/deepseek-chat"
	LLMAPIKey  string // optional bearer token for hosted endpoints
	LLMTimeout time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:   mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout: mustGetDuration("SHUTDOWN_TIMEOUT"),
		DataDir:         getenvDefault("DATA_DIR", "./data"),
		WatchData:       getenvDefault("WATCH_DATA", "false") == "true",
		LLMURL:          getenvDefault("LLM_URL", "http://localhost:1234"),
		LLMModel:        getenvDefault("LLM_MODEL", "deepseek/deepseek-chat"),
		LLMAPIKey:       os.Getenv("LLM_API_KEY"),
		LLMTimeout:      getenvDurationDefault("LLM_TIMEOUT", 120*time.Second),
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getenvDurationDefault(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}
