package config

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all process-wide settings. Loaded once at startup and
// read-only afterwards; every component gets what it needs through its
// constructor.
type Config struct {
	// Telegram bot token from @BotFather.
	TelegramToken string `envconfig:"TELEGRAM_BOT_TOKEN"`

	// OpenAI API key for the Whisper transcription endpoint.
	OpenAIKey string `envconfig:"OPENAI_API_KEY"`

	// Optional override of the OpenAI API base URL (self-hosted gateways,
	// tests). Empty means the public endpoint.
	OpenAIBaseURL string `envconfig:"OPENAI_BASE_URL" default:""`

	// Name (or full path) of the ffmpeg binary used for transcoding.
	FFmpegBin string `envconfig:"FFMPEG_BIN" default:"ffmpeg"`

	// Language hint forwarded to Whisper, e.g. "uk" or "en".
	// "auto" lets the service detect the language itself.
	Language string `envconfig:"TRANSCRIBE_LANGUAGE" default:"auto"`

	// Port for the /ping and /healthz side surface.
	Port string `envconfig:"PORT" default:"8080"`

	Debug bool `envconfig:"DEBUG" default:"false"`
}

var (
	ErrMissingBotToken   = errors.New("TELEGRAM_BOT_TOKEN is not set")
	ErrMissingCredential = errors.New("OPENAI_API_KEY is not set")
	ErrMissingTranscoder = errors.New("ffmpeg binary not found in PATH")
)

// Load reads configuration from a .env file (if present) and the
// environment. Missing platform credentials are fatal here; the
// transcription-side checks live in Verify so they can be repeated.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if cfg.TelegramToken == "" {
		return nil, ErrMissingBotToken
	}

	return &cfg, nil
}

// Verify checks that everything a pipeline run depends on is in place:
// the transcription credential and the external transcoder binary.
// It only resolves the binary, never spawns it, so it is cheap enough
// to call before every run.
func (c *Config) Verify() error {
	if c.OpenAIKey == "" {
		return ErrMissingCredential
	}
	if _, err := exec.LookPath(c.FFmpegBin); err != nil {
		return fmt.Errorf("%w: %q", ErrMissingTranscoder, c.FFmpegBin)
	}
	return nil
}
