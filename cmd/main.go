package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Vovarama1992/voice2text_bot/internal/config"
	"github.com/Vovarama1992/voice2text_bot/internal/fetch"
	"github.com/Vovarama1992/voice2text_bot/internal/pipeline"
	"github.com/Vovarama1992/voice2text_bot/internal/stt"
	"github.com/Vovarama1992/voice2text_bot/internal/telegram"
	"github.com/Vovarama1992/voice2text_bot/internal/transcode"
)

func main() {

	// =========================================================================
	// CONFIG / LOGGER
	// =========================================================================

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.Verify(); err != nil {
		log.Fatalf("environment check failed: %v", err)
	}

	baseLogger, _ := zap.NewProduction()
	if cfg.Debug {
		baseLogger, _ = zap.NewDevelopment()
	}
	defer baseLogger.Sync()
	logger := baseLogger.Sugar()

	// =========================================================================
	// CLIENTS / PIPELINE
	// =========================================================================

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		log.Fatalf("telegram init failed: %v", err)
	}
	bot.Debug = cfg.Debug

	fetcher := fetch.NewTelegramFetcher(fetch.NewBotFileResolver(bot), logger)
	transcoder := transcode.NewFFmpegTranscoder(cfg.FFmpegBin, logger)
	transcriber := stt.NewWhisperClient(cfg.OpenAIKey, cfg.OpenAIBaseURL, logger)

	runner := pipeline.NewRunner(fetcher, transcoder, transcriber, logger)

	// =========================================================================
	// TELEGRAM BOT
	// =========================================================================

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := telegram.NewBotApp(bot, runner, cfg.Language, logger)
	go app.Run(ctx)

	// =========================================================================
	// HTTP SIDE SURFACE
	// =========================================================================

	r := chi.NewRouter()

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("pong"))
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if err := cfg.Verify(); err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(200)
		w.Write([]byte("ok"))
	})

	addr := ":" + cfg.Port
	logger.Infof("listening at %s", addr)

	srv := &http.Server{Addr: addr, Handler: r}
	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background())
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
