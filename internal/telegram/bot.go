package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Vovarama1992/voice2text_bot/internal/pipeline"
)

// BotApp wires the Telegram update stream to the transcription
// pipeline. Every audio message gets its own goroutine and its own
// pipeline run; runs share nothing but the read-only clients.
type BotApp struct {
	bot      *tgbotapi.BotAPI
	runner   *pipeline.Runner
	language string
	logger   *zap.SugaredLogger
}

func NewBotApp(
	bot *tgbotapi.BotAPI,
	runner *pipeline.Runner,
	language string,
	logger *zap.SugaredLogger,
) *BotApp {
	return &BotApp{
		bot:      bot,
		runner:   runner,
		language: language,
		logger:   logger,
	}
}

// Run blocks on the long-polling update loop until ctx is cancelled.
func (app *BotApp) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := app.bot.GetUpdatesChan(u)
	app.logger.Infof("[bot] started as @%s", app.bot.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			app.bot.StopReceivingUpdates()
			app.logger.Infof("[bot] stopping: %v", ctx.Err())
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			go app.handleUpdate(ctx, update)
		}
	}
}

func (app *BotApp) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil {
		return
	}

	if msg.IsCommand() {
		app.handleCommand(msg)
		return
	}

	if ref, ok := audioRef(msg); ok {
		app.handleAudio(ctx, msg, ref)
	}
}

func (app *BotApp) send(chatID int64, text string) {
	if _, err := app.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		app.logger.Errorf("[bot] send fail chatID=%d: %v", chatID, err)
	}
}
