package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Vovarama1992/voice2text_bot/internal/pipeline"
)

const (
	startText = "Hi! Send me a voice message or an audio file and I will " +
		"reply with its text version."
	helpText = "This bot turns audio into text. Send a voice message or an " +
		"audio file (MP3, WAV, M4A, OGG and most other formats work) and " +
		"wait a moment for the transcript."
)

func (app *BotApp) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		app.send(msg.Chat.ID, startText)
	case "help":
		app.send(msg.Chat.ID, helpText)
	}
}

func (app *BotApp) handleAudio(ctx context.Context, msg *tgbotapi.Message, ref pipeline.InboundAudioRef) {
	chatID := msg.Chat.ID

	app.logger.Infof("[audio] chatID=%d kind=%s fileID=%s", chatID, ref.Kind, ref.FileID)

	res := app.runner.Run(ctx, ref, app.language)
	app.send(chatID, replyFor(res))
}

// audioRef extracts the retrieval handle from a message. Telegram puts
// recorded voice notes and attached audio files in different fields.
func audioRef(msg *tgbotapi.Message) (pipeline.InboundAudioRef, bool) {
	switch {
	case msg.Voice != nil:
		return pipeline.InboundAudioRef{
			FileID: msg.Voice.FileID,
			Kind:   pipeline.KindVoice,
		}, true
	case msg.Audio != nil:
		return pipeline.InboundAudioRef{
			FileID:   msg.Audio.FileID,
			FileName: msg.Audio.FileName,
			Kind:     pipeline.KindFile,
		}, true
	default:
		return pipeline.InboundAudioRef{}, false
	}
}
