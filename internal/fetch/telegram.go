package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Vovarama1992/voice2text_bot/internal/pipeline"
)

// FileResolver turns a platform file handle into a direct download URL.
type FileResolver interface {
	ResolveURL(ctx context.Context, fileID string) (string, error)
}

// BotFileResolver resolves file handles through the Telegram Bot API.
type BotFileResolver struct {
	bot *tgbotapi.BotAPI
}

func NewBotFileResolver(bot *tgbotapi.BotAPI) *BotFileResolver {
	return &BotFileResolver{bot: bot}
}

func (r *BotFileResolver) ResolveURL(_ context.Context, fileID string) (string, error) {
	file, err := r.bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		var tgErr *tgbotapi.Error
		if errors.As(err, &tgErr) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, tgErr.Message)
		}
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	return file.Link(r.bot.Token), nil
}

// TelegramFetcher streams one inbound audio payload into the run
// workspace. One attempt per call, no buffering of the whole body.
type TelegramFetcher struct {
	resolver FileResolver
	client   *http.Client
	logger   *zap.SugaredLogger
}

func NewTelegramFetcher(resolver FileResolver, logger *zap.SugaredLogger) *TelegramFetcher {
	return &TelegramFetcher{
		resolver: resolver,
		client:   http.DefaultClient,
		logger:   logger,
	}
}

func (f *TelegramFetcher) Fetch(
	ctx context.Context,
	ref pipeline.InboundAudioRef,
	ws *pipeline.Workspace,
) (string, error) {

	url, err := f.resolver.ResolveURL(ctx, ref.FileID)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return "", fmt.Errorf("%w: status %d", ErrNotFound, resp.StatusCode)
	default:
		return "", fmt.Errorf("%w: status %d", ErrNetwork, resp.StatusCode)
	}

	path := ws.Path(fileName(ref))

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrIO, err)
	}

	n, err := io.Copy(out, resp.Body)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrIO, err)
	}

	f.logger.Infof("[fetch] run=%s saved %d bytes to %s", ws.RunID, n, path)
	return path, nil
}

// fileName picks the workspace name for the fetched payload: the
// declared name when the client sent one, otherwise a generic one per
// kind (Telegram voice messages are OGG/Opus and carry no name).
func fileName(ref pipeline.InboundAudioRef) string {
	if ref.FileName != "" {
		// keep the file inside the workspace even if the declared name
		// carries path separators
		return filepath.Base(ref.FileName)
	}
	if ref.Kind == pipeline.KindVoice {
		return "voice.ogg"
	}
	return "audio.bin"
}
