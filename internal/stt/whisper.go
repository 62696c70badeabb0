package stt

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/Vovarama1992/voice2text_bot/internal/pipeline"
)

// LanguageAuto asks the service to detect the language itself; any
// other value is forwarded as a hint.
const LanguageAuto = "auto"

// WhisperClient submits canonical audio to the OpenAI transcription
// endpoint. One blocking attempt per call, no retries.
type WhisperClient struct {
	client *openai.Client
	logger *zap.SugaredLogger
}

// NewWhisperClient builds a client for the given API key. baseURL
// overrides the public endpoint when non-empty (tests, gateways).
func NewWhisperClient(apiKey, baseURL string, logger *zap.SugaredLogger) *WhisperClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &WhisperClient{
		client: openai.NewClientWithConfig(cfg),
		logger: logger,
	}
}

func (c *WhisperClient) Transcribe(
	ctx context.Context,
	audio pipeline.CanonicalAudio,
	language string,
) (string, error) {

	req := openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: audio.Path,
	}
	if language != "" && language != LanguageAuto {
		req.Language = language
	}

	c.logger.Infof("[stt] sending %s for transcription", audio.Path)

	resp, err := c.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", mapError(err)
	}

	return resp.Text, nil
}

// mapError folds go-openai's error shapes into the two outcomes callers
// distinguish: the service answered with an error status, or it never
// answered at all.
func mapError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &RejectedError{Status: apiErr.HTTPStatusCode, Body: apiErr.Message}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &RejectedError{Status: reqErr.HTTPStatusCode, Body: string(reqErr.Body)}
	}

	return fmt.Errorf("%w: %v", ErrUnreachable, err)
}
