package pipeline

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// Runner executes the fetch → transcode → transcribe sequence for one
// inbound audio message. Runners are shared across concurrent runs;
// all per-run state lives in the Workspace.
type Runner struct {
	fetcher     Fetcher
	transcoder  Transcoder
	transcriber Transcriber
	logger      *zap.SugaredLogger
}

func NewRunner(
	fetcher Fetcher,
	transcoder Transcoder,
	transcriber Transcriber,
	logger *zap.SugaredLogger,
) *Runner {
	return &Runner{
		fetcher:     fetcher,
		transcoder:  transcoder,
		transcriber: transcriber,
		logger:      logger,
	}
}

// Run drives one message through the whole pipeline. It always returns
// exactly one Result and never leaves the workspace behind, whichever
// branch is taken. A failing stage short-circuits the rest.
func (r *Runner) Run(ctx context.Context, ref InboundAudioRef, language string) Result {
	ws, err := NewWorkspace()
	if err != nil {
		return Result{Outcome: OutcomeFailure, Stage: StageFetch, Err: err}
	}
	defer func() {
		if err := ws.Remove(); err != nil {
			r.logger.Warnf("[pipeline] run=%s workspace cleanup: %v", ws.RunID, err)
		}
	}()

	r.logger.Infof("[pipeline] run=%s start kind=%s fileID=%s", ws.RunID, ref.Kind, ref.FileID)

	input, err := r.fetcher.Fetch(ctx, ref, ws)
	if err != nil {
		r.logger.Errorf("[pipeline] run=%s fetch fail: %v", ws.RunID, err)
		return Result{Outcome: OutcomeFailure, Stage: StageFetch, Err: err}
	}

	audio, err := r.transcoder.Transcode(ctx, input, ws)
	if err != nil {
		r.logger.Errorf("[pipeline] run=%s transcode fail: %v", ws.RunID, err)
		return Result{Outcome: OutcomeFailure, Stage: StageTranscode, Err: err}
	}

	text, err := r.transcriber.Transcribe(ctx, audio, language)
	if err != nil {
		r.logger.Errorf("[pipeline] run=%s transcribe fail: %v", ws.RunID, err)
		return Result{Outcome: OutcomeFailure, Stage: StageTranscribe, Err: err}
	}

	if strings.TrimSpace(text) == "" {
		r.logger.Infof("[pipeline] run=%s done, empty transcript", ws.RunID)
		return Result{Outcome: OutcomeEmpty}
	}

	r.logger.Infof("[pipeline] run=%s done, %d chars", ws.RunID, len(text))
	return Result{Outcome: OutcomeSuccess, Text: text}
}
