package transcode

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Vovarama1992/voice2text_bot/internal/pipeline"
)

const targetFormat = "mp3"

// FFmpegTranscoder shells out to ffmpeg to re-encode whatever the
// sender's client produced (OGG/Opus, M4A, WAV, ...) into mp3, the one
// format the Whisper endpoint accepts reliably. It always re-encodes,
// even inputs that might already be mp3.
type FFmpegTranscoder struct {
	bin    string
	logger *zap.SugaredLogger
}

func NewFFmpegTranscoder(bin string, logger *zap.SugaredLogger) *FFmpegTranscoder {
	return &FFmpegTranscoder{bin: bin, logger: logger}
}

func (t *FFmpegTranscoder) Transcode(
	ctx context.Context,
	input string,
	ws *pipeline.Workspace,
) (pipeline.CanonicalAudio, error) {

	bin, err := exec.LookPath(t.bin)
	if err != nil {
		return pipeline.CanonicalAudio{}, fmt.Errorf("%w: %v", ErrToolUnavailable, err)
	}

	output := outputPath(input, ws)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(
		ctx,
		bin,
		"-y",
		"-i", input,
		"-vn",
		"-acodec", "libmp3lame",
		output,
	)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return pipeline.CanonicalAudio{}, fmt.Errorf("ffmpeg: %w", ctx.Err())
		}
		return pipeline.CanonicalAudio{}, fmt.Errorf(
			"%w: %v: %s", ErrUnsupportedInput, err, lastLine(stderr.String()),
		)
	}

	info, err := os.Stat(output)
	if err != nil || info.Size() == 0 {
		return pipeline.CanonicalAudio{}, fmt.Errorf("%w: %s", ErrWriteFailure, output)
	}

	t.logger.Infof("[transcode] run=%s %s -> %s (%d bytes)", ws.RunID, input, output, info.Size())
	return pipeline.CanonicalAudio{Path: output, Format: targetFormat}, nil
}

// outputPath places the mp3 next to the input, guarding against the
// input itself already being named *.mp3.
func outputPath(input string, ws *pipeline.Workspace) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	out := ws.Path(stem + "." + targetFormat)
	if out == input {
		out = ws.Path(stem + ".converted." + targetFormat)
	}
	return out
}

// lastLine trims ffmpeg's banner noise down to the line that actually
// names the decode problem.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) == 0 {
		return ""
	}
	return strings.TrimSpace(lines[len(lines)-1])
}
