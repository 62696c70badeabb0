package transcode

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/Vovarama1992/voice2text_bot/internal/pipeline"
)

// fakeFFmpeg writes a shell script that mimics ffmpeg: the real binary
// is deliberately not a test dependency.
func fakeFFmpeg(t *testing.T, script string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ffmpeg")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write fake ffmpeg: %v", err)
	}
	return path
}

// writes a dummy mp3 to the last argument, like a successful conversion
const okScript = `#!/bin/sh
for last; do :; done
printf 'mp3data' > "$last"
`

const decodeFailScript = `#!/bin/sh
echo "Invalid data found when processing input" >&2
exit 1
`

const silentNoOutputScript = `#!/bin/sh
exit 0
`

func testWorkspace(t *testing.T) *pipeline.Workspace {
	t.Helper()

	ws, err := pipeline.NewWorkspace()
	if err != nil {
		t.Fatalf("NewWorkspace: %v", err)
	}
	t.Cleanup(func() { ws.Remove() })
	return ws
}

func writeInput(t *testing.T, ws *pipeline.Workspace, name string) string {
	t.Helper()

	path := ws.Path(name)
	if err := os.WriteFile(path, []byte("oggbytes"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

func TestTranscodeSuccess(t *testing.T) {
	ws := testWorkspace(t)
	input := writeInput(t, ws, "voice.ogg")

	tr := NewFFmpegTranscoder(fakeFFmpeg(t, okScript), zap.NewNop().Sugar())

	audio, err := tr.Transcode(context.Background(), input, ws)
	if err != nil {
		t.Fatalf("Transcode: %v", err)
	}

	if audio.Format != "mp3" {
		t.Errorf("format = %q, want mp3", audio.Format)
	}
	if want := ws.Path("voice.mp3"); audio.Path != want {
		t.Errorf("path = %q, want %q", audio.Path, want)
	}
	if _, err := os.Stat(input); err != nil {
		t.Errorf("input deleted by transcoder: %v", err)
	}
	data, err := os.ReadFile(audio.Path)
	if err != nil || len(data) == 0 {
		t.Errorf("output unreadable: %v", err)
	}
}

func TestTranscodeMP3InputDoesNotClobberItself(t *testing.T) {
	ws := testWorkspace(t)
	input := writeInput(t, ws, "audio.mp3")

	tr := NewFFmpegTranscoder(fakeFFmpeg(t, okScript), zap.NewNop().Sugar())

	audio, err := tr.Transcode(context.Background(), input, ws)
	if err != nil {
		t.Fatalf("Transcode: %v", err)
	}
	if audio.Path == input {
		t.Fatalf("output path equals input path %q", input)
	}
}

func TestTranscodeDecodeFailure(t *testing.T) {
	ws := testWorkspace(t)
	input := writeInput(t, ws, "voice.ogg")

	tr := NewFFmpegTranscoder(fakeFFmpeg(t, decodeFailScript), zap.NewNop().Sugar())

	_, err := tr.Transcode(context.Background(), input, ws)
	if !errors.Is(err, ErrUnsupportedInput) {
		t.Fatalf("err = %v, want %v", err, ErrUnsupportedInput)
	}
}

func TestTranscodeToolUnavailable(t *testing.T) {
	ws := testWorkspace(t)
	input := writeInput(t, ws, "voice.ogg")

	tr := NewFFmpegTranscoder("no-such-transcoder-zzz", zap.NewNop().Sugar())

	_, err := tr.Transcode(context.Background(), input, ws)
	if !errors.Is(err, ErrToolUnavailable) {
		t.Fatalf("err = %v, want %v", err, ErrToolUnavailable)
	}
}

func TestTranscodeMissingOutput(t *testing.T) {
	ws := testWorkspace(t)
	input := writeInput(t, ws, "voice.ogg")

	tr := NewFFmpegTranscoder(fakeFFmpeg(t, silentNoOutputScript), zap.NewNop().Sugar())

	_, err := tr.Transcode(context.Background(), input, ws)
	if !errors.Is(err, ErrWriteFailure) {
		t.Fatalf("err = %v, want %v", err, ErrWriteFailure)
	}
}

func TestTranscodeCancelledContext(t *testing.T) {
	ws := testWorkspace(t)
	input := writeInput(t, ws, "voice.ogg")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tr := NewFFmpegTranscoder(fakeFFmpeg(t, okScript), zap.NewNop().Sugar())

	_, err := tr.Transcode(ctx, input, ws)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
