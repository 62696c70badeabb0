package pipeline

import "context"

// Kind tells how the sender submitted the audio: a recorded voice
// message or an attached audio file.
type Kind string

const (
	KindVoice Kind = "voice"
	KindFile  Kind = "file"
)

// InboundAudioRef identifies one sender-submitted audio item. FileID is
// the platform-assigned retrieval handle; FileName is the declared name
// when the client sent one.
type InboundAudioRef struct {
	FileID   string
	FileName string
	Kind     Kind
}

// CanonicalAudio is the transcoder's output: a file in the single
// encoding the transcription service reliably accepts.
type CanonicalAudio struct {
	Path   string
	Format string
}

type Fetcher interface {
	Fetch(ctx context.Context, ref InboundAudioRef, ws *Workspace) (string, error)
}

type Transcoder interface {
	Transcode(ctx context.Context, input string, ws *Workspace) (CanonicalAudio, error)
}

type Transcriber interface {
	Transcribe(ctx context.Context, audio CanonicalAudio, language string) (string, error)
}
