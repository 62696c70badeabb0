package pipeline

// Stage names the pipeline step a failure happened in.
type Stage string

const (
	StageFetch      Stage = "fetch"
	StageTranscode  Stage = "transcode"
	StageTranscribe Stage = "transcribe"
)

// Outcome tags what a run produced.
type Outcome int

const (
	// OutcomeSuccess — the service returned a non-empty transcript.
	OutcomeSuccess Outcome = iota
	// OutcomeEmpty — the run completed but no speech was recognized.
	OutcomeEmpty
	// OutcomeFailure — some stage failed; Stage and Err say which and why.
	OutcomeFailure
)

// Result is the single value a run produces. Err is kept for logs; the
// reply layer maps Stage to a canned user-facing message and never
// echoes Err text to the sender.
type Result struct {
	Outcome Outcome
	Text    string
	Stage   Stage
	Err     error
}

func (r Result) Failed() bool {
	return r.Outcome == OutcomeFailure
}
