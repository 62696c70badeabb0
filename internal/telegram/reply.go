package telegram

import "github.com/Vovarama1992/voice2text_bot/internal/pipeline"

// Canned replies per outcome category. Stage errors are logged by the
// pipeline; only these strings (or the transcript itself) ever reach
// the sender.
const (
	replyEmpty          = "Could not recognize any speech in that audio."
	replyFetchFailed    = "Could not retrieve the audio, please try sending it again."
	replyBadAudio       = "Could not process the audio file. Check the format and try again."
	replyServiceFailed  = "Something went wrong during recognition, please try again later."
	replyInternalFailed = "Something went wrong, please try again later."
)

func replyFor(res pipeline.Result) string {
	switch res.Outcome {
	case pipeline.OutcomeSuccess:
		return res.Text
	case pipeline.OutcomeEmpty:
		return replyEmpty
	}

	switch res.Stage {
	case pipeline.StageFetch:
		return replyFetchFailed
	case pipeline.StageTranscode:
		return replyBadAudio
	case pipeline.StageTranscribe:
		return replyServiceFailed
	default:
		return replyInternalFailed
	}
}
