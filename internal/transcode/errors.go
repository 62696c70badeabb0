package transcode

import "errors"

// ErrToolUnavailable — the ffmpeg binary could not be invoked.
var ErrToolUnavailable = errors.New("transcoder binary unavailable")

// ErrUnsupportedInput — ffmpeg could not decode the payload.
var ErrUnsupportedInput = errors.New("unsupported or corrupt audio")

// ErrWriteFailure — conversion reported success but produced no usable output.
var ErrWriteFailure = errors.New("transcoded output write failed")
