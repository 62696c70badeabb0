package stt

import (
	"errors"
	"fmt"
)

// ErrUnreachable — the transcription endpoint could not be reached at all.
var ErrUnreachable = errors.New("transcription service unreachable")

// RejectedError is a non-2xx answer from the transcription endpoint.
// Status and Body are kept for operator logs; the reply layer must
// never forward Body to the sender.
type RejectedError struct {
	Status int
	Body   string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("transcription service rejected request: status=%d body=%q", e.Status, e.Body)
}
