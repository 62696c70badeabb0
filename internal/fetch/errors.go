package fetch

import "errors"

// ErrNotFound — the retrieval handle is invalid or has expired.
var ErrNotFound = errors.New("audio file not found")

// ErrNetwork — transport-level failure talking to the platform.
var ErrNetwork = errors.New("audio download failed")

// ErrIO — the payload could not be written to the workspace.
var ErrIO = errors.New("audio write failed")
