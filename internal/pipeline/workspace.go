package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Workspace is a temp directory owned by exactly one pipeline run. It
// holds at most two files: the fetched payload and its transcoded
// derivative. The runner removes it on every exit path.
type Workspace struct {
	RunID string
	Dir   string
}

func NewWorkspace() (*Workspace, error) {
	runID := uuid.NewString()

	dir, err := os.MkdirTemp("", "voicerun-"+runID+"-*")
	if err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}

	return &Workspace{RunID: runID, Dir: dir}, nil
}

// Path returns the location for a file inside the workspace.
func (w *Workspace) Path(name string) string {
	return filepath.Join(w.Dir, name)
}

// Remove deletes the directory with everything in it. Safe to call
// more than once.
func (w *Workspace) Remove() error {
	return os.RemoveAll(w.Dir)
}
