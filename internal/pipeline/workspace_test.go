package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWorkspaceUniquePerRun(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 20; i++ {
		ws, err := NewWorkspace()
		if err != nil {
			t.Fatalf("NewWorkspace: %v", err)
		}
		defer ws.Remove()

		if seen[ws.Dir] {
			t.Fatalf("duplicate workspace dir %s", ws.Dir)
		}
		seen[ws.Dir] = true

		if ws.RunID == "" {
			t.Fatal("empty RunID")
		}
	}
}

func TestWorkspacePathStaysInside(t *testing.T) {
	ws, err := NewWorkspace()
	if err != nil {
		t.Fatalf("NewWorkspace: %v", err)
	}
	defer ws.Remove()

	p := ws.Path("voice.ogg")
	if !strings.HasPrefix(p, ws.Dir+string(filepath.Separator)) {
		t.Errorf("Path(%q) = %q, not inside %q", "voice.ogg", p, ws.Dir)
	}
}

func TestWorkspaceRemoveIsIdempotent(t *testing.T) {
	ws, err := NewWorkspace()
	if err != nil {
		t.Fatalf("NewWorkspace: %v", err)
	}

	if err := os.WriteFile(ws.Path("voice.ogg"), []byte("data"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if err := ws.Remove(); err != nil {
		t.Fatalf("first Remove: %v", err)
	}
	if _, err := os.Stat(ws.Dir); !os.IsNotExist(err) {
		t.Fatalf("workspace dir still present after Remove")
	}
	if err := ws.Remove(); err != nil {
		t.Fatalf("second Remove: %v", err)
	}
}
