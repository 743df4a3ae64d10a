package web2pdf

import (
	"fmt"

	"github.com/webarc/go-web2pdf/internal/fileutil"
)

// Workspace allocates writable file-backed artifacts for conversions.
// Implementations must return an already-created (empty) file so the
// renderer has a concrete target path to write into.
type Workspace interface {
	CreateArtifact(extension string) (*Artifact, error)
}

// TempWorkspace allocates artifacts as temp files in a directory.
// An empty dir means the system temp directory.
type TempWorkspace struct {
	dir string
}

// NewTempWorkspace creates a workspace rooted at dir ("" = os.TempDir).
func NewTempWorkspace(dir string) *TempWorkspace {
	return &TempWorkspace{dir: dir}
}

// CreateArtifact allocates an empty temp file with the given extension.
func (w *TempWorkspace) CreateArtifact(extension string) (*Artifact, error) {
	path, err := fileutil.AllocTemp(w.dir, extension)
	if err != nil {
		return nil, fmt.Errorf("allocating %s artifact: %w", extension, err)
	}
	return NewArtifact(path), nil
}
