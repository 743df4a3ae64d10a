package web2pdf

import (
	"io"
	"os"
	"path/filepath"

	"github.com/webarc/go-web2pdf/internal/fileutil"
)

// Artifact is a file-backed blob: a generated PDF or a cookie jar. The
// converter allocates artifacts through a Workspace and never deletes them;
// lifecycle belongs to the caller.
type Artifact struct {
	path string
	name string
}

// NewArtifact wraps an existing file as an artifact. The display name
// defaults to the file's base name.
func NewArtifact(path string) *Artifact {
	return &Artifact{path: path, name: filepath.Base(path)}
}

// Path returns the artifact's location on disk.
func (a *Artifact) Path() string { return a.path }

// Filename returns the display name, which may differ from the on-disk
// temp file name.
func (a *Artifact) Filename() string { return a.name }

// SetFilename overrides the display name. The on-disk file is not renamed.
func (a *Artifact) SetFilename(name string) {
	if name != "" {
		a.name = name
	}
}

// Exists reports whether the backing file exists.
func (a *Artifact) Exists() bool { return fileutil.FileExists(a.path) }

// Size returns the backing file's size in bytes, or 0 if it is missing.
func (a *Artifact) Size() int64 { return fileutil.FileSize(a.path) }

// Open returns a reader over the backing file.
func (a *Artifact) Open() (io.ReadCloser, error) {
	return os.Open(a.path)
}

// Bytes reads the whole backing file into memory.
func (a *Artifact) Bytes() ([]byte, error) {
	return os.ReadFile(a.path)
}
