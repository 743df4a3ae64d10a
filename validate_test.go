package web2pdf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPDFValidator(t *testing.T) {
	v := pdfValidator{}

	t.Run("missing file is invalid", func(t *testing.T) {
		if v.Valid(filepath.Join(t.TempDir(), "absent.pdf")) {
			t.Error("Valid() = true for a missing file")
		}
	})

	t.Run("empty file is invalid", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.pdf")
		if err := os.WriteFile(path, nil, 0600); err != nil {
			t.Fatal(err)
		}
		if v.Valid(path) {
			t.Error("Valid() = true for an empty file")
		}
	})

	t.Run("non-PDF content is invalid", func(t *testing.T) {
		// A plausible renderer failure mode: an HTML error page written
		// to the output path. Parse failures are swallowed, not raised.
		path := filepath.Join(t.TempDir(), "error.pdf")
		if err := os.WriteFile(path, []byte("<html>504 Gateway Timeout</html>"), 0600); err != nil {
			t.Fatal(err)
		}
		if v.Valid(path) {
			t.Error("Valid() = true for HTML content")
		}
	})

	t.Run("truncated PDF header is invalid", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "truncated.pdf")
		content := "%PDF-1.4\n" + strings.Repeat("x", 64)
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}
		if v.Valid(path) {
			t.Error("Valid() = true for a truncated PDF")
		}
	})

	t.Run("directory is invalid", func(t *testing.T) {
		if v.Valid(t.TempDir()) {
			t.Error("Valid() = true for a directory")
		}
	})
}
