package web2pdf

import (
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/webarc/go-web2pdf/internal/fileutil"
)

// outputValidator decides whether a renderer run produced an acceptable
// document. It is the sole authority on success; exit codes are ignored.
type outputValidator interface {
	Valid(path string) bool
}

// Compile-time interface check.
var _ outputValidator = pdfValidator{}

// pdfValidator accepts a file that exists, is non-empty, parses as a
// well-formed PDF, and contains at least one page. This is deliberately
// more expensive than a size check: the renderer can emit a truncated file
// of plausible size, or a complete one alongside a non-zero exit.
type pdfValidator struct{}

func (pdfValidator) Valid(path string) bool {
	if !fileutil.FileExists(path) || fileutil.FileSize(path) == 0 {
		return false
	}
	// A parse failure is evidence of an invalid output, not an error to
	// report: the failure the caller sees is built from the command line
	// and exit code, not from pdfcpu internals.
	pages, err := api.PageCountFile(path)
	return err == nil && pages > 0
}
