package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	web2pdf "github.com/webarc/go-web2pdf"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string       `json:"status"` // "ready", "warnings", "errors"
	Renderer rendererInfo `json:"renderer"`
	Env      envInfo      `json:"environment"`
	System   systemInfo   `json:"system"`
	Warnings []string     `json:"warnings,omitempty"`
	Errors   []string     `json:"errors,omitempty"`
}

// rendererInfo holds renderer detection results.
type rendererInfo struct {
	Command string `json:"command"`
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS           string `json:"os"`
	Arch         string `json:"arch"`
	RegistryFile string `json:"registry_file,omitempty"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, stdout io.Writer) int {
	jsonOutput := false
	registry := ""
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--json":
			jsonOutput = true
		case args[i] == "--registry" || args[i] == "-r":
			if i+1 < len(args) {
				i++
				registry = args[i]
			}
		}
	}

	result := runDoctor(registryRef(registry))

	if jsonOutput {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(registryFile string) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:           runtime.GOOS,
			Arch:         runtime.GOARCH,
			RegistryFile: registryFile,
		},
	}

	checkRenderer(result, registryFile)
	checkSystem(result)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}
	return result
}

// checkRenderer detects the declared renderer binary and its version.
func checkRenderer(result *doctorResult, registryFile string) {
	result.Renderer.Command = web2pdf.CommandWkhtmltopdf

	reg, err := web2pdf.ResolveRegistry(registryFile)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Command registry: %v", err))
		return
	}

	spec, err := reg.Command(web2pdf.CommandWkhtmltopdf)
	if err != nil {
		result.Errors = append(result.Errors,
			"wkhtmltopdf is not declared in the command registry")
		return
	}

	path, err := exec.LookPath(spec.Binary)
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("%s not found on PATH. Install it from https://wkhtmltopdf.org", spec.Binary))
		return
	}
	result.Renderer.Found = true
	result.Renderer.Path = path

	if spec.VersionArg != "" {
		out, err := exec.Command(path, spec.VersionArg).Output() // #nosec G204 -- binary and arg come from the registry
		if err == nil {
			result.Renderer.Version = strings.TrimSpace(string(out))
		} else {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Could not get %s version: %v", spec.Binary, err))
		}
	}
}

// checkSystem verifies system requirements.
func checkSystem(result *doctorResult) {
	tmpDir := os.TempDir()
	testFile := filepath.Join(tmpDir, "web2pdf-doctor-test")
	if err := os.WriteFile(testFile, []byte("test"), 0600); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", tmpDir))
	} else {
		_ = os.Remove(testFile)
		result.System.TempWritable = true
	}
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "web2pdf doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Renderer")
	if r.Renderer.Found {
		fmt.Fprintf(w, "  [OK] Found at %s\n", r.Renderer.Path)
		if r.Renderer.Version != "" {
			fmt.Fprintf(w, "  [OK] Version: %s\n", r.Renderer.Version)
		}
	} else {
		fmt.Fprintln(w, "  [ERROR] Not found")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.RegistryFile != "" {
		fmt.Fprintf(w, "  [OK] Registry: %s\n", r.Env.RegistryFile)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}
	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to convert")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
