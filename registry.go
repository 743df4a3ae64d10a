package web2pdf

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/webarc/go-web2pdf/internal/fileutil"
	"github.com/webarc/go-web2pdf/internal/yamlutil"
)

// CommandRegistry resolves declared external commands: whether a command's
// binary is present on this host, and how to invoke it.
type CommandRegistry interface {
	Available(name string) bool
	Command(name string) (CommandSpec, error)
}

// Compile-time interface check.
var _ CommandRegistry = (*Registry)(nil)

// CommandSpec declares one external command.
type CommandSpec struct {
	// Binary is the executable name or path.
	Binary string `yaml:"binary"`
	// Parameters is the argument template. It must contain the
	// #{url} and #{targetFilePath} placeholders; a template missing them
	// is a configuration defect that surfaces downstream as a failed
	// conversion, not here.
	Parameters string `yaml:"parameters"`
	// VersionArg, when set, lets diagnostics probe the installed version.
	VersionArg string `yaml:"versionArg"`
}

// registryFile is the YAML document shape.
type registryFile struct {
	Commands map[string]CommandSpec `yaml:"commands"`
}

// Registry is a YAML-backed CommandRegistry.
type Registry struct {
	commands map[string]CommandSpec
}

// defaultCommandsYAML declares the stock wkhtmltopdf invocation. The
// error-handling flags force the renderer to keep going past broken pages
// and media instead of freezing, which is why they live in the template
// rather than in code.
const defaultCommandsYAML = `commands:
  wkhtmltopdf:
    binary: wkhtmltopdf
    parameters: '--load-error-handling ignore --load-media-error-handling ignore #{url} #{targetFilePath}'
    versionArg: --version
`

// DefaultRegistry returns the built-in command declarations.
func DefaultRegistry() *Registry {
	reg, err := parseRegistry([]byte(defaultCommandsYAML))
	if err != nil {
		// The built-in document is a compile-time constant; failing to
		// parse it is a programmer error.
		panic("web2pdf: invalid built-in command registry: " + err.Error())
	}
	return reg
}

// LoadRegistry reads command declarations from a YAML file.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- registry path is operator-provided
	if err != nil {
		return nil, fmt.Errorf("reading command registry: %w", err)
	}
	reg, err := parseRegistry(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRegistryParse, path, err)
	}
	return reg, nil
}

// ResolveRegistry loads a registry by file path or by name. A name is
// searched as <name>.yaml / <name>.yml in the current directory, then in
// the user config directory under web2pdf/. An empty argument returns the
// built-in declarations.
func ResolveRegistry(nameOrPath string) (*Registry, error) {
	if nameOrPath == "" {
		return DefaultRegistry(), nil
	}
	if strings.ContainsAny(nameOrPath, `/\`) {
		return LoadRegistry(nameOrPath)
	}

	var tried []string
	for _, ext := range []string{".yaml", ".yml"} {
		local := nameOrPath + ext
		if fileutil.FileExists(local) {
			return LoadRegistry(local)
		}
		tried = append(tried, local)
	}
	if userDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range []string{".yaml", ".yml"} {
			p := filepath.Join(userDir, "web2pdf", nameOrPath+ext)
			if fileutil.FileExists(p) {
				return LoadRegistry(p)
			}
			tried = append(tried, p)
		}
	}
	return nil, fmt.Errorf("command registry %q not found: tried %s",
		nameOrPath, strings.Join(tried, ", "))
}

func parseRegistry(data []byte) (*Registry, error) {
	var doc registryFile
	if err := yamlutil.UnmarshalStrict(data, &doc); err != nil {
		return nil, err
	}
	if doc.Commands == nil {
		doc.Commands = map[string]CommandSpec{}
	}
	return &Registry{commands: doc.Commands}, nil
}

// Command returns the declaration for name.
func (r *Registry) Command(name string) (CommandSpec, error) {
	spec, ok := r.commands[name]
	if !ok {
		return CommandSpec{}, fmt.Errorf("%w: %q", ErrCommandNotFound, name)
	}
	return spec, nil
}

// Available reports whether the command is declared and its binary can be
// found on this host. It never fails: an undeclared or missing command is
// simply not available.
func (r *Registry) Available(name string) bool {
	spec, err := r.Command(name)
	if err != nil {
		return false
	}
	_, err = exec.LookPath(spec.Binary)
	return err == nil
}
