package web2pdf

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Converter drives the external renderer. One Converter may serve many
// conversions; each call runs one child process under one watchdog timer.
// The only state shared across calls is the cached command declaration,
// loaded on first use and never refreshed.
type Converter struct {
	timeoutMillis int
	command       string
	registry      CommandRegistry
	workspace     Workspace
	runner        CommandRunner
	validator     outputValidator

	specOnce sync.Once
	spec     CommandSpec
	specErr  error
}

// New creates a Converter with the built-in registry, a temp-dir workspace,
// and the 30000ms default timeout. Use options to customize.
func New(opts ...Option) *Converter {
	c := &Converter{
		timeoutMillis: DefaultTimeoutMillis,
		command:       CommandWkhtmltopdf,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.registry == nil {
		c.registry = DefaultRegistry()
	}
	if c.workspace == nil {
		c.workspace = NewTempWorkspace("")
	}
	if c.runner == nil {
		c.runner = watchdogRunner{}
	}
	if c.validator == nil {
		c.validator = pdfValidator{}
	}
	return c
}

// SetTimeout sets the watchdog timeout in milliseconds. Values below 1000
// are silently replaced by the 30000ms default.
func (c *Converter) SetTimeout(ms int) {
	if ms < minTimeoutMillis {
		ms = DefaultTimeoutMillis
	}
	c.timeoutMillis = ms
}

// Timeout returns the effective watchdog timeout in milliseconds.
func (c *Converter) Timeout() int { return c.timeoutMillis }

// IsAvailable reports whether the renderer is installed on this host.
func (c *Converter) IsAvailable() bool {
	return c.registry.Available(c.command)
}

// Convert captures the page at url into a PDF artifact. fileName, when
// non-empty, becomes the artifact's display name.
func (c *Converter) Convert(ctx context.Context, url, fileName string) (*Artifact, error) {
	return c.ConvertWithCookies(ctx, url, fileName, nil)
}

// ConvertWithCookies captures an authenticated page, reusing the cookie
// jar produced by a previous Login call. A nil jar is a plain capture.
func (c *Converter) ConvertWithCookies(ctx context.Context, url, fileName string, cookieJar *Artifact) (*Artifact, error) {
	if url == "" {
		return nil, ErrEmptyURL
	}
	spec, err := c.commandSpec()
	if err != nil {
		return nil, err
	}

	out, err := c.workspace.CreateArtifact("pdf")
	if err != nil {
		return nil, err
	}
	out.SetFilename(fileName)

	jarPath := ""
	if cookieJar != nil {
		jarPath = cookieJar.Path()
	}
	line := buildConvertCommand(spec.Binary, spec.Parameters, url, out.Path(), jarPath)

	if err := c.run(ctx, line, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Login performs the authentication step and returns the cookie jar for
// later ConvertWithCookies calls. loginFormPostArgs is the renderer's raw
// form-post argument string, e.g.
// "--post user-name alice --post user-pwd secret --post Submit doLogin";
// it is passed through unvalidated. The intermediate PDF rendered by the
// login step is discarded (not deleted: artifact lifecycle is the
// caller's, including throwaways).
func (c *Converter) Login(ctx context.Context, url, loginFormPostArgs string) (*Artifact, error) {
	if url == "" {
		return nil, ErrEmptyURL
	}
	spec, err := c.commandSpec()
	if err != nil {
		return nil, err
	}

	jar, err := c.workspace.CreateArtifact("jar")
	if err != nil {
		return nil, err
	}
	discard, err := c.workspace.CreateArtifact("pdf")
	if err != nil {
		return nil, err
	}

	line := buildLoginCommand(spec.Binary, jar.Path(), loginFormPostArgs, url, discard.Path())

	if err := c.run(ctx, line, discard); err != nil {
		return nil, err
	}
	return jar, nil
}

// run executes one composed command and decides the outcome from the
// output file alone. A timed-out or launch-failed run still validates:
// the renderer may have produced a usable file before dying, and an
// already-populated output makes the run a success regardless.
func (c *Converter) run(ctx context.Context, line string, out *Artifact) error {
	res := c.runner.Run(ctx, line, time.Duration(c.timeoutMillis)*time.Millisecond)

	if c.validator.Valid(out.Path()) {
		return nil
	}
	return &ConversionError{
		CommandLine:   line,
		ExitCode:      res.ExitCode,
		TimedOut:      res.ExitCode == sigtermExitCode,
		TimeoutMillis: c.timeoutMillis,
		LaunchErr:     res.LaunchErr,
	}
}

// commandSpec loads the command declaration on first use and caches it for
// the Converter's lifetime. First caller wins; the loaded value is expected
// to be identical across callers, so the once-guard only removes the benign
// race, it does not change behavior.
func (c *Converter) commandSpec() (CommandSpec, error) {
	c.specOnce.Do(func() {
		c.spec, c.specErr = c.registry.Command(c.command)
	})
	if c.specErr != nil {
		return CommandSpec{}, fmt.Errorf("%w: %v", ErrToolUnavailable, c.specErr)
	}
	return c.spec, nil
}
