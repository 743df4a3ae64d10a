package web2pdf

// Placeholder tokens in a command's parameter template. They must match the
// tokens used by the registry declarations.
const (
	PlaceholderURL            = "#{url}"
	PlaceholderTargetFilePath = "#{targetFilePath}"
)

// CommandWkhtmltopdf is the registry name of the default renderer command.
const CommandWkhtmltopdf = "wkhtmltopdf"

// Timeout bounds in milliseconds. Configured values below minTimeoutMillis
// are silently replaced by DefaultTimeoutMillis: a sub-second watchdog is
// assumed to be a configuration mistake, not intent.
const (
	DefaultTimeoutMillis = 30000
	minTimeoutMillis     = 1000
)

// sigtermExitCode is what the renderer reports after the watchdog's SIGTERM
// on POSIX systems (128+15). Used only to decorate the failure message.
const sigtermExitCode = 143

// Option configures a Converter.
type Option func(*Converter)

// WithTimeout sets the watchdog timeout in milliseconds. Values below
// 1000ms are replaced by the 30000ms default.
func WithTimeout(ms int) Option {
	return func(c *Converter) {
		c.SetTimeout(ms)
	}
}

// WithCommand selects which registry declaration drives conversions.
// The default is CommandWkhtmltopdf.
func WithCommand(name string) Option {
	return func(c *Converter) {
		c.command = name
	}
}

// WithRegistry replaces the command registry.
func WithRegistry(reg CommandRegistry) Option {
	return func(c *Converter) {
		c.registry = reg
	}
}

// WithWorkspace replaces the artifact workspace. Hosts with their own blob
// layer plug it in here.
func WithWorkspace(ws Workspace) Option {
	return func(c *Converter) {
		c.workspace = ws
	}
}

// WithRunner replaces the command runner. Intended for tests.
func WithRunner(r CommandRunner) Option {
	return func(c *Converter) {
		c.runner = r
	}
}
