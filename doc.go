// Package web2pdf converts remote webpages to PDF by driving an external
// command-line renderer (wkhtmltopdf).
//
// # Quick Start
//
// Create a converter and capture a page:
//
//	conv := web2pdf.New()
//	if !conv.IsAvailable() {
//	    log.Fatal("wkhtmltopdf is not installed")
//	}
//
//	pdf, err := conv.Convert(ctx, "https://example.com", "example.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data, _ := pdf.Bytes()
//	os.WriteFile(pdf.Filename(), data, 0644)
//
// # Authenticated Pages
//
// Pages behind a login form need a cookie jar. Run the login step once,
// then reuse the jar for subsequent captures:
//
//	jar, err := conv.Login(ctx, "https://my.site/login",
//	    "--post user-name alice --post user-pwd secret --post Submit doLogin")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pdf, err := conv.ConvertWithCookies(ctx, "https://my.site/private", "", jar)
//
// # Success Policy
//
// The renderer's exit code is unreliable: it can exit non-zero after
// producing a perfectly good PDF (missing font, slow image), or exit zero
// with garbage. The converter therefore never trusts the exit code.
// Success is decided by opening the output file and checking that it
// parses as a PDF with at least one page. Exit code, command line, and
// timeout information are only reported on failure, as a *ConversionError.
//
// # Timeouts
//
// Each conversion runs under a watchdog that force-terminates the renderer
// after the configured timeout (default 30000ms). Values below 1000ms are
// silently replaced by the default. Validation still runs after a timeout,
// since a killed renderer may have produced a usable file.
//
// # Command Declarations
//
// The renderer invocation is declared in a YAML registry (binary name,
// parameter template with #{url} and #{targetFilePath} placeholders).
// The built-in declaration runs wkhtmltopdf with flags that ignore page
// and media load errors so a broken resource cannot hang the capture.
// The declaration is loaded on first use and cached for the converter's
// lifetime.
//
// # Trust Boundary
//
// The URL and the login form-post arguments are substituted into the
// command line without escaping. A URL containing quotes or other shell
// metacharacters can alter the parsed command. Callers own this boundary
// and must pass well-formed input.
package web2pdf
