package web2pdf

import (
	"strings"
	"testing"
)

func TestBuildConvertCommand(t *testing.T) {
	t.Run("substitutes both placeholders exactly once", func(t *testing.T) {
		got := buildConvertCommand("wkhtmltopdf", "#{url} -> #{targetFilePath}",
			"http://example.com", "/tmp/out.pdf", "")

		want := "wkhtmltopdf http://example.com -> /tmp/out.pdf"
		if got != want {
			t.Errorf("command = %q, want %q", got, want)
		}
		if strings.Count(got, "http://example.com") != 1 {
			t.Errorf("url substituted %d times, want 1", strings.Count(got, "http://example.com"))
		}
		if strings.Count(got, "/tmp/out.pdf") != 1 {
			t.Errorf("target path substituted %d times, want 1", strings.Count(got, "/tmp/out.pdf"))
		}
		if strings.Contains(got, "#{") {
			t.Errorf("command still contains a placeholder: %q", got)
		}
	})

	t.Run("cookie jar flag precedes the template", func(t *testing.T) {
		got := buildConvertCommand("wkhtmltopdf", "#{url} #{targetFilePath}",
			"http://example.com", "/tmp/out.pdf", "/tmp/jar1")

		jarIdx := strings.Index(got, `--cookie-jar "/tmp/jar1"`)
		urlIdx := strings.Index(got, "http://example.com")
		if jarIdx < 0 {
			t.Fatalf("command %q missing cookie-jar segment", got)
		}
		if jarIdx > urlIdx {
			t.Errorf("cookie-jar segment at %d should precede substituted template at %d: %q",
				jarIdx, urlIdx, got)
		}
	})

	t.Run("no cookie jar means no flag", func(t *testing.T) {
		got := buildConvertCommand("wkhtmltopdf", "#{url} #{targetFilePath}",
			"http://example.com", "/tmp/out.pdf", "")
		if strings.Contains(got, "--cookie-jar") {
			t.Errorf("command %q should not contain a cookie-jar flag", got)
		}
	})

	t.Run("binary prefixes the command", func(t *testing.T) {
		got := buildConvertCommand("/opt/bin/wkhtmltopdf", "#{url} #{targetFilePath}",
			"http://example.com", "/tmp/out.pdf", "")
		if !strings.HasPrefix(got, "/opt/bin/wkhtmltopdf ") {
			t.Errorf("command %q should start with the binary", got)
		}
	})
}

func TestBuildLoginCommand(t *testing.T) {
	got := buildLoginCommand("wkhtmltopdf", "/tmp/jar.jar",
		"--post user x --post pass y", "http://example.com/login", "/tmp/ignore.pdf")

	if !strings.HasPrefix(got, `wkhtmltopdf -q --cookie-jar "/tmp/jar.jar"`) {
		t.Errorf("command %q should start quiet with the cookie jar", got)
	}
	if !strings.Contains(got, "--post user x --post pass y") {
		t.Errorf("command %q should carry the raw post arguments", got)
	}
	if !strings.HasSuffix(got, `"http://example.com/login" "/tmp/ignore.pdf"`) {
		t.Errorf("command %q should end with quoted url then discard path", got)
	}

	t.Run("post args are not validated or escaped", func(t *testing.T) {
		raw := `--post weird "value with spaces"`
		got := buildLoginCommand("wkhtmltopdf", "/tmp/j", raw, "http://x", "/tmp/p")
		if !strings.Contains(got, raw) {
			t.Errorf("command %q should contain the post args verbatim", got)
		}
	})

	t.Run("empty post args collapse cleanly", func(t *testing.T) {
		got := buildLoginCommand("wkhtmltopdf", "/tmp/j", "", "http://x", "/tmp/p")
		if strings.Contains(got, "  ") {
			t.Errorf("command %q should not contain double spaces", got)
		}
	})
}
