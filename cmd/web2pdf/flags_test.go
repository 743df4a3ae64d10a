package main

import "testing"

func TestParseConvertFlags(t *testing.T) {
	flags, positional, err := parseConvertFlags([]string{
		"http://example.com",
		"-o", "out.pdf",
		"--cookie-jar", "/tmp/jar1",
		"-t", "5000",
		"-v",
	})
	if err != nil {
		t.Fatalf("parseConvertFlags() error = %v", err)
	}
	if len(positional) != 1 || positional[0] != "http://example.com" {
		t.Errorf("positional = %v", positional)
	}
	if flags.output != "out.pdf" {
		t.Errorf("output = %q", flags.output)
	}
	if flags.cookieJar != "/tmp/jar1" {
		t.Errorf("cookieJar = %q", flags.cookieJar)
	}
	if flags.common.timeout != 5000 {
		t.Errorf("timeout = %d", flags.common.timeout)
	}
	if !flags.common.verbose {
		t.Error("verbose = false")
	}
}

func TestParseConvertFlags_Invalid(t *testing.T) {
	if _, _, err := parseConvertFlags([]string{"--no-such-flag"}); err == nil {
		t.Error("parseConvertFlags() should reject unknown flags")
	}
}

func TestParseLoginFlags(t *testing.T) {
	flags, positional, err := parseLoginFlags([]string{
		"http://example.com/login",
		"--post-data", "--post user x --post pass y",
		"--jar-out", "session.jar",
		"-q",
	})
	if err != nil {
		t.Fatalf("parseLoginFlags() error = %v", err)
	}
	if len(positional) != 1 || positional[0] != "http://example.com/login" {
		t.Errorf("positional = %v", positional)
	}
	if flags.postData != "--post user x --post pass y" {
		t.Errorf("postData = %q", flags.postData)
	}
	if flags.jarOut != "session.jar" {
		t.Errorf("jarOut = %q", flags.jarOut)
	}
	if !flags.common.quiet {
		t.Error("quiet = false")
	}
}

func TestOutputNameForURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"http://example.com/page", "example.com.pdf"},
		{"https://example.com:8080/x", "example.com-8080.pdf"},
		{"not a url", "webpage.pdf"},
		{"", "webpage.pdf"},
	}
	for _, tt := range tests {
		if got := outputNameForURL(tt.url); got != tt.want {
			t.Errorf("outputNameForURL(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestRegistryRef(t *testing.T) {
	t.Run("flag wins over env", func(t *testing.T) {
		t.Setenv(EnvCommands, "/env/commands.yaml")
		if got := registryRef("/flag/commands.yaml"); got != "/flag/commands.yaml" {
			t.Errorf("registryRef() = %q", got)
		}
	})

	t.Run("env used when flag empty", func(t *testing.T) {
		t.Setenv(EnvCommands, "/env/commands.yaml")
		if got := registryRef(""); got != "/env/commands.yaml" {
			t.Errorf("registryRef() = %q", got)
		}
	})

	t.Run("empty when neither set", func(t *testing.T) {
		t.Setenv(EnvCommands, "")
		if got := registryRef(""); got != "" {
			t.Errorf("registryRef() = %q", got)
		}
	})
}
