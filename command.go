package web2pdf

import "strings"

// buildConvertCommand assembles the renderer invocation for a page capture.
// The cookie-jar flag, when present, is prepended to the parameter template
// before placeholder substitution so it always precedes the URL. The URL is
// substituted verbatim; escaping is the caller's responsibility (see the
// package doc's trust boundary note).
func buildConvertCommand(binary, template, url, targetPath, cookieJarPath string) string {
	params := template
	if cookieJarPath != "" {
		params = `--cookie-jar "` + cookieJarPath + `" ` + params
	}
	params = strings.ReplaceAll(params, PlaceholderURL, url)
	params = strings.ReplaceAll(params, PlaceholderTargetFilePath, targetPath)
	return binary + " " + params
}

// buildLoginCommand assembles the invocation for the login step. It ignores
// the parameter template: the renderer runs quiet, writes session cookies to
// the jar, posts the caller-supplied form arguments (appended unvalidated),
// and renders the post-login page into a throwaway output file. Only the
// jar matters; the PDF produced here is discarded by the caller.
func buildLoginCommand(binary, cookieJarPath, loginFormPostArgs, url, discardPath string) string {
	var b strings.Builder
	b.WriteString(binary)
	b.WriteString(` -q --cookie-jar "`)
	b.WriteString(cookieJarPath)
	b.WriteString(`"`)
	if loginFormPostArgs != "" {
		b.WriteString(" ")
		b.WriteString(loginFormPostArgs)
	}
	b.WriteString(` "`)
	b.WriteString(url)
	b.WriteString(`" "`)
	b.WriteString(discardPath)
	b.WriteString(`"`)
	return b.String()
}
