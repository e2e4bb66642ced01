package sanitized

import (
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

var (
	// UGCPolicy allows safe user-generated content with basic formatting.
	// It is the policy CleanHTML uses by default.
	UGCPolicy = bluemonday.UGCPolicy()

	// StrictPolicy removes all HTML tags and attributes.
	StrictPolicy = bluemonday.StrictPolicy()
)

// EscapeHTML escapes text for use in a PCDATA context and returns it as
// HTML content. Content which already is HTML is returned unchanged;
// content of any other kind, including forged content, is escaped as text.
func EscapeHTML(c Content) Content {
	if c.Is(HTML) {
		return c
	}
	return ordain(HTML, html.EscapeString(c.content))
}

// EscapeHTMLString escapes a plain string, see EscapeHTML.
func EscapeHTMLString(text string) Content {
	return ordain(HTML, html.EscapeString(text))
}

// CleanHTML sanitizes untrusted HTML input with policy p and returns the
// result as HTML content. If p is nil, UGCPolicy is used.
func CleanHTML(input string, p *bluemonday.Policy) Content {
	if p == nil {
		p = UGCPolicy
	}
	return ordain(HTML, p.Sanitize(input))
}

// StripTags removes all mark-up from input. The result is HTML, as special
// characters of the remaining text are escaped.
func StripTags(input string) Content {
	return ordain(HTML, StrictPolicy.Sanitize(input))
}
