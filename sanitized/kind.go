package sanitized

import "fmt"

// ContentKind is the type of textual content, i.e. the context in which
// content is safe from XSS attacks.
//
// Kinds are compared by identity of their tag. The zero value is not a
// valid kind; it is the kind of Content which has not been ordained.
type ContentKind int8

const (
	notOrdained ContentKind = iota

	// HTML is a snippet of HTML that does not start or end inside a tag,
	// comment, entity or DOCTYPE, and that does not contain any executable
	// code (JS, <object>s, etc.) from a different trust domain.
	HTML

	// JS is executable Javascript code or expression, safe for insertion in
	// a script tag or event handler context, known to be free of any
	// attacker-controlled scripts.
	JS

	// JSStrChars is a sequence of code units that can appear between quotes
	// (either kind) in a JS program without causing a parse error, and
	// without causing any side effects. It must not end inside an escape
	// sequence.
	JSStrChars

	// URI is a properly encoded portion of a URI.
	URI

	// Attributes are repeated attribute names and values, e.g.
	// `dir="ltr" foo="bar" onclick="trustedFunction()" checked`.
	Attributes

	// CSS is a CSS3 declaration, property, value or group of semicolon
	// separated declarations.
	CSS

	// Text is unsanitized plain text. It is effectively the "null" kind:
	// any string is safe to use as text, but being of kind Text makes no
	// guarantees about its safety in any other context.
	Text
)

var kindNames = [...]string{
	notOrdained: "<not ordained>",
	HTML:        "html",
	JS:          "js",
	JSStrChars:  "jsStrChars",
	URI:         "uri",
	Attributes:  "attributes",
	CSS:         "css",
	Text:        "text",
}

func (k ContentKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("ContentKind(%d)", int8(k))
	}
	return kindNames[k]
}

// Valid is true for the seven kinds of content.
func (k ContentKind) Valid() bool {
	return k >= HTML && k <= Text
}

// ParseKind returns the kind for a kind name as used in template
// declarations, e.g. "html" or "attributes".
func ParseKind(name string) (ContentKind, error) {
	for k := HTML; k <= Text; k++ {
		if kindNames[k] == name {
			return k, nil
		}
	}
	return notOrdained, fmt.Errorf("unknown content kind %q", name)
}
