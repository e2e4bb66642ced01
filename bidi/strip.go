package bidi

import "regexp"

// htmlSkip is a simplified pattern for an HTML tag (opening or closing) or
// an HTML escape, i.e. the things to skip over in order to ignore their LTR
// characters.
var htmlSkip = regexp.MustCompile(`<[^>]*>|&[^;]+;`)

// StripHTML replaces every tag and every entity of text with a single
// space, if isHTML is set. Otherwise text is returned unchanged.
//
// StripHTML is imprecise in several ways: it does not know about quoted
// attribute values containing '>', nor about unterminated entities. As
// the result is only ever used for directionality detection, precision is
// not very important.
func StripHTML(text string, isHTML bool) string {
	if !isHTML {
		return text
	}
	return htmlSkip.ReplaceAllLiteralString(text, " ")
}
