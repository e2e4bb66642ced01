package sanitized

// Sanitized content ordainers. Please use these with extreme caution (with
// the exception of MarkUnsanitizedText). Ordaining performs NO validation:
// it is a trust assertion by the caller, not a sanitizer.

// ordain is the only place where Content of a valid kind is created.
func ordain(kind ContentKind, content string) Content {
	return Content{content: content, kind: kind}
}

// MarkUnsanitizedText protects a string from being used in a noAutoescape
// context. This is useful for content where there is significant risk of
// accidental unescaped usage in a template, e.g. user-controlled data.
func MarkUnsanitizedText(content string) Content {
	return ordain(Text, content)
}

// OrdainSanitizedHTML takes a leap of faith that content is "safe" HTML,
// which can safely be embedded in a PCDATA context.
//
// If you would be surprised to find that an HTML sanitizer produced
// content (e.g. it runs code or fetches bad URLs) and you wouldn't write a
// template that produces it on security or privacy grounds, then don't
// pass it here.
func OrdainSanitizedHTML(content string) Content {
	return ordain(HTML, content)
}

// OrdainSanitizedJS takes a leap of faith that content is "safe"
// (non-attacker-controlled, XSS-free) Javascript.
func OrdainSanitizedJS(content string) Content {
	return ordain(JS, content)
}

// OrdainSanitizedJSStrChars takes a leap of faith that content can be
// safely embedded in a Javascript string without re-escaping.
func OrdainSanitizedJSStrChars(content string) Content {
	return ordain(JSStrChars, content)
}

// OrdainSanitizedURI takes a leap of faith that content is "safe" to use
// as a URI in a template, e.g. because it has already been encoded.
func OrdainSanitizedURI(content string) Content {
	return ordain(URI, content)
}

// OrdainSanitizedHTMLAttribute takes a leap of faith that content is "safe"
// to use as an HTML attribute, such as `dir="ltr"`.
func OrdainSanitizedHTMLAttribute(content string) Content {
	return ordain(Attributes, content)
}

// OrdainSanitizedCSS takes a leap of faith that content is "safe" to use
// as CSS in a style attribute or block, such as "color:#c3d9ff".
func OrdainSanitizedCSS(content string) Content {
	return ordain(CSS, content)
}
