package formatter

import (
	"fmt"

	"github.com/splix/soyutils-requirejs/sanitized"
)

// SpanWrapContent is SpanWrap for typed content. Text content is escaped
// before wrapping, HTML content is wrapped as is. The result is HTML.
// Content of other kinds cannot be bidi-wrapped and results in an error.
func (f *Formatter) SpanWrapContent(c sanitized.Content) (sanitized.Content, error) {
	if err := c.Check(); err != nil {
		return sanitized.Content{}, err
	}
	switch c.Kind() {
	case sanitized.Text:
		c = sanitized.EscapeHTML(c)
	case sanitized.HTML:
	default:
		return sanitized.Content{}, fmt.Errorf("cannot bidi-wrap content of kind %s", c.Kind())
	}
	// the output of SpanWrap is HTML if its input is
	return sanitized.OrdainSanitizedHTML(f.SpanWrap(c.Content(), false)), nil
}

// DirAttrContent returns the result of DirAttr as attribute content,
// ready to be printed within an open tag.
func (f *Formatter) DirAttrContent(text string, isHTML bool) sanitized.Content {
	return sanitized.OrdainSanitizedHTMLAttribute(f.DirAttr(text, isHTML))
}
