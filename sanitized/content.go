package sanitized

import (
	"errors"
	"fmt"
)

// Content is a string-like value which carries a content kind.
//
// Content is immutable. Its fields are private: values are created by the
// ordain functions and by MarkUnsanitizedText, never directly. A zero
// Content has not been ordained and is rejected by Check.
type Content struct {
	content string
	kind    ContentKind
}

// ConstructionError is returned when Content is created without going
// through one of the ordain functions.
type ConstructionError struct {
	Kind ContentKind // kind the value claims, if any
}

func (e *ConstructionError) Error() string {
	return "do not instantiate directly"
}

// ErrUnsanitizedText is returned by NoAutoescape for content of kind Text.
var ErrUnsanitizedText = errors.New("unsanitized text may not be printed without escaping")

// NewContent exists to make a forgotten ordain call fail loudly: it always
// returns a *ConstructionError.
func NewContent() (*Content, error) {
	T().Errorf("attempt to instantiate sanitized content directly")
	return nil, &ConstructionError{}
}

// Content returns the already-safe payload.
func (c Content) Content() string {
	return c.content
}

// Kind returns the context in which c is safe from XSS attacks.
func (c Content) Kind() ContentKind {
	return c.kind
}

// String returns the payload, making Content a fmt.Stringer.
func (c Content) String() string {
	return c.content
}

// Check returns a *ConstructionError if c did not come from an ordain
// function or MarkUnsanitizedText.
func (c Content) Check() error {
	if !c.kind.Valid() {
		return &ConstructionError{Kind: c.kind}
	}
	return nil
}

// Is reports whether c is of kind k. Forged content is of no kind at all.
func (c Content) Is(k ContentKind) bool {
	return c.kind.Valid() && c.kind == k
}

// GoString prints the kind along with the payload, for debugging.
func (c Content) GoString() string {
	return fmt.Sprintf("sanitized.Content{%s: %q}", c.kind, c.content)
}

// NoAutoescape is the print directive for trusted content. It returns the
// payload of c, to be printed verbatim. Content of kind Text is rejected
// with ErrUnsanitizedText, forged content with a *ConstructionError.
func NoAutoescape(c Content) (string, error) {
	if err := c.Check(); err != nil {
		return "", err
	}
	if c.kind == Text {
		T().Debugf("noAutoescape rejects text %q", c.content)
		return "", ErrUnsanitizedText
	}
	return c.content, nil
}
