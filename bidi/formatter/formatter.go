/*
Package formatter formats text of unknown directionality for display in a
context of known directionality.

An opposite-directionality string inserted into a page may be garbled
itself, and it may garble what follows it: the renderer's current
direction persists past the end of inserted text. A Formatter prevents
both, either by wrapping text in HTML mark-up or, where mark-up is not
allowed (e.g. within an option element), in Unicode bidi control
characters. In both cases a directional mark is appended if the exit
direction of the text does not match the context.

  f := formatter.New(bidi.LTR)
  html := f.SpanWrap(userName, false)

Formatters are immutable and may be shared between goroutines.
*/
package formatter

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/splix/soyutils-requirejs/bidi"
)

// T traces to the global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Unicode bidi formatting characters.
const (
	LRM = "\u200e" // left-to-right mark
	RLM = "\u200f" // right-to-left mark
	LRE = "\u202a" // left-to-right embedding
	RLE = "\u202b" // right-to-left embedding
	PDF = "\u202c" // pop directional formatting
)

// Formatter formats text for a fixed context direction. The zero value
// formats for unknown context direction with the default estimator.
type Formatter struct {
	dir       bidi.Direction
	estimator *bidi.Estimator
}

// New creates a formatter for context direction dir.
func New(dir bidi.Direction) *Formatter {
	return &Formatter{dir: bidi.ToDir(int(dir)), estimator: bidi.Default}
}

// FromInt creates a formatter for a numeric context direction:
// positive = LTR, negative = RTL, 0 = unknown.
func FromInt(dir int) *Formatter {
	return New(bidi.ToDir(dir))
}

// FromBool creates a formatter for a context which is RTL if isRTL is set
// and LTR otherwise.
func FromBool(isRTL bool) *Formatter {
	return New(bidi.ToDirBool(isRTL))
}

// FromLocale creates a formatter for the direction of the script of a
// BCP 47 language tag.
func FromLocale(locale string) *Formatter {
	dir := bidi.LocaleDirection(locale)
	T().Debugf("bidi formatter for locale %q has context direction %s", locale, dir)
	return New(dir)
}

// FromEnvironment creates a formatter for the locale of the user
// environment.
func FromEnvironment() *Formatter {
	return FromLocale(bidi.EnvironmentLocale())
}

// WithEstimator returns a copy of f which estimates text directions with e.
func (f *Formatter) WithEstimator(e *bidi.Estimator) *Formatter {
	if e == nil {
		e = bidi.Default
	}
	return &Formatter{dir: f.dir, estimator: e}
}

func (f *Formatter) est() *bidi.Estimator {
	if f.estimator == nil {
		return bidi.Default
	}
	return f.estimator
}

// Dir returns the context direction.
func (f *Formatter) Dir() bidi.Direction {
	return f.dir
}

// DirAttr returns `dir="ltr"` or `dir="rtl"`, depending on the estimated
// direction of text, if it is not the same as the context direction.
// Otherwise, and for text of unknown direction, it returns the empty string.
func (f *Formatter) DirAttr(text string, isHTML bool) string {
	dir := f.est().TextDirection(text, isHTML)
	if dir == bidi.Unknown || dir == f.dir {
		return ""
	}
	return `dir="` + dir.Attr() + `"`
}

// EndEdge returns the trailing horizontal edge: "left" for RTL context and
// "right" otherwise.
func (f *Formatter) EndEdge() string {
	if f.dir < 0 {
		return "left"
	}
	return "right"
}

// StartEdge returns the leading horizontal edge: "right" for RTL context
// and "left" otherwise.
func (f *Formatter) StartEdge() string {
	if f.dir < 0 {
		return "right"
	}
	return "left"
}

// Mark returns the bidi mark matching the context direction (LRM for LTR,
// RLM for RTL), or the empty string for unknown context direction.
func (f *Formatter) Mark() string {
	switch {
	case f.dir > 0:
		return LRM
	case f.dir < 0:
		return RLM
	}
	return ""
}

// MarkAfter returns the bidi mark matching the context direction if the
// direction or the exit direction of text are opposite to the context
// direction. Otherwise it returns the empty string.
func (f *Formatter) MarkAfter(text string, isHTML bool) string {
	return f.markAfterKnownDir(f.est().TextDirection(text, isHTML), text, isHTML)
}

func (f *Formatter) markAfterKnownDir(dir bidi.Direction, text string, isHTML bool) string {
	if f.dir > 0 && (dir < 0 || f.est().IsRTLExitText(text, isHTML)) {
		return LRM
	}
	if f.dir < 0 && (dir > 0 || f.est().IsLTRExitText(text, isHTML)) {
		return RLM
	}
	return ""
}

// SpanWrap formats text of unknown direction for use in HTML output of the
// context direction, so that opposite-direction text is neither garbled
// nor garbles what follows it. Text is treated as HTML.
//
// LTR text in a non-LTR context is wrapped in <span dir="ltr">, RTL text
// in a non-RTL context is wrapped in <span dir="rtl">. A mark is appended
// as by MarkAfter.
//
// Argument placeholder is accepted for signature compatibility with
// other bidi formatters. It has no effect.
func (f *Formatter) SpanWrap(text string, placeholder bool) string {
	return f.wrap(text, `<span dir="ltr">`, `<span dir="rtl">`, "</span>")
}

// UnicodeWrap is like SpanWrap, but wraps text in Unicode bidi embedding
// characters (LRE…PDF or RLE…PDF) instead of HTML mark-up. In HTML, its
// only valid use is inside of elements that do not allow mark-up, e.g. an
// option element.
//
// Argument placeholder has no effect.
func (f *Formatter) UnicodeWrap(text string, placeholder bool) string {
	return f.wrap(text, LRE, RLE, PDF)
}

func (f *Formatter) wrap(text, ltrOpen, rtlOpen, closing string) string {
	dir := f.est().TextDirection(text, true)
	reset := f.markAfterKnownDir(dir, text, true)
	if dir > 0 && f.dir <= 0 {
		text = ltrOpen + text + closing
	} else if dir < 0 && f.dir >= 0 {
		text = rtlOpen + text + closing
	}
	return text + reset
}
