package bidi

import (
	"strings"
	"unicode/utf8"
)

// RTLDetectionThreshold is the ratio of RTL words a text has to exceed to be
// considered RTL by DetectRTLDirectionality.
const RTLDetectionThreshold = 0.40

// urlPrefix marks text as neutral. URLs are considered to be neutral.
const urlPrefix = "http://"

// Estimator estimates text directionality, using a fixed Classifier.
// An Estimator is immutable and may be used concurrently.
type Estimator struct {
	classifier Classifier
}

// NewEstimator creates an estimator for classifier c. If c is nil, the
// Practical classifier is used.
func NewEstimator(c Classifier) *Estimator {
	if c == nil {
		c = Practical
	}
	return &Estimator{classifier: c}
}

// Default is the estimator used by the package level functions.
var Default = NewEstimator(Practical)

// IsRTLText is true if the first character of s with strong directionality
// is an RTL character.
func (e *Estimator) IsRTLText(s string) bool {
	for _, r := range s {
		switch e.classifier.ClassOf(r) {
		case StrongLTR:
			return false
		case StrongRTL:
			return true
		}
	}
	return false
}

// IsNeutralText is true if every character of s is neutral, or if s is
// an http URL.
func (e *Estimator) IsNeutralText(s string) bool {
	if strings.HasPrefix(s, urlPrefix) {
		return true
	}
	for _, r := range s {
		if e.classifier.ClassOf(r) != Neutral {
			return false
		}
	}
	return true
}

// TextDirection estimates the directionality of text from its first
// character with strong directionality. Text which is neutral throughout
// (see IsNeutralText) has Unknown direction.
func (e *Estimator) TextDirection(text string, isHTML bool) Direction {
	text = StripHTML(text, isHTML)
	if e.IsRTLText(text) {
		return RTL
	}
	if e.IsNeutralText(text) {
		return Unknown
	}
	return LTR
}

// ExitDirection returns the direction of the last character of text with
// strong directionality, or Unknown if there is none.
func (e *Estimator) ExitDirection(text string, isHTML bool) Direction {
	text = StripHTML(text, isHTML)
	for len(text) > 0 {
		r, size := utf8.DecodeLastRuneInString(text)
		switch e.classifier.ClassOf(r) {
		case StrongLTR:
			return LTR
		case StrongRTL:
			return RTL
		}
		text = text[:len(text)-size]
	}
	return Unknown
}

// IsLTRExitText is true if the last strongly directional character of text
// is LTR.
func (e *Estimator) IsLTRExitText(text string, isHTML bool) bool {
	return e.ExitDirection(text, isHTML) == LTR
}

// IsRTLExitText is true if the last strongly directional character of text
// is RTL.
func (e *Estimator) IsRTLExitText(text string, isHTML bool) bool {
	return e.ExitDirection(text, isHTML) == RTL
}

// RTLWordRatio returns the ratio of RTL words among all words with
// directionality. Words are separated by U+0020 SPACE only; other kinds of
// white space are part of a word. Neutral words are not counted. The ratio
// is 0 for text without directional words.
func (e *Estimator) RTLWordRatio(text string) float64 {
	var rtlCount, totalCount int
	for rest, more := text, true; more; {
		var token string
		token, rest, more = strings.Cut(rest, " ")
		if e.IsRTLText(token) {
			rtlCount++
			totalCount++
		} else if !e.IsNeutralText(token) {
			totalCount++
		}
	}
	if totalCount == 0 {
		return 0
	}
	return float64(rtlCount) / float64(totalCount)
}

// DetectRTLDirectionality is true if text should be laid out in RTL
// direction as a whole, i.e. if its RTLWordRatio exceeds
// RTLDetectionThreshold.
func (e *Estimator) DetectRTLDirectionality(text string, isHTML bool) bool {
	text = StripHTML(text, isHTML)
	return e.RTLWordRatio(text) > RTLDetectionThreshold
}

// --- Package level functions -----------------------------------------------

// EstimateTextDirection estimates the directionality of text, using the
// Default estimator. See Estimator.TextDirection.
func EstimateTextDirection(text string, isHTML bool) Direction {
	return Default.TextDirection(text, isHTML)
}

// EstimateExitDirection estimates the exit directionality of text, using the
// Default estimator. See Estimator.ExitDirection.
func EstimateExitDirection(text string, isHTML bool) Direction {
	return Default.ExitDirection(text, isHTML)
}

// IsLTRExitText checks the exit directionality of text for LTR.
func IsLTRExitText(text string, isHTML bool) bool {
	return Default.IsLTRExitText(text, isHTML)
}

// IsRTLExitText checks the exit directionality of text for RTL.
func IsRTLExitText(text string, isHTML bool) bool {
	return Default.IsRTLExitText(text, isHTML)
}

// IsRTLText checks the first strongly directional character of s for RTL.
func IsRTLText(s string) bool {
	return Default.IsRTLText(s)
}

// IsNeutralText checks if s consists of neutral characters only.
func IsNeutralText(s string) bool {
	return Default.IsNeutralText(s)
}

// RTLWordRatio returns the ratio of RTL words in text.
func RTLWordRatio(text string) float64 {
	return Default.RTLWordRatio(text)
}

// DetectRTLDirectionality checks if text should be laid out RTL as a whole.
func DetectRTLDirectionality(text string, isHTML bool) bool {
	return Default.DetectRTLDirectionality(text, isHTML)
}
