/*
Package wordbreak inserts word break opportunities into long runs of text.

Text which does not contain any spaces for a long stretch (user names,
URLs, hash values) may overflow its container. Insert scans the text,
counting characters since the last space, and inserts a break marker
whenever the count reaches a maximum. HTML tags are skipped, and an HTML
entity counts as a single character; breaks are never inserted inside
either of them.

Markers

Renderers disagree about the mark-up of a word break opportunity. The
marker is chosen by a Target, which is configuration of the caller:

  Generic        <wbr>
  LegacyWebKit   <wbr></wbr>
  LegacyOpera    &shy;   (renders a visible hyphen at breaks)

Insert is safe for concurrent use.
*/
package wordbreak

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Target selects the word break marker for a rendering environment.
type Target int8

// Targets for word break markers.
const (
	Generic Target = iota
	LegacyWebKit
	LegacyOpera
)

var markers = [...]string{
	Generic:      "<wbr>",
	LegacyWebKit: "<wbr></wbr>",
	LegacyOpera:  "&shy;",
}

var targetNames = [...]string{
	Generic:      "generic",
	LegacyWebKit: "legacy-webkit",
	LegacyOpera:  "legacy-opera",
}

// Marker returns the word break marker for target t. Unknown targets use
// the marker of Generic.
func (t Target) Marker() string {
	if t < 0 || int(t) >= len(markers) {
		return markers[Generic]
	}
	return markers[t]
}

func (t Target) String() string {
	if t < 0 || int(t) >= len(targetNames) {
		return fmt.Sprintf("Target(%d)", int8(t))
	}
	return targetNames[t]
}

// ParseTarget returns the target for a name as used in configuration,
// i.e. "generic", "legacy-webkit" or "legacy-opera".
func ParseTarget(name string) (Target, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Generic, nil
	}
	for t, n := range targetNames {
		if n == name {
			return Target(t), nil
		}
	}
	return Generic, fmt.Errorf("unknown word break target %q", name)
}

// Inserter inserts word breaks with a fixed marker.
type Inserter struct {
	target Target
}

// New creates an inserter for target t.
func New(t Target) *Inserter {
	return &Inserter{target: t}
}

// Target returns the target of the inserter.
func (ins *Inserter) Target() Target {
	return ins.target
}

// Insert inserts word breaks into text, see package function Insert.
func (ins *Inserter) Insert(text string, maxChars int) string {
	return Insert(text, maxChars, ins.target)
}

// Insert inserts target's word break marker into text, such that there
// are never more than maxChars characters between breaks. Spaces count as
// breaks. HTML tags do not count as characters, and an entity counts as a
// single character.
//
// Insert is a single pass over the runes of text. A character is a rune, so
// a character outside the Basic Multilingual Plane counts once, not as the
// two UTF-16 code units a browser-side counter would see. Insert does not
// parse HTML: a '&' not terminated by ';' before the next space or '<' is a
// plain character after all. For maxChars <= 0 a marker precedes every rune
// but a space, including runes of tags and entities.
func Insert(text string, maxChars int, target Target) string {
	marker := target.Marker()
	buf := borrowBuffer()
	defer releaseBuffer(buf)
	var (
		inTag         bool // inside an HTML tag
		maybeInEntity bool // possibly inside an HTML entity
		count         int  // number of characters since last break
		flush         int  // index of first byte not yet flushed to buf
	)
	for i, r := range text {
		// insert a break when max is hit, if not a space next
		if count >= maxChars && r != ' ' {
			buf.WriteString(text[flush:i])
			buf.WriteString(marker)
			flush = i
			count = 0
		}
		if inTag {
			if r == '>' {
				inTag = false
			}
		} else if maybeInEntity {
			switch r {
			case ';': // end of entity, which counts as one character
				maybeInEntity = false
				count++
			case '<': // not an entity after all, but a tag
				maybeInEntity = false
				inTag = true
			case ' ': // not an entity after all
				maybeInEntity = false
				count = 0
			}
		} else {
			switch r {
			case '<':
				inTag = true
			case '&':
				maybeInEntity = true
			case ' ':
				count = 0
			default:
				count++
			}
		}
	}
	if buf.Len() == 0 { // no break inserted
		return text
	}
	buf.WriteString(text[flush:])
	return buf.String()
}

// --- Buffer pool -----------------------------------------------------------

// Output buffers are short-lived. To avoid frequent allocation of large
// buffers we will pool them.
type bufferPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalBufferPool *bufferPool

func init() {
	globalBufferPool = &bufferPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return new(bytes.Buffer), nil
		})
	globalBufferPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalBufferPool.opool = pool.NewObjectPool(globalBufferPool.ctx, factory, config)
}

func borrowBuffer() *bytes.Buffer {
	o, err := globalBufferPool.opool.BorrowObject(globalBufferPool.ctx)
	if err != nil {
		T().Errorf("wordbreak cannot borrow buffer: %v", err)
		return new(bytes.Buffer)
	}
	return o.(*bytes.Buffer)
}

func releaseBuffer(buf *bytes.Buffer) {
	buf.Reset()
	_ = globalBufferPool.opool.ReturnObject(globalBufferPool.ctx, buf)
}
