package bidi

import (
	"unicode"

	"golang.org/x/text/unicode/bidi"
)

// Class is a simplified bidi character class.
type Class int8

// Character classes the estimators know about. Inert characters neither
// decide a direction nor count as neutral.
const (
	Inert Class = iota
	Neutral
	StrongLTR
	StrongRTL
)

func (c Class) String() string {
	switch c {
	case Neutral:
		return "Neutral"
	case StrongLTR:
		return "LTR"
	case StrongRTL:
		return "RTL"
	}
	return "Inert"
}

// A Classifier assigns a character class to each code-point.
type Classifier interface {
	ClassOf(rune) Class
}

// RangeTables holds the range tables of the practical classifier, indexed
// by class. Inert has no table.
var RangeTables = [...]*unicode.RangeTable{
	Neutral:   _Neutral,
	StrongLTR: _LTR,
	StrongRTL: _RTL,
}

var _LTR = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0041, 0x005a, 1},
		{0x0061, 0x007a, 1},
		{0x00c0, 0x00d6, 1},
		{0x00d8, 0x00f6, 1},
		{0x00f8, 0x02b8, 1},
		{0x0300, 0x0590, 1},
		{0x0800, 0x1fff, 1},
		{0x2c00, 0xfb1c, 1},
		{0xfdfe, 0xfe6f, 1},
		{0xfefd, 0xffff, 1},
	},
	// Supplementary planes. UTF-16 surrogates lie within U+2C00–U+FB1C.
	R32: []unicode.Range32{
		{0x10000, 0x10ffff, 1},
	},
	LatinOffset: 4,
}

var _RTL = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0591, 0x07ff, 1},
		{0xfb1d, 0xfdfd, 1},
		{0xfe70, 0xfefc, 1},
	},
}

var _Neutral = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0000, 0x0020, 1},
		{0x0021, 0x0040, 1}, // !-@
		{0x005b, 0x0060, 1}, // [-`
		{0x007b, 0x00bf, 1}, // {-¿
		{0x00d7, 0x00d7, 1},
		{0x00f7, 0x00f7, 1},
		{0x02b9, 0x02ff, 1},
		{0x2000, 0x2bff, 1},
	},
	LatinOffset: 6,
}

// ---------------------------------------------------------------------------

type practical struct{}

// Practical is the default classifier. It uses RangeTables.
var Practical Classifier = practical{}

// ClassOf returns the practical class of r. The tables are disjoint.
func (practical) ClassOf(r rune) Class {
	if r < 0x80 { // ASCII fast path
		if 'A' <= r && r <= 'Z' || 'a' <= r && r <= 'z' {
			return StrongLTR
		}
		return Neutral
	}
	switch {
	case unicode.Is(_RTL, r):
		return StrongRTL
	case unicode.Is(_LTR, r):
		return StrongLTR
	case unicode.Is(_Neutral, r):
		return Neutral
	}
	return Inert
}

// ClassOf returns the class of r as assigned by the Practical classifier.
func ClassOf(r rune) Class {
	return Practical.ClassOf(r)
}

type ucd struct{}

// UCD is a classifier derived from the Bidi_Class property of the Unicode
// Character Database. L is strong LTR, R and AL are strong RTL. Explicit
// embeddings, overrides and isolates are inert, everything else is neutral.
var UCD Classifier = ucd{}

func (ucd) ClassOf(r rune) Class {
	props, sz := bidi.LookupRune(r)
	if sz == 0 {
		return Neutral
	}
	switch props.Class() {
	case bidi.L:
		return StrongLTR
	case bidi.R, bidi.AL:
		return StrongRTL
	case bidi.LRE, bidi.RLE, bidi.LRO, bidi.RLO, bidi.PDF,
		bidi.LRI, bidi.RLI, bidi.FSI, bidi.PDI:
		return Inert
	}
	return Neutral
}
