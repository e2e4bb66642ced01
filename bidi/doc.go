/*
Package bidi estimates the directionality of text.

It is not a conforming implementation of the Unicode UAX#9 Bidirectional
Algorithm, and it does not try to be one. Templates usually need to answer
just two questions about a piece of text: which direction does it start
in, and which direction does it leave the renderer in. Both questions are
answered by scanning for characters of strong directionality.

Character Classes

The default classifier uses a practical set of code-point ranges for
strong LTR, strong RTL and neutral (or weak) characters. The ranges are
not theoretically correct in terms of the Unicode standard. They have
been chosen for performance, and detection quality has been calibrated
against them, so they must not be "fixed".

  LTR:      A-Z a-z U+00C0–U+00D6 U+00D8–U+00F6 U+00F8–U+02B8 U+0300–U+0590
            U+0800–U+1FFF U+2C00–U+FB1C U+FDFE–U+FE6F U+FEFD–U+FFFF
  RTL:      U+0591–U+07FF U+FB1D–U+FDFD U+FE70–U+FEFC
  Neutral:  U+0000–U+0040 U+005B–U+0060 U+007B–U+00BF U+00D7 U+00F7
            U+02B9–U+02FF U+2000–U+2BFF

Code-points beyond the Basic Multilingual Plane are classified as LTR.
Clients wanting classes derived from the Unicode Character Database may
create an Estimator with classifier UCD.

HTML

Text may be flagged as HTML. Tags and entities are then replaced by a
single space before analysis, so that the LTR characters of mark-up do
not influence the result. This is a textual replace, not a parser:
quotes inside tags and malformed entities are handled imprecisely.

BSD License

Copyright (c) 2021, the soyutils authors

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package bidi

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}
