/*
Package sanitized defines typed strings for templates.

An HTML string "a<b>c" is semantically distinct from the plain text string
"a<b>c", and templates can take that distinction into account. Values of
type Content pair a string with exactly one ContentKind, which names the
context the string is safe to be printed in without escaping.

Ordaining

There is no public constructor for Content. Typed strings are created by
functions named OrdainSanitized…, e.g.

  c := sanitized.OrdainSanitizedHTML("<b>x</b>")

Ordaining takes a leap of faith: the ordain functions perform no validation
of safety whatsoever. Calling one is a trust assertion by the caller, not
a sanitizer. If you would be surprised to find that a sanitizer produced
the content (e.g. because it runs code or fetches bad URLs), don't ordain
it. Limit calls of the ordain functions to a handful of files where they
can be audited carefully.

MarkUnsanitizedText is different: it asserts nothing and is always safe to
call. Text content is safe to print as text, but nowhere else, and the
NoAutoescape directive rejects it.

For content of unknown origin, use EscapeHTML or CleanHTML instead, which
perform actual escaping or sanitizing before asserting kind HTML.

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
package sanitized

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}
