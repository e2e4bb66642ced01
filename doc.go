/*
Package soyutils is about the runtime helpers templates need for safe,
direction-aware HTML output.

Description

Templates composing HTML from fragments have two recurring problems.
The first is trust: a fragment which is fine to print verbatim in one
context (an HTML body) may be an injection vector in another (a script,
an attribute, a URI). The second is directionality: a fragment of Hebrew
or Arabic text inserted into an English page (or vice versa) may garble
the layout of the fragment and of the text following it, as the bidi
algorithm of the renderer resolves neutral characters against the wrong
context.

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

Contents

Functionality is split up into sub-packages.

Package bidi estimates the directionality of a piece of text. It does not
implement the Unicode Bidirectional Algorithm (UAX#9); instead it uses a
practical heuristic: the first character with strong directionality
determines the direction of a text, the last one determines its exit
direction. Character classes are simplified ranges of code-points,
chosen for speed rather than for theoretical correctness.

Package bidi/formatter wraps text for display in a context of fixed
directionality, either with HTML markup (span elements carrying a dir
attribute) or with Unicode bidi control characters.

Package sanitized models typed strings. An HTML string "a<b>c" is
semantically distinct from the plain text string "a<b>c", and templates
may take that distinction into account. Typed strings are created by
functions with deliberately alarming names, so that every place where
trust is asserted may be found and audited.

Package wordbreak inserts word break opportunities into long runs of
text without breaks, leaving HTML tags and entities intact.

Concurrency

All of the functions are pure and may be called concurrently. Formatters
and sanitized content values are immutable.
*/
package soyutils
