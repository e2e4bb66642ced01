package wordbreak

import (
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestInsert(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	inputs := []struct {
		text string
		max  int
		out  string
	}{
		{"", 4, ""},
		{"abc", 4, "abc"},
		{"abcd", 4, "abcd"},
		{"aaaaaaaaaa", 4, "aaaa<wbr>aaaa<wbr>aa"},
		{"aaaa aaaa", 4, "aaaa aaaa"},         // spaces reset the count
		{"aaaa  aaaaa", 4, "aaaa  aaaa<wbr>a"}, // no break before a space
		{"aa<b>aaaa</b>aa", 4, "aa<b>aa<wbr>aa</b>aa"},
		{"<a href=\"xxxxxxxxxxxx\">x</a>", 4, "<a href=\"xxxxxxxxxxxx\">x</a>"},
		{"aaa&amp;aaa", 4, "aaa&amp;<wbr>aaa"}, // entity counts as one char
		{"&amp;&amp;&amp;&amp;&amp;", 2, "&amp;&amp;<wbr>&amp;&amp;<wbr>&amp;"},
		{"a&b c", 1, "a<wbr>&b c"}, // '&' without ';' is no entity
		{"a&b<i>cc</i>", 1, "a<wbr>&b<i>c<wbr>c<wbr></i>"}, // ... nor is it with a tag
		{"אבגדה", 2, "אב<wbr>גד<wbr>ה"},
	}
	for i, input := range inputs {
		if s := Insert(input.text, input.max, Generic); s != input.out {
			t.Errorf("test #%d: expected %q with max %d to be %q, is %q", i,
				input.text, input.max, input.out, s)
		}
	}
}

func TestInsertNonPositiveMax(t *testing.T) {
	if s := Insert("ab c", 0, Generic); s != "<wbr>a<wbr>b <wbr>c" {
		t.Errorf("expected a break before every non-space char, have %q", s)
	}
	if s := Insert("ab", -3, Generic); s != "<wbr>a<wbr>b" {
		t.Errorf("expected a break before every char for negative max, have %q", s)
	}
}

func TestTargets(t *testing.T) {
	inputs := []struct {
		target Target
		out    string
	}{
		{Generic, "aaa<wbr>aaa"},
		{LegacyWebKit, "aaa<wbr></wbr>aaa"},
		{LegacyOpera, "aaa&shy;aaa"},
	}
	for _, input := range inputs {
		if s := New(input.target).Insert("aaaaaa", 3); s != input.out {
			t.Errorf("target %s: expected %q, is %q", input.target, input.out, s)
		}
	}
	if Target(42).Marker() != "<wbr>" {
		t.Errorf("expected unknown target to use generic marker")
	}
}

func TestParseTarget(t *testing.T) {
	for _, target := range []Target{Generic, LegacyWebKit, LegacyOpera} {
		parsed, err := ParseTarget(strings.ToUpper(target.String()))
		if err != nil || parsed != target {
			t.Errorf("expected %s to parse, have %s, %v", target, parsed, err)
		}
	}
	if target, err := ParseTarget(""); err != nil || target != Generic {
		t.Errorf("expected empty target name to be generic")
	}
	if _, err := ParseTarget("netscape"); err == nil {
		t.Errorf("expected unknown target name to be rejected")
	}
}

func TestInsertConcurrently(t *testing.T) {
	text := strings.Repeat("x", 100)
	want := Insert(text, 10, Generic)
	var wg sync.WaitGroup
	for n := 0; n < 16; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := 0; k < 50; k++ {
				if s := Insert(text, 10, Generic); s != want {
					t.Errorf("concurrent insert differs: %q", s)
					return
				}
			}
		}()
	}
	wg.Wait()
	if strings.Count(want, "<wbr>") != 9 {
		t.Errorf("expected 9 breaks, have %q", want)
	}
}

// span is a tag or an entity of a generated text, from its opening '<' or
// '&' to its closing '>' or ';'.
type span struct{ start, end int }

var tokens = []string{"a", "bc", "xyz", "\u05d0\u05d1", " ", "<i>", "</i>",
	`<a href="xxxxxxxx">`, "&amp;", "&#1488;", "<br/>"}

func randomText(rnd *rand.Rand) (string, []span) {
	var b strings.Builder
	var spans []span
	for n := rnd.Intn(30); n >= 0; n-- {
		tok := tokens[rnd.Intn(len(tokens))]
		if tok[0] == '<' || tok[0] == '&' {
			spans = append(spans, span{b.Len(), b.Len() + len(tok) - 1})
		}
		b.WriteString(tok)
	}
	return b.String(), spans
}

func TestNoBreakInsideTagsOrEntities(t *testing.T) {
	rnd := rand.New(rand.NewSource(4711))
	for i := 0; i < 500; i++ {
		text, spans := randomText(rnd)
		maxChars := 1 + rnd.Intn(5)
		out := Insert(text, maxChars, Generic)
		var plain strings.Builder
		for j := 0; j < len(out); {
			if strings.HasPrefix(out[j:], "<wbr>") {
				pos := plain.Len()
				for _, sp := range spans {
					if sp.start < pos && pos <= sp.end {
						t.Fatalf("break inside %q of %q (max %d): %q", text[sp.start:sp.end+1],
							text, maxChars, out)
					}
				}
				j += len("<wbr>")
				continue
			}
			plain.WriteByte(out[j])
			j++
		}
		if plain.String() != text {
			t.Fatalf("expected %q to survive breaking, have %q", text, plain.String())
		}
	}
}
