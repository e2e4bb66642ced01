package bidi

import (
	"strings"
	"testing"
	"unicode"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const (
	hebrew = "\u05d0\u05d1\u05d2"       // alef bet gimel
	arabic = "\u0633\u0644\u0627\u0645" // salam
)

func TestClasses(t *testing.T) {
	chars := [...]rune{
		'A',     // LATIN CAPITAL LETTER A       => LTR
		'z',     // LATIN SMALL LETTER Z         => LTR
		'7',     // DIGIT SEVEN                  => Neutral
		' ',     // SPACE                        => Neutral
		'@',     // COMMERCIAL AT                => Neutral
		'[',     // LEFT SQUARE BRACKET          => Neutral
		0x00d7,  // MULTIPLICATION SIGN          => Neutral
		0x00e9,  // LATIN SMALL LETTER E ACUTE   => LTR
		0x02b9,  // MODIFIER LETTER PRIME        => Neutral
		0x0590,  // end of LTR range             => LTR
		0x0591,  // HEBREW ACCENT ETNAHTA        => RTL
		0x05d0,  // HEBREW LETTER ALEF           => RTL
		0x0633,  // ARABIC LETTER SEEN           => RTL
		0x07ff,  // end of RTL range             => RTL
		0x0800,  // SAMARITAN LETTER ALAF        => LTR
		0x200e,  // LEFT-TO-RIGHT MARK           => Neutral
		0x4e16,  // CJK ideograph                => LTR
		0xfb1d,  // HEBREW LETTER YOD WITH HIRIQ => RTL
		0xfdfe,  // start of LTR range           => LTR
		0xfe70,  // ARABIC FATHATAN ISOLATED     => RTL
		0xfefd,  // start of LTR range           => LTR
		0x1f600, // GRINNING FACE                => LTR
	}
	classes := [...]Class{StrongLTR, StrongLTR, Neutral, Neutral, Neutral, Neutral,
		Neutral, StrongLTR, Neutral, StrongLTR, StrongRTL, StrongRTL, StrongRTL,
		StrongRTL, StrongLTR, Neutral, StrongLTR, StrongRTL, StrongLTR, StrongRTL,
		StrongLTR, StrongLTR}
	for i, r := range chars {
		if c := ClassOf(r); c != classes[i] {
			t.Errorf("expected class of %#U to be %s, is %s", r, classes[i], c)
		}
	}
}

func TestTablesAreDisjoint(t *testing.T) {
	for r := rune(0); r <= 0xffff; r++ {
		n := 0
		for _, table := range RangeTables {
			if table != nil && contains(table.R16, r) {
				n++
			}
		}
		if n != 1 {
			t.Fatalf("expected %#U to be in exactly 1 table, is in %d", r, n)
		}
	}
}

func TestUCDClassifierAgrees(t *testing.T) {
	for _, r := range "Hello, World! " + hebrew + arabic + "Àé" {
		if p, u := Practical.ClassOf(r), UCD.ClassOf(r); p != u {
			t.Errorf("classifiers disagree for %#U: practical=%s, ucd=%s", r, p, u)
		}
	}
	if c := UCD.ClassOf(0x2067); c != Inert { // RIGHT-TO-LEFT ISOLATE
		t.Errorf("expected RLI to be inert for UCD, is %s", c)
	}
}

func TestStripHTML(t *testing.T) {
	inputs := []struct {
		in, out string
	}{
		{"<b>hello</b>", " hello "},
		{"a &amp; b", "a   b"},
		{`<a href="x">` + hebrew + "</a>", " " + hebrew + " "},
		{"x < y", "x < y"},
		{"AT&T", "AT&T"},
		{`<a title="a>b">c</a>`, ` b">c `}, // quotes are not respected
	}
	for _, input := range inputs {
		if s := StripHTML(input.in, true); s != input.out {
			t.Errorf("expected %q to be stripped to %q, is %q", input.in, input.out, s)
		}
		if s := StripHTML(input.in, false); s != input.in {
			t.Errorf("expected %q to be left alone when not HTML, is %q", input.in, s)
		}
	}
}

func TestTextDirection(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	inputs := []struct {
		text   string
		isHTML bool
		dir    Direction
	}{
		{"hello", false, LTR},
		{hebrew, false, RTL},
		{"", false, Unknown},
		{"123 456.78 !?", false, Unknown},
		{"http://example.com/" + hebrew, false, Unknown},
		{"https://example.com/", false, LTR},
		{"12 " + hebrew + " abc", false, RTL},
		{"12 abc " + hebrew, false, LTR},
		{"<b>" + arabic + "</b>", true, RTL},
		{"<b>" + arabic + "</b>", false, LTR},
		{"&nbsp;" + hebrew, true, RTL},
		{"&nbsp;", true, Unknown},
		{"\u200e", false, Unknown},
	}
	for i, input := range inputs {
		if dir := EstimateTextDirection(input.text, input.isHTML); dir != input.dir {
			t.Errorf("test #%d: expected direction of %q to be %s, is %s", i, input.text,
				input.dir, dir)
		}
	}
}

func TestNeutralTextIsUnknown(t *testing.T) {
	var b strings.Builder
	for _, rng := range _Neutral.R16 {
		for r := rune(rng.Lo); r <= rune(rng.Hi); r += 97 {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if dir := EstimateTextDirection(s, false); dir != Unknown {
		t.Errorf("expected neutral text to have unknown direction, is %s", dir)
	}
}

func TestExitDirection(t *testing.T) {
	inputs := []struct {
		text   string
		isHTML bool
		dir    Direction
	}{
		{"hello", false, LTR},
		{hebrew, false, RTL},
		{"hello " + hebrew, false, RTL},
		{hebrew + " hello!", false, LTR},
		{hebrew + " 123.", false, RTL},
		{"...", false, Unknown},
		{"", false, Unknown},
		{hebrew + "<br>", true, RTL},
		{hebrew + "<br>", false, LTR},
		{arabic + " &lt;&gt;", true, RTL},
		{arabic + " &lt;b&gt;", true, LTR},
	}
	for i, input := range inputs {
		if dir := EstimateExitDirection(input.text, input.isHTML); dir != input.dir {
			t.Errorf("test #%d: expected exit direction of %q to be %s, is %s", i,
				input.text, input.dir, dir)
		}
		ltr, rtl := IsLTRExitText(input.text, input.isHTML), IsRTLExitText(input.text, input.isHTML)
		if ltr != (input.dir == LTR) || rtl != (input.dir == RTL) {
			t.Errorf("test #%d: exit predicates inconsistent: ltr=%v, rtl=%v", i, ltr, rtl)
		}
	}
}

func TestRTLWordRatio(t *testing.T) {
	inputs := []struct {
		text  string
		ratio float64
	}{
		{"", 0},
		{"123 !!! ...", 0},
		{"hello world", 0},
		{hebrew, 1},
		{hebrew + " world", 0.5},
		{hebrew + " " + arabic + " 42 hello", 2.0 / 3.0},
		{hebrew + "\tworld", 1}, // tab does not separate words
		{"http://a.b " + hebrew, 1},
	}
	for i, input := range inputs {
		if r := RTLWordRatio(input.text); r != input.ratio {
			t.Errorf("test #%d: expected RTL word ratio of %q to be %.3f, is %.3f", i,
				input.text, input.ratio, r)
		}
	}
}

func TestDetectRTLDirectionality(t *testing.T) {
	if DetectRTLDirectionality("hello world and more", false) {
		t.Errorf("expected English text not to be detected as RTL")
	}
	if !DetectRTLDirectionality(hebrew+" "+arabic+" hello", false) {
		t.Errorf("expected text with 2/3 of RTL words to be detected as RTL")
	}
	// 2 of 5 words is exactly at the threshold, which has to be exceeded
	if DetectRTLDirectionality(hebrew+" "+arabic+" a b c", false) {
		t.Errorf("expected text with 40%% of RTL words not to be detected as RTL")
	}
	// mark-up would add LTR words
	html := `<span class="x">` + hebrew + `</span> <b>` + arabic + `</b>`
	if !DetectRTLDirectionality(html, true) {
		t.Errorf("expected HTML with RTL text to be detected as RTL")
	}
}

func TestUCDEstimator(t *testing.T) {
	e := NewEstimator(UCD)
	if dir := e.TextDirection("\u2067"+hebrew, false); dir != RTL {
		t.Errorf("expected UCD estimator to skip over isolate, have %s", dir)
	}
	if !e.IsNeutralText("42") {
		t.Errorf("expected digits to be neutral for UCD estimator")
	}
	if NewEstimator(nil).classifier != Practical {
		t.Errorf("expected nil classifier to default to Practical")
	}
}

func TestToDir(t *testing.T) {
	if ToDir(17) != LTR || ToDir(-3) != RTL || ToDir(0) != Unknown {
		t.Errorf("numeric directions not canonicalized correctly")
	}
	if ToDirBool(true) != RTL || ToDirBool(false) != LTR {
		t.Errorf("boolean directions not canonicalized correctly")
	}
	for _, s := range []string{"LTR", " rtl", "auto", "unknown"} {
		if _, err := ParseDirection(s); err != nil {
			t.Errorf("expected %q to parse, got %v", s, err)
		}
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Errorf("expected error for invalid direction")
	}
	if RTL.Attr() != "rtl" || Unknown.Attr() != "" || LTR.String() != "ltr" {
		t.Errorf("unexpected direction names")
	}
}

func TestLocaleDirection(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	locales := map[string]Direction{
		"en-US":   LTR,
		"de":      LTR,
		"ja-JP":   LTR,
		"he":      RTL,
		"ar-EG":   RTL,
		"fa-IR":   RTL,
		"ur":      RTL,
		"az":      LTR,
		"az-Arab": RTL,
		"sr-Latn": LTR,
		"!!":      Unknown,
	}
	for locale, dir := range locales {
		if d := LocaleDirection(locale); d != dir {
			t.Errorf("expected direction of locale %q to be %s, is %s", locale, dir, d)
		}
	}
	t.Logf("user environment has locale %q", EnvironmentLocale())
}

func contains(ranges []unicode.Range16, r rune) bool {
	for _, rng := range ranges {
		if rune(rng.Lo) <= r && r <= rune(rng.Hi) {
			return true
		}
	}
	return false
}

func TestRTLWordRatioDoesNotAllocate(t *testing.T) {
	text := hebrew + " abc " + arabic + " 123  x"
	if n := testing.AllocsPerRun(100, func() { RTLWordRatio(text) }); n != 0 {
		t.Errorf("expected word ratio to be allocation-free, has %v allocs", n)
	}
}
