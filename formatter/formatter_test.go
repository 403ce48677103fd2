package formatter

import (
	"testing"

	"github.com/npillmayer/bidifmt"
	"github.com/npillmayer/bidifmt/internal/tracing"
)

func TestKnownDirAttrValue(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	f := New(bidifmt.LeftToRight)
	dirs := [...]bidifmt.Direction{bidifmt.LeftToRight, bidifmt.RightToLeft, bidifmt.Neutral}
	values := [...]string{"ltr", "rtl", "ltr"} // Neutral resolves to context
	for i, dir := range dirs {
		if v := f.KnownDirAttrValue(dir); v != values[i] {
			t.Errorf("expected attr value for %v in LTR context to be %q, is %q", dir, values[i], v)
		}
	}
	f = New(bidifmt.RightToLeft)
	if v := f.KnownDirAttrValue(bidifmt.Neutral); v != "rtl" {
		t.Errorf("expected neutral to resolve to RTL context, is %q", v)
	}
	f = New(bidifmt.Unknown)
	if v := f.KnownDirAttrValue(bidifmt.Neutral); v != "ltr" {
		t.Errorf("expected neutral in unknown context to default to ltr, is %q", v)
	}
}

func TestKnownDirAttr(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	f := New(bidifmt.LeftToRight)
	if a := f.KnownDirAttr(bidifmt.LeftToRight); a != "" {
		t.Errorf("expected no attribute for matching direction, is %q", a)
	}
	if a := f.KnownDirAttr(bidifmt.RightToLeft); a != `dir="rtl"` {
		t.Errorf("expected dir=\"rtl\" for deviating direction, is %q", a)
	}
	if a := f.KnownDirAttr(bidifmt.Neutral); a != "" {
		t.Errorf("expected no attribute for neutral direction, is %q", a)
	}
	// an unknown context never matches a strong direction
	f = New(bidifmt.Unknown)
	if a := f.KnownDirAttr(bidifmt.LeftToRight); a != `dir="ltr"` {
		t.Errorf("expected dir=\"ltr\" in unknown context, is %q", a)
	}
}

func TestDirAttrEstimates(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	f := New(bidifmt.LeftToRight)
	if a := f.DirAttr("שלום", false); a != `dir="rtl"` {
		t.Errorf("expected estimated attribute dir=\"rtl\", is %q", a)
	}
	if a := f.DirAttr("hello", false); a != "" {
		t.Errorf("expected no attribute for matching text, is %q", a)
	}
	if v := f.DirAttrValue("שלום", false); v != "rtl" {
		t.Errorf("expected estimated attribute value rtl, is %q", v)
	}
}

func TestUnicodeWrap(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	f := New(bidifmt.LeftToRight)
	out := f.UnicodeWrapWithKnownDir(bidifmt.RightToLeft, "שלום", false, true)
	if out != bidifmt.RLE+"שלום"+bidifmt.PDF+bidifmt.LRM {
		t.Errorf("expected RTL text to be RLE-embedded with trailing LRM, is %q", out)
	}
	// estimation yields the same result
	if est := f.UnicodeWrap("שלום", true); est != out {
		t.Errorf("expected estimated wrap to equal known-dir wrap, is %q", est)
	}
	// matching direction passes through unchanged
	if out = f.UnicodeWrapWithKnownDir(bidifmt.LeftToRight, "hello", false, true); out != "hello" {
		t.Errorf("expected matching-direction text to pass through, is %q", out)
	}
	// with dirReset off, no mark is appended
	out = f.UnicodeWrapWithKnownDir(bidifmt.RightToLeft, "שלום", false, false)
	if out != bidifmt.RLE+"שלום"+bidifmt.PDF {
		t.Errorf("expected no trailing mark without dirReset, is %q", out)
	}
}

func TestUnicodeWrapUnknownContext(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	f := New(bidifmt.Unknown)
	// direction is declared (unknown context never matches), but no mark of
	// undefined polarity is ever emitted
	out := f.UnicodeWrapWithKnownDir(bidifmt.RightToLeft, "שלום", false, true)
	if out != bidifmt.RLE+"שלום"+bidifmt.PDF {
		t.Errorf("expected embedding without mark in unknown context, is %q", out)
	}
}

func TestWrapMarkup(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	f := New(bidifmt.LeftToRight)
	v := f.Wrap(HTMLEscape("שלום"), true)
	if s := v.(HTML).String(); s != `<span dir="rtl">שלום</span>`+bidifmt.LRM {
		t.Errorf("expected RTL markup to be span-wrapped with trailing LRM, is %q", s)
	}
	// matching direction: no container, no mark
	v = f.Wrap(HTMLEscape("hello"), true)
	if s := v.(HTML).String(); s != "hello" {
		t.Errorf("expected matching-direction markup to pass through, is %q", s)
	}
}

func TestWrapMarkupRoundTrip(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	// context matches, dirReset off: the value must come back unchanged
	f := New(bidifmt.LeftToRight)
	in := HTMLEscape("hello")
	out := f.WrapWithKnownDir(bidifmt.LeftToRight, in, false)
	if out.(HTML).String() != in.String() || out.Text() != in.Text() {
		t.Errorf("expected value to round-trip unchanged, is %q", out.(HTML).String())
	}
}

func TestWrapMarkupAlwaysWrap(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	f := New(bidifmt.RightToLeft, AlwaysWrap(true))
	// deviating direction: container with attribute
	v := f.WrapWithKnownDir(bidifmt.LeftToRight, HTMLEscape("Hello"), false)
	if s := v.(HTML).String(); s != `<span dir="ltr">Hello</span>` {
		t.Errorf("expected container with dir=\"ltr\", is %q", s)
	}
	// matching direction: container still produced, but without attribute
	v = f.WrapWithKnownDir(bidifmt.RightToLeft, HTMLEscape("שלום"), false)
	if s := v.(HTML).String(); s != "<span>שלום</span>" {
		t.Errorf("expected bare container for matching direction, is %q", s)
	}
}

func TestWrapComputesMarkFromOriginalText(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	// overall LTR but RTL exit: mark decision must look at the original
	// text, wrapping must not interfere
	f := New(bidifmt.LeftToRight)
	v := f.WrapWithKnownDir(bidifmt.LeftToRight, HTMLEscape("Hello world שלום"), true)
	if s := v.(HTML).String(); s != "Hello world שלום"+bidifmt.LRM {
		t.Errorf("expected trailing LRM after RTL exit, is %q", s)
	}
}

func TestMarkAfter(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	f := New(bidifmt.LeftToRight)
	// opposite overall direction
	if m := f.MarkAfterKnownDir(bidifmt.RightToLeft, "שלום", false); m != bidifmt.LRM {
		t.Errorf("expected LRM after opposite-direction text, is %q", m)
	}
	// matching overall direction, but opposite exit direction
	if m := f.MarkAfterKnownDir(bidifmt.LeftToRight, "Hello world שלום", false); m != bidifmt.LRM {
		t.Errorf("expected LRM after RTL-exiting text, is %q", m)
	}
	// nothing to reset
	if m := f.MarkAfterKnownDir(bidifmt.LeftToRight, "hello", false); m != "" {
		t.Errorf("expected no mark after matching text, is %q", m)
	}
	// estimated variant: 2 of 3 words are RTL
	if m := f.MarkAfter("שלום עולם world", false); m != bidifmt.LRM {
		t.Errorf("expected LRM after estimated-RTL text, is %q", m)
	}
	// RTL context mirrors the rule
	f = New(bidifmt.RightToLeft)
	if m := f.MarkAfterKnownDir(bidifmt.LeftToRight, "Hello", false); m != bidifmt.RLM {
		t.Errorf("expected RLM after LTR text in RTL context, is %q", m)
	}
	if m := f.MarkAfterKnownDir(bidifmt.RightToLeft, "שלום", false); m != "" {
		t.Errorf("expected no mark after matching RTL text, is %q", m)
	}
}

func TestMark(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	f := New(bidifmt.LeftToRight)
	if f.Mark() != bidifmt.LRM || f.Mark() != bidifmt.LRM {
		t.Errorf("expected repeated Mark() calls to return LRM")
	}
	f.SetContextDir(bidifmt.RightToLeft)
	if f.Mark() != bidifmt.RLM {
		t.Errorf("expected Mark() to follow the context change to RTL")
	}
	f.SetContextDir(bidifmt.Unknown)
	if f.Mark() != "" {
		t.Errorf("expected no mark for unknown context")
	}
}

func TestEdges(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	f := New(bidifmt.LeftToRight)
	if f.StartEdge() != "left" || f.EndEdge() != "right" {
		t.Errorf("expected LTR context edges left/right, are %s/%s", f.StartEdge(), f.EndEdge())
	}
	f.SetContextDir(bidifmt.RightToLeft)
	if f.StartEdge() != "right" || f.EndEdge() != "left" {
		t.Errorf("expected RTL context edges right/left, are %s/%s", f.StartEdge(), f.EndEdge())
	}
	f.SetContextDir(bidifmt.Unknown)
	if f.StartEdge() != "left" || f.EndEdge() != "right" {
		t.Errorf("expected unknown context to behave as LTR, are %s/%s", f.StartEdge(), f.EndEdge())
	}
}

func TestConfigAccessors(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	f := New(bidifmt.Neutral, AlwaysWrap(true))
	if f.ContextDir() != bidifmt.Unknown {
		t.Errorf("expected neutral context to read back as unknown, is %v", f.ContextDir())
	}
	if !f.AlwaysWraps() {
		t.Errorf("expected AlwaysWrap option to be set")
	}
	f.SetAlwaysWrap(false)
	if f.AlwaysWraps() {
		t.Errorf("expected AlwaysWrap to be cleared")
	}
}
