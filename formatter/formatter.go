package formatter

import (
	"strings"

	"github.com/npillmayer/bidifmt"
)

// Formatter decides how to safely embed text of known or estimated direction
// into a surrounding context of a given direction. It is a small value type;
// creating one per rendering context is cheap.
//
// All formatting calls are read-only and may be issued concurrently. The two
// setters mutate the formatter and must be synchronized by the caller if an
// instance is shared between goroutines.
type Formatter struct {
	contextDir bidifmt.Direction
	alwaysWrap bool
}

// Option configures a Formatter.
type Option func(f *Formatter)

// AlwaysWrap makes every wrapping call produce a container, even when no
// dir-attribute has to be declared. Wrapping unconditionally keeps the
// element structure of repeated render calls stable, regardless of the
// direction of the rendered data.
func AlwaysWrap(b bool) Option {
	return func(f *Formatter) {
		f.alwaysWrap = b
	}
}

// New creates a Formatter for a surrounding context of the given direction.
// A Neutral (= Unknown) context direction means the context is not known;
// such a formatter declares directions unconditionally and never emits
// directional marks.
func New(contextDir bidifmt.Direction, opts ...Option) *Formatter {
	f := &Formatter{contextDir: contextDir}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// ContextDir returns the context direction. Neutral means unknown.
func (f *Formatter) ContextDir() bidifmt.Direction {
	return f.contextDir
}

// SetContextDir changes the context direction. A Neutral argument sets the
// context to unknown.
func (f *Formatter) SetContextDir(dir bidifmt.Direction) {
	f.contextDir = dir
}

// AlwaysWraps returns whether the formatter wraps unconditionally.
func (f *Formatter) AlwaysWraps() bool {
	return f.alwaysWrap
}

// SetAlwaysWrap changes the unconditional-wrapping flag.
func (f *Formatter) SetAlwaysWrap(b bool) {
	f.alwaysWrap = b
}

// --- Attributes ------------------------------------------------------------

// KnownDirAttrValue returns the value of a dir-attribute declaring dir.
// Neutral resolves to the context direction, and an unknown context defaults
// to "ltr". The result is always exactly "ltr" or "rtl".
func (f *Formatter) KnownDirAttrValue(dir bidifmt.Direction) string {
	if dir == bidifmt.Neutral {
		dir = f.contextDir
	}
	if dir == bidifmt.RightToLeft {
		return "rtl"
	}
	return "ltr"
}

// DirAttrValue estimates the direction of text and returns the value of a
// dir-attribute declaring it.
func (f *Formatter) DirAttrValue(text string, isMarkup bool) string {
	return f.KnownDirAttrValue(bidifmt.EstimateDirection(text, isMarkup))
}

// KnownDirAttr returns a complete dir-attribute declaring dir, or the empty
// string when no declaration is needed: for dir matching the context
// direction, and for Neutral dir.
func (f *Formatter) KnownDirAttr(dir bidifmt.Direction) string {
	if dir == f.contextDir {
		return ""
	}
	switch dir {
	case bidifmt.RightToLeft:
		return `dir="rtl"`
	case bidifmt.LeftToRight:
		return `dir="ltr"`
	}
	return ""
}

// DirAttr estimates the direction of text and returns a complete
// dir-attribute declaring it, or the empty string (see KnownDirAttr).
func (f *Formatter) DirAttr(text string, isMarkup bool) string {
	return f.KnownDirAttr(bidifmt.EstimateDirection(text, isMarkup))
}

// --- Wrapping --------------------------------------------------------------

// Wrap estimates the direction of v's text content and wraps v like
// WrapWithKnownDir.
func (f *Formatter) Wrap(v Markup, dirReset bool) Markup {
	return f.WrapWithKnownDir(bidifmt.EstimateDirection(v.Text(), true), v, dirReset)
}

// WrapWithKnownDir wraps v in a container declaring dir whenever dir is a
// strong direction deviating from the context direction. A formatter
// configured with AlwaysWrap produces a container unconditionally, but still
// declares the direction only on deviation. With dirReset set, a directional
// mark is appended to the result where the reset rule (see
// MarkAfterKnownDir) demands one; the rule is applied to v's original text
// content, not to the wrapped value.
func (f *Formatter) WrapWithKnownDir(dir bidifmt.Direction, v Markup, dirReset bool) Markup {
	text := v.Text()
	declare := dir != bidifmt.Neutral && dir != f.contextDir
	if declare || f.alwaysWrap {
		attr := ""
		if declare {
			if dir == bidifmt.RightToLeft {
				attr = "rtl"
			} else {
				attr = "ltr"
			}
		}
		tracer().P("dir", dir).Debugf("wrapping markup in container, attr=%q", attr)
		v = v.WrapInContainer(attr)
	}
	if mark := f.markAfter(text, dir, true, dirReset); mark != "" {
		v = v.Append(mark)
	}
	return v
}

// UnicodeWrap estimates the direction of text and wraps it like
// UnicodeWrapWithKnownDir.
func (f *Formatter) UnicodeWrap(text string, dirReset bool) string {
	return f.UnicodeWrapWithKnownDir(bidifmt.EstimateDirection(text, false), text, false, dirReset)
}

// UnicodeWrapWithKnownDir wraps text between invisible embedding characters
// declaring dir, terminated by a pop character, whenever dir is a strong
// direction deviating from the context direction. Otherwise text is passed
// through unchanged. With dirReset set, a directional mark is appended where
// the reset rule (see MarkAfterKnownDir) demands one.
//
// No escaping of any kind is performed. Callers embedding the result into
// markup are responsible for escaping it, before or after wrapping; the
// inserted characters are unaffected by HTML escaping.
func (f *Formatter) UnicodeWrapWithKnownDir(dir bidifmt.Direction, text string, isMarkup bool, dirReset bool) string {
	var b strings.Builder
	if dir != bidifmt.Neutral && dir != f.contextDir {
		tracer().P("dir", dir).Debugf("embedding text run of length %d", len(text))
		if dir == bidifmt.RightToLeft {
			b.WriteString(bidifmt.RLE)
		} else {
			b.WriteString(bidifmt.LRE)
		}
		b.WriteString(text)
		b.WriteString(bidifmt.PDF)
	} else {
		b.WriteString(text)
	}
	b.WriteString(f.markAfter(text, dir, isMarkup, dirReset))
	return b.String()
}

// --- Directional marks ------------------------------------------------------

// MarkAfter estimates the direction of text and returns a trailing
// directional mark for it like MarkAfterKnownDir.
func (f *Formatter) MarkAfter(text string, isMarkup bool) string {
	return f.MarkAfterKnownDir(bidifmt.EstimateDirection(text, isMarkup), text, isMarkup)
}

// MarkAfterKnownDir returns a directional mark matching the context
// direction iff text, taken to have overall direction dir, would garble the
// text following it: either dir is opposite to the context direction, or
// text exits in the direction opposite to the context. Otherwise, and always
// for an unknown context, the empty string is returned.
func (f *Formatter) MarkAfterKnownDir(dir bidifmt.Direction, text string, isMarkup bool) string {
	return f.markAfter(text, dir, isMarkup, true)
}

// markAfter implements the trailing-mark reset rule shared by the wrap and
// mark operations. The exit-direction scan runs only if the overall
// direction does not already decide the question.
func (f *Formatter) markAfter(text string, dir bidifmt.Direction, isMarkup bool, dirReset bool) string {
	if !dirReset {
		return ""
	}
	switch f.contextDir {
	case bidifmt.LeftToRight:
		if dir == bidifmt.RightToLeft || bidifmt.EndsWithRtl(text, isMarkup) {
			return bidifmt.LRM
		}
	case bidifmt.RightToLeft:
		if dir == bidifmt.LeftToRight || bidifmt.EndsWithLtr(text, isMarkup) {
			return bidifmt.RLM
		}
	}
	return ""
}

// Mark returns the directional mark matching the context direction, or the
// empty string for an unknown context.
func (f *Formatter) Mark() string {
	switch f.contextDir {
	case bidifmt.LeftToRight:
		return bidifmt.LRM
	case bidifmt.RightToLeft:
		return bidifmt.RLM
	}
	return ""
}

// --- Layout edges -----------------------------------------------------------

// StartEdge names the layout edge where lines start in the context
// direction: "left", except in a right-to-left context. An unknown context
// behaves as left-to-right.
func (f *Formatter) StartEdge() string {
	if f.contextDir == bidifmt.RightToLeft {
		return "right"
	}
	return "left"
}

// EndEdge names the layout edge where lines end in the context direction:
// "right", except in a right-to-left context. An unknown context behaves as
// left-to-right.
func (f *Formatter) EndEdge() string {
	if f.contextDir == bidifmt.RightToLeft {
		return "left"
	}
	return "right"
}
