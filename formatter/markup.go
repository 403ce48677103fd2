package formatter

import "html"

// Markup is an opaque rich-content value, typically a fragment of sanitized
// HTML owned by a templating or rendering system. The formatter treats such
// values as black boxes and only requires the three capabilities below, so
// that it carries no dependency on any concrete markup representation.
//
// Implementations must be immutable: every operation returns a new value.
type Markup interface {
	// Text returns the unescaped text content of the value. It is used to
	// feed direction estimation only.
	Text() string

	// WrapInContainer returns a new value wrapping this one in a minimal
	// container element carrying the given dir-attribute value, "ltr" or
	// "rtl". An empty dirAttr produces a container without a dir attribute.
	// Implementations must not escape the wrapped content again.
	WrapInContainer(dirAttr string) Markup

	// Append returns a new value with text concatenated to this one at the
	// value level. The formatter uses it to attach directional marks.
	Append(text string) Markup
}

// HTML is a minimal string-backed Markup implementation. It is sufficient
// for tests and command-line use; rendering systems will usually provide
// their own Markup implementation on top of their sanitized-content type.
//
// HTML values are immutable.
type HTML struct {
	markup string
	text   string
}

// HTMLEscape makes an HTML value from plain text, escaping
// markup-significant characters.
func HTMLEscape(text string) HTML {
	return HTML{markup: html.EscapeString(text), text: text}
}

// HTMLFromMarkup makes an HTML value from an already rendered markup
// fragment and its unescaped text content. The fragment is trusted to be
// properly escaped; no further escaping takes place.
func HTMLFromMarkup(markup, text string) HTML {
	return HTML{markup: markup, text: text}
}

// Text returns the unescaped text content. Part of the Markup interface.
func (h HTML) Text() string {
	return h.text
}

// WrapInContainer wraps the fragment in a span element, declaring dirAttr
// if non-empty. Part of the Markup interface.
func (h HTML) WrapInContainer(dirAttr string) Markup {
	if dirAttr == "" {
		return HTML{markup: "<span>" + h.markup + "</span>", text: h.text}
	}
	return HTML{markup: `<span dir="` + dirAttr + `">` + h.markup + "</span>", text: h.text}
}

// Append concatenates text to the fragment. Part of the Markup interface.
func (h HTML) Append(text string) Markup {
	return HTML{markup: h.markup + text, text: h.text + text}
}

// String returns the rendered markup fragment.
func (h HTML) String() string {
	return h.markup
}
