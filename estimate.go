package bidifmt

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/bidi"
)

// CharDirection returns the strong direction of a single rune, or Neutral if
// the rune has no strong Bidi_Class. Class L counts as strong LTR; classes R
// and AL count as strong RTL. All other classes, including European and
// Arabic-Indic numbers, are weak or neutral.
func CharDirection(r rune) Direction {
	props, _ := bidi.LookupRune(r)
	switch props.Class() {
	case bidi.L:
		return LeftToRight
	case bidi.R, bidi.AL:
		return RightToLeft
	}
	return Neutral
}

// markupSkipPattern matches HTML-like tags and character entities. Estimation
// must not let tag and entity names (always Latin letters) influence the
// direction of markup-bearing text.
var markupSkipPattern = regexp.MustCompile(`<[^>]*>|&[^;]+;`)

// stripMarkup replaces tags and entities by a space, as they may separate
// words. For text free of markup syntax this is a no-op without allocation.
func stripMarkup(text string, isMarkup bool) string {
	if !isMarkup || !strings.ContainsAny(text, "<&") {
		return text
	}
	return markupSkipPattern.ReplaceAllString(text, " ")
}

// HasAnyLtr returns true if text contains at least one strong left-to-right
// character. Tags and entities are skipped if isMarkup is set.
func HasAnyLtr(text string, isMarkup bool) bool {
	return hasStrong(stripMarkup(text, isMarkup), LeftToRight)
}

// HasAnyRtl returns true if text contains at least one strong right-to-left
// character. Tags and entities are skipped if isMarkup is set.
func HasAnyRtl(text string, isMarkup bool) bool {
	return hasStrong(stripMarkup(text, isMarkup), RightToLeft)
}

func hasStrong(text string, dir Direction) bool {
	for _, r := range text {
		if CharDirection(r) == dir {
			return true
		}
	}
	return false
}

// entryDir is the direction of the first strong character of text.
func entryDir(text string) Direction {
	for _, r := range text {
		if d := CharDirection(r); d != Neutral {
			return d
		}
	}
	return Neutral
}

// exitDir is the direction of the last strong character of text, scanning
// backwards over trailing neutral characters.
func exitDir(text string) Direction {
	for len(text) > 0 {
		r, sz := utf8.DecodeLastRuneInString(text)
		text = text[:len(text)-sz]
		if d := CharDirection(r); d != Neutral {
			return d
		}
	}
	return Neutral
}

// StartsWithRtl returns true if the first strong character of text is
// right-to-left. Tags and entities are skipped if isMarkup is set.
func StartsWithRtl(text string, isMarkup bool) bool {
	return entryDir(stripMarkup(text, isMarkup)) == RightToLeft
}

// StartsWithLtr returns true if the first strong character of text is
// left-to-right. Tags and entities are skipped if isMarkup is set.
func StartsWithLtr(text string, isMarkup bool) bool {
	return entryDir(stripMarkup(text, isMarkup)) == LeftToRight
}

// EndsWithRtl returns true if the last strong character of text is
// right-to-left, i.e. the text "exits" in right-to-left mode. Tags and
// entities are skipped if isMarkup is set.
//
// The exit direction may well differ from the overall estimated direction,
// e.g. for a right-to-left sentence ending in an embedded left-to-right
// phrase.
func EndsWithRtl(text string, isMarkup bool) bool {
	return exitDir(stripMarkup(text, isMarkup)) == RightToLeft
}

// EndsWithLtr returns true if the last strong character of text is
// left-to-right (see EndsWithRtl).
func EndsWithLtr(text string, isMarkup bool) bool {
	return exitDir(stripMarkup(text, isMarkup)) == LeftToRight
}

// rtlThreshold is the fraction of right-to-left words above which a mixed
// string is estimated as right-to-left overall. Word counts are compared
// instead of raw character counts, as word counts are robust against scripts
// with differing average word lengths.
const rtlThreshold = 0.40

var urlPattern = regexp.MustCompile(`^https?://`)

// EstimateDirection estimates the overall direction of text by a word-count
// heuristic: a word is counted as right-to-left if its first strong character
// is right-to-left, and as left-to-right if it contains any strong
// left-to-right character. The estimate is RightToLeft if more than 40% of
// the counted words are right-to-left, LeftToRight if strong left-to-right
// characters dominate, and Neutral if text contains no strong characters
// at all. Tags and entities are skipped if isMarkup is set.
//
// URL-shaped words are not counted: a URL renders left-to-right regardless
// of the letters it contains, so it carries no evidence about the
// surrounding text. It does tip an otherwise undecided estimate to
// LeftToRight.
func EstimateDirection(text string, isMarkup bool) Direction {
	text = stripMarkup(text, isMarkup)
	rtlCount, total := 0, 0
	weaklyLtr := false
	for _, word := range strings.Fields(text) {
		switch {
		case urlPattern.MatchString(word):
			weaklyLtr = true
		case entryDir(word) == RightToLeft:
			rtlCount++
			total++
		case hasStrong(word, LeftToRight):
			total++
		}
	}
	dir := Neutral
	switch {
	case total == 0 && weaklyLtr:
		dir = LeftToRight
	case total == 0:
		dir = Neutral
	case float64(rtlCount)/float64(total) > rtlThreshold:
		dir = RightToLeft
	default:
		dir = LeftToRight
	}
	tracer().Debugf("estimated direction of %q: %v", text, dir)
	return dir
}
