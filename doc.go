/*
Package bidifmt helps with embedding bidirectional text.

Text of unknown writing direction which gets inserted into surrounding
text of a given direction is prone to visual garbling: neutral characters
at the seams (punctuation, digits, whitespace) attach to the wrong side,
and a trailing run of opposite-direction text drags the following words
along with it. The remedies are well known: declare the direction of the
inserted run and terminate it with a directional mark. Deciding when to
apply them requires an estimate of the run's direction.

This package provides the estimation half: heuristics that classify a
string as left-to-right, right-to-left or neutral, based on the
Bidi_Class character database of the Unicode standard. Overall direction
and exit direction (the direction of the trailing strong character) are
estimated separately, as the two may well differ for mixed strings.

Sub-package formatter builds the decision half on top of this: given a
context direction, it decides on dir-attributes, containers and
directional marks, for plain strings as well as for opaque markup values.

This module does not implement the Unicode Bidirectional Algorithm
(UAX#9). It never reorders characters; it only estimates directionality
and emits declarations and invisible marks.

___________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bidifmt

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to bidifmt .
func tracer() tracing.Trace {
	return tracing.Select("bidifmt")
}

// UnicodeVersion is the version of the Unicode standard which the character
// classification (via golang.org/x/text) conforms to.
const UnicodeVersion = "13.0.0"
