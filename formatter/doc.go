/*
Package formatter turns direction estimates into formatting decisions.

A Formatter is configured with the direction of the surrounding context and
decides, for a given piece of text or markup, whether a dir-attribute has to
be declared, whether a wrapping container is needed, and whether a trailing
directional mark must be appended to protect the text following it.

Typical usage in a left-to-right page:

	f := formatter.New(bidifmt.LeftToRight)
	f.UnicodeWrap("שלום", true)        // RLE + "שלום" + PDF + LRM
	f.DirAttr("שלום", false)           // dir="rtl"
	f.Mark()                           // LRM

Rich content is handled through the Markup capability interface, keeping
this package free of any concrete markup or DOM representation. A trivial
string-backed implementation, HTML, is provided for tests and command-line
use.

Escaping is deliberately out of scope: UnicodeWrap operates on raw text and
performs no escaping, and implementations of Markup are expected to manage
escaping themselves. See the respective documentation.

___________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to bidifmt .
func tracer() tracing.Trace {
	return tracing.Select("bidifmt")
}
