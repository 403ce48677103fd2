/*
Package tracing bundles access to the tracing facade for this module.

Packages of this module trace through the schuko tracing adapters. This
package routes the module-internal convenience functions to the global core
tracer and hooks tracing output into the Go test runner for tests.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tracing

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

// Debugf traces a debug message to the global core tracer.
func Debugf(format string, args ...interface{}) {
	gtrace.CoreTracer.Debugf(format, args...)
}

// Infof traces an info message to the global core tracer.
func Infof(format string, args ...interface{}) {
	gtrace.CoreTracer.Infof(format, args...)
}

// Errorf traces an error message to the global core tracer.
func Errorf(format string, args ...interface{}) {
	gtrace.CoreTracer.Errorf(format, args...)
}

// P attaches a key/value pair to the next trace message.
func P(key string, val interface{}) tracing.Trace {
	return gtrace.CoreTracer.P(key, val)
}

// SetTestingLog redirects tracing output to the log of a testing.T and
// registers a cleanup function restoring the previous configuration when
// the test ends.
func SetTestingLog(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	t.Cleanup(teardown)
}
