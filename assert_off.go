//go:build noassert

package easylog

// Optimized builds: the assert family compiles away entirely, matching the
// documented contract that assertions only fire in debug builds.

func Assert(l *Logger, cond bool, msg string) {}

func AssertNotNil(l *Logger, v interface{}, msg string) {}

func AssertEq(l *Logger, lhs, rhs interface{}, msg string) {}

func AssertNe(l *Logger, lhs, rhs interface{}, msg string) {}

func AssertTrue(l *Logger, cond bool, msg string) {}

func AssertFalse(l *Logger, cond bool, msg string) {}
