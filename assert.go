//go:build !noassert

package easylog

import "fmt"

// Assert logs a FATAL assertion failure and invokes the process-termination
// hook when cond is false. The whole assert family compiles to no-ops under
// the noassert build tag.
func Assert(l *Logger, cond bool, msg string) {
	if cond {
		return
	}
	failAssert(l, msg)
}

// AssertNotNil asserts that v is non-nil.
func AssertNotNil(l *Logger, v interface{}, msg string) {
	if v != nil {
		return
	}
	failAssert(l, "expected non-nil: "+msg)
}

// AssertEq asserts that lhs equals rhs.
func AssertEq(l *Logger, lhs, rhs interface{}, msg string) {
	if lhs == rhs {
		return
	}
	failAssert(l, fmt.Sprintf("%v == %v: %s", lhs, rhs, msg))
}

// AssertNe asserts that lhs differs from rhs.
func AssertNe(l *Logger, lhs, rhs interface{}, msg string) {
	if lhs != rhs {
		return
	}
	failAssert(l, fmt.Sprintf("%v != %v: %s", lhs, rhs, msg))
}

// AssertTrue asserts that cond is true.
func AssertTrue(l *Logger, cond bool, msg string) {
	if cond {
		return
	}
	failAssert(l, "expected true: "+msg)
}

// AssertFalse asserts that cond is false.
func AssertFalse(l *Logger, cond bool, msg string) {
	if !cond {
		return
	}
	failAssert(l, "expected false: "+msg)
}

func failAssert(l *Logger, detail string) {
	file, line, fn := callSite(3)
	s := l.Log(FATAL, file, line, fn)
	s.Append("ASSERTION FAILED: ", detail)
	s.Close()
	_ = l.Flush()
	exitFunc(1)
}
