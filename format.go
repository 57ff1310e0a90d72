package easylog

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// nowFunc and pidFunc supply the %D and %I directives. Package variables so
// tests can pin them.
var (
	nowFunc = time.Now
	pidFunc = os.Getpid
)

// render expands a format template into the final log line. A '%' introduces
// a two-character directive; every other character is copied verbatim.
//
//	%F  source file name
//	%C  source line number
//	%P  enclosing function name
//	%N  originating logger's name
//	%L  level name
//	%S  the accumulated message text
//	%D  timestamp
//	%I  process id
//	%%  literal '%'
//
// Unknown directives and a lone '%' at end of template are copied through
// unchanged; a malformed template degrades, it never fails.
func render(format string, level Level, name, file string, line int, fn, msg string) string {
	var b strings.Builder
	b.Grow(len(format) + len(msg) + len(name) + len(file) + len(fn) + 16)

	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		if i+1 == len(format) {
			b.WriteByte('%')
			break
		}
		i++
		switch format[i] {
		case 'F':
			b.WriteString(file)
		case 'C':
			b.WriteString(strconv.Itoa(line))
		case 'P':
			b.WriteString(fn)
		case 'N':
			b.WriteString(name)
		case 'L':
			b.WriteString(level.String())
		case 'S':
			b.WriteString(msg)
		case 'D':
			b.WriteString(nowFunc().Format(defaultTimeLayout))
		case 'I':
			b.WriteString(strconv.Itoa(pidFunc()))
		case '%':
			b.WriteByte('%')
		default:
			b.WriteByte('%')
			b.WriteByte(format[i])
		}
	}
	return b.String()
}
