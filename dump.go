package easylog

import (
	"fmt"
	"reflect"
)

// Maximum recursion depth to prevent stack overflow on pathological graphs
const maxDumpDepth = 10

// Dump logs the contents of v at DEBUG level, one line per field or
// element. Structs dump their exported fields, maps and slices their
// elements, everything else its plain value. Pointers and interfaces are
// unwrapped with cycle detection.
func (l *Logger) Dump(v interface{}) {
	if !l.IsLevel(DEBUG) {
		return
	}
	file, line, fn := callSite(2)
	if v == nil {
		l.dumpLine(file, line, fn, "Dump: <nil>")
		return
	}
	visited := make(map[uintptr]bool)
	l.dumpValue(v, emptyString, visited, 0, file, line, fn)
}

func (l *Logger) dumpLine(file string, line int, fn, text string) {
	s := l.Log(DEBUG, file, line, fn)
	s.Append(text)
	s.Close()
}

func (l *Logger) dumpValue(v interface{}, prefix string, visited map[uintptr]bool, depth int, file string, line int, fn string) {
	if depth > maxDumpDepth {
		l.dumpLine(file, line, fn, prefix+": <max depth reached>")
		return
	}
	if v == nil {
		l.dumpLine(file, line, fn, prefix+": <nil>")
		return
	}

	val := reflect.ValueOf(v)

	// Unwrap interfaces and pointers, cutting cycles.
	for {
		switch val.Kind() {
		case reflect.Interface:
			if val.IsNil() {
				l.dumpLine(file, line, fn, prefix+": <nil>")
				return
			}
			val = val.Elem()
			continue
		case reflect.Ptr:
			if val.IsNil() {
				l.dumpLine(file, line, fn, prefix+": <nil>")
				return
			}
			ptr := val.Pointer()
			if visited[ptr] {
				l.dumpLine(file, line, fn, prefix+": <circular reference>")
				return
			}
			visited[ptr] = true
			val = val.Elem()
		default:
		}
		break
	}

	typ := val.Type()

	switch val.Kind() {
	case reflect.Struct:
		if prefix == emptyString {
			l.dumpLine(file, line, fn, "Struct: "+typ.Name())
		} else {
			l.dumpLine(file, line, fn, fmt.Sprintf("%s: %s {", prefix, typ.Name()))
		}

		for i := 0; i < val.NumField(); i++ {
			field := typ.Field(i)
			fieldVal := val.Field(i)

			// Skip unexported fields
			if !fieldVal.CanInterface() {
				continue
			}

			fieldPrefix := field.Name
			if prefix != emptyString {
				fieldPrefix = prefix + "." + field.Name
			}
			l.dumpValue(fieldVal.Interface(), fieldPrefix, visited, depth+1, file, line, fn)
		}

		if prefix != emptyString {
			l.dumpLine(file, line, fn, prefix+": }")
		}

	case reflect.Map:
		l.dumpLine(file, line, fn, fmt.Sprintf("%s: map[%s]%s (len: %d) {",
			prefix, typ.Key().String(), typ.Elem().String(), val.Len()))

		iter := val.MapRange()
		for iter.Next() {
			keyStr := fmt.Sprintf("%v", iter.Key().Interface())
			l.dumpValue(iter.Value().Interface(), prefix+"["+keyStr+"]", visited, depth+1, file, line, fn)
		}

		l.dumpLine(file, line, fn, prefix+": }")

	case reflect.Slice, reflect.Array:
		l.dumpLine(file, line, fn, fmt.Sprintf("%s: %s (len: %d) {", prefix, typ.String(), val.Len()))

		// Cap element output for large slices
		const maxElements = 10
		for i := 0; i < val.Len() && i < maxElements; i++ {
			elemPrefix := fmt.Sprintf("%s[%d]", prefix, i)
			l.dumpValue(val.Index(i).Interface(), elemPrefix, visited, depth+1, file, line, fn)
		}
		if val.Len() > maxElements {
			l.dumpLine(file, line, fn, fmt.Sprintf("%s: ... (%d more elements)", prefix, val.Len()-maxElements))
		}

		l.dumpLine(file, line, fn, prefix+": }")

	default:
		l.dumpLine(file, line, fn, fmt.Sprintf("%s: %v", prefix, val.Interface()))
	}
}
