// Package easylog is a small hierarchical logging facility: named loggers
// with severity filtering, parent/child forwarding, template-driven line
// formatting and scope-entry/exit tracing.
//
// Key features
//   - Logger trees: a child owns no destination and forwards to the nearest
//     ancestor that does, while keeping its own level and format template
//   - Format templates with %-directives: file, line, function, logger
//     name, level, message, timestamp, process id
//   - Scoped message accumulation: a Sink collects one message's text and
//     dispatches exactly once on Close
//   - Paired enter/exit scope tracing at TRACE level
//   - Destinations over arbitrary io.Writers, rolling files (lumberjack)
//     and zerolog bridging; all borrowed, never closed by this package
//
// The logger tree is deliberately unsynchronized: mutate level, format or
// destinations only while no other goroutine logs through the tree.
//
// Typical usage
//
//	root, err := easylog.NewFromConfig(&easylog.Config{
//		Name:           "app",
//		Level:          "debug",
//		ConsoleLogging: true,
//	})
//	if err != nil {
//		panic(err)
//	}
//
//	net := root.Child("net")
//	net.Infof("listening on %s", addr)
//	defer easylog.TraceScope(net, "handshake")()
package easylog
