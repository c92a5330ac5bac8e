// Package log provides the diagnostic logging abstraction used by pushcast.
//
// Diagnostics (transport failures, push log write failures) are emitted
// through the Logger interface. The default implementation writes
// human-readable zerolog console output to stderr:
//
//	logger := log.NewZerologAdapter()
//
// Tests that do not care about diagnostics can use the no-op logger:
//
//	logger := log.NewNoopLogger()
//
// The push log file written by package pushlog is unrelated to this
// package: it is a plain-text audit trail, not a diagnostic stream.
package log
