// Package log provides the logging abstraction used by linemark components.
//
// The Logger interface can be implemented by any logging library. A zerolog
// adapter and a no-op logger are provided:
//
//	logger := log.NewZerologAdapter(os.Stderr, zerolog.InfoLevel)
//	logger := log.NewNoopLogger()
//
// Annotated records are written to stdout, so adapters built here should
// write to stderr.
package log
