// Package logging provides the Logger interface used by the asmid tool and
// its concrete implementations.
//
// Available implementations:
//   - ConsoleLogger: writes formatted messages to stderr with thread-safe output
//   - NullLogger: discards all messages (useful for testing)
//
// The assembly library itself never logs; logging is tool surface only. All
// logger implementations are safe for concurrent use by multiple goroutines.
package logging
