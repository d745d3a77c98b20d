// Package log provides logging for avrsize, built on top of the standard
// slog package.
//
// This package extends slog to provide:
//   - Configurable log levels with verbose mode support
//   - Shortening of paths under the user's home directory to "~/..."
//   - Consistent log formatting across the application
//
// Logs are always written to the error stream. Standard output is reserved
// for the size report, which scripts parse.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//	logger.Debug("reading ELF file", "path", "/home/alice/blink/blink.elf")
//	// path=~/blink/blink.elf
//
//	slog.SetDefault(logger)
package log
