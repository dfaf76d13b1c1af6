// Package log provides the structured logger used by batchstat, built on
// the standard slog package.
//
// Log output goes to stderr so it never mixes with the warning and status
// lines a pipeline prints to stdout. By default only warnings and errors
// are shown; verbose mode enables per-step debug output.
//
// # Value truncation
//
// The TruncatingHandler clips long string attribute values. Input files can
// contain arbitrarily long malformed lines, and a single bad line should not
// flood the terminal:
//
//	logger := log.NewLogger(os.Stderr, true)
//	logger.Debug("skipped entry", "text", hugeLine) // text is clipped
package log
