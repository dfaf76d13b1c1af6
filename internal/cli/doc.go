// Package cli provides the cobra commands shared by the batchstat binary
// and the standalone computestats, convertnumbers and wordcount programs.
//
// Every pipeline command takes exactly one positional argument, the input
// file path. Results are written to a fixed file name in the output
// directory and a one-line status message is printed on success.
package cli
