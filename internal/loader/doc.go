// Package loader reads pipeline input files.
//
// Two modes are supported:
//   - ReadNumbers parses one floating-point value per line. Lines that are
//     not finite numbers are skipped and reported as warnings; the run
//     continues with the remaining values.
//   - ReadTokens splits the whole file on whitespace without validation.
//
// Files are decoded as UTF-8 by default, with a leading byte order mark
// removed. Any other encoding label known to golang.org/x/text/encoding/htmlindex
// (for example "windows-1252" or "shift_jis") can be selected through Options.
//
// A missing input file yields ErrFileNotFound, which callers treat as fatal.
package loader
