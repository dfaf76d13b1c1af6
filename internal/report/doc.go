// Package report renders pipeline results and writes them to results files.
//
// This package contains writers for different output formats:
//   - TextWriter: the line-oriented results file format (default)
//   - JSONWriter: structured JSON output for tool integration
//   - MarkdownWriter: tables and a token chart for documentation
//
// Writers implement the Writer interface, so the pipeline can select one by
// Format without knowing how it renders. WriteFile renders a report fully in
// memory before touching the target file, so a rendering failure never
// leaves a truncated results file behind.
package report
