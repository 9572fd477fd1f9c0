// Package report renders a model.ScanReport for the operator.
//
// Three writers are provided:
//   - SimpleWriter: the plain text summary printed after each target
//   - MarkdownWriter: a Markdown document for sharing the findings
//   - JSONWriter: structured output for other tools
//
// All writers implement Writer and can be combined with MultiWriter.
package report
