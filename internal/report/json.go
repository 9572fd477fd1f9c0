package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/cloudscraper/internal/model"
)

// JSONWriter outputs reports in JSON format, one document per report.
type JSONWriter struct {
	baseWriter

	indent       bool
	indentPrefix string
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables indented output with the given prefix and indent.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint is WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the report as JSON followed by a newline.
func (w *JSONWriter) Write(report *model.ScanReport) (int, error) {
	return w.writeJSON(report)
}

func (w *JSONWriter) writeJSON(v any) (int, error) {
	var (
		data []byte
		err  error
	)
	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return 0, err
	}

	data = append(data, '\n')
	return w.output.Write(data)
}

// JSONReport wraps a report with the version of the tool that produced it.
type JSONReport struct {
	Version string            `json:"version"`
	Report  *model.ScanReport `json:"report"`

	// MatchCount and TotalLinks duplicate report data for quick access by jq.
	MatchCount int `json:"match_count"`
	TotalLinks int `json:"total_links"`
}

// NewJSONReport creates a JSONReport wrapper with version information.
func NewJSONReport(report *model.ScanReport, version string) *JSONReport {
	return &JSONReport{
		Version:    version,
		Report:     report,
		MatchCount: len(report.Matches),
		TotalLinks: report.TotalLinks(),
	}
}

// FullJSONWriter outputs reports wrapped in a JSONReport.
type FullJSONWriter struct {
	*JSONWriter

	version string
}

// NewFullJSONWriter creates a writer for reports with version metadata.
func NewFullJSONWriter(output io.Writer, version string, opts ...JSONWriterOption) *FullJSONWriter {
	return &FullJSONWriter{
		JSONWriter: NewJSONWriter(output, opts...),
		version:    version,
	}
}

// Write outputs the wrapped report.
func (w *FullJSONWriter) Write(report *model.ScanReport) (int, error) {
	return w.writeJSON(NewJSONReport(report, w.version))
}
