package report

import (
	"io"

	"github.com/nao1215/cloudscraper/internal/model"
)

// Writer renders a scan report to some destination.
type Writer interface {
	// Write outputs the report and returns the number of bytes written.
	Write(report *model.ScanReport) (int, error)
}

type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
