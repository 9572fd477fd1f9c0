package report

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/nao1215/cloudscraper/internal/model"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SimpleWriter outputs the plain text report printed after each target.
// Counts are printed with digit grouping (1,234).
type SimpleWriter struct {
	baseWriter

	// showRounds prints one detail line per expansion round. The live
	// "New urls appended" lines belong to the progress console.
	showRounds bool

	// verbose adds the matched keyword and provider to each match line.
	verbose bool

	printer *message.Printer
	header  *color.Color
	hit     *color.Color
	status  *color.Color
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowRounds enables the per-round fetch statistics.
func WithShowRounds(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showRounds = show
	}
}

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// WithColor turns ANSI colors on or off. Colors are off by default.
func WithColor(enabled bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		for _, c := range []*color.Color{w.header, w.hit, w.status} {
			if enabled {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
		}
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		printer:    message.NewPrinter(language.English),
		header:     color.New(color.FgCyan, color.Bold),
		hit:        color.New(color.FgGreen),
		status:     color.New(color.FgYellow),
	}
	WithColor(false)(w)

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report in human-readable format.
func (w *SimpleWriter) Write(report *model.ScanReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeRounds(&sb, report)
	w.writeResults(&sb, report)

	return io.WriteString(w.output, sb.String())
}

func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.ScanReport) {
	sb.WriteString(w.header.Sprintf("Results for %s", report.Target))
	sb.WriteString("\n")
	sb.WriteString(w.printer.Sprintf("Scan date: %s\n", report.DateScanned.Format("2006-01-02 15:04:05 MST")))

	switch {
	case report.Cancelled:
		sb.WriteString(w.status.Sprint("Status: interrupted (partial results)"))
		sb.WriteString("\n")
	case report.ErrorMessage != "":
		sb.WriteString(w.status.Sprintf("Status: error - %s", report.ErrorMessage))
		sb.WriteString("\n")
	}

	sb.WriteString(w.printer.Sprintf("Initial links: %d\n", report.InitialLinks))
	sb.WriteString(w.printer.Sprintf("Urls appended: %d in %d rounds\n", report.AppendedTotal(), len(report.Rounds)))
}

func (w *SimpleWriter) writeRounds(sb *strings.Builder, report *model.ScanReport) {
	if !w.showRounds {
		return
	}
	for _, round := range report.Rounds {
		sb.WriteString(w.printer.Sprintf("  round %d: %d new, fetched %d, skipped %d, failed %d\n",
			round.Round, round.Appended, round.Fetched, round.SkippedDepth, round.Failed))
	}
}

func (w *SimpleWriter) writeResults(sb *strings.Builder, report *model.ScanReport) {
	sb.WriteString("\nParsing results...\n")
	sb.WriteString(w.printer.Sprintf("Total links: %d\n", report.TotalLinks()))

	if !report.HasMatches() {
		sb.WriteString("There were no matches!\n")
		return
	}

	sb.WriteString(w.printer.Sprintf("There were %d matches for this search!\n", len(report.Matches)))
	for _, m := range report.Matches {
		sb.WriteString(w.hit.Sprint(m.URL))
		if w.verbose {
			label := m.Provider
			if label == "" {
				label = m.Keyword
			}
			if m.Service != "" {
				label += ", " + m.Service
			}
			sb.WriteString(" (" + label + ")")
		}
		sb.WriteString("\n")
	}
}
