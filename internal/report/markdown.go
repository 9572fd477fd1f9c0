package report

import (
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/nao1215/cloudscraper/internal/model"
	"github.com/nao1215/markdown"
)

// MarkdownWriter outputs reports as a Markdown document.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.ScanReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeRounds(md, report)
	w.writeMatches(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.ScanReport) {
	md.H1("CloudScraper Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Target", "`" + report.Target + "`"},
			{"Scan Date", report.DateScanned.Format("2006-01-02 15:04:05 MST")},
			{"Duration", report.Duration.Round(time.Millisecond).String()},
			{"Initial Links", strconv.Itoa(report.InitialLinks)},
			{"Appended Links", strconv.Itoa(report.AppendedTotal())},
			{"Total Links", strconv.Itoa(report.TotalLinks())},
			{"Matches", strconv.Itoa(len(report.Matches))},
			{"Status", statusText(report)},
		},
	})
	md.PlainText("")
}

func statusText(report *model.ScanReport) string {
	if report.Cancelled {
		return "Interrupted (partial results)"
	}
	if report.ErrorMessage != "" {
		return "Error - " + report.ErrorMessage
	}
	return "Complete"
}

func (w *MarkdownWriter) writeRounds(md *markdown.Markdown, report *model.ScanReport) {
	md.H2("Crawl Rounds")
	md.PlainText("")

	if len(report.Rounds) == 0 {
		md.PlainText("The seed page was not expanded.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(report.Rounds))
	for i, r := range report.Rounds {
		rows[i] = []string{
			strconv.Itoa(r.Round),
			strconv.Itoa(r.Frontier),
			strconv.Itoa(r.Fetched),
			strconv.Itoa(r.SkippedDepth),
			strconv.Itoa(r.Failed),
			strconv.Itoa(r.Appended),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Round", "Frontier", "Fetched", "Too Deep", "Failed", "New URLs"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeMatches(md *markdown.Markdown, report *model.ScanReport) {
	md.H2("Cloud Resources")
	md.PlainText("")

	if report.Cancelled {
		md.Warningf("The scan was interrupted after %d links. Matching was skipped.", report.TotalLinks())
		md.PlainText("")
	}

	if !report.HasMatches() {
		md.Tip("There were no matches!")
		md.PlainText("")
		return
	}

	md.Note("Keywords: " + joinCode(report.Keywords))
	md.PlainText("")

	groups := report.MatchesByProvider()
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		matches := groups[name]
		md.PlainTextf("### %s (%d)", name, len(matches))
		md.PlainText("")

		rows := make([][]string, len(matches))
		for i, m := range matches {
			service := m.Service
			if service == "" {
				service = "-"
			}
			rows[i] = []string{truncateString(m.URL, 100), service, m.Resource}
		}
		md.Table(markdown.TableSet{
			Header: []string{"URL", "Service", "Resource"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	md.Details("All matched URLs", strings.Join(report.MatchURLs(), "\n"))
	md.PlainText("")
}

func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Report generated by CloudScraper*")
}

func joinCode(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = "`" + item + "`"
	}
	return strings.Join(quoted, ", ")
}

// truncateString truncates a string to maxLen characters with ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
