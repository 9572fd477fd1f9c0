package progress

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/nao1215/cloudscraper/internal/crawler"
	"github.com/nao1215/cloudscraper/internal/model"
)

// Banner is printed once at startup.
const Banner = `
CloudScraper is a tool to search through the source code of websites in order to find cloud resources belonging to a target.
`

// Console reports crawl progress on a terminal.
type Console struct {
	out *os.File

	mu       sync.Mutex
	spinner  *spinner.Spinner
	round    int
	frontier int
	done     int

	info *color.Color
	warn *color.Color
	fail *color.Color
}

// NewConsole creates a Console writing to out, typically os.Stderr.
func NewConsole(out *os.File) *Console {
	c := &Console{
		out:     out,
		spinner: spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriterFile(out)),
		info:    color.New(color.FgCyan),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed, color.Bold),
	}

	if !isTerminal(out) {
		c.info.DisableColor()
		c.warn.DisableColor()
		c.fail.DisableColor()
	}

	return c
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Banner prints the startup banner.
func (c *Console) Banner() {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprint(c.out, Banner)
}

// TargetStarted announces the next seed target.
func (c *Console) TargetStarted(target string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.info.Fprintf(c.out, "Beginning search for cloud resources in %s\n", target)
}

// Warn prints an operator-facing warning.
func (c *Console) Warn(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.printAboveSpinner(c.warn, format, args...)
}

// Error prints an operator-facing error that ended a target early, such
// as an unusable seed or a failed report write.
func (c *Console) Error(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.printAboveSpinner(c.fail, "Error: %v", err)
}

// RoundStarted implements crawler.Observer.
func (c *Console) RoundStarted(round, frontier int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.round = round
	c.frontier = frontier
	c.done = 0
	c.setSuffix()
	c.spinner.Start()
}

// PageFetched implements crawler.Observer.
func (c *Console) PageFetched(_ string, _ int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.done++
	c.setSuffix()
}

// FetchFailed implements crawler.Observer. The spider only calls it in
// verbose mode.
func (c *Console) FetchFailed(_ string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.done++
	c.setSuffix()
	c.printAboveSpinner(c.fail, "Network error: %v", err)
}

// RoundFinished implements crawler.Observer.
func (c *Console) RoundFinished(summary model.RoundSummary) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.spinner.Stop()
	c.info.Fprintf(c.out, "New urls appended: %d\n", summary.Appended)
}

// Stop clears the spinner. It is safe to call when nothing is running.
func (c *Console) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.spinner.Stop()
}

// setSuffix must be called with c.mu held.
func (c *Console) setSuffix() {
	c.spinner.Lock()
	c.spinner.Suffix = fmt.Sprintf(" round %d: %d/%d", c.round, c.done, c.frontier)
	c.spinner.Unlock()
}

// printAboveSpinner must be called with c.mu held.
func (c *Console) printAboveSpinner(col *color.Color, format string, args ...any) {
	active := c.spinner.Active()
	if active {
		c.spinner.Stop()
	}
	col.Fprintf(c.out, format+"\n", args...)
	if active {
		c.spinner.Start()
	}
}

var _ crawler.Observer = (*Console)(nil)
