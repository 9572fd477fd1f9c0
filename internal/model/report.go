package model

import (
	"time"
)

// ScanReport is the result of scanning a single seed target.
// The crawl step fills the link data, the match step fills Matches.
type ScanReport struct {
	// Target is the seed URL after normalization (https:// added when no scheme was given).
	Target string `json:"target"`

	// Authority is the host[:port] of Target, used as the scope key.
	Authority string `json:"authority"`

	// DateScanned is when the scan started.
	DateScanned time.Time `json:"date_scanned"`

	// Duration is the wall time of the whole scan.
	Duration time.Duration `json:"duration"`

	// InitialLinks is the number of links extracted from the seed page.
	InitialLinks int `json:"initial_links"`

	// Rounds holds one summary per expansion round, in order.
	Rounds []RoundSummary `json:"rounds"`

	// Links is the final visited set in discovery order.
	Links []string `json:"links"`

	// Keywords are the substrings the matcher looked for.
	Keywords []string `json:"keywords"`

	// Matches is the match report computed from Links.
	Matches []Match `json:"matches"`

	// PerformedSteps lists the pipeline steps that ran.
	PerformedSteps []string `json:"performed_steps"`

	// Cancelled is set when the scan was interrupted and the data is partial.
	Cancelled bool `json:"cancelled"`

	// Error holds the error that stopped a step, if any.
	Error error `json:"-"`

	// ErrorMessage is Error rendered for serialization.
	ErrorMessage string `json:"error,omitempty"`
}

// RoundSummary describes one breadth-first expansion round.
type RoundSummary struct {
	// Round is 1-based.
	Round int `json:"round"`

	// Frontier is the number of URLs the round started with.
	Frontier int `json:"frontier"`

	// Fetched is the number of frontier URLs that were requested.
	Fetched int `json:"fetched"`

	// SkippedDepth is the number of frontier URLs beyond the depth bound.
	SkippedDepth int `json:"skipped_depth"`

	// Failed is the number of requests that ended in a network error.
	Failed int `json:"failed"`

	// Discovered is the number of distinct links extracted during the round.
	Discovered int `json:"discovered"`

	// Appended is the number of links not seen before this round.
	Appended int `json:"appended"`

	// NextFrontier is the number of appended links that are in scope.
	NextFrontier int `json:"next_frontier"`
}

// Match is a visited URL that contains one of the configured keywords.
type Match struct {
	// URL is the matched link.
	URL string `json:"url"`

	// Keyword is the first configured keyword found in URL.
	Keyword string `json:"keyword"`

	// Provider names the cloud provider for built-in keywords, empty otherwise.
	Provider string `json:"provider,omitempty"`

	// Service names the hosted service behind URL, e.g. "Amazon S3",
	// when the host is recognized.
	Service string `json:"service,omitempty"`

	// Resource is the registrable host name of URL, e.g. the bucket endpoint.
	Resource string `json:"resource,omitempty"`
}

// NewScanReport creates an empty report for target.
func NewScanReport(target string) *ScanReport {
	return &ScanReport{
		Target:         target,
		DateScanned:    time.Now(),
		Rounds:         make([]RoundSummary, 0),
		Links:          make([]string, 0),
		Keywords:       make([]string, 0),
		Matches:        make([]Match, 0),
		PerformedSteps: make([]string, 0),
	}
}

// TotalLinks returns the size of the visited set.
func (r *ScanReport) TotalLinks() int {
	return len(r.Links)
}

// HasMatches reports whether any link matched.
func (r *ScanReport) HasMatches() bool {
	return len(r.Matches) > 0
}

// MatchURLs returns the matched URLs in report order.
func (r *ScanReport) MatchURLs() []string {
	urls := make([]string, len(r.Matches))
	for i, m := range r.Matches {
		urls[i] = m.URL
	}
	return urls
}

// AppendedTotal sums the appended counts of all rounds.
func (r *ScanReport) AppendedTotal() int {
	total := 0
	for _, round := range r.Rounds {
		total += round.Appended
	}
	return total
}

// MatchesByProvider groups matches by provider. Matches from custom
// keywords are grouped under their keyword.
func (r *ScanReport) MatchesByProvider() map[string][]Match {
	groups := make(map[string][]Match)
	for _, m := range r.Matches {
		key := m.Provider
		if key == "" {
			key = m.Keyword
		}
		groups[key] = append(groups[key], m)
	}
	return groups
}

// SetError records err on the report.
func (r *ScanReport) SetError(err error) {
	r.Error = err
	if err != nil {
		r.ErrorMessage = err.Error()
	}
}
