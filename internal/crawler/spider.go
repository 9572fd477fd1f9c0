package crawler

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/nao1215/cloudscraper/internal/model"
	"golang.org/x/sync/errgroup"
)

// Default crawl bounds.
const (
	DefaultMaxDepth = 5
	DefaultWorkers  = 2
)

// Observer is notified about crawl progress. PageFetched and FetchFailed
// are called from worker goroutines, so implementations must be safe for
// concurrent use.
type Observer interface {
	RoundStarted(round, frontier int)
	PageFetched(url string, links int)
	FetchFailed(url string, err error)
	RoundFinished(summary model.RoundSummary)
}

type nopObserver struct{}

func (nopObserver) RoundStarted(int, int) {}
func (nopObserver) PageFetched(string, int) {}
func (nopObserver) FetchFailed(string, error) {}
func (nopObserver) RoundFinished(model.RoundSummary) {}

// Spider expands the link frontier of a seed page breadth first.
// Its configuration is fixed at construction; all per-crawl state lives
// inside Crawl, so one Spider can crawl many seeds in sequence.
type Spider struct {
	fetcher Fetcher

	// maxDepth bounds the crawl by URL shape, see ExceedsDepth.
	maxDepth int

	// workers is the number of concurrent fetches within a round.
	workers int

	// verbose forwards network errors to the observer.
	verbose bool

	logger   *slog.Logger
	observer Observer
}

// SpiderOption configures a Spider.
type SpiderOption func(*Spider)

// WithMaxDepth sets the depth bound. URLs with more than depth+2 slashes
// are recorded but never fetched.
func WithMaxDepth(depth int) SpiderOption {
	return func(s *Spider) {
		s.maxDepth = depth
	}
}

// WithWorkers sets the number of concurrent fetches per round.
func WithWorkers(n int) SpiderOption {
	return func(s *Spider) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithVerbose makes the Spider report network errors to its observer.
func WithVerbose(verbose bool) SpiderOption {
	return func(s *Spider) {
		s.verbose = verbose
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) SpiderOption {
	return func(s *Spider) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithObserver sets the progress observer.
func WithObserver(observer Observer) SpiderOption {
	return func(s *Spider) {
		if observer != nil {
			s.observer = observer
		}
	}
}

// NewSpider creates a Spider that retrieves pages with fetcher.
func NewSpider(fetcher Fetcher, opts ...SpiderOption) *Spider {
	s := &Spider{
		fetcher:  fetcher,
		maxDepth: DefaultMaxDepth,
		workers:  DefaultWorkers,
		logger:   slog.Default(),
		observer: nopObserver{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Result is the outcome of one crawl.
type Result struct {
	// Seed is the URL the crawl started from.
	Seed string

	// Authority is the scope key taken from Seed.
	Authority string

	// InitialLinks is the number of links extracted from the seed page.
	InitialLinks int

	// Rounds summarizes each expansion round.
	Rounds []model.RoundSummary

	// Visited is every URL accepted during the crawl, in discovery order.
	// The seed itself is only present if some page linked to it.
	Visited []string
}

// Crawl runs a full crawl from seed and returns once a round appends no
// new URL. If the seed cannot be fetched the *NetworkError is returned
// along with an empty result. If ctx is cancelled, the partial result is
// returned together with ctx.Err().
func (s *Spider) Crawl(ctx context.Context, seed string) (*Result, error) {
	authority, ok := Authority(seed)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSeed, seed)
	}

	result := &Result{
		Seed:      seed,
		Authority: authority,
		Rounds:    make([]model.RoundSummary, 0),
		Visited:   make([]string, 0),
	}

	body, err := s.fetcher.Fetch(ctx, seed)
	if err != nil {
		s.reportFailure(seed, err)
		return result, err
	}

	links := ExtractLinks(body)
	result.InitialLinks = len(links)

	visited := newURLSet(len(links))
	frontier := make([]string, 0, len(links))
	for _, link := range links {
		visited.Add(link)
		if InScope(link, authority) {
			frontier = append(frontier, link)
		}
	}

	s.logger.Debug("seed fetched",
		"seed", seed,
		"links", len(links),
		"frontier", len(frontier),
	)

	for round := 1; len(frontier) > 0; round++ {
		if err := ctx.Err(); err != nil {
			result.Visited = visited.Slice()
			return result, err
		}

		s.observer.RoundStarted(round, len(frontier))
		outcome := s.runRound(ctx, frontier)

		// A cancelled round is incomplete; its links are discarded.
		if err := ctx.Err(); err != nil {
			result.Visited = visited.Slice()
			return result, err
		}

		summary := model.RoundSummary{
			Round:        round,
			Frontier:     len(frontier),
			Fetched:      outcome.fetched,
			SkippedDepth: outcome.skipped,
			Failed:       outcome.failed,
			Discovered:   len(outcome.links),
		}

		next := make([]string, 0)
		for _, link := range outcome.links {
			if !visited.Add(link) {
				continue
			}
			summary.Appended++
			if InScope(link, authority) {
				next = append(next, link)
			}
		}
		summary.NextFrontier = len(next)

		result.Rounds = append(result.Rounds, summary)
		s.observer.RoundFinished(summary)
		s.logger.Debug("round finished",
			"round", round,
			"appended", summary.Appended,
			"nextFrontier", summary.NextFrontier,
		)

		if summary.Appended == 0 {
			break
		}
		frontier = next
	}

	result.Visited = visited.Slice()
	return result, nil
}

// roundOutcome is what one round of fetches produced.
type roundOutcome struct {
	links   []string
	fetched int
	skipped int
	failed  int
}

// runRound fetches every in-depth URL of frontier with at most s.workers
// requests in flight, waits for all of them and merges their links into
// one sorted, distinct list.
func (s *Spider) runRound(ctx context.Context, frontier []string) roundOutcome {
	var outcome roundOutcome

	perURL := make([][]string, len(frontier))
	failed := make([]bool, len(frontier))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, u := range frontier {
		if ExceedsDepth(u, s.maxDepth) {
			outcome.skipped++
			continue
		}
		outcome.fetched++

		g.Go(func() error {
			links, err := s.visit(gctx, u)
			if err != nil {
				failed[i] = true
				return nil
			}
			perURL[i] = links
			return nil
		})
	}

	// Workers never return an error: failures degrade to zero links.
	_ = g.Wait() //nolint:errcheck

	merged := newURLSet(0)
	for i, links := range perURL {
		if failed[i] {
			outcome.failed++
		}
		for _, link := range links {
			merged.Add(link)
		}
	}

	outcome.links = merged.Slice()
	sort.Strings(outcome.links)
	return outcome
}

// visit fetches one URL and extracts its links.
func (s *Spider) visit(ctx context.Context, u string) ([]string, error) {
	body, err := s.fetcher.Fetch(ctx, u)
	if err != nil {
		s.reportFailure(u, err)
		return nil, err
	}

	links := ExtractLinks(body)
	s.logger.Debug("links found", "url", u, "count", len(links))
	s.observer.PageFetched(u, len(links))
	return links, nil
}

// reportFailure logs a fetch failure and, in verbose mode, hands it to the
// observer so the operator sees it.
func (s *Spider) reportFailure(u string, err error) {
	s.logger.Debug("fetch failed", "url", u, "error", err)
	if s.verbose {
		s.observer.FetchFailed(u, err)
	}
}
