package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/cloudscraper/internal/crawler"
	"github.com/nao1215/cloudscraper/internal/match"
	"github.com/nao1215/cloudscraper/internal/model"
)

// Crawler runs a crawl from a seed URL. *crawler.Spider implements it.
type Crawler interface {
	Crawl(ctx context.Context, seed string) (*crawler.Result, error)
}

// CrawlStep crawls the report's target and records the visited set.
type CrawlStep struct {
	crawler Crawler
	logger  *slog.Logger
}

// CrawlStepOption configures a CrawlStep.
type CrawlStepOption func(*CrawlStep)

// WithCrawlLogger sets a custom logger for the crawl step.
func WithCrawlLogger(logger *slog.Logger) CrawlStepOption {
	return func(s *CrawlStep) {
		s.logger = logger
	}
}

// NewCrawlStep creates a crawl step backed by c.
func NewCrawlStep(c Crawler, opts ...CrawlStepOption) *CrawlStep {
	s := &CrawlStep{
		crawler: c,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *CrawlStep) Name() string {
	return "crawl"
}

// Do crawls report.Target. Whatever the crawl produced is copied into the
// report even when it ends in an error, so an interrupted crawl still
// reports the links it had found.
func (s *CrawlStep) Do(ctx context.Context, report *model.ScanReport) error {
	result, err := s.crawler.Crawl(ctx, report.Target)
	if result != nil {
		report.Authority = result.Authority
		report.InitialLinks = result.InitialLinks
		report.Rounds = result.Rounds
		report.Links = result.Visited
	}
	if err != nil {
		return err
	}

	s.logger.Debug("crawl finished",
		"target", report.Target,
		"rounds", len(report.Rounds),
		"links", report.TotalLinks(),
	)
	return nil
}

// MatchStep selects cloud storage references from the visited set.
type MatchStep struct {
	matcher *match.Matcher
}

// NewMatchStep creates a match step. A nil matcher uses the default
// keywords.
func NewMatchStep(matcher *match.Matcher) *MatchStep {
	if matcher == nil {
		matcher = match.NewMatcher(nil)
	}
	return &MatchStep{matcher: matcher}
}

// Name returns the step name.
func (s *MatchStep) Name() string {
	return "match"
}

// Do fills report.Keywords and report.Matches.
func (s *MatchStep) Do(_ context.Context, report *model.ScanReport) error {
	report.Keywords = s.matcher.Keywords()
	report.Matches = s.matcher.Match(report.Links)
	return nil
}

// DefaultPipeline returns a pipeline that crawls with c and then matches
// with matcher.
func DefaultPipeline(c Crawler, matcher *match.Matcher, logger *slog.Logger, opts ...Option) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}

	p := New(append([]Option{WithLogger(logger)}, opts...)...)
	p.AddSteps(
		NewCrawlStep(c, WithCrawlLogger(logger)),
		NewMatchStep(matcher),
	)
	return p
}
