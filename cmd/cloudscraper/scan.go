package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/nao1215/cloudscraper/internal/config"
	"github.com/nao1215/cloudscraper/internal/crawler"
	"github.com/nao1215/cloudscraper/internal/log"
	"github.com/nao1215/cloudscraper/internal/match"
	"github.com/nao1215/cloudscraper/internal/model"
	"github.com/nao1215/cloudscraper/internal/pipeline"
	"github.com/nao1215/cloudscraper/internal/progress"
	"github.com/nao1215/cloudscraper/internal/report"
	"github.com/nao1215/cloudscraper/internal/transport"
	"github.com/spf13/cobra"
)

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [url...]",
		Short: "Crawl a website and report links to cloud storage",
		Long: `Scan fetches the target page, follows every link on the target's host
breadth-first and reports each discovered link that contains a cloud
storage domain.

A target without a scheme is fetched over https. Links to other hosts are
recorded and matched but never followed. The crawl stops when a round
discovers no new link.

Examples:
  # Scan a single site
  cloudscraper scan example.com

  # Scan several sites, one after another
  cloudscraper scan -u example.com -u example.org

  # Scan every URL in a file
  cloudscraper scan -l targets.txt

  # Look for extra domains and print network errors
  cloudscraper scan -k cloudfront.net -k r2.dev -v example.com

  # Go through a local Tor SOCKS proxy and write a Markdown report
  cloudscraper scan --proxy 127.0.0.1:9050 -m -o report.md example.com`,
		Args: cobra.ArbitraryArgs,
		RunE: runScanCmd,
	}

	// Targets
	cmd.Flags().StringArrayP("url", "u", nil,
		"Target URL (repeatable, https:// is added when no scheme is given)")
	cmd.Flags().StringP("list", "l", "",
		"File with one target URL per line")

	// Crawl behavior
	cmd.Flags().IntP(config.FlagDepth, "d", config.DefaultMaxDepth,
		"Maximum crawl depth")
	cmd.Flags().IntP(config.FlagWorkers, "p", config.DefaultWorkers,
		"Number of concurrent requests per round")
	cmd.Flags().DurationP(config.FlagTimeout, "t", config.DefaultTimeout,
		"Timeout for each request")
	cmd.Flags().String(config.FlagUserAgent, config.DefaultUserAgent,
		"User-Agent header sent with each request")
	cmd.Flags().Bool(config.FlagNoVerify, false,
		"Skip TLS certificate verification")
	cmd.Flags().String(config.FlagProxy, "",
		"SOCKS5 proxy address (e.g., 127.0.0.1:9050)")
	cmd.Flags().Int64(config.FlagMaxBodySize, config.DefaultMaxBodySize,
		"Maximum response body size in bytes")

	// Matching
	cmd.Flags().StringArrayP(config.FlagKeyword, "k", nil,
		"Domain to look for in links (repeatable, replaces the default list)")
	cmd.Flags().String(config.FlagKeywordFile, "",
		"File with one domain per line (takes precedence over --keyword)")

	cmd.Flags().StringP("config", "c", "",
		"Settings file path (default: .cloudscraper in current, XDG config or home directory)")

	// Report
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

func runScanCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	targets := cfg.Targets
	if cfg.TargetListFile != "" {
		targets, err = config.LoadTargetList(cfg.TargetListFile)
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}
	}

	logger := log.NewSecureLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	console := progress.NewConsole(os.Stderr)
	defer console.Stop()

	return runScan(ctx, cfg, targets, logger, console, os.Stdout)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from flags, the settings file and the
// keywords file, in increasing order of precedence.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	urls, err := flags.GetStringArray("url")
	if err != nil {
		return nil, err
	}
	for _, raw := range append(append([]string{}, args...), urls...) {
		if target := config.NormalizeTarget(raw); target != "" {
			cfg.Targets = append(cfg.Targets, target)
		}
	}

	if cfg.TargetListFile, err = flags.GetString("list"); err != nil {
		return nil, err
	}
	if cfg.MaxDepth, err = flags.GetInt(config.FlagDepth); err != nil {
		return nil, err
	}
	if cfg.Workers, err = flags.GetInt(config.FlagWorkers); err != nil {
		return nil, err
	}
	if cfg.Timeout, err = flags.GetDuration(config.FlagTimeout); err != nil {
		return nil, err
	}
	if cfg.UserAgent, err = flags.GetString(config.FlagUserAgent); err != nil {
		return nil, err
	}
	if cfg.SkipTLSVerify, err = flags.GetBool(config.FlagNoVerify); err != nil {
		return nil, err
	}
	if cfg.ProxyAddress, err = flags.GetString(config.FlagProxy); err != nil {
		return nil, err
	}
	if cfg.MaxBodySize, err = flags.GetInt64(config.FlagMaxBodySize); err != nil {
		return nil, err
	}
	if cfg.Keywords, err = flags.GetStringArray(config.FlagKeyword); err != nil {
		return nil, err
	}
	if cfg.KeywordsFile, err = flags.GetString(config.FlagKeywordFile); err != nil {
		return nil, err
	}
	if cfg.ConfigFilePath, err = flags.GetString("config"); err != nil {
		return nil, err
	}
	if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
		return nil, err
	}
	if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
		return nil, err
	}
	if cfg.ReportFile, err = flags.GetString("output"); err != nil {
		return nil, err
	}
	cfg.Verbose = getVerboseFlag(cmd)

	// An explicit --config must exist; otherwise a missing file is fine.
	if path := config.FindSettingsFile(cfg.ConfigFilePath); path != "" {
		settings, err := config.LoadSettingsFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load settings file %s: %w", path, err)
		}
		settings.Apply(cfg, flags.Changed)
	} else if cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	if cfg.KeywordsFile != "" {
		keywords, err := config.LoadKeywordFile(cfg.KeywordsFile)
		if err != nil {
			return nil, fmt.Errorf("configuration error: %w", err)
		}
		cfg.Keywords = keywords
	}

	return cfg, nil
}

// runScan crawls each target in turn and writes one report per target.
func runScan(
	ctx context.Context,
	cfg *config.Config,
	targets []string,
	logger *slog.Logger,
	console *progress.Console,
	stdout io.Writer,
) error {
	console.Banner()

	if cfg.SkipTLSVerify {
		console.Warn("TLS certificate verification is disabled")
	}

	opts := []transport.Option{
		transport.WithTimeout(cfg.Timeout),
		transport.WithSkipTLSVerify(cfg.SkipTLSVerify),
	}
	if cfg.ProxyAddress != "" {
		opts = append(opts, transport.WithProxy(cfg.ProxyAddress))
	}
	client, err := transport.NewClient(opts...)
	if err != nil {
		return fmt.Errorf("failed to create HTTP client: %w", err)
	}

	if cfg.ProxyAddress != "" {
		if status := client.CheckProxy(ctx); status != transport.ProxyStatusOK {
			return fmt.Errorf("proxy check failed: %w (make sure a SOCKS5 proxy is running at %s)",
				status.Error(), cfg.ProxyAddress)
		}
		logger.Info("SOCKS5 proxy verified", "address", cfg.ProxyAddress)
	}

	fetcher := crawler.NewHTTPFetcher(client.HTTPClient(),
		crawler.WithUserAgent(cfg.UserAgent),
		crawler.WithMaxBodySize(cfg.MaxBodySize),
	)
	spider := crawler.NewSpider(fetcher,
		crawler.WithMaxDepth(cfg.MaxDepth),
		crawler.WithWorkers(cfg.Workers),
		crawler.WithVerbose(cfg.Verbose),
		crawler.WithLogger(logger),
		crawler.WithObserver(console),
	)
	matcher := match.NewMatcher(cfg.Keywords)

	logger.Info("starting scan",
		"targets", len(targets),
		"depth", cfg.MaxDepth,
		"workers", cfg.Workers,
		"keywords", matcher.Keywords(),
	)

	output, closeOutput, err := openReportOutput(cfg.ReportFile, stdout)
	if err != nil {
		return err
	}
	defer closeOutput()

	writer := newReportWriter(cfg, output, cfg.ReportFile == "" && isTerminal(stdout))

	bp := pipeline.NewBatchProcessor(
		func() *pipeline.Pipeline {
			return pipeline.DefaultPipeline(spider, matcher, logger)
		},
		pipeline.WithBatchLogger(logger),
		pipeline.WithOnStart(func(target string, _ int) {
			console.TargetStarted(target)
		}),
	)

	var writeErr error
	batchErr := bp.ProcessBatch(ctx, targets, func(r *model.ScanReport, _ int) {
		console.Stop()

		// Network errors were already shown by the spider in verbose mode.
		var netErr *crawler.NetworkError
		if r.Error != nil && !r.Cancelled && !errors.As(r.Error, &netErr) {
			console.Error(r.Error)
		}

		if _, err := writer.Write(r); err != nil {
			logger.Error("report failed", "target", r.Target, "error", err)
			writeErr = errors.Join(writeErr, fmt.Errorf("failed to write report for %s: %w", r.Target, err))
		}
	})

	if batchErr != nil {
		console.Warn("Scan interrupted, the last report is partial")
		return errors.Join(fmt.Errorf("scan interrupted: %w", batchErr), writeErr)
	}
	return writeErr
}

// openReportOutput returns the report destination. A report file is
// created with owner-only permissions since it may hold presigned URLs.
func openReportOutput(path string, stdout io.Writer) (io.Writer, func(), error) {
	if path == "" {
		return stdout, func() {}, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil //nolint:errcheck // Close error after writes is not actionable
}

// newReportWriter selects the report format from cfg.
func newReportWriter(cfg *config.Config, output io.Writer, color bool) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewFullJSONWriter(output, getVersion(), report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewSimpleWriter(output,
			report.WithVerbose(cfg.Verbose),
			report.WithShowRounds(cfg.Verbose),
			report.WithColor(color),
		)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
