// Package crawler discovers the URLs reachable from a seed page.
//
// # Components
//
//   - ExtractLinks: pulls absolute http(s) URLs out of raw page text
//   - IsAbsoluteURL / Authority: URL validation and scope keys
//   - HTTPFetcher: a single GET with a fixed User-Agent
//   - Spider: breadth-first frontier expansion over rounds
//
// # Rounds
//
// The Spider fetches the whole frontier of a round with a bounded pool of
// workers and waits for all of them before it computes the next frontier.
// Only the Spider's own loop touches the visited set, between rounds, so
// workers never share mutable state.
//
// # Usage
//
//	fetcher := crawler.NewHTTPFetcher(client)
//	spider := crawler.NewSpider(fetcher, crawler.WithMaxDepth(5), crawler.WithWorkers(2))
//	result, err := spider.Crawl(ctx, "https://example.com")
package crawler
