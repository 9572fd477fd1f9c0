package match

import (
	"net"
	"net/url"
	"slices"
	"strings"

	"github.com/nao1215/cloudscraper/internal/model"
	"golang.org/x/net/publicsuffix"
)

// provider ties a storage domain to the service that owns it.
type provider struct {
	keyword string
	name    string
}

// knownProviders lists the default keywords in order.
var knownProviders = []provider{
	{keyword: "amazonaws.com", name: "Amazon Web Services"},
	{keyword: "digitaloceanspaces.com", name: "DigitalOcean Spaces"},
	{keyword: "windows.net", name: "Microsoft Azure"},
	{keyword: "storage.googleapis.com", name: "Google Cloud Storage"},
	{keyword: "aliyuncs.com", name: "Alibaba Cloud OSS"},
}

// DefaultKeywords returns the built-in storage domains. The returned slice
// is a fresh copy.
func DefaultKeywords() []string {
	keywords := make([]string, 0, len(knownProviders))
	for _, p := range knownProviders {
		keywords = append(keywords, p.keyword)
	}
	return keywords
}

// ProviderFor returns the provider name for keyword, or "" if keyword is
// not one of the built-in storage domains.
func ProviderFor(keyword string) string {
	for _, p := range knownProviders {
		if p.keyword == keyword {
			return p.name
		}
	}
	return ""
}

// Matcher filters URLs by keyword.
type Matcher struct {
	keywords []string
}

// NewMatcher creates a Matcher. Empty keywords are ignored; with no
// keywords at all the defaults are used.
func NewMatcher(keywords []string) *Matcher {
	kept := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k == "" || slices.Contains(kept, k) {
			continue
		}
		kept = append(kept, k)
	}
	if len(kept) == 0 {
		kept = DefaultKeywords()
	}
	return &Matcher{keywords: kept}
}

// Keywords returns the keywords in use.
func (m *Matcher) Keywords() []string {
	return slices.Clone(m.keywords)
}

// Match returns the URLs of urls that contain at least one keyword, in
// input order and without duplicates. The keyword recorded is the first
// configured keyword found in the URL.
func (m *Matcher) Match(urls []string) []model.Match {
	matches := make([]model.Match, 0)
	seen := make(map[string]struct{})

	for _, u := range urls {
		keyword, ok := m.firstKeyword(u)
		if !ok {
			continue
		}
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}

		matches = append(matches, model.Match{
			URL:      u,
			Keyword:  keyword,
			Provider: ProviderFor(keyword),
			Service:  ServiceFor(u),
			Resource: ResourceName(u),
		})
	}

	return matches
}

func (m *Matcher) firstKeyword(u string) (string, bool) {
	for _, k := range m.keywords {
		if strings.Contains(u, k) {
			return k, true
		}
	}
	return "", false
}

// ResourceName returns the registrable name of the URL's host according to
// the public suffix list. Storage domains that are listed as public
// suffixes, such as s3.amazonaws.com, therefore yield the bucket's own
// hostname. If the name cannot be determined the bare host is returned.
func ResourceName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return ""
	}
	if net.ParseIP(host) != nil {
		return host
	}

	name, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return name
}
