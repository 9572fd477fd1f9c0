package crawler

import (
	"regexp"
	"sort"
)

// linkPattern is a permissive URL token grammar. The $-_ range spans most
// ASCII punctuation, so IsAbsoluteURL has to drop the false positives.
// Whitespace ends a token, which splits srcset lists and prose.
var linkPattern = regexp.MustCompile(`https?://(?:[a-zA-Z]|[0-9]|[$-_@.&+]|[!*\(\),]|(?:%[0-9a-fA-F][0-9a-fA-F]))+`)

// ExtractLinks returns the distinct absolute URLs found in text, sorted.
// It is a pure function of its input.
func ExtractLinks(text string) []string {
	candidates := linkPattern.FindAllString(text, -1)

	seen := make(map[string]struct{}, len(candidates))
	links := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		if _, ok := seen[candidate]; ok {
			continue
		}
		seen[candidate] = struct{}{}
		if IsAbsoluteURL(candidate) {
			links = append(links, candidate)
		}
	}

	sort.Strings(links)
	return links
}
