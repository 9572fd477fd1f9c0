// Package match selects cloud storage references from crawled URLs.
//
// A URL matches when it contains any configured keyword as a plain,
// case-sensitive substring. The default keywords are the storage domains
// of the major object stores; a keyword file or the -k flag replaces them.
// Each match is annotated with the keyword that hit, the provider that
// keyword belongs to, and the registrable resource name of the URL's host.
package match
