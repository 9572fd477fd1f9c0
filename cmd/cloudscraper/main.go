// Package main provides the entry point for the CloudScraper CLI.
//
// CloudScraper crawls a website breadth-first and reports every discovered
// link that points at a cloud storage provider (S3, Azure Blob Storage,
// Google Cloud Storage, DigitalOcean Spaces, Alibaba OSS).
//
// Usage:
//
//	cloudscraper scan <url>
//	cloudscraper scan --list <file>
//
// See --help for all available options.
package main

func main() {
	Execute()
}
