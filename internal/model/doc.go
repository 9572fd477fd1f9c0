// Package model defines the data produced by a cloudscraper scan.
//
// ScanReport is filled in by the pipeline steps (crawl, then match) and
// consumed by the report writers. It is serializable to JSON as-is.
package model
