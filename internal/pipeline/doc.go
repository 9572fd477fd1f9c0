// Package pipeline runs the steps of a scan against one seed target and
// drives a list of targets one after another.
//
// A scan is two steps: CrawlStep expands the seed's link frontier until no
// new URL appears, and MatchStep selects the cloud storage references from
// the visited set. Both write into a shared *model.ScanReport.
package pipeline
