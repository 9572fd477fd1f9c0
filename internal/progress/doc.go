// Package progress prints crawl progress for the operator.
//
// Console implements crawler.Observer. It draws a spinner with the
// processed/total count of the current round and prints one line per
// finished round. Colors and the spinner are only used when the output is
// a terminal.
package progress
