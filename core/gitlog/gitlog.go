// Package gitlog turns raw commit log lines into commit records.
package gitlog

import (
	"bufio"
	"bytes"
	"iter"
	"strings"
	"time"

	"github.com/gitpulse/gitpulse/schema"
)

// Log lines are pipe-delimited: timestamp|name|email, with an optional
// trailing short-hash field. The delimiter is reserved; a name or email
// containing it makes the line malformed.
const (
	fieldDelimiter = "|"
	minLineFields  = 3
	maxLineFields  = 4
)

// gitDateLayout is git's default log date format, accepted as a fallback
// when a timestamp is not strict RFC 3339.
const gitDateLayout = "2006-01-02 15:04:05 -0700"

// Lines returns a lazy, single-use line iterator over raw log output.
func Lines(out []byte) iter.Seq[string] {
	scanner := bufio.NewScanner(bytes.NewReader(out))
	return func(yield func(string) bool) {
		for scanner.Scan() {
			if !yield(scanner.Text()) {
				return
			}
		}
	}
}

// Records converts raw log lines into a lazy sequence of commit records,
// one record materialized per input line. The sequence is forward-only and
// single-use, not restartable.
//
// A malformed line is skipped, never fatal. The returned finish func reports
// how many lines were skipped; call it once iteration has stopped. Blank
// lines are ignored without counting as skips, so a trailing newline does
// not show up as a parse failure. Empty input yields an empty sequence.
func Records(lines iter.Seq[string]) (iter.Seq[schema.CommitRecord], func() int) {
	var skipped int

	seq := func(yield func(schema.CommitRecord) bool) {
		for line := range lines {
			if strings.TrimSpace(line) == "" {
				continue
			}
			rec, ok := parseLine(line)
			if !ok {
				skipped++
				continue
			}
			if !yield(rec) {
				return
			}
		}
	}

	finish := func() int {
		return skipped
	}

	return seq, finish
}

// parseLine extracts one commit record from a log line.
func parseLine(line string) (schema.CommitRecord, bool) {
	parts := strings.Split(line, fieldDelimiter)
	if len(parts) < minLineFields || len(parts) > maxLineFields {
		return schema.CommitRecord{}, false
	}

	ts, err := parseTimestamp(strings.TrimSpace(parts[0]))
	if err != nil {
		return schema.CommitRecord{}, false
	}

	name := strings.TrimSpace(parts[1])
	email := strings.TrimSpace(parts[2])
	if name == "" && email == "" {
		return schema.CommitRecord{}, false
	}

	rec := schema.CommitRecord{
		Author:    schema.FormatIdentity(name, email),
		Timestamp: ts,
	}
	if len(parts) == maxLineFields {
		rec.Hash = strings.TrimSpace(parts[3])
	}
	return rec, true
}

// parseTimestamp tries strict RFC 3339 first, then git's default layout.
// The author's UTC offset is preserved either way.
func parseTimestamp(s string) (time.Time, error) {
	ts, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return ts, nil
	}
	return time.Parse(gitDateLayout, s)
}
