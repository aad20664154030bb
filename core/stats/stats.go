// Package stats computes aggregate statistics over parsed commit records.
package stats

import (
	"sort"

	"github.com/gitpulse/gitpulse/schema"
)

// Aggregate computes one report over the full record slice. It is a pure
// function of its input: no side effects, no retained state, and identical
// input produces an identical report.
//
// Zero records is a defined boundary state, not an error: the report comes
// back with a zero total, an all-zero heatmap and NoPeak markers. A record
// that violates the parser's construction invariants fails the run with a
// DataIntegrityError naming the record index.
func Aggregate(records []schema.CommitRecord) (*schema.AggregateReport, error) {
	report := &schema.AggregateReport{
		PeakHour:     schema.NoPeak,
		PeakWeekday:  schema.NoPeak,
		Contributors: []schema.ContributorStat{},
	}
	if len(records) == 0 {
		return report, nil
	}

	if err := checkIntegrity(records); err != nil {
		return nil, err
	}

	report.TotalCommits = len(records)
	for _, rec := range records {
		report.Heatmap[schema.ISOWeekday(rec.Timestamp)][rec.Timestamp.Hour()]++
		if report.FirstCommit.IsZero() || rec.Timestamp.Before(report.FirstCommit) {
			report.FirstCommit = rec.Timestamp
		}
		if rec.Timestamp.After(report.LastCommit) {
			report.LastCommit = rec.Timestamp
		}
	}

	hours := report.Heatmap.HourTotals()
	days := report.Heatmap.WeekdayTotals()
	report.PeakHour = peakIndex(hours[:])
	report.PeakWeekday = peakIndex(days[:])

	report.Contributors = contributorStats(records)
	report.Streaks = commitStreaks(records)
	report.CommitsPerDay = float64(report.TotalCommits) / float64(report.DaySpan())

	return report, nil
}

// checkIntegrity verifies the invariants the parser guarantees by
// construction. A violation means the contract was broken upstream, not
// that the repository input was bad.
func checkIntegrity(records []schema.CommitRecord) error {
	for i, rec := range records {
		if rec.Timestamp.IsZero() {
			return &schema.DataIntegrityError{Index: i, Reason: "zero timestamp"}
		}
		if rec.Author == "" {
			return &schema.DataIntegrityError{Index: i, Reason: "empty author identity"}
		}
	}
	return nil
}

// peakIndex returns the index with the highest total. Ties resolve to the
// lowest index so repeated runs stay reproducible.
func peakIndex(totals []int) int {
	best := 0
	for i, total := range totals {
		if total > totals[best] {
			best = i
		}
	}
	return best
}

// contributorStats groups records by exact identity match and orders the
// result by commit count descending, then identity ascending. The stable
// order makes the report byte-for-byte reproducible.
func contributorStats(records []schema.CommitRecord) []schema.ContributorStat {
	byAuthor := make(map[string]*schema.ContributorStat)
	for _, rec := range records {
		stat, ok := byAuthor[rec.Author]
		if !ok {
			stat = &schema.ContributorStat{
				Author:      rec.Author,
				FirstCommit: rec.Timestamp,
				LastCommit:  rec.Timestamp,
			}
			byAuthor[rec.Author] = stat
		}
		stat.Commits++
		if rec.Timestamp.Before(stat.FirstCommit) {
			stat.FirstCommit = rec.Timestamp
		}
		if rec.Timestamp.After(stat.LastCommit) {
			stat.LastCommit = rec.Timestamp
		}
	}

	stats := make([]schema.ContributorStat, 0, len(byAuthor))
	for _, stat := range byAuthor {
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Commits != stats[j].Commits {
			return stats[i].Commits > stats[j].Commits
		}
		return stats[i].Author < stats[j].Author
	})
	return stats
}
