package stats

import (
	"sort"
	"time"

	"github.com/gitpulse/gitpulse/schema"
)

// dayStamp is an author-local calendar date reduced to a comparable key.
type dayStamp struct {
	year  int
	month time.Month
	day   int
}

// commitStreaks computes active-day and streak metrics. Days are the
// author-local calendar dates of the records. The current streak is
// anchored at the latest active day rather than the wall clock, so the
// same history always produces the same summary.
func commitStreaks(records []schema.CommitRecord) schema.StreakSummary {
	if len(records) == 0 {
		return schema.StreakSummary{}
	}

	seen := make(map[dayStamp]struct{})
	for _, rec := range records {
		y, m, d := rec.Timestamp.Date()
		seen[dayStamp{y, m, d}] = struct{}{}
	}

	days := make([]time.Time, 0, len(seen))
	for stamp := range seen {
		days = append(days, time.Date(stamp.year, stamp.month, stamp.day, 0, 0, 0, 0, time.UTC))
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	summary := schema.StreakSummary{
		ActiveDays:    len(days),
		LongestStreak: 1,
	}
	run := 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > summary.LongestStreak {
			summary.LongestStreak = run
		}
	}
	summary.CurrentStreak = run
	return summary
}
