// Package outwriter has output and writer logic.
package outwriter

import (
	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/schema"
)

// dayFormat renders calendar dates in table cells, where full RFC 3339
// timestamps would be too wide.
const dayFormat = "2006-01-02"

// topContributors returns the first TopContributors entries of the ranked
// contributor list. Aggregation keeps the list sorted already.
func topContributors(report *schema.AggregateReport, cfg *contract.Config) []schema.ContributorStat {
	if cfg.TopContributors <= 0 || cfg.TopContributors >= len(report.Contributors) {
		return report.Contributors
	}
	return report.Contributors[:cfg.TopContributors]
}

// shareOf returns commits as a percentage of the total commit count.
func shareOf(commits, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(commits) / float64(total)
}
