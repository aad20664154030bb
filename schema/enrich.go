package schema

// EnrichedContributor adds presentation data to a ContributorStat.
type EnrichedContributor struct {
	Rank  int     `json:"rank"`
	Share float64 `json:"share"`
	ContributorStat
}

// EnrichContributors adds rank and commit share to the top n contributors.
// A non-positive n keeps the whole list.
func EnrichContributors(r *AggregateReport, n int) []EnrichedContributor {
	contributors := r.Contributors
	if n > 0 && n < len(contributors) {
		contributors = contributors[:n]
	}
	output := make([]EnrichedContributor, len(contributors))
	for i, c := range contributors {
		share := 0.0
		if r.TotalCommits > 0 {
			share = 100 * float64(c.Commits) / float64(r.TotalCommits)
		}
		output[i] = EnrichedContributor{
			Rank:            i + 1,
			Share:           share,
			ContributorStat: c,
		}
	}
	return output
}

// HeatmapView projects the heatmap-facing slice of a report.
func (r *AggregateReport) HeatmapView() HeatmapSummary {
	return HeatmapSummary{
		TotalCommits: r.TotalCommits,
		PeakHour:     r.PeakHour,
		PeakWeekday:  r.PeakWeekday,
		Matrix:       r.Heatmap,
	}
}
