package schema

import "time"

// Heatmap dimensions.
const (
	WeekdayCount = 7
	HourCount    = 24
)

// NoPeak marks a peak index computed from zero records. It is distinct from
// any real index so callers cannot mistake "no data" for midnight or Monday.
const NoPeak = -1

// WeekdayNames lists display names index-aligned with the matrix rows.
var WeekdayNames = [WeekdayCount]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// HeatmapMatrix is a 7x24 grid of commit counts indexed by ISO weekday
// (0=Monday..6=Sunday) and hour of day (0-23). Cells are bucketed by the
// author's local wall clock: timestamps keep their original UTC offset, so
// a commit made at 09:15 in Auckland lands in hour 9 no matter where the
// report is generated.
type HeatmapMatrix [WeekdayCount][HourCount]int

// ISOWeekday converts t's weekday to ISO numbering with Monday as 0.
func ISOWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// Total returns the sum of all cells.
func (m HeatmapMatrix) Total() int {
	total := 0
	for day := range WeekdayCount {
		for hour := range HourCount {
			total += m[day][hour]
		}
	}
	return total
}

// HourTotals returns the per-hour sums across all weekdays.
func (m HeatmapMatrix) HourTotals() [HourCount]int {
	var totals [HourCount]int
	for day := range WeekdayCount {
		for hour := range HourCount {
			totals[hour] += m[day][hour]
		}
	}
	return totals
}

// WeekdayTotals returns the per-weekday sums across all hours.
func (m HeatmapMatrix) WeekdayTotals() [WeekdayCount]int {
	var totals [WeekdayCount]int
	for day := range WeekdayCount {
		for hour := range HourCount {
			totals[day] += m[day][hour]
		}
	}
	return totals
}

// Max returns the largest single cell value.
func (m HeatmapMatrix) Max() int {
	best := 0
	for day := range WeekdayCount {
		for hour := range HourCount {
			if m[day][hour] > best {
				best = m[day][hour]
			}
		}
	}
	return best
}

// HeatmapSummary is the heatmap-only projection of a report, used by the
// heatmap command's structured outputs.
type HeatmapSummary struct {
	TotalCommits int           `json:"total_commits"`
	PeakHour     int           `json:"peak_hour"`
	PeakWeekday  int           `json:"peak_weekday"`
	Matrix       HeatmapMatrix `json:"matrix"`
}
