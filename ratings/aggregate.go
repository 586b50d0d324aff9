package ratings

import "sort"

// DayAggregate summarises one day of rating activity.
type DayAggregate struct {
	Count      int             `json:"count"`
	Categories map[string]bool `json:"categories"`
}

// CategoryNames returns the day's categories sorted by name.
func (da *DayAggregate) CategoryNames() []string {
	names := make([]string, 0, len(da.Categories))
	for c := range da.Categories {
		names = append(names, c)
	}
	sort.Strings(names)
	return names
}

// Aggregate groups records by day. Each record increments its day's count
// and adds its category to the day's set, so the result is independent of
// input order. Records are assumed to already carry normalized categories.
func Aggregate(records []Record) map[Date]*DayAggregate {
	byDate := make(map[Date]*DayAggregate)
	for _, r := range records {
		agg := byDate[r.Date]
		if agg == nil {
			agg = &DayAggregate{Categories: make(map[string]bool)}
			byDate[r.Date] = agg
		}
		agg.Count++
		agg.Categories[r.Category] = true
	}
	return byDate
}

// Years returns the distinct years present, most recent first. An empty
// dataset yields an empty slice; callers treat that as "nothing to render".
func Years(byDate map[Date]*DayAggregate) []int {
	seen := make(map[int]bool)
	for d := range byDate {
		seen[d.Year] = true
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// MaxDailyCount returns the highest single-day count across the whole
// dataset. It is computed once so that color intensity is comparable
// between the yearly images. Empty input yields 1.
func MaxDailyCount(byDate map[Date]*DayAggregate) int {
	max := 1
	for _, agg := range byDate {
		if agg.Count > max {
			max = agg.Count
		}
	}
	return max
}
