package main

import (
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/screenlog/ratemap/ratings"
)

type yearStats struct {
	year       int
	activeDays int
	total      int
	busiest    ratings.Date
	busiestN   int
	categories map[string]bool
}

// statsTable prints a per-year activity summary to stdout.
func statsTable(source sourceOptions) error {
	byDate, err := loadAggregates(source)
	if err != nil {
		return err
	}

	byYear := make(map[int]*yearStats)
	for date, agg := range byDate {
		ys := byYear[date.Year]
		if ys == nil {
			ys = &yearStats{year: date.Year, categories: make(map[string]bool)}
			byYear[date.Year] = ys
		}
		ys.activeDays++
		ys.total += agg.Count
		for c := range agg.Categories {
			ys.categories[c] = true
		}
		if agg.Count > ys.busiestN || (agg.Count == ys.busiestN && date.Time().Before(ys.busiest.Time())) {
			ys.busiest = date
			ys.busiestN = agg.Count
		}
	}

	var results []*yearStats
	for _, ys := range byYear {
		results = append(results, ys)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].year > results[j].year })

	tw := tablewriter.NewWriter(os.Stdout)
	tw.Header("year", "active days", "ratings", "busiest day", "title types")
	for _, ys := range results {
		var categories []string
		for c := range ys.categories {
			categories = append(categories, c)
		}
		sort.Strings(categories)
		if err := tw.Append([]string{
			strconv.Itoa(ys.year),
			strconv.Itoa(ys.activeDays),
			strconv.Itoa(ys.total),
			ys.busiest.String(),
			strings.Join(categories, ", "),
		}); err != nil {
			return err
		}
	}
	return tw.Render()
}
