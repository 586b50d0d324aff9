package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"gonum.org/v1/plot/vg"

	"github.com/screenlog/ratemap/ratings"
	"github.com/screenlog/ratemap/ratings/heatmap"
)

// sourceOptions selects where the ratings come from and whether the
// aggregate cache is consulted. A non-empty dsn switches the source from
// the CSV export to Postgres; the cache only applies to the CSV path.
type sourceOptions struct {
	ratingsDir string
	dsn        string
	cacheDB    string
	noCache    bool
}

func loadAggregates(opts sourceOptions) (map[ratings.Date]*ratings.DayAggregate, error) {
	if opts.dsn != "" {
		log.Printf("loading ratings from postgres")
		records, err := ratings.LoadPostgres(opts.dsn, "")
		if err != nil {
			return nil, err
		}
		log.Printf("loaded %d ratings", len(records))
		return ratings.Aggregate(records), nil
	}

	path, err := ratings.FindExport(opts.ratingsDir)
	if err != nil {
		return nil, err
	}
	log.Printf("loading ratings from: %s", path)

	var cache *aggregateCache
	var checksum string
	if !opts.noCache {
		checksum, err = exportChecksum(path)
		if err != nil {
			return nil, err
		}
		cache = &aggregateCache{opts.cacheDB}
		cached, err := cache.get(checksum)
		if err != nil {
			return nil, err
		}
		if cached != nil {
			log.Printf("using cached aggregates for this export")
			return cached, nil
		}
	}

	records, err := ratings.LoadCSV(path)
	if err != nil {
		return nil, err
	}
	log.Printf("loaded %d ratings", len(records))

	byDate := ratings.Aggregate(records)
	if cache != nil {
		if err := cache.put(checksum, byDate); err != nil {
			return nil, err
		}
	}
	return byDate, nil
}

type generateProcessor struct {
	source        sourceOptions
	outputDir     string
	cellSize      float64
	splitCategory bool
}

func (gp *generateProcessor) run() error {
	byDate, err := loadAggregates(gp.source)
	if err != nil {
		return err
	}
	log.Printf("aggregated to %d unique dates", len(byDate))

	years := ratings.Years(byDate)
	if len(years) == 0 {
		log.Println("no ratings to render")
		return nil
	}
	maxCount := ratings.MaxDailyCount(byDate)
	log.Printf("max ratings per day: %d", maxCount)
	log.Printf("years: %d - %d", years[len(years)-1], years[0])

	if err := os.MkdirAll(gp.outputDir, 0755); err != nil {
		return err
	}

	days := toDays(byDate)
	for _, year := range years {
		if err := gp.renderYear(days, year, maxCount); err != nil {
			return err
		}
	}

	return gp.writeOverview(years)
}

func (gp *generateProcessor) renderYear(days []heatmap.Day, year, maxCount int) error {
	opts := heatmap.Options{
		Palette:      ratings.CategoryColors,
		DefaultColor: ratings.DefaultColor,
		CellSize:     gp.cellSize,
		Title:        fmt.Sprintf("IMDb ratings %d", year),
	}

	p, err := heatmap.Render(days, year, maxCount, opts)
	if err != nil {
		return err
	}
	out := filepath.Join(gp.outputDir, artifactName(year))
	if err := p.Save(14*vg.Inch, 3*vg.Inch, out); err != nil {
		return err
	}
	log.Printf("generated: %s", out)

	if !gp.splitCategory {
		return nil
	}
	for _, category := range yearCategories(days, year) {
		opts.Title = fmt.Sprintf("IMDb ratings %d - %s", year, category)
		p, err := heatmap.Render(categoryDays(days, category), year, maxCount, opts)
		if err != nil {
			return err
		}
		out := filepath.Join(gp.outputDir, categoryArtifactName(year, category))
		if err := p.Save(14*vg.Inch, 3*vg.Inch, out); err != nil {
			return err
		}
		log.Printf("generated: %s", out)
	}
	return nil
}

func (gp *generateProcessor) writeOverview(years []int) error {
	path := filepath.Join(gp.outputDir, overviewName)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(f, "# IMDb Ratings Calendar Heatmaps\n\n")

	fmt.Fprintf(f, "## Color Legend\n\n")
	fmt.Fprintf(f, "| Title Type | Color |\n")
	fmt.Fprintf(f, "|------------|-------|\n")
	for _, category := range sortedCategories() {
		fmt.Fprintf(f, "| %s | %s |\n", category, ratings.CategoryColors[category])
	}
	fmt.Fprintf(f, "\n")
	fmt.Fprintf(f, "*Color intensity indicates number of ratings per day. ")
	fmt.Fprintf(f, "Mixed colors appear when multiple title types are rated on the same day.*\n\n")

	fmt.Fprintf(f, "## Yearly Overview\n\n")
	for _, year := range years {
		fmt.Fprintf(f, "### %d\n\n", year)
		fmt.Fprintf(f, "![IMDb Ratings %d](%s)\n\n", year, artifactName(year))
	}

	log.Printf("generated markdown: %s", path)
	return nil
}

func sortedCategories() []string {
	categories := make([]string, 0, len(ratings.CategoryColors))
	for category := range ratings.CategoryColors {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

func toDays(byDate map[ratings.Date]*ratings.DayAggregate) []heatmap.Day {
	days := make([]heatmap.Day, 0, len(byDate))
	for date, agg := range byDate {
		days = append(days, heatmap.Day{
			Date:       date.Time(),
			Count:      agg.Count,
			Categories: agg.CategoryNames(),
		})
	}
	return days
}

func yearCategories(days []heatmap.Day, year int) []string {
	seen := make(map[string]bool)
	for _, d := range days {
		if d.Date.Year() != year {
			continue
		}
		for _, category := range d.Categories {
			seen[category] = true
		}
	}
	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// categoryDays narrows the dataset to days on which the category was
// rated. Counts stay whole-day so intensity remains comparable with the
// combined grid.
func categoryDays(days []heatmap.Day, category string) []heatmap.Day {
	var out []heatmap.Day
	for _, d := range days {
		for _, c := range d.Categories {
			if c == category {
				out = append(out, heatmap.Day{Date: d.Date, Count: d.Count, Categories: []string{category}})
				break
			}
		}
	}
	return out
}
