package ratings

import (
	"fmt"
	"time"
)

// Date is a civil calendar date, safe for use as a map key.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// MarshalText lets Date serve as a JSON map key in the aggregate cache.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Record is one rated title from the export: the day it was rated and its
// normalized title type.
type Record struct {
	Date     Date
	Category string
}

// CategoryColors maps each title type to its swatch color.
var CategoryColors = map[string]string{
	"TV Episode": "#4f46e5", // indigo
	"Movie":      "#16a34a", // green
	"TV Series":  "#ea580c", // orange
	"Short":      "#0d9488", // teal
}

// DefaultColor is used for title types without a palette entry.
const DefaultColor = "#64748b"

// categoryMapping folds rare title types into the main ones. An empty
// string means the type is excluded from aggregation entirely.
var categoryMapping = map[string]string{
	"TV Movie":       "Movie",
	"TV Mini Series": "TV Series",
	"TV Short":       "Short",
	"TV Special":     "TV Series",
	"Video":          "",
	"Video Game":     "",
}

// NormalizeCategory maps a raw title type to its canonical category.
// The second return is false when the type is excluded (non-narrative
// media such as video games). Unknown types pass through unchanged.
func NormalizeCategory(raw string) (string, bool) {
	mapped, ok := categoryMapping[raw]
	if !ok {
		return raw, true
	}
	if mapped == "" {
		return "", false
	}
	return mapped, true
}

// ColorFor returns the palette color for a category.
func ColorFor(category string) string {
	if c, ok := CategoryColors[category]; ok {
		return c
	}
	return DefaultColor
}
