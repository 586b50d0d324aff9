package heatmap

import "time"

// Weeks is the fixed number of week columns. Every year fits in 53
// Sunday-aligned columns regardless of where January 1 falls.
const Weeks = 53

// CellPosition maps a date within a year to its (column, row) in the
// grid. Rows are Sunday-indexed weekdays (Sunday = 0, drawn at the top).
// Columns are whole weeks counted from the Sunday on or before January 1,
// so the first column may be partially filled. Dates outside the year of
// jan1 are not meaningful here; callers filter by year first.
func CellPosition(d, jan1 time.Time) (col, row int) {
	startOffset := int(jan1.Weekday())
	dayOfYear := d.YearDay() - 1
	return (dayOfYear + startOffset) / 7, int(d.Weekday())
}
