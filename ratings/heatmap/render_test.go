package heatmap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPalette = map[string]string{
	"TV Episode": "#4f46e5",
	"Movie":      "#16a34a",
	"TV Series":  "#ea580c",
	"Short":      "#0d9488",
}

func testOptions() Options {
	return Options{Palette: testPalette}
}

func day(y int, m time.Month, d, count int, categories ...string) Day {
	return Day{
		Date:       time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Count:      count,
		Categories: categories,
	}
}

func TestIntensityBoundsAndMonotonic(t *testing.T) {
	assert := assert.New(t)

	// A single rating on the only active day maxes out exactly.
	assert.Equal(1.0, Intensity(1, 1))

	prev := 0.0
	for count := 1; count <= 50; count++ {
		v := Intensity(count, 50)
		assert.GreaterOrEqual(v, 0.4)
		assert.LessOrEqual(v, 1.0)
		assert.GreaterOrEqual(v, prev)
		prev = v
	}

	// Quiet days are floored so they stay visible.
	assert.Equal(0.4, Intensity(1, 100))
}

func TestYearCellsCoversWholeYear(t *testing.T) {
	assert := assert.New(t)

	days := []Day{day(2023, time.June, 10, 1, "Movie")}
	cells, _, err := YearCells(days, 2023, 1, testOptions())
	require.NoError(t, err)
	assert.Len(cells, 365)

	withData := 0
	for _, c := range cells {
		if c.HasData {
			withData++
		}
	}
	assert.Equal(1, withData)

	// Leap year.
	days = []Day{day(2024, time.February, 29, 1, "Movie")}
	cells, _, err = YearCells(days, 2024, 1, testOptions())
	require.NoError(t, err)
	assert.Len(cells, 366)
}

func TestYearCellsBlendedFill(t *testing.T) {
	assert := assert.New(t)

	// Two ratings of different types on one day, and that day is the
	// busiest overall: intensity 1.0, so the fill is exactly the mean
	// blend of indigo and green.
	days := []Day{day(2023, time.January, 15, 2, "TV Episode", "Movie")}
	cells, legend, err := YearCells(days, 2023, 2, testOptions())
	require.NoError(t, err)

	assert.Equal([]string{"Movie", "TV Episode"}, legend)

	want, err := HexToRGB("#327497")
	require.NoError(t, err)

	var found bool
	for _, c := range cells {
		if !c.HasData {
			continue
		}
		found = true
		assert.InDelta(want.R, c.Fill.R, 1e-9)
		assert.InDelta(want.G, c.Fill.G, 1e-9)
		assert.InDelta(want.B, c.Fill.B, 1e-9)
	}
	assert.True(found)
}

func TestYearCellsBackgroundForEmptyDays(t *testing.T) {
	assert := assert.New(t)

	days := []Day{day(2023, time.June, 10, 1, "Movie")}
	cells, _, err := YearCells(days, 2023, 1, testOptions())
	require.NoError(t, err)

	bg, err := HexToRGB("#ebedf0")
	require.NoError(t, err)
	for _, c := range cells {
		if c.HasData {
			continue
		}
		assert.Equal(bg, c.Fill)
	}
}

func TestYearCellsQuietDayStaysVisible(t *testing.T) {
	assert := assert.New(t)

	// One rating against a busiest day of 100: the 0.4 floor applies,
	// so the fill must differ from both the background and the pure
	// category color.
	days := []Day{day(2023, time.June, 10, 1, "Movie")}
	cells, _, err := YearCells(days, 2023, 100, testOptions())
	require.NoError(t, err)

	bg, _ := HexToRGB("#ebedf0")
	pure, _ := HexToRGB(testPalette["Movie"])
	for _, c := range cells {
		if !c.HasData {
			continue
		}
		assert.NotEqual(bg, c.Fill)
		assert.NotEqual(pure, c.Fill)
		assert.Equal(lerp(bg, pure, 0.4), c.Fill)
	}
}

func TestYearCellsUnknownCategoryUsesDefault(t *testing.T) {
	assert := assert.New(t)

	days := []Day{day(2023, time.June, 10, 1, "Podcast Episode")}
	cells, legend, err := YearCells(days, 2023, 1, testOptions())
	require.NoError(t, err)

	assert.Equal([]string{"Podcast Episode"}, legend)

	want, _ := HexToRGB("#64748b")
	for _, c := range cells {
		if c.HasData {
			assert.Equal(want, c.Fill)
		}
	}
}

func TestYearCellsNoDataForYear(t *testing.T) {
	days := []Day{day(2022, time.June, 10, 1, "Movie")}
	_, _, err := YearCells(days, 2023, 1, testOptions())
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	assert := assert.New(t)

	days := []Day{
		day(2023, time.January, 15, 2, "TV Episode", "Movie"),
		day(2023, time.June, 10, 1, "Short"),
		day(2022, time.December, 31, 3, "Movie"),
	}

	p, err := Render(days, 2023, 3, testOptions())
	assert.NoError(err)
	assert.NotNil(p)

	_, err = Render(days, 2021, 3, testOptions())
	assert.Error(err)
}

func TestMonthTicks(t *testing.T) {
	assert := assert.New(t)

	ticks := monthTicks{year: 2023, step: 1.15}.Ticks(0, 53*1.15)
	assert.Len(ticks, 12)
	assert.Equal("Jan", ticks[0].Label)
	assert.Equal(0.0, ticks[0].Value)
	assert.Equal("Dec", ticks[11].Label)

	// Columns never repeat and never decrease.
	for i := 1; i < len(ticks); i++ {
		assert.Greater(ticks[i].Value, ticks[i-1].Value)
	}
}

func TestWeekdayTicks(t *testing.T) {
	assert := assert.New(t)

	ticks := weekdayTicks{step: 1.15, cell: 1.0}.Ticks(0, 7*1.15)
	assert.Len(ticks, 3)
	assert.Equal("Mon", ticks[0].Label)
	assert.Equal("Wed", ticks[1].Label)
	assert.Equal("Fri", ticks[2].Label)
}
