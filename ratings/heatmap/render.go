package heatmap

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Day is one date's activity: how many ratings landed on it and which
// categories they belonged to.
type Day struct {
	Date       time.Time
	Count      int
	Categories []string
}

// Options configures one year's render.
type Options struct {
	Palette      map[string]string // category -> #rrggbb
	DefaultColor string            // for categories missing from Palette
	Background   string            // empty-cell color
	CellSize     float64           // cell edge in grid units
	Gap          float64           // spacing between cells in grid units
	Title        string
}

func (o Options) withDefaults() Options {
	if o.DefaultColor == "" {
		o.DefaultColor = "#64748b"
	}
	if o.Background == "" {
		o.Background = "#ebedf0"
	}
	if o.CellSize == 0 {
		o.CellSize = 1.0
	}
	if o.Gap == 0 {
		o.Gap = 0.15
	}
	return o
}

// step is the pitch between neighbouring cells.
func (o Options) step() float64 { return o.CellSize + o.Gap }

// Cell is one positioned, colored day cell.
type Cell struct {
	Col, Row int
	Fill     RGB
	HasData  bool
}

// Intensity maps a day's count to how strongly its color stands out
// against the background. The log transform keeps heavy days from
// washing out everything else; the 0.4 floor keeps single-rating days
// legible. maxCount is the busiest day across the whole dataset, not
// just the rendered year, so intensity is comparable between years.
func Intensity(count, maxCount int) float64 {
	if maxCount < 1 {
		maxCount = 1
	}
	v := math.Log1p(float64(count)) / math.Log1p(float64(maxCount))
	if v > 1 {
		v = 1
	}
	if v < 0.4 {
		v = 0.4
	}
	return v
}

// YearCells lays out and colors every day of the year, data or not. It
// also returns the categories observed in that year, sorted by name, for
// the legend. A year with no matching days is a caller bug: the year
// list is derived from the data.
func YearCells(days []Day, year, maxCount int, opts Options) ([]Cell, []string, error) {
	opts = opts.withDefaults()

	bg, err := HexToRGB(opts.Background)
	if err != nil {
		return nil, nil, err
	}

	byYearDay := make(map[int]Day)
	for _, d := range days {
		if d.Date.Year() != year {
			continue
		}
		byYearDay[d.Date.YearDay()] = d
	}
	if len(byYearDay) == 0 {
		return nil, nil, fmt.Errorf("heatmap: year %d has no data", year)
	}

	observed := make(map[string]bool)
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)

	var cells []Cell
	for d := jan1; d.Year() == year; d = d.AddDate(0, 0, 1) {
		col, row := CellPosition(d, jan1)
		cell := Cell{Col: col, Row: row, Fill: bg}

		if day, ok := byYearDay[d.YearDay()]; ok {
			colors := make([]string, 0, len(day.Categories))
			for _, cat := range day.Categories {
				observed[cat] = true
				colors = append(colors, paletteColor(cat, opts))
			}
			base, err := Blend(colors)
			if err != nil {
				return nil, nil, err
			}
			baseRGB, err := HexToRGB(base)
			if err != nil {
				return nil, nil, err
			}
			cell.Fill = lerp(bg, baseRGB, Intensity(day.Count, maxCount))
			cell.HasData = true
		}
		cells = append(cells, cell)
	}

	legend := make([]string, 0, len(observed))
	for cat := range observed {
		legend = append(legend, cat)
	}
	sort.Strings(legend)
	return cells, legend, nil
}

func paletteColor(category string, opts Options) string {
	if c, ok := opts.Palette[category]; ok {
		return c
	}
	return opts.DefaultColor
}

// Render builds the finished plot for one year: the cell grid, month
// labels along the bottom, weekday labels on alternating rows, and a
// legend of the year's categories in their pure palette colors, placed
// to the right of the grid.
func Render(days []Day, year, maxCount int, opts Options) (*plot.Plot, error) {
	opts = opts.withDefaults()

	cells, legend, err := YearCells(days, year, maxCount, opts)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.BackgroundColor = color.White

	p.X.Tick.Marker = monthTicks{year: year, step: opts.step()}
	p.Y.Tick.Marker = weekdayTicks{step: opts.step(), cell: opts.CellSize}
	for _, axis := range []*plot.Axis{&p.X, &p.Y} {
		axis.LineStyle.Width = 0
		axis.Tick.LineStyle.Width = 0
		axis.Tick.Length = 0
	}

	grid := &gridPlotter{cells: cells, opts: opts}
	p.Add(grid)

	for _, cat := range legend {
		rgb, err := HexToRGB(paletteColor(cat, opts))
		if err != nil {
			return nil, err
		}
		p.Legend.Add(cat, swatch{fill: rgb.Color()})
	}
	p.Legend.Top = true

	// Leave empty columns to the right so the legend sits clear of the
	// populated grid.
	xmin, xmax, ymin, ymax := grid.DataRange()
	p.X.Min, p.X.Max = xmin, xmax+8*opts.step()
	p.Y.Min, p.Y.Max = ymin, ymax

	return p, nil
}

// gridPlotter draws the day cells as white-bordered rectangles.
type gridPlotter struct {
	cells []Cell
	opts  Options
}

func (g *gridPlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	border := draw.LineStyle{Color: color.White, Width: vg.Points(0.5)}

	for _, cell := range g.cells {
		x := float64(cell.Col) * g.opts.step()
		y := float64(6-cell.Row) * g.opts.step()

		xmin, xmax := trX(x), trX(x+g.opts.CellSize)
		ymin, ymax := trY(y), trY(y+g.opts.CellSize)
		poly := []vg.Point{
			{X: xmin, Y: ymin},
			{X: xmax, Y: ymin},
			{X: xmax, Y: ymax},
			{X: xmin, Y: ymax},
		}
		c.FillPolygon(cell.Fill.Color(), poly)
		c.StrokeLines(border, append(poly, poly[0]))
	}
}

// DataRange implements plot.DataRanger covering the full 53x7 grid.
func (g *gridPlotter) DataRange() (xmin, xmax, ymin, ymax float64) {
	step := g.opts.step()
	return -g.opts.Gap, Weeks * step, -g.opts.Gap, 7 * step
}

// monthTicks labels each month at the column of its first day. Months
// sharing a column with an earlier label are suppressed.
type monthTicks struct {
	year int
	step float64
}

func (mt monthTicks) Ticks(min, max float64) []plot.Tick {
	jan1 := time.Date(mt.year, time.January, 1, 0, 0, 0, 0, time.UTC)
	seen := make(map[string]bool)

	var ticks []plot.Tick
	for m := time.January; m <= time.December; m++ {
		first := time.Date(mt.year, m, 1, 0, 0, 0, 0, time.UTC)
		col, _ := CellPosition(first, jan1)
		label := first.Format("Jan")
		if seen[label] {
			continue
		}
		seen[label] = true
		ticks = append(ticks, plot.Tick{Value: float64(col) * mt.step, Label: label})
	}
	return ticks
}

// weekdayTicks labels every other weekday row, starting with Monday, to
// keep the narrow rows readable.
type weekdayTicks struct {
	step, cell float64
}

func (wt weekdayTicks) Ticks(min, max float64) []plot.Tick {
	names := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	var ticks []plot.Tick
	for row := 1; row < len(names); row += 2 {
		y := float64(6-row)*wt.step + wt.cell/2
		ticks = append(ticks, plot.Tick{Value: y, Label: names[row]})
	}
	return ticks
}

// swatch is a solid-color legend thumbnail.
type swatch struct {
	fill color.Color
}

func (s swatch) Thumbnail(c *draw.Canvas) {
	poly := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Min.X, Y: c.Max.Y},
	}
	c.FillPolygon(s.fill, poly)
}
