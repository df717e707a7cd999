package preview

import (
	"fmt"
	"io"

	"github.com/thelolagemann/agbsprite/internal/oam"
	"github.com/thelolagemann/agbsprite/internal/types"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ScanlineLoad counts how many visible sprites touch each scanline. The
// hardware has a fixed per-line rendering budget, so lines with a high
// count are the first to drop sprites.
func ScanlineLoad(table *oam.Table, count int) [types.ScreenHeight]int {
	var load [types.ScreenHeight]int
	table.Visible(count, func(_ int, e oam.Entry) {
		r := Bounds(e)
		for y := r.Min.Y; y < r.Max.Y; y++ {
			if y >= 0 && y < types.ScreenHeight {
				load[y]++
			}
		}
	})
	return load
}

// ScanlineChart plots a scanline load as a bar chart.
func ScanlineChart(load [types.ScreenHeight]int) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Sprites per scanline"
	p.X.Label.Text = "Scanline"
	p.Y.Label.Text = "Sprites"

	values := make(plotter.Values, len(load))
	for i, n := range load {
		values[i] = float64(n)
	}
	bars, err := plotter.NewBarChart(values, vg.Points(2))
	if err != nil {
		return nil, fmt.Errorf("preview: scanline chart: %w", err)
	}
	bars.LineStyle.Width = 0
	p.Add(bars)
	return p, nil
}

// WriteChart renders the scanline chart of table to w in the given
// format (png, svg, pdf...).
func WriteChart(w io.Writer, table *oam.Table, count int, format string) error {
	p, err := ScanlineChart(ScanlineLoad(table, count))
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(8*vg.Inch, 4*vg.Inch, format)
	if err != nil {
		return fmt.Errorf("preview: scanline chart: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}
