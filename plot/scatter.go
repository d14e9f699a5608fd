package plot

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/occupancy-knn/dataset"
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Size is the width and height of every saved plot.
var Size = 5 * vg.Inch

var seriesStyle = map[dataset.Label]draw.GlyphStyle{
	dataset.Unoccupied: {Color: color.RGBA{R: 31, G: 119, B: 180, A: 255}, Radius: vg.Points(1.5), Shape: draw.CircleGlyph{}},
	dataset.Occupied:   {Color: color.RGBA{R: 214, G: 39, B: 40, A: 255}, Radius: vg.Points(1.5), Shape: draw.CrossGlyph{}},
}

// Scatter plots feature yName against xName and saves the image to path.
func Scatter(ds *dataset.Dataset, xName, yName, path string) error {
	x, y := ds.Index(xName), ds.Index(yName)
	if x < 0 || y < 0 {
		return fmt.Errorf("plot: unknown feature pair %q/%q: %w", xName, yName, dataset.ErrInvalidArgument)
	}
	series := map[dataset.Label]plotter.XYs{}
	for i := 0; i < ds.Len(); i++ {
		row := ds.Features(i)
		label := ds.Label(i)
		series[label] = append(series[label], plotter.XY{X: row[x], Y: row[y]})
	}

	p := gplot.New()
	p.Title.Text = fmt.Sprintf("%s vs %s", yName, xName)
	p.X.Label.Text = xName
	p.Y.Label.Text = yName
	for _, label := range dataset.Labels {
		pts, ok := series[label]
		if !ok {
			continue
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("plot: %s: %w", label, err)
		}
		s.GlyphStyle = seriesStyle[label]
		p.Add(s)
		p.Legend.Add(label.String(), s)
	}
	if err := p.Save(Size, Size, path); err != nil {
		return fmt.Errorf("plot: save %s: %w", path, err)
	}
	return nil
}

// AllPairs writes a scatter plot for every feature pair into dir, naming
// files "<x>_<y>.<ext>". It returns the written paths.
func AllPairs(ds *dataset.Dataset, dir, ext string) ([]string, error) {
	if ext == "" {
		ext = "png"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("plot: %w", err)
	}
	names := ds.Names()
	var paths []string
	for a := 0; a < len(names); a++ {
		for b := a + 1; b < len(names); b++ {
			path := filepath.Join(dir, fileName(names[a])+"_"+fileName(names[b])+"."+strings.TrimPrefix(ext, "."))
			if err := Scatter(ds, names[a], names[b], path); err != nil {
				return paths, err
			}
			paths = append(paths, path)
		}
	}
	return paths, nil
}

func fileName(feature string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		}
		return '_'
	}, feature)
}
