package pointmass

import (
	"fmt"
	"os"
	"path"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/zeu5/env-wrappers/env"
)

// EpisodeReturns collects the undiscounted return of each trace.
func EpisodeReturns(traces []*env.Trace) []float64 {
	returns := make([]float64, len(traces))
	for i, trace := range traces {
		returns[i] = trace.Return()
	}
	return returns
}

// Coverage discretizes the unit square into cells x cells buckets and
// returns the cumulative number of unique cells visited per episode.
func Coverage(traces []*env.Trace, cells int) []int {
	visited := make(map[int]bool)
	covered := make([]int, 0, len(traces))
	for _, trace := range traces {
		for j := 0; j < trace.Len(); j++ {
			_, _, next, _ := trace.Get(j)
			pos, ok := next.Observation.Value()
			if !ok {
				continue
			}
			cx := cellIndex(pos[0], cells)
			cy := cellIndex(pos[1], cells)
			visited[cx*cells+cy] = true
		}
		covered = append(covered, len(visited))
	}
	return covered
}

func cellIndex(v float64, cells int) int {
	i := int(v * float64(cells))
	if i >= cells {
		i = cells - 1
	}
	return i
}

// PlotTrajectories renders the positions visited by each trace as one
// line per episode.
func PlotTrajectories(name string, traces []*env.Trace, plotPath string) error {
	p := plot.New()
	p.Title.Text = name
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
	for i, trace := range traces {
		points := make(plotter.XYs, 0, trace.Len())
		for j := 0; j < trace.Len(); j++ {
			_, _, next, _ := trace.Get(j)
			pos, ok := next.Observation.Value()
			if !ok {
				continue
			}
			points = append(points, plotter.XY{X: pos[0], Y: pos[1]})
		}
		line, err := plotter.NewLine(points)
		if err != nil {
			continue
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
	}
	return p.Save(8*vg.Inch, 8*vg.Inch, plotPath)
}

// PlotCoverage compares the coverage curves of several runs on one plot.
func PlotCoverage(names []string, datasets [][]int, plotPath string) error {
	if _, err := os.Stat(path.Dir(plotPath)); err != nil {
		os.MkdirAll(path.Dir(plotPath), os.ModePerm)
	}
	p := plot.New()
	p.Title.Text = "Comparison"
	p.X.Label.Text = "Episode"
	p.Y.Label.Text = "Cells covered"
	for i := 0; i < len(names); i++ {
		covered := datasets[i]
		points := make(plotter.XYs, len(covered))
		for j, v := range covered {
			points[j] = plotter.XY{
				X: float64(j),
				Y: float64(v),
			}
		}
		line, err := plotter.NewLine(points)
		if err != nil {
			continue
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(names[i], line)
		fmt.Printf("Number of cells covered: %d for run: %s\n", covered[len(covered)-1], names[i])
	}
	return p.Save(8*vg.Inch, 8*vg.Inch, plotPath)
}
