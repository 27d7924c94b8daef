package main

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/Amit046/Process-Scheduling-Dashboard/internal/scheduler"
)

// saveChart writes a grouped bar chart of per-process waiting, turnaround
// and burst times, one PNG per algorithm.
func saveChart(path, title string, report scheduler.Report) error {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "Time units"

	waits := make(plotter.Values, 0, len(report.PerProcess))
	turnarounds := make(plotter.Values, 0, len(report.PerProcess))
	bursts := make(plotter.Values, 0, len(report.PerProcess))
	names := make([]string, 0, len(report.PerProcess))
	for _, m := range report.PerProcess {
		if !m.Completed {
			continue
		}
		waits = append(waits, float64(m.WaitingTime))
		turnarounds = append(turnarounds, float64(m.TurnaroundTime))
		bursts = append(bursts, float64(m.BurstDuration))
		names = append(names, fmt.Sprintf("P%d", m.ProcessID))
	}

	width := vg.Points(12)

	waitBars, err := plotter.NewBarChart(waits, width)
	if err != nil {
		return fmt.Errorf("building wait bars: %w", err)
	}
	waitBars.Color = plotutil.Color(0)
	waitBars.Offset = -width

	turnaroundBars, err := plotter.NewBarChart(turnarounds, width)
	if err != nil {
		return fmt.Errorf("building turnaround bars: %w", err)
	}
	turnaroundBars.Color = plotutil.Color(1)

	burstBars, err := plotter.NewBarChart(bursts, width)
	if err != nil {
		return fmt.Errorf("building burst bars: %w", err)
	}
	burstBars.Color = plotutil.Color(2)
	burstBars.Offset = width

	p.Add(waitBars, turnaroundBars, burstBars)
	p.Legend.Add("Waiting", waitBars)
	p.Legend.Add("Turnaround", turnaroundBars)
	p.Legend.Add("Burst", burstBars)
	p.Legend.Top = true
	p.NominalX(names...)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving chart: %w", err)
	}

	return nil
}
