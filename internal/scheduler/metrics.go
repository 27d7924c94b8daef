package scheduler

type (
	// ProcessMetrics is the per-process outcome of a run. The derived times
	// are only meaningful when Completed is true; renderers show incomplete
	// processes without them.
	ProcessMetrics struct {
		ProcessID      int64
		Priority       int64
		BurstDuration  int64
		ArrivalTime    int64
		StartTime      int64
		CompletionTime int64
		WaitingTime    int64
		TurnaroundTime int64
		ResponseTime   int64
		Completed      bool
	}

	// Report aggregates one run. Averages and throughput cover completed
	// processes only, so a mid-run report stays meaningful for live views.
	Report struct {
		PerProcess []ProcessMetrics

		Completed         int
		TotalTime         int64
		AvgWaitingTime    float64
		AvgTurnaroundTime float64
		AvgResponseTime   float64
		Throughput        float64
		Utilization       float64
		ContextSwitches   int
	}
)

// Summarize derives metrics from the processes and timeline of a run. It
// reads and never writes, so it can be called after every step.
func Summarize(processes []*Process, timeline *Timeline) Report {
	report := Report{
		PerProcess: make([]ProcessMetrics, 0, len(processes)),
		TotalTime:  int64(timeline.Len()),
	}

	var totalWait, totalTurnaround, totalResponse, lastCompletion int64
	for _, p := range processes {
		m := ProcessMetrics{
			ProcessID:      p.ProcessID,
			Priority:       p.Priority,
			BurstDuration:  p.BurstDuration,
			ArrivalTime:    p.ArrivalTime,
			StartTime:      p.firstRun,
			CompletionTime: p.completion,
		}
		if p.Completed() {
			m.Completed = true
			m.TurnaroundTime = p.completion - p.ArrivalTime
			m.WaitingTime = m.TurnaroundTime - p.BurstDuration
			m.ResponseTime = p.firstRun - p.ArrivalTime

			report.Completed++
			totalWait += m.WaitingTime
			totalTurnaround += m.TurnaroundTime
			totalResponse += m.ResponseTime
			if p.completion > lastCompletion {
				lastCompletion = p.completion
			}
		}
		report.PerProcess = append(report.PerProcess, m)
	}

	if report.Completed > 0 {
		count := float64(report.Completed)
		report.AvgWaitingTime = float64(totalWait) / count
		report.AvgTurnaroundTime = float64(totalTurnaround) / count
		report.AvgResponseTime = float64(totalResponse) / count
		report.Throughput = count / float64(lastCompletion)
	}

	var busy int
	var lastPID int64
	for _, e := range timeline.entries {
		if e.Idle {
			continue
		}
		busy++
		if lastPID != 0 && e.PID != lastPID {
			report.ContextSwitches++
		}
		lastPID = e.PID
	}
	if timeline.Len() > 0 {
		report.Utilization = float64(busy) / float64(timeline.Len())
	}

	return report
}
