package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/Amit046/Process-Scheduling-Dashboard/internal/scheduler"
)

//region Output helpers

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputGantt(w io.Writer, gantt []scheduler.TimeSlice) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for i := range gantt {
		label := fmt.Sprint(gantt[i].PID)
		if gantt[i].Idle {
			label = "-"
		}
		padding := strings.Repeat(" ", (8-len(label))/2)
		_, _ = fmt.Fprint(w, padding, label, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i := range gantt {
		_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Start), "\t")
		if len(gantt)-1 == i {
			_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Stop))
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputSchedule(w io.Writer, report scheduler.Report) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	rows := make([][]string, 0, len(report.PerProcess))
	for _, m := range report.PerProcess {
		row := []string{
			fmt.Sprint(m.ProcessID),
			fmt.Sprint(m.Priority),
			fmt.Sprint(m.BurstDuration),
			fmt.Sprint(m.ArrivalTime),
			"-", "-", "-", "-",
		}
		if m.Completed {
			row[4] = fmt.Sprint(m.WaitingTime)
			row[5] = fmt.Sprint(m.TurnaroundTime)
			row[6] = fmt.Sprint(m.ResponseTime)
			row[7] = fmt.Sprint(m.CompletionTime)
		}
		rows = append(rows, row)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Response", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", report.AvgWaitingTime),
		fmt.Sprintf("Average\n%.2f", report.AvgTurnaroundTime),
		fmt.Sprintf("Average\n%.2f", report.AvgResponseTime),
		fmt.Sprintf("Throughput\n%.2f/t", report.Throughput)})
	table.Render()
}

//endregion
