// Command schedsim runs one or all scheduling algorithms over a process set
// and prints a Gantt strip, a schedule table and averaged metrics for each.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Amit046/Process-Scheduling-Dashboard/internal/log"
	"github.com/Amit046/Process-Scheduling-Dashboard/internal/scheduler"
	"github.com/Amit046/Process-Scheduling-Dashboard/internal/workload"
)

type options struct {
	algorithm string
	quantum   int64
	random    int
	seed      uint64
	config    string
	chart     string
	file      string
}

func main() {
	var opts options
	flag.StringVar(&opts.algorithm, "algorithm", "all", "algorithm to run: all, fcfs, sjf, srtf, rr, priority, priority-p")
	flag.Int64Var(&opts.quantum, "quantum", scheduler.DefaultQuantum, "round-robin time quantum")
	flag.IntVar(&opts.random, "random", 0, "generate N random processes instead of reading a file")
	flag.Uint64Var(&opts.seed, "seed", 1, "seed for -random")
	flag.StringVar(&opts.config, "config", "", "JSON scenario file")
	flag.StringVar(&opts.chart, "chart", "", "write <prefix>_<algorithm>.png metric charts")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()
	opts.file = flag.Arg(0)

	logger := log.BuildLogger(*verbose)
	slog.SetDefault(logger)

	if err := run(os.Stdout, logger, opts); err != nil {
		logger.Error("simulation failed", log.ErrAttr(err))
		os.Exit(1)
	}
}

func run(w io.Writer, logger *slog.Logger, opts options) error {
	processes, algorithms, quantum, err := assemble(opts)
	if err != nil {
		return err
	}

	for _, algorithm := range algorithms {
		e := scheduler.NewEngine()
		e.Log = logger
		if err := e.SetAlgorithm(algorithm); err != nil {
			return err
		}
		if err := e.SetQuantum(quantum); err != nil {
			return err
		}
		for _, p := range processes {
			if err := e.AddProcess(p.ProcessID, p.ArrivalTime, p.BurstDuration, p.Priority); err != nil {
				return err
			}
		}

		if _, err := e.RunToCompletion(); err != nil {
			return err
		}

		report := e.Metrics()
		outputTitle(w, algorithm.String())
		outputGantt(w, e.Timeline().Slices())
		outputSchedule(w, report)

		if opts.chart != "" {
			path := fmt.Sprintf("%s_%s.png", opts.chart, algorithm.Key())
			if err := saveChart(path, algorithm.String(), report); err != nil {
				return err
			}
			logger.Info("chart written", log.StringAttr("path", path))
		}
	}

	return nil
}

// assemble resolves the process set, the algorithms to run and the quantum
// from the command line. A scenario file wins over -random, which wins over
// a CSV file argument.
func assemble(opts options) ([]workload.Process, []scheduler.Algorithm, int64, error) {
	quantum := opts.quantum
	selection := opts.algorithm

	var processes []workload.Process
	switch {
	case opts.config != "":
		scenario, err := workload.LoadScenario(opts.config)
		if err != nil {
			return nil, nil, 0, err
		}
		processes = scenario.Processes
		if scenario.Quantum != nil {
			quantum = *scenario.Quantum
		}
		if scenario.Algorithm != "" {
			selection = scenario.Algorithm
		}
	case opts.random > 0:
		processes = workload.Generate(opts.random, opts.seed)
	case opts.file != "":
		f, err := os.Open(opts.file)
		if err != nil {
			return nil, nil, 0, fmt.Errorf("opening scheduling file: %w", err)
		}
		defer func() { _ = f.Close() }()
		if processes, err = workload.LoadCSV(f); err != nil {
			return nil, nil, 0, err
		}
	default:
		return nil, nil, 0, fmt.Errorf("%w: give a scheduling file, -random or -config", workload.ErrInvalidArgs)
	}

	algorithms := scheduler.Algorithms()
	if selection != "" && selection != "all" {
		a, err := scheduler.ParseAlgorithm(selection)
		if err != nil {
			return nil, nil, 0, err
		}
		algorithms = []scheduler.Algorithm{a}
	}

	return processes, algorithms, quantum, nil
}
