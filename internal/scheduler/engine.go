package scheduler

import (
	"fmt"
	"log/slog"

	"github.com/Amit046/Process-Scheduling-Dashboard/internal/log"
)

// Phase is the lifecycle of an Engine: NotStarted until the first step,
// Running while any process has work left, Completed when none do. Reset
// returns the engine to NotStarted from any phase.
type Phase int

const (
	NotStarted Phase = iota
	Running
	Completed
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not started"
	case Running:
		return "running"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// DefaultQuantum is the round-robin slice length unless SetQuantum overrides
// it.
const DefaultQuantum int64 = 2

// Engine drives one simulation run: it owns the process records, the clock,
// the timeline and the configured strategy. One goroutine drives one engine;
// comparing algorithms side by side means one engine per algorithm, each
// with its own processes.
type Engine struct {
	Log *slog.Logger

	algorithm Algorithm
	quantum   int64
	strategy  Strategy

	processes []*Process
	byID      map[int64]*Process

	clock    int64
	phase    Phase
	timeline Timeline
}

// NewEngine returns an empty engine: first-come first-serve, the default
// quantum, nothing scheduled yet.
func NewEngine() *Engine {
	e := &Engine{
		Log:     slog.Default(),
		quantum: DefaultQuantum,
		byID:    make(map[int64]*Process),
	}
	e.strategy = newStrategy(e.algorithm, e.quantum)

	return e
}

//region Configuration

// AddProcess validates and registers a process. The engine owns the record;
// on any error the process set is left untouched. The set can only change
// before the first step.
func (e *Engine) AddProcess(id, arrival, burst, priority int64) error {
	if e.phase != NotStarted {
		return fmt.Errorf("%w: cannot add a process while %s", ErrSimulationStarted, e.phase)
	}
	p, err := NewProcess(id, arrival, burst, priority)
	if err != nil {
		return err
	}
	if _, ok := e.byID[p.ProcessID]; ok {
		return fmt.Errorf("%w: id %d", ErrDuplicateProcess, p.ProcessID)
	}

	e.byID[p.ProcessID] = p
	e.processes = append(e.processes, p)

	return nil
}

// SetAlgorithm selects the scheduling discipline for the next run.
func (e *Engine) SetAlgorithm(a Algorithm) error {
	if e.phase != NotStarted {
		return fmt.Errorf("%w: cannot change algorithm while %s", ErrSimulationStarted, e.phase)
	}
	if !a.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}

	e.algorithm = a
	e.strategy = newStrategy(a, e.quantum)

	return nil
}

// SetQuantum sets the round-robin slice length. Only round-robin reads it.
func (e *Engine) SetQuantum(q int64) error {
	if e.phase != NotStarted {
		return fmt.Errorf("%w: cannot change quantum while %s", ErrSimulationStarted, e.phase)
	}
	if q < 1 {
		return fmt.Errorf("%w: %d is not positive", ErrInvalidQuantum, q)
	}

	e.quantum = q
	e.strategy = newStrategy(e.algorithm, e.quantum)

	return nil
}

//endregion

//region Execution

// Step advances the simulation by exactly one time unit and returns the
// timeline entry it recorded plus the phase after the step. Stepping a
// completed engine is a no-op that returns the last entry again.
func (e *Engine) Step() (TimelineEntry, Phase, error) {
	if e.phase == Completed {
		last, _ := e.timeline.Last()
		return last, e.phase, nil
	}
	if len(e.processes) == 0 {
		return TimelineEntry{}, e.phase, fmt.Errorf("%w: add processes before stepping", ErrEmptyProcessSet)
	}
	if e.phase == NotStarted {
		e.phase = Running
		e.Log.Debug("simulation started",
			log.StringAttr("algorithm", e.algorithm.String()),
			log.IntAttr("processes", len(e.processes)))
	}

	var prev *Process
	if last, ok := e.timeline.Last(); ok && !last.Idle {
		prev = e.byID[last.PID]
	}

	selected := e.strategy.SelectNext(e.clock, e.pending())
	entry := TimelineEntry{Unit: e.clock, Idle: selected == nil}
	if selected != nil {
		entry.PID = selected.ProcessID
		if prev != nil && prev != selected && prev.remaining > 0 {
			entry.Preempted = true
			e.Log.Debug("process preempted",
				log.Int64Attr("pid", prev.ProcessID),
				log.Int64Attr("by", selected.ProcessID),
				log.Int64Attr("unit", e.clock))
		}
		if selected.firstRun == unset {
			selected.firstRun = e.clock
		}
		selected.remaining--
		if selected.remaining == 0 {
			selected.completion = e.clock + 1
			e.Log.Debug("process completed",
				log.Int64Attr("pid", selected.ProcessID),
				log.Int64Attr("completion", selected.completion))
		}
	}

	e.timeline.append(entry)
	e.clock++

	if e.done() {
		e.phase = Completed
		e.Log.Info("simulation completed",
			log.StringAttr("algorithm", e.algorithm.String()),
			log.IntAttr("processes", len(e.processes)),
			log.Int64Attr("clock", e.clock))
	}

	return entry, e.phase, nil
}

// RunToCompletion steps until every process finishes and returns the full
// recorded timeline. A correct strategy finishes within max arrival plus
// total burst units; a run exceeding that horizon is cut off with
// ErrNonTerminating.
func (e *Engine) RunToCompletion() ([]TimelineEntry, error) {
	if len(e.processes) == 0 {
		return nil, fmt.Errorf("%w: add processes before running", ErrEmptyProcessSet)
	}

	horizon := e.horizon()
	for e.phase != Completed {
		if int64(e.timeline.Len()) >= horizon {
			return e.timeline.Entries(), fmt.Errorf("%w: no progress after %d units", ErrNonTerminating, e.timeline.Len())
		}
		if _, _, err := e.Step(); err != nil {
			return e.timeline.Entries(), err
		}
	}

	return e.timeline.Entries(), nil
}

// Reset abandons the current run from any phase. Runtime counters, timeline,
// clock and strategy state return to their pre-run values; the process set
// and configuration stay.
func (e *Engine) Reset() {
	for _, p := range e.processes {
		p.reset()
	}
	e.timeline.reset()
	e.clock = 0
	e.phase = NotStarted
	e.strategy.Reset()
	e.Log.Debug("simulation reset", log.StringAttr("algorithm", e.algorithm.String()))
}

// horizon is the worst-case schedule length: every unit is either idle time
// before the last arrival or one unit of outstanding burst.
func (e *Engine) horizon() int64 {
	var maxArrival, totalBurst int64
	for _, p := range e.processes {
		if p.ArrivalTime > maxArrival {
			maxArrival = p.ArrivalTime
		}
		totalBurst += p.BurstDuration
	}
	return maxArrival + totalBurst
}

// pending returns the processes with work left, in admission order.
func (e *Engine) pending() []*Process {
	out := make([]*Process, 0, len(e.processes))
	for _, p := range e.processes {
		if p.remaining > 0 {
			out = append(out, p)
		}
	}
	return out
}

func (e *Engine) done() bool {
	for _, p := range e.processes {
		if p.remaining > 0 {
			return false
		}
	}
	return true
}

//endregion

//region State access

// Clock reports the next unit to be simulated.
func (e *Engine) Clock() int64 { return e.clock }

// Phase reports where the engine is in its lifecycle.
func (e *Engine) Phase() Phase { return e.phase }

// Algorithm reports the configured scheduling discipline.
func (e *Engine) Algorithm() Algorithm { return e.algorithm }

// Timeline exposes the read side of the execution history.
func (e *Engine) Timeline() *Timeline { return &e.timeline }

// Processes returns the engine's records in admission order.
func (e *Engine) Processes() []*Process {
	out := make([]*Process, len(e.processes))
	copy(out, e.processes)
	return out
}

// Metrics summarizes the run so far. Incomplete processes are reported as
// such; averages cover completed processes only.
func (e *Engine) Metrics() Report {
	return Summarize(e.processes, &e.timeline)
}

//endregion
