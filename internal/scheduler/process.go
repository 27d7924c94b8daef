// Package scheduler simulates single-processor scheduling over discrete time
// units. An Engine owns a set of processes and a Strategy, advances one unit
// per Step, and records who occupied the processor on an append-only
// Timeline. Metrics are derived afterwards from the processes and the
// timeline, never accumulated along the way.
package scheduler

import "fmt"

// Parameter ranges accepted by NewProcess.
const (
	MinProcessID = 1
	MaxProcessID = 999
	MinPriority  = 1
	MaxPriority  = 10
)

// unset marks a time that has not happened yet.
const unset int64 = -1

// Process is one schedulable unit of work. The identity fields are fixed at
// construction; the runtime counters belong to the engine that owns the
// process and change only through Engine.Step and Engine.Reset.
type Process struct {
	ProcessID     int64
	ArrivalTime   int64
	BurstDuration int64
	Priority      int64 // 1 is the most urgent, 10 the least

	remaining  int64
	firstRun   int64
	completion int64
}

// NewProcess validates the parameters and returns a ready-to-run process.
// IDs are 1-999, arrival time must not be negative, burst duration must be
// positive and priorities are 1-10.
func NewProcess(id, arrival, burst, priority int64) (*Process, error) {
	switch {
	case id < MinProcessID || id > MaxProcessID:
		return nil, fmt.Errorf("%w: id %d outside [%d,%d]", ErrInvalidProcess, id, MinProcessID, MaxProcessID)
	case arrival < 0:
		return nil, fmt.Errorf("%w: id %d has negative arrival time %d", ErrInvalidProcess, id, arrival)
	case burst <= 0:
		return nil, fmt.Errorf("%w: id %d has non-positive burst duration %d", ErrInvalidProcess, id, burst)
	case priority < MinPriority || priority > MaxPriority:
		return nil, fmt.Errorf("%w: id %d has priority %d outside [%d,%d]", ErrInvalidProcess, id, priority, MinPriority, MaxPriority)
	}

	return &Process{
		ProcessID:     id,
		ArrivalTime:   arrival,
		BurstDuration: burst,
		Priority:      priority,
		remaining:     burst,
		firstRun:      unset,
		completion:    unset,
	}, nil
}

// RemainingTime reports how many units of work are left.
func (p *Process) RemainingTime() int64 { return p.remaining }

// StartTime reports the unit the process first ran, or -1 before that.
func (p *Process) StartTime() int64 { return p.firstRun }

// CompletionTime reports the unit boundary the process finished at, or -1
// while work is left.
func (p *Process) CompletionTime() int64 { return p.completion }

// Started reports whether the process has executed at least one unit.
func (p *Process) Started() bool { return p.firstRun != unset }

// Completed reports whether the process has no work left.
func (p *Process) Completed() bool { return p.remaining == 0 }

func (p *Process) reset() {
	p.remaining = p.BurstDuration
	p.firstRun = unset
	p.completion = unset
}
