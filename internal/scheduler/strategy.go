package scheduler

import "fmt"

// Algorithm selects one of the supported scheduling disciplines. The set is
// closed: every value maps to exactly one Strategy implementation in this
// package.
type Algorithm int

const (
	FCFS Algorithm = iota
	SJFNonPreemptive
	SJFPreemptive
	RoundRobin
	PriorityNonPreemptive
	PriorityPreemptive
)

// Algorithms lists every supported discipline in display order.
func Algorithms() []Algorithm {
	return []Algorithm{
		FCFS,
		SJFNonPreemptive,
		SJFPreemptive,
		RoundRobin,
		PriorityNonPreemptive,
		PriorityPreemptive,
	}
}

// String returns the display title used on tables and charts.
func (a Algorithm) String() string {
	switch a {
	case FCFS:
		return "First-come, first-serve"
	case SJFNonPreemptive:
		return "Shortest-job-first"
	case SJFPreemptive:
		return "Shortest-remaining-time-first"
	case RoundRobin:
		return "Round-robin"
	case PriorityNonPreemptive:
		return "Priority"
	case PriorityPreemptive:
		return "Preemptive priority"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Key returns the short name accepted by ParseAlgorithm and used in file
// names.
func (a Algorithm) Key() string {
	switch a {
	case FCFS:
		return "fcfs"
	case SJFNonPreemptive:
		return "sjf"
	case SJFPreemptive:
		return "srtf"
	case RoundRobin:
		return "rr"
	case PriorityNonPreemptive:
		return "priority"
	case PriorityPreemptive:
		return "priority-p"
	default:
		return fmt.Sprintf("algorithm-%d", int(a))
	}
}

func (a Algorithm) valid() bool {
	return a >= FCFS && a <= PriorityPreemptive
}

// ParseAlgorithm maps a short name to its Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	for _, a := range Algorithms() {
		if a.Key() == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Strategy decides which process occupies the processor for the next time
// unit. Candidates are the engine's not-yet-completed processes in admission
// order; implementations consider only those that have arrived by the clock,
// never mutate them, and return nil to idle the unit.
type Strategy interface {
	SelectNext(clock int64, candidates []*Process) *Process
	Reset()
}

func newStrategy(a Algorithm, quantum int64) Strategy {
	switch a {
	case FCFS:
		return &latched{less: byArrival}
	case SJFNonPreemptive:
		return &latched{less: byBurst}
	case SJFPreemptive:
		return &reevaluating{less: byRemaining}
	case RoundRobin:
		return &roundRobin{quantum: quantum}
	case PriorityNonPreemptive:
		return &latched{less: byPriority}
	case PriorityPreemptive:
		return &reevaluating{less: byUrgency}
	}
	panic(fmt.Sprintf("no strategy for %v", a))
}

//region Selection order

// Comparison chains for the minimum-seeking strategies. Every chain ends on
// ProcessID so selection is deterministic for any input.

func byArrival(a, b *Process) bool {
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.ProcessID < b.ProcessID
}

func byBurst(a, b *Process) bool {
	if a.BurstDuration != b.BurstDuration {
		return a.BurstDuration < b.BurstDuration
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.ProcessID < b.ProcessID
}

func byRemaining(a, b *Process) bool {
	if a.remaining != b.remaining {
		return a.remaining < b.remaining
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.ProcessID < b.ProcessID
}

func byPriority(a, b *Process) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.ProcessID < b.ProcessID
}

// byUrgency orders by priority with remaining time breaking ties, the order
// preemptive priority re-evaluates every unit.
func byUrgency(a, b *Process) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	if a.remaining != b.remaining {
		return a.remaining < b.remaining
	}
	return a.ProcessID < b.ProcessID
}

//endregion

//region Strategy skeletons

// arrived filters the candidates down to those admitted by the clock.
func arrived(clock int64, candidates []*Process) []*Process {
	out := make([]*Process, 0, len(candidates))
	for _, p := range candidates {
		if p.ArrivalTime <= clock {
			out = append(out, p)
		}
	}
	return out
}

// pickMin returns the least candidate under less, or nil for none.
func pickMin(candidates []*Process, less func(a, b *Process) bool) *Process {
	var best *Process
	for _, p := range candidates {
		if best == nil || less(p, best) {
			best = p
		}
	}
	return best
}

// latched runs its pick to completion before selecting again, which is all
// there is to the non-preemptive disciplines: FCFS, shortest-job-first and
// priority differ only in their selection order.
type latched struct {
	less    func(a, b *Process) bool
	current *Process
}

func (s *latched) SelectNext(clock int64, candidates []*Process) *Process {
	if s.current != nil && s.current.remaining > 0 {
		return s.current
	}
	s.current = pickMin(arrived(clock, candidates), s.less)
	return s.current
}

func (s *latched) Reset() { s.current = nil }

// reevaluating selects the minimum fresh every unit, so a better-placed
// arrival takes the processor on the next unit boundary. Shortest-remaining-
// time-first and preemptive priority differ only in their selection order.
type reevaluating struct {
	less func(a, b *Process) bool
}

func (s *reevaluating) SelectNext(clock int64, candidates []*Process) *Process {
	return pickMin(arrived(clock, candidates), s.less)
}

func (s *reevaluating) Reset() {}

//endregion
