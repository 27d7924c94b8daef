package scheduler

import "sort"

// roundRobin cycles arrived processes through fixed-length slices. Processes
// join the ready queue once, in arrival order with ID breaking ties; a
// process whose slice expires with work left goes to the back of the queue,
// after anything that arrived during its slice.
type roundRobin struct {
	quantum int64

	queue    []*Process
	admitted map[int64]bool
	current  *Process
	slice    int64
}

func (s *roundRobin) SelectNext(clock int64, candidates []*Process) *Process {
	if s.admitted == nil {
		s.admitted = make(map[int64]bool)
	}

	// Admit new arrivals before any requeueing so they queue ahead of an
	// expiring process.
	var newcomers []*Process
	for _, p := range candidates {
		if p.ArrivalTime <= clock && !s.admitted[p.ProcessID] {
			newcomers = append(newcomers, p)
		}
	}
	sort.Slice(newcomers, func(i, j int) bool {
		return byArrival(newcomers[i], newcomers[j])
	})
	for _, p := range newcomers {
		s.admitted[p.ProcessID] = true
		s.queue = append(s.queue, p)
	}

	if s.current != nil {
		switch {
		case s.current.remaining == 0:
			s.current = nil
		case s.slice >= s.quantum:
			s.queue = append(s.queue, s.current)
			s.current = nil
		}
	}

	if s.current == nil {
		if len(s.queue) == 0 {
			return nil
		}
		s.current = s.queue[0]
		s.queue = s.queue[1:]
		s.slice = 0
	}

	s.slice++
	return s.current
}

func (s *roundRobin) Reset() {
	s.queue = nil
	s.admitted = nil
	s.current = nil
	s.slice = 0
}
