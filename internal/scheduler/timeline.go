package scheduler

type (
	// TimelineEntry records who occupied the processor for one time unit.
	// PID is zero and Idle true when nothing had arrived. Preempted marks a
	// change of occupant that interrupted a process with work left; it is
	// display information and feeds nothing back into scheduling.
	TimelineEntry struct {
		Unit      int64
		PID       int64
		Idle      bool
		Preempted bool
	}

	// TimeSlice is a run of consecutive units with the same occupant, the
	// shape Gantt renderers consume.
	TimeSlice struct {
		PID   int64
		Start int64
		Stop  int64
		Idle  bool
	}

	// Timeline is the append-only execution history of one run. Entries are
	// added by Engine.Step, one per unit, and dropped wholesale by
	// Engine.Reset.
	Timeline struct {
		entries []TimelineEntry
	}
)

func (t *Timeline) append(e TimelineEntry) {
	t.entries = append(t.entries, e)
}

func (t *Timeline) reset() { t.entries = t.entries[:0] }

// Len reports how many units have been recorded.
func (t *Timeline) Len() int { return len(t.entries) }

// Last returns the most recent entry, if any unit has been recorded.
func (t *Timeline) Last() (TimelineEntry, bool) {
	if len(t.entries) == 0 {
		return TimelineEntry{}, false
	}
	return t.entries[len(t.entries)-1], true
}

// Entries returns a copy of the per-unit history in execution order.
func (t *Timeline) Entries() []TimelineEntry {
	out := make([]TimelineEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Slices merges consecutive entries with the same occupant into Gantt
// slices, idle gaps included.
func (t *Timeline) Slices() []TimeSlice {
	gantt := make([]TimeSlice, 0, len(t.entries))
	for _, e := range t.entries {
		if n := len(gantt); n > 0 && gantt[n-1].Idle == e.Idle && gantt[n-1].PID == e.PID {
			gantt[n-1].Stop = e.Unit + 1
			continue
		}
		gantt = append(gantt, TimeSlice{PID: e.PID, Start: e.Unit, Stop: e.Unit + 1, Idle: e.Idle})
	}
	return gantt
}
