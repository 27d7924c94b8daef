package scheduler

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleSet is the canonical five-process workload used across the tests:
// rows of id, arrival, burst, priority.
var sampleSet = [][4]int64{
	{1, 0, 5, 3},
	{2, 1, 3, 2},
	{3, 2, 8, 4},
	{4, 3, 2, 1},
	{5, 4, 4, 5},
}

func buildEngine(t *testing.T, a Algorithm, quantum int64, rows [][4]int64) *Engine {
	t.Helper()
	e := NewEngine()
	e.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, e.SetAlgorithm(a))
	if quantum > 0 {
		require.NoError(t, e.SetQuantum(quantum))
	}
	for _, r := range rows {
		require.NoError(t, e.AddProcess(r[0], r[1], r[2], r[3]))
	}
	return e
}

// pids flattens a timeline to one occupant per unit, 0 marking idle units.
func pids(entries []TimelineEntry) []int64 {
	out := make([]int64, len(entries))
	for i, e := range entries {
		if !e.Idle {
			out[i] = e.PID
		}
	}
	return out
}

func TestTimelines(t *testing.T) {
	tests := []struct {
		name      string
		algorithm Algorithm
		quantum   int64
		rows      [][4]int64
		want      []int64
	}{
		{
			name:      "fcfs serves in arrival order",
			algorithm: FCFS,
			rows:      [][4]int64{{1, 0, 5, 1}, {2, 1, 3, 1}, {3, 2, 1, 1}},
			want:      []int64{1, 1, 1, 1, 1, 2, 2, 2, 3},
		},
		{
			name:      "fcfs idles until first arrival",
			algorithm: FCFS,
			rows:      [][4]int64{{1, 3, 2, 1}},
			want:      []int64{0, 0, 0, 1, 1},
		},
		{
			name:      "fcfs breaks simultaneous arrivals by id",
			algorithm: FCFS,
			rows:      [][4]int64{{2, 0, 2, 1}, {1, 0, 2, 1}},
			want:      []int64{1, 1, 2, 2},
		},
		{
			name:      "sjf picks shortest job ready at completion",
			algorithm: SJFNonPreemptive,
			rows:      [][4]int64{{1, 0, 5, 1}, {2, 1, 3, 1}, {3, 2, 1, 1}},
			want:      []int64{1, 1, 1, 1, 1, 3, 2, 2, 2},
		},
		{
			name:      "srtf preempts for shorter remaining time",
			algorithm: SJFPreemptive,
			rows:      [][4]int64{{1, 0, 5, 1}, {2, 1, 3, 1}, {3, 2, 1, 1}},
			want:      []int64{1, 2, 3, 2, 2, 1, 1, 1, 1},
		},
		{
			name:      "srtf breaks a remaining tie by arrival",
			algorithm: SJFPreemptive,
			rows:      [][4]int64{{1, 0, 4, 1}, {2, 2, 2, 1}},
			want:      []int64{1, 1, 1, 1, 2, 2},
		},
		{
			name:      "round robin queues arrivals ahead of an expired slice",
			algorithm: RoundRobin,
			quantum:   2,
			rows:      [][4]int64{{1, 0, 4, 1}, {2, 1, 3, 1}},
			want:      []int64{1, 1, 2, 2, 1, 1, 2},
		},
		{
			name:      "round robin admits simultaneous arrivals by id",
			algorithm: RoundRobin,
			quantum:   2,
			rows:      [][4]int64{{3, 0, 2, 1}, {1, 0, 2, 1}},
			want:      []int64{1, 1, 3, 3},
		},
		{
			name:      "round robin idles until the first arrival",
			algorithm: RoundRobin,
			quantum:   2,
			rows:      [][4]int64{{1, 2, 2, 1}},
			want:      []int64{0, 0, 1, 1},
		},
		{
			name:      "round robin with a large quantum degenerates to fcfs",
			algorithm: RoundRobin,
			quantum:   10,
			rows:      [][4]int64{{1, 0, 2, 1}, {2, 1, 3, 1}},
			want:      []int64{1, 1, 2, 2, 2},
		},
		{
			name:      "round robin rotates through the sample set",
			algorithm: RoundRobin,
			quantum:   2,
			rows:      sampleSet,
			want:      []int64{1, 1, 2, 2, 3, 3, 1, 1, 4, 4, 5, 5, 2, 3, 3, 1, 5, 5, 3, 3, 3, 3},
		},
		{
			name:      "priority holds the processor despite an urgent arrival",
			algorithm: PriorityNonPreemptive,
			rows:      [][4]int64{{1, 0, 5, 2}, {2, 2, 3, 1}},
			want:      []int64{1, 1, 1, 1, 1, 2, 2, 2},
		},
		{
			name:      "preemptive priority yields to an urgent arrival",
			algorithm: PriorityPreemptive,
			rows:      [][4]int64{{1, 0, 5, 2}, {2, 2, 3, 1}},
			want:      []int64{1, 1, 2, 2, 2, 1, 1, 1},
		},
		{
			name:      "preemptive priority breaks a tie by remaining time",
			algorithm: PriorityPreemptive,
			rows:      [][4]int64{{1, 0, 4, 2}, {2, 1, 2, 2}},
			want:      []int64{1, 2, 2, 1, 1, 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := buildEngine(t, tt.algorithm, tt.quantum, tt.rows)
			entries, err := e.RunToCompletion()
			require.NoError(t, err)
			assert.Equal(t, tt.want, pids(entries))
			assert.Equal(t, Completed, e.Phase())
			assert.EqualValues(t, len(tt.want), e.Clock())
		})
	}
}

func TestTimelineInvariants(t *testing.T) {
	for _, a := range Algorithms() {
		t.Run(a.Key(), func(t *testing.T) {
			e := buildEngine(t, a, 0, sampleSet)
			entries, err := e.RunToCompletion()
			require.NoError(t, err)

			var busy int64
			var totalBurst int64
			for _, p := range e.Processes() {
				totalBurst += p.BurstDuration
				require.True(t, p.Completed())
			}
			for i, entry := range entries {
				assert.EqualValues(t, i, entry.Unit)
				if entry.Idle {
					assert.Zero(t, entry.PID)
					continue
				}
				busy++
				p := e.byID[entry.PID]
				require.NotNil(t, p)
				assert.LessOrEqual(t, p.ArrivalTime, entry.Unit)
			}
			assert.Equal(t, totalBurst, busy)
			assert.LessOrEqual(t, int64(len(entries)), e.horizon())
		})
	}
}

func TestEnginePhases(t *testing.T) {
	e := buildEngine(t, FCFS, 0, [][4]int64{{1, 0, 2, 1}})
	assert.Equal(t, NotStarted, e.Phase())

	entry, phase, err := e.Step()
	require.NoError(t, err)
	assert.Equal(t, Running, phase)
	assert.False(t, entry.Idle)
	assert.EqualValues(t, 0, entry.Unit)

	_, phase, err = e.Step()
	require.NoError(t, err)
	assert.Equal(t, Completed, phase)
	assert.Equal(t, Completed, e.Phase())
	assert.EqualValues(t, 2, e.Clock())
}

func TestStepEmptyEngine(t *testing.T) {
	e := NewEngine()

	_, _, err := e.Step()
	require.ErrorIs(t, err, ErrEmptyProcessSet)

	_, err = e.RunToCompletion()
	require.ErrorIs(t, err, ErrEmptyProcessSet)
	assert.Equal(t, NotStarted, e.Phase())
}

func TestAddProcessRejections(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.AddProcess(1, 0, 5, 1))

	require.ErrorIs(t, e.AddProcess(1, 2, 3, 1), ErrDuplicateProcess)
	require.ErrorIs(t, e.AddProcess(2, -1, 3, 1), ErrInvalidProcess)
	assert.Len(t, e.Processes(), 1)
}

func TestConfigurationLockedAfterStart(t *testing.T) {
	e := buildEngine(t, FCFS, 0, [][4]int64{{1, 0, 3, 1}})
	_, _, err := e.Step()
	require.NoError(t, err)

	require.ErrorIs(t, e.AddProcess(2, 0, 1, 1), ErrSimulationStarted)
	require.ErrorIs(t, e.SetAlgorithm(RoundRobin), ErrSimulationStarted)
	require.ErrorIs(t, e.SetQuantum(3), ErrSimulationStarted)

	_, err = e.RunToCompletion()
	require.NoError(t, err)
	require.ErrorIs(t, e.AddProcess(2, 0, 1, 1), ErrSimulationStarted)

	e.Reset()
	require.NoError(t, e.AddProcess(2, 0, 1, 1))
	require.NoError(t, e.SetAlgorithm(RoundRobin))
	require.NoError(t, e.SetQuantum(3))
}

func TestConfigurationValidation(t *testing.T) {
	e := NewEngine()
	require.ErrorIs(t, e.SetQuantum(0), ErrInvalidQuantum)
	require.ErrorIs(t, e.SetAlgorithm(Algorithm(42)), ErrUnknownAlgorithm)
}

func TestStepAfterCompletion(t *testing.T) {
	e := buildEngine(t, FCFS, 0, [][4]int64{{1, 0, 2, 1}})
	entries, err := e.RunToCompletion()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	entry, phase, err := e.Step()
	require.NoError(t, err)
	assert.Equal(t, Completed, phase)
	assert.Equal(t, entries[1], entry)
	assert.Equal(t, 2, e.Timeline().Len())
	assert.EqualValues(t, 2, e.Clock())
}

func TestRunMatchesStepping(t *testing.T) {
	whole := buildEngine(t, SJFPreemptive, 0, sampleSet)
	entries, err := whole.RunToCompletion()
	require.NoError(t, err)

	stepped := buildEngine(t, SJFPreemptive, 0, sampleSet)
	for stepped.Phase() != Completed {
		_, _, err := stepped.Step()
		require.NoError(t, err)
	}
	assert.Equal(t, entries, stepped.Timeline().Entries())
}

func TestReset(t *testing.T) {
	e := buildEngine(t, RoundRobin, 0, sampleSet)
	first, err := e.RunToCompletion()
	require.NoError(t, err)

	e.Reset()
	assert.Equal(t, NotStarted, e.Phase())
	assert.EqualValues(t, 0, e.Clock())
	assert.Equal(t, 0, e.Timeline().Len())
	for _, p := range e.Processes() {
		assert.Equal(t, p.BurstDuration, p.RemainingTime())
		assert.False(t, p.Started())
		assert.False(t, p.Completed())
	}

	second, err := e.RunToCompletion()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResetMidRun(t *testing.T) {
	e := buildEngine(t, PriorityPreemptive, 0, sampleSet)
	for i := 0; i < 4; i++ {
		_, _, err := e.Step()
		require.NoError(t, err)
	}
	e.Reset()

	interrupted, err := e.RunToCompletion()
	require.NoError(t, err)

	fresh := buildEngine(t, PriorityPreemptive, 0, sampleSet)
	uninterrupted, err := fresh.RunToCompletion()
	require.NoError(t, err)
	assert.Equal(t, uninterrupted, interrupted)
}

type stalledStrategy struct{}

func (stalledStrategy) SelectNext(int64, []*Process) *Process { return nil }
func (stalledStrategy) Reset()                                {}

func TestRunToCompletionCutsOffStalledRun(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.AddProcess(1, 0, 3, 1))
	e.strategy = stalledStrategy{}

	_, err := e.RunToCompletion()
	require.ErrorIs(t, err, ErrNonTerminating)
}

func TestPreemptionFlags(t *testing.T) {
	e := buildEngine(t, SJFPreemptive, 0, [][4]int64{{1, 0, 5, 1}, {2, 1, 3, 1}})
	entries, err := e.RunToCompletion()
	require.NoError(t, err)

	// The shorter job takes over at unit 1; resuming after its completion
	// is not a preemption.
	assert.True(t, entries[1].Preempted)
	var count int
	for _, entry := range entries {
		if entry.Preempted {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestNonPreemptiveNeverFlagsPreemption(t *testing.T) {
	for _, a := range []Algorithm{FCFS, SJFNonPreemptive, PriorityNonPreemptive} {
		t.Run(a.Key(), func(t *testing.T) {
			e := buildEngine(t, a, 0, sampleSet)
			entries, err := e.RunToCompletion()
			require.NoError(t, err)
			for _, entry := range entries {
				assert.False(t, entry.Preempted)
			}
		})
	}
}
