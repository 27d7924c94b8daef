// Package workload loads and generates the process sets a simulation runs
// over. Range validation lives with the engine; this package only parses and
// carries values.
package workload

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/exp/rand"
)

var ErrInvalidArgs = errors.New("invalid args")

type (
	// Process is one row of a workload: the static description the engine
	// turns into a schedulable record.
	Process struct {
		ProcessID     int64 `json:"id"`
		ArrivalTime   int64 `json:"arrival"`
		BurstDuration int64 `json:"burst"`
		Priority      int64 `json:"priority"`
	}

	// Scenario is a full simulation setup loaded from JSON: the algorithm
	// by short name, an optional quantum and the process set. Quantum is
	// nil when the file leaves it out.
	Scenario struct {
		Algorithm string    `json:"algorithm"`
		Quantum   *int64    `json:"quantum,omitempty"`
		Processes []Process `json:"processes"`
	}
)

// LoadCSV parses process rows of the form ID, Burst, Arrival and an optional
// Priority column, which defaults to 1.
func LoadCSV(r io.Reader) ([]Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	processes := make([]Process, len(rows))
	for i := range rows {
		if len(rows[i]) < 3 {
			return nil, fmt.Errorf("%w: row %d has %d columns, want at least 3", ErrInvalidArgs, i+1, len(rows[i]))
		}
		if processes[i].ProcessID, err = strToInt(rows[i][0]); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if processes[i].BurstDuration, err = strToInt(rows[i][1]); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if processes[i].ArrivalTime, err = strToInt(rows[i][2]); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		processes[i].Priority = 1
		if len(rows[i]) >= 4 {
			if processes[i].Priority, err = strToInt(rows[i][3]); err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
		}
	}

	return processes, nil
}

// LoadScenario reads a JSON scenario file.
func LoadScenario(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scenario: %w", err)
	}
	defer func() { _ = f.Close() }()

	var scenario Scenario
	if err := json.NewDecoder(f).Decode(&scenario); err != nil {
		return nil, fmt.Errorf("decoding scenario: %w", err)
	}
	if len(scenario.Processes) == 0 {
		return nil, fmt.Errorf("%w: scenario has no processes", ErrInvalidArgs)
	}

	return &scenario, nil
}

// Generate builds a deterministic random workload: n processes with arrivals
// in [0, 2n), bursts 1-10 and priorities 1-10. The same seed yields the same
// workload.
func Generate(n int, seed uint64) []Process {
	if n <= 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(seed))
	processes := make([]Process, n)
	for i := range processes {
		processes[i] = Process{
			ProcessID:     int64(i + 1),
			ArrivalTime:   rng.Int63n(int64(2 * n)),
			BurstDuration: 1 + rng.Int63n(10),
			Priority:      1 + rng.Int63n(10),
		}
	}

	return processes
}

func strToInt(s string) (int64, error) {
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidArgs, s)
	}
	return i, nil
}
