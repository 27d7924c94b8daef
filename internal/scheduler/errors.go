package scheduler

import "errors"

// Sentinel errors reported by the engine. Call sites match them with
// errors.Is; wrapped messages carry the offending values.
var (
	ErrInvalidProcess    = errors.New("invalid process")
	ErrDuplicateProcess  = errors.New("duplicate process")
	ErrEmptyProcessSet   = errors.New("empty process set")
	ErrInvalidQuantum    = errors.New("invalid quantum")
	ErrSimulationStarted = errors.New("simulation already started")
	ErrNonTerminating    = errors.New("simulation failed to terminate")
	ErrUnknownAlgorithm  = errors.New("unknown algorithm")
)
