// Copyright 2026 Sultan Rosh
// Licensed under the MIT license. See license text in the LICENSE file.

package hexkeypad

// A Sample holds every observable signal of one elapsed clock cycle.
//
type Sample struct {
	// State is the scan state the controller sat in during the cycle.
	State State
	// Columns is the column drive that was asserted.
	Columns Cols
	// Rows is the row activity read under that drive.
	Rows Rows
	// Stable is the synchronizer output the controller decided on.
	Stable bool
	// Code is the decoded key code. Meaningless unless Valid.
	Code Key
	// Valid is true for exactly one cycle per detected key press.
	Valid bool
}

// A Scanner wires the row detector, the synchronizer and the scan
// controller into one keypad scanner clocked by calls to Step.
//
type Scanner struct {
	source func() Matrix
	sync   Synchronizer
	ctrl   Controller
}

// New returns a Scanner sampling its key states from source. The source is
// called exactly once per Step; it must return a coherent snapshot of all
// sixteen switches. A nil source reads as all released.
//
func New(source func() Matrix) *Scanner {
	if source == nil {
		source = func() Matrix { return 0 }
	}
	return &Scanner{source: source}
}

// State returns the committed scan state.
//
func (s *Scanner) State() State { return s.ctrl.State() }

// Step runs one clock edge and returns the signals that were live during
// the cycle it closes. The update order is fixed:
//
//  1. snapshot the key matrix and recompute the row activity against the
//     current column drive (combinational, same cycle);
//  2. read the synchronizer output registered on the previous edge;
//  3. advance the synchronizer with this cycle's activity;
//  4. advance the controller on this cycle's rows and the previous-edge
//     stable value, committing state and column drive for the next cycle.
//
// The controller deliberately consumes the stable value from before this
// edge: deciding on the value shifted in step 3 would close a same-cycle
// loop through the synchronizer.
//
// reset is sampled at the edge and wins over every other transition: the
// next committed state is Idle with both synchronizer stages clear.
//
func (s *Scanner) Step(reset bool) Sample {
	keys := s.source()
	cols := s.ctrl.Columns()
	rows := DetectRows(keys, cols)
	stable := s.sync.Stable()

	code, valid := s.ctrl.Decode(rows)
	smp := Sample{
		State:   s.ctrl.State(),
		Columns: cols,
		Rows:    rows,
		Stable:  stable,
		Code:    code,
		Valid:   valid,
	}

	s.sync.Step(rows != 0, reset)
	s.ctrl.Step(rows, stable, reset)
	return smp
}
