// Copyright 2026 Sultan Rosh
// Licensed under the MIT license. See license text in the LICENSE file.

package hexkeypad

import "math/bits"

// A State is one of the six scan controller states. The zero value is Idle.
//
type State uint8

// Scan controller states.
const (
	// Idle probes all columns, waiting for the synchronized activity
	// signal before starting a scan pass.
	Idle State = iota
	// ScanCol0 through ScanCol3 each probe a single column.
	ScanCol0
	ScanCol1
	ScanCol2
	ScanCol3
	// Hold probes all columns and waits for every switch to release
	// before re-arming, which debounces release chatter and guarantees a
	// single detection per press.
	Hold
)

var stateNames = [...]string{"Idle", "ScanCol0", "ScanCol1", "ScanCol2", "ScanCol3", "Hold"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "State(?)"
}

// Columns returns the column drive asserted while the controller sits in s.
//
func (s State) Columns() Cols {
	if s.scanning() {
		return Col(int(s - ScanCol0))
	}
	return ColAll
}

// scanning reports whether s probes a single column.
func (s State) scanning() bool {
	return ScanCol0 <= s && s <= ScanCol3
}

// A Controller is the scan state machine. It is the sole owner of the scan
// state and of the column drive derived from it; the state commits only in
// Step, once per clock edge.
//
type Controller struct {
	state State
}

// State returns the committed scan state.
//
func (c *Controller) State() State { return c.state }

// Columns returns the column drive for the current cycle.
//
func (c *Controller) Columns() Cols { return c.state.Columns() }

// Step commits one clock edge. rows is this cycle's row activity under the
// current column drive; stable is the synchronizer output registered on the
// previous edge. reset forces Idle and takes priority over every other
// transition.
//
func (c *Controller) Step(rows Rows, stable, reset bool) {
	if reset {
		c.state = Idle
		return
	}
	switch c.state {
	case Idle:
		if stable {
			c.state = ScanCol0
		}
	case ScanCol0, ScanCol1, ScanCol2:
		if rows != 0 {
			c.state = Hold
		} else {
			c.state++
		}
	case ScanCol3:
		if rows != 0 {
			c.state = Hold
		} else {
			c.state = Idle
		}
	case Hold:
		if rows == 0 {
			c.state = Idle
		}
	default:
		c.state = Idle
	}
}

// Decode maps this cycle's row activity to a key code. The code is
// meaningful only while valid is true: a single row bit responding while a
// single column is probed. Multi-row patterns have no decode entry, so two
// keys sharing the probed column yield valid == false for that cycle; the
// idle and hold states never decode.
//
func (c *Controller) Decode(rows Rows) (code Key, valid bool) {
	if !c.state.scanning() {
		return 0, false
	}
	return decode(rows, c.state.Columns())
}

// decode maps a one-hot (rows, cols) pair to its row-major key code.
func decode(rows Rows, cols Cols) (Key, bool) {
	if bits.OnesCount8(uint8(rows)) != 1 || bits.OnesCount8(uint8(cols)) != 1 {
		return 0, false
	}
	r := bits.TrailingZeros8(uint8(rows))
	c := bits.TrailingZeros8(uint8(cols))
	return KeyAt(r, c), true
}
