// Copyright 2026 Sultan Rosh
// Licensed under the MIT license. See license text in the LICENSE file.

package hexkeypad

import (
	"strings"

	"github.com/pkg/errors"
)

// A Matrix is a snapshot of the sixteen key switches, one bit per switch in
// row-major order: bit r*4+c is the switch at row r, column c, and the bit
// index of a switch equals its key code.
//
// The matrix is owned by the external stimulus source; the scanner only
// reads one snapshot per clock edge.
//
type Matrix uint16

// Pressed reports whether the switch at (row, col) is closed.
//
func (m Matrix) Pressed(row, col int) bool {
	return m&(1<<uint(row*4+col)) != 0
}

// With returns a copy of m with the switch for key k closed.
//
func (m Matrix) With(k Key) Matrix {
	return m | 1<<uint(k)
}

// row returns the four switch bits of row r, ordered column 0 to column 3.
func (m Matrix) row(r int) uint8 {
	return uint8(m>>uint(r*4)) & 0xF
}

// Cols is the 4-bit column drive vector, bit c per column line. During a
// column scan state exactly one bit is set; in the idle and hold states all
// four are, probing the whole pad at once.
//
type Cols uint8

// ColAll is the all-columns-asserted probe pattern.
const ColAll Cols = 0xF

// Col returns the drive pattern asserting only column c.
//
func Col(c int) Cols { return 1 << uint(c) }

// Rows is the 4-bit row activity vector, bit r set when some closed switch
// in row r lines up with an asserted column.
//
type Rows uint8

// DetectRows computes the row activity for a key snapshot under the given
// column drive. It is pure combinational logic: level sensitive, no clock,
// re-evaluated from scratch on every call.
//
//	Rows[r] = OR over c of (m[r][c] AND cols[c])
//
// Every input combination is valid, including all switches closed.
//
func DetectRows(m Matrix, cols Cols) Rows {
	var rows Rows
	for r := 0; r < 4; r++ {
		if m.row(r)&uint8(cols) != 0 {
			rows |= 1 << uint(r)
		}
	}
	return rows
}

// ParseMatrix builds a Matrix from whitespace-separated key legends, e.g.
// "5 A F". An empty string yields the all-released matrix.
//
func ParseMatrix(s string) (Matrix, error) {
	var m Matrix
	for _, f := range strings.Fields(s) {
		k, err := ParseKey(f)
		if err != nil {
			return 0, errors.Wrapf(err, "matrix %q", s)
		}
		m = m.With(k)
	}
	return m, nil
}
