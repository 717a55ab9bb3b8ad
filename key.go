// Copyright 2026 Sultan Rosh
// Licensed under the MIT license. See license text in the LICENSE file.

package hexkeypad

import (
	"strings"

	"github.com/pkg/errors"
)

// A Key is a decoded 4-bit key code. Codes are assigned row-major over the
// keypad grid: row 0 column 0 is Key0, row 3 column 3 is KeyF.
//
type Key uint8

// The sixteen key codes.
const (
	Key0 Key = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
)

const keyLegends = "0123456789ABCDEF"

// KeyAt returns the key code for the switch at the given row and column.
// Row and column must be in [0, 3].
//
func KeyAt(row, col int) Key {
	return Key(row*4 + col)
}

// Row returns the keypad row of k.
//
func (k Key) Row() int { return int(k) >> 2 }

// Col returns the keypad column of k.
//
func (k Key) Col() int { return int(k) & 3 }

// String returns the hexadecimal legend printed on key k.
//
func (k Key) String() string {
	if k > KeyF {
		return "?"
	}
	return keyLegends[k : k+1]
}

// ParseKey parses a single hexadecimal key legend ("0" to "9", "A" to "F",
// case insensitive) into its key code.
//
func ParseKey(s string) (Key, error) {
	if len(s) != 1 {
		return 0, errors.Errorf("key legend %q: want a single hex digit", s)
	}
	i := strings.IndexByte(keyLegends, strings.ToUpper(s)[0])
	if i < 0 {
		return 0, errors.Errorf("key legend %q: not a hex digit", s)
	}
	return Key(i), nil
}
