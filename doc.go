// Copyright 2026 Sultan Rosh
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package hexkeypad simulates the scan logic of a 4×4 matrix keypad, cycle
accurate to the clock edge.

A Scanner drives one column line at a time, samples the four row lines
through a pure combinational row detector, synchronizes the asynchronous
"any key down" condition through two register stages, and decodes the
responding row/column pair into a 4-bit key code with a validity flag.
A pressed key produces exactly one single-cycle valid pulse per press;
the scanner then parks in a hold state until every switch has released,
which is what debounces release chatter.

The external stimulus source supplies key states through a plain
func() Matrix hook sampled once per clock edge, and every observable
signal of the elapsed cycle comes back in a Sample.
*/
package hexkeypad
