// Copyright 2026 Sultan Rosh
// Licensed under the MIT license. See license text in the LICENSE file.

// Package keytest provides utility functions for testing keypad scanners.
//
// A stimulus is a plain []hexkeypad.Matrix, one snapshot per clock cycle,
// built up with Hold and Release and played back with Collect.
//
package keytest

import (
	"math/rand"
	"testing"
	"time"

	"github.com/sultanrosh/hexkeypad"
)

// A Pulse records one cycle during which the scanner asserted its valid
// output.
//
type Pulse struct {
	// Cycle is the stimulus index at which the pulse was observed.
	Cycle int
	// Code is the decoded key code.
	Code hexkeypad.Key
	// Columns is the column drive asserted during the pulse.
	Columns hexkeypad.Cols
}

// Hold appends n cycles of the given key snapshot to a stimulus.
//
func Hold(stim []hexkeypad.Matrix, m hexkeypad.Matrix, n int) []hexkeypad.Matrix {
	for i := 0; i < n; i++ {
		stim = append(stim, m)
	}
	return stim
}

// Release appends n all-released cycles to a stimulus.
//
func Release(stim []hexkeypad.Matrix, n int) []hexkeypad.Matrix {
	return Hold(stim, 0, n)
}

// Collect plays a stimulus through a fresh scanner, one clock edge per
// entry, and returns every valid pulse observed.
//
func Collect(stim []hexkeypad.Matrix) []Pulse {
	var cur hexkeypad.Matrix
	s := hexkeypad.New(func() hexkeypad.Matrix { return cur })

	var pulses []Pulse
	for i, m := range stim {
		cur = m
		smp := s.Step(false)
		if smp.Valid {
			pulses = append(pulses, Pulse{Cycle: i, Code: smp.Code, Columns: smp.Columns})
		}
	}
	return pulses
}

// settle is the worst-case cycle count from a press in steady idle to its
// valid pulse: two synchronizer stages, the idle decision edge, then up to
// four column probes.
const settle = 8

// drain is the cycle count after release before the scanner is guaranteed
// back in steady idle: the hold exit, the synchronizer drain and one
// keyless scan pass.
const drain = 8

// CheckSingleKey presses key k alone for hold cycles (at least 8) and fails
// t unless exactly one pulse comes back, carrying k's code while k's column
// was driven.
//
func CheckSingleKey(t *testing.T, k hexkeypad.Key, hold int) {
	t.Helper()

	if hold < settle {
		hold = settle
	}
	stim := Release(nil, 2)
	stim = Hold(stim, hexkeypad.Matrix(0).With(k), hold)
	stim = Release(stim, drain)

	pulses := Collect(stim)
	if len(pulses) != 1 {
		t.Fatalf("key %v held %d cycles: expected 1 valid pulse, got %d (%v)", k, hold, len(pulses), pulses)
	}
	if pulses[0].Code != k {
		t.Fatalf("key %v: decoded code %v", k, pulses[0].Code)
	}
	if pulses[0].Columns != hexkeypad.Col(k.Col()) {
		t.Fatalf("key %v: pulse while driving columns %04b, expected %04b", k, pulses[0].Columns, hexkeypad.Col(k.Col()))
	}
}

// CheckRandomKeys presses iterations random single keys with random hold
// and gap lengths and fails t unless each press yields exactly one pulse
// with the right code, in order.
//
func CheckRandomKeys(t *testing.T, iterations int) {
	t.Helper()

	rand.Seed(time.Now().UnixNano())

	var stim []hexkeypad.Matrix
	var want []hexkeypad.Key
	for i := 0; i < iterations; i++ {
		k := hexkeypad.Key(rand.Intn(16))
		stim = Hold(stim, hexkeypad.Matrix(0).With(k), settle+rand.Intn(32))
		stim = Release(stim, drain+rand.Intn(10))
		want = append(want, k)
	}

	pulses := Collect(stim)
	if len(pulses) != len(want) {
		t.Fatalf("%d presses: expected %d pulses, got %d", iterations, len(want), len(pulses))
	}
	for i, p := range pulses {
		if p.Code != want[i] {
			t.Fatalf("press %d: expected key %v, decoded %v at cycle %d", i, want[i], p.Code, p.Cycle)
		}
	}
	t.Logf("%d random presses over %d cycles, all decoded", iterations, len(stim))
}
