package keytest_test

import (
	"testing"

	hk "github.com/sultanrosh/hexkeypad"
	"github.com/sultanrosh/hexkeypad/keytest"
)

func TestCollect(t *testing.T) {
	m, err := hk.ParseMatrix("9")
	if err != nil {
		t.Fatal(err)
	}
	stim := keytest.Hold(nil, m, 12)
	stim = keytest.Release(stim, 8)

	pulses := keytest.Collect(stim)
	if len(pulses) != 1 {
		t.Fatalf("expected 1 pulse, got %d (%v)", len(pulses), pulses)
	}
	p := pulses[0]
	if p.Code != hk.Key9 {
		t.Fatalf("code = %v, expected 9", p.Code)
	}
	if p.Columns != hk.Col(hk.Key9.Col()) {
		t.Fatalf("columns = %04b, expected %04b", p.Columns, hk.Col(hk.Key9.Col()))
	}
	// Two cycles of synchronizer latency, the idle decision, then the
	// column 0 probe before column 1 responds.
	if p.Cycle != 4 {
		t.Fatalf("pulse at cycle %d, expected 4", p.Cycle)
	}
}

func TestCollectEmpty(t *testing.T) {
	if pulses := keytest.Collect(keytest.Release(nil, 20)); len(pulses) != 0 {
		t.Fatalf("pulses on a dead pad: %v", pulses)
	}
}

func TestCheckRandomKeys(t *testing.T) {
	keytest.CheckRandomKeys(t, 40)
}
